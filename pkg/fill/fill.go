// Package fill searches for complete crossword fills: every slot a
// dictionary word, no entry repeated, every fixed letter preserved. Three
// drivers share one candidate engine and differ in frontier shape and
// slot-pick key: Solver explores a bigram-ordered priority frontier,
// SimpleSolver probes depth-first off a stack, and ParallelSolver runs the
// priority loop across a worker pool. SimpleSolver does no bigram scoring, so
// unlike the priority drivers it does not drop successors whose grid
// fillability is zero.
package fill

import (
	"errors"

	"github.com/crossfill/xwords/pkg/dict"
	"github.com/crossfill/xwords/pkg/grid"
	"github.com/crossfill/xwords/pkg/score"
)

// ErrNoFill is returned when the search exhausts its frontier without
// producing a filled grid.
var ErrNoFill = errors.New("no fill found")

// Filler fills a grid so that every slot holds a dictionary word.
type Filler interface {
	Fill(g grid.Grid) (grid.Grid, error)
}

// Progress is handed to an optional progress hook as a search runs. Hooks
// must be safe for concurrent use when installed on the parallel driver.
type Progress struct {
	Candidates uint64
	CacheHits  uint64
	CacheMiss  uint64
}

// progressInterval is how many popped candidates pass between progress calls.
const progressInterval = 10_000

// topology is the per-puzzle geometry, computed once per search and shared
// read-only between workers: the slot list and, for each slot, the set of
// perpendicular slots crossing it.
type topology struct {
	slots  []grid.Slot
	orthos map[grid.Slot]map[grid.Slot]struct{}
}

func newTopology(g grid.Grid) *topology {
	slots := grid.ParseSlots(g)
	index := grid.NewSlotIndex(slots)
	orthos := make(map[grid.Slot]map[grid.Slot]struct{}, len(slots))
	for _, s := range slots {
		crossing := make(map[grid.Slot]struct{})
		for _, o := range index.Orthogonals(s) {
			crossing[o] = struct{}{}
		}
		orthos[s] = crossing
	}
	return &topology{slots: slots, orthos: orthos}
}

// engine is the per-worker search state: the shared topology plus private
// caches and the seen-set reused across viability passes.
type engine struct {
	topo     *topology
	trie     *dict.Trie
	words    *CachedWords
	fillable *CachedFillable
	seen     map[uint64]struct{}
}

func newEngine(topo *topology, trie *dict.Trie) *engine {
	return &engine{
		topo:     topo,
		trie:     trie,
		words:    NewCachedWords(),
		fillable: NewCachedFillable(),
		seen:     make(map[uint64]struct{}, len(topo.slots)),
	}
}

// viable reports whether g can still be completed. Complete entries must be
// dictionary words and must not repeat anywhere in the grid; incomplete
// entries must still admit at least one word. filled is the slot just
// written, which restricts the incomplete-entry checks to the slots actually
// crossing it; pass nil to check an initial grid in full.
func (e *engine) viable(g *grid.Grid, filled *grid.Slot) bool {
	clear(e.seen)
	for _, s := range e.topo.slots {
		v := grid.NewSlotView(g, s)
		if v.HasSpace() {
			if filled != nil {
				if _, crosses := e.topo.orthos[*filled][s]; !crosses {
					continue
				}
			}
			if !e.fillable.Fillable(v, e.trie) {
				return false
			}
			continue
		}
		key := v.Hash()
		if _, dup := e.seen[key]; dup {
			return false
		}
		e.seen[key] = struct{}{}
		if !e.fillable.Fillable(v, e.trie) {
			return false
		}
	}
	return true
}

// pickSlot returns the unfilled slot with the best slot key: shortest, then
// emptiest, then highest minimum bigram. The second result is false when the
// grid has no unfilled slot.
func (e *engine) pickSlot(g *grid.Grid, bigrams *dict.BigramTable) (grid.Slot, bool) {
	var best grid.Slot
	var bestScore score.SlotScore
	found := false
	for _, s := range e.topo.slots {
		v := grid.NewSlotView(g, s)
		if !v.HasSpace() {
			continue
		}
		sc := score.ScoreView(v, bigrams)
		if !found || sc.Better(bestScore) {
			best, bestScore, found = s, sc, true
		}
	}
	return best, found
}

// pickSlotDeep returns the longest, most-filled unfilled slot: the key the
// LIFO driver probes with.
func (e *engine) pickSlotDeep(g *grid.Grid) (grid.Slot, bool) {
	var best grid.Slot
	bestLength, bestSpaces := -1, 0
	found := false
	for _, s := range e.topo.slots {
		v := grid.NewSlotView(g, s)
		spaces := v.SpaceCount()
		if spaces == 0 {
			continue
		}
		if !found || v.Len() > bestLength || (v.Len() == bestLength && spaces < bestSpaces) {
			best, bestLength, bestSpaces, found = s, v.Len(), spaces, true
		}
	}
	return best, found
}

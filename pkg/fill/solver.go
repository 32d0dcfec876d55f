package fill

import (
	"github.com/crossfill/xwords/pkg/dict"
	"github.com/crossfill/xwords/pkg/grid"
	"github.com/crossfill/xwords/pkg/score"
)

// Solver is the single-threaded priority driver. It always expands the
// best-looking grid on the frontier and, within it, the most constrained
// slot.
type Solver struct {
	trie    *dict.Trie
	bigrams *dict.BigramTable

	// OnProgress, when set, is called every progressInterval (10,000)
	// candidates.
	OnProgress func(Progress)
}

// NewSolver returns a priority-frontier filler over the shared indexes.
func NewSolver(trie *dict.Trie, bigrams *dict.BigramTable) *Solver {
	return &Solver{trie: trie, bigrams: bigrams}
}

// Fill searches for a complete fill of initial, returning ErrNoFill when the
// frontier is exhausted.
func (s *Solver) Fill(initial grid.Grid) (grid.Grid, error) {
	topo := newTopology(initial)
	eng := newEngine(topo, s.trie)

	if !eng.viable(&initial, nil) {
		return grid.Grid{}, ErrNoFill
	}
	if initial.Complete() {
		return initial, nil
	}

	front := newFrontier()
	front.push(score.OrderGrid(initial, s.bigrams))

	var candidates uint64
	for {
		g, ok := front.pop()
		if !ok {
			return grid.Grid{}, ErrNoFill
		}
		candidates++
		s.reportProgress(candidates, eng)

		slot, ok := eng.pickSlot(&g, s.bigrams)
		if !ok {
			return g, nil
		}

		view := grid.NewSlotView(&g, slot)
		for _, word := range eng.words.Words(view, s.trie) {
			next := g.WithSlotFilled(slot, word)
			if !eng.viable(&next, &slot) {
				continue
			}
			if next.Complete() {
				return next, nil
			}
			og := score.OrderGrid(next, s.bigrams)
			if og.Fillability == 0 {
				continue
			}
			front.push(og)
		}
	}
}

func (s *Solver) reportProgress(candidates uint64, eng *engine) {
	if s.OnProgress == nil || candidates%progressInterval != 0 {
		return
	}
	hits, misses := eng.words.Stats()
	s.OnProgress(Progress{Candidates: candidates, CacheHits: hits, CacheMiss: misses})
}

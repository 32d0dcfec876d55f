package fill

import (
	"github.com/Zubayear/ryushin/stack"

	"github.com/crossfill/xwords/pkg/dict"
	"github.com/crossfill/xwords/pkg/grid"
)

// SimpleSolver is the LIFO driver: depth-first off a stack, always probing
// the longest, most-filled slot. On grids that admit a solution down the
// first deep probe it beats the priority driver by skipping all ordering
// work; both produce a valid fill when one exists.
type SimpleSolver struct {
	trie *dict.Trie
}

// NewSimpleSolver returns a stack-frontier filler over the shared trie.
func NewSimpleSolver(trie *dict.Trie) *SimpleSolver {
	return &SimpleSolver{trie: trie}
}

// Fill searches for a complete fill of initial, returning ErrNoFill when the
// stack empties.
func (s *SimpleSolver) Fill(initial grid.Grid) (grid.Grid, error) {
	topo := newTopology(initial)
	eng := newEngine(topo, s.trie)

	if !eng.viable(&initial, nil) {
		return grid.Grid{}, ErrNoFill
	}
	if initial.Complete() {
		return initial, nil
	}

	candidates := stack.NewStack[grid.Grid]()
	candidates.Push(initial)

	for !candidates.IsEmpty() {
		g, err := candidates.Pop()
		if err != nil {
			break
		}

		slot, ok := eng.pickSlotDeep(&g)
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
			candidates.Push(next)
		}
	}

	return grid.Grid{}, ErrNoFill
}

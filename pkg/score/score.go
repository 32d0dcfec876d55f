// Package score produces the two ordering keys the fill engine runs on: a
// per-slot key that picks which slot to fill next and a per-grid key that
// orders the search frontier. Both derive from the same bigram table; the
// fillability component is the minimum bigram count over adjacent letter
// pairs, a pessimistic estimate of how many words can still fit.
package score

import (
	"math"

	"github.com/crossfill/xwords/pkg/dict"
	"github.com/crossfill/xwords/pkg/grid"
)

// Unbounded is the fillability of a view or grid with no adjacent letter pair.
const Unbounded = math.MaxUint64

// SlotScore orders unfilled slots. The best slot to fill next is the
// shortest, emptiest, most-common-bigram one: few candidates, high quality.
type SlotScore struct {
	Length      int
	SpaceCount  int
	Fillability uint64
	StartRow    int
	StartCol    int
}

// ScoreView computes the slot key for one slot's current view.
func ScoreView(v grid.SlotView, bigrams *dict.BigramTable) SlotScore {
	fillability := uint64(Unbounded)
	prev := byte(0)
	for i := 0; i < v.Len(); i++ {
		curr := v.At(i)
		if i > 0 && prev != grid.Empty && curr != grid.Empty {
			if count := bigrams.Get(prev, curr); count < fillability {
				fillability = count
			}
		}
		prev = curr
	}
	s := v.Slot()
	return SlotScore{
		Length:      v.Len(),
		SpaceCount:  v.SpaceCount(),
		Fillability: fillability,
		StartRow:    s.StartRow,
		StartCol:    s.StartCol,
	}
}

// Better reports whether s should be filled before o: shorter wins, then more
// spaces, then higher fillability, then lower start column, then lower start
// row.
func (s SlotScore) Better(o SlotScore) bool {
	if s.Length != o.Length {
		return s.Length < o.Length
	}
	if s.SpaceCount != o.SpaceCount {
		return s.SpaceCount > o.SpaceCount
	}
	if s.Fillability != o.Fillability {
		return s.Fillability > o.Fillability
	}
	if s.StartCol != o.StartCol {
		return s.StartCol < o.StartCol
	}
	return s.StartRow < o.StartRow
}

// OrderedGrid wraps a grid with its frontier ordering key.
type OrderedGrid struct {
	Grid        grid.Grid
	SpaceCount  int
	Fillability uint64
}

// OrderGrid computes the frontier key for g.
func OrderGrid(g grid.Grid, bigrams *dict.BigramTable) OrderedGrid {
	return OrderedGrid{
		Grid:        g,
		SpaceCount:  g.SpaceCount(),
		Fillability: ScoreGrid(g, bigrams),
	}
}

// ScoreGrid returns the minimum bigram count over every pair of horizontally
// or vertically adjacent letter cells. Pairs touching a block or a space do
// not constrain the grid and are skipped; a grid with no letter pair scores
// Unbounded.
func ScoreGrid(g grid.Grid, bigrams *dict.BigramTable) uint64 {
	result := uint64(Unbounded)
	for row := 0; row < g.Height(); row++ {
		for col := 1; col < g.Width(); col++ {
			result = minPair(result, g.Cell(row, col-1), g.Cell(row, col), bigrams)
		}
	}
	for row := 1; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			result = minPair(result, g.Cell(row-1, col), g.Cell(row, col), bigrams)
		}
	}
	return result
}

func minPair(current uint64, prev, curr byte, bigrams *dict.BigramTable) uint64 {
	if prev == grid.Empty || curr == grid.Empty || prev == grid.Block || curr == grid.Block {
		return current
	}
	if count := bigrams.Get(prev, curr); count < current {
		return count
	}
	return current
}

// Better reports whether a should be explored before b: fewer spaces wins,
// then higher fillability, then lexicographically smaller contents.
func (a OrderedGrid) Better(b OrderedGrid) bool {
	if a.SpaceCount != b.SpaceCount {
		return a.SpaceCount < b.SpaceCount
	}
	if a.Fillability != b.Fillability {
		return a.Fillability > b.Fillability
	}
	return a.Grid.Contents() < b.Grid.Contents()
}

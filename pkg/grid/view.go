package grid

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// SlotView is a lazy, cloneable, restartable sequence of the characters
// currently occupying a slot in a specific grid. It borrows both the grid and
// the slot and never mutates either; a fresh view costs nothing beyond the
// struct itself.
type SlotView struct {
	grid  *Grid
	slot  Slot
	index int
}

// NewSlotView returns a view over slot's cells in g.
func NewSlotView(g *Grid, slot Slot) SlotView {
	return SlotView{grid: g, slot: slot}
}

// Slot returns the slot this view reads.
func (v SlotView) Slot() Slot { return v.slot }

// Len returns the number of characters in the view.
func (v SlotView) Len() int { return v.slot.Length }

// At returns the i-th character of the view without advancing it.
func (v SlotView) At(i int) byte {
	return v.grid.contents[v.slot.cellIndex(i, v.grid.width)]
}

// Next returns the next character, advancing the view. The second result is
// false once the view is exhausted.
func (v *SlotView) Next() (byte, bool) {
	if v.index >= v.slot.Length {
		return 0, false
	}
	c := v.At(v.index)
	v.index++
	return c, true
}

// Reset rewinds the view to its first character.
func (v *SlotView) Reset() { v.index = 0 }

// Clone returns a copy of the view at its current position.
func (v SlotView) Clone() SlotView { return v }

// HasSpace reports whether any cell of the view is empty.
func (v SlotView) HasSpace() bool {
	for i := 0; i < v.slot.Length; i++ {
		if v.At(i) == Empty {
			return true
		}
	}
	return false
}

// SpaceCount returns the number of empty cells in the view.
func (v SlotView) SpaceCount() int {
	count := 0
	for i := 0; i < v.slot.Length; i++ {
		if v.At(i) == Empty {
			count++
		}
	}
	return count
}

// AppendTo appends the view's characters to dst and returns the result.
func (v SlotView) AppendTo(dst []byte) []byte {
	for i := 0; i < v.slot.Length; i++ {
		dst = append(dst, v.At(i))
	}
	return dst
}

// Hash returns a 64-bit hash of the view's character sequence. Two views with
// equal characters hash equally regardless of which grid or slot they read.
func (v SlotView) Hash() uint64 {
	var buf [32]byte
	return xxhash.Sum64(v.AppendTo(buf[:0]))
}

// Equal reports character-wise equality with o over the shorter view.
func (v SlotView) Equal(o SlotView) bool {
	n := v.slot.Length
	if o.slot.Length < n {
		n = o.slot.Length
	}
	for i := 0; i < n; i++ {
		if v.At(i) != o.At(i) {
			return false
		}
	}
	return true
}

// String materializes the view's characters.
func (v SlotView) String() string {
	var b strings.Builder
	b.Grow(v.slot.Length)
	for i := 0; i < v.slot.Length; i++ {
		b.WriteByte(v.At(i))
	}
	return b.String()
}

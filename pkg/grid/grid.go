// Package grid holds the crossword grid model: the immutable Grid value,
// the word slots cut by its block pattern, and lazy views over slot contents.
package grid

import (
	"fmt"
	"math"
	"strings"
)

// Cell kinds. Everything else in a grid is an uppercase ASCII letter.
const (
	Empty byte = ' '
	Block byte = '*'
)

// ShapeError is returned when grid text does not match the requested dimensions.
type ShapeError struct {
	Cells  int
	Width  int
	Height int
}

func (e *ShapeError) Error() string {
	if e.Width == 0 {
		return fmt.Sprintf("grid shape: %d cells is not a perfect square", e.Cells)
	}
	return fmt.Sprintf("grid shape: %d cells does not fit %dx%d", e.Cells, e.Width, e.Height)
}

// CharacterError is returned when grid text contains a cell that is not a
// space, an asterisk, or an uppercase ASCII letter.
type CharacterError struct {
	Char  rune
	Index int
}

func (e *CharacterError) Error() string {
	return fmt.Sprintf("grid character: invalid cell %q at index %d", e.Char, e.Index)
}

// Grid is a rectangular crossword grid. Cells are stored in row-major order;
// each cell is Empty, Block, or an uppercase letter. A Grid is immutable once
// constructed: filling a slot produces a fresh value. Grids are comparable
// with == and usable as map keys.
type Grid struct {
	contents string
	width    int
	height   int
}

// cleanContents strips newlines and validates the remaining cells.
func cleanContents(text string) (string, error) {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\n':
		case r == rune(Empty) || r == rune(Block) || (r >= 'A' && r <= 'Z'):
			b.WriteByte(byte(r))
		default:
			return "", &CharacterError{Char: r, Index: b.Len()}
		}
	}
	return b.String(), nil
}

// Square parses grid text whose cell count is a perfect square.
// Newlines are ignored.
func Square(text string) (Grid, error) {
	cells, err := cleanContents(text)
	if err != nil {
		return Grid{}, err
	}
	width := int(math.Sqrt(float64(len(cells))))
	if width*width != len(cells) {
		return Grid{}, &ShapeError{Cells: len(cells)}
	}
	return Grid{contents: cells, width: width, height: width}, nil
}

// Rectangle parses grid text into a width x height grid. Newlines are ignored.
func Rectangle(text string, width, height int) (Grid, error) {
	cells, err := cleanContents(text)
	if err != nil {
		return Grid{}, err
	}
	if len(cells) != width*height {
		return Grid{}, &ShapeError{Cells: len(cells), Width: width, Height: height}
	}
	return Grid{contents: cells, width: width, height: height}, nil
}

// Width returns the number of columns.
func (g Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g Grid) Height() int { return g.height }

// Contents returns the cells in row-major order, without newlines.
func (g Grid) Contents() string { return g.contents }

// Cell returns the cell at (row, col).
func (g Grid) Cell(row, col int) byte {
	return g.contents[row*g.width+col]
}

// SpaceCount returns the number of empty cells.
func (g Grid) SpaceCount() int {
	return strings.Count(g.contents, string(Empty))
}

// Complete reports whether the grid has no empty cells.
func (g Grid) Complete() bool {
	return strings.IndexByte(g.contents, Empty) < 0
}

// WithSlotFilled returns a new grid equal to g except that the cells covered
// by slot hold word's characters in order. Writes are unconditional; callers
// guarantee compatibility with pre-placed letters by sourcing word from the
// slot's current view. len(word) must equal slot.Length.
func (g Grid) WithSlotFilled(slot Slot, word string) Grid {
	if len(word) != slot.Length {
		panic(fmt.Sprintf("grid: word %q does not fit slot of length %d", word, slot.Length))
	}
	cells := []byte(g.contents)
	for i := 0; i < slot.Length; i++ {
		cells[slot.cellIndex(i, g.width)] = word[i]
	}
	return Grid{contents: string(cells), width: g.width, height: g.height}
}

// String renders the grid row by row, one character per cell.
func (g Grid) String() string {
	var b strings.Builder
	b.Grow(len(g.contents) + g.height)
	for row := 0; row < g.height; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(g.contents[row*g.width : (row+1)*g.width])
	}
	return b.String()
}

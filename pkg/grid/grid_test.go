package grid

import (
	"errors"
	"testing"
)

func TestSquare(t *testing.T) {
	g, err := Square("ABC\nDEF\nGHI\n")
	if err != nil {
		t.Fatalf("Square() error = %v", err)
	}
	if g.Width() != 3 || g.Height() != 3 {
		t.Errorf("Square() dims = %dx%d, want 3x3", g.Width(), g.Height())
	}
	if g.Contents() != "ABCDEFGHI" {
		t.Errorf("Square() contents = %q, want %q", g.Contents(), "ABCDEFGHI")
	}
}

func TestSquareNotSquare(t *testing.T) {
	_, err := Square("ABCDE")
	var shapeErr *ShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("Square() error = %v, want ShapeError", err)
	}
}

func TestSquareInvalidCharacter(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"lowercase", "abcdefghi"},
		{"digit", "ABCDEFGH1"},
		{"punctuation", "ABCDEFGH."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Square(tt.text)
			var charErr *CharacterError
			if !errors.As(err, &charErr) {
				t.Fatalf("Square(%q) error = %v, want CharacterError", tt.text, err)
			}
		})
	}
}

func TestRectangle(t *testing.T) {
	g, err := Rectangle("ABCDEF", 3, 2)
	if err != nil {
		t.Fatalf("Rectangle() error = %v", err)
	}
	if g.Width() != 3 || g.Height() != 2 {
		t.Errorf("Rectangle() dims = %dx%d, want 3x2", g.Width(), g.Height())
	}
	if g.Cell(1, 2) != 'F' {
		t.Errorf("Cell(1,2) = %c, want F", g.Cell(1, 2))
	}

	if _, err := Rectangle("ABCDEF", 4, 2); err == nil {
		t.Error("Rectangle() with wrong dims, want ShapeError")
	}
}

func TestWithSlotFilled(t *testing.T) {
	g, _ := Square("ABCDEFGHI")

	across := g.WithSlotFilled(Slot{StartRow: 0, StartCol: 0, Length: 3, Direction: Across}, "CAT")
	if across.Contents() != "CATDEFGHI" {
		t.Errorf("across fill = %q, want %q", across.Contents(), "CATDEFGHI")
	}

	down := g.WithSlotFilled(Slot{StartRow: 0, StartCol: 0, Length: 3, Direction: Down}, "CAT")
	if down.Contents() != "CBCAEFTHI" {
		t.Errorf("down fill = %q, want %q", down.Contents(), "CBCAEFTHI")
	}

	// The receiver is untouched.
	if g.Contents() != "ABCDEFGHI" {
		t.Errorf("receiver mutated to %q", g.Contents())
	}
}

func TestWithSlotFilledOnlyTouchesSlot(t *testing.T) {
	g, _ := Square("   \n   \n   ")
	slot := Slot{StartRow: 1, StartCol: 0, Length: 3, Direction: Across}
	next := g.WithSlotFilled(slot, "CAT")

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			got := next.Cell(row, col)
			if row == 1 {
				if got != "CAT"[col] {
					t.Errorf("Cell(%d,%d) = %c, want %c", row, col, got, "CAT"[col])
				}
			} else if got != g.Cell(row, col) {
				t.Errorf("Cell(%d,%d) = %c, changed outside slot", row, col, got)
			}
		}
	}
}

func TestWithSlotFilledIdempotent(t *testing.T) {
	g, _ := Square("CATDEFGHI")
	slot := Slot{StartRow: 0, StartCol: 0, Length: 3, Direction: Across}
	if got := g.WithSlotFilled(slot, "CAT"); got != g {
		t.Errorf("refilling a filled slot changed the grid: %q", got.Contents())
	}
}

func TestWithSlotFilledLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("WithSlotFilled with mismatched length did not panic")
		}
	}()
	g, _ := Square("ABCDEFGHI")
	g.WithSlotFilled(Slot{Length: 3, Direction: Across}, "QUAD")
}

func TestStringRoundTrip(t *testing.T) {
	g, err := Square("AB*\n* C\nDE \n")
	if err != nil {
		t.Fatalf("Square() error = %v", err)
	}
	reparsed, err := Square(g.String())
	if err != nil {
		t.Fatalf("reparse error = %v", err)
	}
	if reparsed != g {
		t.Errorf("parse -> render -> parse changed the grid: %q", reparsed.Contents())
	}
}

func TestGridEquality(t *testing.T) {
	a, _ := Square("AB*C")
	b, _ := Square("AB\n*C")
	if a != b {
		t.Error("grids with equal cells and dims compare unequal")
	}
	set := map[Grid]struct{}{a: {}}
	if _, ok := set[b]; !ok {
		t.Error("equal grid not found as map key")
	}
}

func TestSpaceCountAndComplete(t *testing.T) {
	g, _ := Square("A * ")
	if got := g.SpaceCount(); got != 2 {
		t.Errorf("SpaceCount() = %d, want 2", got)
	}
	if g.Complete() {
		t.Error("Complete() = true for grid with spaces")
	}
	full, _ := Square("AB*C")
	if !full.Complete() {
		t.Error("Complete() = false for grid without spaces")
	}
}

package grid

import "testing"

func TestParseSlotsOpenSquare(t *testing.T) {
	g, _ := Square("ABC\nDEF\nGHI")
	slots := ParseSlots(g)

	if len(slots) != 6 {
		t.Fatalf("ParseSlots() returned %d slots, want 6", len(slots))
	}

	want := []Slot{
		{StartRow: 0, StartCol: 0, Length: 3, Direction: Across},
		{StartRow: 1, StartCol: 0, Length: 3, Direction: Across},
		{StartRow: 2, StartCol: 0, Length: 3, Direction: Across},
		{StartRow: 0, StartCol: 0, Length: 3, Direction: Down},
		{StartRow: 0, StartCol: 1, Length: 3, Direction: Down},
		{StartRow: 0, StartCol: 2, Length: 3, Direction: Down},
	}
	for i, w := range want {
		if slots[i] != w {
			t.Errorf("slots[%d] = %+v, want %+v", i, slots[i], w)
		}
	}
}

func TestParseSlotsSkipsShortRuns(t *testing.T) {
	// Center block cuts row 1 and column 1 into length-1 runs.
	g, _ := Square("   \n * \n   ")
	slots := ParseSlots(g)

	if len(slots) != 4 {
		t.Fatalf("ParseSlots() returned %d slots, want 4", len(slots))
	}
	for _, s := range slots {
		if s.Length < 2 {
			t.Errorf("slot %+v shorter than 2", s)
		}
	}
}

func TestParseSlotsAllBlocked(t *testing.T) {
	g, _ := Square("A**B")
	if slots := ParseSlots(g); len(slots) != 0 {
		t.Errorf("ParseSlots() = %v, want none", slots)
	}
}

func TestParseSlotsBigGrid(t *testing.T) {
	text := "" +
		"    *    *     " +
		"    *    *     " +
		"         *     " +
		"   *   *   *   " +
		"**    *        " +
		"      *     ***" +
		"     *    *    " +
		"   *       *   " +
		"    *    *     " +
		"***     *      " +
		"        *    **" +
		"   *   *   *   " +
		"     *         " +
		"     *    *    " +
		"     *    *    "
	g, err := Square(text)
	if err != nil {
		t.Fatalf("Square() error = %v", err)
	}

	slots := ParseSlots(g)
	if len(slots) != 80 {
		t.Fatalf("ParseSlots() returned %d slots, want 80", len(slots))
	}
	if slots[0] != (Slot{StartRow: 0, StartCol: 0, Length: 4, Direction: Across}) {
		t.Errorf("slots[0] = %+v", slots[0])
	}
	if slots[1] != (Slot{StartRow: 0, StartCol: 5, Length: 4, Direction: Across}) {
		t.Errorf("slots[1] = %+v", slots[1])
	}
	if slots[41] != (Slot{StartRow: 0, StartCol: 0, Length: 4, Direction: Down}) {
		t.Errorf("slots[41] = %+v", slots[41])
	}
}

// Every slot must be flanked by blocks or the grid edge and contain no block.
func TestParseSlotsBoundaryInvariant(t *testing.T) {
	text := "" +
		"   *   " +
		"   *   " +
		"       " +
		"*     *" +
		"       " +
		"   *   " +
		"   *   "
	g, err := Square(text)
	if err != nil {
		t.Fatalf("Square() error = %v", err)
	}

	for _, s := range ParseSlots(g) {
		for i := 0; i < s.Length; i++ {
			row, col := s.StartRow, s.StartCol
			if s.Direction == Across {
				col += i
			} else {
				row += i
			}
			if g.Cell(row, col) == Block {
				t.Errorf("slot %+v contains block at (%d,%d)", s, row, col)
			}
		}

		if s.Direction == Across {
			if s.StartCol > 0 && g.Cell(s.StartRow, s.StartCol-1) != Block {
				t.Errorf("slot %+v not preceded by block", s)
			}
			if end := s.StartCol + s.Length; end < g.Width() && g.Cell(s.StartRow, end) != Block {
				t.Errorf("slot %+v not followed by block", s)
			}
		} else {
			if s.StartRow > 0 && g.Cell(s.StartRow-1, s.StartCol) != Block {
				t.Errorf("slot %+v not preceded by block", s)
			}
			if end := s.StartRow + s.Length; end < g.Height() && g.Cell(end, s.StartCol) != Block {
				t.Errorf("slot %+v not followed by block", s)
			}
		}
	}
}

func TestSlotIndexAt(t *testing.T) {
	g, _ := Square("ABC\nDEF\nGHI")
	ix := NewSlotIndex(ParseSlots(g))

	s, ok := ix.At(Across, 1, 2)
	if !ok || s != (Slot{StartRow: 1, StartCol: 0, Length: 3, Direction: Across}) {
		t.Errorf("At(Across,1,2) = %+v, %v", s, ok)
	}
	if _, ok := ix.At(Across, 3, 0); ok {
		t.Error("At() outside the grid reported a slot")
	}
}

func TestOrthogonals(t *testing.T) {
	g, _ := Square("ABC\nDEF\nGHI")
	slots := ParseSlots(g)
	ix := NewSlotIndex(slots)

	row0 := Slot{StartRow: 0, StartCol: 0, Length: 3, Direction: Across}
	orthos := ix.Orthogonals(row0)
	if len(orthos) != 3 {
		t.Fatalf("Orthogonals() returned %d slots, want 3", len(orthos))
	}
	for i, o := range orthos {
		if o.Direction != Down || o.StartCol != i {
			t.Errorf("orthos[%d] = %+v", i, o)
		}
	}
}

func TestOrthogonalsWithGaps(t *testing.T) {
	// Column 1 is all blocks: every row splits into length-1 runs, so no
	// across slot crosses the down slots.
	g, _ := Square("A*C\nD*F\nG*I")
	slots := ParseSlots(g)
	ix := NewSlotIndex(slots)

	col0 := Slot{StartRow: 0, StartCol: 0, Length: 3, Direction: Down}
	if orthos := ix.Orthogonals(col0); len(orthos) != 0 {
		t.Errorf("Orthogonals() = %v, want none", orthos)
	}
}

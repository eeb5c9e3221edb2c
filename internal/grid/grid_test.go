package grid

import (
	"errors"
	"slices"
	"testing"
)

func TestNewRejectsNonPositiveDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-3, 4}, {4, -1}} {
		if _, err := New(dims[0], dims[1]); !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("New(%d,%d) err=%v, want ErrInvalidSize", dims[0], dims[1], err)
		}
	}
	g, err := New(1, 1)
	if err != nil {
		t.Fatalf("1x1 grid should be legal: %v", err)
	}
	if g.Alive() != 0 {
		t.Fatal("new grid must start dead")
	}
}

func TestWrapUsesTrueModulo(t *testing.T) {
	g, _ := New(3, 5)
	cases := []struct{ r, c, wr, wc int }{
		{0, 0, 0, 0},
		{-1, -1, 2, 4},
		{3, 5, 0, 0},
		{-4, -6, 2, 4},
		{7, 11, 1, 1},
	}
	for _, tc := range cases {
		wr, wc := g.Wrap(tc.r, tc.c)
		if wr != tc.wr || wc != tc.wc {
			t.Fatalf("Wrap(%d,%d)=(%d,%d), want (%d,%d)", tc.r, tc.c, wr, wc, tc.wr, tc.wc)
		}
	}
}

func TestWithCopiesAndLeavesSourceUntouched(t *testing.T) {
	g, _ := New(4, 4)
	h := g.With(1, 2, Alive)
	if g.IsAlive(1, 2) {
		t.Fatal("With must not modify the receiver")
	}
	if !h.IsAlive(1, 2) || h.Alive() != 1 {
		t.Fatal("With must set exactly the requested cell")
	}
	back := h.Toggle(1, 2)
	if !back.Equal(g) {
		t.Fatal("toggling twice should restore the original")
	}
	if !g.With(-1, -1, Alive).IsAlive(3, 3) {
		t.Fatal("With should wrap coordinates")
	}
}

func TestCellsReturnsCopy(t *testing.T) {
	g, _ := New(2, 2)
	g = g.With(0, 0, Alive)
	cells := g.Cells()
	cells[0] = Dead
	if !g.IsAlive(0, 0) {
		t.Fatal("mutating Cells() result must not alias the grid")
	}
	buf := make([]CellState, 0, 16)
	got := g.CopyCells(buf)
	if !slices.Equal(got, []CellState{Alive, Dead, Dead, Dead}) {
		t.Fatalf("CopyCells=%v", got)
	}
}

func TestFromCellsValidatesLength(t *testing.T) {
	if _, err := FromCells(2, 2, []CellState{Alive}); !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("err=%v, want ErrSizeMismatch", err)
	}
	g, err := FromCells(1, 3, []CellState{Alive, Dead, 7})
	if err != nil {
		t.Fatal(err)
	}
	if g.At(0, 2) != Alive {
		t.Fatal("non-zero cell values normalize to Alive")
	}
}

func TestParseAndString(t *testing.T) {
	src := "!Name: Glider\n.O.\n..O\nOOO\n"
	g, err := ParseString(src)
	if err != nil {
		t.Fatal(err)
	}
	if g.Rows() != 3 || g.Cols() != 3 || g.Alive() != 5 {
		t.Fatalf("parsed %dx%d with %d alive", g.Rows(), g.Cols(), g.Alive())
	}
	if got, want := g.String(), ".O.\n..O\nOOO\n"; got != want {
		t.Fatalf("String()=%q, want %q", got, want)
	}

	ragged, err := ParseString("O\n..O\n")
	if err != nil {
		t.Fatal(err)
	}
	if ragged.Cols() != 3 || ragged.At(0, 2) != Dead {
		t.Fatal("short rows should pad with dead cells")
	}

	if _, err := ParseString("O.x\n"); !errors.Is(err, ErrParse) {
		t.Fatalf("err=%v, want ErrParse", err)
	}
	if _, err := ParseString("!only comments\n\n"); !errors.Is(err, ErrParse) {
		t.Fatalf("err=%v, want ErrParse", err)
	}
}

func TestStampWraps(t *testing.T) {
	dst, _ := New(4, 4)
	pat, _ := ParseString("OO\n")
	out := Stamp(dst, pat, 3, 3)
	if !out.IsAlive(3, 3) || !out.IsAlive(3, 0) || out.Alive() != 2 {
		t.Fatalf("unexpected stamp:\n%s", out)
	}
	if dst.Alive() != 0 {
		t.Fatal("Stamp must not modify dst")
	}
	centered := StampCentered(dst, pat)
	if !centered.IsAlive(1, 1) || !centered.IsAlive(1, 2) {
		t.Fatalf("unexpected centered stamp:\n%s", centered)
	}
}

package render

import (
	"image/color"
	"slices"
	"testing"

	"life-engine/internal/grid"
)

func TestFillCellsRGBA(t *testing.T) {
	cells := []grid.CellState{grid.Alive, grid.Dead}
	buf := make([]byte, 8)
	fillCellsRGBA(buf, cells, color.RGBA{R: 10, G: 20, B: 30, A: 255}, color.Black)
	want := []byte{10, 20, 30, 255, 0, 0, 0, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("buf=%v, want %v", buf, want)
	}
}

func TestCellAt(t *testing.T) {
	cases := []struct {
		px, py, scale int
		r, c          int
		ok            bool
	}{
		{0, 0, 3, 0, 0, true},
		{8, 5, 3, 1, 2, true},
		{14, 2, 3, 0, 4, true},
		{15, 2, 3, 0, 0, false},
		{-1, 0, 3, 0, 0, false},
		{4, 4, 0, 4, 4, true},
	}
	for _, tc := range cases {
		r, c, ok := CellAt(tc.px, tc.py, tc.scale, 5, 5)
		if r != tc.r || c != tc.c || ok != tc.ok {
			t.Fatalf("CellAt(%d,%d,%d)=(%d,%d,%v), want (%d,%d,%v)", tc.px, tc.py, tc.scale, r, c, ok, tc.r, tc.c, tc.ok)
		}
	}
}

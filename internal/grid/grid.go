package grid

import (
	"errors"
	"fmt"
	"strings"
)

// CellState is the state of a single cell.
type CellState uint8

const (
	Dead CellState = iota
	Alive
)

// String returns "dead" or "alive".
func (s CellState) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}

var (
	// ErrInvalidSize reports non-positive grid dimensions.
	ErrInvalidSize = errors.New("grid: dimensions must be positive")
	// ErrSizeMismatch reports a cell slice whose length does not match rows*cols.
	ErrSizeMismatch = errors.New("grid: cell count does not match dimensions")
)

// Grid stores cell states in row-major order. A Grid never changes after it
// is built; every modifying operation returns a new Grid, so values can be
// shared freely between goroutines.
type Grid struct {
	rows, cols int
	cells      []CellState
}

// New allocates an all-dead grid with the given dimensions.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, rows, cols)
	}
	return &Grid{rows: rows, cols: cols, cells: make([]CellState, rows*cols)}, nil
}

// FromCells builds a grid from a copy of the provided row-major cells.
func FromCells(rows, cols int, cells []CellState) (*Grid, error) {
	g, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(cells) != rows*cols {
		return nil, fmt.Errorf("%w: got %d cells for %dx%d", ErrSizeMismatch, len(cells), rows, cols)
	}
	for i, c := range cells {
		if c != Dead {
			g.cells[i] = Alive
		}
	}
	return g, nil
}

// Generate builds a grid by evaluating fn once per cell in row-major order.
func Generate(rows, cols int, fn func(r, c int) CellState) (*Grid, error) {
	g, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	i := 0
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if fn(r, c) != Dead {
				g.cells[i] = Alive
			}
			i++
		}
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Wrap maps logical coordinates onto the torus using true modulo on both axes.
func (g *Grid) Wrap(r, c int) (int, int) {
	r = (r%g.rows + g.rows) % g.rows
	c = (c%g.cols + g.cols) % g.cols
	return r, c
}

// At returns the state at (r, c). Coordinates wrap toroidally.
func (g *Grid) At(r, c int) CellState {
	r, c = g.Wrap(r, c)
	return g.cells[r*g.cols+c]
}

// IsAlive reports whether the cell at (r, c) is alive.
func (g *Grid) IsAlive(r, c int) bool { return g.At(r, c) == Alive }

// With returns a copy of g with the cell at (r, c) set to state.
func (g *Grid) With(r, c int, state CellState) *Grid {
	out := g.Clone()
	r, c = g.Wrap(r, c)
	if state != Dead {
		state = Alive
	}
	out.cells[r*g.cols+c] = state
	return out
}

// Toggle returns a copy of g with the cell at (r, c) flipped.
func (g *Grid) Toggle(r, c int) *Grid {
	if g.IsAlive(r, c) {
		return g.With(r, c, Dead)
	}
	return g.With(r, c, Alive)
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	cells := make([]CellState, len(g.cells))
	copy(cells, g.cells)
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// Cells returns a copy of the row-major cell states.
func (g *Grid) Cells() []CellState {
	return g.CopyCells(nil)
}

// CopyCells copies the cell states into dst, growing it when needed, and
// returns the filled slice.
func (g *Grid) CopyCells(dst []CellState) []CellState {
	if cap(dst) < len(g.cells) {
		dst = make([]CellState, len(g.cells))
	}
	dst = dst[:len(g.cells)]
	copy(dst, g.cells)
	return dst
}

// Alive counts live cells.
func (g *Grid) Alive() int {
	n := 0
	for _, c := range g.cells {
		if c == Alive {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid in plaintext form, one row per line.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.cols + 1) * g.rows)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r*g.cols+c] == Alive {
				b.WriteByte('O')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Package life implements the Game of Life transition on toroidal grids.
package life

import (
	"fmt"

	"life-engine/internal/grid"
)

// Neighbors counts live cells in the Moore neighborhood of (r, c), excluding
// the cell itself. On narrow grids the wrapped offsets may land on the same
// cell more than once; each landing counts.
func Neighbors(g *grid.Grid, r, c int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if g.IsAlive(r+dr, c+dc) {
				n++
			}
		}
	}
	return n
}

// Next returns the state a cell takes given its current state and live
// neighbor count.
func Next(current grid.CellState, neighbors int) grid.CellState {
	if neighbors == 3 {
		return grid.Alive
	}
	if neighbors < 2 || neighbors > 3 {
		return grid.Dead
	}
	return current
}

// Step computes the next generation into a freshly allocated grid. The input
// is only read.
func Step(g *grid.Grid) *grid.Grid {
	next, err := grid.Generate(g.Rows(), g.Cols(), func(r, c int) grid.CellState {
		return Next(g.At(r, c), Neighbors(g, r, c))
	})
	if err != nil {
		panic(fmt.Sprintf("life: step over malformed grid: %v", err))
	}
	return next
}

// StepN applies Step n times.
func StepN(g *grid.Grid, n int) *grid.Grid {
	for i := 0; i < n; i++ {
		g = Step(g)
	}
	return g
}

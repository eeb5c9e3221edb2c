package patterns

import (
	"math/rand/v2"

	"life-engine/internal/grid"
)

// RNG is a thin wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// Fill returns a grid where each cell is alive with probability density.
func (r *RNG) Fill(rows, cols int, density float64) (*grid.Grid, error) {
	return grid.Generate(rows, cols, func(int, int) grid.CellState {
		if r.Chance(density) {
			return grid.Alive
		}
		return grid.Dead
	})
}

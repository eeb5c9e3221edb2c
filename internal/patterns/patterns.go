// Package patterns builds initial grids by name.
package patterns

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"life-engine/internal/grid"
)

// ErrUnknown reports a pattern name with no registered seeder.
var ErrUnknown = errors.New("patterns: unknown pattern")

// Options carries the inputs a Seeder may use.
type Options struct {
	Rows    int
	Cols    int
	Seed    int64
	Density float64
}

// Seeder builds a grid of the requested size.
type Seeder func(opts Options) (*grid.Grid, error)

var seeders = map[string]Seeder{}

// Register adds a seeder under the provided name.
func Register(name string, s Seeder) {
	if name == "" || s == nil {
		return
	}
	seeders[name] = s
}

// Names lists registered pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(seeders))
	for name := range seeders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build looks up name and runs its seeder.
func Build(name string, opts Options) (*grid.Grid, error) {
	s, ok := seeders[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknown, name)
	}
	return s(opts)
}

// FromFile loads a plaintext pattern and centers it on a rows x cols grid.
// Non-positive dimensions size the grid to the pattern itself.
func FromFile(path string, rows, cols int) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("patterns: open %s: %w", path, err)
	}
	defer f.Close()

	pat, err := grid.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("patterns: %s: %w", path, err)
	}
	if rows <= 0 && cols <= 0 {
		return pat, nil
	}
	return centered(Options{Rows: rows, Cols: cols}, pat)
}

func centered(opts Options, pat *grid.Grid) (*grid.Grid, error) {
	g, err := grid.New(opts.Rows, opts.Cols)
	if err != nil {
		return nil, err
	}
	return grid.StampCentered(g, pat), nil
}

func plaintext(src string) Seeder {
	pat, err := grid.ParseString(src)
	if err != nil {
		panic(err)
	}
	return func(opts Options) (*grid.Grid, error) { return centered(opts, pat) }
}

func init() {
	Register("empty", func(opts Options) (*grid.Grid, error) {
		return grid.New(opts.Rows, opts.Cols)
	})
	Register("random", func(opts Options) (*grid.Grid, error) {
		density := opts.Density
		if density <= 0 || density > 1 {
			density = 0.5
		}
		return NewRNG(opts.Seed).Fill(opts.Rows, opts.Cols, density)
	})
	Register("blinker", plaintext("OOO\n"))
	Register("block", plaintext("OO\nOO\n"))
	Register("glider", plaintext(".O.\n..O\nOOO\n"))
	Register("rpentomino", plaintext(".OO\nOO.\n.O.\n"))
	Register("gosper", plaintext(`........................O...........
......................O.O...........
............OO......OO............OO
...........O...O....OO............OO
OO........O.....O...OO..............
OO........O...O.OO....O.O...........
..........O.....O.......O...........
...........O...O....................
............OO......................
`))
}

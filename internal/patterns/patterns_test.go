package patterns

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"life-engine/internal/grid"
)

func TestBlinkerCentersOnFiveByFive(t *testing.T) {
	g, err := Build("blinker", Options{Rows: 5, Cols: 5})
	if err != nil {
		t.Fatal(err)
	}
	for _, rc := range [][2]int{{2, 1}, {2, 2}, {2, 3}} {
		if !g.IsAlive(rc[0], rc[1]) {
			t.Fatalf("expected (%d,%d) alive:\n%s", rc[0], rc[1], g)
		}
	}
	if g.Alive() != 3 {
		t.Fatalf("blinker has %d live cells", g.Alive())
	}
}

func TestBuildUnknownAndInvalidSize(t *testing.T) {
	if _, err := Build("nope", Options{Rows: 3, Cols: 3}); !errors.Is(err, ErrUnknown) {
		t.Fatalf("err=%v, want ErrUnknown", err)
	}
	if _, err := Build("empty", Options{Rows: 0, Cols: 3}); !errors.Is(err, grid.ErrInvalidSize) {
		t.Fatalf("err=%v, want ErrInvalidSize", err)
	}
}

func TestRandomDeterministic(t *testing.T) {
	opts := Options{Rows: 16, Cols: 24, Seed: 42, Density: 0.3}
	a, err := Build("random", opts)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := Build("random", opts)
	if !a.Equal(b) {
		t.Fatal("same seed must produce the same grid")
	}
	opts.Seed = 43
	c, _ := Build("random", opts)
	if a.Equal(c) {
		t.Fatal("different seeds should produce different grids")
	}
	if a.Alive() == 0 || a.Alive() == 16*24 {
		t.Fatalf("density 0.3 produced %d live cells", a.Alive())
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if !slices.IsSorted(names) {
		t.Fatalf("names not sorted: %v", names)
	}
	for _, want := range []string{"blinker", "block", "empty", "glider", "random"} {
		if !slices.Contains(names, want) {
			t.Fatalf("missing %q in %v", want, names)
		}
	}
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toad.cells")
	if err := os.WriteFile(path, []byte("!Name: Toad\n.OOO\nOOO.\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	pat, err := FromFile(path, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if pat.Rows() != 2 || pat.Cols() != 4 || pat.Alive() != 6 {
		t.Fatalf("unexpected pattern:\n%s", pat)
	}
	g, err := FromFile(path, 6, 6)
	if err != nil {
		t.Fatal(err)
	}
	if g.Rows() != 6 || g.Alive() != 6 || !g.IsAlive(2, 2) {
		t.Fatalf("unexpected centered pattern:\n%s", g)
	}
	if _, err := FromFile(filepath.Join(t.TempDir(), "missing"), 4, 4); err == nil {
		t.Fatal("missing file should fail")
	}
}

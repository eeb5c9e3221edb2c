package grid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrParse reports malformed plaintext pattern input.
var ErrParse = errors.New("grid: malformed pattern")

// Parse reads a plaintext (.cells) pattern. Lines starting with '!' are
// comments, 'O' or '*' marks a live cell and '.' a dead one. Short rows are
// padded with dead cells to the widest row.
func Parse(r io.Reader) (*Grid, error) {
	var lines []string
	width := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if strings.HasPrefix(line, "!") {
			continue
		}
		lines = append(lines, line)
		if len(line) > width {
			width = len(line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read pattern: %w", err)
	}
	// Trailing blank lines do not contribute rows.
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 || width == 0 {
		return nil, fmt.Errorf("%w: empty pattern", ErrParse)
	}

	g, err := New(len(lines), width)
	if err != nil {
		return nil, err
	}
	for r, line := range lines {
		for c, ch := range []byte(line) {
			switch ch {
			case 'O', 'o', '*':
				g.cells[r*width+c] = Alive
			case '.':
			default:
				return nil, fmt.Errorf("%w: unexpected %q at line %d col %d", ErrParse, ch, r+1, c+1)
			}
		}
	}
	return g, nil
}

// ParseString is Parse over a string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// Stamp returns a copy of dst with every live cell of pattern written at the
// offset (r0, c0). Placement wraps toroidally.
func Stamp(dst, pattern *Grid, r0, c0 int) *Grid {
	out := dst.Clone()
	for r := 0; r < pattern.rows; r++ {
		for c := 0; c < pattern.cols; c++ {
			if pattern.cells[r*pattern.cols+c] != Alive {
				continue
			}
			wr, wc := out.Wrap(r0+r, c0+c)
			out.cells[wr*out.cols+wc] = Alive
		}
	}
	return out
}

// StampCentered stamps pattern in the middle of dst.
func StampCentered(dst, pattern *Grid) *Grid {
	return Stamp(dst, pattern, (dst.rows-pattern.rows)/2, (dst.cols-pattern.cols)/2)
}

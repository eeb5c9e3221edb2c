package render

import (
	"image/color"

	"life-engine/internal/grid"
)

// fillCellsRGBA converts cell states into RGBA pixels in buf. buf must hold
// four bytes per cell.
func fillCellsRGBA(buf []byte, cells []grid.CellState, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c == grid.Alive {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// CellAt maps a screen position to grid coordinates for a grid drawn at the
// given scale. ok is false outside the grid.
func CellAt(px, py, scale, rows, cols int) (r, c int, ok bool) {
	if scale <= 0 {
		scale = 1
	}
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	r, c = py/scale, px/scale
	if r >= rows || c >= cols {
		return 0, 0, false
	}
	return r, c, true
}

//go:build ebiten

package render

import (
	"image/color"

	"life-engine/internal/grid"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads grid snapshots into a single RGBA image.
type GridPainter struct {
	rows, cols int
	img        *ebiten.Image
	buf        []byte
	cells      []grid.CellState
}

// NewGridPainter allocates a painter for a rows x cols grid.
func NewGridPainter(rows, cols int) *GridPainter {
	return &GridPainter{
		rows: rows,
		cols: cols,
		img:  ebiten.NewImage(cols, rows),
		buf:  make([]byte, 4*rows*cols),
	}
}

// Blit draws g onto dst scaled by scale. A grid of different dimensions
// reallocates the backing image.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *grid.Grid, on, off color.Color, scale int) {
	if g == nil {
		return
	}
	if g.Rows() != gp.rows || g.Cols() != gp.cols {
		gp.img.Dispose()
		*gp = *NewGridPainter(g.Rows(), g.Cols())
	}
	gp.cells = g.CopyCells(gp.cells)
	fillCellsRGBA(gp.buf, gp.cells, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the grid dimensions the painter is sized for.
func (gp *GridPainter) Size() (rows, cols int) { return gp.rows, gp.cols }

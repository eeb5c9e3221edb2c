//go:build ebiten

package ui

import (
	"image/color"

	"life-engine/internal/engine"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws a queue occupancy gauge along the bottom edge of the grid.
type Overlay struct {
	show  bool
	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance. The gauge starts visible.
func NewOverlay() *Overlay {
	o := &Overlay{show: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the gauge on G.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.show = !o.show
	}
}

// Draw renders the gauge across a view of the given width and height. The
// gauge only appears in threaded mode, where the queue is in use.
func (o *Overlay) Draw(screen *ebiten.Image, st engine.Stats, width, height int) {
	if !o.show || st.Mode != engine.Threaded || width <= 0 || height <= gaugeHeight {
		return
	}
	o.fillRect(screen, 0, height-gaugeHeight, width, gaugeHeight, color.RGBA{R: 30, G: 30, B: 36, A: 200})

	fill := QueueFill(st)
	if fill <= 0 {
		return
	}
	col := color.RGBA{R: 64, G: 164, B: 223, A: 230}
	if fill >= 1 {
		col = color.RGBA{R: 255, G: 120, B: 40, A: 230}
	}
	o.fillRect(screen, 0, height-gaugeHeight, int(float64(width)*fill), gaugeHeight, col)
}

func (o *Overlay) fillRect(screen *ebiten.Image, x, y, w, h int, col color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

const gaugeHeight = 4

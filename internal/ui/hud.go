//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"life-engine/internal/engine"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the engine status panel to the right of the grid view and
// turns button clicks into commands.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int

	lines   []string
	buttons []hudButton
	offsetX int

	pixel *ebiten.Image
}

type hudButton struct {
	label   func(st engine.Stats) string
	command Command
	rect    image.Rectangle
}

// NewHUD constructs a HUD with the given panel width.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.buttons = []hudButton{
		{label: func(st engine.Stats) string {
			if st.Running {
				return "Pause"
			}
			return "Run"
		}, command: CommandToggleRunning},
		{label: func(engine.Stats) string { return "Step" }, command: CommandStepOnce},
		{label: func(st engine.Stats) string {
			if st.Mode == engine.Threaded {
				return "Go sync"
			}
			return "Go threaded"
		}, command: CommandToggleThreaded},
		{label: func(engine.Stats) string { return "Reseed" }, command: CommandReset},
		{label: func(engine.Stats) string { return "Clear" }, command: CommandClear},
	}
	h.layoutButtons()
	return h
}

// Update refreshes the status text and returns the command of a clicked
// button, if any.
func (h *HUD) Update(st engine.Stats, alive, panelOffsetX int) Command {
	if h == nil || h.width <= 0 {
		return CommandNone
	}
	h.offsetX = panelOffsetX
	h.lines = StatusLines(st, alive)
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return CommandNone
	}
	mx, my := ebiten.CursorPosition()
	mx -= h.offsetX
	for _, b := range h.buttons {
		if pointInRect(mx, my, b.rect) {
			return b.command
		}
	}
	return CommandNone
}

// Draw paints the panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, st engine.Stats, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	text.Draw(h.panel, "Life Engine", face, panelPadding, panelPadding+headerBaseline, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for i, line := range h.lines {
		y := linesTop + i*lineHeight
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
	for _, b := range h.buttons {
		h.drawButton(b.rect, b.label(st))
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutButtons() {
	if h.width <= 0 {
		return
	}
	top := linesTop + statusLineCount*lineHeight
	for i := range h.buttons {
		y := top + i*(buttonHeight+buttonGap)
		h.buttons[i].rect = image.Rect(panelPadding, y, h.width-panelPadding, y+buttonHeight)
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding    = 12
	headerBaseline  = 6
	lineHeight      = 18
	linesTop        = panelPadding + headerBaseline + 28
	statusLineCount = 9
	buttonHeight    = 24
	buttonGap       = 6
)

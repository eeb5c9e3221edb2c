//go:build ebiten

package app

import (
	"image/color"
	"time"

	"life-engine/internal/core"
	"life-engine/internal/engine"
	"life-engine/internal/grid"
	"life-engine/internal/render"
	"life-engine/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts an engine to the ebiten.Game interface. It is the engine's
// single consumer: every engine call happens on the ebiten update goroutine.
type Game struct {
	cfg     *Config
	eng     *engine.Engine
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	pacer   *core.FixedStep

	shown *grid.Grid

	onColor  color.Color
	offColor color.Color

	tickOnce bool
	seed     int64
}

// New constructs a Game consuming eng.
func New(cfg *Config, eng *engine.Engine) *Game {
	shown := eng.Current()
	return &Game{
		cfg:      cfg,
		eng:      eng,
		painter:  render.NewGridPainter(shown.Rows(), shown.Cols()),
		hud:      ui.NewHUD(cfg.Panel),
		overlay:  ui.NewOverlay(),
		pacer:    core.NewFixedStep(cfg.Rate),
		shown:    shown,
		onColor:  color.White,
		offColor: color.Black,
		seed:     cfg.Seed,
	}
}

// Reset rebuilds the initial pattern with the provided seed.
func (g *Game) Reset(seed int64) error {
	g.seed = seed
	next, err := g.cfg.InitialGrid(seed)
	if err != nil {
		return err
	}
	return g.install(next)
}

func (g *Game) install(next *grid.Grid) error {
	if err := g.eng.SetGrid(next); err != nil {
		return err
	}
	g.shown = next
	g.tickOnce = false
	return nil
}

// Update handles input and consumes steps at the configured rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	cmd := g.hud.Update(g.eng.Stats(), g.shown.Alive(), g.gridWidth())
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		cmd = ui.CommandToggleRunning
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		cmd = ui.CommandStepOnce
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		cmd = ui.CommandToggleThreaded
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		cmd = ui.CommandReset
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		cmd = ui.CommandClear
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.Reset(time.Now().UnixNano()); err != nil {
			return err
		}
	}
	if err := g.apply(cmd); err != nil {
		return err
	}
	if err := g.handleMouse(); err != nil {
		return err
	}
	g.overlay.Update()

	due := g.pacer.Advance(time.Now())
	if !g.eng.Running() {
		due = 0
	}
	if g.tickOnce && due == 0 {
		due = 1
	}
	g.tickOnce = false
	for i := 0; i < due; i++ {
		s, ok := g.eng.Simulate()
		if !ok {
			break
		}
		g.shown = s.Grid
	}
	return nil
}

func (g *Game) apply(cmd ui.Command) error {
	switch cmd {
	case ui.CommandToggleRunning:
		return g.eng.SetRunning(!g.eng.Running())
	case ui.CommandStepOnce:
		g.tickOnce = true
	case ui.CommandToggleThreaded:
		if err := g.eng.SetThreaded(g.eng.Mode() != engine.Threaded); err != nil {
			return err
		}
		g.shown = g.eng.Current()
	case ui.CommandReset:
		return g.Reset(g.seed)
	case ui.CommandClear:
		empty, err := grid.New(g.shown.Rows(), g.shown.Cols())
		if err != nil {
			return err
		}
		return g.install(empty)
	}
	return nil
}

func (g *Game) handleMouse() error {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return nil
	}
	mx, my := ebiten.CursorPosition()
	r, c, ok := render.CellAt(mx, my, g.cfg.Scale, g.shown.Rows(), g.shown.Cols())
	if !ok {
		return nil
	}
	return g.install(g.shown.Toggle(r, c))
}

// Draw renders the most recently consumed grid.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.shown, g.onColor, g.offColor, g.cfg.Scale)
	st := g.eng.Stats()
	g.overlay.Draw(screen, st, g.gridWidth(), g.gridHeight())
	g.hud.Draw(screen, st, g.gridWidth(), g.gridHeight())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.gridWidth() + g.cfg.Panel, g.gridHeight()
}

func (g *Game) gridWidth() int  { return g.shown.Cols() * g.cfg.Scale }
func (g *Game) gridHeight() int { return g.shown.Rows() * g.cfg.Scale }

package app

import (
	"flag"
	"fmt"
	"log"

	"life-engine/internal/engine"
	"life-engine/internal/grid"
	"life-engine/internal/patterns"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Rows        int
	Cols        int
	Queue       int
	Threaded    bool
	Running     bool
	Pattern     string
	PatternFile string
	Seed        int64
	Density     float64

	Scale   int
	TPS     int
	Rate    int
	Panel   int
	Verbose bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Rows:    128,
		Cols:    192,
		Queue:   engine.DefaultMaxQueueSize,
		Running: true,
		Pattern: "random",
		Seed:    42,
		Density: 0.25,
		Scale:   4,
		TPS:     60,
		Rate:    30,
		Panel:   200,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.IntVar(&c.Queue, "queue", c.Queue, "maximum queued steps in threaded mode")
	fs.BoolVar(&c.Threaded, "threaded", c.Threaded, "start with a background producer")
	fs.BoolVar(&c.Running, "running", c.Running, "start running instead of paused")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial pattern name")
	fs.StringVar(&c.PatternFile, "pattern-file", c.PatternFile, "plaintext .cells file to load instead of -pattern")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random pattern")
	fs.Float64Var(&c.Density, "density", c.Density, "live cell density for the random pattern")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second of the window loop")
	fs.IntVar(&c.Rate, "rate", c.Rate, "generations consumed per second")
	fs.IntVar(&c.Panel, "panel", c.Panel, "HUD panel width in pixels, 0 to hide")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log engine lifecycle events")
}

// Validate fails fast on values the engine cannot run with.
func (c *Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("%w: rows=%d cols=%d", grid.ErrInvalidSize, c.Rows, c.Cols)
	}
	if c.Queue <= 0 {
		return fmt.Errorf("queue must be positive, got %d", c.Queue)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	}
	return nil
}

// InitialGrid builds the starting grid from the pattern file or name.
func (c *Config) InitialGrid(seed int64) (*grid.Grid, error) {
	if c.PatternFile != "" {
		return patterns.FromFile(c.PatternFile, c.Rows, c.Cols)
	}
	return patterns.Build(c.Pattern, patterns.Options{Rows: c.Rows, Cols: c.Cols, Seed: seed, Density: c.Density})
}

// EngineConfig translates the flags into an engine configuration.
func (c *Config) EngineConfig(logger *log.Logger) engine.Config {
	return engine.Config{
		MaxQueueSize: c.Queue,
		Threaded:     c.Threaded,
		Running:      c.Running,
		Logger:       logger,
	}
}

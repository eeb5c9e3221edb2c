package engine

import (
	"fmt"
	"log"
	"strconv"
	"time"
)

// Config controls engine construction.
type Config struct {
	// MaxQueueSize bounds the step queue; zero selects DefaultMaxQueueSize.
	MaxQueueSize int
	Threaded     bool
	Running      bool

	// Logger receives lifecycle events. Nil discards them.
	Logger *log.Logger
}

// DefaultConfig returns a stopped Sync engine configuration.
func DefaultConfig() Config {
	return Config{MaxQueueSize: DefaultMaxQueueSize}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["queue"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MaxQueueSize = parsed
		}
	}
	if v, ok := cfg["threaded"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Threaded = parsed
		}
	}
	if v, ok := cfg["running"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Running = parsed
		}
	}
	return c
}

// Validate rejects a negative queue size.
func (c Config) Validate() error {
	if c.MaxQueueSize < 0 {
		return fmt.Errorf("engine: queue size must be positive, got %d", c.MaxQueueSize)
	}
	return nil
}

// Stats is a point-in-time snapshot of engine counters.
type Stats struct {
	Mode          Mode
	Running       bool
	ProducerAlive bool

	Queued   int
	Capacity int

	// Produced counts every computed step, including ones later discarded.
	Produced  int64
	Delivered int64
	// Dropped counts steps discarded because the queue was full.
	Dropped int64
	// Cleared counts queued steps discarded by mode switches and overrides.
	Cleared int64

	LastDuration time.Duration
}

// Stats returns a snapshot of the engine counters.
func (e *Engine) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Stats{
		Mode:          e.mode,
		Running:       e.running,
		ProducerAlive: e.producer != nil,
		Queued:        e.queue.Len(),
		Capacity:      e.queue.Cap(),
		Produced:      e.produced.Load(),
		Delivered:     e.delivered,
		Dropped:       int64(e.queue.Dropped()),
		Cleared:       e.cleared,
		LastDuration:  e.lastDur,
	}
}

package ui

import (
	"fmt"
	"time"

	"life-engine/internal/engine"
)

// Command is a user request raised by the HUD buttons.
type Command int

const (
	CommandNone Command = iota
	CommandToggleRunning
	CommandStepOnce
	CommandToggleThreaded
	CommandReset
	CommandClear
)

// StatusLines formats engine counters for the HUD panel.
func StatusLines(st engine.Stats, alive int) []string {
	running := "paused"
	if st.Running {
		running = "running"
	}
	return []string{
		fmt.Sprintf("mode      %s", st.Mode),
		fmt.Sprintf("state     %s", running),
		fmt.Sprintf("alive     %d", alive),
		fmt.Sprintf("queue     %d/%d", st.Queued, st.Capacity),
		fmt.Sprintf("produced  %d", st.Produced),
		fmt.Sprintf("delivered %d", st.Delivered),
		fmt.Sprintf("dropped   %d", st.Dropped),
		fmt.Sprintf("cleared   %d", st.Cleared),
		fmt.Sprintf("step      %s", FormatDuration(st.LastDuration)),
	}
}

// FormatDuration renders d with a unit suited to per-step timings.
func FormatDuration(d time.Duration) string {
	switch {
	case d <= 0:
		return "--"
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%.2fms", float64(d)/float64(time.Millisecond))
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}

// QueueFill returns the queue occupancy in [0, 1].
func QueueFill(st engine.Stats) float64 {
	if st.Capacity <= 0 {
		return 0
	}
	f := float64(st.Queued) / float64(st.Capacity)
	if f > 1 {
		return 1
	}
	return f
}

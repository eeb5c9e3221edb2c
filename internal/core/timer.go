package core

import "time"

// DefaultTPS is the tick rate used when a non-positive rate is requested.
const DefaultTPS = 60

// FixedStep paces a consumer tick loop at a steady ticks-per-second rate,
// independent of how often the loop itself runs.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	// maxBurst caps how many overdue ticks a single Advance reports.
	maxBurst int
}

// NewFixedStep constructs a FixedStep targeting the given TPS. The first
// Advance reports one tick so a loop starts without waiting a full period.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{maxBurst: 4}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = DefaultTPS
	}
	f.step = time.Second / time.Duration(tps)
	if f.accumulator > f.step {
		f.accumulator = f.step
	}
}

// TPS returns the configured tick rate.
func (f *FixedStep) TPS() int { return int(time.Second / f.step) }

// Advance accounts for the wall time elapsed up to now and returns how many
// ticks are due. Backlog beyond the burst cap is discarded.
func (f *FixedStep) Advance(now time.Time) int {
	if f.last.IsZero() {
		f.last = now
	}
	if delta := now.Sub(f.last); delta > 0 {
		f.accumulator += delta
	}
	f.last = now

	due := int(f.accumulator / f.step)
	f.accumulator -= time.Duration(due) * f.step
	if due > f.maxBurst {
		due = f.maxBurst
	}
	return due
}

// ShouldStep reports whether at least one tick is due now.
func (f *FixedStep) ShouldStep() bool {
	return f.Advance(time.Now()) > 0
}

package ui

import (
	"strings"
	"testing"
	"time"

	"life-engine/internal/engine"
)

func TestStatusLines(t *testing.T) {
	st := engine.Stats{
		Mode:         engine.Threaded,
		Running:      true,
		Queued:       12,
		Capacity:     100,
		Produced:     40,
		Delivered:    28,
		Dropped:      1,
		LastDuration: 1500 * time.Microsecond,
	}
	lines := StatusLines(st, 7)
	joined := strings.Join(lines, "\n")
	for _, want := range []string{"threaded", "running", "alive     7", "12/100", "1.50ms", "dropped   1"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("missing %q in:\n%s", want, joined)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	cases := map[time.Duration]string{
		0:                      "--",
		250 * time.Microsecond: "250µs",
		12 * time.Millisecond:  "12.00ms",
		2 * time.Second:        "2.00s",
	}
	for d, want := range cases {
		if got := FormatDuration(d); got != want {
			t.Fatalf("FormatDuration(%v)=%q, want %q", d, got, want)
		}
	}
}

func TestQueueFill(t *testing.T) {
	if got := QueueFill(engine.Stats{Queued: 5, Capacity: 10}); got != 0.5 {
		t.Fatalf("fill=%v", got)
	}
	if got := QueueFill(engine.Stats{}); got != 0 {
		t.Fatalf("zero capacity fill=%v", got)
	}
}

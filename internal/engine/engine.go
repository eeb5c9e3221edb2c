// Package engine runs the Game of Life either on demand or with a background
// producer feeding a bounded step queue.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"life-engine/internal/grid"
	"life-engine/internal/life"
)

// Mode selects how steps are produced.
type Mode int

const (
	// Sync computes one step per Simulate call on the caller's goroutine.
	Sync Mode = iota
	// Threaded drains steps produced by a background goroutine.
	Threaded
)

// String returns "sync" or "threaded".
func (m Mode) String() string {
	if m == Threaded {
		return "threaded"
	}
	return "sync"
}

var (
	// ErrClosed is returned by operations on a closed engine.
	ErrClosed = errors.New("engine: closed")
	// ErrProducerAlive guards against spawning a second producer.
	ErrProducerAlive = errors.New("engine: producer already running")
	// ErrNilGrid reports a missing grid argument.
	ErrNilGrid = errors.New("engine: nil grid")
)

// Engine owns the current grid, the step queue and at most one producer.
//
// The engine supports exactly one consumer goroutine; the producer is the
// only other goroutine touching shared state, and only through the queue.
type Engine struct {
	mu sync.Mutex

	log   *log.Logger
	queue *Queue
	// transition is fixed before any producer starts.
	transition func(*grid.Grid) *grid.Grid

	current *grid.Grid
	// resume is the newest grid the last producer pushed; the next producer
	// continues from it while its successors are still queued.
	resume *grid.Grid

	mode     Mode
	running  bool
	closed   bool
	producer *producer

	produced  atomic.Int64
	delivered int64
	cleared   int64
	lastDur   time.Duration
}

type producer struct {
	cancel context.CancelFunc
	group  *errgroup.Group
	// last is written only by the producer goroutine and read after Wait.
	last *grid.Grid
}

// New installs initial as the current grid and applies the running flag
// followed by the threading flag, so a threaded running start begins
// producing immediately.
func New(initial *grid.Grid, cfg Config) (*Engine, error) {
	if initial == nil {
		return nil, ErrNilGrid
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	e := &Engine{
		log:        logger,
		queue:      NewQueue(cfg.MaxQueueSize),
		transition: life.Step,
		current:    initial,
		mode:       Sync,
	}
	if err := e.SetRunning(cfg.Running); err != nil {
		return nil, err
	}
	if err := e.SetThreaded(cfg.Threaded); err != nil {
		e.Close()
		return nil, err
	}
	return e, nil
}

// Simulate returns the next step. In Sync mode it always computes one step
// from the current grid. In Threaded mode it never blocks: it returns the
// oldest queued step, or false when none is available yet.
func (e *Engine) Simulate() (Step, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return Step{}, false
	}

	if e.mode == Sync {
		start := time.Now()
		next := e.transition(e.current)
		s := Step{Grid: next, Duration: time.Since(start)}
		e.current = next
		e.produced.Add(1)
		e.deliver(s)
		return s, true
	}

	s, ok := e.queue.Pop()
	if !ok {
		return Step{}, false
	}
	e.current = s.Grid
	e.deliver(s)
	return s, true
}

func (e *Engine) deliver(s Step) {
	e.delivered++
	e.lastDur = s.Duration
}

// SetGrid replaces the current grid, typically after an external cell edit.
// In Threaded mode the producer is restarted from g and every queued step is
// discarded, since those were computed from the superseded state.
func (e *Engine) SetGrid(g *grid.Grid) error {
	if g == nil {
		return ErrNilGrid
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}
	if e.mode == Sync {
		e.current = g
		return nil
	}

	err := e.join()
	e.clearQueue("override")
	e.current = g
	if e.running {
		if spawnErr := e.spawn(g); spawnErr != nil {
			return errors.Join(err, spawnErr)
		}
	}
	return err
}

// ToggleCell flips the cell at (r, c) of the current grid and installs the
// result through SetGrid.
func (e *Engine) ToggleCell(r, c int) error {
	e.mu.Lock()
	cur := e.current
	e.mu.Unlock()
	return e.SetGrid(cur.Toggle(r, c))
}

// Current returns the grid most recently computed or delivered to the
// consumer. Grids are immutable, so the result can be retained freely.
func (e *Engine) Current() *grid.Grid {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current
}

// Mode reports the execution mode.
func (e *Engine) Mode() Mode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode
}

// Running reports whether the simulation is allowed to advance.
func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

// SetThreaded switches between Sync and Threaded execution.
//
// Entering Threaded clears the queue and, when running, starts a producer
// from the current grid. Leaving Threaded stops the producer, adopts the
// oldest queued grid as current and discards the rest, so the view does not
// jump backwards. Errors from the stopped producer are returned.
func (e *Engine) SetThreaded(on bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}

	switch {
	case on && e.mode == Sync:
		e.mode = Threaded
		if e.producer != nil {
			return nil
		}
		e.clearQueue("enter threaded")
		e.log.Printf("engine: mode sync -> threaded (running=%v)", e.running)
		if e.running {
			return e.spawn(e.current)
		}
	case !on && e.mode == Threaded:
		err := e.join()
		if s, ok := e.queue.Pop(); ok {
			e.current = s.Grid
			e.log.Printf("engine: adopted queued step (%d alive)", s.Grid.Alive())
		}
		e.clearQueue("leave threaded")
		e.mode = Sync
		e.log.Printf("engine: mode threaded -> sync")
		return err
	}
	return nil
}

// SetRunning toggles whether the simulation advances. In Threaded mode this
// starts or stops the producer; in Sync mode it only records the flag for the
// caller's tick loop.
func (e *Engine) SetRunning(on bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}
	e.running = on
	if e.mode != Threaded {
		return nil
	}
	if on && e.producer == nil {
		return e.spawn(e.seed())
	}
	if !on && e.producer != nil {
		return e.join()
	}
	return nil
}

// Close stops the producer, drains the queue and marks the engine closed.
// It is safe to call more than once.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil
	}
	e.running = false
	err := e.join()
	e.clearQueue("close")
	e.closed = true
	return err
}

// seed picks the grid a new producer starts from. While steps from a
// previous producer are still queued it continues after the newest of them.
func (e *Engine) seed() *grid.Grid {
	if e.resume != nil && e.queue.Len() > 0 {
		return e.resume
	}
	return e.current
}

func (e *Engine) clearQueue(reason string) {
	e.resume = nil
	if n := e.queue.Clear(); n > 0 {
		e.cleared += int64(n)
		e.log.Printf("engine: discarded %d queued steps (%s)", n, reason)
	}
}

// spawn starts the producer. Callers hold e.mu.
func (e *Engine) spawn(from *grid.Grid) error {
	if e.producer != nil {
		return ErrProducerAlive
	}
	ctx, cancel := context.WithCancel(context.Background())
	group, ctx := errgroup.WithContext(ctx)
	p := &producer{cancel: cancel, group: group, last: from}
	e.producer = p
	group.Go(func() error { return e.produce(ctx, p, from) })
	e.log.Printf("engine: producer started (%dx%d)", from.Rows(), from.Cols())
	return nil
}

// join stops the producer and waits for it to exit. Callers hold e.mu.
func (e *Engine) join() error {
	p := e.producer
	if p == nil {
		return nil
	}
	e.producer = nil
	p.cancel()
	err := p.group.Wait()
	e.resume = p.last
	e.log.Printf("engine: producer stopped")
	if err != nil {
		return fmt.Errorf("engine: producer: %w", err)
	}
	return nil
}

// produce computes steps from its private grid until ctx is cancelled. A full
// queue parks the loop until the consumer frees room.
func (e *Engine) produce(ctx context.Context, p *producer, cur *grid.Grid) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("transition panicked: %v", r)
		}
	}()
	for {
		if ctx.Err() != nil {
			return nil
		}
		if e.queue.Full() {
			select {
			case <-ctx.Done():
				return nil
			case <-e.queue.Room():
			}
			continue
		}
		start := time.Now()
		next := e.transition(cur)
		if !e.queue.Push(Step{Grid: next, Duration: time.Since(start)}) {
			continue
		}
		cur = next
		p.last = cur
		e.produced.Add(1)
	}
}

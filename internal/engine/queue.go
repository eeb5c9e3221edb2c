package engine

import (
	"sync"
	"time"

	"life-engine/internal/grid"
)

// DefaultMaxQueueSize bounds the step queue when no size is configured.
const DefaultMaxQueueSize = 10000

// Step is one produced generation together with the time spent computing it.
type Step struct {
	Grid     *grid.Grid
	Duration time.Duration
}

// Queue is a bounded FIFO of steps shared by one producer and one consumer.
// All methods are safe for concurrent use.
type Queue struct {
	mu    sync.Mutex
	items []Step
	head  int
	size  int
	room  chan struct{}

	dropped int
}

// NewQueue allocates a queue holding at most capacity steps.
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = DefaultMaxQueueSize
	}
	return &Queue{items: make([]Step, capacity), room: make(chan struct{}, 1)}
}

// Cap returns the queue capacity.
func (q *Queue) Cap() int { return len(q.items) }

// Push appends s. A full queue discards s and returns false.
func (q *Queue) Push(s Step) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.size == len(q.items) {
		q.dropped++
		return false
	}
	q.items[(q.head+q.size)%len(q.items)] = s
	q.size++
	return true
}

// Pop removes and returns the oldest step.
func (q *Queue) Pop() (Step, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.size == 0 {
		return Step{}, false
	}
	s := q.items[q.head]
	q.items[q.head] = Step{}
	q.head = (q.head + 1) % len(q.items)
	q.size--
	q.signal()
	return s, true
}

// Len returns the number of queued steps.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.size
}

// Full reports whether a Push would be discarded.
func (q *Queue) Full() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.size == len(q.items)
}

// Clear drops every queued step and returns how many were removed.
func (q *Queue) Clear() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	n := q.size
	for i := 0; i < q.size; i++ {
		q.items[(q.head+i)%len(q.items)] = Step{}
	}
	q.head, q.size = 0, 0
	if n > 0 {
		q.signal()
	}
	return n
}

// Dropped returns how many pushes were discarded because the queue was full.
func (q *Queue) Dropped() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}

// Room is signalled after a Pop or Clear frees space. The signal is
// coalesced, so waiters must re-check Full after receiving.
func (q *Queue) Room() <-chan struct{} { return q.room }

func (q *Queue) signal() {
	select {
	case q.room <- struct{}{}:
	default:
	}
}

package engine

import (
	"sync"
	"testing"
	"time"

	"life-engine/internal/grid"
)

func stepOf(t *testing.T, n int) Step {
	t.Helper()
	g, err := grid.New(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	return Step{Grid: g, Duration: time.Duration(n)}
}

func TestQueueFIFOAndDropOnFull(t *testing.T) {
	q := NewQueue(3)
	for i := 1; i <= 5; i++ {
		accepted := q.Push(stepOf(t, i))
		if want := i <= 3; accepted != want {
			t.Fatalf("push %d accepted=%v, want %v", i, accepted, want)
		}
		if q.Len() > q.Cap() {
			t.Fatalf("len %d exceeds cap %d", q.Len(), q.Cap())
		}
	}
	if q.Dropped() != 2 {
		t.Fatalf("dropped=%d, want 2", q.Dropped())
	}
	for want := 1; want <= 3; want++ {
		s, ok := q.Pop()
		if !ok || s.Duration != time.Duration(want) {
			t.Fatalf("pop=%v,%v want %d", s.Duration, ok, want)
		}
	}
	if _, ok := q.Pop(); ok {
		t.Fatal("empty queue must report no step")
	}
}

func TestQueueWrapsRingIndex(t *testing.T) {
	q := NewQueue(2)
	for i := 1; i <= 10; i++ {
		q.Push(stepOf(t, i))
		s, ok := q.Pop()
		if !ok || s.Duration != time.Duration(i) {
			t.Fatalf("round %d pop=%v,%v", i, s.Duration, ok)
		}
	}
}

func TestQueueClearSignalsRoom(t *testing.T) {
	q := NewQueue(2)
	q.Push(stepOf(t, 1))
	q.Push(stepOf(t, 2))
	if !q.Full() {
		t.Fatal("queue should be full")
	}
	if n := q.Clear(); n != 2 {
		t.Fatalf("cleared %d, want 2", n)
	}
	select {
	case <-q.Room():
	default:
		t.Fatal("Clear should signal room")
	}
	if q.Len() != 0 || q.Full() {
		t.Fatal("queue should be empty after Clear")
	}
	if n := q.Clear(); n != 0 {
		t.Fatalf("clearing an empty queue removed %d", n)
	}
}

func TestQueueDefaultCapacity(t *testing.T) {
	if got := NewQueue(0).Cap(); got != DefaultMaxQueueSize {
		t.Fatalf("cap=%d, want %d", got, DefaultMaxQueueSize)
	}
}

func TestQueueConcurrentPushPopPreservesOrder(t *testing.T) {
	q := NewQueue(8)
	const total = 2000
	g := stepOf(t, 0).Grid
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 1; i <= total; {
			if q.Full() {
				<-q.Room()
				continue
			}
			if q.Push(Step{Grid: g, Duration: time.Duration(i)}) {
				i++
			}
		}
	}()

	next := 1
	deadline := time.Now().Add(10 * time.Second)
	for next <= total {
		if time.Now().After(deadline) {
			t.Fatalf("timed out at %d", next)
		}
		s, ok := q.Pop()
		if !ok {
			continue
		}
		if s.Duration != time.Duration(next) {
			t.Fatalf("got %d, want %d", s.Duration, next)
		}
		next++
	}
	wg.Wait()
	if q.Dropped() != 0 {
		t.Fatalf("single producer waiting for room should not drop, dropped=%d", q.Dropped())
	}
}

package loop

import (
	"sync"
	"time"
)

type FrameID uint64

// FrameFunc receives the host's timestamp for the frame.
type FrameFunc func(now time.Duration)

// Scheduler runs a callback once at the host's next frame.
type Scheduler interface {
	RequestFrame(fn FrameFunc) FrameID
	CancelFrame(id FrameID)
}

// FrameQueue is a Scheduler for hosts that pump frames themselves. Each
// Fire runs the callbacks that were pending when it was called; callbacks
// requested from inside Fire wait for the next one.
type FrameQueue struct {
	mu      sync.Mutex
	nextID  FrameID
	order   []FrameID
	pending map[FrameID]FrameFunc
}

func NewFrameQueue() *FrameQueue {
	return &FrameQueue{pending: make(map[FrameID]FrameFunc)}
}

func (q *FrameQueue) RequestFrame(fn FrameFunc) FrameID {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.nextID++
	id := q.nextID
	q.order = append(q.order, id)
	q.pending[id] = fn
	return id
}

func (q *FrameQueue) CancelFrame(id FrameID) {
	q.mu.Lock()
	defer q.mu.Unlock()
	delete(q.pending, id)
}

// Pending reports how many callbacks the next Fire would run.
func (q *FrameQueue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Fire runs the pending callbacks in request order and returns how many ran.
func (q *FrameQueue) Fire(now time.Duration) int {
	q.mu.Lock()
	batch := q.order
	q.order = nil
	q.mu.Unlock()

	ran := 0
	for _, id := range batch {
		q.mu.Lock()
		fn, ok := q.pending[id]
		delete(q.pending, id)
		q.mu.Unlock()
		if !ok {
			continue
		}
		fn(now)
		ran++
	}
	return ran
}

// Package mainloop serializes every state mutation of the layout onto one
// logical thread. Entities are never locked; they are only touched from
// callbacks drained by Loop.
package mainloop

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// ErrReleased is returned when an asynchronous step targets an entity that was
// dropped while the task was suspended.
var ErrReleased = errors.New("entity released")

// Loop is an unbounded FIFO of callbacks.
type Loop struct {
	mu    sync.Mutex
	queue []func()
	wake  chan struct{}
	live  atomic.Int64
}

// New creates an empty loop.
func New() *Loop {
	return &Loop{wake: make(chan struct{}, 1)}
}

// Post enqueues fn. Safe from any goroutine, never blocks.
func (l *Loop) Post(fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	l.queue = append(l.queue, fn)
	l.mu.Unlock()
	l.signal()
}

func (l *Loop) signal() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Wake fires whenever work was posted or a task finished.
func (l *Loop) Wake() <-chan struct{} {
	return l.wake
}

// Pending reports whether callbacks are queued.
func (l *Loop) Pending() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue) > 0
}

// LiveTasks returns the number of spawned tasks that have not finished yet.
func (l *Loop) LiveTasks() int {
	return int(l.live.Load())
}

func (l *Loop) pop() (func(), bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.queue) == 0 {
		return nil, false
	}
	fn := l.queue[0]
	l.queue[0] = nil
	l.queue = l.queue[1:]
	return fn, true
}

// Flush runs queued callbacks, including the ones they post, until the queue
// is empty. It returns how many callbacks ran.
func (l *Loop) Flush() int {
	n := 0
	for {
		fn, ok := l.pop()
		if !ok {
			return n
		}
		fn()
		n++
	}
}

// RunUntilIdle drains the queue and waits until every spawned task finished.
func (l *Loop) RunUntilIdle(ctx context.Context) error {
	for {
		l.Flush()
		if l.live.Load() == 0 && !l.Pending() {
			return nil
		}
		select {
		case <-l.wake:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Run drains the queue until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	for {
		l.Flush()
		select {
		case <-l.wake:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

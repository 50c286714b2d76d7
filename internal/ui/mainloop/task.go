package mainloop

import (
	"context"
	"sync"

	"github.com/bnema/dockyard/internal/logging"
)

// AsyncContext is handed to spawned tasks. Update is the only way a task may
// touch loop-owned state.
type AsyncContext struct {
	loop *Loop
	ctx  context.Context
}

// Update posts fn to the loop and blocks until it ran.
// Never call it from the loop goroutine: the callback could not run.
func (cx *AsyncContext) Update(fn func()) error {
	done := make(chan struct{})
	cx.loop.Post(func() {
		defer close(done)
		fn()
	})

	select {
	case <-done:
		return nil
	case <-cx.ctx.Done():
		return cx.ctx.Err()
	}
}

// Task is a handle on an asynchronous sequence started with Spawn.
type Task struct {
	done chan struct{}
	ctx  context.Context

	mu       sync.Mutex
	err      error
	finished bool
	detached bool
}

// Spawn runs fn on its own goroutine. The loop counts it as live until fn
// returns, so RunUntilIdle waits for it.
func (l *Loop) Spawn(ctx context.Context, fn func(ctx context.Context, cx *AsyncContext) error) *Task {
	t := &Task{done: make(chan struct{}), ctx: ctx}
	l.live.Add(1)

	go func() {
		err := fn(ctx, &AsyncContext{loop: l, ctx: ctx})

		t.mu.Lock()
		t.err = err
		t.finished = true
		detached := t.detached
		t.mu.Unlock()

		if detached && err != nil {
			logging.FromContext(ctx).Error().Err(err).Msg("detached task failed")
		}

		close(t.done)
		l.live.Add(-1)
		l.signal()
	}()

	return t
}

// Ready returns a task that already finished with err.
func Ready(err error) *Task {
	t := &Task{done: make(chan struct{}), err: err, finished: true, ctx: context.Background()}
	close(t.done)
	return t
}

// Done is closed once the task finished.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task finished or ctx is cancelled.
func (t *Task) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		t.mu.Lock()
		defer t.mu.Unlock()
		return t.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// DetachAndLogErr gives up on the result. A failure is logged instead of
// returned.
func (t *Task) DetachAndLogErr() {
	t.mu.Lock()
	t.detached = true
	finished, err := t.finished, t.err
	t.mu.Unlock()

	if finished && err != nil {
		logging.FromContext(t.ctx).Error().Err(err).Msg("detached task failed")
	}
}

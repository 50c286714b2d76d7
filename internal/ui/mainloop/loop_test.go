package mainloop

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoop_FlushRunsNestedPostsInOrder(t *testing.T) {
	l := New()
	var order []int

	l.Post(func() {
		order = append(order, 1)
		l.Post(func() { order = append(order, 3) })
	})
	l.Post(func() { order = append(order, 2) })

	assert.Equal(t, 3, l.Flush())
	assert.Equal(t, []int{1, 2, 3}, order)
	assert.False(t, l.Pending())
}

func TestLoop_SpawnedTaskStepsRunOnLoop(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	l := New()
	counter := 0

	task := l.Spawn(ctx, func(ctx context.Context, cx *AsyncContext) error {
		for i := 0; i < 3; i++ {
			if err := cx.Update(func() { counter++ }); err != nil {
				return err
			}
		}
		return nil
	})

	require.NoError(t, l.RunUntilIdle(ctx))
	require.NoError(t, task.Wait(ctx))
	assert.Equal(t, 3, counter)
	assert.Equal(t, 0, l.LiveTasks())
}

func TestTask_WaitReturnsError(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	l := New()
	boom := errors.New("boom")
	task := l.Spawn(ctx, func(context.Context, *AsyncContext) error { return boom })

	require.NoError(t, l.RunUntilIdle(ctx))
	assert.ErrorIs(t, task.Wait(ctx), boom)
}

func TestTask_DetachAfterCompletionDoesNotBlock(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	l := New()
	task := l.Spawn(ctx, func(context.Context, *AsyncContext) error { return errors.New("ignored") })
	<-task.Done()
	task.DetachAndLogErr()
	require.NoError(t, l.RunUntilIdle(ctx))
}

func TestReady(t *testing.T) {
	task := Ready(nil)
	select {
	case <-task.Done():
	default:
		t.Fatal("ready task should be done")
	}
	assert.NoError(t, task.Wait(context.Background()))
}

func TestAsyncContext_UpdateHonoursCancellation(t *testing.T) {
	l := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cx := &AsyncContext{loop: l, ctx: ctx}
	err := cx.Update(func() {})
	assert.ErrorIs(t, err, context.Canceled)
}

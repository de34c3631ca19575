package pool_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cyclegames/pool"
)

func TestNew_DefaultSize(t *testing.T) {
	p := pool.New(0)
	defer p.Close()
	assert.Positive(t, p.Size())

	q := pool.New(3)
	defer q.Close()
	assert.Equal(t, 3, q.Size())
}

func TestSubmit_JoinReturnsValue(t *testing.T) {
	p := pool.New(2)
	defer p.Close()

	h, err := pool.Submit(context.Background(), p, func() (int, error) { return 42, nil })
	require.NoError(t, err)

	v, err := h.Join()
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.True(t, h.Done())

	_, err = h.Join()
	assert.ErrorIs(t, err, pool.ErrAlreadyJoined)
}

func TestSubmit_TaskError(t *testing.T) {
	p := pool.New(1)
	defer p.Close()

	boom := errors.New("boom")
	h, err := pool.Submit(context.Background(), p, func() (string, error) { return "", boom })
	require.NoError(t, err)

	_, err = h.Join()
	assert.ErrorIs(t, err, boom)
}

func TestSubmit_PanicBecomesError(t *testing.T) {
	p := pool.New(1)
	defer p.Close()

	h, err := pool.Submit(context.Background(), p, func() (int, error) { panic("kaput") })
	require.NoError(t, err)

	_, err = h.Join()
	assert.ErrorIs(t, err, pool.ErrTaskPanicked)
	assert.Contains(t, err.Error(), "kaput")

	// the slot was released
	h2, err := pool.TrySubmit(p, func() (int, error) { return 1, nil })
	require.NoError(t, err)
	_, _ = h2.Join()
}

func TestTrySubmit_Saturated(t *testing.T) {
	p := pool.New(1)
	defer p.Close()

	release := make(chan struct{})
	h, err := pool.TrySubmit(p, func() (int, error) {
		<-release
		return 0, nil
	})
	require.NoError(t, err)
	assert.False(t, h.Done())

	_, err = pool.TrySubmit(p, func() (int, error) { return 0, nil })
	assert.ErrorIs(t, err, pool.ErrSaturated)

	close(release)
	<-h.Ready()
	assert.True(t, h.Done())
	_, err = h.Join()
	require.NoError(t, err)
}

func TestSubmit_ContextCancelledWhileSaturated(t *testing.T) {
	p := pool.New(1)
	defer p.Close()

	release := make(chan struct{})
	h, err := pool.Submit(context.Background(), p, func() (int, error) {
		<-release
		return 0, nil
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = pool.Submit(ctx, p, func() (int, error) { return 0, nil })
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
	_, _ = h.Join()
}

func TestClose_RejectsAndWaits(t *testing.T) {
	p := pool.New(2)

	var finished atomic.Bool
	h, err := pool.Submit(context.Background(), p, func() (int, error) {
		time.Sleep(5 * time.Millisecond)
		finished.Store(true)
		return 0, nil
	})
	require.NoError(t, err)

	p.Close()
	assert.True(t, finished.Load(), "Close must wait for accepted tasks")
	assert.True(t, h.Done())

	_, err = pool.TrySubmit(p, func() (int, error) { return 0, nil })
	assert.ErrorIs(t, err, pool.ErrClosed)
	_, err = pool.Submit(context.Background(), p, func() (int, error) { return 0, nil })
	assert.ErrorIs(t, err, pool.ErrClosed)

	p.Close()
}

// TestPool_Bounded runs many tasks through blocking Submit and checks, via the
// hooks, that no more than Size() ever overlap.
func TestPool_Bounded(t *testing.T) {
	const size, tasks = 3, 40

	var (
		mu      sync.Mutex
		current int
		peak    int
	)
	p := pool.New(size,
		pool.WithOnStart(func() {
			mu.Lock()
			current++
			if current > peak {
				peak = current
			}
			mu.Unlock()
		}),
		pool.WithOnFinish(func() {
			mu.Lock()
			current--
			mu.Unlock()
		}),
	)

	handles := make([]*pool.Handle[int], 0, tasks)
	for i := 0; i < tasks; i++ {
		i := i
		h, err := pool.Submit(context.Background(), p, func() (int, error) {
			time.Sleep(time.Millisecond)
			return i, nil
		})
		require.NoError(t, err)
		handles = append(handles, h)
	}
	for i, h := range handles {
		v, err := h.Join()
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
	p.Close()

	assert.LessOrEqual(t, peak, size)
	assert.Positive(t, peak)
	assert.Equal(t, 0, current)
	assert.Equal(t, 0, p.Running())
}

func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { pool.WithOnStart(nil) })
	assert.Panics(t, func() { pool.WithOnFinish(nil) })
}

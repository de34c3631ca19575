package pool

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

var (
	// ErrSaturated is returned by TrySubmit when no slot is free.
	ErrSaturated = errors.New("pool: saturated")

	// ErrClosed is returned when submitting to a closed Pool.
	ErrClosed = errors.New("pool: closed")

	// ErrAlreadyJoined is returned by a second Join on the same Handle.
	ErrAlreadyJoined = errors.New("pool: handle already joined")

	// ErrTaskPanicked wraps the recovered value of a panicking task.
	ErrTaskPanicked = errors.New("pool: task panicked")
)

// Option configures a Pool.
type Option func(*Options)

// Options holds the Pool hooks.
type Options struct {
	// OnStart runs in the task goroutine after a slot is taken, before the task.
	OnStart func()

	// OnFinish runs in the task goroutine after the task, before the slot is freed.
	OnFinish func()
}

// WithOnStart installs fn as the start hook. Panics if fn is nil.
func WithOnStart(fn func()) Option {
	if fn == nil {
		panic("pool: WithOnStart(nil)")
	}

	return func(o *Options) { o.OnStart = fn }
}

// WithOnFinish installs fn as the finish hook. Panics if fn is nil.
func WithOnFinish(fn func()) Option {
	if fn == nil {
		panic("pool: WithOnFinish(nil)")
	}

	return func(o *Options) { o.OnFinish = fn }
}

// Pool is a bounded executor. The zero value is not usable; call New.
type Pool struct {
	size    int
	sem     *semaphore.Weighted
	opts    Options
	running atomic.Int64

	mu     sync.RWMutex // guards closed against wg.Add
	closed bool
	wg     sync.WaitGroup
}

// New returns a Pool running at most size tasks concurrently.
// size <= 0 selects runtime.GOMAXPROCS(0).
func New(size int, opts ...Option) *Pool {
	if size <= 0 {
		size = runtime.GOMAXPROCS(0)
	}
	p := &Pool{size: size, sem: semaphore.NewWeighted(int64(size))}
	for _, fn := range opts {
		fn(&p.opts)
	}

	return p
}

// Size returns the concurrency bound.
func (p *Pool) Size() int { return p.size }

// Running returns the number of tasks currently executing.
func (p *Pool) Running() int { return int(p.running.Load()) }

// Close rejects further submissions and waits for every accepted task.
// Close is idempotent.
func (p *Pool) Close() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	p.wg.Wait()
}

// Submit schedules fn, blocking while the pool is saturated.
// It returns ctx.Err() if ctx ends before a slot frees up.
func Submit[T any](ctx context.Context, p *Pool, fn func() (T, error)) (*Handle[T], error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("pool: Submit: %w", err)
	}

	return start(p, fn)
}

// TrySubmit schedules fn if a slot is free and returns ErrSaturated otherwise.
func TrySubmit[T any](p *Pool, fn func() (T, error)) (*Handle[T], error) {
	if !p.sem.TryAcquire(1) {
		return nil, ErrSaturated
	}

	return start(p, fn)
}

// start launches fn on a slot the caller already holds.
func start[T any](p *Pool, fn func() (T, error)) (*Handle[T], error) {
	// 1. Register with the WaitGroup unless closed
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		p.sem.Release(1)

		return nil, ErrClosed
	}
	p.wg.Add(1)
	p.mu.RUnlock()

	// 2. Run
	h := &Handle[T]{done: make(chan struct{})}
	go func() {
		defer p.wg.Done()
		defer close(h.done)
		defer p.sem.Release(1)

		p.running.Add(1)
		if p.opts.OnStart != nil {
			p.opts.OnStart()
		}
		h.val, h.err = protect(fn)
		if p.opts.OnFinish != nil {
			p.opts.OnFinish()
		}
		p.running.Add(-1)
	}()

	return h, nil
}

// protect runs fn, turning a panic into ErrTaskPanicked.
func protect[T any](fn func() (T, error)) (val T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			val, err = zero, fmt.Errorf("%w: %v", ErrTaskPanicked, r)
		}
	}()

	return fn()
}

package pool

import "sync/atomic"

// Handle is the pending result of one submitted task.
//
// val and err are written by the task goroutine before done is closed and
// read only after it is closed.
type Handle[T any] struct {
	done   chan struct{}
	val    T
	err    error
	joined atomic.Bool
}

// Done reports whether the task has finished. It never blocks.
func (h *Handle[T]) Done() bool {
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}

// Ready returns a channel closed when the task finishes.
func (h *Handle[T]) Ready() <-chan struct{} {
	return h.done
}

// Join waits for the task and returns its result.
// Only the first call observes the result; later calls return ErrAlreadyJoined.
func (h *Handle[T]) Join() (T, error) {
	if h.joined.Swap(true) {
		var zero T
		return zero, ErrAlreadyJoined
	}
	<-h.done

	return h.val, h.err
}

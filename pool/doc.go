// Package pool implements a bounded task executor whose submissions return
// pollable handles.
//
// A Pool runs at most Size() tasks at once. The bound is a weighted semaphore
// (golang.org/x/sync/semaphore); each task holds one unit from just before it
// starts until just after its OnFinish hook returns.
//
// Submission:
//
//	h, err := pool.Submit(ctx, p, func() (int, error) { ... })  // blocks while saturated
//	h, err := pool.TrySubmit(p, func() (int, error) { ... })     // ErrSaturated instead of blocking
//
// Handles:
//
//	h.Done()   // non-blocking completion check, for poll loops
//	h.Ready()  // channel closed on completion, for select
//	h.Join()   // blocks, returns the task's value and error; exactly once
//
// Options:
//
//	WithOnStart(fn)   called in the task goroutine before the task runs.
//	WithOnFinish(fn)  called in the task goroutine after the task returns.
//
// Errors:
//
//	ErrSaturated      TrySubmit found every slot busy.
//	ErrClosed         Submit/TrySubmit after Close.
//	ErrAlreadyJoined  Join called twice on one handle.
//	ErrTaskPanicked   the task panicked; the panic value is in the message.
package pool

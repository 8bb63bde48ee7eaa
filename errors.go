package priopool

import "github.com/pkg/errors"

var (
	// ErrInvalidWorkerCount is returned by New when the requested
	// worker count is not positive. No threads are created in that case.
	ErrInvalidWorkerCount = errors.New("priopool: worker count must be greater than 0")

	// ErrPoolClosed is returned when a task is submitted after Stop
	// or Shutdown has been called.
	ErrPoolClosed = errors.New("priopool: pool closed")

	// ErrNilFunc is returned when a submitted Task has a nil Fn.
	ErrNilFunc = errors.New("priopool: task func is nil")

	// ErrUnsupportedPlatform is reported by the native ThreadScheduler
	// on platforms without thread-priority support. Workers treat it
	// like any other adaptation failure: logged, never fatal.
	ErrUnsupportedPlatform = errors.New("priopool: thread priority control not supported on this platform")
)

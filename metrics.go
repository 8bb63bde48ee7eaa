package priopool

import (
	"sync/atomic"
)

// MetricsPolicy defines hooks used by the pool to report queueing and
// execution activity.
//
// Implementations must be safe for concurrent use.
// All methods are expected to be lightweight and non-blocking.
type MetricsPolicy interface {

	// IncExecuted increments the executed tasks counter.
	IncExecuted()

	// IncQueued increments the queued tasks counter.
	IncQueued()

	// DecQueued decrements the queued counter when a worker
	// removes one task from the queue.
	DecQueued()

	// AddDropped records n tasks discarded unexecuted at shutdown.
	AddDropped(n int64)

	// IncAdaptFailed increments the counter of failed OS-priority
	// adaptation attempts.
	IncAdaptFailed()
}

// AtomicMetrics is a lock-free metrics implementation backed by atomics.
//
// Writes are optimized for hot paths.
// Reads are intended for cold-path observation.
type AtomicMetrics struct {
	// executed is the total number of tasks run to completion.
	executed atomic.Uint64

	_ [56]byte // padding to avoid false sharing

	// queued is the current number of tasks waiting in the queue.
	queued atomic.Int64

	// dropped is the total number of tasks discarded at shutdown.
	dropped atomic.Uint64

	// adaptFailed is the total number of failed thread-priority changes.
	adaptFailed atomic.Uint64
}

// Executed returns the total number of executed tasks.
// Intended for cold-path observation.
func (m *AtomicMetrics) Executed() uint64 {
	return m.executed.Load()
}

// Queued returns the current number of queued tasks.
// Intended for cold-path observation.
func (m *AtomicMetrics) Queued() int64 {
	return m.queued.Load()
}

// Dropped returns the total number of tasks dropped at shutdown.
func (m *AtomicMetrics) Dropped() uint64 {
	return m.dropped.Load()
}

// AdaptFailures returns the total number of failed priority adaptations.
func (m *AtomicMetrics) AdaptFailures() uint64 {
	return m.adaptFailed.Load()
}

// IncExecuted increments the executed tasks counter by one.
func (m *AtomicMetrics) IncExecuted() {
	m.executed.Add(1)
}

// IncQueued increments the queued tasks counter by one.
func (m *AtomicMetrics) IncQueued() {
	m.queued.Add(1)
}

// DecQueued decrements the queued tasks counter by one.
func (m *AtomicMetrics) DecQueued() {
	m.queued.Add(-1)
}

// AddDropped records n dropped tasks and clears their queued slots.
func (m *AtomicMetrics) AddDropped(n int64) {
	m.dropped.Add(uint64(n))
	m.queued.Add(-n)
}

// IncAdaptFailed increments the adaptation failure counter by one.
func (m *AtomicMetrics) IncAdaptFailed() {
	m.adaptFailed.Add(1)
}

//------------- NoopMetrics ----------------------------------

// NoopMetrics is a MetricsPolicy implementation that discards
// all metric updates.
//
// It can be used when metrics collection is disabled and
// zero overhead is desired.
type NoopMetrics struct{}

func (m *NoopMetrics) IncExecuted()     {}
func (m *NoopMetrics) IncQueued()       {}
func (m *NoopMetrics) DecQueued()       {}
func (m *NoopMetrics) AddDropped(int64) {}
func (m *NoopMetrics) IncAdaptFailed()  {}

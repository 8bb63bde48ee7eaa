// Package priopool provides a fixed-size worker-thread pool that
// executes tasks in priority order rather than submission order.
//
// Design goals
//
// The package is designed around the following principles:
//
//   - Dispatch the highest-priority pending task first, always
//   - Cooperate with the OS scheduler, not just the pool's own ordering
//   - Keep the synchronization surface small: one lock, one condition
//   - Fire and forget: no futures, no results, no per-task cancellation
//
// Architecture overview
//
// The pool is composed of three parts:
//
//  1. Priority queue
//     A max-heap of (func, Priority) records. The highest-priority
//     pending task is always dequeued next. Ties between tasks of
//     equal priority are explicitly unordered — the heap keeps no
//     insertion sequence, so equal-priority tasks may run in any
//     order.
//
//  2. Workers
//     A fixed set of goroutines created at construction, each locked
//     to its own OS thread. A worker waits until the queue is
//     non-empty or shutdown is requested, pops one task, aligns its
//     thread's native scheduling priority with the task's Priority,
//     and runs the task with the lock released. Long-running tasks
//     therefore never block submitters, and a task may itself submit
//     new tasks without deadlocking.
//
//  3. Pool
//     Owns the queue, the workers, the shutdown flag, and the
//     read/write lock plus condition variable guarding them.
//     Submission takes the lock exclusively; the introspection calls
//     (RemainingTasks, HasRemainingTasks) take it shared and may run
//     concurrently with each other.
//
// OS priority adaptation
//
// Priority is an abstract ordered enumeration; the queue never
// compares native OS values. A separate per-platform table maps each
// level to a nice value, applied to the worker's thread through the
// narrow ThreadScheduler capability right before the task runs. A
// failed read or change is logged and counted, never fatal, and is
// re-attempted on the next dispatch. On platforms without support the
// pool degrades to pure queue-order scheduling.
//
// Raising a thread's priority typically requires elevated privileges;
// without them the High and Realtime levels still order the queue
// correctly but the nice change is refused by the OS.
//
// Shutdown
//
// Stop (or Shutdown with a deadline) flips the shutdown flag, discards
// every task still queued, wakes all workers, and joins them. In-flight
// tasks finish naturally; queued tasks are dropped unexecuted. There is
// no drain-to-completion mode.
//
// Error handling
//
// Task callables are invoked as-is: the pool does not recover panics,
// so a panicking task terminates the process exactly as it would
// outside the pool. The only failure the pool itself reports is the
// non-fatal OS-priority adaptation diagnostic.
package priopool

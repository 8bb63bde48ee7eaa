package priopool

import (
	"runtime"

	"go.uber.org/zap"
)

// worker is one persistent execution thread owned by the pool. It loops
// through four states: waiting for the queue to become non-empty,
// dequeuing one task under the pool lock, adapting its thread's OS
// priority to the task's Priority, and executing the task with the lock
// released.
type worker struct {
	pool  *Pool
	sched ThreadScheduler
	log   *zap.Logger
}

func (w *worker) run() {
	// The goroutine stays locked to its thread for its whole life; the
	// nice value set below must land on the thread that executes the
	// task, and exiting while locked lets the runtime discard the
	// thread instead of returning it, dirtied, to the scheduler.
	runtime.LockOSThread()
	defer w.pool.wg.Done()

	w.log.Debug("worker started")
	for {
		t, ok := w.next()
		if !ok {
			w.log.Debug("worker exiting")
			return
		}
		w.adapt(t.Priority)
		// Not recovered: a panicking task is the submitter's problem,
		// the pool neither catches nor masks it.
		t.Fn()
		w.pool.cfg.metrics.IncExecuted()
	}
}

// next blocks until a task is available or shutdown is requested. The
// condition wait releases the pool lock atomically, so a submission
// between the emptiness check and the sleep cannot be missed. It
// returns false exactly when the worker must terminate; queued tasks
// remaining at that point are not consumed.
func (w *worker) next() (Task, bool) {
	p := w.pool
	p.mu.Lock()
	defer p.mu.Unlock()

	for p.queue.empty() && !p.quit {
		p.cond.Wait()
	}
	if p.quit {
		return Task{}, false
	}
	t := p.queue.popMax()
	p.cfg.metrics.DecQueued()
	return t, true
}

// adapt aligns the OS scheduling priority of the worker's thread with
// the task's Priority. The change is skipped when the thread already
// holds the wanted nice value. Failures are logged and never fatal, and
// the next dispatch attempts again from scratch.
func (w *worker) adapt(prio Priority) {
	want := niceFor(prio)

	cur, err := w.sched.Current()
	if err != nil {
		w.pool.cfg.metrics.IncAdaptFailed()
		w.log.Warn("could not read thread priority",
			zap.Stringer("priority", prio),
			zap.Error(err),
		)
		return
	}
	if cur == want {
		return
	}
	if err := w.sched.Set(want); err != nil {
		w.pool.cfg.metrics.IncAdaptFailed()
		w.log.Warn("could not change thread priority",
			zap.Stringer("priority", prio),
			zap.Int("nice", want),
			zap.Error(err),
		)
	}
}

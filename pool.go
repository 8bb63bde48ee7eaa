package priopool

import (
	"context"
	"runtime"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	_ "go.uber.org/automaxprocs"
)

// Pool executes submitted tasks on a fixed set of worker threads in
// priority order. See the package documentation for the full contract.
//
// A Pool must not be copied after construction; workers hold references
// into its synchronization state. Use it through the pointer returned
// by New.
type Pool struct {
	mu    sync.RWMutex
	cond  *sync.Cond
	queue *taskQueue
	quit  bool

	wg       sync.WaitGroup
	stopOnce sync.Once

	cfg config
}

// New creates a pool with the given number of workers. The workers
// start immediately and block until tasks arrive.
//
// workers must be at least 1; otherwise ErrInvalidWorkerCount is
// returned before any thread is created.
func New(workers int, opts ...Option) (*Pool, error) {
	if workers < 1 {
		return nil, errors.Wrapf(ErrInvalidWorkerCount, "got %d", workers)
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.fillDefaults()

	p := &Pool{
		queue: newTaskQueue(),
		cfg:   cfg,
	}
	p.cond = sync.NewCond(&p.mu)

	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		w := &worker{
			pool:  p,
			sched: cfg.sched,
			log:   cfg.logger.With(zap.Int("worker", i)),
		}
		go w.run()
	}
	return p, nil
}

// NewDefault creates a pool with one worker per available execution
// unit (GOMAXPROCS, container-aware via automaxprocs).
func NewDefault(opts ...Option) *Pool {
	p, err := New(runtime.GOMAXPROCS(0), opts...)
	if err != nil {
		// GOMAXPROCS is always >= 1
		panic(err)
	}
	return p
}

// Submit enqueues one task and wakes a worker. It never blocks beyond
// acquiring the queue lock; the queue itself is unbounded.
//
// A zero Task.Priority submits at PriorityNormal. Submitting to a
// stopped pool returns ErrPoolClosed.
func (p *Pool) Submit(t Task) error {
	if t.Fn == nil {
		return errors.WithStack(ErrNilFunc)
	}

	p.mu.Lock()
	if p.quit {
		p.mu.Unlock()
		return errors.WithStack(ErrPoolClosed)
	}
	p.queue.insert(t)
	p.cfg.metrics.IncQueued()
	p.mu.Unlock()

	p.cond.Signal()
	return nil
}

// SubmitFunc enqueues fn at the given priority.
func (p *Pool) SubmitFunc(fn func(), prio Priority) error {
	return p.Submit(Task{Fn: fn, Priority: prio})
}

// SubmitBatch enqueues all tasks under a single lock acquisition and
// wakes a worker once. The insertion is atomic with respect to other
// submitters and to the workers: no observer can see a partially
// inserted batch. Net effect equals len(tasks) single submissions, at
// the cost of one lock cycle and one wake.
func (p *Pool) SubmitBatch(tasks []Task) error {
	if len(tasks) == 0 {
		return nil
	}
	for _, t := range tasks {
		if t.Fn == nil {
			return errors.WithStack(ErrNilFunc)
		}
	}

	p.mu.Lock()
	if p.quit {
		p.mu.Unlock()
		return errors.WithStack(ErrPoolClosed)
	}
	for _, t := range tasks {
		p.queue.insert(t)
		p.cfg.metrics.IncQueued()
	}
	p.mu.Unlock()

	p.cond.Signal()
	return nil
}

// RemainingTasks returns the current queue depth. The value is a
// best-effort snapshot and may be stale by the time it is observed
// under concurrent submission and consumption.
func (p *Pool) RemainingTasks() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.queue.len()
}

// HasRemainingTasks reports whether the queue is currently non-empty,
// with the same staleness caveat as RemainingTasks.
func (p *Pool) HasRemainingTasks() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return !p.queue.empty()
}

// Shutdown requests termination, discards all queued tasks unexecuted,
// wakes every worker, and waits for them to exit. In-flight tasks are
// not interrupted; the wait covers their natural completion. The wait
// is bounded by ctx; the termination request itself is not undone when
// ctx expires.
func (p *Pool) Shutdown(ctx context.Context) error {
	p.stopOnce.Do(func() {
		p.mu.Lock()
		p.quit = true
		dropped := p.queue.clear()
		p.mu.Unlock()

		p.cond.Broadcast()

		if dropped > 0 {
			p.cfg.metrics.AddDropped(int64(dropped))
			p.cfg.logger.Info("discarded queued tasks on shutdown",
				zap.Int("dropped", dropped),
			)
		}
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		p.wg.Wait()
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

// Stop is Shutdown with no deadline: it blocks until every worker has
// terminated.
func (p *Pool) Stop() {
	_ = p.Shutdown(context.Background())
}

package priopool_test

import (
	"runtime"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	pp "github.com/azargarov/priopool"
)

// stubSched stands in for the native thread-priority capability so the
// tests do not depend on host privileges. Later options override it.
type stubSched struct{}

func (stubSched) Current() (int, error) { return 0, nil }
func (stubSched) Set(int) error         { return nil }

func newTestPool(t *testing.T, workers int, opts ...pp.Option) *pp.Pool {
	t.Helper()

	opts = append([]pp.Option{
		pp.WithLogger(zaptest.NewLogger(t)),
		pp.WithThreadScheduler(stubSched{}),
	}, opts...)
	p, err := pp.New(workers, opts...)
	if err != nil {
		t.Fatalf("New(%d) failed: %v", workers, err)
	}
	t.Cleanup(p.Stop)
	return p
}

// blockWorker occupies one worker with a task that holds until the
// returned release func is called. It does not return before the task
// has actually started.
func blockWorker(t *testing.T, p *pp.Pool) (release func()) {
	t.Helper()

	gate := make(chan struct{})
	started := make(chan struct{})
	err := p.Submit(pp.Task{Fn: func() {
		close(started)
		<-gate
	}})
	if err != nil {
		t.Fatalf("submit blocker failed: %v", err)
	}

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("blocker task did not start")
	}

	var once sync.Once
	return func() { once.Do(func() { close(gate) }) }
}

func waitDone(t *testing.T, wg *sync.WaitGroup, timeout time.Duration) {
	t.Helper()

	done := make(chan struct{})
	go func() {
		defer close(done)
		wg.Wait()
	}()

	select {
	case <-done:
	case <-time.After(timeout):
		t.Fatal("tasks did not complete before timeout")
	}
}

func waitUntil(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		runtime.Gosched()
	}
	t.Fatal("condition not satisfied before timeout")
}

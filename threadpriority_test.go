package priopool

import (
	"sync"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"
)

// fakeSched records every priority change attempted by a worker. cur is
// what Current reports; attempts collects the nice values passed to Set
// whether or not setErr makes the call fail.
type fakeSched struct {
	mu       sync.Mutex
	cur      int
	attempts []int
	curErr   error
	setErr   error
}

func (f *fakeSched) Current() (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.curErr != nil {
		return 0, f.curErr
	}
	return f.cur, nil
}

func (f *fakeSched) Set(nice int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.attempts = append(f.attempts, nice)
	if f.setErr != nil {
		return f.setErr
	}
	f.cur = nice
	return nil
}

func (f *fakeSched) setCalls() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int(nil), f.attempts...)
}

func newAdaptPool(t *testing.T, sched ThreadScheduler, m MetricsPolicy) *Pool {
	t.Helper()

	opts := []Option{
		WithLogger(zaptest.NewLogger(t)),
		WithThreadScheduler(sched),
	}
	if m != nil {
		opts = append(opts, WithMetrics(m))
	}
	p, err := New(1, opts...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(p.Stop)
	return p
}

func runTask(t *testing.T, p *Pool, prio Priority) {
	t.Helper()

	done := make(chan struct{})
	if err := p.SubmitFunc(func() { close(done) }, prio); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("task did not run")
	}
}

func TestWorkerAppliesTaskPriority(t *testing.T) {
	t.Parallel()

	sched := &fakeSched{cur: 0}
	p := newAdaptPool(t, sched, nil)

	runTask(t, p, PriorityHigh)

	calls := sched.setCalls()
	if len(calls) != 1 || calls[0] != niceFor(PriorityHigh) {
		t.Fatalf("Set calls = %v; want [%d]", calls, niceFor(PriorityHigh))
	}
}

func TestWorkerSkipsMatchingPriority(t *testing.T) {
	t.Parallel()

	sched := &fakeSched{cur: niceFor(PriorityNormal)}
	p := newAdaptPool(t, sched, nil)

	runTask(t, p, PriorityNormal)

	if calls := sched.setCalls(); len(calls) != 0 {
		t.Fatalf("Set called %v times for an already-matching priority", calls)
	}
}

func TestWorkerFollowsPriorityAcrossTasks(t *testing.T) {
	t.Parallel()

	sched := &fakeSched{cur: 0}
	p := newAdaptPool(t, sched, nil)

	runTask(t, p, PriorityRealtime)
	runTask(t, p, PriorityRealtime) // already at the wanted level, no change
	runTask(t, p, PriorityLowest)

	want := []int{niceFor(PriorityRealtime), niceFor(PriorityLowest)}
	calls := sched.setCalls()
	if len(calls) != len(want) || calls[0] != want[0] || calls[1] != want[1] {
		t.Fatalf("Set calls = %v; want %v", calls, want)
	}
}

func TestAdaptSetFailureIsNonFatal(t *testing.T) {
	t.Parallel()

	m := &AtomicMetrics{}
	sched := &fakeSched{cur: 0, setErr: ErrUnsupportedPlatform}
	p := newAdaptPool(t, sched, m)

	// Both tasks must execute despite the failing capability, and the
	// change must be re-attempted on every dispatch.
	runTask(t, p, PriorityHigh)
	runTask(t, p, PriorityHigh)

	if calls := sched.setCalls(); len(calls) != 2 {
		t.Fatalf("Set attempts = %v; want one per dispatch", calls)
	}
	if got := m.AdaptFailures(); got != 2 {
		t.Fatalf("adapt failure counter = %d; want 2", got)
	}
}

func TestAdaptReadFailureSkipsChange(t *testing.T) {
	t.Parallel()

	m := &AtomicMetrics{}
	sched := &fakeSched{curErr: ErrUnsupportedPlatform}
	p := newAdaptPool(t, sched, m)

	runTask(t, p, PriorityRealtime)

	if calls := sched.setCalls(); len(calls) != 0 {
		t.Fatalf("Set calls = %v; want none when Current fails", calls)
	}
	if got := m.AdaptFailures(); got != 1 {
		t.Fatalf("adapt failure counter = %d; want 1", got)
	}
}

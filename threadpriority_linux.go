//go:build linux

package priopool

import (
	"golang.org/x/sys/unix"
)

// nativeScheduler adjusts the calling thread's nice value through the
// getpriority/setpriority syscalls, addressed by thread id so only the
// worker's own thread is affected.
type nativeScheduler struct{}

// NewNativeScheduler returns the ThreadScheduler backed by the host's
// thread-priority syscalls. It is the default capability used by the
// pool's workers.
func NewNativeScheduler() ThreadScheduler {
	return nativeScheduler{}
}

func (nativeScheduler) Current() (int, error) {
	raw, err := unix.Getpriority(unix.PRIO_PROCESS, unix.Gettid())
	if err != nil {
		return 0, err
	}
	// The raw syscall reports 20-nice (1..40); glibc normally hides this.
	return 20 - raw, nil
}

func (nativeScheduler) Set(nice int) error {
	return unix.Setpriority(unix.PRIO_PROCESS, unix.Gettid(), nice)
}

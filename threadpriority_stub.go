//go:build !linux

package priopool

// nativeScheduler on platforms without thread-priority support. Every
// call reports ErrUnsupportedPlatform; workers log it and execute tasks
// at whatever priority the thread already has.
type nativeScheduler struct{}

// NewNativeScheduler returns the ThreadScheduler backed by the host's
// thread-priority syscalls. On this platform it is a stub that always
// fails.
func NewNativeScheduler() ThreadScheduler {
	return nativeScheduler{}
}

func (nativeScheduler) Current() (int, error) {
	return 0, ErrUnsupportedPlatform
}

func (nativeScheduler) Set(int) error {
	return ErrUnsupportedPlatform
}

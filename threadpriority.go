package priopool

// ThreadScheduler controls the scheduling priority of the calling OS
// thread. It is the narrow capability the worker uses to align the
// thread it runs on with the Priority of the task it is about to
// execute.
//
// Both methods operate on the calling thread only, so they must be
// invoked from a goroutine locked to its thread. Implementations report
// failure through the error return and must not retry internally; the
// worker re-attempts on every dispatch.
type ThreadScheduler interface {
	// Current returns the nice value of the calling thread.
	Current() (int, error)

	// Set changes the nice value of the calling thread.
	Set(nice int) error
}

// priorityNice translates the abstract Priority levels to nice values.
// Raising priority (negative nice) usually requires elevated privileges;
// a refused Set is logged by the worker and execution proceeds at the
// thread's current priority.
var priorityNice = map[Priority]int{
	PriorityLowest:   19,
	PriorityLow:      10,
	PriorityNormal:   0,
	PriorityHigh:     -10,
	PriorityRealtime: -20,
}

func niceFor(p Priority) int {
	if n, ok := priorityNice[p]; ok {
		return n
	}
	return priorityNice[PriorityNormal]
}

package priopool

// Priority is the urgency level attached to a task at submit time.
//
// The five levels form a total order:
//
//	PriorityLowest < PriorityLow < PriorityNormal < PriorityHigh < PriorityRealtime
//
// The ordering is abstract and identical on every platform; translation
// to the host's native thread-scheduling scale happens separately in the
// adaptation step (see ThreadScheduler). The zero value is PriorityNormal,
// so a Task constructed without an explicit priority is submitted at the
// default level.
type Priority int8

const (
	PriorityLowest   Priority = -2
	PriorityLow      Priority = -1
	PriorityNormal   Priority = 0
	PriorityHigh     Priority = 1
	PriorityRealtime Priority = 2
)

func (p Priority) String() string {
	switch p {
	case PriorityLowest:
		return "Lowest"
	case PriorityLow:
		return "Low"
	case PriorityNormal:
		return "Normal"
	case PriorityHigh:
		return "High"
	case PriorityRealtime:
		return "Realtime"
	default:
		return "Unknown"
	}
}

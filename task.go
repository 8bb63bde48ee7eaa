package priopool

// Task represents a single unit of work submitted to the pool.
//
// Fn is the callable the worker invokes; it takes no arguments, returns
// nothing, and its result (if any) must be communicated through side
// effects. Priority decides where the task lands in the queue. A Task is
// immutable once submitted and is consumed by exactly one worker.
//
// The zero Priority is PriorityNormal, so Task{Fn: fn} submits at the
// default level.
type Task struct {
	Fn       func()
	Priority Priority
}

package priopool

import "container/heap"

const initialQueueCapacity = 256

// taskHeap — max-heap keyed on Priority.
type taskHeap []Task

func (h taskHeap) Len() int { return len(h) }
func (h taskHeap) Less(i, j int) bool {
	return h[i].Priority > h[j].Priority // max-heap
}
func (h taskHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *taskHeap) Push(x any) {
	*h = append(*h, x.(Task))
}

func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = Task{} // release the closure
	*h = old[:n-1]
	return t
}

// taskQueue holds pending tasks ordered by Priority.
//
// Among tasks of equal priority no order is maintained: the heap is
// unstable and no secondary key exists, so equal-priority tasks may be
// dequeued in any order. Callers that need FIFO within a level must
// not rely on this queue for it.
//
// taskQueue is not safe for concurrent use; the pool serializes all
// access under its lock.
type taskQueue struct {
	h taskHeap
}

func newTaskQueue() *taskQueue {
	q := &taskQueue{}
	q.h = make(taskHeap, 0, initialQueueCapacity) // preallocate
	heap.Init(&q.h)
	return q
}

// insert adds a task in O(log n).
func (q *taskQueue) insert(t Task) {
	heap.Push(&q.h, t)
}

// popMax removes and returns a task with the greatest Priority.
// Valid only when the queue is non-empty.
func (q *taskQueue) popMax() Task {
	return heap.Pop(&q.h).(Task)
}

// clear discards all pending tasks and returns how many were dropped.
func (q *taskQueue) clear() int {
	n := len(q.h)
	for i := range q.h {
		q.h[i] = Task{}
	}
	q.h = q.h[:0]
	return n
}

func (q *taskQueue) len() int { return len(q.h) }

func (q *taskQueue) empty() bool { return len(q.h) == 0 }

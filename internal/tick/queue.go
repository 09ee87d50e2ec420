// Package tick implements the cooperative timer queue driving all delayed
// gameplay work: status-effect expiry, skill cooldowns, deferred saves.
// Tasks run on whichever goroutine calls RunDue, never on their own; the
// queue guarantees due tasks execute ordered by deadline, ties broken by
// scheduling order.
package tick

import (
	"container/heap"
	"sync"
	"time"
)

// Task is the cancellation handle for one scheduled callback.
type Task struct {
	when time.Time
	seq  uint64
	fn   func()

	index int // heap position, -1 once popped or cancelled
}

// When returns the task's deadline.
func (t *Task) When() time.Time {
	return t.when
}

type taskHeap []*Task

func (h taskHeap) Len() int { return len(h) }

func (h taskHeap) Less(i, j int) bool {
	if !h[i].when.Equal(h[j].when) {
		return h[i].when.Before(h[j].when)
	}
	// Одинаковый дедлайн: побеждает порядок планирования (FIFO).
	return h[i].seq < h[j].seq
}

func (h taskHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *taskHeap) Push(x any) {
	t := x.(*Task)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}

// Queue holds pending tasks ordered by (deadline, scheduling order).
// Scheduling and cancellation are safe from any goroutine; execution
// happens only inside RunDue.
type Queue struct {
	mu    sync.Mutex
	tasks taskHeap
	seq   uint64
}

// NewQueue creates an empty task queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Schedule enqueues fn to run once delay has elapsed. Zero and negative
// delays are honored on the next RunDue, never inline.
func (q *Queue) Schedule(delay time.Duration, fn func()) *Task {
	return q.ScheduleAt(time.Now().Add(delay), fn)
}

// ScheduleAt enqueues fn to run at the given deadline.
func (q *Queue) ScheduleAt(when time.Time, fn func()) *Task {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.seq++
	t := &Task{when: when, seq: q.seq, fn: fn}
	heap.Push(&q.tasks, t)
	return t
}

// Cancel removes a pending task. Returns false if the task already ran
// or was already cancelled.
func (q *Queue) Cancel(t *Task) bool {
	if t == nil {
		return false
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if t.index < 0 {
		return false
	}
	heap.Remove(&q.tasks, t.index)
	return true
}

// RunDue executes every task whose deadline is at or before now, in
// (deadline, scheduling order). The due set is fixed before the first
// callback runs: tasks scheduled by callbacks wait for the next RunDue
// even when already due. Returns the number of tasks executed.
func (q *Queue) RunDue(now time.Time) int {
	q.mu.Lock()
	var due []*Task
	for len(q.tasks) > 0 && !q.tasks[0].when.After(now) {
		due = append(due, heap.Pop(&q.tasks).(*Task))
	}
	q.mu.Unlock()

	for _, t := range due {
		t.fn()
	}
	return len(due)
}

// Len returns the number of pending tasks.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

package score

import "container/heap"

// task is a composer waiting to be resumed at time.
type task struct {
	time     float64
	order    uint64
	composer Composer
}

// queue implements a heap of tasks ordered by time, with ties going to the
// task that was inserted first.
type queue []*task

func (q queue) Len() int {
	return len(q)
}

func (q queue) Less(i, j int) bool {
	if q[i].time != q[j].time {
		return q[i].time < q[j].time
	}
	return q[i].order < q[j].order
}

func (q queue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
}

func (q *queue) Push(x interface{}) {
	*q = append(*q, x.(*task))
}

func (q *queue) Pop() interface{} {
	old := *q
	x := old[len(old)-1]
	old[len(old)-1] = nil
	*q = old[:len(old)-1]
	return x
}

// scheduler hands out insertion order numbers so that equal-time tasks run
// in the order they were queued.
type scheduler struct {
	q    queue
	next uint64
}

func (s *scheduler) push(time float64, c Composer) {
	heap.Push(&s.q, &task{time: time, order: s.next, composer: c})
	s.next++
}

func (s *scheduler) pop() *task {
	return heap.Pop(&s.q).(*task)
}

func (s *scheduler) empty() bool {
	return len(s.q) == 0
}

package rrsched

import "strconv"

// Queue is the ready queue: indices into the process table in insertion
// order. It does not check for duplicates; the scheduler does.
type Queue struct {
	q []int
}

func newQueue(capacity int) *Queue {
	return &Queue{q: make([]int, 0, capacity)}
}

func (q *Queue) String() string {
	str := "["
	for i, idx := range q.q {
		if i > 0 {
			str += " "
		}
		str += strconv.Itoa(idx)
	}
	return str + "]"
}

func (q *Queue) enq(idx int) {
	q.q = append(q.q, idx)
}

func (q *Queue) deq() (int, bool) {
	if len(q.q) == 0 {
		return -1, false
	}
	idx := q.q[0]
	q.q = q.q[1:]
	return idx, true
}

func (q *Queue) qlen() int {
	return len(q.q)
}

func (q *Queue) empty() bool {
	return len(q.q) == 0
}

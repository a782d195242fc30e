package shell

import (
	"container/heap"
	"sync"
	"time"
)

// Timer is a deadline paired with its token.
type Timer struct {
	deadline time.Time
	token    TimerToken
}

// NewTimer creates a timer for the deadline and issues it a fresh token.
func NewTimer(deadline time.Time) Timer {
	return Timer{deadline: deadline, token: nextTimerToken()}
}

// Deadline returns the instant at or after which the timer fires.
func (t Timer) Deadline() time.Time { return t.deadline }

// Token returns the timer's token.
func (t Timer) Token() TimerToken { return t.token }

// timerHeap orders timers so that the earliest deadline is at the head.
// Deadline ties break by issuance order, so equal-deadline timers fire in
// the order they were requested.
type timerHeap []Timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].deadline.Equal(h[j].deadline) {
		return h[i].token < h[j].token
	}
	return h[i].deadline.Before(h[j].deadline)
}

func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *timerHeap) Push(x any) { *h = append(*h, x.(Timer)) }

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	*h = old[:n-1]
	return t
}

// timerQueue is the per-window timer bookkeeping. Only the owning thread
// touches it; the lock exists so the queue can sit inside a Window that
// handles are allowed to reference from other goroutines, not to enable
// concurrent delivery.
type timerQueue struct {
	mu   sync.Mutex
	heap timerHeap
}

// schedule adds a timer for the deadline and returns its token.
func (q *timerQueue) schedule(deadline time.Time) TimerToken {
	t := NewTimer(deadline)
	q.mu.Lock()
	heap.Push(&q.heap, t)
	q.mu.Unlock()
	return t.token
}

// nextDeadline returns the earliest pending deadline, if any.
func (q *timerQueue) nextDeadline() (time.Time, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.heap) == 0 {
		return time.Time{}, false
	}
	return q.heap[0].deadline, true
}

// popDue removes and returns the head timer if its deadline is at or
// before now.
func (q *timerQueue) popDue(now time.Time) (Timer, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.heap) == 0 || q.heap[0].deadline.After(now) {
		return Timer{}, false
	}
	return heap.Pop(&q.heap).(Timer), true
}

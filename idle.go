package shell

import "sync"

// IdleCallback is a single-use closure run on the window's owning thread.
// It receives the handler's opaque self-reference (WinHandler.AsAny), so
// toolkit code can downcast to its own handler type.
type IdleCallback func(handler any)

// idleKind discriminates queued idle work.
type idleKind int

const (
	idleCallback idleKind = iota
	idleToken
	idleRedraw
)

type idleItem struct {
	kind     idleKind
	callback IdleCallback
	token    IdleToken
}

// IdleQueue is a thread-safe FIFO of idle work. Producers may be any
// goroutine; the consumer is the window's owning thread, which drains the
// whole queue by swap-and-take so the lock is never held across a handler
// call.
type IdleQueue struct {
	mu            sync.Mutex
	items         []idleItem
	redrawPending bool
	wake          func()
}

// NewIdleQueue creates an idle queue. wake, if non-nil, is invoked after
// every enqueue to rouse the native event loop; backends whose loop polls
// pass nil.
func NewIdleQueue(wake func()) *IdleQueue {
	return &IdleQueue{wake: wake}
}

func (q *IdleQueue) push(it idleItem) {
	q.mu.Lock()
	q.items = append(q.items, it)
	q.mu.Unlock()
	if q.wake != nil {
		q.wake()
	}
}

// AddCallback enqueues a closure to run on the owning thread.
func (q *IdleQueue) AddCallback(f IdleCallback) {
	q.push(idleItem{kind: idleCallback, callback: f})
}

// AddToken enqueues a pre-registered idle token.
func (q *IdleQueue) AddToken(tok IdleToken) {
	q.push(idleItem{kind: idleToken, token: tok})
}

// ScheduleRedraw enqueues a redraw request. Redraws coalesce: at most one
// is pending at a time.
func (q *IdleQueue) ScheduleRedraw() {
	q.mu.Lock()
	if q.redrawPending {
		q.mu.Unlock()
		return
	}
	q.redrawPending = true
	q.items = append(q.items, idleItem{kind: idleRedraw})
	q.mu.Unlock()
	if q.wake != nil {
		q.wake()
	}
}

// take atomically swaps the queue contents for an empty list.
func (q *IdleQueue) take() []idleItem {
	q.mu.Lock()
	items := q.items
	q.items = nil
	q.redrawPending = false
	q.mu.Unlock()
	return items
}

// IdleHandle is a producer handle over a window's idle queue. It is cheap
// to copy and safe to send across goroutines; enqueuing wakes the event
// loop and never blocks on the consumer.
type IdleHandle struct {
	queue *IdleQueue
}

// AddIdleCallback enqueues a closure that will be invoked on the window's
// owning thread with the handler's opaque self-reference.
func (h IdleHandle) AddIdleCallback(f IdleCallback) {
	h.queue.AddCallback(f)
}

// AddIdleToken enqueues a pre-registered token for WinHandler.Idle.
func (h IdleHandle) AddIdleToken(tok IdleToken) {
	h.queue.AddToken(tok)
}

// scheduleRedraw posts a coalesced redraw request.
func (h IdleHandle) scheduleRedraw() {
	h.queue.ScheduleRedraw()
}

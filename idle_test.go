package shell

import (
	"sync"
	"testing"
)

func TestIdleQueueFIFO(t *testing.T) {
	q := NewIdleQueue(nil)

	var got []int
	for i := 0; i < 5; i++ {
		n := i
		q.AddCallback(func(any) { got = append(got, n) })
	}

	for _, it := range q.take() {
		if it.kind != idleCallback {
			t.Fatalf("unexpected kind %d", it.kind)
		}
		it.callback(nil)
	}
	for i, n := range got {
		if n != i {
			t.Errorf("callback %d ran at position %d", n, i)
		}
	}
}

func TestIdleQueueCrossThread(t *testing.T) {
	q := NewIdleQueue(nil)

	const producers = 2
	const perProducer = 10

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				id := p*perProducer + i
				q.AddCallback(func(any) { _ = id })
				q.AddToken(IdleToken(id))
			}
		}(p)
	}
	wg.Wait()

	items := q.take()
	if len(items) != producers*perProducer*2 {
		t.Fatalf("drained %d items, want %d", len(items), producers*perProducer*2)
	}

	// Each producer's tokens come out in its submission order.
	var perP [producers][]int
	for _, it := range items {
		if it.kind != idleToken {
			continue
		}
		id := int(it.token)
		perP[id/perProducer] = append(perP[id/perProducer], id%perProducer)
	}
	for p := 0; p < producers; p++ {
		for i, n := range perP[p] {
			if n != i {
				t.Errorf("producer %d: token %d at position %d", p, n, i)
			}
		}
	}
}

func TestIdleQueueRedrawCoalesces(t *testing.T) {
	q := NewIdleQueue(nil)

	q.ScheduleRedraw()
	q.ScheduleRedraw()
	q.ScheduleRedraw()

	redraws := 0
	for _, it := range q.take() {
		if it.kind == idleRedraw {
			redraws++
		}
	}
	if redraws != 1 {
		t.Errorf("expected 1 coalesced redraw, got %d", redraws)
	}

	// Take resets the coalescing, a later request queues again.
	q.ScheduleRedraw()
	if len(q.take()) != 1 {
		t.Error("redraw after take should queue")
	}
}

func TestIdleQueueWake(t *testing.T) {
	wakes := 0
	q := NewIdleQueue(func() { wakes++ })

	q.AddCallback(func(any) {})
	q.AddToken(1)
	q.ScheduleRedraw()
	q.ScheduleRedraw() // coalesced, no second wake

	if wakes != 3 {
		t.Errorf("expected 3 wakes, got %d", wakes)
	}
}

func TestIdleQueueTakeEmpty(t *testing.T) {
	q := NewIdleQueue(nil)
	if items := q.take(); len(items) != 0 {
		t.Errorf("take on empty queue = %d items", len(items))
	}
}

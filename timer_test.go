package shell

import (
	"testing"
	"time"
)

func TestTimerTokensUnique(t *testing.T) {
	seen := map[TimerToken]bool{TimerTokenInvalid: true}
	for i := 0; i < 100; i++ {
		tok := NewTimer(time.Now()).Token()
		if seen[tok] {
			t.Fatalf("token %d issued twice", tok)
		}
		seen[tok] = true
	}
}

func TestTimerQueueOrdering(t *testing.T) {
	var q timerQueue
	now := time.Now()

	late := q.schedule(now.Add(30 * time.Millisecond))
	early := q.schedule(now.Add(10 * time.Millisecond))
	mid := q.schedule(now.Add(20 * time.Millisecond))

	deadline, ok := q.nextDeadline()
	if !ok || !deadline.Equal(now.Add(10*time.Millisecond)) {
		t.Fatalf("nextDeadline = %v, %v", deadline, ok)
	}

	var fired []TimerToken
	for {
		tm, ok := q.popDue(now.Add(time.Second))
		if !ok {
			break
		}
		fired = append(fired, tm.Token())
	}
	want := []TimerToken{early, mid, late}
	if len(fired) != len(want) {
		t.Fatalf("fired %d timers, want %d", len(fired), len(want))
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Errorf("fired[%d] = %d, want %d", i, fired[i], want[i])
		}
	}
}

func TestTimerQueueTieBreak(t *testing.T) {
	var q timerQueue
	deadline := time.Now().Add(5 * time.Millisecond)

	first := q.schedule(deadline)
	second := q.schedule(deadline)

	tm, ok := q.popDue(deadline)
	if !ok || tm.Token() != first {
		t.Errorf("first pop = %d, want %d", tm.Token(), first)
	}
	tm, ok = q.popDue(deadline)
	if !ok || tm.Token() != second {
		t.Errorf("second pop = %d, want %d", tm.Token(), second)
	}
}

func TestTimerQueuePastDeadline(t *testing.T) {
	var q timerQueue
	now := time.Now()

	// A deadline already in the past is due at the next tick, not lost.
	tok := q.schedule(now.Add(-time.Second))
	tm, ok := q.popDue(now)
	if !ok || tm.Token() != tok {
		t.Fatalf("past-deadline timer did not fire: %v, %v", tm.Token(), ok)
	}
}

func TestTimerQueueNotDueYet(t *testing.T) {
	var q timerQueue
	now := time.Now()
	q.schedule(now.Add(time.Minute))

	if _, ok := q.popDue(now); ok {
		t.Error("future timer should not pop")
	}
	if _, ok := q.nextDeadline(); !ok {
		t.Error("future timer should still be pending")
	}
}

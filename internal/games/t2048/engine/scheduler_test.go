package engine

import (
	"testing"
	"time"
)

// scriptedMover returns queued results in order, then false.
type scriptedMover struct {
	results []bool
	calls   []Direction
}

func (m *scriptedMover) PerformMove(dir Direction) bool {
	m.calls = append(m.calls, dir)
	if len(m.results) == 0 {
		return false
	}
	r := m.results[0]
	m.results = m.results[1:]
	return r
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

func newTestScheduler(mover Mover, clock *fakeClock) *Scheduler {
	return NewScheduler(mover, SchedulerOptions{
		Capacity: 100,
		Debounce: 300 * time.Millisecond,
		Clock:    clock.Now,
	})
}

func TestSchedulerDrainsImmediatelyWhenIdle(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	mover := &scriptedMover{results: []bool{true}}
	s := newTestScheduler(mover, clock)

	var got []bool
	s.Enqueue(MoveCommand{Direction: DirLeft, Completion: func(c bool) { got = append(got, c) }})

	if len(mover.calls) != 1 || mover.calls[0] != DirLeft {
		t.Fatalf("calls = %v, want [left]", mover.calls)
	}
	if len(got) != 1 || !got[0] {
		t.Errorf("completions = %v, want [true]", got)
	}
	if !s.Pending() {
		t.Error("effective move should arm the debounce")
	}
	if want := clock.now.Add(300 * time.Millisecond); !s.Deadline().Equal(want) {
		t.Errorf("Deadline() = %v, want %v", s.Deadline(), want)
	}
}

func TestSchedulerWaitsForDebounce(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	mover := &scriptedMover{results: []bool{true, true}}
	s := newTestScheduler(mover, clock)

	s.Enqueue(MoveCommand{Direction: DirUp})
	s.Enqueue(MoveCommand{Direction: DirDown})

	if len(mover.calls) != 1 {
		t.Fatalf("calls before debounce = %d, want 1", len(mover.calls))
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}

	s.Tick(clock.Advance(299 * time.Millisecond))
	if len(mover.calls) != 1 {
		t.Errorf("Tick before deadline ran a move")
	}

	s.Tick(clock.Advance(time.Millisecond))
	if len(mover.calls) != 2 || mover.calls[1] != DirDown {
		t.Errorf("calls = %v, want [up down]", mover.calls)
	}
	if !s.Pending() {
		t.Error("second effective move should re-arm the debounce")
	}
}

func TestSchedulerNoOpMovesSkipDebounce(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	mover := &scriptedMover{results: []bool{true, false, false, true, false}}
	s := newTestScheduler(mover, clock)

	s.Enqueue(MoveCommand{Direction: DirUp})
	for _, d := range []Direction{DirLeft, DirLeft, DirRight, DirDown} {
		s.Enqueue(MoveCommand{Direction: d})
	}

	s.Tick(clock.Advance(300 * time.Millisecond))

	// Two no-ops run back to back, the effective right stops the drain.
	want := []Direction{DirUp, DirLeft, DirLeft, DirRight}
	if len(mover.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", mover.calls, want)
	}
	for i := range want {
		if mover.calls[i] != want[i] {
			t.Errorf("calls[%d] = %v, want %v", i, mover.calls[i], want[i])
		}
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestSchedulerDropsBeyondCapacity(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	mover := &scriptedMover{results: []bool{true}}
	s := newTestScheduler(mover, clock)

	s.Enqueue(MoveCommand{Direction: DirUp})

	completions := 0
	for range 150 {
		s.Enqueue(MoveCommand{Direction: DirLeft, Completion: func(bool) { completions++ }})
	}

	if s.Len() != s.Capacity() {
		t.Errorf("Len() = %d, want %d", s.Len(), s.Capacity())
	}
	if completions != 0 {
		t.Errorf("dropped or waiting commands completed %d times", completions)
	}

	// Every remaining move is a no-op, so one tick drains the whole queue.
	s.Tick(clock.Advance(time.Second))
	if completions != 100 {
		t.Errorf("completions = %d, want 100", completions)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestSchedulerResetCancelsPendingDrain(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	mover := &scriptedMover{results: []bool{true, true, true}}
	s := newTestScheduler(mover, clock)

	s.Enqueue(MoveCommand{Direction: DirUp})
	s.Enqueue(MoveCommand{Direction: DirDown})
	s.Enqueue(MoveCommand{Direction: DirLeft})
	s.Reset()

	if s.Len() != 0 || s.Pending() {
		t.Fatalf("after Reset Len() = %d, Pending() = %v", s.Len(), s.Pending())
	}

	s.Tick(clock.Advance(time.Hour))
	if len(mover.calls) != 1 {
		t.Errorf("calls = %v, want only the first move", mover.calls)
	}

	// A fresh command runs immediately again.
	s.Enqueue(MoveCommand{Direction: DirRight})
	if len(mover.calls) != 2 {
		t.Errorf("calls after reset = %v, want 2 entries", mover.calls)
	}
}

func TestSchedulerEnqueueFromCompletion(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	mover := &scriptedMover{results: []bool{false, false}}
	s := newTestScheduler(mover, clock)

	depth := 0
	maxDepth := 0
	s.Enqueue(MoveCommand{Direction: DirUp, Completion: func(bool) {
		depth++
		maxDepth = max(maxDepth, depth)
		s.Enqueue(MoveCommand{Direction: DirDown, Completion: func(bool) {
			depth++
			maxDepth = max(maxDepth, depth)
			depth--
		}})
		depth--
	}})

	if len(mover.calls) != 2 {
		t.Fatalf("calls = %v, want [up down]", mover.calls)
	}
	if maxDepth != 1 {
		t.Errorf("completions nested %d deep, want 1", maxDepth)
	}
}

func TestSchedulerResetFromCompletion(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	mover := &scriptedMover{results: []bool{true}}
	s := newTestScheduler(mover, clock)

	s.Enqueue(MoveCommand{Direction: DirUp, Completion: func(bool) { s.Reset() }})

	if s.Pending() {
		t.Error("Reset inside a completion should leave no debounce armed")
	}
}

func TestSchedulerEnqueueAfterResetInCompletion(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	mover := &scriptedMover{results: []bool{true, true}}
	s := newTestScheduler(mover, clock)

	var ran []bool
	s.Enqueue(MoveCommand{Direction: DirUp, Completion: func(bool) {
		s.Reset()
		s.Enqueue(MoveCommand{Direction: DirLeft, Completion: func(c bool) { ran = append(ran, c) }})
	}})

	if len(mover.calls) != 2 || mover.calls[1] != DirLeft {
		t.Fatalf("calls = %v, want [up left]", mover.calls)
	}
	if len(ran) != 1 || !ran[0] {
		t.Errorf("completions = %v, want [true]", ran)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
	if !s.Pending() {
		t.Error("effective move after Reset should arm the debounce")
	}
}

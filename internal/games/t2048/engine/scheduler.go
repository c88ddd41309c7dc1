package engine

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

const (
	// DefaultQueueCapacity is how many moves may wait for the debounce window.
	DefaultQueueCapacity = 100
	// DefaultDebounce is the pause enforced after every effective move.
	DefaultDebounce = 300 * time.Millisecond
)

// MoveCommand is a queued move request. Completion is called exactly once,
// after the move ran, unless the command is dropped at enqueue time.
type MoveCommand struct {
	Direction  Direction
	Completion func(didChange bool)
}

// Mover applies a move to a board and reports whether anything changed.
type Mover interface {
	PerformMove(dir Direction) bool
}

// Scheduler serializes move commands. At most one move runs at a time and an
// effective move arms a debounce deadline; the owner advances time with Tick.
// Scheduler is not safe for concurrent use.
type Scheduler struct {
	mover    Mover
	capacity int
	delay    time.Duration
	clock    func() time.Time
	logger   *log.Logger

	queue    []MoveCommand
	pending  bool
	deadline time.Time
	draining bool
	epoch    uint64 // bumped by Reset
}

// SchedulerOptions configures a Scheduler. Zero values select the defaults.
type SchedulerOptions struct {
	Capacity int
	Debounce time.Duration
	Clock    func() time.Time
	Logger   *log.Logger
}

// NewScheduler creates a scheduler that runs commands against mover.
func NewScheduler(mover Mover, opts SchedulerOptions) *Scheduler {
	if opts.Capacity <= 0 {
		opts.Capacity = DefaultQueueCapacity
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Scheduler{
		mover:    mover,
		capacity: opts.Capacity,
		delay:    opts.Debounce,
		clock:    opts.Clock,
		logger:   opts.Logger,
	}
}

// Enqueue appends a command. A full queue drops the command without calling
// its completion. With no debounce pending the queue is drained right away.
func (s *Scheduler) Enqueue(cmd MoveCommand) {
	if len(s.queue) >= s.capacity {
		s.logger.Debug("move dropped, queue full", "direction", cmd.Direction, "capacity", s.capacity)
		return
	}
	s.queue = append(s.queue, cmd)

	if !s.pending && !s.draining {
		s.drain()
	}
}

// Tick runs the deferred drain once now has reached the debounce deadline.
func (s *Scheduler) Tick(now time.Time) {
	if !s.pending || now.Before(s.deadline) {
		return
	}
	s.pending = false
	s.drain()
}

// drain runs queued commands until one changes the board, then arms the
// debounce. Commands enqueued from a completion are picked up by this loop.
func (s *Scheduler) drain() {
	s.draining = true
	defer func() { s.draining = false }()

	epoch := s.epoch
	for len(s.queue) > 0 {
		cmd := s.queue[0]
		s.queue[0] = MoveCommand{}
		s.queue = s.queue[1:]

		changed := s.mover.PerformMove(cmd.Direction)
		if cmd.Completion != nil {
			cmd.Completion(changed)
		}
		if s.epoch != epoch {
			// Reset emptied the queue; only commands enqueued after it remain.
			epoch = s.epoch
			continue
		}
		if changed {
			s.pending = true
			s.deadline = s.clock().Add(s.delay)
			return
		}
	}
}

// Reset empties the queue and cancels any pending drain.
func (s *Scheduler) Reset() {
	s.queue = nil
	s.pending = false
	s.deadline = time.Time{}
	s.epoch++
}

// Len returns the number of waiting commands.
func (s *Scheduler) Len() int {
	return len(s.queue)
}

// Capacity returns the queue limit.
func (s *Scheduler) Capacity() int {
	return s.capacity
}

// Pending reports whether a debounce deadline is armed.
func (s *Scheduler) Pending() bool {
	return s.pending
}

// Deadline returns the armed debounce deadline, zero if none is pending.
func (s *Scheduler) Deadline() time.Time {
	if !s.pending {
		return time.Time{}
	}
	return s.deadline
}

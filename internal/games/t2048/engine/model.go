package engine

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

const (
	// MinDimension is the smallest supported board side.
	MinDimension = 2
	// MinThreshold is the smallest supported winning tile.
	MinThreshold = 8
	// DefaultFourProbability is the chance a follow-up tile is a 4 instead of a 2.
	DefaultFourProbability = 0.10
)

// Status is the game lifecycle state.
type Status int

const (
	StatusNotStarted Status = iota
	StatusPlaying
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Finished reports whether the game reached a terminal state.
func (s Status) Finished() bool {
	return s == StatusWon || s == StatusLost
}

// Options configures a Model. Zero values select the defaults, except
// FourProbability where 0 means follow-up tiles are always 2.
type Options struct {
	Dimension int // clamped to MinDimension
	Threshold int // clamped to MinThreshold

	QueueCapacity   int
	Debounce        time.Duration
	FourProbability float64 // outside [0,1] selects DefaultFourProbability

	Sink   Sink
	Rand   *rand.Rand
	Clock  func() time.Time
	Logger *log.Logger
}

// Model is the state of one 2048 game: board, score and the move scheduler.
// All methods must be called from a single goroutine.
type Model struct {
	dimension int
	threshold int
	fourProb  float64

	score  int
	status Status
	board  *Board

	scheduler *Scheduler
	sink      Sink
	rng       *rand.Rand
	logger    *log.Logger
}

// NewModel creates a model with an empty board in StatusNotStarted.
func NewModel(opts Options) *Model {
	dim := max(opts.Dimension, MinDimension)
	threshold := max(opts.Threshold, MinThreshold)

	if opts.Sink == nil {
		opts.Sink = discardSink{}
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano())) //#nosec G404 -- gameplay randomness
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.FourProbability < 0 || opts.FourProbability > 1 {
		opts.FourProbability = DefaultFourProbability
	}

	m := &Model{
		dimension: dim,
		threshold: threshold,
		fourProb:  opts.FourProbability,
		board:     NewBoard(dim),
		sink:      opts.Sink,
		rng:       opts.Rand,
		logger:    opts.Logger,
	}
	m.scheduler = NewScheduler(m, SchedulerOptions{
		Capacity: opts.QueueCapacity,
		Debounce: opts.Debounce,
		Clock:    opts.Clock,
		Logger:   opts.Logger,
	})
	return m
}

// Dimension returns the board side length.
func (m *Model) Dimension() int { return m.dimension }

// Threshold returns the winning tile value.
func (m *Model) Threshold() int { return m.threshold }

// Score returns the current score.
func (m *Model) Score() int { return m.score }

// Status returns the lifecycle state.
func (m *Model) Status() Status { return m.status }

// Board returns a copy of the board.
func (m *Model) Board() *Board { return m.board.Clone() }

// Scheduler exposes the move queue for inspection.
func (m *Model) Scheduler() *Scheduler { return m.scheduler }

// setScore stores the score and notifies the sink.
func (m *Model) setScore(score int) {
	m.score = score
	m.sink.ScoreChanged(score)
}

func (m *Model) setStatus(status Status) {
	if m.status == status {
		return
	}
	m.logger.Debug("status changed", "from", m.status, "to", status, "score", m.score)
	m.status = status
	m.sink.StatusChanged(status)
}

// Reset clears score, board and queue and cancels any pending drain.
// The model returns to StatusNotStarted.
func (m *Model) Reset() {
	m.setScore(0)
	m.board.SetAll(Empty)
	m.scheduler.Reset()
	m.setStatus(StatusNotStarted)
}

// Start places initial tiles of the given value and enters StatusPlaying.
func (m *Model) Start(tiles, value int) {
	for range tiles {
		m.InsertTileAtRandom(value)
	}
	m.setStatus(StatusPlaying)
}

// InsertTile places a tile at pos if the cell is empty. Occupied cells are
// left alone and false is returned.
func (m *Model) InsertTile(pos Position, value int) bool {
	if !m.board.At(pos).IsEmpty() {
		return false
	}
	m.board.Set(pos.Row, pos.Col, Tile(value))
	m.sink.TileInserted(pos, value)
	return true
}

// InsertTileAtRandom places a tile in a uniformly chosen empty cell.
// Returns false when the board is full.
func (m *Model) InsertTileAtRandom(value int) (Position, bool) {
	empty := m.board.EmptyPositions()
	if len(empty) == 0 {
		return Position{}, false
	}
	pos := empty[m.rng.Intn(len(empty))]
	m.InsertTile(pos, value)
	return pos, true
}

// UserHasLost reports whether the board is full and no two orthogonal
// neighbours share a value.
func (m *Model) UserHasLost() bool {
	if !m.board.Full() {
		return false
	}
	n := m.dimension
	for row := range n {
		for col := range n {
			value, ok := m.board.Get(row, col).Value()
			if !ok {
				panic(fmt.Sprintf("engine: board reported full but (%d,%d) is empty", row, col))
			}
			if row < n-1 && m.board.Get(row+1, col) == Tile(value) {
				return false
			}
			if col < n-1 && m.board.Get(row, col+1) == Tile(value) {
				return false
			}
		}
	}
	return true
}

// UserHasWon returns the first cell, in row-major order, whose value reached
// the threshold.
func (m *Model) UserHasWon() (Position, bool) {
	for row := range m.dimension {
		for col := range m.dimension {
			if value, ok := m.board.Get(row, col).Value(); ok && value >= m.threshold {
				return Position{Row: row, Col: col}, true
			}
		}
	}
	return Position{}, false
}

// PerformMove slides every line toward dir, applies merges and adds merged
// values to the score. Returns true if any tile moved.
func (m *Model) PerformMove(dir Direction) bool {
	n := m.dimension
	changed := false
	line := make([]Cell, n)

	for iteration := range n {
		coords := LineCoords(dir, iteration, n)
		for i, p := range coords {
			line[i] = m.board.At(p)
		}

		orders := Merge(line)
		if len(orders) > 0 {
			changed = true
		}
		for _, order := range orders {
			m.apply(coords, order)
		}
	}
	return changed
}

// apply writes one move order back into the board.
func (m *Model) apply(coords []Position, order MoveOrder) {
	switch o := order.(type) {
	case SingleMoveOrder:
		from, to := coords[o.Origin], coords[o.Destination]
		m.board.Set(from.Row, from.Col, Empty)
		m.board.Set(to.Row, to.Col, Tile(o.Value))
		m.sink.TileMoved(from, to, o.Value)
		if o.WasMerge {
			m.setScore(addSat(m.score, o.Value))
		}
	case DoubleMoveOrder:
		first, second, to := coords[o.Origin], coords[o.Second], coords[o.Destination]
		m.board.Set(first.Row, first.Col, Empty)
		m.board.Set(second.Row, second.Col, Empty)
		m.board.Set(to.Row, to.Col, Tile(o.Value))
		m.sink.TilesMerged([2]Position{first, second}, to, o.Value)
		m.setScore(addSat(m.score, o.Value))
	default:
		panic(fmt.Sprintf("engine: unknown move order %T", order))
	}
}

// QueueMove hands a move to the scheduler. completion may be nil.
func (m *Model) QueueMove(dir Direction, completion func(didChange bool)) {
	m.scheduler.Enqueue(MoveCommand{Direction: dir, Completion: completion})
}

// Swipe queues a player move with the standard follow-up: after an effective
// move the game is won, or a new 2 (sometimes 4) appears and the game may be
// lost. Moves are ignored unless the game is playing. done may be nil.
func (m *Model) Swipe(dir Direction, done func(didChange bool)) {
	if m.status != StatusPlaying {
		return
	}
	m.QueueMove(dir, func(changed bool) {
		if changed && m.status == StatusPlaying {
			m.followUp()
		}
		if done != nil {
			done(changed)
		}
	})
}

func (m *Model) followUp() {
	if _, won := m.UserHasWon(); won {
		m.setStatus(StatusWon)
		m.scheduler.Reset()
		return
	}

	value := 2
	if m.rng.Float64() < m.fourProb {
		value = 4
	}
	m.InsertTileAtRandom(value)

	if m.UserHasLost() {
		m.setStatus(StatusLost)
		m.scheduler.Reset()
	}
}

// Tick advances the scheduler clock; a due debounce drains the queue.
func (m *Model) Tick(now time.Time) {
	m.scheduler.Tick(now)
}

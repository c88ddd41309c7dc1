package t2048

import "github.com/vovakirdan/tui-2048/internal/games/t2048/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateWon         GameStateType = "won"
	StateLost        GameStateType = "lost"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Variant   string
	Dimension int
	Threshold int
	Score     int
	Board     [][]int // 0 marks an empty cell
	MaxTile   int
	Moves     int
	Queued    int // Commands still waiting in the scheduler
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.model.Status() == engine.StatusWon:
		state = StateWon
	case g.model.Status() == engine.StatusLost:
		state = StateLost
	case g.paused:
		state = StatePaused
	}

	board := g.model.Board()
	return Snapshot{
		Tick:      g.tick,
		Variant:   g.variant.ID,
		Dimension: board.Dimension(),
		Threshold: g.model.Threshold(),
		Score:     g.model.Score(),
		Board:     board.Values(),
		MaxTile:   board.MaxValue(),
		Moves:     g.moves,
		Queued:    g.model.Scheduler().Len(),
		State:     state,
	}
}

// Hash returns a simple hash of the snapshot for quick comparison.
func (s Snapshot) Hash() uint64 {
	h := s.Tick
	h = h*31 + uint64(s.Score)     //#nosec G115 -- score is never negative
	h = h*31 + uint64(s.Moves)     //#nosec G115 -- moves are never negative
	h = h*31 + uint64(s.Dimension) //#nosec G115 -- dimension is positive
	for _, row := range s.Board {
		for _, v := range row {
			h = h*31 + uint64(v) //#nosec G115 -- tile values are positive
		}
	}
	for _, c := range s.State {
		h = h*31 + uint64(c)
	}
	return h
}

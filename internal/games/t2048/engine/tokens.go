package engine

import "math"

// ActionToken is the intermediate per-line result of the pipeline.
// Implemented by NoActionToken, MoveToken, SingleCombineToken and DoubleCombineToken.
type ActionToken interface {
	actionToken()
	// TokenValue returns the tile value the token carries.
	TokenValue() int
	// TokenOrigin returns the line index of the (first) source tile.
	TokenOrigin() int
}

// NoActionToken is a tile that has not left its original slot.
type NoActionToken struct {
	Origin int
	Value  int
}

// MoveToken is a tile sliding toward the edge without merging.
type MoveToken struct {
	Origin int
	Value  int
}

// SingleCombineToken is a merge where one tile stayed put and the tile at
// Origin slid into it.
type SingleCombineToken struct {
	Origin int
	Value  int
}

// DoubleCombineToken is a merge where both source tiles move.
type DoubleCombineToken struct {
	Origin int
	Second int
	Value  int
}

func (NoActionToken) actionToken() {}
func (MoveToken) actionToken() {}
func (SingleCombineToken) actionToken() {}
func (DoubleCombineToken) actionToken() {}

func (t NoActionToken) TokenValue() int { return t.Value }
func (t MoveToken) TokenValue() int { return t.Value }
func (t SingleCombineToken) TokenValue() int { return t.Value }
func (t DoubleCombineToken) TokenValue() int { return t.Value }

func (t NoActionToken) TokenOrigin() int { return t.Origin }
func (t MoveToken) TokenOrigin() int { return t.Origin }
func (t SingleCombineToken) TokenOrigin() int { return t.Origin }
func (t DoubleCombineToken) TokenOrigin() int { return t.Origin }

// MoveOrder is an instruction the move engine applies to one line.
// Implemented by SingleMoveOrder and DoubleMoveOrder.
type MoveOrder interface {
	moveOrder()
	// Dest returns the line index the resulting tile ends up in.
	Dest() int
}

// SingleMoveOrder moves one tile. WasMerge is set when the tile merged into a
// tile that did not move.
type SingleMoveOrder struct {
	Origin      int
	Destination int
	Value       int
	WasMerge    bool
}

// DoubleMoveOrder moves two tiles into one slot, merging them.
type DoubleMoveOrder struct {
	Origin      int
	Second      int
	Destination int
	Value       int
}

func (SingleMoveOrder) moveOrder() {}
func (DoubleMoveOrder) moveOrder() {}

func (o SingleMoveOrder) Dest() int { return o.Destination }
func (o DoubleMoveOrder) Dest() int { return o.Destination }

// addSat adds two non-negative values, saturating at math.MaxInt.
func addSat(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

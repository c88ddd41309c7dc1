package engine

// Sink receives the engine's output events. The engine holds a Sink but never
// owns it; implementations must not call back into the Model.
type Sink interface {
	ScoreChanged(score int)
	TileInserted(pos Position, value int)
	TileMoved(from, to Position, value int)
	TilesMerged(from [2]Position, to Position, value int)
	StatusChanged(status Status)
}

// Event is a recorded Sink call.
type Event interface {
	event()
}

// ScoreChangedEvent records Sink.ScoreChanged.
type ScoreChangedEvent struct {
	Score int
}

func (ScoreChangedEvent) event() {}

// TileInsertedEvent records Sink.TileInserted.
type TileInsertedEvent struct {
	Pos   Position
	Value int
}

func (TileInsertedEvent) event() {}

// TileMovedEvent records Sink.TileMoved.
type TileMovedEvent struct {
	From  Position
	To    Position
	Value int
}

func (TileMovedEvent) event() {}

// TilesMergedEvent records Sink.TilesMerged.
type TilesMergedEvent struct {
	From  [2]Position
	To    Position
	Value int
}

func (TilesMergedEvent) event() {}

// StatusChangedEvent records Sink.StatusChanged.
type StatusChangedEvent struct {
	Status Status
}

func (StatusChangedEvent) event() {}

// Recorder is a Sink that keeps every event in order.
type Recorder struct {
	Events []Event
}

func (r *Recorder) ScoreChanged(score int) {
	r.Events = append(r.Events, ScoreChangedEvent{Score: score})
}

func (r *Recorder) TileInserted(pos Position, value int) {
	r.Events = append(r.Events, TileInsertedEvent{Pos: pos, Value: value})
}

func (r *Recorder) TileMoved(from, to Position, value int) {
	r.Events = append(r.Events, TileMovedEvent{From: from, To: to, Value: value})
}

func (r *Recorder) TilesMerged(from [2]Position, to Position, value int) {
	r.Events = append(r.Events, TilesMergedEvent{From: from, To: to, Value: value})
}

func (r *Recorder) StatusChanged(status Status) {
	r.Events = append(r.Events, StatusChangedEvent{Status: status})
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.Events = nil
}

// MultiSink forwards every event to each sink in order.
type MultiSink []Sink

func (m MultiSink) ScoreChanged(score int) {
	for _, s := range m {
		s.ScoreChanged(score)
	}
}

func (m MultiSink) TileInserted(pos Position, value int) {
	for _, s := range m {
		s.TileInserted(pos, value)
	}
}

func (m MultiSink) TileMoved(from, to Position, value int) {
	for _, s := range m {
		s.TileMoved(from, to, value)
	}
}

func (m MultiSink) TilesMerged(from [2]Position, to Position, value int) {
	for _, s := range m {
		s.TilesMerged(from, to, value)
	}
}

func (m MultiSink) StatusChanged(status Status) {
	for _, s := range m {
		s.StatusChanged(status)
	}
}

// discardSink drops everything.
type discardSink struct{}

func (discardSink) ScoreChanged(int) {}
func (discardSink) TileInserted(Position, int) {}
func (discardSink) TileMoved(Position, Position, int) {}
func (discardSink) TilesMerged([2]Position, Position, int) {}
func (discardSink) StatusChanged(Status) {}

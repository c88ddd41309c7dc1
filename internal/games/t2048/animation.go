package t2048

import (
	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
)

const scoreFlashTicks = 30 // ~0.5s at 60fps

// TileAnimation represents an animated tile.
type TileAnimation struct {
	Value    int
	From     engine.Position
	To       engine.Position
	Progress float64 // 0.0 → 1.0
	Merged   bool    // Half of a merge while sliding, the merged tile while popping
	IsNew    bool    // Inserted tile (for pop effect)
}

// AnimationPhase represents the current phase of animation.
type AnimationPhase int

const (
	PhaseNone AnimationPhase = iota
	PhaseSlide
	PhasePop
)

// Animator is the rendering sink of the engine. Events of one move arrive in
// a burst while the engine runs; Update turns the burst into a slide phase
// followed by a pop phase for inserted tiles.
type Animator struct {
	slideTicks int
	popTicks   int

	phase  AnimationPhase
	ticks  int
	slides []TileAnimation
	pops   []TileAnimation

	// Burst being collected from the engine
	nextSlides []TileAnimation
	nextPops   []TileAnimation
	moved      bool // last event was TileMoved

	score      int
	scoreGain  int
	flashTicks int
	status     engine.Status
}

// NewAnimator creates an animator. Zero durations skip the phase.
func NewAnimator(slideTicks, popTicks int) *Animator {
	return &Animator{
		slideTicks: slideTicks,
		popTicks:   popTicks,
	}
}

func (a *Animator) ScoreChanged(score int) {
	gain := score - a.score
	// A single-tile merge is reported as a move followed by the score gain.
	if a.moved && gain > 0 && gain == a.nextSlides[len(a.nextSlides)-1].Value {
		a.mergeLastMove()
	}
	a.moved = false

	if gain > 0 {
		a.scoreGain += gain
		a.flashTicks = scoreFlashTicks
	}
	if score == 0 {
		a.scoreGain = 0
		a.flashTicks = 0
	}
	a.score = score
}

func (a *Animator) TileInserted(pos engine.Position, value int) {
	a.moved = false
	a.nextPops = append(a.nextPops, TileAnimation{
		Value: value,
		From:  pos,
		To:    pos,
		IsNew: true,
	})
}

func (a *Animator) TileMoved(from, to engine.Position, value int) {
	a.nextSlides = append(a.nextSlides, TileAnimation{
		Value: value,
		From:  from,
		To:    to,
	})
	a.moved = true
}

// mergeLastMove turns the latest slide into one half of a merge: the mover
// and the resting tile both show the half value, then the result pops.
func (a *Animator) mergeLastMove() {
	last := &a.nextSlides[len(a.nextSlides)-1]
	value, to := last.Value, last.To
	last.Value = value / 2
	last.Merged = true

	a.nextSlides = append(a.nextSlides, TileAnimation{Value: value / 2, From: to, To: to, Merged: true})
	a.nextPops = append(a.nextPops, TileAnimation{Value: value, From: to, To: to, Merged: true})
}

func (a *Animator) TilesMerged(from [2]engine.Position, to engine.Position, value int) {
	a.moved = false
	for _, p := range from {
		a.nextSlides = append(a.nextSlides, TileAnimation{
			Value:  value / 2,
			From:   p,
			To:     to,
			Merged: true,
		})
	}
	a.nextPops = append(a.nextPops, TileAnimation{Value: value, From: to, To: to, Merged: true})
}

func (a *Animator) StatusChanged(status engine.Status) {
	a.moved = false
	a.status = status
}

// Update advances the animation by one tick. A collected burst replaces any
// animation still running. Returns true while an animation is in progress.
func (a *Animator) Update() bool {
	if len(a.nextSlides) > 0 || len(a.nextPops) > 0 {
		a.begin()
	} else if a.phase != PhaseNone {
		a.advance()
	}

	if a.flashTicks > 0 {
		a.flashTicks--
		if a.flashTicks == 0 {
			a.scoreGain = 0
		}
	}
	return a.phase != PhaseNone
}

// Clear drops every animation and collected event.
func (a *Animator) Clear() {
	*a = Animator{slideTicks: a.slideTicks, popTicks: a.popTicks}
}

func (a *Animator) begin() {
	a.slides, a.nextSlides = a.nextSlides, nil
	a.pops, a.nextPops = a.nextPops, nil
	a.ticks = 0

	switch {
	case len(a.slides) > 0 && a.slideTicks > 0:
		a.phase = PhaseSlide
	case len(a.pops) > 0 && a.popTicks > 0:
		a.slides = nil
		a.phase = PhasePop
	default:
		a.finish()
	}
}

func (a *Animator) advance() {
	a.ticks++

	var duration int
	var anims []TileAnimation
	switch a.phase {
	case PhaseSlide:
		duration, anims = a.slideTicks, a.slides
	case PhasePop:
		duration, anims = a.popTicks, a.pops
	}

	progress := min(float64(a.ticks)/float64(duration), 1.0)
	for i := range anims {
		anims[i].Progress = progress
	}

	if a.ticks >= duration {
		a.finishPhase()
	}
}

func (a *Animator) finishPhase() {
	if a.phase == PhaseSlide && len(a.pops) > 0 && a.popTicks > 0 {
		a.slides = nil
		a.phase = PhasePop
		a.ticks = 0
		return
	}
	a.finish()
}

func (a *Animator) finish() {
	a.phase = PhaseNone
	a.ticks = 0
	a.slides = nil
	a.pops = nil
}

// Phase returns the running phase.
func (a *Animator) Phase() AnimationPhase {
	return a.phase
}

// Slides returns the tiles sliding in the current phase.
func (a *Animator) Slides() []TileAnimation {
	if a.phase != PhaseSlide {
		return nil
	}
	return a.slides
}

// Pops returns the inserted and merged tiles, both while popping and while
// they wait for the slide to finish.
func (a *Animator) Pops() []TileAnimation {
	return a.pops
}

// ScoreGain returns the recent score increase to flash next to the score,
// 0 when nothing should be shown.
func (a *Animator) ScoreGain() int {
	return a.scoreGain
}

// hidden reports whether the board cell at p must not be drawn from the
// board because an animation owns it.
func (a *Animator) hidden(p engine.Position) bool {
	if a.phase == PhaseNone {
		return false
	}
	for _, s := range a.Slides() {
		if s.To == p {
			return true
		}
	}
	if a.phase == PhaseSlide {
		for _, t := range a.pops {
			if t.To == p {
				return true
			}
		}
	}
	return false
}

// easeOutQuad provides smooth deceleration for animation.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}

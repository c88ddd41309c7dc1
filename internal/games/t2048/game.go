package t2048

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
)

// Game runs one 2048 variant on top of the rule engine. Simulated time comes
// from the tick counter, so a seeded run with the same inputs is reproducible.
type Game struct {
	variant Variant
	cfg     config.T2048Config
	model   *engine.Model
	anim    *Animator
	logger  *log.Logger

	tick     uint64
	now      time.Time
	tickStep time.Duration
	moves    int
	best     int

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// Package-level settings applied on the next Reset, set from the CLI.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names use the
// config as loaded.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetLogger sets the logger handed to new games.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// New creates a game for the given variant. Reset must be called before use.
func New(v Variant) *Game {
	return &Game{variant: v}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	return g.variant.Description
}

// ResolveConfig loads the configuration a new game of v runs with: the
// config file, then the difficulty preset, then the variant's board.
// Returns the config and where it was loaded from.
func ResolveConfig(v Variant) (config.T2048Config, string) {
	cfg, source, err := config.ResolveT2048(configPath)
	if err != nil {
		logger.Warn("using default config", "path", configPath, "error", err)
		cfg, source = config.DefaultT2048Config(), config.SourceBuiltin
	}
	if difficultyPreset != "" {
		config.ApplyT2048Preset(&cfg, difficultyPreset)
	}
	if v.Dimension > 0 {
		cfg.Board.Dimension = v.Dimension
	}
	if v.Threshold > 0 {
		cfg.Board.Threshold = v.Threshold
	}
	cfg.Validate()
	return cfg, source
}

// Reset starts a new game with freshly loaded configuration.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, source := ResolveConfig(g.variant)
	g.cfg = cfg

	g.logger = logger.With("variant", g.variant.ID)
	g.logger.Debug("new game", "config", source, "dimension", cfg.Board.Dimension,
		"threshold", cfg.Board.Threshold, "seed", rc.Seed)

	g.tick = 0
	g.now = time.Unix(0, 0)
	g.tickStep = rc.TickDuration()
	g.moves = 0
	g.paused = false
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH

	g.anim = NewAnimator(cfg.Animation.SlideTicks, cfg.Animation.PopTicks)
	g.model = engine.NewModel(engine.Options{
		Dimension:       cfg.Board.Dimension,
		Threshold:       cfg.Board.Threshold,
		QueueCapacity:   cfg.Queue.Capacity,
		Debounce:        cfg.Queue.Debounce(),
		FourProbability: cfg.Spawn.FourProbability,
		Sink:            g.anim,
		Rand:            rand.New(rand.NewSource(rc.Seed)), //#nosec G404 -- gameplay randomness
		Clock:           g.clock,
		Logger:          g.logger,
	})
	g.model.Start(cfg.Spawn.InitialTiles, cfg.Spawn.InitialValue)

	g.checkScreenSize()
}

// clock is the engine's time source.
func (g *Game) clock() time.Time {
	return g.now
}

// Resize adapts the layout to a new terminal size without restarting.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// SetBestScore sets the stored best score shown in the HUD.
func (g *Game) SetBestScore(best int) {
	g.best = best
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	w, h := g.layoutSize()
	g.tooSmall = g.screenW < w || g.screenH < h
}

// Step advances the game by one tick: the scheduler sees the new time first,
// then every move pressed during the tick is queued in order.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.now = g.now.Add(g.tickStep)
	before := g.moves

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.model.Status().Finished() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.model.Tick(g.now)
	for _, a := range in.Moves() {
		g.model.Swipe(actionDirection(a), g.onMoveDone)
	}
	g.anim.Update()

	return core.StepResult{State: g.State(), Moves: g.moves - before}
}

func (g *Game) onMoveDone(changed bool) {
	if changed {
		g.moves++
	}
}

// actionDirection maps a move action to an engine direction.
func actionDirection(a core.Action) engine.Direction {
	switch a {
	case core.ActionDown:
		return engine.DirDown
	case core.ActionLeft:
		return engine.DirLeft
	case core.ActionRight:
		return engine.DirRight
	default:
		return engine.DirUp
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	status := g.model.Status()
	return core.GameState{
		Score:    g.model.Score(),
		GameOver: status.Finished(),
		Won:      status == engine.StatusWon,
		Paused:   g.paused || g.tooSmall,
	}
}

// Status returns the engine lifecycle state.
func (g *Game) Status() engine.Status {
	return g.model.Status()
}

// MaxTile returns the highest tile on the board.
func (g *Game) MaxTile() int {
	return g.model.Board().MaxValue()
}

// Moves returns the number of effective moves so far.
func (g *Game) Moves() int {
	return g.moves
}

// Config returns the configuration the current game runs with.
func (g *Game) Config() config.T2048Config {
	return g.cfg
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL: Move | P: Pause | R: Restart | Q: Quit"
}

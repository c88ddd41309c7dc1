package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
)

var (
	flagSimBoard  string
	flagSimMoves  string
	flagSimStep   time.Duration
	flagSimEvents bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Replay a move script without a terminal",
	Long: `Run a game headlessly from a move script and print the result.

The script is a string of u, d, l and r letters; spaces and commas are
ignored. Each letter is queued like a keypress, then the simulated clock
advances by --step. Moves queued faster than the debounce wait their turn,
just as in the interactive game.

Examples:
  t2048 sim --seed 7 --moves llurdd
  t2048 sim --seed 7 --moves "lr lr lr" --step 0s
  t2048 sim --board 2048-mini --moves ldru --events`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagSimBoard, "board", defaultBoard, "Board to simulate")
	simCmd.Flags().StringVar(&flagSimMoves, "moves", "", "Move script, e.g. llurd")
	simCmd.Flags().DurationVar(&flagSimStep, "step", -1, "Simulated time between moves (default: the debounce)")
	simCmd.Flags().BoolVar(&flagSimEvents, "events", false, "Print every engine event")
}

func runSim(_ *cobra.Command, _ []string) {
	v, ok := t2048.VariantByID(flagSimBoard)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown board %q\n", flagSimBoard)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	res, err := simulate(os.Stdout, simOptions{
		Variant: v,
		Script:  flagSimMoves,
		Seed:    seed,
		Step:    flagSimStep,
		Events:  flagSimEvents,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("simulation done", "board", v.ID, "seed", seed, "moves", res.Moves, "status", res.Status)
}

type simOptions struct {
	Variant t2048.Variant
	Script  string
	Seed    int64
	Step    time.Duration // negative selects the configured debounce
	Events  bool
}

type simResult struct {
	Score   int
	Moves   int
	Spawned int
	MaxTile int
	Status  engine.Status
	Board   *engine.Board
}

// simulate plays script on a fresh model with a synthetic clock and writes
// a report to w.
func simulate(w io.Writer, opts simOptions) (simResult, error) {
	dirs, err := parseScript(opts.Script)
	if err != nil {
		return simResult{}, err
	}

	cfg, source := t2048.ResolveConfig(opts.Variant)
	step := opts.Step
	if step < 0 {
		step = cfg.Queue.Debounce()
	}

	now := time.Unix(0, 0)
	rec := &engine.Recorder{}
	var sink engine.Sink = rec
	if opts.Events {
		sink = engine.MultiSink{eventPrinter{w: w}, rec}
	}
	m := engine.NewModel(engine.Options{
		Dimension:       cfg.Board.Dimension,
		Threshold:       cfg.Board.Threshold,
		QueueCapacity:   cfg.Queue.Capacity,
		Debounce:        cfg.Queue.Debounce(),
		FourProbability: cfg.Spawn.FourProbability,
		Sink:            sink,
		Rand:            rand.New(rand.NewSource(opts.Seed)), //#nosec G404 -- gameplay randomness
		Clock:           func() time.Time { return now },
		Logger:          logger,
	})

	fmt.Fprintf(w, "board %s (%dx%d, goal %d), seed %d, config %s\n",
		opts.Variant.ID, cfg.Board.Dimension, cfg.Board.Dimension, cfg.Board.Threshold, opts.Seed, source)
	m.Start(cfg.Spawn.InitialTiles, cfg.Spawn.InitialValue)
	fmt.Fprintln(w, m.Board())
	fmt.Fprintln(w)

	moves := 0
	for _, dir := range dirs {
		m.Swipe(dir, func(changed bool) {
			if !changed {
				fmt.Fprintf(w, "      %-5s no change\n", dir)
				return
			}
			moves++
			fmt.Fprintf(w, "%4d  %-5s score %d\n", moves, dir, m.Score())
		})
		now = now.Add(step)
		m.Tick(now)
	}

	// Let queued moves play out
	for m.Scheduler().Len() > 0 {
		now = now.Add(cfg.Queue.Debounce())
		m.Tick(now)
	}

	spawned := 0
	for _, ev := range rec.Events {
		if _, ok := ev.(engine.TileInsertedEvent); ok {
			spawned++
		}
	}

	board := m.Board()
	fmt.Fprintln(w)
	fmt.Fprintln(w, board)
	fmt.Fprintf(w, "\nscore %d, max tile %d, moves %d, spawned %d, status %s\n",
		m.Score(), board.MaxValue(), moves, spawned, m.Status())

	return simResult{
		Score:   m.Score(),
		Moves:   moves,
		Spawned: spawned,
		MaxTile: board.MaxValue(),
		Status:  m.Status(),
		Board:   board,
	}, nil
}

// parseScript turns "l r,u d" into directions.
func parseScript(script string) ([]engine.Direction, error) {
	var dirs []engine.Direction
	for i, ch := range strings.ToLower(script) {
		if ch == ' ' || ch == ',' {
			continue
		}
		dir, err := engine.ParseDirection(string(ch))
		if err != nil {
			return nil, fmt.Errorf("move script position %d: %w", i, err)
		}
		dirs = append(dirs, dir)
	}
	return dirs, nil
}

// eventPrinter writes every engine event as one indented line.
type eventPrinter struct {
	w io.Writer
}

func (p eventPrinter) ScoreChanged(score int) {
	fmt.Fprintf(p.w, "        score -> %d\n", score)
}

func (p eventPrinter) TileInserted(pos engine.Position, value int) {
	fmt.Fprintf(p.w, "        insert %d at %s\n", value, pos)
}

func (p eventPrinter) TileMoved(from, to engine.Position, value int) {
	fmt.Fprintf(p.w, "        move %d %s -> %s\n", value, from, to)
}

func (p eventPrinter) TilesMerged(from [2]engine.Position, to engine.Position, value int) {
	fmt.Fprintf(p.w, "        merge %s + %s -> %d at %s\n", from[0], from[1], value, to)
}

func (p eventPrinter) StatusChanged(status engine.Status) {
	fmt.Fprintf(p.w, "        status %s\n", status)
}

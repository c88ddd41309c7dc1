// t2048 plays 2048 in the terminal.
//
// Usage:
//
//	t2048 list              - List available boards
//	t2048 play [board]      - Play a board (default: 2048)
//	t2048 menu              - Pick boards interactively
//	t2048 scores [board]    - Show high scores
//	t2048 sim               - Run a scripted game without a terminal
//	t2048 config            - Print or write the configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/t2048.db)
//	--config <path>       - Use a custom config YAML
//	--difficulty <name>   - Apply a difficulty preset (easy, normal, hard)
//	--log-level <level>   - Log level (debug, info, warn, error)
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

// logger is configured before any subcommand runs.
var (
	logger  = log.New(io.Discard)
	logFile *os.File
)

// annotationTUI marks commands that own the terminal; their logs only go to
// --log-file.
const annotationTUI = "tui"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 in your terminal",
	Long: `t2048 is the sliding tile game 2048 for the terminal.

Slide the board in one of four directions. Equal tiles that meet merge into
their sum, and every move that changes the board adds a new tile. Reach the
goal tile to win; fill the board with no merges left and the game is over.

Available commands:
  list     - Show all boards
  play     - Play a board directly
  menu     - Interactive board picker
  scores   - View high scores and statistics
  sim      - Replay a move script headlessly
  config   - Show or write the configuration

Examples:
  t2048 play
  t2048 play 2048-mini --difficulty easy
  t2048 menu
  t2048 sim --seed 7 --moves llurdd
  t2048 scores 2048`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if logFile != nil {
			logFile.Close()
		}
	},
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.arcade/t2048.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// setup validates global flags and hands config and logger to the game package.
func setup(cmd *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	l, err := newLogger(cmd.Annotations[annotationTUI] != "")
	if err != nil {
		return err
	}
	logger = l

	t2048.SetLogger(logger)
	t2048.SetConfigPath(flagConfig)
	t2048.SetDifficultyPreset(string(preset))
	return nil
}

// newLogger builds the CLI logger. Interactive commands log nowhere unless
// --log-file is given, since stderr shares the screen with the game.
func newLogger(interactive bool) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		w = f
	case interactive:
		w = io.Discard
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
		Level:           level,
	}), nil
}

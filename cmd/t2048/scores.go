package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [board]",
	Short: "Show high scores for a board",
	Long: `Display the top scores and statistics for the specified board
(classic 2048 if omitted).

Examples:
  t2048 scores
  t2048 scores 2048-mini --limit 20
  t2048 scores clear 2048`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

var scoresClearCmd = &cobra.Command{
	Use:   "clear <board>",
	Short: "Delete all stored results for a board",
	Args:  cobra.ExactArgs(1),
	Run:   runScoresClear,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.AddCommand(scoresClearCmd)
}

// mustBoard exits when id is not a registered board.
func mustBoard(id string) registry.GameInfo {
	info, ok := registry.Lookup(id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown board %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 't2048 list' to see available boards.")
		os.Exit(1)
	}
	return info
}

func runScores(_ *cobra.Command, args []string) {
	gameID := defaultBoard
	if len(args) > 0 {
		gameID = args[0]
	}
	info := mustBoard(gameID)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 't2048 play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-9s  %s\n", "Rank", "Score", "Tile", "Moves", "Result", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-9s  %s\n", "----", "-----", "----", "-----", "------", "----")

	for i, r := range scores {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-6d  %-6d  %-9s  %s\n", i+1, r.Score, r.MaxTile, r.Moves, r.Outcome, dateStr)
	}

	stats, err := store.VariantStats(gameID)
	if err != nil {
		logger.Warn("cannot load statistics", "board", gameID, "error", err)
		return
	}
	fmt.Println()
	fmt.Printf("Best: %d  Games: %d  Wins: %d  Best tile: %d  Average: %.0f\n",
		stats.HighScore, stats.GamesCount, stats.Wins, stats.BestTile, stats.AvgScore)
}

func runScoresClear(_ *cobra.Command, args []string) {
	info := mustBoard(args[0])

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.ClearScores(info.ID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Printf("Cleared scores for %s.\n", info.Title)
}

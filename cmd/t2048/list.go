package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available boards",
	Long:  `Shows every board variant with its size and goal tile.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	ids := t2048.VariantIDs()

	if len(ids) == 0 {
		fmt.Println("No boards available.")
		return
	}

	fmt.Println("Available boards:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, id := range ids {
		maxIDLen = max(maxIDLen, len(id))
	}

	fmt.Printf("  %-*s  %-10s  %-6s  %s\n", maxIDLen, "ID", "Title", "Board", "Goal")
	fmt.Printf("  %-*s  %-10s  %-6s  %s\n", maxIDLen, "--", "-----", "-----", "----")

	for _, id := range ids {
		info, ok := registry.Lookup(id)
		if !ok {
			continue
		}
		v, _ := t2048.VariantByID(id)
		cfg, _ := t2048.ResolveConfig(v)
		board := fmt.Sprintf("%dx%d", cfg.Board.Dimension, cfg.Board.Dimension)
		fmt.Printf("  %-*s  %-10s  %-6s  %d\n", maxIDLen, info.ID, info.Title, board, cfg.Board.Threshold)
	}

	fmt.Println()
	fmt.Println("Run 't2048 play <id>' to play a board.")
}

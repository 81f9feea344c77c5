package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-stacker/internal/registry"
	"github.com/vovakirdan/tui-stacker/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores for a mode",
	Long: `Display the top 10 runs for the specified mode.

Examples:
  stacker scores stacker
  stacker scores stacker_zen`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'stacker list' to see available modes.")
		os.Exit(1)
	}

	// Get mode title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.TopRuns(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'stacker play %s' to set the first high score!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-8s  %-8s  %s\n", "Rank", "Score", "Height", "Blocks", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-8s  %s\n", "----", "-----", "------", "------", "----")

	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-8.0f  %-8d  %s\n", i+1, entry.Score, entry.Height, entry.Blocks, dateStr)
	}

	fmt.Println()
	if best, err := store.BestHeight(gameID); err == nil && best > 0 {
		fmt.Printf("Tallest tower: %.0f\n", best)
	}
	if high, err := store.HighScore(gameID); err == nil {
		fmt.Printf("Best: %d\n", high)
	}
}

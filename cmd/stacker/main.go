// stacker is a physics-driven tower stacking game for the terminal.
//
// Usage:
//
//	stacker list              - List available game modes
//	stacker play <mode>       - Play a mode directly
//	stacker menu              - Start menu to pick a mode interactively
//	stacker serve             - Start SSH server for remote play
//	stacker scores <mode>     - Show high scores for a mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.stacker/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-stacker/internal/games/stacker"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stacker",
	Short: "Tower Stacker - Stack swinging blocks in your terminal",
	Long: `Tower Stacker is a terminal game about timing. A block swings above
the tower on a pendulum; drop it at the right moment to stack it
cleanly. Misaligned blocks topple, fall, and cost you points.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  stacker list
  stacker play stacker
  stacker menu
  stacker serve --ssh :2222
  stacker scores stacker`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.stacker/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

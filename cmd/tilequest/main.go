// tilequest is a terminal tile-matching puzzle: every color on the board is
// a quest that must be matched before its swaps, misses and replacements
// run out.
//
// Usage:
//
//	tilequest list              - List available modes
//	tilequest play [mode]       - Play campaign, blitz or puzzle mode
//	tilequest menu              - Start menu to pick a mode interactively
//	tilequest levels            - Show campaign levels and puzzle boards
//	tilequest scores [mode]     - Show high scores
//	tilequest history [mode]    - Show recent level results
//	tilequest serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible boards
//	--db <path>          - Set database path (default: ~/.tilequest/scores.db)
//	--log-level <level>  - Log level: debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its modes
	_ "github.com/vovakirdan/tile-quest/internal/games/tilequest"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tilequest",
	Short: "Tile Quest - a tile-matching puzzle in your terminal",
	Long: `Tile Quest is a terminal tile-matching puzzle. Every color on the
board is a quest: swap neighbouring tiles into runs of three before the
quest runs out of swaps, misses or replacements, and before the timer ends.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode and level picker
  levels   - Show campaign levels and puzzle boards
  scores   - View high scores
  history  - View recent level results
  serve    - Start SSH server for remote play

Examples:
  tilequest play
  tilequest play blitz --difficulty hard
  tilequest play puzzle --level 2
  tilequest menu
  tilequest serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tilequest/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.tilequest/tilequest.log", "Log file for interactive sessions")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

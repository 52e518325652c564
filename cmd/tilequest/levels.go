package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-quest/internal/games/tilequest"
	"github.com/vovakirdan/tile-quest/internal/games/tilequest/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show campaign levels and puzzle boards",
	Long: `Lists the campaign table and the puzzle boards: the built-in ones and
those found in ~/.tilequest/levels.

Examples:
  tilequest levels
  tilequest levels check ./my-board.yaml`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

var levelsCheckCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Validate level files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLevelsCheck,
}

func init() {
	levelsCmd.AddCommand(levelsCheckCmd)
}

func runLevels(_ *cobra.Command, _ []string) {
	fmt.Println("Campaign")
	fmt.Println()
	fmt.Printf("  %-3s  %-14s  %-6s  %-6s  %s\n", "#", "Name", "Board", "Colors", "Time")
	fmt.Printf("  %-3s  %-14s  %-6s  %-6s  %s\n", "-", "----", "-----", "------", "----")
	for _, lvl := range tilequest.Levels {
		fmt.Printf("  %-3d  %-14s  %-6s  %-6d  x%.1f\n",
			lvl.ID, lvl.Name, fmt.Sprintf("%dx%d", lvl.Width, lvl.Height), lvl.Colors, lvl.TimeFactor)
	}

	fmt.Println()
	fmt.Println("Puzzles")
	fmt.Println()

	puzzles := tilequest.LoadPuzzles()
	if len(puzzles) == 0 {
		fmt.Println("  No puzzle boards found.")
		return
	}
	fmt.Printf("  %-3s  %-14s  %-14s  %-6s  %s\n", "#", "ID", "Name", "Board", "Time")
	fmt.Printf("  %-3s  %-14s  %-14s  %-6s  %s\n", "-", "--", "----", "-----", "----")
	for i, p := range puzzles {
		timeStr := "default"
		if p.Countdown > 0 {
			timeStr = fmt.Sprintf("%.0fs", p.Countdown)
		}
		fmt.Printf("  %-3d  %-14s  %-14s  %-6s  %s\n",
			i+1, p.ID, p.Name, fmt.Sprintf("%dx%d", p.Width, p.Height), timeStr)
	}

	fmt.Println()
	fmt.Println("Run 'tilequest play puzzle --level <#>' to play a board.")
}

func runLevelsCheck(_ *cobra.Command, args []string) error {
	failed := 0
	for _, path := range args {
		lvl, err := levels.ReadFile(path)
		if err != nil {
			fmt.Printf("FAIL  %s: %v\n", path, err)
			failed++
			continue
		}
		hist := lvl.Histogram()
		fmt.Printf("ok    %s: %s %dx%d, %d tiles\n", path, lvl.ID, lvl.Width, lvl.Height, hist.Total())
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d level files are invalid", failed, len(args))
	}
	return nil
}

package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-quest/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryRun   string
	flagHistoryStats bool
)

var historyCmd = &cobra.Command{
	Use:   "history [mode]",
	Short: "Show recent level results",
	Long: `Display the most recent finished levels, newest first. Levels from
the same run share a run ID.

Examples:
  tilequest history
  tilequest history campaign --limit 50
  tilequest history campaign --stats
  tilequest history --run 1d3c0c8e-2f4b-4b8e-a3a5-0e6d9f6f9a11`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of results to show")
	historyCmd.Flags().StringVar(&flagHistoryRun, "run", "", "Show every level of one run")
	historyCmd.Flags().BoolVar(&flagHistoryStats, "stats", false, "Aggregate results per level")
}

func runHistory(_ *cobra.Command, args []string) error {
	gameID := ""
	if len(args) > 0 {
		id, err := resolveMode(args[0])
		if err != nil {
			return err
		}
		gameID = id
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	var results []storage.LevelResult
	switch {
	case flagHistoryStats:
		if gameID == "" {
			gameID = "tilequest"
		}
		return printLevelStats(store, gameID)
	case flagHistoryRun != "":
		runID, err := uuid.Parse(flagHistoryRun)
		if err != nil {
			return fmt.Errorf("invalid run ID %q: %w", flagHistoryRun, err)
		}
		results, err = store.RunResults(runID)
		if err != nil {
			return err
		}
	default:
		results, err = store.RecentLevelResults(gameID, flagHistoryLimit)
		if err != nil {
			return err
		}
	}

	if len(results) == 0 {
		fmt.Println("No level results recorded yet.")
		return nil
	}

	fmt.Printf("  %-16s  %-18s  %-5s  %-4s  %-6s  %-6s  %-13s  %-7s  %s\n",
		"Date", "Mode", "Level", "Won", "Score", "Quests", "Sw/Ma/Mi/Re", "Time", "Run")
	for _, r := range results {
		won := "no"
		if r.Won {
			won = "yes"
		}
		fmt.Printf("  %-16s  %-18s  %-5d  %-4s  %-6d  %-6s  %-13s  %-7s  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.GameID, r.Level, won, r.Score,
			fmt.Sprintf("%d/%d", r.QuestsCompleted, r.QuestsTotal),
			fmt.Sprintf("%d/%d/%d/%d", r.Swaps, r.Matches, r.MissMatches, r.Replacements),
			fmt.Sprintf("%.1fs", r.ElapsedSeconds),
			r.RunID.String()[:8])
	}
	return nil
}

// printLevelStats prints per-level aggregates of one mode.
func printLevelStats(store *storage.Store, gameID string) error {
	stats, err := store.GetLevelStats(gameID)
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Printf("No level results recorded for %s yet.\n", gameID)
		return nil
	}

	fmt.Printf("Level results - %s\n", gameID)
	fmt.Println()
	fmt.Printf("  %-5s  %-6s  %-6s  %-6s  %s\n", "Level", "Played", "Won", "Best", "Avg time")
	for _, ls := range stats {
		fmt.Printf("  %-5d  %-6d  %-6s  %-6d  %.1fs\n",
			ls.Level, ls.Attempts, fmt.Sprintf("%.0f%%", ls.WinRate()*100), ls.BestScore, ls.AvgElapsed)
	}
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tile-quest/internal/core"
	"github.com/vovakirdan/tile-quest/internal/games/tilequest"
	"github.com/vovakirdan/tile-quest/internal/games/tilequest/levels"
	"github.com/vovakirdan/tile-quest/internal/platform/tui"
	"github.com/vovakirdan/tile-quest/internal/registry"
	"github.com/vovakirdan/tile-quest/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagLevelFile  string
)

// modeAliases maps short mode names to registry IDs.
var modeAliases = map[string]string{
	"campaign": "tilequest",
	"blitz":    "tilequest_blitz",
	"puzzle":   "tilequest_puzzle",
	"puzzles":  "tilequest_puzzle",
}

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing Tile Quest. The mode is campaign (default), blitz or
puzzle, or a mode ID from 'tilequest list'.

Controls:
  Arrows/WASD   - Move the cursor
  Enter/Space   - Select a tile, then a neighbour to swap (mouse clicks work too)
  X             - Replace the tile under the cursor
  N             - Next level after a clear
  P             - Pause
  R             - Restart (after game over)
  B/Esc         - Leave (when paused or over)
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - One more swap, miss and replacement per quest, longer timer
  normal - Default allowances, tightening as levels advance
  hard   - One less of each allowance, shorter timer
  fixed  - No progression between levels

Examples:
  tilequest play
  tilequest play blitz --difficulty hard
  tilequest play campaign --level 4
  tilequest play --level-file ./my-board.yaml
  tilequest play --config ./my-tilequest.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start level (1-indexed) for campaign and puzzle modes")
	playCmd.Flags().StringVar(&flagLevelFile, "level-file", "", "Play a single board from a YAML level file")
}

// resolveMode turns a mode argument into a registry ID.
func resolveMode(arg string) (string, error) {
	if arg == "" {
		return "tilequest", nil
	}
	if id, ok := modeAliases[arg]; ok {
		return id, nil
	}
	if registry.Exists(arg) {
		return arg, nil
	}
	return "", fmt.Errorf("unknown mode %q, run 'tilequest list' to see available modes", arg)
}

// terminalConfig builds a runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. The game still runs without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(cmd *cobra.Command, args []string) error {
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	gameID, err := resolveMode(arg)
	if err != nil {
		return err
	}

	logger, closeLog := setupLogging(false)
	defer closeLog()

	tilequest.SetConfigPath(flagConfig)
	tilequest.SetDifficultyPreset(flagDifficulty)
	tilequest.SetStartLevel(flagLevel)

	if flagLevelFile != "" {
		lvl, err := levels.ReadFile(flagLevelFile)
		if err != nil {
			return err
		}
		tilequest.SetCustomLevel(&lvl)
		gameID = "tilequest_puzzle"
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting", "mode", gameID, "difficulty", flagDifficulty, "level", flagLevel)
	if _, err := tui.Run(game, store, terminalConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

package tilequest

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vovakirdan/tile-quest/internal/games/tilequest/levels"
)

//go:embed puzzles/*.yaml
var builtinPuzzles embed.FS

// LoadPuzzles returns the built-in puzzle boards followed by the ones found
// in ~/.tilequest/levels. Unreadable user files are skipped.
func LoadPuzzles() []levels.Level {
	sub, err := fs.Sub(builtinPuzzles, "puzzles")
	if err != nil {
		return nil
	}
	all, err := levels.NewFSLoader(sub).LoadAll()
	if err != nil {
		all = nil
	}

	if dir := userLevelsDir(); dir != "" {
		if user, err := levels.NewLoader(dir).LoadAll(); err == nil {
			all = append(all, user...)
		}
	}
	return all
}

// userLevelsDir returns ~/.tilequest/levels when it exists.
func userLevelsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	dir := filepath.Join(home, ".tilequest", "levels")
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return ""
	}
	return dir
}

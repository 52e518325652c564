package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTileQuest loads Tile Quest configuration.
// Search order: customPath -> ~/.tilequest/configs/tilequest.yaml -> ./configs/tilequest.yaml -> embedded default
func LoadTileQuest(customPath string) (TileQuestConfig, error) {
	// Fields missing from a file keep their default values.
	cfg := DefaultTileQuestConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath("tilequest.yaml"), filepath.Join("configs", "tilequest.yaml")} {
		if path == "" {
			continue
		}
		if c, ok := readConfig(path); ok {
			return c, nil
		}
	}

	// Use embedded default YAML
	cfg = DefaultTileQuestConfig()
	if err := yaml.Unmarshal(defaultTileQuestYAML, &cfg); err != nil {
		return DefaultTileQuestConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// readConfig loads an optional config file; unreadable or invalid files are skipped.
func readConfig(path string) (TileQuestConfig, bool) {
	cfg := DefaultTileQuestConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if cfg.Validate() != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tilequest", "configs", filename)
}

// ApplyTileQuestPreset modifies the config based on a difficulty preset.
func ApplyTileQuestPreset(cfg *TileQuestConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust allowances and timers based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Quests.SwapsAllowed.Count++
		cfg.Quests.ReplacementsAllowed.Count++
		cfg.Quests.MissMatchesAllowed.Count++
		cfg.Rules.Countdown *= 1.5
		cfg.Blitz.Countdown *= 1.5
	case DifficultyHard:
		cfg.Quests.SwapsAllowed.Count = max(cfg.Quests.SwapsAllowed.Count-1, 0)
		cfg.Quests.ReplacementsAllowed.Count = max(cfg.Quests.ReplacementsAllowed.Count-1, 0)
		cfg.Quests.MissMatchesAllowed.Count = max(cfg.Quests.MissMatchesAllowed.Count-1, 0)
		cfg.Rules.Countdown *= 0.75
		cfg.Blitz.Countdown *= 0.75
	}
}

package config

import (
	_ "embed"
)

//go:embed defaults/tilequest.yaml
var defaultTileQuestYAML []byte

// DefaultTileQuestConfig returns the default Tile Quest configuration.
func DefaultTileQuestConfig() TileQuestConfig {
	return TileQuestConfig{
		Grid: GridConfig{
			Width:       9,
			Height:      8,
			TileSize:    16,
			BlockWidth:  3,
			BlockHeight: 4,
			Colors:      5,
		},
		Quests: QuestConfig{
			SwapsAllowed:        AllowanceConfig{Count: 3},
			ReplacementsAllowed: AllowanceConfig{Count: 2},
			MissMatchesAllowed:  AllowanceConfig{Count: 1},
			MatchInterval:       30,
			TilesPerMatch:       3,
		},
		Rules: RulesConfig{
			LossDivisor:      3,
			RevertWrongSwaps: true,
			AdjacentOnly:     true,
			EnemyLifetime:    20,
			Countdown:        180,
		},
		Blitz: BlitzConfig{
			Countdown: 60,
			Colors:    6,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 9,
			},
			Scaling: ScalingConfig{
				CountdownReduction: 0.25,
				AllowanceReduction: 2,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(game string) []byte {
	switch game {
	case "tilequest":
		return defaultTileQuestYAML
	default:
		return nil
	}
}

// Package config provides YAML-based game configuration loading and
// difficulty management for Tile Quest.
package config

// TileQuestConfig contains all configuration for Tile Quest.
type TileQuestConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Quests     QuestConfig      `yaml:"quests"`
	Rules      RulesConfig      `yaml:"rules"`
	Blitz      BlitzConfig      `yaml:"blitz"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GridConfig defines the board used when a level does not set its own size.
type GridConfig struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	TileSize    int `yaml:"tile_size"`    // World units per cell
	BlockWidth  int `yaml:"block_width"`  // Fill sub-block width
	BlockHeight int `yaml:"block_height"` // Fill sub-block height
	Colors      int `yaml:"colors"`
}

// AllowanceConfig is a counted limit with an optional time window in seconds.
type AllowanceConfig struct {
	Count    int     `yaml:"count"`
	Interval float64 `yaml:"interval,omitempty"`
}

// QuestConfig defines how quests are derived from a filled grid.
type QuestConfig struct {
	SwapsAllowed        AllowanceConfig `yaml:"swaps_allowed"`
	ReplacementsAllowed AllowanceConfig `yaml:"replacements_allowed"`
	MissMatchesAllowed  AllowanceConfig `yaml:"miss_matches_allowed"`
	MatchInterval       float64         `yaml:"match_interval"`
	TilesPerMatch       int             `yaml:"tiles_per_match"`
}

// RulesConfig tunes the swap/match pipeline.
type RulesConfig struct {
	LossDivisor      int     `yaml:"loss_divisor"`
	RevertWrongSwaps bool    `yaml:"revert_wrong_swaps"`
	AdjacentOnly     bool    `yaml:"adjacent_only"`
	EnemyLifetime    float64 `yaml:"enemy_lifetime"` // Seconds, 0 keeps enemies forever
	Countdown        float64 `yaml:"countdown"`      // Seconds, 0 disables the timer
}

// BlitzConfig overrides the rules for the single-board timed mode.
type BlitzConfig struct {
	Countdown float64 `yaml:"countdown"`
	Colors    int     `yaml:"colors"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases across the campaign.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level" or "none"
	MaxAt int    `yaml:"max_at"` // Level index at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	CountdownReduction float64 `yaml:"countdown_reduction"` // Fraction of the countdown removed at max difficulty
	AllowanceReduction int     `yaml:"allowance_reduction"` // Swaps/replacements removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a flag value to a preset. Unknown values are normal.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return DifficultyNormal
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

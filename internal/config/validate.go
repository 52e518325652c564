package config

import "fmt"

// MaxColors is the number of tile colors the engine can draw.
const MaxColors = 6

// ValidationError describes a configuration value outside its range.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Validate checks ranges the engine relies on.
// Returns the first problem found, nil if the config is usable.
func (c TileQuestConfig) Validate() error {
	checks := []struct {
		ok      bool
		field   string
		message string
	}{
		{c.Grid.Width > 0, "grid.width", "must be positive"},
		{c.Grid.Height > 0, "grid.height", "must be positive"},
		{c.Grid.TileSize > 0, "grid.tile_size", "must be positive"},
		{c.Grid.BlockWidth >= 0, "grid.block_width", "must not be negative"},
		{c.Grid.BlockHeight >= 0, "grid.block_height", "must not be negative"},
		{c.Grid.Colors >= 1 && c.Grid.Colors <= MaxColors, "grid.colors", fmt.Sprintf("must be between 1 and %d", MaxColors)},
		{c.Quests.SwapsAllowed.Count >= 0, "quests.swaps_allowed.count", "must not be negative"},
		{c.Quests.ReplacementsAllowed.Count >= 0, "quests.replacements_allowed.count", "must not be negative"},
		{c.Quests.MissMatchesAllowed.Count >= 0, "quests.miss_matches_allowed.count", "must not be negative"},
		{c.Quests.TilesPerMatch > 0, "quests.tiles_per_match", "must be positive"},
		{c.Rules.LossDivisor >= 0, "rules.loss_divisor", "must not be negative"},
		{c.Rules.EnemyLifetime >= 0, "rules.enemy_lifetime", "must not be negative"},
		{c.Rules.Countdown >= 0, "rules.countdown", "must not be negative"},
		{c.Blitz.Countdown >= 0, "blitz.countdown", "must not be negative"},
		{c.Blitz.Colors >= 0 && c.Blitz.Colors <= MaxColors, "blitz.colors", fmt.Sprintf("must be between 0 and %d", MaxColors)},
		{c.Difficulty.InitialLevel >= 0 && c.Difficulty.InitialLevel <= 1, "difficulty.initial_level", "must be between 0 and 1"},
	}

	for _, chk := range checks {
		if !chk.ok {
			return ValidationError{Field: chk.field, Message: chk.message}
		}
	}
	return nil
}

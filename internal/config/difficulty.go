package config

import "math"

const (
	minCountdown = 30.0 // Seconds; shortest timer progression may produce
)

// DifficultyManager calculates per-level game parameters from the campaign index.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty level (0.0 to 1.0) of the campaign level at index.
func (d *DifficultyManager) Level(index int) float64 {
	if !d.IsEnabled() || d.cfg.Progression.Type != "level" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := clampF(float64(index)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Countdown shortens the level timer as difficulty increases.
// A disabled timer (base <= 0) stays disabled.
func (d *DifficultyManager) Countdown(base float64, index int) float64 {
	if base <= 0 {
		return base
	}
	level := d.Level(index)
	result := base * (1.0 - level*d.cfg.Scaling.CountdownReduction)
	return math.Max(result, math.Min(base, minCountdown))
}

// Allowance reduces a per-quest allowance as difficulty increases, never below zero.
func (d *DifficultyManager) Allowance(base int, index int) int {
	level := d.Level(index)
	result := base - int(level*float64(d.cfg.Scaling.AllowanceReduction))
	if result < 0 {
		result = 0
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

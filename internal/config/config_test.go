package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg TileQuestConfig
	if err := yaml.Unmarshal(GetDefaultYAML("tilequest"), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultTileQuestConfig()) {
		t.Errorf("embedded default = %+v, expected %+v", cfg, DefaultTileQuestConfig())
	}
	if GetDefaultYAML("minesweeper") != nil {
		t.Error("GetDefaultYAML() should return nil for unknown games")
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultTileQuestConfig().Validate(); err != nil {
		t.Errorf("Validate() = %v, expected nil", err)
	}
}

func TestLoadTileQuestCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("grid:\n  width: 12\n  colors: 4\nrules:\n  countdown: 90\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTileQuest(path)
	if err != nil {
		t.Fatalf("LoadTileQuest() error = %v", err)
	}
	if cfg.Grid.Width != 12 || cfg.Grid.Colors != 4 {
		t.Errorf("grid = %+v, expected width 12 colors 4", cfg.Grid)
	}
	if cfg.Rules.Countdown != 90 {
		t.Errorf("Rules.Countdown = %v, expected 90", cfg.Rules.Countdown)
	}
	// Unset fields keep defaults
	if cfg.Grid.Height != 8 {
		t.Errorf("Grid.Height = %d, expected default 8", cfg.Grid.Height)
	}
	if cfg.Quests.TilesPerMatch != 3 {
		t.Errorf("Quests.TilesPerMatch = %d, expected default 3", cfg.Quests.TilesPerMatch)
	}
}

func TestLoadTileQuestErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadTileQuest(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadTileQuest() should fail for a missing custom file")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("grid: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTileQuest(broken); err == nil {
		t.Error("LoadTileQuest() should fail for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("grid:\n  colors: 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadTileQuest(invalid)
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("LoadTileQuest() error = %v, expected a ValidationError", err)
	}
	if verr.Field != "grid.colors" {
		t.Errorf("ValidationError.Field = %q, expected grid.colors", verr.Field)
	}
}

func TestLoadTileQuestUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".tilequest", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "tilequest.yaml"), []byte("blitz:\n  countdown: 45\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTileQuest("")
	if err != nil {
		t.Fatalf("LoadTileQuest() error = %v", err)
	}
	if cfg.Blitz.Countdown != 45 {
		t.Errorf("Blitz.Countdown = %v, expected 45", cfg.Blitz.Countdown)
	}
}

func TestLoadTileQuestFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadTileQuest("")
	if err != nil {
		t.Fatalf("LoadTileQuest() error = %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultTileQuestConfig()) {
		t.Errorf("LoadTileQuest() = %+v, expected the embedded default", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TileQuestConfig)
		field  string
	}{
		{"zero width", func(c *TileQuestConfig) { c.Grid.Width = 0 }, "grid.width"},
		{"zero height", func(c *TileQuestConfig) { c.Grid.Height = 0 }, "grid.height"},
		{"no colors", func(c *TileQuestConfig) { c.Grid.Colors = 0 }, "grid.colors"},
		{"negative swaps", func(c *TileQuestConfig) { c.Quests.SwapsAllowed.Count = -1 }, "quests.swaps_allowed.count"},
		{"zero tiles per match", func(c *TileQuestConfig) { c.Quests.TilesPerMatch = 0 }, "quests.tiles_per_match"},
		{"negative countdown", func(c *TileQuestConfig) { c.Rules.Countdown = -5 }, "rules.countdown"},
		{"initial level above one", func(c *TileQuestConfig) { c.Difficulty.InitialLevel = 1.5 }, "difficulty.initial_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultTileQuestConfig()
			tt.mutate(&cfg)
			var verr ValidationError
			if err := cfg.Validate(); !errors.As(err, &verr) || verr.Field != tt.field {
				t.Errorf("Validate() = %v, expected field %s", err, tt.field)
			}
		})
	}
}

func TestApplyTileQuestPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		enabled   bool
		initial   float64
		swaps     int
		countdown float64
	}{
		{DifficultyEasy, true, 0.0, 4, 270},
		{DifficultyNormal, true, 0.3, 3, 180},
		{DifficultyHard, true, 0.7, 2, 135},
		{DifficultyFixed, false, 0.0, 3, 180},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultTileQuestConfig()
			ApplyTileQuestPreset(&cfg, tt.preset)
			if cfg.Difficulty.Enabled != tt.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tt.enabled)
			}
			if cfg.Difficulty.InitialLevel != tt.initial {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tt.initial)
			}
			if cfg.Quests.SwapsAllowed.Count != tt.swaps {
				t.Errorf("SwapsAllowed = %d, expected %d", cfg.Quests.SwapsAllowed.Count, tt.swaps)
			}
			if cfg.Rules.Countdown != tt.countdown {
				t.Errorf("Countdown = %v, expected %v", cfg.Rules.Countdown, tt.countdown)
			}
		})
	}
}

func TestApplyHardPresetClampsAtZero(t *testing.T) {
	cfg := DefaultTileQuestConfig()
	cfg.Quests.MissMatchesAllowed.Count = 0
	ApplyTileQuestPreset(&cfg, DifficultyHard)
	if cfg.Quests.MissMatchesAllowed.Count != 0 {
		t.Errorf("MissMatchesAllowed = %d, expected 0", cfg.Quests.MissMatchesAllowed.Count)
	}
}

func TestParsePreset(t *testing.T) {
	tests := map[string]DifficultyPreset{
		"easy":   DifficultyEasy,
		"hard":   DifficultyHard,
		"fixed":  DifficultyFixed,
		"normal": DifficultyNormal,
		"":       DifficultyNormal,
		"insane": DifficultyNormal,
	}
	for in, expected := range tests {
		if got := ParsePreset(in); got != expected {
			t.Errorf("ParsePreset(%q) = %v, expected %v", in, got, expected)
		}
	}
}

func TestDifficultyManager(t *testing.T) {
	dm := NewDifficultyManager(DefaultTileQuestConfig().Difficulty)

	levels := []struct {
		index int
		level float64
	}{
		{0, 0.0},
		{3, 1.0 / 3.0},
		{9, 1.0},
		{20, 1.0},
	}
	for _, tt := range levels {
		if got := dm.Level(tt.index); math.Abs(got-tt.level) > 1e-9 {
			t.Errorf("Level(%d) = %v, expected %v", tt.index, got, tt.level)
		}
	}

	if got := dm.Countdown(180, 9); math.Abs(got-135) > 1e-9 {
		t.Errorf("Countdown(180, 9) = %v, expected 135", got)
	}
	if got := dm.Countdown(40, 9); got != 30 {
		t.Errorf("Countdown(40, 9) = %v, expected floor 30", got)
	}
	if got := dm.Countdown(0, 9); got != 0 {
		t.Errorf("Countdown(0, 9) = %v, expected disabled timer to stay 0", got)
	}
	if got := dm.Allowance(3, 9); got != 1 {
		t.Errorf("Allowance(3, 9) = %d, expected 1", got)
	}
	if got := dm.Allowance(1, 9); got != 0 {
		t.Errorf("Allowance(1, 9) = %d, expected 0", got)
	}
}

func TestDifficultyManagerDisabled(t *testing.T) {
	dm := NewDifficultyManager(DefaultTileQuestConfig().Difficulty)
	dm.SetInitialLevel(0.5)
	dm.SetEnabled(false)

	if dm.IsEnabled() {
		t.Error("IsEnabled() = true, expected false")
	}
	if got := dm.Level(9); got != 0.5 {
		t.Errorf("Level(9) = %v, expected initial 0.5", got)
	}

	dm.SetInitialLevel(3)
	if got := dm.Level(0); got != 1.0 {
		t.Errorf("Level(0) = %v, expected clamped 1.0", got)
	}
}

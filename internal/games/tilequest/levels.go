// Package tilequest implements Tile Quest, a tile-matching puzzle where every
// color is a quest: swap tiles into runs of three before the swaps, misses and
// replacements a quest allows run out.
package tilequest

// Level defines a campaign level.
type Level struct {
	ID         int
	Name       string
	Width      int
	Height     int
	Colors     int
	TimeFactor float64 // Multiplier of the configured countdown
}

// Levels defines the 10 campaign levels. Boards grow and gain colors; the
// difficulty manager tightens allowances and timers on top of this table.
var Levels = []Level{
	{ID: 1, Name: "First Steps", Width: 6, Height: 6, Colors: 3, TimeFactor: 1.0},
	{ID: 2, Name: "Warm Colors", Width: 7, Height: 6, Colors: 4, TimeFactor: 1.0},
	{ID: 3, Name: "Crossroads", Width: 8, Height: 7, Colors: 4, TimeFactor: 1.1},
	{ID: 4, Name: "Tight Squeeze", Width: 8, Height: 8, Colors: 5, TimeFactor: 1.1},
	{ID: 5, Name: "Rainbow", Width: 9, Height: 8, Colors: 5, TimeFactor: 1.2},
	{ID: 6, Name: "Busy Board", Width: 9, Height: 8, Colors: 6, TimeFactor: 1.2},
	{ID: 7, Name: "Enemy Lines", Width: 10, Height: 8, Colors: 6, TimeFactor: 1.3},
	{ID: 8, Name: "Long Haul", Width: 10, Height: 9, Colors: 6, TimeFactor: 1.4},
	{ID: 9, Name: "Last Stand", Width: 11, Height: 9, Colors: 6, TimeFactor: 1.5},
	{ID: 10, Name: "Grand Quest", Width: 12, Height: 9, Colors: 6, TimeFactor: 1.6},
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(Levels)
}

// GetLevel returns the level at the given index (0-based).
// Returns nil if index is out of range.
func GetLevel(index int) *Level {
	if index < 0 || index >= len(Levels) {
		return nil
	}
	return &Levels[index]
}

// LevelNames returns the names of all levels.
func LevelNames() []string {
	names := make([]string, len(Levels))
	for i, lvl := range Levels {
		names[i] = lvl.Name
	}
	return names
}

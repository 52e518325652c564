package core

import "strings"

// Color is the kind (color/shape) of a tile.
type Color uint8

const (
	ColorRed Color = iota
	ColorGreen
	ColorBlue
	ColorYellow
	ColorPurple
	ColorOrange
	ColorCount // Sentinel value for iteration

	// ColorDisabled is the display color of a fenced tile.
	ColorDisabled Color = 0xFF
)

// String returns the string representation of a color.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	case ColorPurple:
		return "purple"
	case ColorOrange:
		return "orange"
	case ColorDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// Char returns a single character for ASCII rendering.
func (c Color) Char() rune {
	switch c {
	case ColorRed:
		return 'R'
	case ColorGreen:
		return 'G'
	case ColorBlue:
		return 'B'
	case ColorYellow:
		return 'Y'
	case ColorPurple:
		return 'P'
	case ColorOrange:
		return 'O'
	case ColorDisabled:
		return '#'
	default:
		return '?'
	}
}

// Valid reports whether c is a playable color.
func (c Color) Valid() bool {
	return c < ColorCount
}

// ParseColor converts a string to a Color.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(s) {
	case "red", "r":
		return ColorRed, true
	case "green", "g":
		return ColorGreen, true
	case "blue", "b":
		return ColorBlue, true
	case "yellow", "y":
		return ColorYellow, true
	case "purple", "p":
		return ColorPurple, true
	case "orange", "o":
		return ColorOrange, true
	default:
		return ColorRed, false
	}
}

// Palette returns the first n playable colors.
// n is clamped to [1, ColorCount].
func Palette(n int) []Color {
	if n < 1 {
		n = 1
	}
	if n > int(ColorCount) {
		n = int(ColorCount)
	}
	colors := make([]Color, n)
	for i := range colors {
		colors[i] = Color(i)
	}
	return colors
}

// Histogram counts tiles per playable color.
type Histogram [ColorCount]int

// Total returns the number of counted tiles.
func (h Histogram) Total() int {
	total := 0
	for _, n := range h {
		total += n
	}
	return total
}

package core

// Color is the foreground color of a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
	ColorMagenta
	ColorOrange
	ColorCyan
	ColorWhite
	ColorGray
	ColorDim
)

// String returns the color name.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	case ColorMagenta:
		return "magenta"
	case ColorOrange:
		return "orange"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	case ColorDim:
		return "dim"
	default:
		return "unknown"
	}
}

// Attr is a set of text attributes applied on top of the color.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrReverse
	AttrBlink
	AttrUnderline

	AttrNone Attr = 0
)

// Has reports whether all bits of a2 are set.
func (a Attr) Has(a2 Attr) bool {
	return a&a2 == a2
}

// Cell is one character position of a Screen.
type Cell struct {
	Rune  rune
	Color Color
	Attr  Attr
}

// blankCell is what Clear writes.
var blankCell = Cell{Rune: ' '}

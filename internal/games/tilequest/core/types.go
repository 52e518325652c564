// Package core provides the rules engine of the Tile Quest puzzle game:
// the tile grid, match detection and the quest tracking pipeline.
// This package is UI-agnostic and deterministic for a given seed.
package core

import "fmt"

// MaxTilesPerMatch is the number of tiles that seal a match.
const MaxTilesPerMatch = 3

// Dir represents one of the four axis directions.
type Dir uint8

const (
	DirRight Dir = iota // +X
	DirLeft             // -X
	DirDown             // +Y
	DirUp               // -Y
)

// AxisDirs lists the scan order used by the match finder.
var AxisDirs = [4]Dir{DirRight, DirLeft, DirDown, DirUp}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirRight:
		return "+X"
	case DirLeft:
		return "-X"
	case DirDown:
		return "+Y"
	case DirUp:
		return "-Y"
	default:
		return "?"
	}
}

// Delta returns the (dx, dy) offset for one step in this direction.
// Y increases downward (screen coordinates).
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirRight:
		return 1, 0
	case DirLeft:
		return -1, 0
	case DirDown:
		return 0, 1
	case DirUp:
		return 0, -1
	default:
		return 0, 0
	}
}

// Coord is an integer grid cell.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Step returns the neighboring cell in the given direction.
func (c Coord) Step(d Dir) Coord {
	dx, dy := d.Delta()
	return c.Add(dx, dy)
}

// Less orders cells row-major: by Y, then by X.
func (c Coord) Less(other Coord) bool {
	if c.Y != other.Y {
		return c.Y < other.Y
	}
	return c.X < other.X
}

// Rect is an axis-aligned rectangle in world units (cells scaled by tile size).
type Rect struct {
	X, Y int
	W, H int
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

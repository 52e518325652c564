package core

// TileState is the display/lifecycle state of a tile.
// A tile is in exactly one state at a time.
type TileState uint8

const (
	StateClean TileState = iota
	StateSelected
	StateDisabled
	StateDeleted
	StateHidden
	StatePulsating
)

// String returns the string representation of a state.
func (s TileState) String() string {
	switch s {
	case StateClean:
		return "clean"
	case StateSelected:
		return "selected"
	case StateDisabled:
		return "disabled"
	case StateDeleted:
		return "deleted"
	case StateHidden:
		return "hidden"
	case StatePulsating:
		return "pulsating"
	default:
		return "unknown"
	}
}

// NextState returns the state a tile ends up in when requested is applied to current.
//
// Precedence:
//   - Clean always wins and clears every transient state
//   - Deleted clears Selected and Disabled
//   - Disabled clears Selected and Deleted
//   - Selected is ignored on Disabled or Deleted tiles
//   - Hidden and Pulsating are ignored on Deleted tiles
func NextState(current, requested TileState) TileState {
	switch requested {
	case StateClean, StateDeleted, StateDisabled:
		return requested
	case StateSelected:
		if current == StateDisabled || current == StateDeleted {
			return current
		}
		return StateSelected
	case StateHidden, StatePulsating:
		if current == StateDeleted {
			return current
		}
		return requested
	default:
		return current
	}
}

// Options is a bit set of tile capabilities.
// Each capability has a complement; setting one side clears the other.
type Options uint8

const (
	OptMovable Options = 1 << iota
	OptShapeable
	OptDestroyable
	OptUnMovable
	OptUnShapeable
	OptUnDestroyable
)

// DefaultOptions is the capability set of a freshly filled tile.
const DefaultOptions = OptMovable | OptShapeable | OptDestroyable

// EnemyOptions is the capability set of an enemy tile.
const EnemyOptions = OptUnMovable | OptUnShapeable | OptDestroyable

// Has reports whether every bit of o2 is set.
func (o Options) Has(o2 Options) bool {
	return o&o2 == o2
}

// With sets capability opt, clearing its complement.
func (o Options) With(opt Options) Options {
	return (o &^ complement(opt)) | opt
}

// complement returns the opposite capability bits of opt.
func complement(opt Options) Options {
	var c Options
	pairs := [][2]Options{
		{OptMovable, OptUnMovable},
		{OptShapeable, OptUnShapeable},
		{OptDestroyable, OptUnDestroyable},
	}
	for _, p := range pairs {
		if opt&p[0] != 0 {
			c |= p[1]
		}
		if opt&p[1] != 0 {
			c |= p[0]
		}
	}
	return c
}

// TileKind distinguishes regular tiles from enemy blockers.
type TileKind uint8

const (
	KindNormal TileKind = iota
	KindEnemy
)

// Tile is a single grid cell's mutable entity.
type Tile struct {
	Cell           Coord
	CellBeforeSwap Coord
	Color          Color
	Options        Options
	Kind           TileKind

	state TileState

	// Fence bookkeeping: number of enemy tiles currently blocking this one
	// and what to restore once the count drops back to zero.
	blocks       int
	savedColor   Color
	savedOptions Options
}

// NewTile creates a clean, movable tile.
func NewTile(cell Coord, color Color) *Tile {
	return &Tile{
		Cell:           cell,
		CellBeforeSwap: cell,
		Color:          color,
		Options:        DefaultOptions,
	}
}

// NewEnemy creates an immovable enemy tile with the same body as t.
func NewEnemy(t *Tile) *Tile {
	e := NewTile(t.Cell, t.Color)
	e.CellBeforeSwap = t.CellBeforeSwap
	e.Options = EnemyOptions
	e.Kind = KindEnemy
	return e
}

// State returns the current state.
func (t *Tile) State() TileState {
	return t.state
}

// SetState applies a requested state through NextState and returns the result.
func (t *Tile) SetState(requested TileState) TileState {
	t.state = NextState(t.state, requested)
	return t.state
}

// Alive reports whether the tile is not deleted.
func (t *Tile) Alive() bool {
	return t.state != StateDeleted
}

// IsEnemy reports whether the tile is an enemy blocker.
func (t *Tile) IsEnemy() bool {
	return t.Kind == KindEnemy
}

// Movable reports whether the tile may take part in a swap.
func (t *Tile) Movable() bool {
	return t.Alive() && !t.Options.Has(OptUnMovable)
}

// Matchable reports whether the tile may take part in a match.
func (t *Tile) Matchable() bool {
	switch t.state {
	case StateDeleted, StateDisabled, StateHidden:
		return false
	}
	return !t.IsEnemy()
}

// Select marks the tile as the pending selection.
func (t *Tile) Select() bool {
	return t.SetState(StateSelected) == StateSelected
}

// Deselect returns a selected tile to clean.
func (t *Tile) Deselect() {
	if t.state == StateSelected {
		t.SetState(StateClean)
	}
}

// Delete logically destroys the tile; its slot becomes eligible for replacement.
func (t *Tile) Delete() {
	t.SetState(StateDeleted)
}

// Disable fences the tile: display color becomes ColorDisabled and the
// movable/shapeable capabilities are stripped. Nested calls are counted.
func (t *Tile) Disable() {
	t.blocks++
	if t.blocks > 1 {
		return
	}
	t.savedColor = t.Color
	t.savedOptions = t.Options
	t.Color = ColorDisabled
	t.Options = t.Options.With(OptUnMovable).With(OptUnShapeable)
	t.SetState(StateDisabled)
}

// Enable lifts one fence. The original color and capabilities come back
// when the last fence is lifted.
func (t *Tile) Enable() {
	if t.blocks == 0 {
		return
	}
	t.blocks--
	if t.blocks > 0 {
		return
	}
	t.Color = t.savedColor
	t.Options = t.savedOptions
	if t.state == StateDisabled {
		t.SetState(StateClean)
	}
}

// Blocked reports whether at least one fence is active on the tile.
func (t *Tile) Blocked() bool {
	return t.blocks > 0
}

// BaseColor returns the tile's own color, ignoring the fence display color.
func (t *Tile) BaseColor() Color {
	if t.blocks > 0 {
		return t.savedColor
	}
	return t.Color
}

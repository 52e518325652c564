package core

import "testing"

func TestNextState(t *testing.T) {
	tests := []struct {
		name      string
		current   TileState
		requested TileState
		expected  TileState
	}{
		{"clean clears selected", StateSelected, StateClean, StateClean},
		{"clean clears deleted", StateDeleted, StateClean, StateClean},
		{"clean clears disabled", StateDisabled, StateClean, StateClean},
		{"deleted clears selected", StateSelected, StateDeleted, StateDeleted},
		{"deleted clears disabled", StateDisabled, StateDeleted, StateDeleted},
		{"disabled clears selected", StateSelected, StateDisabled, StateDisabled},
		{"disabled clears deleted", StateDeleted, StateDisabled, StateDisabled},
		{"select clean", StateClean, StateSelected, StateSelected},
		{"select disabled ignored", StateDisabled, StateSelected, StateDisabled},
		{"select deleted ignored", StateDeleted, StateSelected, StateDeleted},
		{"hide clean", StateClean, StateHidden, StateHidden},
		{"hide deleted ignored", StateDeleted, StateHidden, StateDeleted},
		{"pulsate selected", StateSelected, StatePulsating, StatePulsating},
		{"pulsate deleted ignored", StateDeleted, StatePulsating, StateDeleted},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := NextState(tc.current, tc.requested)
			if got != tc.expected {
				t.Errorf("NextState(%v, %v) = %v, expected %v", tc.current, tc.requested, got, tc.expected)
			}
		})
	}
}

func TestNextStateDeletedAndCleanExclusive(t *testing.T) {
	all := []TileState{StateClean, StateSelected, StateDisabled, StateDeleted, StateHidden, StatePulsating}
	for _, cur := range all {
		for _, req := range all {
			got := NextState(cur, req)
			if req == StateClean && got != StateClean {
				t.Errorf("NextState(%v, clean) = %v", cur, got)
			}
			if req == StateDeleted && got != StateDeleted {
				t.Errorf("NextState(%v, deleted) = %v", cur, got)
			}
		}
	}
}

func TestOptionsComplement(t *testing.T) {
	o := DefaultOptions.With(OptUnMovable)
	if o.Has(OptMovable) {
		t.Error("UnMovable should clear Movable")
	}
	if !o.Has(OptUnMovable) || !o.Has(OptShapeable) || !o.Has(OptDestroyable) {
		t.Errorf("unexpected options %08b", o)
	}

	o = o.With(OptMovable)
	if o.Has(OptUnMovable) || !o.Has(OptMovable) {
		t.Errorf("Movable should clear UnMovable, got %08b", o)
	}
}

func TestTileDisableEnable(t *testing.T) {
	tile := NewTile(C(0, 0), ColorBlue)

	tile.Disable()
	if tile.State() != StateDisabled {
		t.Errorf("State() = %v, expected disabled", tile.State())
	}
	if tile.Color != ColorDisabled {
		t.Errorf("Color = %v, expected sentinel", tile.Color)
	}
	if tile.Movable() || !tile.Options.Has(OptUnShapeable) {
		t.Error("disabled tile should be unmovable and unshapeable")
	}
	if tile.BaseColor() != ColorBlue {
		t.Errorf("BaseColor() = %v, expected blue", tile.BaseColor())
	}

	// Two fences need two releases.
	tile.Disable()
	tile.Enable()
	if !tile.Blocked() {
		t.Error("tile should still be blocked by the second fence")
	}
	tile.Enable()
	if tile.Blocked() || tile.State() != StateClean {
		t.Errorf("tile should be clean after last release, got %v", tile.State())
	}
	if tile.Color != ColorBlue || !tile.Options.Has(DefaultOptions) {
		t.Errorf("color/options not restored: %v %08b", tile.Color, tile.Options)
	}

	// Extra releases are ignored.
	tile.Enable()
	if tile.Color != ColorBlue {
		t.Error("Enable on an unfenced tile should be a no-op")
	}
}

func TestTileSelection(t *testing.T) {
	tile := NewTile(C(1, 1), ColorRed)
	if !tile.Select() {
		t.Fatal("clean tile should be selectable")
	}
	tile.Deselect()
	if tile.State() != StateClean {
		t.Errorf("State() = %v after Deselect, expected clean", tile.State())
	}

	tile.Delete()
	if tile.Select() {
		t.Error("deleted tile should not be selectable")
	}
	if tile.Alive() {
		t.Error("deleted tile should not be alive")
	}
}

func TestEnemyTile(t *testing.T) {
	src := NewTile(C(2, 3), ColorPurple)
	e := NewEnemy(src)

	if !e.IsEnemy() || e.Matchable() || e.Movable() {
		t.Error("enemy should be an unmatchable, unmovable enemy")
	}
	if e.Color != ColorPurple || e.Cell != src.Cell {
		t.Errorf("enemy body mismatch: %v at %v", e.Color, e.Cell)
	}
	if !e.Options.Has(OptUnShapeable) {
		t.Error("enemy should be unshapeable")
	}
}

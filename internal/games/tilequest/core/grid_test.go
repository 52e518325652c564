package core

import (
	"math/rand"
	"testing"
)

func TestGridGetBounds(t *testing.T) {
	g := uniformGrid(5, 4, R)

	testCases := []struct {
		coord    Coord
		expected bool
	}{
		{C(0, 0), true},
		{C(4, 3), true},
		{C(-1, 0), false},
		{C(5, 0), false},
		{C(0, -1), false},
		{C(0, 4), false},
	}

	for _, tc := range testCases {
		got := g.Get(tc.coord) != nil
		if got != tc.expected {
			t.Errorf("Get(%v) present = %v, expected %v", tc.coord, got, tc.expected)
		}
	}
}

func TestGridSetRejectsOutOfBounds(t *testing.T) {
	g := NewGrid(3, 3, 1)
	if g.Set(C(3, 0), NewTile(C(3, 0), R)) {
		t.Error("Set out of bounds should be rejected")
	}
	if g.Alive() != 0 {
		t.Errorf("Alive() = %d, expected 0", g.Alive())
	}

	tile := NewTile(C(0, 0), B)
	if !g.Set(C(2, 1), tile) {
		t.Fatal("Set in bounds should succeed")
	}
	if tile.Cell != C(2, 1) {
		t.Errorf("Set should update tile cell, got %v", tile.Cell)
	}
}

func TestGridSetNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Set(nil) should panic")
		}
	}()
	NewGrid(2, 2, 1).Set(C(0, 0), nil)
}

func TestGridNeverReturnsDeleted(t *testing.T) {
	g := uniformGrid(3, 3, G)
	g.Get(C(1, 1)).Delete()

	if g.Get(C(1, 1)) != nil {
		t.Error("Get should not return a deleted tile")
	}
	for _, tile := range g.Tiles() {
		if !tile.Alive() {
			t.Errorf("Tiles() returned deleted tile at %v", tile.Cell)
		}
	}
	if g.Alive() != 8 {
		t.Errorf("Alive() = %d, expected 8", g.Alive())
	}
}

func TestGridSwap(t *testing.T) {
	g := uniformGrid(3, 1, R)
	a := g.Get(C(0, 0))
	b := g.Get(C(1, 0))

	if !g.Swap(a, b) {
		t.Fatal("Swap should succeed")
	}
	if a.Cell != C(1, 0) || b.Cell != C(0, 0) {
		t.Errorf("cells after swap: a=%v b=%v", a.Cell, b.Cell)
	}
	if a.CellBeforeSwap != C(0, 0) || b.CellBeforeSwap != C(1, 0) {
		t.Errorf("before-swap cells: a=%v b=%v", a.CellBeforeSwap, b.CellBeforeSwap)
	}
	if g.Get(C(1, 0)) != a || g.Get(C(0, 0)) != b {
		t.Error("grid slots not exchanged")
	}

	if !g.Undo(a, b) {
		t.Fatal("Undo should succeed")
	}
	if g.Get(C(0, 0)) != a || g.Get(C(1, 0)) != b {
		t.Error("Undo did not restore the slots")
	}
}

func TestGridSwapUnmovable(t *testing.T) {
	rows := [][]Color{
		{R, G, B},
		{Y, P, O},
	}
	g := NewGridFromColors(rows, 1)
	before := snapshotColors(g)

	a := g.Get(C(0, 0))
	b := g.Get(C(1, 0))
	b.Options = b.Options.With(OptUnMovable)

	if g.Swap(a, b) {
		t.Error("Swap with an UnMovable tile should fail")
	}
	if !equalInts(before, snapshotColors(g)) {
		t.Error("failed swap must not change the grid")
	}
	if a.Cell != C(0, 0) || b.Cell != C(1, 0) {
		t.Errorf("failed swap moved tiles: a=%v b=%v", a.Cell, b.Cell)
	}
}

func TestGridSwapDeleted(t *testing.T) {
	g := uniformGrid(2, 1, R)
	a := g.Get(C(0, 0))
	b := g.Get(C(1, 0))
	b.Delete()

	if g.Swap(a, b) {
		t.Error("Swap with a deleted tile should fail")
	}
	if a.Cell != C(0, 0) {
		t.Errorf("a moved to %v", a.Cell)
	}
}

func TestGridFill(t *testing.T) {
	g := NewGrid(9, 8, 1)
	hist := g.Fill(rand.New(rand.NewSource(42)), Palette(5))

	if hist.Total() != 72 {
		t.Errorf("histogram total = %d, expected 72", hist.Total())
	}
	if g.Alive() != 72 {
		t.Errorf("Alive() = %d, expected 72", g.Alive())
	}
	if g.Histogram() != hist {
		t.Errorf("Histogram() = %v, Fill returned %v", g.Histogram(), hist)
	}
}

// longestRun returns the longest same-color run along either axis.
func longestRun(g *Grid) int {
	best := 0
	for _, d := range []Dir{DirRight, DirDown} {
		for y := 0; y < g.H; y++ {
			for x := 0; x < g.W; x++ {
				c := C(x, y)
				n := 1
				for next := g.Neighbor(c, d); next != nil && next.Color == g.Get(c).Color; next = g.Neighbor(next.Cell, d) {
					n++
				}
				best = max(best, n)
			}
		}
	}
	return best
}

func TestGridFillNoRuns(t *testing.T) {
	tests := []struct {
		name           string
		w, h           int
		blockW, blockH int
	}{
		{"first campaign board", 6, 6, 0, 0},
		{"uneven blocks", 9, 8, 0, 0},
		{"narrow blocks", 7, 5, 1, 1},
		{"wide blocks", 10, 7, 5, 2},
	}

	for _, tc := range tests {
		for colors := 2; colors <= 6; colors++ {
			for seed := int64(1); seed <= 20; seed++ {
				g := NewGrid(tc.w, tc.h, 1)
				g.BlockW, g.BlockH = tc.blockW, tc.blockH
				g.Fill(rand.New(rand.NewSource(seed)), Palette(colors))
				if run := longestRun(g); run >= MaxTilesPerMatch {
					t.Errorf("%s: Fill(%d colors, seed %d) left a run of %d", tc.name, colors, seed, run)
				}
			}
		}
	}
}

func TestGridFillDeterministic(t *testing.T) {
	a := NewGrid(7, 7, 1)
	b := NewGrid(7, 7, 1)
	a.Fill(rand.New(rand.NewSource(7)), Palette(6))
	b.Fill(rand.New(rand.NewSource(7)), Palette(6))

	if !equalInts(snapshotColors(a), snapshotColors(b)) {
		t.Error("Fill with the same seed should produce the same grid")
	}
}

func TestGridRefill(t *testing.T) {
	g := uniformGrid(3, 3, R)
	g.Get(C(0, 0)).Delete()
	g.Get(C(2, 2)).Delete()

	created := g.Refill(rand.New(rand.NewSource(1)), []Color{B})
	if created != 2 {
		t.Errorf("Refill() = %d, expected 2", created)
	}
	if g.Get(C(0, 0)) == nil || g.Get(C(0, 0)).Color != B {
		t.Error("deleted slot should hold a fresh blue tile")
	}
}

func TestGridFenceAxis(t *testing.T) {
	g := uniformGrid(3, 3, G)
	fenced := g.Fence(C(1, 1), true)

	if len(fenced) != 4 {
		t.Fatalf("Fence() touched %d tiles, expected 4", len(fenced))
	}
	for _, c := range []Coord{C(1, 0), C(0, 1), C(2, 1), C(1, 2)} {
		if g.Get(c).State() != StateDisabled {
			t.Errorf("%v should be disabled", c)
		}
	}
	if g.Get(C(0, 0)).State() != StateClean {
		t.Error("diagonal should stay clean when axis neighbours exist")
	}

	g.Fence(C(1, 1), false)
	for _, c := range []Coord{C(1, 0), C(0, 1), C(2, 1), C(1, 2)} {
		if tile := g.Get(c); tile.State() != StateClean || tile.Color != G {
			t.Errorf("%v not restored: %v %v", c, tile.State(), tile.Color)
		}
	}
}

func TestGridFenceDiagonalFallback(t *testing.T) {
	g := NewGrid(3, 3, 1)
	for _, c := range []Coord{C(0, 0), C(2, 0), C(0, 2), C(2, 2)} {
		g.Set(c, NewTile(c, Y))
	}

	fenced := g.Fence(C(1, 1), true)
	if len(fenced) != 4 {
		t.Fatalf("Fence() touched %d tiles, expected 4 diagonals", len(fenced))
	}
	for _, tile := range fenced {
		if tile.Color != ColorDisabled {
			t.Errorf("diagonal %v not disabled", tile.Cell)
		}
	}
}

package core

import (
	"testing"
	"time"
)

func TestMatchXCapacity(t *testing.T) {
	g := uniformGrid(4, 1, R)
	m := NewMatchX()

	for x := 0; x < MaxTilesPerMatch; x++ {
		if !m.Add(g.Get(C(x, 0))) {
			t.Fatalf("Add(%d) = false, expected true", x)
		}
	}
	if !m.Active() {
		t.Error("full match should be active")
	}
	if m.Add(g.Get(C(3, 0))) {
		t.Error("Add() on a sealed match should be rejected")
	}
	if m.Count() != MaxTilesPerMatch {
		t.Errorf("Count() = %d, expected %d", m.Count(), MaxTilesPerMatch)
	}
}

func TestMatchXRejects(t *testing.T) {
	tile := NewTile(C(0, 0), R)
	m := NewMatchX()

	if m.Add(nil) {
		t.Error("Add(nil) should be rejected")
	}
	if !m.Add(tile) {
		t.Fatal("first Add() should succeed")
	}
	if m.Add(tile) {
		t.Error("duplicate Add() should be rejected")
	}
	if m.Count() != 1 {
		t.Errorf("Count() = %d, expected 1", m.Count())
	}
}

func TestMatchXOrder(t *testing.T) {
	g := uniformGrid(3, 3, G)
	m := NewMatchX()
	m.Add(g.Get(C(1, 2)))
	m.Add(g.Get(C(1, 0)))
	m.Add(g.Get(C(1, 1)))

	expected := []Coord{C(1, 0), C(1, 1), C(1, 2)}
	for i, c := range m.Cells() {
		if c != expected[i] {
			t.Errorf("Cells()[%d] = %v, expected %v", i, c, expected[i])
		}
	}
	if m.FirstInOrder() != g.Get(C(1, 0)) {
		t.Error("FirstInOrder() should be the top-most tile")
	}
	if m.IsRowBased() {
		t.Error("vertical match should not be row based")
	}
	if body := m.Body(); body == nil || body.Color != G {
		t.Errorf("Body() = %v, expected a green template", body)
	}
}

func TestMatchXClear(t *testing.T) {
	stamp := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	g := uniformGrid(3, 1, B)
	m := NewMatchX()
	m.SetClock(func() time.Time { return stamp })
	for x := 0; x < 3; x++ {
		m.Add(g.Get(C(x, 0)))
	}
	if !m.CreatedAt().Equal(stamp) {
		t.Errorf("CreatedAt() = %v, expected %v", m.CreatedAt(), stamp)
	}

	m.Clear()
	m.Clear()

	if m.Count() != 0 || m.Active() {
		t.Errorf("after Clear(): Count() = %d, Active() = %v", m.Count(), m.Active())
	}
	if m.Body() != nil || m.FirstInOrder() != nil {
		t.Error("Clear() should release the body and anchor")
	}
	if _, ok := m.Color(); ok {
		t.Error("Color() on an empty match should report false")
	}
	if !m.DeletedAt().Equal(stamp) {
		t.Errorf("DeletedAt() = %v, expected %v", m.DeletedAt(), stamp)
	}
	if !m.Add(g.Get(C(0, 0))) {
		t.Error("a cleared match should accept tiles again")
	}
}

func TestMatchXWorldBox(t *testing.T) {
	tests := []struct {
		name     string
		cells    []Coord
		tileSize int
		expected Rect
	}{
		{"empty", nil, 10, Rect{}},
		{"row", []Coord{C(1, 2), C(2, 2), C(3, 2)}, 10, Rect{X: 10, Y: 20, W: 30, H: 10}},
		{"column", []Coord{C(0, 0), C(0, 1), C(0, 2)}, 4, Rect{X: 0, Y: 0, W: 4, H: 12}},
		{"corner", []Coord{C(1, 1), C(2, 1), C(2, 2)}, 1, Rect{X: 1, Y: 1, W: 2, H: 2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMatchX()
			for _, c := range tc.cells {
				m.Add(NewTile(c, R))
			}
			if got := m.WorldBox(tc.tileSize); got != tc.expected {
				t.Errorf("WorldBox() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

// enemyRow turns the middle row of a 5×3 grid into an enemy run.
func enemyRow(t *testing.T) (*Grid, *EnemyMatches) {
	t.Helper()
	g := NewGridFromColors([][]Color{
		{G, Y, G, Y, G},
		{P, R, R, R, P},
		{Y, G, Y, G, Y},
	}, 10)
	m := NewMatchX()
	for x := 1; x <= 3; x++ {
		m.Add(g.Get(C(x, 1)))
	}
	em := m.AsEnemies(g)
	if em == nil {
		t.Fatal("AsEnemies() = nil, expected a run")
	}
	if m.Count() != 0 {
		t.Errorf("source match Count() = %d after AsEnemies(), expected 0", m.Count())
	}
	return g, em
}

func TestAsEnemies(t *testing.T) {
	g, em := enemyRow(t)

	for x := 1; x <= 3; x++ {
		tile := g.Get(C(x, 1))
		if tile == nil || !tile.IsEnemy() {
			t.Fatalf("cell (%d,1) should hold an enemy", x)
		}
		if tile.Color != R {
			t.Errorf("enemy color = %v, expected red", tile.Color)
		}
		if tile.Movable() {
			t.Error("enemy must not be movable")
		}
	}
	if !em.IsRowBased() {
		t.Error("run should keep the row orientation")
	}

	// Every neighbour of the run above, below and at both ends is fenced.
	fenced := []Coord{C(0, 1), C(4, 1)}
	for x := 1; x <= 3; x++ {
		fenced = append(fenced, C(x, 0), C(x, 2))
	}
	for _, c := range fenced {
		tile := g.Get(c)
		if !tile.Blocked() || tile.State() != StateDisabled {
			t.Errorf("tile %v should be fenced (state %v)", c, tile.State())
		}
		if tile.Movable() {
			t.Errorf("fenced tile %v must not be movable", c)
		}
	}
	if len(em.Fenced()) != 8 {
		t.Errorf("len(Fenced()) = %d, expected 8", len(em.Fenced()))
	}
	for _, c := range []Coord{C(0, 0), C(4, 0), C(0, 2), C(4, 2)} {
		if g.Get(c).Blocked() {
			t.Errorf("corner %v should not be fenced", c)
		}
	}
}

func TestAsEnemiesUnsealed(t *testing.T) {
	g := uniformGrid(3, 3, R)
	m := NewMatchX()
	m.Add(g.Get(C(0, 0)))
	if em := m.AsEnemies(g); em != nil {
		t.Error("AsEnemies() on a partial match should return nil")
	}
}

func TestEnemyBorder(t *testing.T) {
	_, em := enemyRow(t)

	expected := Rect{X: 0, Y: 0, W: 50, H: 30}
	if got := em.Border(10); got != expected {
		t.Errorf("Border() = %+v, expected %+v", got, expected)
	}
	// Cached on first call.
	if got := em.Border(99); got != expected {
		t.Errorf("Border() after cache = %+v, expected %+v", got, expected)
	}
}

func TestEnemyBorderBentRun(t *testing.T) {
	g := NewGridFromColors([][]Color{
		{Y, R, R, G},
		{G, Y, R, B},
		{B, G, Y, P},
	}, 10)
	m := NewMatchX()
	for _, c := range []Coord{C(1, 0), C(2, 0), C(2, 1)} {
		m.Add(g.Get(c))
	}
	em := m.AsEnemies(g)
	if em == nil {
		t.Fatal("AsEnemies() = nil, expected a run")
	}

	expected := Rect{X: 0, Y: -10, W: 40, H: 40}
	got := em.Border(10)
	if got != expected {
		t.Errorf("Border() = %+v, expected %+v", got, expected)
	}
	for _, tile := range em.Tiles() {
		x, y := tile.Cell.X*10, tile.Cell.Y*10
		if x < got.X+10 || y < got.Y+10 || x+10 > got.X+got.W-10 || y+10 > got.Y+got.H-10 {
			t.Errorf("tile %v is not inside the padded border", tile.Cell)
		}
	}
}

func TestEnemyRemove(t *testing.T) {
	g, em := enemyRow(t)

	em.Advance(5)
	if em.Expired(10) {
		t.Error("run should not expire before its lifetime")
	}
	em.Advance(5)
	if !em.Expired(10) {
		t.Error("run should expire at its lifetime")
	}
	if em.Expired(0) {
		t.Error("zero lifetime means never expire")
	}

	em.Remove()
	em.Remove()

	if !em.Removed() {
		t.Error("Removed() = false after Remove()")
	}
	for x := 1; x <= 3; x++ {
		if g.Get(C(x, 1)) != nil {
			t.Errorf("enemy at (%d,1) should be deleted", x)
		}
	}
	for _, tile := range g.Tiles() {
		if tile.Blocked() {
			t.Errorf("tile %v still fenced after Remove()", tile.Cell)
		}
	}
	if got := g.Get(C(0, 1)); got.Color != P || got.State() != StateClean || !got.Movable() {
		t.Errorf("fenced tile not restored: color %v state %v", got.Color, got.State())
	}
}

package core

import (
	"sort"
	"time"

	"github.com/zyedidia/generic/mapset"
)

// MatchX is an ordered set of matched tiles, capped at MaxTilesPerMatch.
// Tiles are kept in row-major cell order for deterministic iteration.
// A full match is sealed until Clear is called.
type MatchX struct {
	tiles []*Tile
	seen  mapset.Set[*Tile]

	firstAdded   *Tile
	firstInOrder *Tile
	rowBased     bool
	body         *Tile // Color/shape template, valid while sealed

	createdAt time.Time
	deletedAt time.Time

	now func() time.Time
}

// NewMatchX creates an empty match.
func NewMatchX() *MatchX {
	return &MatchX{
		tiles: make([]*Tile, 0, MaxTilesPerMatch),
		seen:  mapset.New[*Tile](),
		now:   time.Now,
	}
}

// SetClock overrides the time source used for the created/deleted stamps.
func (m *MatchX) SetClock(now func() time.Time) {
	m.now = now
}

// Add inserts t. Duplicates, nil tiles and adds to a sealed match are rejected.
func (m *MatchX) Add(t *Tile) bool {
	if t == nil || m.Active() || m.seen.Has(t) {
		return false
	}

	m.seen.Put(t)
	m.tiles = append(m.tiles, t)
	sort.SliceStable(m.tiles, func(i, j int) bool {
		return m.tiles[i].Cell.Less(m.tiles[j].Cell)
	})

	switch len(m.tiles) {
	case 1:
		m.firstAdded = t
	case 2:
		m.rowBased = m.firstAdded.Cell.Y == t.Cell.Y
	}

	if len(m.tiles) > MaxTilesPerMatch {
		panic("tilequest: match exceeds capacity")
	}
	if len(m.tiles) == MaxTilesPerMatch {
		m.seal()
	}
	return true
}

// seal freezes the anchor tile and the body template.
func (m *MatchX) seal() {
	m.firstInOrder = m.tiles[0]
	body := *m.firstAdded
	m.body = &body
	m.createdAt = m.now()
}

// Clear empties the match and releases the body template. Safe to call repeatedly.
func (m *MatchX) Clear() {
	m.tiles = m.tiles[:0]
	m.seen = mapset.New[*Tile]()
	m.firstAdded = nil
	m.firstInOrder = nil
	m.rowBased = false
	m.body = nil
	m.deletedAt = m.now()
}

// Count returns the number of tiles in the match.
func (m *MatchX) Count() int {
	return len(m.tiles)
}

// Active reports whether the match is sealed.
func (m *MatchX) Active() bool {
	return len(m.tiles) == MaxTilesPerMatch
}

// Contains reports whether t is part of the match.
func (m *MatchX) Contains(t *Tile) bool {
	return m.seen.Has(t)
}

// Tiles returns a copy of the matched tiles in cell order.
func (m *MatchX) Tiles() []*Tile {
	out := make([]*Tile, len(m.tiles))
	copy(out, m.tiles)
	return out
}

// Cells returns the matched cells in order.
func (m *MatchX) Cells() []Coord {
	cells := make([]Coord, len(m.tiles))
	for i, t := range m.tiles {
		cells[i] = t.Cell
	}
	return cells
}

// Color returns the color of the match, or false when empty.
func (m *MatchX) Color() (Color, bool) {
	if m.body != nil {
		return m.body.Color, true
	}
	if m.firstAdded != nil {
		return m.firstAdded.Color, true
	}
	return 0, false
}

// IsRowBased reports whether the first two tiles share a row.
func (m *MatchX) IsRowBased() bool {
	return m.rowBased
}

// FirstInOrder returns the anchor tile of a sealed match.
func (m *MatchX) FirstInOrder() *Tile {
	return m.firstInOrder
}

// Body returns the cached template tile of a sealed match.
func (m *MatchX) Body() *Tile {
	return m.body
}

// CreatedAt returns when the match was sealed.
func (m *MatchX) CreatedAt() time.Time {
	return m.createdAt
}

// DeletedAt returns when the match was last cleared.
func (m *MatchX) DeletedAt() time.Time {
	return m.deletedAt
}

// WorldBox returns the bounding box of the matched tiles in world units.
func (m *MatchX) WorldBox(tileSize int) Rect {
	if len(m.tiles) == 0 {
		return Rect{}
	}
	minX, minY := m.tiles[0].Cell.X, m.tiles[0].Cell.Y
	maxX, maxY := minX, minY
	for _, t := range m.tiles[1:] {
		minX = min(minX, t.Cell.X)
		minY = min(minY, t.Cell.Y)
		maxX = max(maxX, t.Cell.X)
		maxY = max(maxY, t.Cell.Y)
	}
	return Rect{
		X: minX * tileSize,
		Y: minY * tileSize,
		W: (maxX - minX + 1) * tileSize,
		H: (maxY - minY + 1) * tileSize,
	}
}

// AsEnemies replaces every tile of a sealed match with an enemy tile and
// fences the neighbors of each new enemy. The match is cleared afterwards.
// Returns nil when the match is not sealed.
func (m *MatchX) AsEnemies(g *Grid) *EnemyMatches {
	if !m.Active() {
		return nil
	}

	em := &EnemyMatches{MatchX: NewMatchX()}
	em.now = m.now

	for _, t := range m.tiles {
		enemy := NewEnemy(t)
		g.Set(t.Cell, enemy)
		em.Add(enemy)
	}
	// Fence once every enemy is in place so run members skip each other.
	for _, e := range em.tiles {
		em.fenced = append(em.fenced, g.Fence(e.Cell, true)...)
	}
	em.rowBased = m.rowBased

	m.Clear()
	return em
}

// EnemyMatches is a run of enemy tiles produced from a resolved match.
type EnemyMatches struct {
	*MatchX

	fenced  []*Tile // Tiles disabled on creation, one entry per fence
	age     float64 // Seconds since creation
	removed bool
	border  *Rect
}

// Border returns the bounding box of the run grown by one tile on every
// side, so bent runs are enclosed too. Computed once and cached.
func (e *EnemyMatches) Border(tileSize int) Rect {
	if e.border != nil {
		return *e.border
	}
	if e.Count() == 0 {
		return Rect{}
	}
	box := e.WorldBox(tileSize)
	r := Rect{
		X: box.X - tileSize,
		Y: box.Y - tileSize,
		W: box.W + 2*tileSize,
		H: box.H + 2*tileSize,
	}
	e.border = &r
	return r
}

// Age returns the seconds elapsed since the run was created.
func (e *EnemyMatches) Age() float64 {
	return e.age
}

// Advance ages the run by dt seconds.
func (e *EnemyMatches) Advance(dt float64) {
	e.age += dt
}

// Expired reports whether the run has outlived lifetime. A lifetime of zero
// or less means the run never expires.
func (e *EnemyMatches) Expired(lifetime float64) bool {
	return lifetime > 0 && e.age >= lifetime
}

// Removed reports whether Remove has been called.
func (e *EnemyMatches) Removed() bool {
	return e.removed
}

// Fenced returns the tiles disabled around the run.
func (e *EnemyMatches) Fenced() []*Tile {
	out := make([]*Tile, len(e.fenced))
	copy(out, e.fenced)
	return out
}

// Remove deletes the enemy tiles and lifts their fences.
func (e *EnemyMatches) Remove() {
	if e.removed {
		return
	}
	e.removed = true
	for _, t := range e.tiles {
		t.Delete()
	}
	for _, t := range e.fenced {
		t.Enable()
	}
	e.fenced = nil
	e.MatchX.Clear()
}

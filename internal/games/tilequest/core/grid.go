package core

import "math/rand"

// Default fill sub-block dimensions.
const (
	DefaultBlockW = 3
	DefaultBlockH = 4
)

// Grid stores the tiles of one level in row-major order: index = y*W + x.
// A slot may be empty; the grid owns no rules beyond storage and adjacency.
type Grid struct {
	W        int
	H        int
	TileSize int // World units per cell, used for overlay geometry
	BlockW   int // Fill sub-block width
	BlockH   int // Fill sub-block height

	slots []*Tile
}

// NewGrid creates an empty grid with the given dimensions.
func NewGrid(w, h, tileSize int) *Grid {
	if tileSize < 1 {
		tileSize = 1
	}
	return &Grid{
		W:        w,
		H:        h,
		TileSize: tileSize,
		BlockW:   DefaultBlockW,
		BlockH:   DefaultBlockH,
		slots:    make([]*Tile, w*h),
	}
}

// NewGridFromColors builds a grid from rows of colors (rows[y][x]).
// Mostly useful for tests and hand-made levels.
func NewGridFromColors(rows [][]Color, tileSize int) *Grid {
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	g := NewGrid(w, h, tileSize)
	for y, row := range rows {
		for x, c := range row {
			g.Set(C(x, y), NewTile(C(x, y), c))
		}
	}
	return g
}

// index converts a coordinate to a flat slot index.
func (g *Grid) index(c Coord) int {
	return c.Y*g.W + c.X
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// Get returns the live tile at c, or nil when c is out of bounds,
// the slot is empty or its tile is deleted.
func (g *Grid) Get(c Coord) *Tile {
	if !g.InBounds(c) {
		return nil
	}
	t := g.slots[g.index(c)]
	if t == nil || !t.Alive() {
		return nil
	}
	return t
}

// slot returns whatever occupies c, deleted tiles included.
func (g *Grid) slot(c Coord) *Tile {
	if !g.InBounds(c) {
		return nil
	}
	return g.slots[g.index(c)]
}

// Set places t at c and updates t.Cell. Out-of-bounds writes are ignored.
// Writing nil panics: tiles leave the grid through Tile.Delete.
func (g *Grid) Set(c Coord, t *Tile) bool {
	if t == nil {
		panic("tilequest: grid.Set with nil tile")
	}
	if !g.InBounds(c) {
		return false
	}
	t.Cell = c
	g.slots[g.index(c)] = t
	return true
}

// Neighbor returns the live tile one step from c in direction d.
func (g *Grid) Neighbor(c Coord, d Dir) *Tile {
	return g.Get(c.Step(d))
}

// Fill assigns a color to every cell using a blocked traversal.
// The palette is reshuffled between sub-blocks. Inside a block each cell
// takes the next color of the cycle that does not make a third equal tile
// in its row or column, so a fresh board holds no ready-made match when
// the palette has at least two colors. Returns the per-color histogram.
func (g *Grid) Fill(rng *rand.Rand, palette []Color) Histogram {
	var hist Histogram
	n := len(palette)
	if n == 0 {
		return hist
	}

	// Blocks of at least 2x2 keep the two-color pattern run-free across
	// block edges.
	bw, bh := g.BlockW, g.BlockH
	if bw <= 0 {
		bw = DefaultBlockW
	}
	if bh <= 0 {
		bh = DefaultBlockH
	}
	bw, bh = max(bw, 2), max(bh, 2)

	colors := make([]Color, n)
	copy(colors, palette)
	placed := make([]Color, g.W*g.H)
	at := func(x, y int) (Color, bool) {
		if x < 0 || y < 0 {
			return 0, false
		}
		return placed[y*g.W+x], true
	}
	// Only cells left of and above (x, y) are placed at this point.
	makesRun := func(x, y int, c Color) bool {
		l1, ok1 := at(x-1, y)
		l2, ok2 := at(x-2, y)
		if ok1 && ok2 && l1 == c && l2 == c {
			return true
		}
		u1, ok1 := at(x, y-1)
		u2, ok2 := at(x, y-2)
		return ok1 && ok2 && u1 == c && u2 == c
	}

	for by := 0; by < g.H; by += bh {
		for bx := 0; bx < g.W; bx += bw {
			rng.Shuffle(n, func(i, j int) {
				colors[i], colors[j] = colors[j], colors[i]
			})

			k := 0
			for y := by; y < by+bh && y < g.H; y++ {
				for x := bx; x < bx+bw && x < g.W; x++ {
					var color Color
					if n == 2 {
						// Greedy choice can dead-end with two colors; the
						// diagonal pattern never repeats along an axis.
						color = colors[(x+y)%2]
					} else {
						color = colors[k%n]
						for i := 0; i < n && makesRun(x, y, color); i++ {
							color = colors[(k+i+1)%n]
						}
					}
					placed[y*g.W+x] = color
					g.Set(C(x, y), NewTile(C(x, y), color))
					hist[color]++
					k++
				}
			}
		}
	}

	return hist
}

// Swap exchanges the grid positions of a and b.
// Fails without mutation when either tile is missing, deleted or immovable.
// Both tiles remember their pre-swap cell in CellBeforeSwap.
func (g *Grid) Swap(a, b *Tile) bool {
	if a == nil || b == nil || a == b {
		return false
	}
	if !a.Movable() || !b.Movable() {
		return false
	}
	if g.slot(a.Cell) != a || g.slot(b.Cell) != b {
		return false
	}

	ca, cb := a.Cell, b.Cell
	a.CellBeforeSwap = ca
	b.CellBeforeSwap = cb
	g.Set(cb, a)
	g.Set(ca, b)
	return true
}

// Undo reverts the last swap of a and b.
func (g *Grid) Undo(a, b *Tile) bool {
	if a == nil || b == nil {
		return false
	}
	if a.CellBeforeSwap != b.Cell || b.CellBeforeSwap != a.Cell {
		return false
	}
	ca, cb := a.Cell, b.Cell
	g.Set(cb, a)
	g.Set(ca, b)
	a.CellBeforeSwap = a.Cell
	b.CellBeforeSwap = b.Cell
	return true
}

// Refill replaces every empty or deleted slot with a fresh tile.
// Returns the number of tiles created.
func (g *Grid) Refill(rng *rand.Rand, palette []Color) int {
	if len(palette) == 0 {
		return 0
	}
	created := 0
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := C(x, y)
			if g.Get(c) != nil {
				continue
			}
			g.Set(c, NewTile(c, palette[rng.Intn(len(palette))]))
			created++
		}
	}
	return created
}

// Tiles returns all live tiles in row-major order.
func (g *Grid) Tiles() []*Tile {
	tiles := make([]*Tile, 0, len(g.slots))
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if t := g.Get(C(x, y)); t != nil {
				tiles = append(tiles, t)
			}
		}
	}
	return tiles
}

// Alive returns the number of live tiles.
func (g *Grid) Alive() int {
	count := 0
	for _, t := range g.slots {
		if t != nil && t.Alive() {
			count++
		}
	}
	return count
}

// Histogram counts live tiles per base color. Enemies are not counted.
func (g *Grid) Histogram() Histogram {
	var hist Histogram
	for _, t := range g.Tiles() {
		if t.IsEnemy() {
			continue
		}
		if c := t.BaseColor(); c.Valid() {
			hist[c]++
		}
	}
	return hist
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	clone := NewGrid(g.W, g.H, g.TileSize)
	clone.BlockW = g.BlockW
	clone.BlockH = g.BlockH
	for i, t := range g.slots {
		if t == nil {
			continue
		}
		cp := *t
		clone.slots[i] = &cp
	}
	return clone
}

// Fence disables (block=true) or re-enables the tiles around an enemy at c.
// Axis neighbors are used; when none exists the four diagonals are used.
// Enemy tiles are never fenced. Returns the affected tiles.
func (g *Grid) Fence(c Coord, block bool) []*Tile {
	targets := g.fenceTargets(c)
	for _, t := range targets {
		if block {
			t.Disable()
		} else {
			t.Enable()
		}
	}
	return targets
}

// fenceTargets collects the live, non-enemy tiles around c.
func (g *Grid) fenceTargets(c Coord) []*Tile {
	var axis []*Tile
	for _, d := range AxisDirs {
		if t := g.Neighbor(c, d); t != nil && !t.IsEnemy() {
			axis = append(axis, t)
		}
	}
	if len(axis) > 0 {
		return axis
	}

	var diag []*Tile
	for _, off := range [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}} {
		if t := g.Get(c.Add(off[0], off[1])); t != nil && !t.IsEnemy() {
			diag = append(diag, t)
		}
	}
	return diag
}

package core

// Shorthand colors for hand-made grids.
const (
	R = ColorRed
	G = ColorGreen
	B = ColorBlue
	Y = ColorYellow
	P = ColorPurple
	O = ColorOrange
)

// uniformGrid returns a w×h grid of a single color.
func uniformGrid(w, h int, c Color) *Grid {
	rows := make([][]Color, h)
	for y := range rows {
		rows[y] = make([]Color, w)
		for x := range rows[y] {
			rows[y][x] = c
		}
	}
	return NewGridFromColors(rows, 1)
}

// diagonalGrid returns a grid where no two axis neighbours share a color:
// color(x, y) = (x + 2y) mod 5.
func diagonalGrid(w, h int) *Grid {
	rows := make([][]Color, h)
	for y := range rows {
		rows[y] = make([]Color, w)
		for x := range rows[y] {
			rows[y][x] = Color((x + 2*y) % 5)
		}
	}
	return NewGridFromColors(rows, 1)
}

// snapshotColors returns the colors of every slot, -1 for empty ones.
func snapshotColors(g *Grid) []int {
	out := make([]int, 0, g.W*g.H)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if t := g.Get(C(x, y)); t != nil {
				out = append(out, int(t.Color))
			} else {
				out = append(out, -1)
			}
		}
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

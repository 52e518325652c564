package core

// maxMatchAttempts bounds the match search: the trigger cell, then the
// trigger's pre-swap cell.
const maxMatchAttempts = 2

// Search is the result of a match search.
type Search struct {
	Found    bool
	Attempts int   // Number of scans performed (1 or 2)
	Anchor   *Tile // Tile the successful scan started from
}

// FindMatch grows a same-color run from trigger into m.
//
// Each axis direction is scanned independently from the anchor cell. While the
// next tile in that direction is matchable and shares the anchor's color, the
// anchor and that tile are added and the scan advances. A scan stops on a color
// mismatch, an empty or dead cell, or a sealed match.
//
// When the first scan falls short, m is cleared and the scan is repeated once
// from the tile now occupying the trigger's pre-swap cell: the first clicked
// tile may be the one that forms the match. On failure m keeps the partial
// run; callers clear it.
func FindMatch(g *Grid, trigger *Tile, m *MatchX) Search {
	var res Search
	if trigger == nil {
		return res
	}

	anchor := trigger
	for attempt := 0; attempt < maxMatchAttempts; attempt++ {
		if attempt > 0 {
			prev := g.Get(trigger.CellBeforeSwap)
			if prev == nil || prev == anchor {
				break
			}
			m.Clear()
			anchor = prev
		}

		res.Attempts++
		scan(g, anchor, m)
		if m.Count() == MaxTilesPerMatch {
			res.Found = true
			res.Anchor = anchor
			return res
		}
	}
	return res
}

// scan walks the four axis directions from anchor.
func scan(g *Grid, anchor *Tile, m *MatchX) {
	if !anchor.Matchable() {
		return
	}
	for _, d := range AxisDirs {
		cur := anchor.Cell
		for m.Count() < MaxTilesPerMatch {
			next := g.Neighbor(cur, d)
			if next == nil || !next.Matchable() || next.Color != anchor.Color {
				break
			}
			m.Add(anchor)
			m.Add(next)
			cur = next.Cell
		}
	}
}

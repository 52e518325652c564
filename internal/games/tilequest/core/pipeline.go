package core

// SwapEvent is raised by the click stage after a successful swap.
type SwapEvent struct {
	First  *Tile         // Tile selected first
	Second *Tile         // Tile clicked second; the match trigger
	States []*QuestState // Quest states of the swapped colors (at most two)
}

// MatchEvent is raised by the swap stage when the swap produced a match.
type MatchEvent struct {
	Swap       SwapEvent
	Color      Color // Color that matched
	Ignored    Color // Swapped color that did not match
	HasIgnored bool
	Search     Search
}

// HandleClick feeds one clicked cell through the pipeline:
// click → swap → match check → quest update. Every stage runs to completion
// before returning, so the outcome reflects the full effect of the click.
func (c *GameContext) HandleClick(cell Coord) FrameOutcome {
	if c.IsGameOver() {
		return FrameOutcome{Kind: OutcomeNoOp}
	}

	t := c.Grid.Get(cell)
	if t == nil {
		return FrameOutcome{Kind: OutcomeNoOp}
	}

	if c.selected == nil {
		if !t.Select() {
			return FrameOutcome{Kind: OutcomeNoOp}
		}
		c.selected = t
		return FrameOutcome{Kind: OutcomeSelected, Cells: []Coord{t.Cell}}
	}

	first := c.selected
	first.Deselect()
	c.selected = nil

	if first == t {
		return FrameOutcome{Kind: OutcomeDeselected, Cells: []Coord{t.Cell}}
	}

	if c.Rules.AdjacentOnly && !adjacent(first.Cell, t.Cell) {
		c.stats.Rejected++
		return FrameOutcome{Kind: OutcomeRejected, Cells: []Coord{first.Cell, t.Cell}}
	}
	if !c.Grid.Swap(first, t) {
		c.stats.Rejected++
		c.logger.Debug("swap rejected", "a", first.Cell, "b", t.Cell)
		return FrameOutcome{Kind: OutcomeRejected, Cells: []Coord{first.Cell, t.Cell}}
	}

	c.stats.Swaps++
	c.logger.Debug("tiles swapped", "a", first.CellBeforeSwap, "b", t.CellBeforeSwap)
	return c.onTilesSwapped(SwapEvent{
		First:  first,
		Second: t,
		States: c.swappedStates(first.Color, t.Color),
	})
}

// swappedStates collects the quest states whose color is a or b.
func (c *GameContext) swappedStates(a, b Color) []*QuestState {
	var states []*QuestState
	for i := range c.States {
		if s := &c.States[i]; s.Color == a || s.Color == b {
			states = append(states, s)
		}
	}
	return states
}

// onTilesSwapped is the swap stage.
func (c *GameContext) onTilesSwapped(ev SwapEvent) FrameOutcome {
	out := FrameOutcome{
		Kind:  OutcomeSwapped,
		Cells: []Coord{ev.First.Cell, ev.Second.Cell},
	}

	// A forfeited quest takes no further part: no match check, no penalty.
	for _, s := range ev.States {
		if s.Lost {
			out.Kind = OutcomeQuestLost
			out.LostColors = append(out.LostColors, s.Color)
		}
	}
	if len(out.LostColors) > 0 {
		return out
	}

	c.match.Clear()
	res := FindMatch(c.Grid, ev.Second, c.match)
	out.Attempts = res.Attempts
	if res.Found {
		color, _ := c.match.Color()
		mev := MatchEvent{Swap: ev, Color: color, Search: res}
		mev.Ignored, mev.HasIgnored = ignoredColor(ev, color)
		return c.onMatchFound(mev)
	}
	c.match.Clear()

	c.stats.WrongSwaps++
	for _, s := range ev.States {
		q, _ := c.Lookup(s.Color)
		if s.RecordWrongSwap(*q) {
			out.LostColors = append(out.LostColors, s.Color)
			c.loseQuest(s)
		}
	}

	if c.Rules.RevertWrongSwaps {
		c.Grid.Undo(ev.First, ev.Second)
	}
	return c.finish(out)
}

// onMatchFound is the match stage. The working match is always cleared.
func (c *GameContext) onMatchFound(ev MatchEvent) FrameOutcome {
	out := FrameOutcome{
		Kind:       OutcomeMatchFound,
		Cells:      c.match.Cells(),
		Color:      ev.Color,
		Ignored:    ev.Ignored,
		HasIgnored: ev.HasIgnored,
		Attempts:   ev.Search.Attempts,
		Box:        c.match.WorldBox(c.Grid.TileSize),
	}
	defer c.match.Clear()

	q, s := c.Lookup(ev.Color)
	if s == nil || !s.Active() {
		// Miss-match: counted against the color that should have matched.
		out.MissMatch = true
		c.stats.MissMatches++
		if ev.HasIgnored {
			if iq, is := c.Lookup(ev.Ignored); is != nil && is.RecordMissMatch(*iq) {
				out.LostColors = append(out.LostColors, is.Color)
				c.loseQuest(is)
			}
		}
		if em := c.match.AsEnemies(c.Grid); em != nil {
			c.enemies = append(c.enemies, em)
			c.stats.EnemyRuns++
			out.Enemy = em
		}
		c.logger.Debug("miss-match", "color", ev.Color, "ignored", ev.Ignored)
		c.checkWin()
		return c.finish(out)
	}

	c.stats.Matches++
	if s.RecordMatch(*q) {
		out.Completed = append(out.Completed, s.Color)
		c.logger.Debug("quest complete", "color", s.Color, "matches", s.Matches)
	}
	for _, t := range c.match.Tiles() {
		t.Delete()
	}
	c.Grid.Refill(c.rng, c.palette)
	c.logger.Debug("match", "color", ev.Color, "cells", out.Cells, "attempts", out.Attempts)

	c.checkWin()
	return c.finish(out)
}

// Replace recolors the tile at cell, charging the replacement against the
// quest of its current color.
func (c *GameContext) Replace(cell Coord) FrameOutcome {
	if c.IsGameOver() {
		return FrameOutcome{Kind: OutcomeNoOp}
	}
	t := c.Grid.Get(cell)
	if t == nil || t.IsEnemy() || t.Blocked() || t.Options.Has(OptUnShapeable) {
		c.stats.Rejected++
		return FrameOutcome{Kind: OutcomeRejected, Cells: []Coord{cell}}
	}

	choices := make([]Color, 0, len(c.palette))
	for _, p := range c.palette {
		if p != t.Color {
			choices = append(choices, p)
		}
	}
	if len(choices) == 0 {
		c.stats.Rejected++
		return FrameOutcome{Kind: OutcomeRejected, Cells: []Coord{cell}}
	}

	if c.selected != nil {
		c.selected.Deselect()
		c.selected = nil
	}

	old := t.Color
	t.Color = choices[c.rng.Intn(len(choices))]
	c.stats.Replacements++

	out := FrameOutcome{Kind: OutcomeReplaced, Cells: []Coord{cell}, Color: t.Color}
	if q, s := c.Lookup(old); s != nil && s.RecordReplacement(*q) {
		out.LostColors = append(out.LostColors, old)
		c.loseQuest(s)
	}
	c.logger.Debug("tile replaced", "cell", cell, "from", old, "to", t.Color)
	return c.finish(out)
}

// finish promotes the outcome kind when quests or the game were lost.
func (c *GameContext) finish(out FrameOutcome) FrameOutcome {
	switch {
	case c.gameLost:
		out.Kind = OutcomeGameOver
	case len(out.LostColors) > 0:
		out.Kind = OutcomeQuestLost
	}
	return out
}

// ignoredColor returns the swapped color that did not form the match.
func ignoredColor(ev SwapEvent, matched Color) (Color, bool) {
	if ev.First.Color != matched {
		return ev.First.Color, true
	}
	if ev.Second.Color != matched {
		return ev.Second.Color, true
	}
	return 0, false
}

// adjacent reports whether a and b are axis neighbours.
func adjacent(a, b Coord) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx+dy*dy == 1
}

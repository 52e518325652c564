package tilequest

import (
	"fmt"
	"unicode/utf8"

	platformcore "github.com/vovakirdan/tile-quest/internal/core"
	"github.com/vovakirdan/tile-quest/internal/games/tilequest/core"
)

const (
	cellWidth    = 3 // Terminal columns per tile
	cellHeight   = 1 // Terminal rows per tile
	hudHeight    = 3
	statusHeight = 2
	questPanelW  = 34
)

// tileColors maps engine colors to terminal colors.
var tileColors = map[core.Color]platformcore.Color{
	core.ColorRed:      platformcore.ColorRed,
	core.ColorGreen:    platformcore.ColorGreen,
	core.ColorBlue:     platformcore.ColorBlue,
	core.ColorYellow:   platformcore.ColorYellow,
	core.ColorPurple:   platformcore.ColorMagenta,
	core.ColorOrange:   platformcore.ColorOrange,
	core.ColorDisabled: platformcore.ColorDim,
}

// layout returns the board frame and the top-left corner of the quest panel.
// The panel sits right of the board when it fits, below it otherwise.
func (g *Game) layout() (frame platformcore.Rect, panelX, panelY int) {
	grid := g.ctx.Grid
	boardW := grid.W*cellWidth + 2
	boardH := grid.H*cellHeight + 2

	side := g.screenW >= boardW+1+questPanelW
	totalW := boardW
	if side {
		totalW += 1 + questPanelW
	}
	x0 := max((g.screenW-totalW)/2, 0)

	frame = platformcore.NewRect(x0, hudHeight, boardW, boardH)
	if side {
		return frame, frame.Right() + 1, hudHeight
	}
	return frame, x0, frame.Bottom()
}

// boardRect returns the screen area covered by tiles.
func (g *Game) boardRect() platformcore.Rect {
	frame, _, _ := g.layout()
	return platformcore.NewRect(frame.X+1, frame.Y+1, frame.W-2, frame.H-2)
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.ctx == nil {
		g.drawOverlay(dst, g.screenW/2, g.screenH/2, g.message, "Press Q to quit")
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	frame, panelX, panelY := g.layout()
	g.renderHUD(dst)
	g.renderBoard(dst, frame)
	g.renderQuests(dst, panelX, panelY)
	g.renderStatus(dst)
	g.renderOverlays(dst, frame)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, level, score and timer.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	title := "TILE QUEST"
	switch g.mode {
	case ModeBlitz:
		title += " - Blitz"
	case ModePuzzle:
		title += " - Puzzles"
	}
	dst.DrawTextCentered(0, title)

	var level string
	if n := g.levelCount(); n > 0 {
		level = fmt.Sprintf("Level %d/%d  %s", g.levelIndex+1, n, g.levelName)
	} else {
		level = g.levelName
	}
	dst.DrawText(1, 1, level)

	score := fmt.Sprintf("Score: %d", g.score+g.levelScore)
	dst.DrawText(g.screenW-len(score)-1, 1, score)

	if g.ctx.Rules.Countdown > 0 {
		left := int(g.ctx.TimeLeft() + 0.999)
		color := platformcore.ColorDefault
		if left <= 10 {
			color = platformcore.ColorRed
		}
		dst.DrawTextColored(1, 2, fmt.Sprintf("Time %d:%02d", left/60, left%60), color, platformcore.AttrNone)
	}

	if n := len(g.ctx.Enemies()); n > 0 {
		enemies := fmt.Sprintf("Enemy runs: %d", n)
		dst.DrawTextColored(g.screenW-len(enemies)-1, 2, enemies, platformcore.ColorRed, platformcore.AttrNone)
	}
}

// renderBoard draws the frame and every tile row-major.
func (g *Game) renderBoard(dst *platformcore.Screen, frame platformcore.Rect) {
	dst.DrawBox(frame)

	grid := g.ctx.Grid
	ts := grid.TileSize
	selected := g.ctx.Selection()

	for y := range grid.H {
		for x := range grid.W {
			cell := core.C(x, y)
			sx := frame.X + 1 + x*cellWidth
			sy := frame.Y + 1 + y*cellHeight

			t := grid.Get(cell)
			if t != nil {
				glyph := t.Color.Char()
				color := tileColors[t.Color]
				attr := platformcore.AttrNone

				switch {
				case t.IsEnemy():
					glyph = '#'
					attr |= platformcore.AttrBold
				case t.Blocked():
					glyph = '·'
				}
				if t == selected {
					attr |= platformcore.AttrReverse
				}
				if g.flashTicks > 0 && worldContains(g.flash, x*ts, y*ts) {
					attr |= platformcore.AttrBold
				}
				if g.fencedZone(x*ts, y*ts) {
					attr |= platformcore.AttrUnderline
				}
				dst.SetColored(sx+1, sy, glyph, color, attr)
			}

			if cell == g.cursor {
				dst.SetColored(sx, sy, '[', platformcore.ColorWhite, platformcore.AttrBold)
				dst.SetColored(sx+2, sy, ']', platformcore.ColorWhite, platformcore.AttrBold)
			}
		}
	}
}

// fencedZone reports whether the world point lies inside an enemy border.
func (g *Game) fencedZone(wx, wy int) bool {
	for _, e := range g.ctx.Enemies() {
		if worldContains(e.Border(g.ctx.Grid.TileSize), wx, wy) {
			return true
		}
	}
	return false
}

func worldContains(r core.Rect, x, y int) bool {
	return !r.Empty() && x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// renderQuests draws one line per quest with its counters.
func (g *Game) renderQuests(dst *platformcore.Screen, x, y int) {
	header := fmt.Sprintf("Quests %d/%d  lost at %d left",
		g.ctx.CompletedQuests(), g.ctx.OriginalQuests(), g.ctx.LossThreshold())
	dst.DrawText(x, y, header)

	for i, q := range g.ctx.Quests {
		_, s := g.ctx.Lookup(q.Color)
		if s == nil {
			continue
		}
		line := fmt.Sprintf("%c %-6s %2d/%-2d s%d/%d m%d/%d r%d/%d",
			q.Color.Char(), q.Color, s.Matches, q.MatchesRequired.Count,
			s.WrongSwaps, q.SwapsAllowed.Count,
			s.MissMatches, q.MissMatchesAllowed.Count,
			s.Replacements, q.ReplacementsAllowed.Count)

		color := tileColors[q.Color]
		attr := platformcore.AttrNone
		switch {
		case s.Lost:
			line += " lost"
			color = platformcore.ColorDim
		case s.Complete:
			line += " done"
			attr = platformcore.AttrBold
		}
		dst.DrawTextColored(x, y+1+i, line, color, attr)
	}
}

// renderStatus draws the last event and the control hints.
func (g *Game) renderStatus(dst *platformcore.Screen) {
	if g.message != "" {
		dst.DrawTextCentered(g.screenH-2, g.message)
	}
	dst.DrawTextCentered(g.screenH-1, g.Controls())
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *platformcore.Screen, frame platformcore.Rect) {
	centerX, centerY := frame.Center()

	switch {
	case g.paused:
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	case g.phase == PhaseCleared:
		next := "Press N for the next board"
		if g.mode == ModeCampaign {
			next = fmt.Sprintf("Press N for level %d", g.levelIndex+2)
		}
		g.drawOverlay(dst, centerX, centerY, "LEVEL CLEARED",
			fmt.Sprintf("Level score: %d", g.levelScore), next)
	case g.phase == PhaseComplete:
		g.drawOverlay(dst, centerX, centerY, "ALL QUESTS COMPLETE!",
			fmt.Sprintf("Final score: %d", g.score), "Press R to restart")
	case g.phase == PhaseFailed:
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", g.message,
			fmt.Sprintf("Final score: %d", g.score), "Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *platformcore.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := platformcore.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	// Clear area behind overlay
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		x := centerX - utf8.RuneCountInString(line)/2
		dst.DrawText(x, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows: Move | Enter/Click: Swap | X: Replace | P: Pause | Q: Quit"
}

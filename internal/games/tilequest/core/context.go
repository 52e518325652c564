package core

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
)

// DefaultLossDivisor makes a level lost once the remaining quests drop to a
// third of the original count.
const DefaultLossDivisor = 3

// Rules tunes the pipeline.
type Rules struct {
	// LossDivisor sets the game-loss threshold: original/LossDivisor
	// (integer division). Values below 1 fall back to DefaultLossDivisor.
	LossDivisor int

	RevertWrongSwaps bool    // Swap non-matching tiles back
	AdjacentOnly     bool    // Only axis neighbours may be swapped
	EnemyLifetime    float64 // Seconds an enemy run blocks its fence; <= 0 keeps it
	Countdown        float64 // Level timer in seconds; <= 0 disables it
}

// DefaultRules returns the standard pipeline rules.
func DefaultRules() Rules {
	return Rules{
		LossDivisor:      DefaultLossDivisor,
		RevertWrongSwaps: true,
		AdjacentOnly:     true,
		EnemyLifetime:    20,
		Countdown:        180,
	}
}

// LevelParams are the bootstrap parameters of one level.
type LevelParams struct {
	Width    int
	Height   int
	TileSize int
	BlockW   int
	BlockH   int
	Colors   int

	Quests QuestRules
	Rules  Rules
}

// GameContext holds everything the click pipeline reads and mutates:
// the grid, the quests and their running states, and the pending selection.
// It is owned by a single frame loop and is not safe for concurrent use.
type GameContext struct {
	Grid   *Grid
	Quests []Quest
	States []QuestState
	Rules  Rules

	palette []Color
	rng     *rand.Rand
	logger  *log.Logger

	selected *Tile
	match    *MatchX
	enemies  []*EnemyMatches

	originalQuests  int
	remainingQuests int

	timeLeft float64
	elapsed  float64
	gameLost bool
	gameWon  bool

	stats Stats
}

// NewGameContext wires a context around an existing grid and quest set.
// Every state must have a quest of the same color.
func NewGameContext(g *Grid, quests []Quest, states []QuestState, rules Rules) *GameContext {
	for _, s := range states {
		if findQuest(quests, s.Color) < 0 {
			panic("tilequest: quest state " + s.Color.String() + " has no quest")
		}
	}

	ctx := &GameContext{
		Grid:            g,
		Quests:          quests,
		States:          states,
		Rules:           rules,
		palette:         paletteOf(quests),
		rng:             rand.New(rand.NewSource(1)),
		logger:          log.New(io.Discard),
		match:           NewMatchX(),
		originalQuests:  len(states),
		remainingQuests: len(states),
		timeLeft:        rules.Countdown,
	}
	for _, s := range states {
		if s.Lost {
			ctx.remainingQuests--
		}
	}
	return ctx
}

// NewLevel fills a fresh grid and derives the quests from its histogram.
func NewLevel(p LevelParams, rng *rand.Rand) *GameContext {
	g := NewGrid(p.Width, p.Height, p.TileSize)
	if p.BlockW > 0 {
		g.BlockW = p.BlockW
	}
	if p.BlockH > 0 {
		g.BlockH = p.BlockH
	}
	palette := Palette(p.Colors)
	hist := g.Fill(rng, palette)

	quests, states := BuildQuests(hist, p.Quests)
	ctx := NewGameContext(g, quests, states, p.Rules)
	ctx.rng = rng
	ctx.palette = palette
	return ctx
}

// SetLogger replaces the debug logger.
func (c *GameContext) SetLogger(l *log.Logger) {
	if l != nil {
		c.logger = l
	}
}

// SetRand replaces the random source used for refills and replacements.
func (c *GameContext) SetRand(rng *rand.Rand) {
	if rng != nil {
		c.rng = rng
	}
}

// SetPalette replaces the colors used for refills and replacements.
func (c *GameContext) SetPalette(p []Color) {
	c.palette = append([]Color(nil), p...)
}

// Selection returns the pending selection, or nil.
func (c *GameContext) Selection() *Tile {
	return c.selected
}

// Match returns the working match set. It is empty between inputs.
func (c *GameContext) Match() *MatchX {
	return c.match
}

// Enemies returns the live enemy runs.
func (c *GameContext) Enemies() []*EnemyMatches {
	return c.enemies
}

// Stats returns the per-level counters.
func (c *GameContext) Stats() Stats {
	return c.stats
}

// TimeLeft returns the seconds left on the level timer.
func (c *GameContext) TimeLeft() float64 {
	return c.timeLeft
}

// Elapsed returns the seconds played.
func (c *GameContext) Elapsed() float64 {
	return c.elapsed
}

// GameLost reports whether the level is lost.
func (c *GameContext) GameLost() bool {
	return c.gameLost
}

// GameWon reports whether the level is won.
func (c *GameContext) GameWon() bool {
	return c.gameWon
}

// IsGameOver reports whether the level has ended either way.
func (c *GameContext) IsGameOver() bool {
	return c.gameLost || c.gameWon
}

// OriginalQuests returns the quest count at level start.
func (c *GameContext) OriginalQuests() int {
	return c.originalQuests
}

// RemainingQuests returns the number of quests not lost.
func (c *GameContext) RemainingQuests() int {
	return c.remainingQuests
}

// LossThreshold returns the remaining-quest count at which the level is lost.
func (c *GameContext) LossThreshold() int {
	div := c.Rules.LossDivisor
	if div < 1 {
		div = DefaultLossDivisor
	}
	return c.originalQuests / div
}

// CompletedQuests returns the number of completed quests.
func (c *GameContext) CompletedQuests() int {
	n := 0
	for _, s := range c.States {
		if s.Complete {
			n++
		}
	}
	return n
}

// Lookup returns the quest and running state for color, or nils when the
// color has no quest.
func (c *GameContext) Lookup(color Color) (*Quest, *QuestState) {
	for i := range c.States {
		if c.States[i].Color != color {
			continue
		}
		qi := findQuest(c.Quests, color)
		if qi < 0 {
			panic("tilequest: quest state " + color.String() + " has no quest")
		}
		return &c.Quests[qi], &c.States[i]
	}
	return nil, nil
}

// Advance moves the level clock by dt seconds: enemy runs age and expire,
// and the level is lost when the countdown runs out first.
func (c *GameContext) Advance(dt float64) {
	if c.IsGameOver() || dt <= 0 {
		return
	}
	c.elapsed += dt

	live := c.enemies[:0]
	expired := 0
	for _, e := range c.enemies {
		e.Advance(dt)
		if e.Expired(c.Rules.EnemyLifetime) {
			e.Remove()
			expired++
			continue
		}
		live = append(live, e)
	}
	c.enemies = live
	if expired > 0 {
		c.Grid.Refill(c.rng, c.palette)
		c.logger.Debug("enemy runs expired", "count", expired)
	}

	if c.Rules.Countdown <= 0 {
		return
	}
	c.timeLeft -= dt
	if c.timeLeft <= 0 {
		c.timeLeft = 0
		c.gameLost = true
		c.logger.Debug("level timer expired", "completed", c.CompletedQuests(), "quests", c.originalQuests)
	}
}

// loseQuest applies the cascading-failure rule after s was lost.
func (c *GameContext) loseQuest(s *QuestState) {
	c.remainingQuests--
	c.logger.Debug("quest lost", "color", s.Color, "remaining", c.remainingQuests, "threshold", c.LossThreshold())
	if c.remainingQuests <= c.LossThreshold() {
		c.gameLost = true
		c.logger.Debug("level lost", "remaining", c.remainingQuests)
		return
	}
	c.checkWin()
}

// checkWin settles the level once no quest is active: won when every
// quest is complete, lost when any was lost on the way.
func (c *GameContext) checkWin() {
	if c.IsGameOver() || len(c.States) == 0 {
		return
	}
	complete := 0
	for _, s := range c.States {
		if s.Active() {
			return
		}
		if s.Complete {
			complete++
		}
	}
	if complete < len(c.States) {
		c.gameLost = true
		c.logger.Debug("level lost", "completed", complete, "quests", len(c.States))
		return
	}
	c.gameWon = true
	c.logger.Debug("level won", "completed", complete, "elapsed", c.elapsed)
}

// findQuest returns the index of the quest for color, or -1.
func findQuest(quests []Quest, color Color) int {
	for i, q := range quests {
		if q.Color == color {
			return i
		}
	}
	return -1
}

// paletteOf lists the quest colors, falling back to the full palette.
func paletteOf(quests []Quest) []Color {
	if len(quests) == 0 {
		return Palette(int(ColorCount))
	}
	colors := make([]Color, len(quests))
	for i, q := range quests {
		colors[i] = q.Color
	}
	return colors
}

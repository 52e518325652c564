package tilequest

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/tile-quest/internal/config"
	platformcore "github.com/vovakirdan/tile-quest/internal/core"
	"github.com/vovakirdan/tile-quest/internal/games/tilequest/core"
	"github.com/vovakirdan/tile-quest/internal/games/tilequest/levels"
	"github.com/vovakirdan/tile-quest/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeBlitz    Mode = "blitz"
	ModePuzzle   Mode = "puzzle"
)

// Scoring
const (
	pointsPerMatch  = 100
	pointsPerQuest  = 250
	pointsPerSecond = 10 // Time bonus for a won level
)

// Phase is the lifecycle stage of the current level.
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhaseCleared       // Level won, waiting for Next or the auto-advance delay
	PhaseFailed        // Level lost; the run is over
	PhaseComplete      // Every level of the run won
)

const (
	clearDelaySeconds = 3.0
	flashSeconds      = 0.4
)

// Game implements Tile Quest on top of the engine in the core package.
type Game struct {
	mode       Mode
	cfg        config.TileQuestConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	logger     *log.Logger

	ctx        *core.GameContext
	levelIndex int // Campaign/puzzle index, or boards cleared in blitz
	puzzles    []levels.Level
	levelName  string

	// Screen dimensions
	screenW  int
	screenH  int
	tickRate int
	dt       float64

	tick       uint64
	score      int
	levelScore int
	phase      Phase
	phaseTicks int
	paused     bool
	tooSmall   bool

	cursor     core.Coord
	flash      core.Rect // World box of the last match
	flashTicks int
	message    string

	// Per-instance choices made in a menu; they win over the package setters
	preset     string
	startLevel int
}

// Package-level variables for config
var (
	configPath         string
	difficultyPreset   = config.DifficultyNormal
	selectedStartLevel int
	customLevel        *levels.Level
	gameLogger         = log.New(io.Discard)
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset ("easy", "normal", "hard", "fixed").
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetStartLevel sets the starting level (1-indexed). 0 means start from beginning.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

// SetCustomLevel makes puzzle mode play only the given board. nil restores
// the puzzle pack.
func SetCustomLevel(l *levels.Level) {
	customLevel = l
}

// SetLogger sets the logger handed to every new level.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	gameLogger = l
}

// Configure sets the difficulty preset and start level (1-indexed) for the
// next Reset of this instance only. Empty preset and 0 keep the package
// defaults.
func (g *Game) Configure(preset string, startLevel int) {
	g.preset = preset
	g.startLevel = startLevel
}

// LevelNames lists the levels of this mode for a level picker: the campaign
// table or the puzzle boards. Blitz has none.
func (g *Game) LevelNames() []string {
	switch g.mode {
	case ModeCampaign:
		return LevelNames()
	case ModePuzzle:
		puzzles := LoadPuzzles()
		names := make([]string, len(puzzles))
		for i, p := range puzzles {
			names[i] = p.Name
		}
		return names
	default:
		return nil
	}
}

// New creates a new campaign mode game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewBlitz creates a new blitz mode game.
func NewBlitz() *Game {
	return &Game{mode: ModeBlitz}
}

// NewPuzzle creates a new puzzle mode game.
func NewPuzzle() *Game {
	return &Game{mode: ModePuzzle}
}

func init() {
	registry.Register("tilequest", func() registry.Game {
		return New()
	})
	registry.Register("tilequest_blitz", func() registry.Game {
		return NewBlitz()
	})
	registry.Register("tilequest_puzzle", func() registry.Game {
		return NewPuzzle()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	switch g.mode {
	case ModeBlitz:
		return "tilequest_blitz"
	case ModePuzzle:
		return "tilequest_puzzle"
	default:
		return "tilequest"
	}
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.mode {
	case ModeBlitz:
		return "Tile Quest (Blitz)"
	case ModePuzzle:
		return "Tile Quest (Puzzles)"
	default:
		return "Tile Quest"
	}
}

// Description returns a one-line summary for menus and listings.
func (g *Game) Description() string {
	switch g.mode {
	case ModeBlitz:
		return "Clear random boards against a short timer until one is lost"
	case ModePuzzle:
		return "Hand-made boards, built-in and from ~/.tilequest/levels"
	default:
		return fmt.Sprintf("Campaign of %d levels with growing boards", LevelCount())
	}
}

// Mode returns the game mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Context returns the engine context of the current level.
func (g *Game) Context() *core.GameContext {
	return g.ctx
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.logger = gameLogger
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.dt = cfg.TickSeconds()
	g.tick = 0
	g.score = 0
	g.paused = false
	g.message = ""

	// Load config (fall back to defaults on error)
	qcfg, err := config.LoadTileQuest(configPath)
	if err != nil {
		g.logger.Warn("using default config", "err", err)
		qcfg = config.DefaultTileQuestConfig()
	}
	preset := difficultyPreset
	if g.preset != "" {
		preset = config.ParsePreset(g.preset)
	}
	config.ApplyTileQuestPreset(&qcfg, preset)
	g.cfg = qcfg
	g.difficulty = config.NewDifficultyManager(qcfg.Difficulty)

	g.puzzles = nil
	if g.mode == ModePuzzle {
		if customLevel != nil {
			g.puzzles = []levels.Level{*customLevel}
		} else {
			g.puzzles = LoadPuzzles()
		}
	}

	// Apply selected start level (campaign and puzzles only)
	g.levelIndex = 0
	start := selectedStartLevel
	if g.startLevel > 0 {
		start = g.startLevel
	}
	if g.mode != ModeBlitz && start > 0 && start <= g.levelCount() {
		g.levelIndex = start - 1
	}
	// Both choices apply to the first Reset only
	selectedStartLevel = 0
	g.startLevel = 0

	g.loadLevel()
}

// levelCount returns the number of levels in the run, 0 for endless blitz.
func (g *Game) levelCount() int {
	switch g.mode {
	case ModeCampaign:
		return LevelCount()
	case ModePuzzle:
		return len(g.puzzles)
	default:
		return 0
	}
}

// loadLevel builds the engine context for the current level index.
func (g *Game) loadLevel() {
	g.phase = PhasePlaying
	g.phaseTicks = 0
	g.levelScore = 0
	g.flashTicks = 0
	g.cursor = core.C(0, 0)

	switch g.mode {
	case ModePuzzle:
		if g.levelIndex >= len(g.puzzles) {
			g.ctx = nil
			g.phase = PhaseFailed
			g.message = "No puzzle boards found"
			return
		}
		g.ctx = g.puzzleLevel(g.puzzles[g.levelIndex])
	case ModeBlitz:
		g.ctx = core.NewLevel(g.blitzParams(), g.rng)
		g.levelName = fmt.Sprintf("Board %d", g.levelIndex+1)
	default:
		lvl := GetLevel(g.levelIndex)
		if lvl == nil {
			lvl = GetLevel(LevelCount() - 1)
		}
		g.ctx = core.NewLevel(g.campaignParams(lvl), g.rng)
		g.levelName = lvl.Name
	}

	g.ctx.SetLogger(g.logger)
	g.cursor = core.C(g.ctx.Grid.W/2, g.ctx.Grid.H/2)
	g.logger.Debug("level loaded", "mode", g.mode, "level", g.levelIndex+1,
		"size", fmt.Sprintf("%dx%d", g.ctx.Grid.W, g.ctx.Grid.H), "quests", g.ctx.OriginalQuests())
	g.checkScreenSize()
}

// campaignParams derives level parameters from the table, config and difficulty.
func (g *Game) campaignParams(lvl *Level) core.LevelParams {
	countdown := g.cfg.Rules.Countdown * lvl.TimeFactor
	p := g.baseParams(countdown)
	p.Width = lvl.Width
	p.Height = lvl.Height
	p.Colors = lvl.Colors
	return p
}

// blitzParams uses the configured grid with the blitz timer and palette.
func (g *Game) blitzParams() core.LevelParams {
	p := g.baseParams(g.cfg.Blitz.Countdown)
	if g.cfg.Blitz.Colors > 0 {
		p.Colors = g.cfg.Blitz.Colors
	}
	return p
}

func (g *Game) baseParams(countdown float64) core.LevelParams {
	return core.LevelParams{
		Width:    g.cfg.Grid.Width,
		Height:   g.cfg.Grid.Height,
		TileSize: g.cfg.Grid.TileSize,
		BlockW:   g.cfg.Grid.BlockWidth,
		BlockH:   g.cfg.Grid.BlockHeight,
		Colors:   g.cfg.Grid.Colors,
		Quests:   g.questRules(),
		Rules:    g.rules(countdown),
	}
}

// questRules applies difficulty scaling to the configured allowances.
func (g *Game) questRules() core.QuestRules {
	q := g.cfg.Quests
	return core.QuestRules{
		SwapsAllowed: core.Allowance{
			Count:    g.difficulty.Allowance(q.SwapsAllowed.Count, g.levelIndex),
			Interval: q.SwapsAllowed.Interval,
		},
		ReplacementsAllowed: core.Allowance{
			Count:    g.difficulty.Allowance(q.ReplacementsAllowed.Count, g.levelIndex),
			Interval: q.ReplacementsAllowed.Interval,
		},
		MissMatchesAllowed: core.Allowance{
			Count:    q.MissMatchesAllowed.Count,
			Interval: q.MissMatchesAllowed.Interval,
		},
		MatchInterval: q.MatchInterval,
		TilesPerMatch: q.TilesPerMatch,
	}
}

func (g *Game) rules(countdown float64) core.Rules {
	r := g.cfg.Rules
	return core.Rules{
		LossDivisor:      r.LossDivisor,
		RevertWrongSwaps: r.RevertWrongSwaps,
		AdjacentOnly:     r.AdjacentOnly,
		EnemyLifetime:    r.EnemyLifetime,
		Countdown:        g.difficulty.Countdown(countdown, g.levelIndex),
	}
}

// puzzleLevel wires a hand-made board; quests come from its histogram.
func (g *Game) puzzleLevel(lvl levels.Level) *core.GameContext {
	countdown := g.cfg.Rules.Countdown
	if lvl.Countdown > 0 {
		countdown = lvl.Countdown
	}

	grid := lvl.ToGrid(g.cfg.Grid.TileSize)
	quests, states := core.BuildQuests(lvl.Histogram(), g.questRules())
	ctx := core.NewGameContext(grid, quests, states, g.rules(countdown))
	ctx.SetRand(g.rng)
	g.levelName = lvl.Name
	return ctx
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if g.tooSmall || g.ctx == nil {
		return platformcore.StepResult{State: g.State()}
	}

	// Handle pause
	if in.Has(platformcore.ActionPause) && g.phase == PhasePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	if g.flashTicks > 0 {
		g.flashTicks--
	}

	switch g.phase {
	case PhaseCleared:
		g.phaseTicks++
		if in.Has(platformcore.ActionNext) || in.Has(platformcore.ActionConfirm) ||
			g.phaseTicks >= int(clearDelaySeconds*float64(g.tickRate)) {
			g.advanceLevel()
		}
		return platformcore.StepResult{State: g.State()}
	case PhaseFailed, PhaseComplete:
		// Restart is handled by the platform
		return platformcore.StepResult{State: g.State()}
	}

	g.handleInput(in)
	g.ctx.Advance(g.dt)

	var res platformcore.StepResult
	if g.ctx.IsGameOver() {
		res.Report = g.finishLevel()
	}
	res.State = g.State()
	return res
}

// handleInput moves the cursor and feeds clicks into the engine.
func (g *Game) handleInput(in platformcore.InputFrame) {
	grid := g.ctx.Grid
	switch {
	case in.Has(platformcore.ActionUp):
		g.cursor.Y = platformcore.Clamp(g.cursor.Y-1, 0, grid.H-1)
	case in.Has(platformcore.ActionDown):
		g.cursor.Y = platformcore.Clamp(g.cursor.Y+1, 0, grid.H-1)
	case in.Has(platformcore.ActionLeft):
		g.cursor.X = platformcore.Clamp(g.cursor.X-1, 0, grid.W-1)
	case in.Has(platformcore.ActionRight):
		g.cursor.X = platformcore.Clamp(g.cursor.X+1, 0, grid.W-1)
	}

	if p, ok := in.Pointer(); ok {
		if x, y, hit := g.boardRect().Cell(p.X, p.Y, cellWidth, cellHeight); hit {
			g.cursor = core.C(x, y)
			g.apply(g.ctx.HandleClick(g.cursor))
		}
	}
	if in.Has(platformcore.ActionConfirm) {
		g.apply(g.ctx.HandleClick(g.cursor))
	}
	if in.Has(platformcore.ActionReplace) {
		g.apply(g.ctx.Replace(g.cursor))
	}
}

// apply scores an outcome and updates the status line. Quest losses promote
// the outcome kind, so matches are detected by their box instead.
func (g *Game) apply(out core.FrameOutcome) {
	if out.Kind == core.OutcomeNoOp || out.Kind == core.OutcomeSelected || out.Kind == core.OutcomeDeselected {
		return
	}

	// A swap touching a forfeited quest is not searched for matches.
	if out.Kind == core.OutcomeQuestLost && out.Attempts == 0 && len(out.Cells) == 2 {
		g.message = fmt.Sprintf("The %s quest is already lost", out.LostColors[0])
		return
	}

	switch {
	case out.Kind == core.OutcomeRejected:
		g.message = "That move is not allowed"
	case !out.Box.Empty() && out.MissMatch:
		g.message = fmt.Sprintf("Miss-match: %s has no open quest", out.Color)
	case !out.Box.Empty():
		g.levelScore += pointsPerMatch
		g.message = fmt.Sprintf("Match: %s", out.Color)
	case out.Attempts > 0:
		g.message = "No match"
	default:
		g.message = "Tile replaced"
	}
	if !out.Box.Empty() {
		g.flash = out.Box
		g.flashTicks = int(flashSeconds * float64(g.tickRate))
	}

	for _, c := range out.Completed {
		g.levelScore += pointsPerQuest
		g.message = fmt.Sprintf("Quest complete: %s", c)
	}
	for _, c := range out.LostColors {
		g.message = fmt.Sprintf("Quest lost: %s", c)
	}
}

// finishLevel moves to the cleared or failed phase and builds the report.
func (g *Game) finishLevel() *platformcore.LevelReport {
	won := g.ctx.GameWon()
	if won {
		g.levelScore += int(g.ctx.TimeLeft()) * pointsPerSecond
		g.phase = PhaseCleared
		g.message = "Level cleared"
		if n := g.levelCount(); n > 0 && g.levelIndex >= n-1 {
			g.phase = PhaseComplete
		}
	} else {
		g.phase = PhaseFailed
		if g.ctx.TimeLeft() <= 0 && g.ctx.Rules.Countdown > 0 {
			g.message = "Time is up"
		} else {
			g.message = "Too many quests lost"
		}
	}
	g.phaseTicks = 0
	g.score += g.levelScore

	st := g.ctx.Stats()
	report := &platformcore.LevelReport{
		GameID:          g.ID(),
		Level:           g.levelIndex + 1,
		Won:             won,
		Score:           g.levelScore,
		QuestsTotal:     g.ctx.OriginalQuests(),
		QuestsCompleted: g.ctx.CompletedQuests(),
		QuestsLost:      g.ctx.OriginalQuests() - g.ctx.RemainingQuests(),
		Swaps:           st.Swaps,
		Matches:         st.Matches,
		MissMatches:     st.MissMatches,
		Replacements:    st.Replacements,
		ElapsedSeconds:  g.ctx.Elapsed(),
	}
	g.logger.Info("level finished", "game", report.GameID, "level", report.Level,
		"won", won, "score", report.Score, "elapsed", fmt.Sprintf("%.1fs", report.ElapsedSeconds))
	return report
}

// advanceLevel moves to the next level.
func (g *Game) advanceLevel() {
	g.levelIndex++
	g.message = ""
	g.loadLevel()
}

// Resize adapts to a new terminal size without restarting the run.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for the current board.
func (g *Game) checkScreenSize() {
	if g.ctx == nil {
		g.tooSmall = false
		return
	}
	boardW := g.ctx.Grid.W*cellWidth + 2
	boardH := g.ctx.Grid.H*cellHeight + 2
	minW := max(boardW, questPanelW)
	minH := hudHeight + boardH + statusHeight
	if g.screenW < boardW+questPanelW+1 {
		// Quest panel goes below the board
		minH += g.ctx.OriginalQuests() + 1
	}
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.score,
		Level:    g.levelIndex + 1,
		GameOver: g.phase == PhaseFailed || g.phase == PhaseComplete,
		Won:      g.phase == PhaseComplete,
		Paused:   g.paused || g.tooSmall || g.phase == PhaseCleared,
	}
}

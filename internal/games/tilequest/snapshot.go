package tilequest

import "github.com/vovakirdan/tile-quest/internal/games/tilequest/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StatePaused       GameStateType = "paused"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// QuestSnapshot is the running state of one quest.
type QuestSnapshot struct {
	Color        string
	Matches      int
	Required     int
	WrongSwaps   int
	MissMatches  int
	Replacements int
	Lost         bool
	Complete     bool
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Mode      string
	Level     int // 1-indexed
	Score     int
	TimeLeft  float64
	Board     []string // One row per line, tile letters, '#' enemies, '~' fenced, '.' empty
	Cursor    core.Coord
	Quests    []QuestSnapshot
	Remaining int
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.phase == PhaseComplete:
		state = StateWin
	case g.phase == PhaseFailed:
		state = StateGameOver
	case g.phase == PhaseCleared:
		state = StateLevelCleared
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Tick:   g.tick,
		Mode:   string(g.mode),
		Level:  g.levelIndex + 1,
		Score:  g.score + g.levelScore,
		Cursor: g.cursor,
		State:  state,
	}
	if g.ctx == nil {
		return snap
	}

	snap.TimeLeft = g.ctx.TimeLeft()
	snap.Remaining = g.ctx.RemainingQuests()
	snap.Board = boardRows(g.ctx.Grid)
	for _, q := range g.ctx.Quests {
		_, s := g.ctx.Lookup(q.Color)
		if s == nil {
			continue
		}
		snap.Quests = append(snap.Quests, QuestSnapshot{
			Color:        q.Color.String(),
			Matches:      s.Matches,
			Required:     q.MatchesRequired.Count,
			WrongSwaps:   s.WrongSwaps,
			MissMatches:  s.MissMatches,
			Replacements: s.Replacements,
			Lost:         s.Lost,
			Complete:     s.Complete,
		})
	}
	return snap
}

// boardRows renders the grid as text, enumerating cells row-major.
func boardRows(grid *core.Grid) []string {
	rows := make([]string, grid.H)
	line := make([]rune, grid.W)
	for y := range grid.H {
		for x := range grid.W {
			t := grid.Get(core.C(x, y))
			switch {
			case t == nil:
				line[x] = '.'
			case t.IsEnemy():
				line[x] = '#'
			case t.Blocked():
				line[x] = '~'
			default:
				line[x] = t.Color.Char()
			}
		}
		rows[y] = string(line)
	}
	return rows
}

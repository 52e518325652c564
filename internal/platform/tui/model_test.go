package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tile-quest/internal/core"
	"github.com/vovakirdan/tile-quest/internal/registry"
	"github.com/vovakirdan/tile-quest/internal/storage"
)

// stubGame finishes a level on every Confirm and ends after finishAfter levels.
type stubGame struct {
	resets      int
	resized     bool
	steps       int
	levels      int
	finishAfter int
	lastPointer *core.Pointer
	score       int
	over        bool
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.levels = 0
	g.score = 0
	g.over = false
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	if p, ok := in.Pointer(); ok {
		g.lastPointer = &p
	}
	var res core.StepResult
	if in.Has(core.ActionConfirm) && !g.over {
		g.levels++
		g.score += 100
		res.Report = &core.LevelReport{GameID: g.ID(), Level: g.levels, Won: true, Score: 100}
		g.over = g.levels >= g.finishAfter
	}
	res.State = g.State()
	return res
}

func (g *stubGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "stub") }

func (g *stubGame) State() core.GameState {
	return core.GameState{Score: g.score, Level: g.levels + 1, GameOver: g.over}
}

type resizableStub struct{ stubGame }

func (g *resizableStub) Resize(int, int) { g.resized = true }

func testStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected GameModel", next)
	}
	return gm
}

func TestGameModelRecordsRun(t *testing.T) {
	store := testStore(t)
	game := &stubGame{finishAfter: 2}
	m := NewGameModel(game, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1})
	m.Init()

	for i := 0; i < 2; i++ {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
		m = update(t, m, TickMsg{})
	}
	// Further ticks after game over must not save the score again
	m = update(t, m, TickMsg{})

	results, err := store.RecentLevelResults("stub", 10)
	if err != nil {
		t.Fatalf("RecentLevelResults() failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("saved %d level results, expected 2", len(results))
	}
	if results[0].RunID != results[1].RunID {
		t.Error("levels of one run should share the run ID")
	}
	if results[0].RunID.String() != m.RunID() {
		t.Errorf("RunID = %s, expected %s", results[0].RunID, m.RunID())
	}

	scores, _ := store.AllScores("stub")
	if len(scores) != 1 || scores[0].Score != 200 {
		t.Errorf("scores = %+v, expected a single 200", scores)
	}
}

func TestGameModelRestartStartsNewRun(t *testing.T) {
	game := &stubGame{finishAfter: 1}
	m := NewGameModel(game, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1})
	m.Init()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg{})
	if !m.gameState.GameOver {
		t.Fatal("game should be over")
	}
	firstRun := m.RunID()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = update(t, m, TickMsg{})
	if m.gameState.GameOver {
		t.Error("restart should clear game over")
	}
	if game.resets != 2 {
		t.Errorf("resets = %d, expected 2", game.resets)
	}
	if m.RunID() == firstRun {
		t.Error("restart should start a new run")
	}
}

func TestGameModelMouse(t *testing.T) {
	game := &stubGame{finishAfter: 1}
	m := NewGameModel(game, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1})

	m = update(t, m, tea.MouseMsg{X: 5, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, TickMsg{})

	if game.lastPointer == nil || game.lastPointer.X != 5 || game.lastPointer.Y != 3 {
		t.Errorf("pointer = %+v, expected {5 3}", game.lastPointer)
	}
}

func TestGameModelResize(t *testing.T) {
	plain := &stubGame{finishAfter: 1}
	m := NewGameModel(plain, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1})
	update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if plain.resets != 1 {
		t.Errorf("resets = %d, expected a reset for games without Resize", plain.resets)
	}

	resizable := &resizableStub{stubGame{finishAfter: 1}}
	var _ registry.Resizer = resizable
	m = NewGameModel(resizable, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1})
	update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if !resizable.resized || resizable.resets != 0 {
		t.Errorf("resized = %v resets = %d, expected Resize without reset", resizable.resized, resizable.resets)
	}
}

func TestGameModelBackAndQuit(t *testing.T) {
	game := &stubGame{finishAfter: 1}
	m := NewGameModel(game, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1})

	// Back is ignored while playing
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Error("back should be ignored during play")
	}
	m = update(t, m, TickMsg{})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg{})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back should be accepted after game over")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestGameModelView(t *testing.T) {
	m := NewGameModel(&stubGame{}, nil, core.RuntimeConfig{ScreenW: 10, ScreenH: 2, TickRate: 60, Seed: 1})
	if got := m.View(); !strings.Contains(got, "stub") {
		t.Errorf("View() = %q, expected rendered game", got)
	}
}

func TestRecorderNilStore(t *testing.T) {
	r := NewRecorder(nil)
	r.Level(core.LevelReport{GameID: "stub", Level: 1})
	r.Finish("stub", 100)
	r.Finish("stub", 100)
	if !r.scoreSaved {
		t.Error("Finish() should mark the score as handled")
	}
	r.NewRun()
	if r.scoreSaved {
		t.Error("NewRun() should clear the saved flag")
	}
}

func TestRecorderSkipsZeroScore(t *testing.T) {
	store := testStore(t)
	r := NewRecorder(store)
	r.Finish("stub", 0)

	if high, _ := store.HighScore("stub"); high != 0 {
		t.Errorf("HighScore() = %d, expected no saved score", high)
	}
}

package tui

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tile-quest/internal/core"
	"github.com/vovakirdan/tile-quest/internal/storage"
)

var logger = log.New(io.Discard)

// SetLogger sets the logger used by the terminal front end and SSH sessions.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Recorder persists the outcome of a run: one level result per finished
// level and the final score once per game over. A nil store only logs.
type Recorder struct {
	store      *storage.Store
	runID      uuid.UUID
	scoreSaved bool
}

// NewRecorder creates a recorder with a fresh run ID.
func NewRecorder(store *storage.Store) *Recorder {
	return &Recorder{store: store, runID: uuid.New()}
}

// RunID returns the identifier shared by the levels of the current run.
func (r *Recorder) RunID() uuid.UUID {
	return r.runID
}

// NewRun starts a new run after a restart.
func (r *Recorder) NewRun() {
	r.runID = uuid.New()
	r.scoreSaved = false
}

// Level records a finished level.
func (r *Recorder) Level(rep core.LevelReport) {
	logger.Debug("level report", "run", r.runID, "game", rep.GameID, "level", rep.Level, "won", rep.Won)
	if r.store == nil {
		return
	}
	if _, err := r.store.SaveLevelResult(storage.ResultFromReport(r.runID, rep)); err != nil {
		logger.Warn("could not save level result", "err", err)
	}
}

// Finish records the final score of the run. Only the first call per run
// is saved, and zero scores are skipped.
func (r *Recorder) Finish(gameID string, score int) {
	if r.scoreSaved {
		return
	}
	r.scoreSaved = true
	if score <= 0 {
		return
	}
	logger.Info("run finished", "run", r.runID, "game", gameID, "score", score)
	if r.store == nil {
		return
	}
	if _, err := r.store.SaveScore(gameID, score); err != nil {
		logger.Warn("could not save score", "err", err)
	}
}

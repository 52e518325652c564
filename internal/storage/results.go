package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vovakirdan/tile-quest/internal/core"
)

// LevelResult is one finished level. Levels played in the same program run
// share a RunID.
type LevelResult struct {
	ID              int64
	RunID           uuid.UUID
	GameID          string
	Level           int
	Won             bool
	Score           int
	QuestsTotal     int
	QuestsCompleted int
	QuestsLost      int
	Swaps           int
	Matches         int
	MissMatches     int
	Replacements    int
	ElapsedSeconds  float64
	CreatedAt       time.Time
}

// ResultFromReport builds a LevelResult from a game report.
func ResultFromReport(runID uuid.UUID, r core.LevelReport) LevelResult {
	return LevelResult{
		RunID:           runID,
		GameID:          r.GameID,
		Level:           r.Level,
		Won:             r.Won,
		Score:           r.Score,
		QuestsTotal:     r.QuestsTotal,
		QuestsCompleted: r.QuestsCompleted,
		QuestsLost:      r.QuestsLost,
		Swaps:           r.Swaps,
		Matches:         r.Matches,
		MissMatches:     r.MissMatches,
		Replacements:    r.Replacements,
		ElapsedSeconds:  r.ElapsedSeconds,
	}
}

// SaveLevelResult records a finished level. A zero RunID gets a fresh one.
// Returns the ID of the inserted record.
func (s *Store) SaveLevelResult(r LevelResult) (int64, error) {
	if r.RunID == uuid.Nil {
		r.RunID = uuid.New()
	}

	res, err := s.db.Exec(
		`INSERT INTO level_results
		 (run_id, game_id, level, won, score, quests_total, quests_completed, quests_lost,
		  swaps, matches, miss_matches, replacements, elapsed_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID.String(), r.GameID, r.Level, r.Won, r.Score,
		r.QuestsTotal, r.QuestsCompleted, r.QuestsLost,
		r.Swaps, r.Matches, r.MissMatches, r.Replacements, r.ElapsedSeconds,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save level result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

const levelResultColumns = `id, run_id, game_id, level, won, score, quests_total, quests_completed,
	quests_lost, swaps, matches, miss_matches, replacements, elapsed_secs, created_at`

// RecentLevelResults retrieves the most recent level results, newest first.
// An empty gameID returns results of every game.
func (s *Store) RecentLevelResults(gameID string, limit int) ([]LevelResult, error) {
	if limit <= 0 {
		limit = 20
	}

	var rows *sql.Rows
	var err error
	if gameID == "" {
		rows, err = s.db.Query(
			`SELECT `+levelResultColumns+` FROM level_results ORDER BY id DESC LIMIT ?`,
			limit,
		)
	} else {
		rows, err = s.db.Query(
			`SELECT `+levelResultColumns+` FROM level_results WHERE game_id = ? ORDER BY id DESC LIMIT ?`,
			gameID, limit,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query level results: %w", err)
	}
	return scanLevelResults(rows)
}

// RunResults retrieves every level of one run in play order.
func (s *Store) RunResults(runID uuid.UUID) ([]LevelResult, error) {
	rows, err := s.db.Query(
		`SELECT `+levelResultColumns+` FROM level_results WHERE run_id = ? ORDER BY id`,
		runID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run results: %w", err)
	}
	return scanLevelResults(rows)
}

func scanLevelResults(rows *sql.Rows) ([]LevelResult, error) {
	defer rows.Close()

	var results []LevelResult
	for rows.Next() {
		var r LevelResult
		var runID string
		var createdAt any
		if err := rows.Scan(
			&r.ID, &runID, &r.GameID, &r.Level, &r.Won, &r.Score,
			&r.QuestsTotal, &r.QuestsCompleted, &r.QuestsLost,
			&r.Swaps, &r.Matches, &r.MissMatches, &r.Replacements,
			&r.ElapsedSeconds, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		parsed, err := uuid.Parse(runID)
		if err != nil {
			return nil, fmt.Errorf("storage: invalid run id %q: %w", runID, err)
		}
		r.RunID = parsed
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// LevelStats contains aggregated results of one level of a game.
type LevelStats struct {
	Level      int
	Attempts   int
	Wins       int
	BestScore  int
	AvgElapsed float64
}

// WinRate returns the fraction of attempts that were won.
func (l LevelStats) WinRate() float64 {
	if l.Attempts == 0 {
		return 0
	}
	return float64(l.Wins) / float64(l.Attempts)
}

// GetLevelStats aggregates level results per level for the given game,
// ordered by level.
func (s *Store) GetLevelStats(gameID string) ([]LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level, COUNT(*), COALESCE(SUM(won), 0), COALESCE(MAX(score), 0), COALESCE(AVG(elapsed_secs), 0)
		 FROM level_results
		 WHERE game_id = ?
		 GROUP BY level
		 ORDER BY level`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	defer rows.Close()

	var stats []LevelStats
	for rows.Next() {
		var ls LevelStats
		if err := rows.Scan(&ls.Level, &ls.Attempts, &ls.Wins, &ls.BestScore, &ls.AvgElapsed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		stats = append(stats, ls)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

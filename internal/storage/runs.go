package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run outcomes.
const (
	OutcomeDefeat  = "defeat"
	OutcomeVictory = "victory"
	OutcomeQuit    = "quit"
)

// Run is one finished play-through.
type Run struct {
	ID        int64
	RunID     string
	GameID    string
	Score     int
	Wave      int
	Outcome   string
	Seed      int64
	Duration  time.Duration
	CreatedAt time.Time
}

// NewRunID returns a fresh identifier for a run.
func NewRunID() string {
	return uuid.NewString()
}

// SaveRun records a finished run. An empty RunID is filled in.
func (s *Store) SaveRun(r Run) (Run, error) {
	if r.RunID == "" {
		r.RunID = NewRunID()
	}
	if _, err := uuid.Parse(r.RunID); err != nil {
		return r, fmt.Errorf("storage: invalid run id %q: %w", r.RunID, err)
	}
	res, err := s.db.Exec(
		`INSERT INTO runs (run_id, game_id, score, wave, outcome, seed, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.GameID, r.Score, r.Wave, r.Outcome, r.Seed, int(r.Duration.Seconds()),
	)
	if err != nil {
		return r, fmt.Errorf("storage: cannot save run: %w", err)
	}
	if r.ID, err = res.LastInsertId(); err != nil {
		return r, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return r, nil
}

// RecentRuns returns the latest runs of a game, newest first.
// An empty gameID lists every game.
func (s *Store) RecentRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	query := `SELECT id, run_id, game_id, score, wave, outcome, seed, duration_secs, created_at
	          FROM runs`
	args := []any{}
	if gameID != "" {
		query += " WHERE game_id = ?"
		args = append(args, gameID)
	}
	query += " ORDER BY id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var secs int
		var createdAt any
		if err := rows.Scan(&r.ID, &r.RunID, &r.GameID, &r.Score, &r.Wave, &r.Outcome, &r.Seed, &secs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		r.Duration = time.Duration(secs) * time.Second
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

package storage

import (
	"database/sql"
	"errors"
	"fmt"
)

// BestKey returns the best-score key of a game.
func BestKey(gameID string) string {
	return gameID + ".best"
}

// BestScore returns the stored best score for key, or 0 if none.
func (s *Store) BestScore(key string) (int, error) {
	var score int
	err := s.db.QueryRow("SELECT score FROM best_scores WHERE score_key = ?", key).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read best score %s: %w", key, err)
	}
	return score, nil
}

// RecordBest stores score under key if it beats the stored value.
// A lower score never replaces a higher one. Returns the resulting best.
func (s *Store) RecordBest(key string, score int) (int, error) {
	_, err := s.db.Exec(
		`INSERT INTO best_scores (score_key, score) VALUES (?, ?)
		 ON CONFLICT(score_key) DO UPDATE SET
		   score = MAX(best_scores.score, excluded.score),
		   updated_at = CASE WHEN excluded.score > best_scores.score
		                     THEN CURRENT_TIMESTAMP ELSE best_scores.updated_at END`,
		key, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record best score %s: %w", key, err)
	}
	return s.BestScore(key)
}

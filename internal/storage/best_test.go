package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestBestKey(t *testing.T) {
	if got := BestKey("trench"); got != "trench.best" {
		t.Errorf("BestKey() = %q, expected trench.best", got)
	}
}

func TestBestScoreNeverDecreases(t *testing.T) {
	store := openTestStore(t)
	key := BestKey("asteroids")

	best, err := store.BestScore(key)
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for a missing key, got %d", best)
	}

	steps := []struct {
		score int
		want  int
	}{
		{1200, 1200},
		{800, 1200},
		{0, 1200},
		{1500, 1500},
		{1499, 1500},
	}
	for _, s := range steps {
		got, err := store.RecordBest(key, s.score)
		if err != nil {
			t.Fatalf("RecordBest(%d) failed: %v", s.score, err)
		}
		if got != s.want {
			t.Errorf("RecordBest(%d) = %d, expected %d", s.score, got, s.want)
		}
	}

	// Keys are independent
	other, _ := store.BestScore(BestKey("trench"))
	if other != 0 {
		t.Errorf("trench best should be untouched, got %d", other)
	}
}

func TestBestSurvivesClearScores(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("trench", 900)
	store.RecordBest(BestKey("trench"), 900)

	if err := store.ClearScores("trench"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	best, _ := store.BestScore(BestKey("trench"))
	if best != 900 {
		t.Errorf("best = %d after clearing history, expected 900", best)
	}
}

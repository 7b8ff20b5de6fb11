package storage

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestSaveRunAssignsID(t *testing.T) {
	store := openTestStore(t)

	r, err := store.SaveRun(Run{GameID: "trench", Score: 1400, Wave: 6, Outcome: OutcomeVictory, Seed: 7, Duration: 95 * time.Second})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(r.RunID); err != nil {
		t.Errorf("RunID %q is not a UUID: %v", r.RunID, err)
	}

	runs, err := store.RecentRuns("trench", 5)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}
	got := runs[0]
	if got.RunID != r.RunID || got.Score != 1400 || got.Wave != 6 || got.Outcome != OutcomeVictory {
		t.Errorf("unexpected run: %+v", got)
	}
	if got.Duration != 95*time.Second {
		t.Errorf("Duration = %v, expected 95s", got.Duration)
	}
}

func TestRecentRunsNewestFirst(t *testing.T) {
	store := openTestStore(t)
	for i := 1; i <= 4; i++ {
		game := "asteroids"
		if i%2 == 0 {
			game = "trench"
		}
		if _, err := store.SaveRun(Run{GameID: game, Score: i * 100, Outcome: OutcomeDefeat}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	all, _ := store.RecentRuns("", 10)
	if len(all) != 4 || all[0].Score != 400 || all[3].Score != 100 {
		t.Errorf("unexpected order: %+v", all)
	}

	trench, _ := store.RecentRuns("trench", 1)
	if len(trench) != 1 || trench[0].Score != 400 {
		t.Errorf("unexpected trench runs: %+v", trench)
	}
}

func TestSaveRunRejectsBadID(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun(Run{RunID: "not-a-uuid", GameID: "trench", Outcome: OutcomeQuit}); err == nil {
		t.Error("expected an error for a malformed run id")
	}
}

package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-blasters/internal/registry"
	"github.com/vovakirdan/tui-blasters/internal/storage"
)

func init() {
	registry.Register("scripted", func() registry.Game { return &scriptedGame{} })
}

func openBoardStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func finishRun(t *testing.T, store *storage.Store, score, wave int, outcome string, d time.Duration) {
	t.Helper()
	_, err := store.SaveScore("scripted", score)
	require.NoError(t, err)
	_, err = store.RecordBest(storage.BestKey("scripted"), score)
	require.NoError(t, err)
	_, err = store.SaveRun(storage.Run{GameID: "scripted", Score: score, Wave: wave, Outcome: outcome, Duration: d})
	require.NoError(t, err)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestRunClock(t *testing.T) {
	assert.Equal(t, "0:00", runClock(0))
	assert.Equal(t, "1:05", runClock(65*time.Second))
	assert.Equal(t, "12:00", runClock(12*time.Minute+200*time.Millisecond))
}

func TestBoardListsRunsNewestFirst(t *testing.T) {
	store := openBoardStore(t)
	finishRun(t, store, 120, 2, storage.OutcomeDefeat, 42*time.Second)
	finishRun(t, store, 900, 5, storage.OutcomeVictory, 3*time.Minute)

	d := loadBoard(store, "scripted")
	require.NoError(t, d.err)
	assert.Equal(t, 900, d.best)

	cols, rows := boardTable(BoardRuns, d)
	require.Len(t, cols, 5)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"900", "5", "victory", "3:00"}, []string(rows[0][1:]))
	assert.Equal(t, []string{"120", "2", "defeat", "0:42"}, []string(rows[1][1:]))

	cols, rows = boardTable(BoardTop, d)
	require.Len(t, cols, 3)
	assert.Equal(t, "1", rows[0][0])
	assert.Equal(t, "900", rows[0][1])

	assert.Contains(t, d.summary(), "best 900")
	assert.Contains(t, d.summary(), "2 played")
	assert.Contains(t, d.summary(), "avg 510")
}

func TestBoardWithoutStore(t *testing.T) {
	d := loadBoard(nil, "scripted")
	assert.Equal(t, "no runs yet", d.summary())
	_, rows := boardTable(BoardRuns, d)
	assert.Empty(t, rows)
}

func TestScoreboardTogglesView(t *testing.T) {
	store := openBoardStore(t)
	finishRun(t, store, 300, 3, storage.OutcomeQuit, time.Minute)

	m := NewScoreboardModel(store, "scripted", 100, 30)
	assert.Equal(t, "scripted", m.gameID())
	assert.Contains(t, m.View(), "recent runs")
	require.Len(t, m.table.Rows(), 1)
	assert.Equal(t, storage.OutcomeQuit, m.table.Rows()[0][3])

	next, _ := m.Update(keyRunes("v"))
	m = next.(ScoreboardModel)
	assert.Equal(t, BoardTop, m.view)
	assert.Contains(t, m.View(), "top scores")
	assert.Len(t, m.table.Columns(), 3)

	// Switching back to the wider layout must not trip over stale rows
	next, _ = m.Update(keyRunes("v"))
	m = next.(ScoreboardModel)
	assert.Len(t, m.table.Columns(), 5)
	assert.Len(t, m.table.Rows(), 1)
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, "", 80, 24)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.True(t, next.(ScoreboardModel).Back())
	assert.Empty(t, next.View())

	next, cmd = m.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.False(t, next.(ScoreboardModel).Back())
}

func TestScoreboardShowsEmptyHistory(t *testing.T) {
	m := NewScoreboardModel(openBoardStore(t), "scripted", 80, 24)
	view := m.View()
	assert.Contains(t, view, "Nothing here yet")
	assert.Contains(t, view, "no runs yet")
}

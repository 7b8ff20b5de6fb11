package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-blasters/internal/core"
	"github.com/vovakirdan/tui-blasters/internal/storage"
)

func menuCursorOn(t *testing.T, m MenuModel, gameID string) MenuModel {
	t.Helper()
	for i := 0; i < len(m.items); i++ {
		if m.items[m.cursor].GameID == gameID {
			return m
		}
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(MenuModel)
	}
	t.Fatalf("game %q not on the menu", gameID)
	return m
}

func TestMenuShowsRecords(t *testing.T) {
	store := openBoardStore(t)
	finishRun(t, store, 640, 4, storage.OutcomeDefeat, time.Minute)

	m := NewMenuModel(store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	m = menuCursorOn(t, m, "scripted")
	it := m.items[m.cursor]
	assert.Equal(t, 640, it.Best)
	assert.Equal(t, 1, it.Played)
	assert.Contains(t, m.View(), "best 640")
}

func TestMenuPlayAndScores(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	m = menuCursorOn(t, m, "scripted")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	r := next.(MenuModel).result()
	assert.Equal(t, "scripted", r.GameID)
	assert.False(t, r.Quit)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	r = next.(MenuModel).result()
	assert.True(t, r.WantsScoreboard)
	assert.Equal(t, "scripted", r.GameID)

	next, _ = m.Update(keyRunes("q"))
	assert.True(t, next.(MenuModel).result().Quit)
}

func TestMenuTracksResize(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	cfg := next.(MenuModel).result().Config
	assert.Equal(t, 120, cfg.ScreenW)
	assert.Equal(t, 40, cfg.ScreenH)
}

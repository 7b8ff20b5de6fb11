package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-blasters/internal/core"
	"github.com/vovakirdan/tui-blasters/internal/storage"
)

// scriptedGame replays a fixed sequence of step results.
type scriptedGame struct {
	steps   []core.StepResult
	i       int
	resumed int
	resized [2]int
	lastDT  float64
}

func (g *scriptedGame) ID() string { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig) {}
func (g *scriptedGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "SCRIPTED") }
func (g *scriptedGame) Resize(w, h int) { g.resized = [2]int{w, h} }
func (g *scriptedGame) SuspendSpawning() {}
func (g *scriptedGame) ResumeSpawning() { g.resumed++ }

func (g *scriptedGame) State() core.GameState {
	if g.i == 0 {
		return core.GameState{Phase: core.PhaseMenu}
	}
	return g.steps[g.i-1].State
}

func (g *scriptedGame) Step(dt float64, _ core.InputFrame) core.StepResult {
	g.lastDT = dt
	if g.i < len(g.steps) {
		g.i++
	}
	if g.i == 0 {
		return core.StepResult{State: g.State()}
	}
	return g.steps[g.i-1]
}

func newTestModel(t *testing.T, g *scriptedGame, store *storage.Store) Model {
	t.Helper()
	m := NewModel(g, Deps{Store: store}, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 9})
	m.Init()
	return m
}

func tick(t *testing.T, m Model, at time.Time) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(TickMsg(at))
	return next.(Model), cmd
}

func playing(score int) core.StepResult {
	return core.StepResult{State: core.GameState{Phase: core.PhasePlaying, Score: score, Wave: 1, Lives: 3}}
}

func TestBreakRequestResumesSpawningWhenDone(t *testing.T) {
	g := &scriptedGame{steps: []core.StepResult{
		{State: playing(0).State, Events: []core.Event{{Kind: core.EventBreakRequested}}},
	}}
	m := newTestModel(t, g, nil)

	m, cmd := tick(t, m, time.Unix(10, 0))
	require.NotNil(t, cmd)

	// Run the batch and deliver the break result back to the model
	var done bool
	for _, c := range cmd().(tea.BatchMsg) {
		if c == nil {
			continue
		}
		if msg, ok := c().(breakDoneMsg); ok {
			m.Update(msg)
			done = true
		}
	}
	assert.True(t, done)
	assert.Equal(t, 1, g.resumed)
}

func TestFinishedRunIsRecordedOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	over := core.StepResult{State: core.GameState{Phase: core.PhaseOver, Score: 420, Wave: 3, GameOver: true}}
	g := &scriptedGame{steps: []core.StepResult{playing(100), over, over, over}}
	m := newTestModel(t, g, store)

	t0 := time.Unix(10, 0)
	for i := 0; i < 4; i++ {
		m, _ = tick(t, m, t0.Add(time.Duration(i)*16*time.Millisecond))
	}

	best, err := store.BestScore(storage.BestKey("scripted"))
	require.NoError(t, err)
	assert.Equal(t, 420, best)

	runs, err := store.RecentRuns("scripted", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, storage.OutcomeDefeat, runs[0].Outcome)
	assert.Equal(t, 3, runs[0].Wave)
	assert.Equal(t, int64(9), runs[0].Seed)
}

func TestBestLoadedAtBoot(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()
	_, err = store.RecordBest(storage.BestKey("scripted"), 777)
	require.NoError(t, err)

	m := newTestModel(t, &scriptedGame{}, store)
	assert.Equal(t, 777, m.config.Best)

	// No store means no best
	m = newTestModel(t, &scriptedGame{}, nil)
	assert.Zero(t, m.config.Best)
}

func TestTickDTIsClamped(t *testing.T) {
	g := &scriptedGame{steps: []core.StepResult{playing(0), playing(0)}}
	m := newTestModel(t, g, nil)

	t0 := time.Unix(10, 0)
	m, _ = tick(t, m, t0)
	m, _ = tick(t, m, t0.Add(2*time.Second))
	assert.InDelta(t, core.MaxStep, g.lastDT, 1e-12)
}

func TestResizeKeepsFooterRow(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(t, g, nil)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	assert.Equal(t, [2]int{100, 29}, g.resized)

	lines := strings.Split(m.View(), "\n")
	assert.Len(t, lines, 30)
	assert.Contains(t, lines[0], "SCRIPTED")
}

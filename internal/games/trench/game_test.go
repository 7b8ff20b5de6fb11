package trench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-blasters/internal/config"
	"github.com/vovakirdan/tui-blasters/internal/core"
	"github.com/vovakirdan/tui-blasters/internal/games/arena"
	"github.com/vovakirdan/tui-blasters/internal/registry"
)

var (
	_ registry.Game      = (*Game)(nil)
	_ registry.SpawnGate = (*Game)(nil)
)

func newGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.ResetWithConfig(core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: seed}, config.DefaultTrenchConfig())
	return g
}

func start() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionStart)
	return in
}

func TestRegistered(t *testing.T) {
	require.True(t, registry.Exists(ID))
	g, err := registry.Create(ID)
	require.NoError(t, err)
	assert.Equal(t, "Trench Run", g.Title())
}

func TestGameDeterminism(t *testing.T) {
	play := func() core.GameState {
		g := newGame(t, 777)
		g.Step(1.0/60, start())
		var st core.GameState
		for i := 0; i < 900; i++ {
			in := core.NewInputFrame()
			in.Intent = core.Intent{Left: i%40 < 20, Right: i%40 >= 20, FirePulse: i%8 == 0}
			st = g.Step(1.0/60, in).State
		}
		return st
	}
	assert.Equal(t, play(), play())
}

func TestRenderDrawsWallsOutsideCorridor(t *testing.T) {
	g := newGame(t, 3)
	g.Step(1.0/60, start())
	dst := core.NewScreen(80, 25)
	g.Render(dst)

	assert.Contains(t, dst.Row(0), "SECTION 1")

	v := g.View
	sy := arena.HUDRows + v.Rows/2
	left, right := g.Session.Walls().Bounds(g.Session.DistanceAtRow(v.RowCenter(sy)))
	require.Greater(t, left, v.CellW, "corridor leaves room for a wall")

	wall := dst.Get(0, sy)
	assert.Contains(t, []rune{'▓', '▒'}, wall)

	mid := int((left + right) / 2 / v.CellW)
	assert.NotContains(t, []rune{'▓', '▒'}, dst.Get(mid, sy))
}

func TestSpawnGateHoldsPatterns(t *testing.T) {
	g := newGame(t, 5)
	g.Step(1.0/60, start())
	g.SuspendSpawning()
	for i := 0; i < 300; i++ {
		g.Step(1.0/60, core.NewInputFrame())
	}
	assert.Empty(t, g.Session.Obstacles())
	g.ResumeSpawning()
	assert.False(t, g.Session.SpawningSuspended())
}

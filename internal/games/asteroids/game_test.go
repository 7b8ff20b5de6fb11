package asteroids

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-blasters/internal/config"
	"github.com/vovakirdan/tui-blasters/internal/core"
	"github.com/vovakirdan/tui-blasters/internal/registry"
)

var (
	_ registry.Game      = (*Game)(nil)
	_ registry.SpawnGate = (*Game)(nil)
)

func newGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.ResetWithConfig(core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: seed}, config.DefaultAsteroidsConfig())
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
	assert.Equal(t, "Asteroids", g.Title())
}

func TestResetStartsInMenuWithRocks(t *testing.T) {
	g := newGame(t, 1)
	assert.Equal(t, core.PhaseMenu, g.State().Phase)
	assert.Len(t, g.Session.Obstacles(), 4)
	assert.Equal(t, 1, g.State().Wave)
}

func TestGameDeterminism(t *testing.T) {
	play := func() core.GameState {
		g := newGame(t, 12345)
		g.Step(1.0/60, start())
		var st core.GameState
		for i := 0; i < 600; i++ {
			in := core.NewInputFrame()
			in.Intent = core.Intent{Right: i%3 == 0, Thrust: i%5 == 0, FirePulse: i%10 == 0}
			st = g.Step(1.0/60, in).State
		}
		return st
	}
	assert.Equal(t, play(), play())
}

func TestRenderDrawsFieldAndHUD(t *testing.T) {
	g := newGame(t, 4)
	g.Step(1.0/60, start())
	dst := core.NewScreen(80, 25)
	g.Render(dst)

	assert.Contains(t, dst.Row(0), "SCORE")
	assert.Contains(t, dst.Row(0), "LEVEL 1")

	rock := false
	for y := 1; y < 25; y++ {
		if strings.ContainsAny(dst.Row(y), "#%") {
			rock = true
		}
	}
	assert.True(t, rock, "rock outlines drawn")
}

func TestResizeKeepsRun(t *testing.T) {
	g := newGame(t, 4)
	g.Step(1.0/60, start())
	g.Resize(40, 13)
	assert.Equal(t, core.PhasePlaying, g.State().Phase)
	assert.Equal(t, 40, g.View.Cols)
	assert.Equal(t, 12, g.View.Rows)
}

package trench

import (
	"github.com/vovakirdan/tui-blasters/internal/core"
	"github.com/vovakirdan/tui-blasters/internal/games/arena"
	"github.com/vovakirdan/tui-blasters/internal/sim"
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.drawWalls(dst)
	for _, o := range g.Session.Obstacles() {
		drawObstacle(dst, g.View, o)
	}
	g.DrawCommon(dst, "TRENCH RUN", waveLabel)
}

// drawWalls fills each row outside the corridor. The texture is sampled at
// the row's distance so it scrolls with the trench.
func (g *Game) drawWalls(dst *core.Screen) {
	v := g.View
	s := g.Session
	walls := s.Walls()
	for sy := arena.HUDRows; sy < v.Rows+arena.HUDRows; sy++ {
		d := s.DistanceAtRow(v.RowCenter(sy))
		left, right := walls.Bounds(d)
		for sx := 0; sx < v.Cols; sx++ {
			x := v.ColCenter(sx)
			if x >= left && x <= right {
				continue
			}
			r, c := '▓', core.ColorGray
			if g.noise.Noise2D(float64(sx)*0.3, d*0.02) > 0.15 {
				r, c = '▒', core.ColorWhite
			}
			dst.SetColored(sx, sy, r, c)
		}
	}
}

type look struct {
	glyph rune
	color core.Color
}

var looks = map[sim.Kind]look{
	sim.KindCrate:  {'▒', core.ColorOrange},
	sim.KindPillar: {'█', core.ColorGray},
	sim.KindTurret: {'■', core.ColorBrightRed},
	sim.KindSupply: {'+', core.ColorBrightGreen},
	sim.KindPort:   {'◎', core.ColorBrightYellow},
}

func drawObstacle(dst *core.Screen, v arena.View, o sim.Obstacle) {
	l, ok := looks[o.Kind]
	if !ok {
		l = look{'#', core.ColorWhite}
	}
	arena.FillBox(dst, v, o.Box(), l.glyph, l.color)
	// Damaged obstacles show their remaining hits.
	if o.HP > 1 && o.HP < 10 && o.Kind != sim.KindPort {
		arena.Put(dst, v, o.X, o.Y, rune('0'+o.HP), core.ColorBrightWhite)
	}
}

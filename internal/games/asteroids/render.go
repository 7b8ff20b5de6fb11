package asteroids

import (
	"math"

	"github.com/vovakirdan/tui-blasters/internal/core"
	"github.com/vovakirdan/tui-blasters/internal/games/arena"
	"github.com/vovakirdan/tui-blasters/internal/sim"
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.drawStars(dst)
	for _, o := range g.Session.Obstacles() {
		g.drawRock(dst, o)
	}
	g.DrawCommon(dst, "ASTEROIDS", waveLabel)
}

// drawStars scatters a fixed starfield from the noise field.
func (g *Game) drawStars(dst *core.Screen) {
	v := g.View
	for y := arena.HUDRows; y < v.Rows+arena.HUDRows; y++ {
		for x := 0; x < v.Cols; x++ {
			n := g.noise.Noise2D(float64(x)*0.37, float64(y)*0.71)
			if n > 0.32 {
				dst.SetColored(x, y, '·', core.ColorGray)
			}
		}
	}
}

// drawRock traces the jagged outline of a rock, rotated by its spin.
func (g *Game) drawRock(dst *core.Screen, o sim.Obstacle) {
	c := rockColor(o.Tier)
	if len(o.Outline) < 3 {
		arena.Put(dst, g.View, o.X, o.Y, 'O', c)
		return
	}
	sin, cos := math.Sincos(o.Angle)
	pt := func(i int) (float64, float64) {
		p := o.Outline[i%len(o.Outline)]
		return o.X + p.X*cos - p.Y*sin, o.Y + p.X*sin + p.Y*cos
	}
	for i := range o.Outline {
		x0, y0 := pt(i)
		x1, y1 := pt(i + 1)
		r := '#'
		// Rough edges get a lighter glyph.
		if g.noise.Noise2D(x0*0.05, y0*0.05) > 0.1 {
			r = '%'
		}
		arena.Line(dst, g.View, x0, y0, x1, y1, r, c)
	}
}

func rockColor(tier int) core.Color {
	switch tier {
	case 1:
		return core.ColorYellow
	case 2:
		return core.ColorWhite
	default:
		return core.ColorGray
	}
}

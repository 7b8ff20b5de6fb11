package sim

import (
	"math"

	"github.com/vovakirdan/tui-blasters/internal/config"
)

// Walls computes the trench boundaries as a function of distance traveled.
type Walls struct {
	cfg   config.CorridorConfig
	width float64
}

// NewWalls creates the wall profile for a world of the given width.
func NewWalls(cfg config.CorridorConfig, width float64) Walls {
	return Walls{cfg: cfg, width: width}
}

// Center returns the corridor center x at distance d.
func (w Walls) Center(d float64) float64 {
	return w.width/2 + w.cfg.OffsetSwing*w.width*math.Sin(d*w.cfg.OffsetFreq)
}

// HalfWidth returns half the corridor width at distance d.
func (w Walls) HalfWidth(d float64) float64 {
	frac := w.cfg.HalfWidth + w.cfg.WidthSwing*math.Sin(d*w.cfg.WidthFreq+1.3)
	return math.Max(frac, 0.05) * w.width
}

// Bounds returns the left and right wall x at distance d, kept inside the world.
func (w Walls) Bounds(d float64) (left, right float64) {
	c, h := w.Center(d), w.HalfWidth(d)
	return math.Max(0, c-h), math.Min(w.width, c+h)
}

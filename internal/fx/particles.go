// Package fx holds presentation-only effects driven by simulation events:
// particle bursts and toast messages. Nothing here feeds back into the
// simulation.
package fx

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-blasters/internal/core"
)

// Burst sizes per event.
const (
	ThrustParticles    = 1
	ExplosionParticles = 18
	DeathParticles     = 28

	maxParticles = 512
)

// Particle is a short-lived spark in world units.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64
	MaxLife float64
	Hue     float64
}

// Fade returns the remaining life fraction in [0, 1].
func (p Particle) Fade() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, p.Life/p.MaxLife))
}

// Particles is a bounded particle pool.
type Particles struct {
	rng   *rand.Rand
	items []Particle
}

// NewParticles creates an empty pool. The seed only affects visuals.
func NewParticles(seed int64) *Particles {
	return &Particles{rng: rand.New(rand.NewSource(seed))} //#nosec G404 -- cosmetic RNG
}

// Burst emits n particles from (x, y) in random directions.
func (p *Particles) Burst(x, y float64, n int, speed, life, hue float64) {
	for i := 0; i < n; i++ {
		if len(p.items) >= maxParticles {
			// Oldest sparks go first.
			p.items = p.items[1:]
		}
		a := p.rng.Float64() * core.Tau
		v := speed * (0.3 + 0.7*p.rng.Float64())
		l := life * (0.6 + 0.4*p.rng.Float64())
		p.items = append(p.items, Particle{
			X: x, Y: y,
			VX: math.Cos(a) * v, VY: math.Sin(a) * v,
			Life: l, MaxLife: l,
			Hue: hue + p.rng.Float64()*40 - 20,
		})
	}
}

// Observe turns a simulation event into a burst.
func (p *Particles) Observe(ev core.Event) {
	switch ev.Kind {
	case core.EventThrust:
		p.Burst(ev.X, ev.Y, ThrustParticles, 40, 0.35, 30)
	case core.EventExplosion:
		p.Burst(ev.X, ev.Y, ExplosionParticles, 160, 0.8, 40)
	case core.EventShipDestroyed:
		p.Burst(ev.X, ev.Y, DeathParticles, 220, 1.2, 200)
	case core.EventLifeGained:
		p.Burst(ev.X, ev.Y, ExplosionParticles/2, 90, 0.7, 120)
	}
}

// Update advances and expires particles.
func (p *Particles) Update(dt float64) {
	drag := math.Pow(0.96, dt*60)
	live := p.items[:0]
	for _, it := range p.items {
		it.Life -= dt
		if it.Life <= 0 {
			continue
		}
		it.X += it.VX * dt
		it.Y += it.VY * dt
		it.VX *= drag
		it.VY *= drag
		live = append(live, it)
	}
	p.items = live
}

// Items returns the live particles. The slice must not be modified.
func (p *Particles) Items() []Particle { return p.items }

// Len returns the number of live particles.
func (p *Particles) Len() int { return len(p.items) }

// Clear drops every particle.
func (p *Particles) Clear() { p.items = p.items[:0] }

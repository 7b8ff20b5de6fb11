package arena

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-blasters/internal/core"
	"github.com/vovakirdan/tui-blasters/internal/fx"
	"github.com/vovakirdan/tui-blasters/internal/sim"
)

// Runner drives one session and its effects. Games embed it and add
// their own ID, title and rendering.
type Runner struct {
	Session   *sim.Session
	Particles *fx.Particles
	Toasts    fx.Toasts
	View      View
	Clock     float64 // seconds of presentation time, for blinking
}

// NewRunner builds a runner for the given tuning and screen.
func NewRunner(t sim.Tuning, v View, rt core.RuntimeConfig, waveLabel string) *Runner {
	w, h := v.WorldSize()
	s := sim.NewSession(t, w, h, rt.Seed)
	s.SetBest(rt.Best)
	return &Runner{
		Session:   s,
		Particles: fx.NewParticles(rt.Seed ^ 0x5eed),
		Toasts:    fx.Toasts{WaveLabel: waveLabel},
		View:      v,
	}
}

// Step applies the frame's actions, advances the session and feeds the
// resulting events to the effects.
func (r *Runner) Step(dt float64, in core.InputFrame) core.StepResult {
	s := r.Session
	intent := in.Intent

	switch {
	case in.Has(core.ActionPause):
		if p := s.Phase(); p == core.PhasePlaying || p == core.PhasePaused {
			if err := s.TogglePause(); err != nil {
				log.Debug("pause ignored", "phase", p, "err", err)
			}
		}
	case in.Has(core.ActionRestart):
		if s.Restart() == nil {
			r.Particles.Clear()
			r.Toasts.Clear()
		}
	case in.Has(core.ActionStart) || in.Has(core.ActionConfirm):
		if s.Phase() == core.PhaseMenu || s.Phase() == core.PhaseOver {
			if s.Start() == nil {
				// The tap that starts play is not a shot.
				intent.FirePulse = false
			}
		}
	}
	events := s.Update(dt, intent)
	for _, ev := range events {
		r.Particles.Observe(ev)
		r.Toasts.Observe(ev)
	}

	if s.Phase() != core.PhasePaused {
		r.Clock += dt
		r.Particles.Update(dt)
		r.Toasts.Update(dt)
	}

	return core.StepResult{State: s.State(), Events: events}
}

// State returns the session state.
func (r *Runner) State() core.GameState {
	return r.Session.State()
}

// Resize rescales the playfield to a new screen size.
func (r *Runner) Resize(v View) {
	r.View = v
	w, h := v.WorldSize()
	r.Session.Resize(w, h)
}

// ShipCell returns the screen cell under the ship.
func (r *Runner) ShipCell() (x, y int) {
	sh := r.Session.Ship()
	return r.View.Cell(sh.X, sh.Y)
}

// SuspendSpawning closes the session's spawn gate.
func (r *Runner) SuspendSpawning() { r.Session.SuspendSpawning() }

// ResumeSpawning reopens the session's spawn gate.
func (r *Runner) ResumeSpawning() { r.Session.ResumeSpawning() }

// DrawCommon draws the layers every game shares on top of its field:
// bullets, particles, the ship, HUD, toast and phase overlay.
func (r *Runner) DrawCommon(dst *core.Screen, title, waveLabel string) {
	s := r.Session
	DrawBullets(dst, r.View, s.Bullets())
	DrawEnemyBullets(dst, r.View, s.EnemyBullets())
	DrawParticles(dst, r.View, r.Particles.Items())
	if s.Phase() != core.PhaseOver {
		DrawShip(dst, r.View, s.Ship(), r.Clock)
	}
	st := s.State()
	DrawHUD(dst, waveLabel, st)
	if t, ok := r.Toasts.Current(); ok && st.Phase == core.PhasePlaying {
		DrawToast(dst, t)
	}
	DrawOverlay(dst, title, waveLabel, st, s.SpawningSuspended())
}

// Package sim is the deterministic simulation shared by the blasters games:
// ship physics, spawners, collision resolution and the phase machine.
// It has no presentation dependencies; everything it does is reported
// through core events and read back through Snapshot.
package sim

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-blasters/internal/config"
	"github.com/vovakirdan/tui-blasters/internal/core"
)

// Outcome records how a finished run ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeDefeat
	OutcomeVictory
)

// Session owns every store of one game: ship, bullets, obstacles and
// counters. It is driven by Update on each frame callback.
type Session struct {
	tune Tuning
	rng  *rand.Rand
	diff *config.DifficultyManager

	width, height float64
	walls         Walls

	phase   core.Phase
	outcome Outcome

	ship         Ship
	bullets      []Bullet
	obstacles    []Obstacle
	enemyBullets []EnemyBullet

	score int
	best  int
	lives int
	wave  int // level (free-roam) or section (corridor), 1-based
	ticks uint64
	clock float64

	// corridor progress
	distance         float64
	forward          float64
	spawnAcc         float64
	sectionAcc       float64
	supplyPending    bool
	objectiveSpawned bool

	// spawn gate
	suspended    bool
	pendingLevel bool

	events core.Events
}

// NewSession creates a session in the menu phase with a fresh run prepared.
func NewSession(t Tuning, width, height float64, seed int64) *Session {
	s := &Session{
		tune:   t,
		rng:    rand.New(rand.NewSource(seed)), //#nosec G404 -- gameplay RNG
		diff:   config.NewDifficultyManager(t.Difficulty),
		width:  width,
		height: height,
		phase:  core.PhaseMenu,
	}
	s.walls = NewWalls(t.Corridor, width)
	s.newRun()
	s.events = s.events[:0]
	return s
}

// newRun resets the counters and stores to the start of a run.
func (s *Session) newRun() {
	s.outcome = OutcomeNone
	s.score = 0
	s.lives = s.tune.Gameplay.Lives
	if s.lives <= 0 {
		s.lives = 1
	}
	s.wave = 1
	s.ticks = 0
	s.bullets = s.bullets[:0]
	s.obstacles = s.obstacles[:0]
	s.enemyBullets = s.enemyBullets[:0]
	s.suspended = false
	s.pendingLevel = false

	s.distance = 0
	s.spawnAcc = 0
	s.sectionAcc = 0
	s.supplyPending = true
	s.objectiveSpawned = false
	s.forward = s.forwardSpeed()

	s.resetShip()
	if s.tune.Variant == FreeRoam {
		s.spawnLevel()
	}
}

// SetBest seeds the best score loaded from storage.
func (s *Session) SetBest(best int) {
	if best > s.best {
		s.best = best
	}
}

// Start handles the start input. In the menu it begins play; after the run
// ended it behaves like Restart.
func (s *Session) Start() error {
	if s.phase == core.PhaseOver {
		return s.Restart()
	}
	to, err := Transition(s.phase, TriggerStart)
	if err != nil {
		return err
	}
	s.phase = to
	s.events.Emit(core.EventGameplayStarted, 0, 0, 0)
	return nil
}

// TogglePause flips between playing and paused.
func (s *Session) TogglePause() error {
	trig := TriggerPause
	if s.phase == core.PhasePaused {
		trig = TriggerResume
	}
	to, err := Transition(s.phase, trig)
	if err != nil {
		return err
	}
	s.phase = to
	if to == core.PhasePaused {
		s.events.Emit(core.EventGameplayStopped, 0, 0, 0)
	} else {
		s.events.Emit(core.EventGameplayStarted, 0, 0, 0)
	}
	return nil
}

// Restart begins a fresh run after the previous one ended.
func (s *Session) Restart() error {
	to, err := Transition(s.phase, TriggerRestart)
	if err != nil {
		return err
	}
	s.newRun()
	s.phase = to
	s.events.Emit(core.EventGameplayStarted, 0, 0, 0)
	return nil
}

// SuspendSpawning closes the spawn gate. New waves, patterns and sections
// are withheld until ResumeSpawning.
func (s *Session) SuspendSpawning() {
	s.suspended = true
}

// ResumeSpawning reopens the spawn gate and delivers a deferred level.
func (s *Session) ResumeSpawning() {
	if !s.suspended {
		return
	}
	s.suspended = false
	if s.pendingLevel {
		s.pendingLevel = false
		s.spawnLevel()
	}
}

// SpawningSuspended reports whether the spawn gate is closed.
func (s *Session) SpawningSuspended() bool {
	return s.suspended
}

// Update advances the simulation by dt seconds with the given intent and
// returns the events emitted since the previous call. Nothing moves outside
// the playing phase.
func (s *Session) Update(dt float64, in core.Intent) []core.Event {
	if Active(s.phase) && dt > 0 {
		s.ticks++
		s.clock += dt

		if s.tune.Variant == Corridor {
			s.stepCorridorSpawner(dt)
		}
		s.stepShip(dt, in)
		s.stepBullets(dt)
		s.stepObstacles(dt)
		s.stepEnemyBullets(dt)

		s.resolveBulletHits()
		if Active(s.phase) {
			s.resolveShipHits()
		}
		if Active(s.phase) && s.tune.Variant == FreeRoam && !s.pendingLevel && len(s.obstacles) == 0 {
			s.advanceLevel()
		}
	}
	return s.DrainEvents()
}

// DrainEvents returns and clears the pending events.
func (s *Session) DrainEvents() []core.Event {
	if len(s.events) == 0 {
		return nil
	}
	out := make([]core.Event, len(s.events))
	copy(out, s.events)
	s.events = s.events[:0]
	return out
}

// Resize changes the world size, keeping entities inside the new bounds.
func (s *Session) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	s.width, s.height = width, height
	s.walls = NewWalls(s.tune.Corridor, width)
	if s.tune.Variant == FreeRoam {
		s.ship.X, s.ship.Y = core.Wrap(s.ship.X, width), core.Wrap(s.ship.Y, height)
		for i := range s.obstacles {
			s.obstacles[i].X = core.Wrap(s.obstacles[i].X, width)
			s.obstacles[i].Y = core.Wrap(s.obstacles[i].Y, height)
		}
		return
	}
	s.confineShip()
}

// State returns the coarse state for the platform.
func (s *Session) State() core.GameState {
	best := s.best
	if s.score > best {
		best = s.score
	}
	return core.GameState{
		Phase:    s.phase,
		Score:    s.score,
		Best:     best,
		Lives:    s.lives,
		Wave:     s.wave,
		GameOver: s.phase == core.PhaseOver,
		Victory:  s.outcome == OutcomeVictory,
		Paused:   s.phase == core.PhasePaused,
	}
}

// Phase returns the current phase.
func (s *Session) Phase() core.Phase { return s.phase }

// Outcome returns how the last run ended.
func (s *Session) Outcome() Outcome { return s.outcome }

// Size returns the world dimensions.
func (s *Session) Size() (width, height float64) { return s.width, s.height }

// Walls returns the corridor wall profile.
func (s *Session) Walls() Walls { return s.walls }

// Distance returns the corridor distance traveled.
func (s *Session) Distance() float64 { return s.distance }

// DistanceAtRow maps a world row to corridor distance. Rows above the ship's
// reference row lie further ahead.
func (s *Session) DistanceAtRow(y float64) float64 {
	return s.distance + (s.shipRow() - y)
}

func (s *Session) shipRow() float64 {
	row := s.tune.Ship.SpawnRow
	if row <= 0 || row > 1 {
		row = 0.5
	}
	return row * s.height
}

// Ship returns a copy of the ship.
func (s *Session) Ship() Ship { return s.ship }

// Bullets returns the live player bullets. The slice must not be modified.
func (s *Session) Bullets() []Bullet { return s.bullets }

// Obstacles returns the live obstacles. The slice must not be modified.
func (s *Session) Obstacles() []Obstacle { return s.obstacles }

// EnemyBullets returns the live turret bullets. The slice must not be modified.
func (s *Session) EnemyBullets() []EnemyBullet { return s.enemyBullets }

// resetShip places the ship at its spawn point with spawn protection.
func (s *Session) resetShip() {
	r := s.tune.Ship.Radius
	if r <= 0 {
		r = 12
	}
	s.ship = Ship{
		X:          s.width / 2,
		Y:          s.height / 2,
		Angle:      -math.Pi / 2,
		Radius:     r,
		Invincible: s.tune.Ship.Invincibility,
	}
	if s.tune.Variant == Corridor {
		s.ship.Y = s.shipRow()
		s.ship.X = s.walls.Center(s.distance)
	}
}

// loseLife handles a ship collision.
func (s *Session) loseLife() {
	s.events.Emit(core.EventShipDestroyed, s.ship.X, s.ship.Y, 0)
	s.lives--
	if s.lives <= 0 {
		s.lives = 0
		s.endRun(OutcomeDefeat)
		return
	}
	s.resetShip()
}

// endRun moves to the over phase and updates the best score.
func (s *Session) endRun(o Outcome) {
	trig := TriggerDefeat
	if o == OutcomeVictory {
		trig = TriggerVictory
	}
	to, err := Transition(s.phase, trig)
	if err != nil {
		return
	}
	s.phase = to
	s.outcome = o
	if s.score > s.best {
		s.best = s.score
	}
	if o == OutcomeVictory {
		s.events.Emit(core.EventVictory, s.ship.X, s.ship.Y, s.score)
	} else {
		s.events.Emit(core.EventGameOver, s.ship.X, s.ship.Y, s.score)
	}
	s.events.Emit(core.EventGameplayStopped, 0, 0, 0)
}

// advanceLevel moves the free-roam game to the next level. The field is
// refilled at once unless an intermission is due, in which case the refill
// waits for ResumeSpawning.
func (s *Session) advanceLevel() {
	to, err := Transition(s.phase, TriggerLevelClear)
	if err != nil {
		return
	}
	s.phase = to
	s.wave++
	s.events.Emit(core.EventWaveCleared, 0, 0, s.wave)
	s.events.Emit(core.EventGameplayStopped, 0, 0, 0)

	if s.tune.breakDue(s.wave) {
		s.suspended = true
		s.pendingLevel = true
		s.bullets = s.bullets[:0]
		s.resetShip()
		s.events.Emit(core.EventBreakRequested, 0, 0, s.wave)
		return
	}
	if s.suspended {
		s.pendingLevel = true
		return
	}
	s.spawnLevel()
}

func (s *Session) addScore(points int, x, y float64) {
	if points <= 0 {
		return
	}
	s.score += points
	s.events.Emit(core.EventScore, x, y, points)
}

func (s *Session) randRange(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

package sim

import (
	"math"

	"github.com/vovakirdan/tui-blasters/internal/core"
)

// stepShip applies rotation, thrust, drag and the speed cap, integrates the
// position, runs the timers and handles the fire edge.
func (s *Session) stepShip(dt float64, in core.Intent) {
	cfg := s.tune.Ship
	sh := &s.ship

	turn := 0.0
	if in.Left {
		turn--
	}
	if in.Right {
		turn++
	}
	sh.Angle += cfg.TurnRate * turn * dt

	sh.Thrusting = in.Thrust
	if in.Thrust {
		sh.VX += math.Cos(sh.Angle) * cfg.Thrust * dt
		sh.VY += math.Sin(sh.Angle) * cfg.Thrust * dt
		ex := sh.X - math.Cos(sh.Angle)*sh.Radius
		ey := sh.Y - math.Sin(sh.Angle)*sh.Radius
		s.events.Emit(core.EventThrust, ex, ey, 0)
	}

	// Drag is tuned per 1/60 s and rescaled for the actual step.
	if cfg.Drag > 0 {
		f := math.Pow(cfg.Drag, dt*60)
		sh.VX *= f
		sh.VY *= f
	}

	if cfg.MaxSpeed > 0 {
		sp := math.Hypot(sh.VX, sh.VY)
		if sp > cfg.MaxSpeed {
			k := cfg.MaxSpeed / sp
			sh.VX *= k
			sh.VY *= k
		}
	}

	sh.X += sh.VX * dt
	sh.Y += sh.VY * dt

	if s.tune.Variant == FreeRoam {
		sh.X = core.Wrap(sh.X, s.width)
		sh.Y = core.Wrap(sh.Y, s.height)
	} else {
		s.confineShip()
	}

	sh.Invincible = math.Max(0, sh.Invincible-dt)
	sh.Cooldown = math.Max(0, sh.Cooldown-dt)

	if in.FirePulse && sh.Cooldown == 0 {
		s.fire()
		sh.Cooldown = cfg.FireCooldown
	}
}

// confineShip clamps the corridor ship between the walls at its row and
// inside the playfield vertically, killing velocity into a wall.
func (s *Session) confineShip() {
	sh := &s.ship
	r := sh.Radius
	left, right := s.walls.Bounds(s.DistanceAtRow(sh.Y))
	lo, hi := left+r, right-r
	if lo > hi {
		mid := (left + right) / 2
		lo, hi = mid, mid
	}
	if sh.X < lo {
		sh.X = lo
		if sh.VX < 0 {
			sh.VX = 0
		}
	} else if sh.X > hi {
		sh.X = hi
		if sh.VX > 0 {
			sh.VX = 0
		}
	}
	if sh.Y < r {
		sh.Y = r
		if sh.VY < 0 {
			sh.VY = 0
		}
	} else if sh.Y > s.height-r {
		sh.Y = s.height - r
		if sh.VY > 0 {
			sh.VY = 0
		}
	}
}

// fire spawns a bullet just ahead of the nose, inheriting the ship's velocity.
func (s *Session) fire() {
	sh := s.ship
	mx, my := sh.Muzzle()
	b := Bullet{
		X:      mx,
		Y:      my,
		VX:     sh.VX + math.Cos(sh.Angle)*s.tune.Bullets.Speed,
		VY:     sh.VY + math.Sin(sh.Angle)*s.tune.Bullets.Speed,
		Life:   s.tune.Bullets.Life,
		Radius: s.tune.Bullets.Radius,
		Hue:    math.Mod(s.clock*120, 360),
	}
	s.bullets = append(s.bullets, b)
	s.events.Emit(core.EventFired, b.X, b.Y, 0)
}

// stepBullets moves player bullets and drops expired ones. Free-roam bullets
// wrap; corridor bullets die when they leave the playfield.
func (s *Session) stepBullets(dt float64) {
	live := s.bullets[:0]
	for _, b := range s.bullets {
		b.X += b.VX * dt
		b.Y += b.VY * dt
		b.Life -= dt
		if b.Life <= 0 {
			continue
		}
		if s.tune.Variant == FreeRoam {
			b.X = core.Wrap(b.X, s.width)
			b.Y = core.Wrap(b.Y, s.height)
		} else if !s.inPlayfield(b.X, b.Y, b.Radius) {
			continue
		}
		live = append(live, b)
	}
	s.bullets = live
}

// stepObstacles integrates obstacles. In the corridor everything also drifts
// down with the forward speed and is dropped once it scrolls past the bottom.
func (s *Session) stepObstacles(dt float64) {
	live := s.obstacles[:0]
	holdY := s.height * 0.2
	for _, o := range s.obstacles {
		o.Angle += o.Spin * dt
		if s.tune.Variant == FreeRoam {
			o.X = core.Wrap(o.X+o.VX*dt, s.width)
			o.Y = core.Wrap(o.Y+o.VY*dt, s.height)
			live = append(live, o)
			continue
		}

		if o.Kind == KindPort && o.Y >= holdY {
			// The port waits at the end of the trench, tracking its center.
			o.Y = holdY
			o.X = s.walls.Center(s.DistanceAtRow(o.Y))
		} else {
			o.X += o.VX * dt
			o.Y += (o.VY + s.forward) * dt
		}

		if o.Kind.FiresBack() {
			o.Cooldown -= dt
			if o.Cooldown <= 0 && o.Y > 0 {
				s.turretFire(o)
				o.Cooldown = s.tune.Turrets.Cooldown
			}
		}

		if o.Y-o.H/2 > s.height {
			continue
		}
		live = append(live, o)
	}
	s.obstacles = live
}

// turretFire launches an enemy bullet aimed at the ship.
func (s *Session) turretFire(o Obstacle) {
	dx, dy := s.ship.X-o.X, s.ship.Y-o.Y
	d := math.Hypot(dx, dy)
	if d == 0 {
		return
	}
	t := s.tune.Turrets
	s.enemyBullets = append(s.enemyBullets, EnemyBullet{
		X:      o.X,
		Y:      o.Y + o.H/2,
		VX:     dx / d * t.BulletSpeed,
		VY:     dy / d * t.BulletSpeed,
		Life:   t.BulletLife,
		Radius: t.BulletRadius,
	})
}

// stepEnemyBullets moves turret bullets with the scroll and drops expired ones.
func (s *Session) stepEnemyBullets(dt float64) {
	live := s.enemyBullets[:0]
	for _, b := range s.enemyBullets {
		b.X += b.VX * dt
		b.Y += (b.VY + s.forward) * dt
		b.Life -= dt
		if b.Life <= 0 || !s.inPlayfield(b.X, b.Y, b.Radius) {
			continue
		}
		live = append(live, b)
	}
	s.enemyBullets = live
}

func (s *Session) inPlayfield(x, y, r float64) bool {
	return x >= -r && x <= s.width+r && y >= -r && y <= s.height+r
}

package sim

import "github.com/vovakirdan/tui-blasters/internal/core"

// bulletHits reports whether b touches o. Round obstacles take the bullet
// as a point; rectangles widen the bullet radius by the corridor tolerance.
func (s *Session) bulletHits(b Bullet, o Obstacle) bool {
	if o.Kind.Round() {
		return core.CircleHit(b.X, b.Y, o.X, o.Y, o.Radius)
	}
	return core.CircleRectHit(b.X, b.Y, b.Radius+s.tune.Corridor.Tolerance, o.Box())
}

// shipHits reports whether the ship's reduced hitbox touches o.
func (s *Session) shipHits(o Obstacle) bool {
	r := s.shipHitRadius()
	if o.Kind.Round() {
		return core.CircleHit(s.ship.X, s.ship.Y, o.X, o.Y, o.Radius+r)
	}
	return core.CircleRectHit(s.ship.X, s.ship.Y, r, o.Box())
}

func (s *Session) shipHitRadius() float64 {
	k := s.tune.Ship.HitboxScale
	if k <= 0 {
		k = 1
	}
	return s.ship.Radius * k
}

// resolveBulletHits tests every obstacle against the bullets. The first
// bullet found for an obstacle is consumed and the rest are left for other
// obstacles. Children of split obstacles join the field after the pass.
func (s *Session) resolveBulletHits() {
	var spawned []Obstacle
	live := s.obstacles[:0]
	for _, o := range s.obstacles {
		hit := -1
		for bi, b := range s.bullets {
			if s.bulletHits(b, o) {
				hit = bi
				break
			}
		}
		if hit < 0 {
			live = append(live, o)
			continue
		}
		s.bullets = append(s.bullets[:hit], s.bullets[hit+1:]...)

		o.HP--
		if o.HP > 0 {
			s.events.Emit(core.EventObstacleHit, o.X, o.Y, o.HP)
			live = append(live, o)
			continue
		}
		spawned = append(spawned, s.destroy(o)...)
	}
	s.obstacles = append(live, spawned...)

	if s.outcome == OutcomeVictory {
		s.endRun(OutcomeVictory)
	}
}

// destroy applies the kind's destruction behavior and returns any children.
func (s *Session) destroy(o Obstacle) []Obstacle {
	s.events.Emit(core.EventExplosion, o.X, o.Y, int(o.Kind))
	s.addScore(o.Points, o.X, o.Y)

	switch o.Kind.Behavior() {
	case BehaviorSplit:
		return s.splitAsteroid(o)
	case BehaviorGrantLife:
		s.grantLife(o.X, o.Y)
	case BehaviorObjective:
		// The run ends once the whole pass has settled.
		s.outcome = OutcomeVictory
	}
	return nil
}

func (s *Session) grantLife(x, y float64) {
	limit := s.tune.Gameplay.MaxLives
	if limit > 0 && s.lives >= limit {
		return
	}
	s.lives++
	s.events.Emit(core.EventLifeGained, x, y, s.lives)
}

// resolveShipHits handles ship contact. Spawn protection skips the test.
// Flying into a supply collects it; any other contact costs a life.
func (s *Session) resolveShipHits() {
	if s.ship.Invincible > 0 {
		return
	}
	for i, o := range s.obstacles {
		if !s.shipHits(o) {
			continue
		}
		if o.Kind.Behavior() == BehaviorGrantLife {
			s.obstacles = append(s.obstacles[:i], s.obstacles[i+1:]...)
			s.grantLife(o.X, o.Y)
			return
		}
		s.loseLife()
		return
	}
	r := s.shipHitRadius()
	for i, b := range s.enemyBullets {
		if core.CircleHit(b.X, b.Y, s.ship.X, s.ship.Y, b.Radius+r) {
			s.enemyBullets = append(s.enemyBullets[:i], s.enemyBullets[i+1:]...)
			s.loseLife()
			return
		}
	}
}

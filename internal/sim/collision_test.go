package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-blasters/internal/core"
)

func TestSplitYieldsTwoOrThreeChildrenAtParent(t *testing.T) {
	seen := map[int]bool{}
	for seed := int64(1); seed <= 40; seed++ {
		s := newFreeRoam(t, seed)
		parent := s.makeAsteroid(100, 120, 3)
		s.obstacles = []Obstacle{parent}
		s.bullets = []Bullet{{X: 100, Y: 120, Life: 1, Radius: 2}}

		s.resolveBulletHits()

		n := len(s.obstacles)
		require.True(t, n == 2 || n == 3, "seed %d: %d children", seed, n)
		seen[n] = true
		for _, c := range s.obstacles {
			assert.Equal(t, KindAsteroid, c.Kind)
			assert.Equal(t, 2, c.Tier)
			assert.Equal(t, 100.0, c.X)
			assert.Equal(t, 120.0, c.Y)
		}
		assert.Empty(t, s.bullets, "the bullet is consumed")
		assert.Equal(t, s.tune.tierPoints(3), s.State().Score)
	}
	assert.True(t, seen[2] && seen[3], "both child counts occur across seeds")
}

func TestSmallestTierYieldsNoChildren(t *testing.T) {
	s := newFreeRoam(t, 1)
	s.obstacles = []Obstacle{s.makeAsteroid(50, 50, 1)}
	s.bullets = []Bullet{{X: 50, Y: 50, Life: 1, Radius: 2}}

	s.resolveBulletHits()

	assert.Empty(t, s.obstacles)
	assert.Equal(t, s.tune.tierPoints(1), s.State().Score)
}

func TestHitBoundaryIsInclusive(t *testing.T) {
	s := newFreeRoam(t, 1)
	rock := Obstacle{Kind: KindAsteroid, X: 100, Y: 100, Radius: 20, HP: 5, Tier: 3}

	assert.True(t, s.bulletHits(Bullet{X: 120, Y: 100}, rock), "distance² == radius² is a hit")
	assert.False(t, s.bulletHits(Bullet{X: 120.001, Y: 100}, rock))
}

func TestFiredBulletIsAPointAgainstRocks(t *testing.T) {
	s := newFreeRoam(t, 1)
	s.obstacles = []Obstacle{parkedRock()}
	s.fire()
	require.Len(t, s.bullets, 1)
	b := s.bullets[0]
	require.Greater(t, b.Radius, 0.0)

	rock := Obstacle{Kind: KindAsteroid, X: b.X + 22, Y: b.Y, Radius: 20, HP: 1, Tier: 1}
	assert.False(t, s.bulletHits(b, rock), "bullet radius does not widen rock hits")

	rock.X = b.X + 19.5
	assert.True(t, s.bulletHits(b, rock))
}

func TestSplitChildrenDoNotInheritParentVelocity(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		s := newFreeRoam(t, seed)
		parent := s.makeAsteroid(100, 120, 3)
		parent.VX, parent.VY = 5000, -5000
		s.obstacles = []Obstacle{parent}
		s.bullets = []Bullet{{X: 100, Y: 120, Life: 1}}

		s.resolveBulletHits()

		require.NotEmpty(t, s.obstacles)
		for _, c := range s.obstacles {
			assert.Less(t, math.Abs(c.VX), 1000.0, "seed %d", seed)
			assert.Less(t, math.Abs(c.VY), 1000.0, "seed %d", seed)
		}
	}
}

func TestFirstBulletWinsPerObstacle(t *testing.T) {
	s := newFreeRoam(t, 1)
	s.obstacles = []Obstacle{
		{Kind: KindAsteroid, X: 100, Y: 100, Radius: 20, HP: 5, Tier: 3},
		parkedRock(),
	}
	s.bullets = []Bullet{
		{X: 100, Y: 100, Life: 1, Radius: 2},
		{X: 105, Y: 100, Life: 1, Radius: 2},
	}

	s.resolveBulletHits()

	require.Len(t, s.bullets, 1)
	assert.Equal(t, 105.0, s.bullets[0].X)
	assert.Equal(t, 4, s.obstacles[0].HP)
}

func TestRectangleHitsUseTolerance(t *testing.T) {
	s := newCorridor(t, 1)
	crate := Obstacle{Kind: KindCrate, X: 200, Y: 100, W: 32, H: 32, HP: 1}
	tol := s.tune.Corridor.Tolerance

	// Right face at x=216; a zero-radius bullet reaches it only through the tolerance
	assert.True(t, s.bulletHits(Bullet{X: 216 + tol, Y: 100}, crate))
	assert.False(t, s.bulletHits(Bullet{X: 216 + tol + 0.5, Y: 100}, crate))
}

func TestObstacleHitPointsAndScoring(t *testing.T) {
	s := newCorridor(t, 1)
	spec := s.tune.Spec(KindPillar)
	s.place(KindPillar, 100, 0.5, 0.5)
	require.Len(t, s.obstacles, 1)
	p := s.obstacles[0]
	require.Equal(t, spec.HP, p.HP)

	for i := 0; i < spec.HP; i++ {
		s.bullets = append(s.bullets, Bullet{X: p.X, Y: p.Y, Life: 1, Radius: 2})
		s.resolveBulletHits()
	}
	assert.Empty(t, s.obstacles)
	assert.Equal(t, spec.Points, s.State().Score)
}

func TestSupplyGrantsLifeUpToCap(t *testing.T) {
	s := newCorridor(t, 1)
	max := s.tune.Gameplay.MaxLives
	s.lives = max - 1

	for i := 0; i < 2; i++ {
		s.obstacles = []Obstacle{{Kind: KindSupply, X: 300, Y: 80, W: 24, H: 24, HP: 1, Points: 10}}
		s.bullets = []Bullet{{X: 300, Y: 80, Life: 1, Radius: 2}}
		s.resolveBulletHits()
	}

	assert.Equal(t, max, s.State().Lives)
	assert.Equal(t, 20, s.State().Score)
}

func TestFlyingIntoSupplyCollectsIt(t *testing.T) {
	s := newCorridor(t, 1)
	s.ship.Invincible = 0
	s.obstacles = []Obstacle{{Kind: KindSupply, X: s.ship.X, Y: s.ship.Y, W: 24, H: 24, HP: 1}}

	s.resolveShipHits()

	assert.Empty(t, s.obstacles)
	assert.Equal(t, s.tune.Gameplay.Lives+1, s.State().Lives)
	assert.Equal(t, core.PhasePlaying, s.Phase())
}

func TestObjectiveDestroyedIsVictory(t *testing.T) {
	s := newCorridor(t, 1)
	s.score = 300
	s.obstacles = []Obstacle{{Kind: KindPort, X: 320, Y: 60, W: 64, H: 32, HP: 1, Points: 1000}}
	s.bullets = []Bullet{{X: 320, Y: 60, Life: 1, Radius: 2}}

	s.resolveBulletHits()
	events := s.DrainEvents()

	assert.Equal(t, core.PhaseOver, s.Phase())
	assert.Equal(t, OutcomeVictory, s.Outcome())
	assert.True(t, s.State().Victory)
	assert.Equal(t, 1300, s.State().Score)
	assert.Contains(t, kinds(events), core.EventVictory)
	assert.NotContains(t, kinds(events), core.EventGameOver)
}

func TestCorridorSpawnProtection(t *testing.T) {
	s := newCorridor(t, 1)
	inv := s.Ship().Invincible
	assert.GreaterOrEqual(t, inv, 1.1)
	assert.LessOrEqual(t, inv, 1.2)

	sh := s.Ship()
	s.obstacles = []Obstacle{{Kind: KindCrate, X: sh.X, Y: sh.Y, W: 32, H: 32, HP: 1}}
	s.enemyBullets = []EnemyBullet{{X: sh.X, Y: sh.Y, Life: 2, Radius: 3}}
	s.forward = 0

	for i := 0; i < 30; i++ {
		s.Update(testDT, core.Intent{})
	}
	assert.Equal(t, s.tune.Gameplay.Lives, s.State().Lives, "collisions ignored while protected")

	s.ship.Invincible = 0
	s.ship.X, s.ship.Y = s.obstacles[0].X, s.obstacles[0].Y
	s.resolveShipHits()
	assert.Equal(t, s.tune.Gameplay.Lives-1, s.State().Lives)
}

func TestEnemyBulletCostsALife(t *testing.T) {
	s := newCorridor(t, 1)
	s.ship.Invincible = 0
	s.enemyBullets = []EnemyBullet{{X: s.ship.X + 5, Y: s.ship.Y, Life: 2, Radius: 3}}

	s.resolveShipHits()

	assert.Empty(t, s.enemyBullets)
	assert.Equal(t, s.tune.Gameplay.Lives-1, s.State().Lives)
}

package sim

import (
	"hash/fnv"
	"math"

	"github.com/vovakirdan/tui-blasters/internal/core"
)

// Snapshot is a read-only copy of the session for rendering and determinism
// checks.
type Snapshot struct {
	Tick      uint64
	Phase     core.Phase
	Outcome   Outcome
	Score     int
	Best      int
	Lives     int
	Wave      int
	Distance  float64
	Forward   float64
	Suspended bool

	Ship         Ship
	Bullets      []Bullet
	Obstacles    []Obstacle
	EnemyBullets []EnemyBullet
}

// Snapshot copies the current session state.
func (s *Session) Snapshot() Snapshot {
	st := s.State()
	return Snapshot{
		Tick:         s.ticks,
		Phase:        s.phase,
		Outcome:      s.outcome,
		Score:        s.score,
		Best:         st.Best,
		Lives:        s.lives,
		Wave:         s.wave,
		Distance:     s.distance,
		Forward:      s.forward,
		Suspended:    s.suspended,
		Ship:         s.ship,
		Bullets:      append([]Bullet(nil), s.bullets...),
		Obstacles:    append([]Obstacle(nil), s.obstacles...),
		EnemyBullets: append([]EnemyBullet(nil), s.enemyBullets...),
	}
}

// Hash returns a hash of the snapshot for determinism testing.
// Positions are quantized to 1/1000 of a world unit.
func (snap *Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	put := func(v uint64) {
		for i := range buf {
			buf[i] = byte(v >> (8 * i))
		}
		_, _ = h.Write(buf[:])
	}
	putF := func(f float64) {
		put(uint64(int64(math.Round(f * 1000)))) //#nosec G115 -- hash computation
	}
	putI := func(i int) {
		put(uint64(int64(i))) //#nosec G115 -- hash computation
	}

	put(snap.Tick)
	_, _ = h.Write([]byte(snap.Phase))
	putI(int(snap.Outcome))
	putI(snap.Score)
	putI(snap.Lives)
	putI(snap.Wave)
	putF(snap.Distance)

	sh := snap.Ship
	for _, f := range []float64{sh.X, sh.Y, sh.VX, sh.VY, sh.Angle, sh.Cooldown, sh.Invincible} {
		putF(f)
	}
	putI(len(snap.Bullets))
	for _, b := range snap.Bullets {
		putF(b.X)
		putF(b.Y)
		putF(b.Life)
	}
	putI(len(snap.Obstacles))
	for _, o := range snap.Obstacles {
		putI(int(o.Kind))
		putF(o.X)
		putF(o.Y)
		putI(o.HP)
		putI(o.Tier)
	}
	putI(len(snap.EnemyBullets))
	for _, b := range snap.EnemyBullets {
		putF(b.X)
		putF(b.Y)
	}
	return h.Sum64()
}

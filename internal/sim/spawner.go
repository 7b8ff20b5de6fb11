package sim

import (
	"math"

	"github.com/vovakirdan/tui-blasters/internal/core"
)

// Pattern is a corridor spawn template.
type Pattern int

const (
	PatternSingle Pattern = iota
	PatternPair
	PatternWall
	PatternSlalom
	PatternSpray
)

// String returns the pattern name.
func (p Pattern) String() string {
	switch p {
	case PatternSingle:
		return "single"
	case PatternPair:
		return "pair"
	case PatternWall:
		return "wall"
	case PatternSlalom:
		return "slalom"
	case PatternSpray:
		return "spray"
	default:
		return "unknown"
	}
}

// spawnLevel fills the free-roam field for the current level, clearing
// bullets and respawning the ship at the center.
func (s *Session) spawnLevel() {
	s.bullets = s.bullets[:0]
	s.resetShip()

	r := s.tune.Rocks
	count := core.Clamp(3+s.wave, r.MinCount, r.MaxCount)
	if r.MaxCount < r.MinCount || r.MaxCount <= 0 {
		count = 3 + s.wave
	}
	for i := 0; i < count; i++ {
		x, y := s.sampleClear()
		s.obstacles = append(s.obstacles, s.makeAsteroid(x, y, s.tune.topTier()))
	}
}

// sampleClear draws random positions until one is at least the spawn
// clearance away from the ship, giving up after the configured tries.
func (s *Session) sampleClear() (x, y float64) {
	tries := s.tune.Rocks.SpawnTries
	if tries <= 0 {
		tries = 1
	}
	c2 := s.tune.Rocks.SpawnClearance * s.tune.Rocks.SpawnClearance
	for i := 0; i < tries; i++ {
		x = s.rng.Float64() * s.width
		y = s.rng.Float64() * s.height
		if core.Dist2(x, y, s.ship.X, s.ship.Y) > c2 {
			return x, y
		}
	}
	return x, y
}

// makeAsteroid creates a rock of the given tier with a random heading and a
// jagged outline.
func (s *Session) makeAsteroid(x, y float64, tier int) Obstacle {
	r := s.tune.Rocks
	radius := s.tune.tierRadius(tier) * s.randRange(0.85, 1.1)
	speed := s.randRange(r.MinSpeed, r.MaxSpeed) + float64(s.wave-1)*r.SpeedPerLevel
	speed = s.diff.Speed(speed, s.wave, s.score)
	heading := s.rng.Float64() * core.Tau

	n := 10 + s.rng.Intn(7)
	outline := make([]Vertex, n)
	for i := range outline {
		a := float64(i) / float64(n) * core.Tau
		rr := radius * s.randRange(0.72, 1.12)
		outline[i] = Vertex{X: math.Cos(a) * rr, Y: math.Sin(a) * rr}
	}

	return Obstacle{
		Kind:    KindAsteroid,
		X:       x,
		Y:       y,
		VX:      math.Cos(heading) * speed,
		VY:      math.Sin(heading) * speed,
		Radius:  radius,
		HP:      1,
		Tier:    tier,
		Points:  s.tune.tierPoints(tier),
		Spin:    s.randRange(-1.2, 1.2),
		Outline: outline,
	}
}

// splitAsteroid returns the children of a destroyed rock. Children start at
// the parent's position with a fresh drift plus a random kick on each axis.
func (s *Session) splitAsteroid(parent Obstacle) []Obstacle {
	if parent.Tier <= 1 {
		return nil
	}
	n := 2
	if s.rng.Float64() < s.tune.Rocks.ThirdChildChance {
		n = 3
	}
	kids := make([]Obstacle, 0, n)
	for i := 0; i < n; i++ {
		k := s.makeAsteroid(parent.X, parent.Y, parent.Tier-1)
		kick := s.tune.Rocks.SplitKick
		k.VX += s.randRange(-kick, kick)
		k.VY += s.randRange(-kick, kick)
		kids = append(kids, k)
	}
	return kids
}

// forwardSpeed returns the corridor scroll speed for the current section.
func (s *Session) forwardSpeed() float64 {
	p := s.tune.Pacing
	v := p.ForwardSpeed + p.ForwardSpeedPerSection*float64(s.wave-1)
	v = s.diff.Speed(v, s.wave, s.score)
	if p.MaxForwardSpeed > 0 {
		v = math.Min(v, p.MaxForwardSpeed)
	}
	return v
}

// spawnGap returns the distance between pattern triggers for the current section.
func (s *Session) spawnGap() float64 {
	p := s.tune.Pacing
	g := math.Max(p.SpawnGap-p.SpawnGapPerSection*float64(s.wave-1), p.MinSpawnGap)
	g = s.diff.Gap(g, p.MinSpawnGap, s.wave, s.score)
	if g <= 0 {
		g = 1
	}
	return g
}

// sectionLength returns the distance covered by the current section.
func (s *Session) sectionLength() float64 {
	p := s.tune.Pacing
	l := p.SectionLength + p.SectionLengthPerSection*float64(s.wave-1)
	if l <= 0 {
		l = 1
	}
	return l
}

// stepCorridorSpawner advances the distance and fires section and pattern
// triggers. While the spawn gate is closed only the distance advances.
func (s *Session) stepCorridorSpawner(dt float64) {
	adv := s.forward * dt
	s.distance += adv
	if s.suspended {
		return
	}

	s.sectionAcc += adv
	if s.sectionAcc >= s.sectionLength() {
		s.sectionAcc -= s.sectionLength()
		s.advanceSection()
		if s.suspended {
			return
		}
	}

	if !s.objectiveSpawned && s.tune.Pacing.ObjectiveSection > 0 && s.wave >= s.tune.Pacing.ObjectiveSection {
		s.spawnObjective()
	}

	s.spawnAcc += adv
	if gap := s.spawnGap(); s.spawnAcc >= gap {
		s.spawnAcc = math.Mod(s.spawnAcc, gap)
		s.spawnPattern(s.pickPattern())
	}
}

// advanceSection moves to the next corridor section.
func (s *Session) advanceSection() {
	s.wave++
	s.forward = s.forwardSpeed()
	s.supplyPending = true
	s.events.Emit(core.EventSectionAdvanced, 0, 0, s.wave)
	if s.tune.breakDue(s.wave) {
		s.suspended = true
		s.events.Emit(core.EventBreakRequested, 0, 0, s.wave)
	}
}

// pickPattern draws a template by configured weight.
func (s *Session) pickPattern() Pattern {
	w := s.tune.Patterns
	weights := [...]int{w.Single, w.Pair, w.Wall, w.Slalom, w.Spray}
	total := 0
	for _, v := range weights {
		if v > 0 {
			total += v
		}
	}
	if total == 0 {
		return PatternSingle
	}
	n := s.rng.Intn(total)
	for i, v := range weights {
		if v <= 0 {
			continue
		}
		if n < v {
			return Pattern(i)
		}
		n -= v
	}
	return PatternSingle
}

// spawnPattern places a template just above the top edge, each obstacle
// within the walls at its own row. The section's supply rides along with
// the first pattern after the section starts.
func (s *Session) spawnPattern(p Pattern) {
	crate := s.tune.Spec(KindCrate)
	top := -crate.H / 2

	switch p {
	case PatternSingle:
		kind := KindCrate
		chance := s.tune.Turrets.Chance + s.tune.Turrets.ChancePerSection*float64(s.wave-1)
		if s.rng.Float64() < chance {
			kind = KindTurret
		}
		s.place(kind, top, 0, 1)
	case PatternPair:
		s.place(KindCrate, top, 0, 0.5)
		s.place(KindCrate, top, 0.5, 1)
	case PatternWall:
		pillar := s.tune.Spec(KindPillar)
		y := -pillar.H / 2
		s.place(KindPillar, y, 0, 0)
		s.place(KindPillar, y, 1, 1)
	case PatternSlalom:
		step := crate.H * 2.5
		s.place(KindCrate, top, 0, 0.34)
		s.place(KindCrate, top-step, 0.66, 1)
		s.place(KindCrate, top-2*step, 0, 0.34)
	case PatternSpray:
		for i := 0; i < 4; i++ {
			s.place(KindCrate, top-s.rng.Float64()*crate.H*3, 0, 1)
		}
	}

	if s.supplyPending {
		s.supplyPending = false
		sup := s.tune.Spec(KindSupply)
		s.place(KindSupply, top-crate.H-sup.H, 0, 1)
	}
}

// place adds an obstacle of kind at row y, with its x drawn from the
// [lo, hi] fraction of the corridor span at that row.
func (s *Session) place(kind Kind, y, lo, hi float64) {
	spec := s.tune.Spec(kind)
	left, right := s.walls.Bounds(s.DistanceAtRow(y))
	minX, maxX := left+spec.W/2, right-spec.W/2
	var x float64
	if minX >= maxX {
		x = (left + right) / 2
	} else {
		a := minX + (maxX-minX)*lo
		b := minX + (maxX-minX)*hi
		x = s.randRange(a, b)
	}
	o := Obstacle{
		Kind:   kind,
		X:      x,
		Y:      y,
		W:      spec.W,
		H:      spec.H,
		HP:     max(spec.HP, 1),
		Points: spec.Points,
	}
	if kind.FiresBack() {
		o.Cooldown = s.tune.Turrets.Cooldown * s.randRange(0.5, 1)
	}
	s.obstacles = append(s.obstacles, o)
}

// spawnObjective sends the exhaust port down the trench.
func (s *Session) spawnObjective() {
	s.objectiveSpawned = true
	spec := s.tune.Spec(KindPort)
	y := -spec.H / 2
	o := Obstacle{
		Kind:   KindPort,
		X:      s.walls.Center(s.DistanceAtRow(y)),
		Y:      y,
		W:      spec.W,
		H:      spec.H,
		HP:     max(spec.HP, 1),
		Points: spec.Points,
	}
	s.obstacles = append(s.obstacles, o)
	s.events.Emit(core.EventObjectiveSpawned, o.X, o.Y, 0)
}

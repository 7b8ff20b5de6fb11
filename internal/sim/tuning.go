package sim

import "github.com/vovakirdan/tui-blasters/internal/config"

// Variant selects the edge policy and spawner of a session.
type Variant int

const (
	FreeRoam Variant = iota // wrap-around field of splitting asteroids
	Corridor                // forward-scrolling trench with patterned obstacles
)

// String returns the variant name.
func (v Variant) String() string {
	if v == Corridor {
		return "corridor"
	}
	return "free-roam"
}

// Tuning is the full parameter set of a session. Fields that a variant does
// not use are ignored.
type Tuning struct {
	Variant    Variant
	Ship       config.ShipConfig
	Bullets    config.BulletConfig
	Rocks      config.RockConfig
	Corridor   config.CorridorConfig
	Pacing     config.PacingConfig
	Patterns   config.PatternWeights
	Obstacles  config.ObstacleKinds
	Turrets    config.TurretConfig
	Gameplay   config.GameplayConfig
	Breaks     config.BreakConfig
	Difficulty config.DifficultyConfig
}

// FreeRoamTuning builds the tuning of the asteroid field game.
func FreeRoamTuning(cfg config.AsteroidsConfig) Tuning {
	return Tuning{
		Variant:    FreeRoam,
		Ship:       cfg.Ship,
		Bullets:    cfg.Bullets,
		Rocks:      cfg.Rocks,
		Gameplay:   cfg.Gameplay,
		Breaks:     cfg.Breaks,
		Difficulty: cfg.Difficulty,
	}
}

// CorridorTuning builds the tuning of the trench run game.
func CorridorTuning(cfg config.TrenchConfig) Tuning {
	return Tuning{
		Variant:    Corridor,
		Ship:       cfg.Ship,
		Bullets:    cfg.Bullets,
		Corridor:   cfg.Corridor,
		Pacing:     cfg.Pacing,
		Patterns:   cfg.Patterns,
		Obstacles:  cfg.Obstacles,
		Turrets:    cfg.Turrets,
		Gameplay:   cfg.Gameplay,
		Breaks:     cfg.Breaks,
		Difficulty: cfg.Difficulty,
	}
}

// Spec returns the configured payload of a rectangular obstacle kind.
func (t Tuning) Spec(k Kind) config.ObstacleSpec {
	switch k {
	case KindCrate:
		return t.Obstacles.Crate
	case KindPillar:
		return t.Obstacles.Pillar
	case KindTurret:
		return t.Obstacles.Turret
	case KindSupply:
		return t.Obstacles.Supply
	case KindPort:
		return t.Obstacles.Port
	default:
		return config.ObstacleSpec{}
	}
}

// topTier is the largest asteroid tier.
func (t Tuning) topTier() int {
	if len(t.Rocks.TierRadius) == 0 {
		return 1
	}
	return len(t.Rocks.TierRadius)
}

func (t Tuning) tierRadius(tier int) float64 {
	if len(t.Rocks.TierRadius) == 0 {
		return 20
	}
	i := tier - 1
	if i < 0 {
		i = 0
	}
	if i >= len(t.Rocks.TierRadius) {
		i = len(t.Rocks.TierRadius) - 1
	}
	return t.Rocks.TierRadius[i]
}

func (t Tuning) tierPoints(tier int) int {
	i := tier - 1
	if i < 0 || i >= len(t.Rocks.TierPoints) {
		return 0
	}
	return t.Rocks.TierPoints[i]
}

// breakDue reports whether an intermission is scheduled on reaching wave.
func (t Tuning) breakDue(wave int) bool {
	return t.Breaks.Every > 0 && wave > 1 && (wave-1)%t.Breaks.Every == 0
}

// Package config provides YAML/TOML game configuration loading and
// difficulty management for the blasters games.
package config

// AsteroidsConfig contains all configuration for the free-roam shooter.
type AsteroidsConfig struct {
	World      WorldConfig      `yaml:"world" toml:"world"`
	Ship       ShipConfig       `yaml:"ship" toml:"ship"`
	Bullets    BulletConfig     `yaml:"bullets" toml:"bullets"`
	Rocks      RockConfig       `yaml:"rocks" toml:"rocks"`
	Gameplay   GameplayConfig   `yaml:"gameplay" toml:"gameplay"`
	Breaks     BreakConfig      `yaml:"breaks" toml:"breaks"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// TrenchConfig contains all configuration for the scrolling corridor shooter.
type TrenchConfig struct {
	World      WorldConfig      `yaml:"world" toml:"world"`
	Ship       ShipConfig       `yaml:"ship" toml:"ship"`
	Bullets    BulletConfig     `yaml:"bullets" toml:"bullets"`
	Corridor   CorridorConfig   `yaml:"corridor" toml:"corridor"`
	Pacing     PacingConfig     `yaml:"pacing" toml:"pacing"`
	Patterns   PatternWeights   `yaml:"patterns" toml:"patterns"`
	Obstacles  ObstacleKinds    `yaml:"obstacles" toml:"obstacles"`
	Turrets    TurretConfig     `yaml:"turrets" toml:"turrets"`
	Gameplay   GameplayConfig   `yaml:"gameplay" toml:"gameplay"`
	Breaks     BreakConfig      `yaml:"breaks" toml:"breaks"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// WorldConfig maps terminal cells to world units.
// Terminal cells are roughly twice as tall as wide, so CellH ≈ 2×CellW keeps
// circles round on screen.
type WorldConfig struct {
	CellW float64 `yaml:"cell_w" toml:"cell_w"`
	CellH float64 `yaml:"cell_h" toml:"cell_h"`
}

// ShipConfig defines the player ship's flight model.
type ShipConfig struct {
	Radius        float64 `yaml:"radius" toml:"radius"`
	TurnRate      float64 `yaml:"turn_rate" toml:"turn_rate"` // rad/s
	Thrust        float64 `yaml:"thrust" toml:"thrust"`       // units/s²
	Drag          float64 `yaml:"drag" toml:"drag"`           // velocity factor per 1/60 s
	MaxSpeed      float64 `yaml:"max_speed" toml:"max_speed"`
	FireCooldown  float64 `yaml:"fire_cooldown" toml:"fire_cooldown"` // seconds
	Invincibility float64 `yaml:"invincibility" toml:"invincibility"` // seconds after (re)spawn
	HitboxScale   float64 `yaml:"hitbox_scale" toml:"hitbox_scale"`   // fraction of radius used against obstacles
	SpawnRow      float64 `yaml:"spawn_row" toml:"spawn_row"`         // fraction of world height for the spawn point
}

// BulletConfig defines player projectiles.
type BulletConfig struct {
	Speed  float64 `yaml:"speed" toml:"speed"`
	Life   float64 `yaml:"life" toml:"life"`
	Radius float64 `yaml:"radius" toml:"radius"`
}

// RockConfig defines the splitting asteroids of the free-roam game.
// Tier index 0 is the smallest tier.
type RockConfig struct {
	TierRadius       []float64 `yaml:"tier_radius" toml:"tier_radius"`
	TierPoints       []int     `yaml:"tier_points" toml:"tier_points"`
	MinSpeed         float64   `yaml:"min_speed" toml:"min_speed"`
	MaxSpeed         float64   `yaml:"max_speed" toml:"max_speed"`
	SpeedPerLevel    float64   `yaml:"speed_per_level" toml:"speed_per_level"`
	SplitKick        float64   `yaml:"split_kick" toml:"split_kick"`
	ThirdChildChance float64   `yaml:"third_child_chance" toml:"third_child_chance"`
	SpawnClearance   float64   `yaml:"spawn_clearance" toml:"spawn_clearance"`
	SpawnTries       int       `yaml:"spawn_tries" toml:"spawn_tries"`
	MinCount         int       `yaml:"min_count" toml:"min_count"`
	MaxCount         int       `yaml:"max_count" toml:"max_count"`
}

// CorridorConfig shapes the trench walls. Widths are fractions of world width.
type CorridorConfig struct {
	HalfWidth   float64 `yaml:"half_width" toml:"half_width"`
	WidthSwing  float64 `yaml:"width_swing" toml:"width_swing"`
	OffsetSwing float64 `yaml:"offset_swing" toml:"offset_swing"`
	WidthFreq   float64 `yaml:"width_freq" toml:"width_freq"`   // radians per unit of distance
	OffsetFreq  float64 `yaml:"offset_freq" toml:"offset_freq"` // radians per unit of distance
	Tolerance   float64 `yaml:"tolerance" toml:"tolerance"`     // added to bullet radius for rectangle hits
}

// PacingConfig defines distance-driven spawning and section progression.
type PacingConfig struct {
	ForwardSpeed            float64 `yaml:"forward_speed" toml:"forward_speed"`
	ForwardSpeedPerSection  float64 `yaml:"forward_speed_per_section" toml:"forward_speed_per_section"`
	MaxForwardSpeed         float64 `yaml:"max_forward_speed" toml:"max_forward_speed"`
	SpawnGap                float64 `yaml:"spawn_gap" toml:"spawn_gap"`
	SpawnGapPerSection      float64 `yaml:"spawn_gap_per_section" toml:"spawn_gap_per_section"`
	MinSpawnGap             float64 `yaml:"min_spawn_gap" toml:"min_spawn_gap"`
	SectionLength           float64 `yaml:"section_length" toml:"section_length"`
	SectionLengthPerSection float64 `yaml:"section_length_per_section" toml:"section_length_per_section"`
	ObjectiveSection        int     `yaml:"objective_section" toml:"objective_section"`
}

// PatternWeights are relative weights of the corridor spawn templates.
type PatternWeights struct {
	Single int `yaml:"single" toml:"single"`
	Pair   int `yaml:"pair" toml:"pair"`
	Wall   int `yaml:"wall" toml:"wall"`
	Slalom int `yaml:"slalom" toml:"slalom"`
	Spray  int `yaml:"spray" toml:"spray"`
}

// ObstacleSpec defines one rectangular obstacle kind.
type ObstacleSpec struct {
	W      float64 `yaml:"w" toml:"w"`
	H      float64 `yaml:"h" toml:"h"`
	HP     int     `yaml:"hp" toml:"hp"`
	Points int     `yaml:"points" toml:"points"`
}

// ObstacleKinds holds the per-kind payload for corridor obstacles.
type ObstacleKinds struct {
	Crate  ObstacleSpec `yaml:"crate" toml:"crate"`
	Pillar ObstacleSpec `yaml:"pillar" toml:"pillar"`
	Turret ObstacleSpec `yaml:"turret" toml:"turret"`
	Supply ObstacleSpec `yaml:"supply" toml:"supply"`
	Port   ObstacleSpec `yaml:"port" toml:"port"`
}

// TurretConfig defines turrets that fire back at the ship.
type TurretConfig struct {
	Cooldown         float64 `yaml:"cooldown" toml:"cooldown"`
	BulletSpeed      float64 `yaml:"bullet_speed" toml:"bullet_speed"`
	BulletLife       float64 `yaml:"bullet_life" toml:"bullet_life"`
	BulletRadius     float64 `yaml:"bullet_radius" toml:"bullet_radius"`
	Chance           float64 `yaml:"chance" toml:"chance"` // chance a single-pattern obstacle is a turret
	ChancePerSection float64 `yaml:"chance_per_section" toml:"chance_per_section"`
}

// GameplayConfig defines run-level rules.
type GameplayConfig struct {
	Lives    int `yaml:"lives" toml:"lives"`
	MaxLives int `yaml:"max_lives" toml:"max_lives"`
}

// BreakConfig schedules optional intermissions between waves.
type BreakConfig struct {
	Every   int     `yaml:"every" toml:"every"` // 0 disables breaks
	Seconds float64 `yaml:"seconds" toml:"seconds"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "wave", "score", or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // Wave/score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier" toml:"speed_multiplier"` // Multiplier added to obstacle speed at max difficulty
	GapReduction    float64 `yaml:"gap_reduction" toml:"gap_reduction"`       // Fraction of the spawn gap removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

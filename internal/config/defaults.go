package config

import (
	_ "embed"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

//go:embed defaults/trench.yaml
var defaultTrenchYAML []byte

// DefaultAsteroidsConfig returns the default free-roam configuration.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		World: WorldConfig{CellW: 8, CellH: 16},
		Ship: ShipConfig{
			Radius:        14,
			TurnRate:      3.8,
			Thrust:        220,
			Drag:          0.985,
			MaxSpeed:      420,
			FireCooldown:  0.18,
			Invincibility: 2.0,
			HitboxScale:   0.85,
			SpawnRow:      0.5,
		},
		Bullets: BulletConfig{
			Speed:  420,
			Life:   1.1,
			Radius: 2.2,
		},
		Rocks: RockConfig{
			TierRadius:       []float64{22, 38, 60},
			TierPoints:       []int{100, 50, 20},
			MinSpeed:         35,
			MaxSpeed:         70,
			SpeedPerLevel:    6,
			SplitKick:        70,
			ThirdChildChance: 0.25,
			SpawnClearance:   220,
			SpawnTries:       50,
			MinCount:         4,
			MaxCount:         10,
		},
		Gameplay: GameplayConfig{
			Lives:    3,
			MaxLives: 5,
		},
		Breaks: BreakConfig{
			Every:   3,
			Seconds: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "wave",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultTrenchConfig returns the default corridor configuration.
func DefaultTrenchConfig() TrenchConfig {
	return TrenchConfig{
		World: WorldConfig{CellW: 8, CellH: 16},
		Ship: ShipConfig{
			Radius:        12,
			TurnRate:      3.8,
			Thrust:        260,
			Drag:          0.97,
			MaxSpeed:      360,
			FireCooldown:  0.16,
			Invincibility: 1.15,
			HitboxScale:   0.85,
			SpawnRow:      0.8,
		},
		Bullets: BulletConfig{
			Speed:  520,
			Life:   1.4,
			Radius: 2,
		},
		Corridor: CorridorConfig{
			HalfWidth:   0.34,
			WidthSwing:  0.08,
			OffsetSwing: 0.12,
			WidthFreq:   0.0017,
			OffsetFreq:  0.0023,
			Tolerance:   4,
		},
		Pacing: PacingConfig{
			ForwardSpeed:            140,
			ForwardSpeedPerSection:  18,
			MaxForwardSpeed:         320,
			SpawnGap:                220,
			SpawnGapPerSection:      12,
			MinSpawnGap:             110,
			SectionLength:           2400,
			SectionLengthPerSection: 400,
			ObjectiveSection:        6,
		},
		Patterns: PatternWeights{
			Single: 35,
			Pair:   25,
			Wall:   15,
			Slalom: 15,
			Spray:  10,
		},
		Obstacles: ObstacleKinds{
			Crate:  ObstacleSpec{W: 32, H: 32, HP: 1, Points: 25},
			Pillar: ObstacleSpec{W: 40, H: 64, HP: 3, Points: 40},
			Turret: ObstacleSpec{W: 32, H: 32, HP: 2, Points: 75},
			Supply: ObstacleSpec{W: 24, H: 24, HP: 1, Points: 10},
			Port:   ObstacleSpec{W: 64, H: 32, HP: 5, Points: 1000},
		},
		Turrets: TurretConfig{
			Cooldown:         1.6,
			BulletSpeed:      200,
			BulletLife:       3.0,
			BulletRadius:     3,
			Chance:           0.15,
			ChancePerSection: 0.05,
		},
		Gameplay: GameplayConfig{
			Lives:    3,
			MaxLives: 5,
		},
		Breaks: BreakConfig{
			Every:   2,
			Seconds: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "wave",
				MaxAt: 8,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				GapReduction:    0.3,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "asteroids":
		return defaultAsteroidsYAML
	case "trench":
		return defaultTrenchYAML
	default:
		return nil
	}
}

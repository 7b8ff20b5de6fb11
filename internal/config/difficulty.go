package config

import "math"

// DifficultyManager calculates dynamic game parameters from run progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0).
// wave is the 1-based level/section; score is the run score.
// A disabled manager always reports 0 so base tuning applies unchanged.
func (d *DifficultyManager) Level(wave, score int) float64 {
	if !d.cfg.Enabled {
		return 0
	}
	if d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "wave":
		progress = float64(wave-1) / maxAt
	case "score":
		progress = float64(score) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed scales an obstacle speed from base to base * (1 + speedMultiplier).
func (d *DifficultyManager) Speed(base float64, wave, score int) float64 {
	return base * (1.0 + d.Level(wave, score)*d.cfg.Scaling.SpeedMultiplier)
}

// Gap shrinks a spawn gap by up to gapReduction of its length, never below floor.
func (d *DifficultyManager) Gap(base, floor float64, wave, score int) float64 {
	result := base * (1.0 - d.Level(wave, score)*d.cfg.Scaling.GapReduction)
	return math.Max(result, floor)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

// Package trench implements the corridor shooter: the ship flies up a
// scrolling trench of shifting walls, shooting obstacles and turrets
// until the exhaust port at its end is destroyed.
package trench

import (
	"github.com/aquilax/go-perlin"

	"github.com/vovakirdan/tui-blasters/internal/config"
	"github.com/vovakirdan/tui-blasters/internal/core"
	"github.com/vovakirdan/tui-blasters/internal/games/arena"
	"github.com/vovakirdan/tui-blasters/internal/registry"
	"github.com/vovakirdan/tui-blasters/internal/sim"
)

// ID is the registry identifier.
const ID = "trench"

const waveLabel = "SECTION"

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game implements the trench run.
type Game struct {
	*arena.Runner
	cfg   config.TrenchConfig
	noise *perlin.Perlin
}

// New creates a new game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Trench Run"
}

// Reset loads the configuration and prepares a fresh run in the menu phase.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.LoadTrench(configPath)
	if err != nil {
		cfg = config.DefaultTrenchConfig()
	}
	if difficultyPreset != "" {
		config.ApplyTrenchPreset(&cfg, difficultyPreset)
	}
	g.ResetWithConfig(rt, cfg)
}

// ResetWithConfig prepares a fresh run with an explicit configuration.
func (g *Game) ResetWithConfig(rt core.RuntimeConfig, cfg config.TrenchConfig) {
	g.cfg = cfg
	view := arena.NewView(cfg.World, rt.ScreenW, rt.ScreenH)
	g.Runner = arena.NewRunner(sim.CorridorTuning(cfg), view, rt, waveLabel)
	g.noise = perlin.NewPerlin(2, 2, 3, rt.Seed)
}

// Resize adapts the trench to a new screen size.
func (g *Game) Resize(screenW, screenH int) {
	g.Runner.Resize(arena.NewView(g.cfg.World, screenW, screenH))
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// configExtensions lists the file extensions probed in config directories.
var configExtensions = []string{".yaml", ".yml", ".toml"}

// LoadAsteroids loads the free-roam configuration.
// Search order: customPath -> ~/.blasters/configs/asteroids.{yaml,yml,toml}
// -> ./configs/asteroids.{yaml,yml,toml} -> embedded default
func LoadAsteroids(customPath string) (AsteroidsConfig, error) {
	cfg := DefaultAsteroidsConfig()
	err := load(&cfg, customPath, "asteroids", defaultAsteroidsYAML)
	return cfg, err
}

// LoadTrench loads the corridor configuration.
// Search order: customPath -> ~/.blasters/configs/trench.{yaml,yml,toml}
// -> ./configs/trench.{yaml,yml,toml} -> embedded default
func LoadTrench(customPath string) (TrenchConfig, error) {
	cfg := DefaultTrenchConfig()
	err := load(&cfg, customPath, "trench", defaultTrenchYAML)
	return cfg, err
}

// load decodes the first config found into cfg. cfg must already hold the
// hardcoded defaults; files only override the keys they set.
func load[T any](cfg *T, customPath, name string, embedded []byte) error {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := decode(customPath, data, cfg); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return nil
	}

	// Try user config directory, then local configs directory
	dirs := []string{}
	if userDir := userConfigDir(); userDir != "" {
		dirs = append(dirs, userDir)
	}
	dirs = append(dirs, "configs")

	for _, dir := range dirs {
		for _, ext := range configExtensions {
			path := filepath.Join(dir, name+ext)
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			// A broken file falls through to the next candidate
			candidate := *cfg
			if err := decode(path, data, &candidate); err == nil {
				*cfg = candidate
				return nil
			}
		}
	}

	// Use embedded default YAML; on failure cfg keeps the hardcoded defaults
	candidate := *cfg
	if err := yaml.Unmarshal(embedded, &candidate); err == nil {
		*cfg = candidate
	}
	return nil
}

// decode picks the parser by file extension. Anything that is not .toml is YAML.
func decode(path string, data []byte, v any) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		_, err := toml.Decode(string(data), v)
		return err
	}
	return yaml.Unmarshal(data, v)
}

// userConfigDir returns the user config directory, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blasters", "configs")
}

// ApplyAsteroidsPreset modifies the config based on a difficulty preset.
func ApplyAsteroidsPreset(cfg *AsteroidsConfig, preset DifficultyPreset) {
	applyDifficultyPreset(&cfg.Difficulty, preset)
	applyLivesPreset(&cfg.Gameplay, preset)
}

// ApplyTrenchPreset modifies the config based on a difficulty preset.
func ApplyTrenchPreset(cfg *TrenchConfig, preset DifficultyPreset) {
	applyDifficultyPreset(&cfg.Difficulty, preset)
	applyLivesPreset(&cfg.Gameplay, preset)

	switch preset {
	case DifficultyEasy:
		cfg.Pacing.ForwardSpeed *= 0.85
	case DifficultyHard:
		cfg.Pacing.ForwardSpeed *= 1.2
	}
}

func applyDifficultyPreset(d *DifficultyConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		d.Enabled = false
		return
	}
	d.Enabled = true
	d.InitialLevel = InitialLevelForPreset(preset)
}

func applyLivesPreset(g *GameplayConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		g.Lives = 5
	case DifficultyHard:
		g.Lives = 2
	}
	if g.MaxLives < g.Lives {
		g.MaxLives = g.Lives
	}
}

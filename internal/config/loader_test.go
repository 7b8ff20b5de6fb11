package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML AsteroidsConfig
	if err := yaml.Unmarshal(GetDefaultYAML("asteroids"), &fromYAML); err != nil {
		t.Fatalf("embedded asteroids.yaml does not parse: %v", err)
	}
	if !reflect.DeepEqual(fromYAML, DefaultAsteroidsConfig()) {
		t.Errorf("embedded asteroids.yaml drifted from DefaultAsteroidsConfig():\n%+v\n%+v", fromYAML, DefaultAsteroidsConfig())
	}

	var trench TrenchConfig
	if err := yaml.Unmarshal(GetDefaultYAML("trench"), &trench); err != nil {
		t.Fatalf("embedded trench.yaml does not parse: %v", err)
	}
	if !reflect.DeepEqual(trench, DefaultTrenchConfig()) {
		t.Errorf("embedded trench.yaml drifted from DefaultTrenchConfig():\n%+v\n%+v", trench, DefaultTrenchConfig())
	}
}

func TestLoadCustomYAMLOverridesOnlySetKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rocks.yaml")
	data := []byte("gameplay:\n  lives: 7\n  max_lives: 9\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAsteroids(path)
	if err != nil {
		t.Fatalf("LoadAsteroids() failed: %v", err)
	}
	if cfg.Gameplay.Lives != 7 || cfg.Gameplay.MaxLives != 9 {
		t.Errorf("gameplay = %+v, expected lives 7 / max 9", cfg.Gameplay)
	}
	if cfg.Ship.TurnRate != 3.8 {
		t.Errorf("unset keys should keep defaults, turn_rate = %v", cfg.Ship.TurnRate)
	}
}

func TestLoadCustomTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trench.toml")
	data := []byte("[pacing]\nforward_speed = 99.5\nobjective_section = 3\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTrench(path)
	if err != nil {
		t.Fatalf("LoadTrench() failed: %v", err)
	}
	if cfg.Pacing.ForwardSpeed != 99.5 || cfg.Pacing.ObjectiveSection != 3 {
		t.Errorf("pacing = %+v", cfg.Pacing)
	}
	if cfg.Corridor.Tolerance != 4 {
		t.Errorf("unset keys should keep defaults, tolerance = %v", cfg.Corridor.Tolerance)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadTrench(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("pacing: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTrench(path); err == nil {
		t.Error("malformed custom config should be an error")
	}
}

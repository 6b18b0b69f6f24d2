package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Tuning is the YAML-overridable subset of the configuration.
type Tuning struct {
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Level   LevelConfig   `yaml:"level"`
}

// Current returns the tuning values currently in effect.
func Current() Tuning {
	return Tuning{
		Physics: Physics,
		Player:  Player,
		Level:   Level,
	}
}

// Apply installs t as the values in effect.
func Apply(t Tuning) {
	Physics = t.Physics
	Player = t.Player
	Level = t.Level
}

// Load reads tuning overrides on top of the built-in values.
// Search order: customPath -> ~/.savetheworld/config.yaml -> ./config.yaml -> built-in
// Only an unreadable or invalid customPath is an error.
func Load(customPath string) (Tuning, error) {
	base := Current()

	if customPath != "" {
		return loadFile(base, customPath)
	}

	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if t, err := loadFile(base, userCfgPath); err == nil {
			return t, nil
		}
	}

	if t, err := loadFile(base, "config.yaml"); err == nil {
		return t, nil
	}

	return base, nil
}

func loadFile(base Tuning, path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	t := base
	if err := yaml.Unmarshal(data, &t); err != nil {
		return base, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return t, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".savetheworld", filename)
}

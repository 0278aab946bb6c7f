// Package config loads game settings from an optional YAML file and
// validates them before world construction.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ShomRinn/LabAdventures/pkg/engine/world"
	"github.com/ShomRinn/LabAdventures/pkg/game/generator"
)

// Settings holds every tunable of a game run. Flags override file
// values; file values override defaults.
type Settings struct {
	Width            int     `yaml:"width"`
	Height           int     `yaml:"height"`
	Floors           int     `yaml:"floors"`
	ViewRadius       int     `yaml:"view_radius"`
	SecretDoorChance float64 `yaml:"secret_door_chance"`

	// Seed selects the world RNG; 0 means time-based.
	Seed int64 `yaml:"seed"`

	LogFile string `yaml:"log_file"`
	Debug   bool   `yaml:"debug"`
}

// Default returns the settings used when nothing is configured.
func Default() Settings {
	return Settings{
		Width:            12,
		Height:           8,
		Floors:           3,
		ViewRadius:       world.DefaultViewRadius,
		SecretDoorChance: generator.DefaultSecretDoorChance,
	}
}

// Load reads a YAML settings file over the defaults.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return s, nil
}

// Validate rejects settings the world cannot be built from.
func (s Settings) Validate() error {
	if s.Width < 1 || s.Height < 1 {
		return fmt.Errorf("maze dimensions must be at least 1x1, got %dx%d", s.Width, s.Height)
	}
	if s.Floors < 1 {
		return fmt.Errorf("dungeon needs at least one floor, got %d", s.Floors)
	}
	if s.ViewRadius < 0 {
		return fmt.Errorf("view radius must not be negative, got %d", s.ViewRadius)
	}
	if s.SecretDoorChance < 0 || s.SecretDoorChance > 1 {
		return fmt.Errorf("secret door chance must be within [0,1], got %v", s.SecretDoorChance)
	}
	return nil
}

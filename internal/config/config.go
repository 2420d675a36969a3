// Package config provides YAML-based configuration loading and
// difficulty presets for the 2048 engine.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// T2048Config contains all configuration for the 2048 game.
type T2048Config struct {
	Board    T2048Board    `yaml:"board"`
	Mode     string        `yaml:"mode"` // "classic", "campaign" or "endless"
	Campaign T2048Campaign `yaml:"campaign"`
}

// T2048Board defines the board rules.
type T2048Board struct {
	Target            int     `yaml:"target"`             // Winning tile in classic mode
	Spawn4Probability float64 `yaml:"spawn4_probability"` // Chance of spawning a 4 instead of a 2
}

// T2048Campaign defines the campaign levels.
type T2048Campaign struct {
	StartLevel int          `yaml:"start_level"` // 1-indexed, 0 = first level
	Levels     []T2048Level `yaml:"levels"`
}

// T2048Level defines one campaign level.
type T2048Level struct {
	ID     int     `yaml:"id"`
	Name   string  `yaml:"name"`
	Target int     `yaml:"target"`
	Spawn4 float64 `yaml:"spawn4"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Spawn4ForPreset returns the spawn-4 probability for a difficulty preset.
func Spawn4ForPreset(preset DifficultyPreset) (float64, error) {
	switch preset {
	case DifficultyEasy:
		return 0.05, nil
	case DifficultyNormal, "":
		return 0.10, nil
	case DifficultyHard:
		return 0.25, nil
	default:
		return 0, fmt.Errorf("config: unknown difficulty %q", preset)
	}
}

// Validate checks the configuration for values the engine cannot play.
func (c T2048Config) Validate() error {
	if !isTargetValue(c.Board.Target) {
		return fmt.Errorf("%w: board.target %d is not a power of two >= 4", ErrInvalidConfig, c.Board.Target)
	}
	if c.Board.Spawn4Probability < 0 || c.Board.Spawn4Probability > 1 {
		return fmt.Errorf("%w: board.spawn4_probability %v outside [0,1]", ErrInvalidConfig, c.Board.Spawn4Probability)
	}
	switch c.Mode {
	case "", "classic", "campaign", "endless":
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, c.Mode)
	}

	if len(c.Campaign.Levels) == 0 {
		return fmt.Errorf("%w: campaign has no levels", ErrInvalidConfig)
	}
	if c.Campaign.StartLevel < 0 || c.Campaign.StartLevel > len(c.Campaign.Levels) {
		return fmt.Errorf("%w: campaign.start_level %d out of range", ErrInvalidConfig, c.Campaign.StartLevel)
	}
	for i, lvl := range c.Campaign.Levels {
		if !isTargetValue(lvl.Target) {
			return fmt.Errorf("%w: level %d target %d is not a power of two >= 4", ErrInvalidConfig, i+1, lvl.Target)
		}
		if lvl.Spawn4 < 0 || lvl.Spawn4 > 1 {
			return fmt.Errorf("%w: level %d spawn4 %v outside [0,1]", ErrInvalidConfig, i+1, lvl.Spawn4)
		}
	}
	return nil
}

// isTargetValue reports whether v is a reachable tile value.
func isTargetValue(v int) bool {
	return v >= 4 && v&(v-1) == 0
}

// Package t2048 implements the rule engine of the 2048 sliding-tile puzzle:
// line compaction and merging, direction normalisation, random spawning
// and terminal-state detection, plus a Session that accumulates score and
// campaign progress on top of the pure engine.
package t2048

import "github.com/vovakirdan/merge2048/internal/config"

// Level defines a campaign level with a target tile.
type Level struct {
	ID     int
	Name   string
	Target int     // Target tile value to reach
	Spawn4 float64 // Probability of spawning 4 instead of 2 (0.0-1.0)
}

// DefaultLevels returns the built-in ten-level campaign.
// Spawn4 probability increases to make later levels harder.
func DefaultLevels() []Level {
	return LevelsFromConfig(config.DefaultT2048Config().Campaign.Levels)
}

// LevelsFromConfig converts configured levels.
func LevelsFromConfig(levels []config.T2048Level) []Level {
	out := make([]Level, len(levels))
	for i, lvl := range levels {
		out[i] = Level{
			ID:     lvl.ID,
			Name:   lvl.Name,
			Target: lvl.Target,
			Spawn4: lvl.Spawn4,
		}
	}
	return out
}

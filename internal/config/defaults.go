package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultT2048YAML []byte

// DefaultT2048Config returns the default 2048 configuration.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		Board: T2048Board{
			Target:            2048,
			Spawn4Probability: 0.10,
		},
		Mode: "classic",
		Campaign: T2048Campaign{
			Levels: []T2048Level{
				{ID: 1, Name: "Warm-up", Target: 128, Spawn4: 0.10},
				{ID: 2, Name: "Getting Started", Target: 256, Spawn4: 0.10},
				{ID: 3, Name: "Building Momentum", Target: 512, Spawn4: 0.10},
				{ID: 4, Name: "The Climb", Target: 1024, Spawn4: 0.10},
				{ID: 5, Name: "Classic 2048", Target: 2048, Spawn4: 0.10},
				{ID: 6, Name: "Beyond Limits", Target: 4096, Spawn4: 0.12},
				{ID: 7, Name: "Master Class", Target: 8192, Spawn4: 0.15},
				{ID: 8, Name: "Expert Challenge", Target: 8192, Spawn4: 0.18},
				{ID: 9, Name: "Grandmaster", Target: 8192, Spawn4: 0.20},
				{ID: 10, Name: "Ultimate Champion", Target: 8192, Spawn4: 0.25},
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultT2048YAML
}

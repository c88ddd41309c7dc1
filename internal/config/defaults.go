package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultT2048YAML []byte

// DefaultT2048Config returns the default 2048 configuration.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		Board: BoardConfig{
			Dimension: 4,
			Threshold: 2048,
		},
		Spawn: SpawnConfig{
			InitialTiles:    2,
			InitialValue:    2,
			FourProbability: 0.10,
		},
		Queue: QueueConfig{
			Capacity:   100,
			DebounceMS: 300,
		},
		Animation: AnimationConfig{
			SlideTicks: 8, // ~133ms at 60fps
			PopTicks:   6, // ~100ms at 60fps
		},
	}
}

// Package config provides YAML-based configuration loading and difficulty
// presets for the 2048 game.
package config

import "time"

// Limits applied by Validate.
const (
	MinDimension = 2
	MaxDimension = 8 // larger boards no longer fit an 80x24 terminal
	MinThreshold = 8
)

// T2048Config contains all configuration for the 2048 game.
type T2048Config struct {
	Board     BoardConfig     `yaml:"board"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Queue     QueueConfig     `yaml:"queue"`
	Animation AnimationConfig `yaml:"animation"`
}

// BoardConfig defines the board size and the winning tile.
type BoardConfig struct {
	Dimension int `yaml:"dimension"`
	Threshold int `yaml:"threshold"`
}

// SpawnConfig defines how tiles enter the board.
type SpawnConfig struct {
	InitialTiles    int     `yaml:"initial_tiles"`
	InitialValue    int     `yaml:"initial_value"`
	FourProbability float64 `yaml:"four_probability"` // chance a follow-up tile is a 4
}

// QueueConfig defines the move queue limits.
type QueueConfig struct {
	Capacity   int `yaml:"capacity"`
	DebounceMS int `yaml:"debounce_ms"`
}

// Debounce returns the debounce window as a duration.
func (q QueueConfig) Debounce() time.Duration {
	return time.Duration(q.DebounceMS) * time.Millisecond
}

// AnimationConfig defines animation lengths in simulation ticks.
// Zero disables the phase.
type AnimationConfig struct {
	SlideTicks int `yaml:"slide_ticks"`
	PopTicks   int `yaml:"pop_ticks"`
}

// Validate clamps every field into its supported range.
func (c *T2048Config) Validate() {
	def := DefaultT2048Config()

	c.Board.Dimension = clamp(c.Board.Dimension, MinDimension, MaxDimension)
	c.Board.Threshold = max(c.Board.Threshold, MinThreshold)

	if c.Spawn.InitialValue <= 0 {
		c.Spawn.InitialValue = def.Spawn.InitialValue
	}
	c.Spawn.InitialTiles = clamp(c.Spawn.InitialTiles, 0, c.Board.Dimension*c.Board.Dimension)
	c.Spawn.FourProbability = clampF(c.Spawn.FourProbability, 0, 1)

	if c.Queue.Capacity <= 0 {
		c.Queue.Capacity = def.Queue.Capacity
	}
	if c.Queue.DebounceMS <= 0 {
		c.Queue.DebounceMS = def.Queue.DebounceMS
	}

	c.Animation.SlideTicks = max(c.Animation.SlideTicks, 0)
	c.Animation.PopTicks = max(c.Animation.PopTicks, 0)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the known presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func clampF(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}

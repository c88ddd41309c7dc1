package config

import (
	"fmt"
	"strings"
)

// ParsePreset parses a preset name. An empty name returns "" and no error,
// meaning the config is used as loaded.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return "", nil
	case "easy":
		return DifficultyEasy, nil
	case "normal":
		return DifficultyNormal, nil
	case "hard":
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ApplyT2048Preset modifies the config based on a difficulty preset.
// Easy spawns fewer fours and lets moves through faster; hard does the opposite
// and shrinks the queue so button mashing loses moves.
func ApplyT2048Preset(cfg *T2048Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Spawn.FourProbability = 0.05
		cfg.Queue.DebounceMS = 150
	case DifficultyNormal:
		cfg.Spawn.FourProbability = 0.10
		cfg.Queue.DebounceMS = 300
	case DifficultyHard:
		cfg.Spawn.FourProbability = 0.25
		cfg.Queue.DebounceMS = 400
		cfg.Queue.Capacity = 4
	}
}

// Describe returns a one-line summary for menus.
func (p DifficultyPreset) Describe() string {
	switch p {
	case DifficultyEasy:
		return "Fewer 4s, quick moves"
	case DifficultyNormal:
		return "Classic rules"
	case DifficultyHard:
		return "More 4s, short move queue"
	default:
		return "As configured"
	}
}

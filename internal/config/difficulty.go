package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the known presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: unknown preset %q (want easy, normal or hard)", ErrInvalidConfig, name)
}

// ApplyPreset modifies the config based on a difficulty preset.
// Easy starts with money in the bank and a busier lobby; hard starts broke
// with fewer customers. Normal leaves the config as loaded.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Economy.StartingTips = 100
		cfg.Building.ArrivalProbability = 0.6
	case DifficultyHard:
		cfg.Economy.StartingTips = 0
		cfg.Building.ArrivalProbability = 0.35
	}
}

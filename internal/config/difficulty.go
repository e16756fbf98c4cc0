package config

import (
	"fmt"
	"math"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParseDifficulty converts a flag value to a preset. The empty string means
// no preset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// LevelForPreset returns the difficulty level (0.0 to 1.0) of a preset.
func LevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset keeps the configured values.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyAsteroidsPreset scales the initial rock count and rock speed.
// Fixed and empty presets leave the config untouched.
func ApplyAsteroidsPreset(cfg *AsteroidsConfig, preset DifficultyPreset) {
	if preset == "" || IsFixedPreset(preset) {
		return
	}
	level := clampF(LevelForPreset(preset), 0.0, 1.0)
	cfg.Rocks.InitialCount += int(math.Round(level * float64(cfg.Difficulty.ExtraRocks)))
	cfg.Rocks.Speed *= 1.0 + level*cfg.Difficulty.SpeedMultiplier
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

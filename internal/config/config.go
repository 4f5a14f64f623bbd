// Package config provides YAML-based game configuration loading and
// difficulty management for 2048.
package config

// T2048Config contains all configuration for the 2048 game.
type T2048Config struct {
	Rules      T2048Rules       `yaml:"rules"`
	Assist     T2048Assist      `yaml:"assist"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// T2048Rules defines rule parameters for 2048.
type T2048Rules struct {
	Spawn4Probability float64 `yaml:"spawn4_probability"` // Chance of a new tile being 4 instead of 2
	Undo              bool    `yaml:"undo"`               // Whether rollback is allowed
}

// T2048Assist defines the move advisor settings.
type T2048Assist struct {
	AutoPlayEvery int  `yaml:"autoplay_every"` // Ticks between advisor moves in autoplay
	ShowHint      bool `yaml:"show_hint"`      // Show the advisor's suggestion under the board
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over the game.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "moves" or "none"
	MaxAt int    `yaml:"max_at"` // Score or move count at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	Spawn4Increase float64 `yaml:"spawn4_increase"` // Added to spawn4 probability at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Spawn4ForPreset returns the base spawn4 probability for a preset.
func Spawn4ForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.05
	case DifficultyHard:
		return 0.20
	default:
		return 0.10
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ValidPreset reports whether s names a known preset.
func ValidPreset(s string) bool {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return true
	}
	return false
}

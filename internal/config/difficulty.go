package config

import (
	"fmt"
	"math"
)

// Progression types.
const (
	ProgressionScore = "score" // Difficulty follows the merge score
	ProgressionMoves = "moves" // Difficulty follows the number of moves
	ProgressionNone  = "none"
)

// DifficultyManager raises the spawn-4 probability as a game goes on.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
// The initial level is clamped to [0, 1].
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != ProgressionNone
}

// Level returns the current difficulty level (0.0 to 1.0) for a game that
// has reached score after the given number of moves.
func (d *DifficultyManager) Level(score, moves int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case ProgressionScore:
		progress = float64(score)
	case ProgressionMoves:
		progress = float64(moves)
	default:
		return d.initialLevel
	}

	maxAt := float64(max(d.cfg.Progression.MaxAt, 1))
	progress = clampF(progress/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Spawn4Prob returns the spawn-4 probability for the given progress.
// It grows from base by up to Scaling.Spawn4Increase and never exceeds 1.
func (d *DifficultyManager) Spawn4Prob(base float64, score, moves int) float64 {
	level := d.Level(score, moves)
	return clampF(base+level*d.cfg.Scaling.Spawn4Increase, 0.0, 1.0)
}

// validateDifficulty checks the difficulty block of a config.
func validateDifficulty(cfg DifficultyConfig) error {
	switch cfg.Progression.Type {
	case ProgressionScore, ProgressionMoves, ProgressionNone, "":
	default:
		return fmt.Errorf("config: unknown progression type %q (want score, moves or none)", cfg.Progression.Type)
	}
	if cfg.InitialLevel < 0 || cfg.InitialLevel > 1 {
		return fmt.Errorf("config: initial_level %v out of range [0, 1]", cfg.InitialLevel)
	}
	if cfg.Scaling.Spawn4Increase < 0 {
		return fmt.Errorf("config: spawn4_increase must not be negative, got %v", cfg.Scaling.Spawn4Increase)
	}
	return nil
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}

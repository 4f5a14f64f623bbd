package config

import (
	"math"
	"testing"
)

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(DefaultT2048Config().Difficulty)
	if d.IsEnabled() {
		t.Fatal("default difficulty should be disabled")
	}
	if got := d.Spawn4Prob(0.1, 100000, 5000); got != 0.1 {
		t.Errorf("Spawn4Prob = %v, want base 0.1", got)
	}
}

func TestDifficultyProgression(t *testing.T) {
	tests := []struct {
		name  string
		typ   string
		score int
		moves int
		want  float64
	}{
		{"score start", ProgressionScore, 0, 400, 0.1},
		{"score half", ProgressionScore, 500, 0, 0.2},
		{"score max", ProgressionScore, 1000, 0, 0.3},
		{"score past max", ProgressionScore, 5000, 0, 0.3},
		{"moves start", ProgressionMoves, 900, 0, 0.1},
		{"moves half", ProgressionMoves, 0, 500, 0.2},
		{"moves past max", ProgressionMoves, 0, 2000, 0.3},
		{"unknown type", "time", 1000, 1000, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDifficultyManager(DifficultyConfig{
				Enabled:     true,
				Progression: ProgressionConfig{Type: tt.typ, MaxAt: 1000},
				Scaling:     ScalingConfig{Spawn4Increase: 0.2},
			})
			if got := d.Spawn4Prob(0.1, tt.score, tt.moves); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Spawn4Prob(0.1, %d, %d) = %v, want %v", tt.score, tt.moves, got, tt.want)
			}
		})
	}
}

func TestDifficultyInitialLevel(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: ProgressionScore, MaxAt: 100},
	})

	if got := d.Level(0, 0); got != 0.5 {
		t.Errorf("Level(0, 0) = %v, want 0.5", got)
	}
	if got := d.Level(50, 0); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("Level(50, 0) = %v, want 0.75", got)
	}
}

func TestDifficultyClamp(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 1,
		Progression:  ProgressionConfig{Type: ProgressionScore, MaxAt: 0},
		Scaling:      ScalingConfig{Spawn4Increase: 5},
	})
	if got := d.Spawn4Prob(0.5, 10, 0); got != 1 {
		t.Errorf("Spawn4Prob = %v, want clamp to 1", got)
	}

	low := NewDifficultyManager(DifficultyConfig{InitialLevel: -3})
	if got := low.Level(0, 0); got != 0 {
		t.Errorf("Level = %v, want initial level clamped to 0", got)
	}
}

func TestDifficultyNoneProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: ProgressionNone},
	})
	if d.IsEnabled() {
		t.Error("progression type none should disable the manager")
	}
}

func TestValidateDifficulty(t *testing.T) {
	tests := []struct {
		name    string
		cfg     DifficultyConfig
		wantErr bool
	}{
		{"defaults", DefaultT2048Config().Difficulty, false},
		{"moves", DifficultyConfig{Progression: ProgressionConfig{Type: ProgressionMoves}}, false},
		{"unknown type", DifficultyConfig{Progression: ProgressionConfig{Type: "time"}}, true},
		{"initial level too high", DifficultyConfig{InitialLevel: 1.5}, true},
		{"negative increase", DifficultyConfig{Scaling: ScalingConfig{Spawn4Increase: -0.1}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDifficulty(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateDifficulty() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

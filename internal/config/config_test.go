package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultMatchesEmbedded(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadT2048("")
	if err != nil {
		t.Fatalf("LoadT2048: %v", err)
	}
	if cfg != DefaultT2048Config() {
		t.Errorf("embedded config = %+v, want %+v", cfg, DefaultT2048Config())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("rules:\n  spawn4_probability: 0.25\n  undo: false\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadT2048(path)
	if err != nil {
		t.Fatalf("LoadT2048: %v", err)
	}
	if cfg.Rules.Spawn4Probability != 0.25 {
		t.Errorf("spawn4_probability = %v, want 0.25", cfg.Rules.Spawn4Probability)
	}
	if cfg.Rules.Undo {
		t.Error("undo should be disabled")
	}
	// Unset keys keep their defaults
	if cfg.Assist.AutoPlayEvery != DefaultT2048Config().Assist.AutoPlayEvery {
		t.Errorf("autoplay_every = %d, want default", cfg.Assist.AutoPlayEvery)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("rules: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	outOfRange := filepath.Join(dir, "range.yaml")
	if err := os.WriteFile(outOfRange, []byte("rules:\n  spawn4_probability: 1.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(dir, "missing.yaml")},
		{"malformed", bad},
		{"out of range", outOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadT2048(tt.path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadLocalConfigsDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	data := []byte("assist:\n  autoplay_every: 3\n")
	if err := os.WriteFile(filepath.Join("configs", ConfigFile), data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadT2048("")
	if err != nil {
		t.Fatalf("LoadT2048: %v", err)
	}
	if cfg.Assist.AutoPlayEvery != 3 {
		t.Errorf("autoplay_every = %d, want 3", cfg.Assist.AutoPlayEvery)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantEnabled bool
		wantSpawn4  float64
		wantUndo    bool
	}{
		{DifficultyEasy, true, 0.05, true},
		{DifficultyNormal, true, 0.10, true},
		{DifficultyHard, true, 0.20, false},
		{DifficultyFixed, false, 0.10, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultT2048Config()
			ApplyT2048Preset(&cfg, tt.preset)
			if cfg.Difficulty.Enabled != tt.wantEnabled {
				t.Errorf("Enabled = %v, want %v", cfg.Difficulty.Enabled, tt.wantEnabled)
			}
			if cfg.Rules.Spawn4Probability != tt.wantSpawn4 {
				t.Errorf("Spawn4Probability = %v, want %v", cfg.Rules.Spawn4Probability, tt.wantSpawn4)
			}
			if cfg.Rules.Undo != tt.wantUndo {
				t.Errorf("Undo = %v, want %v", cfg.Rules.Undo, tt.wantUndo)
			}
		})
	}
}

func TestValidPreset(t *testing.T) {
	for _, s := range []string{"easy", "normal", "hard", "fixed"} {
		if !ValidPreset(s) {
			t.Errorf("ValidPreset(%q) = false", s)
		}
	}
	if ValidPreset("nightmare") {
		t.Error("ValidPreset(nightmare) = true")
	}
}

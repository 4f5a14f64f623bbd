package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "t2048.yaml"

// LoadT2048 loads the 2048 configuration.
// Search order: customPath -> ~/.t2048/configs/t2048.yaml -> ./configs/t2048.yaml -> embedded default
func LoadT2048(customPath string) (T2048Config, error) {
	cfg := DefaultT2048Config()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, validate(cfg)
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if c, ok := readConfig(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := readConfig(filepath.Join("configs", ConfigFile)); ok {
		return c, nil
	}

	// Use embedded default YAML
	var embedded T2048Config
	if err := yaml.Unmarshal(defaultT2048YAML, &embedded); err != nil {
		return cfg, nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// readConfig parses a config file over the defaults.
// Missing, unreadable or invalid files report ok=false.
func readConfig(path string) (T2048Config, bool) {
	cfg := DefaultT2048Config()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if validate(cfg) != nil {
		return cfg, false
	}
	return cfg, true
}

// validate rejects values the engine cannot use.
func validate(cfg T2048Config) error {
	p := cfg.Rules.Spawn4Probability
	if p < 0 || p > 1 {
		return fmt.Errorf("config: spawn4_probability %v out of range [0, 1]", p)
	}
	if cfg.Assist.AutoPlayEvery < 1 {
		return fmt.Errorf("config: autoplay_every must be positive, got %d", cfg.Assist.AutoPlayEvery)
	}
	return validateDifficulty(cfg.Difficulty)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".t2048", "configs", filename)
}

// ApplyT2048Preset modifies the config based on a difficulty preset.
func ApplyT2048Preset(cfg *T2048Config, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	cfg.Rules.Spawn4Probability = Spawn4ForPreset(preset)

	// Adjust rules based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Rules.Undo = true
	case DifficultyHard:
		cfg.Rules.Undo = false
	}
}

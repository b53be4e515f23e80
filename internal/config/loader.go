package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadChase loads maze chase configuration.
// Search order: customPath -> ~/.mazechase/configs/chase.yaml -> ./configs/chase.yaml -> embedded default.
// Only a custom path reports read or parse errors; a broken user or local file
// is skipped.
func LoadChase(customPath string) (ChaseConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultChaseConfig(), fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := decodeChase(data)
		if err != nil {
			return DefaultChaseConfig(), fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, p := range []string{userConfigPath("chase.yaml"), filepath.Join("configs", "chase.yaml")} {
		if p == "" {
			continue
		}
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if cfg, err := decodeChase(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := decodeChase(defaultChaseYAML); err == nil {
		return cfg, nil
	}
	return DefaultChaseConfig(), nil // Fallback to hardcoded if embed fails
}

// decodeChase overlays YAML onto the hardcoded defaults, so a file only
// needs the keys it changes.
func decodeChase(data []byte) (ChaseConfig, error) {
	cfg := DefaultChaseConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ChaseConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mazechase", "configs", filename)
}

// ApplyChasePreset modifies the config based on a difficulty preset.
func ApplyChasePreset(cfg *ChaseConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Ghosts.Speed = 3.0
		cfg.Ghosts.ProximityRange = 3
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Ghosts.Speed = 4.2
		cfg.Ghosts.ProximityRange = 6
	}
}

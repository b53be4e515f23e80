// Package config provides YAML-based game configuration loading and
// difficulty management for maze chase.
package config

import "time"

// ChaseConfig contains all configuration for the maze chase game.
type ChaseConfig struct {
	Gameplay   ChaseGameplay    `yaml:"gameplay"`
	Ghosts     ChaseGhosts      `yaml:"ghosts"`
	PowerUps   ChasePowerUps    `yaml:"powerups"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ChaseGameplay defines player and scoring parameters.
type ChaseGameplay struct {
	Lives       int           `yaml:"lives"`
	PlayerSpeed float64       `yaml:"player_speed"` // Cells per second
	ComboWindow time.Duration `yaml:"combo_window"`
	HitGrace    time.Duration `yaml:"hit_grace"` // Ghost contact is ignored this long after a hit
}

// ChaseGhosts defines ghost behaviour parameters.
type ChaseGhosts struct {
	Speed          float64       `yaml:"speed"` // Cells per second at difficulty 0
	ProximityRange int           `yaml:"proximity_range"`
	ChaseDuration  time.Duration `yaml:"chase_duration"`
	ChaseCooldown  time.Duration `yaml:"chase_cooldown"`
	LookAhead      int           `yaml:"look_ahead"`
	AlertRange     int           `yaml:"alert_range"`
	AlertCooldown  time.Duration `yaml:"alert_cooldown"`
}

// ChasePowerUps defines power-up spawning.
type ChasePowerUps struct {
	SpawnChance float64 `yaml:"spawn_chance"`
	MaxPerLevel int     `yaml:"max_per_level"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over the run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level" or "none"
	MaxAt int    `yaml:"max_at"` // Level number at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to ghost speed at max difficulty
	AlertRangeBonus int     `yaml:"alert_range_bonus"`
	LookAheadBonus  int     `yaml:"look_ahead_bonus"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value onto a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

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

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

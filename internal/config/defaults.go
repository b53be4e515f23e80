package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/chase.yaml
var defaultChaseYAML []byte

// DefaultChaseConfig returns the default maze chase configuration.
func DefaultChaseConfig() ChaseConfig {
	return ChaseConfig{
		Gameplay: ChaseGameplay{
			Lives:       3,
			PlayerSpeed: 5.0,
			ComboWindow: 1500 * time.Millisecond,
			HitGrace:    1500 * time.Millisecond,
		},
		Ghosts: ChaseGhosts{
			Speed:          3.5,
			ProximityRange: 4,
			ChaseDuration:  4 * time.Second,
			ChaseCooldown:  3 * time.Second,
			LookAhead:      4,
			AlertRange:     3,
			AlertCooldown:  2000 * time.Millisecond,
		},
		PowerUps: ChasePowerUps{
			SpawnChance: 0.25,
			MaxPerLevel: 3,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.4,
				AlertRangeBonus: 2,
				LookAheadBonus:  2,
			},
		},
	}
}

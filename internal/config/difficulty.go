package config

import "math"

// DifficultyManager calculates ghost parameters for a level number.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty (0.0 to 1.0) for a level number, starting at 1.
func (d *DifficultyManager) Level(levelNumber int) float64 {
	if !d.IsEnabled() || d.cfg.Progression.Type != "level" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt - 1)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := clampF(float64(levelNumber-1)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the ghost speed for a level.
func (d *DifficultyManager) Speed(baseSpeed float64, levelNumber int) float64 {
	level := d.Level(levelNumber)
	// Speed increases from base to base * (1 + speedMultiplier)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// AlertRange returns the ghost alert radius for a level.
func (d *DifficultyManager) AlertRange(base, levelNumber int) int {
	return base + int(math.Round(d.Level(levelNumber)*float64(d.cfg.Scaling.AlertRangeBonus)))
}

// LookAhead returns how far predictive ghosts project for a level.
func (d *DifficultyManager) LookAhead(base, levelNumber int) int {
	return base + int(math.Round(d.Level(levelNumber)*float64(d.cfg.Scaling.LookAheadBonus)))
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}

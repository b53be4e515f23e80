// Package effects simulates the transient visual feedback of the chase game:
// particles, confetti, trails, floating text, screen shake and level
// transitions. Everything here is purely visual and never feeds back into
// gameplay. Create and update functions are pure; Draw functions render into
// a core.Screen.
//
// Positions are in units, UnitsPerCell to a maze cell. Kinematic constants are
// per reference step (1/60 s) and are scaled by dt/Step, so the integration
// stays consistent at other tick rates.
package effects

import (
	"math"
	"time"
)

// Step is the reference tick the per-step constants are defined at.
const Step = time.Second / 60

// UnitsPerCell is the size of one maze cell in effect units.
const UnitsPerCell = 16.0

// scale returns how many reference steps dt covers.
func scale(dt time.Duration) float64 {
	if dt <= 0 {
		return 0
	}
	return float64(dt) / float64(Step)
}

// decay applies a per-step multiplicative factor over k steps.
func decay(v, factor, k float64) float64 {
	if k == 1 {
		return v * factor
	}
	return v * math.Pow(factor, k)
}

// drain subtracts a per-step amount over k steps, clamped at zero.
func drain(life, perStep, k float64) float64 {
	return math.Max(0, life-perStep*k)
}

// CellCenter returns the unit position of the middle of cell (x, y).
func CellCenter(x, y float64) (float64, float64) {
	return (x + 0.5) * UnitsPerCell, (y + 0.5) * UnitsPerCell
}

// Package combo implements the collection streak and the scoring rules
// derived from it.
package combo

import (
	"math"
	"time"
)

// DefaultWindow is the longest gap between two collections that keeps a streak.
const DefaultWindow = 1500 * time.Millisecond

// Base point values.
const (
	FoodPoints    = 10
	PowerUpPoints = 50
	GhostPoints   = 200
)

// Tracker counts consecutive collections. Its only state is the count and
// the time of the last collection; everything else is derived.
type Tracker struct {
	Window time.Duration

	count int
	last  time.Duration
}

// NewTracker creates a tracker with the given window. Zero means DefaultWindow.
func NewTracker(window time.Duration) *Tracker {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Tracker{Window: window}
}

// Collect registers a qualifying collection at now and returns the new count.
// The streak continues when the gap since the last collection is within the
// window, otherwise it restarts at 1.
func (t *Tracker) Collect(now time.Duration) int {
	if t.count > 0 && now-t.last <= t.Window {
		t.count++
	} else {
		t.count = 1
	}
	t.last = now
	return t.count
}

// Count returns the streak as seen at now. A lapsed streak reads as 1.
func (t *Tracker) Count(now time.Duration) int {
	if t.count == 0 || now-t.last > t.Window {
		return 1
	}
	return t.count
}

// Deadline returns the time after which the current streak lapses.
func (t *Tracker) Deadline() time.Duration {
	return t.last + t.Window
}

// Reset drops the streak, as after losing a life.
func (t *Tracker) Reset() {
	t.count = 0
	t.last = 0
}

// Tier is the feedback level of a streak.
type Tier uint8

const (
	Normal Tier = iota
	Good
	Rare
	Epic
	Legendary
)

// TierFor maps a combo count to its tier. Thresholds are 5, 10, 15 and 20.
func TierFor(count int) Tier {
	switch {
	case count >= 20:
		return Legendary
	case count >= 15:
		return Epic
	case count >= 10:
		return Rare
	case count >= 5:
		return Good
	default:
		return Normal
	}
}

// String returns the tier identifier.
func (t Tier) String() string {
	switch t {
	case Good:
		return "good"
	case Rare:
		return "rare"
	case Epic:
		return "epic"
	case Legendary:
		return "legendary"
	default:
		return "normal"
	}
}

// Label is the callout shown for the tier.
func (t Tier) Label() string {
	switch t {
	case Good:
		return "GREAT!"
	case Rare:
		return "AWESOME!"
	case Epic:
		return "EPIC!"
	case Legendary:
		return "LEGENDARY!"
	default:
		return "COMBO!"
	}
}

// Multiplier is the score factor for the tier: 1 for normal up to 5.
func (t Tier) Multiplier() int {
	return int(t) + 1
}

// Award returns the points for a collection worth base at the given combo
// count, with scoreMul from an active score modifier (1 when none).
func Award(base, count int, scoreMul float64) int {
	if scoreMul <= 0 {
		scoreMul = 1
	}
	return int(math.Round(float64(base*TierFor(count).Multiplier()) * scoreMul))
}

// Stars rates a level score: one star per started thousand, at most three.
func Stars(score int) int {
	if score <= 0 {
		return 0
	}
	return min(3, (score+999)/1000)
}

// TimeBonus rewards quick clears: 1000 points minus 10 per second, never negative.
func TimeBonus(elapsed time.Duration) int {
	return max(0, 1000-int(elapsed.Seconds()*10))
}

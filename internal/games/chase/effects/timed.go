package effects

import (
	"math/rand"
	"time"
)

// Shake is a time-boxed screen shake. Start is simulation time.
type Shake struct {
	Intensity float64
	Duration  time.Duration
	Start     time.Duration
}

// Default shake on a hit.
const (
	DefaultShakeIntensity = 10.0
	DefaultShakeDuration  = 300 * time.Millisecond
)

// NewShake starts a shake at now. Zero values fall back to the defaults.
func NewShake(now time.Duration, intensity float64, duration time.Duration) Shake {
	if intensity <= 0 {
		intensity = DefaultShakeIntensity
	}
	if duration <= 0 {
		duration = DefaultShakeDuration
	}
	return Shake{Intensity: intensity, Duration: duration, Start: now}
}

// Magnitude returns the current shake strength, decaying linearly to zero.
// It reports false once the duration has elapsed.
func (s Shake) Magnitude(now time.Duration) (float64, bool) {
	elapsed := now - s.Start
	if elapsed > s.Duration || elapsed < 0 {
		return 0, false
	}
	progress := 1 - float64(elapsed)/float64(s.Duration)
	return s.Intensity * progress, true
}

// Offset returns a random displacement within the current magnitude.
func (s Shake) Offset(now time.Duration, rng *rand.Rand) (dx, dy float64, ok bool) {
	m, ok := s.Magnitude(now)
	if !ok {
		return 0, 0, false
	}
	dx = (rng.Float64() - 0.5) * m * 2
	dy = (rng.Float64() - 0.5) * m * 2
	return dx, dy, true
}

// TransitionKind is the fade direction.
type TransitionKind uint8

const (
	// TransitionIn fades from opaque to clear (level start).
	TransitionIn TransitionKind = iota
	// TransitionOut fades from clear to opaque (level end).
	TransitionOut
)

// DefaultTransitionDuration is the level fade length.
const DefaultTransitionDuration = 500 * time.Millisecond

// Transition is a full-screen level fade. Progress is the cover opacity.
type Transition struct {
	Kind     TransitionKind
	Start    time.Duration
	Duration time.Duration
	Progress float64
	Active   bool
}

// NewTransition starts a fade at now.
func NewTransition(kind TransitionKind, now, duration time.Duration) Transition {
	if duration <= 0 {
		duration = DefaultTransitionDuration
	}
	p := 0.0
	if kind == TransitionIn {
		p = 1
	}
	return Transition{Kind: kind, Start: now, Duration: duration, Progress: p, Active: true}
}

// UpdateTransition recomputes progress for time now.
func UpdateTransition(t Transition, now time.Duration) Transition {
	p := float64(now-t.Start) / float64(t.Duration)
	p = min(1, max(0, p))
	if t.Kind == TransitionIn {
		t.Progress = 1 - p
	} else {
		t.Progress = p
	}
	t.Active = p < 1
	return t
}

// Visible reports whether the fade still covers the screen. A finished
// fade-out stays drawn as a full cover until replaced.
func (t Transition) Visible() bool {
	return t.Active || t.Kind == TransitionOut
}

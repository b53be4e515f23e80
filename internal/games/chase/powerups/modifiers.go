package powerups

import "time"

// Active is one running modifier.
type Active struct {
	Type    Type
	Expires time.Duration
}

// Modifiers is the player's set of timed modifiers, at most one per type.
// All times are simulation time.
type Modifiers struct {
	expires map[Type]time.Duration
}

// NewModifiers creates an empty set.
func NewModifiers() *Modifiers {
	return &Modifiers{expires: make(map[Type]time.Duration)}
}

// Activate starts or restarts the modifier for t, expiring at
// now + its duration. Re-activation replaces the expiry.
func (m *Modifiers) Activate(t Type, now time.Duration) time.Duration {
	if m.expires == nil {
		m.expires = make(map[Type]time.Duration)
	}
	at := now + Lookup(t).Duration
	m.expires[t] = at
	return at
}

// Has reports whether t is active at now.
func (m *Modifiers) Has(t Type, now time.Duration) bool {
	at, ok := m.expires[t]
	return ok && now < at
}

// Remaining returns the time left on t, or zero.
func (m *Modifiers) Remaining(t Type, now time.Duration) time.Duration {
	if !m.Has(t, now) {
		return 0
	}
	return m.expires[t] - now
}

// Expire removes every modifier whose expiry is at or before now and
// returns their types in Types order.
func (m *Modifiers) Expire(now time.Duration) []Type {
	var out []Type
	for _, t := range Types {
		if at, ok := m.expires[t]; ok && now >= at {
			delete(m.expires, t)
			out = append(out, t)
		}
	}
	return out
}

// List returns the active modifiers in Types order.
func (m *Modifiers) List() []Active {
	var out []Active
	for _, t := range Types {
		if at, ok := m.expires[t]; ok {
			out = append(out, Active{Type: t, Expires: at})
		}
	}
	return out
}

// Len returns the number of held modifiers.
func (m *Modifiers) Len() int {
	return len(m.expires)
}

// Clear removes every modifier.
func (m *Modifiers) Clear() {
	clear(m.expires)
}

// Effect merges the active modifiers at now. Multipliers default to 1.
func (m *Modifiers) Effect(now time.Duration) Effect {
	e := Effect{SpeedMultiplier: 1, ScoreMultiplier: 1}
	for _, t := range Types {
		if !m.Has(t, now) {
			continue
		}
		d := ApplyEffect(t)
		if d.SpeedMultiplier > 0 {
			e.SpeedMultiplier = d.SpeedMultiplier
		}
		if d.ScoreMultiplier > 0 {
			e.ScoreMultiplier = d.ScoreMultiplier
		}
		e.Invincible = e.Invincible || d.Invincible
		e.FreezeEnemies = e.FreezeEnemies || d.FreezeEnemies
	}
	return e
}

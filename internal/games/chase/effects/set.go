package effects

import "time"

// Set is the arena of live effects for one level attempt.
type Set struct {
	Particles  []Particle
	Confetti   []Confetti
	Trails     []Trail
	Texts      []FloatingText
	Shake      *Shake
	Transition *Transition
}

// Update advances every effect by dt, with now as the current simulation
// time. Expired shakes are dropped; a finished fade-in is dropped, a
// finished fade-out stays as a cover.
func (s *Set) Update(dt, now time.Duration) {
	s.Particles = UpdateParticles(s.Particles, dt)
	s.Confetti = UpdateConfetti(s.Confetti, dt)
	s.Trails = UpdateTrails(s.Trails, dt)
	s.Texts = UpdateFloatingTexts(s.Texts, dt)

	if s.Shake != nil {
		if _, ok := s.Shake.Magnitude(now); !ok {
			s.Shake = nil
		}
	}
	if s.Transition != nil {
		t := UpdateTransition(*s.Transition, now)
		if t.Visible() {
			s.Transition = &t
		} else {
			s.Transition = nil
		}
	}
}

// Clear drops every effect.
func (s *Set) Clear() {
	*s = Set{}
}

// Len counts live particle-like entities.
func (s *Set) Len() int {
	return len(s.Particles) + len(s.Confetti) + len(s.Trails) + len(s.Texts)
}

// Clone returns a deep copy.
func (s *Set) Clone() Set {
	c := Set{
		Particles: append([]Particle(nil), s.Particles...),
		Confetti:  append([]Confetti(nil), s.Confetti...),
		Trails:    append([]Trail(nil), s.Trails...),
		Texts:     append([]FloatingText(nil), s.Texts...),
	}
	if s.Shake != nil {
		sh := *s.Shake
		c.Shake = &sh
	}
	if s.Transition != nil {
		tr := *s.Transition
		c.Transition = &tr
	}
	return c
}

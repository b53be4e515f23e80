package effects

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/maze-chase/internal/core"
)

// Shape selects how a particle is drawn.
type Shape uint8

const (
	ShapeCircle Shape = iota
	ShapeStar
	ShapeSparkle
)

// Particle is a burst fragment: food pickups, hits, ghost kills.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64
	Size   float64
	Color  core.Color
	Shape  Shape
}

// Particle kinematics, per reference step.
const (
	particleFriction = 0.95
	particleLifeStep = 0.025
	particleShrink   = 0.97
	particleMinSize  = 0.5
)

// NewParticles creates count particles bursting from (x, y) in random
// directions at speed 2..8 with size 2..6.
func NewParticles(rng *rand.Rand, x, y float64, c core.Color, count int, shape Shape) []Particle {
	ps := make([]Particle, 0, count)
	for range count {
		angle := rng.Float64() * math.Pi * 2
		speed := 2 + rng.Float64()*6
		ps = append(ps, Particle{
			X:     x,
			Y:     y,
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle) * speed,
			Life:  1,
			Size:  2 + rng.Float64()*4,
			Color: c,
			Shape: shape,
		})
	}
	return ps
}

// UpdateParticles advances particles by dt and drops the dead ones:
// life at zero or size below the visible threshold.
func UpdateParticles(ps []Particle, dt time.Duration) []Particle {
	k := scale(dt)
	out := ps[:0:0]
	for _, p := range ps {
		p.X += p.VX * k
		p.Y += p.VY * k
		p.VX = decay(p.VX, particleFriction, k)
		p.VY = decay(p.VY, particleFriction, k)
		p.Life = drain(p.Life, particleLifeStep, k)
		p.Size = decay(p.Size, particleShrink, k)
		if p.Life > 0 && p.Size > particleMinSize {
			out = append(out, p)
		}
	}
	return out
}

// Confetti is a tumbling paper strip for celebrations.
type Confetti struct {
	X, Y          float64
	VX, VY        float64
	Size          float64
	Rotation      float64
	RotationSpeed float64
	Life          float64
	Color         core.Color
}

// Confetti kinematics, per reference step.
const (
	confettiGravity  = 0.2
	confettiDrag     = 0.99
	confettiLifeStep = 0.015
)

// ConfettiColors is the celebration palette.
var ConfettiColors = []core.Color{
	core.ColorGold,
	core.ColorOrange,
	core.ColorGreen,
	core.ColorBlue,
	core.ColorPink,
	core.ColorPurple,
}

// NewConfetti creates a burst of count strips thrown up from (x, y).
func NewConfetti(rng *rand.Rand, x, y float64, count int) []Confetti {
	cs := make([]Confetti, 0, count)
	for range count {
		angle := rng.Float64() * math.Pi * 2
		speed := 3 + rng.Float64()*8
		cs = append(cs, Confetti{
			X:             x,
			Y:             y,
			VX:            math.Cos(angle) * speed,
			VY:            math.Sin(angle)*speed - 5,
			Size:          4 + rng.Float64()*6,
			Rotation:      rng.Float64() * math.Pi * 2,
			RotationSpeed: (rng.Float64() - 0.5) * 0.3,
			Life:          1,
			Color:         ConfettiColors[rng.Intn(len(ConfettiColors))],
		})
	}
	return cs
}

// UpdateConfetti applies gravity, air drag and spin, and drops expired strips.
func UpdateConfetti(cs []Confetti, dt time.Duration) []Confetti {
	k := scale(dt)
	out := cs[:0:0]
	for _, c := range cs {
		c.X += c.VX * k
		c.Y += c.VY * k
		c.VY += confettiGravity * k
		c.VX = decay(c.VX, confettiDrag, k)
		c.Rotation += c.RotationSpeed * k
		c.Life = drain(c.Life, confettiLifeStep, k)
		if c.Life > 0 {
			out = append(out, c)
		}
	}
	return out
}

// Trail is a stationary fading ghost image left behind a moving entity.
type Trail struct {
	X, Y  float64
	Life  float64
	Size  float64
	Color core.Color
}

const (
	trailLifeStep = 0.05
	trailShrink   = 0.95
)

// NewTrail creates a trail mark at (x, y).
func NewTrail(x, y float64, c core.Color, size float64) Trail {
	return Trail{X: x, Y: y, Life: 1, Size: size, Color: c}
}

// UpdateTrails fades trails and drops the expired ones.
func UpdateTrails(ts []Trail, dt time.Duration) []Trail {
	k := scale(dt)
	out := ts[:0:0]
	for _, t := range ts {
		t.Life = drain(t.Life, trailLifeStep, k)
		t.Size = decay(t.Size, trailShrink, k)
		if t.Life > 0 {
			out = append(out, t)
		}
	}
	return out
}

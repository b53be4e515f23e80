package effects

import (
	"time"

	"github.com/vovakirdan/maze-chase/internal/core"
)

// FloatingText is a score or combo label drifting upward as it fades.
type FloatingText struct {
	X, Y  float64
	VY    float64
	Life  float64
	Text  string
	Color core.Color
}

const (
	textRise     = -2.0
	textDrag     = 0.98
	textLifeStep = 0.02
)

// NewFloatingText creates a label at (x, y). A zero color means gold.
func NewFloatingText(x, y float64, text string, c core.Color) FloatingText {
	if c == core.ColorDefault {
		c = core.ColorGold
	}
	return FloatingText{X: x, Y: y, VY: textRise, Life: 1, Text: text, Color: c}
}

// UpdateFloatingTexts drifts the labels up with decelerating speed.
func UpdateFloatingTexts(ts []FloatingText, dt time.Duration) []FloatingText {
	k := scale(dt)
	out := ts[:0:0]
	for _, t := range ts {
		t.Y += t.VY * k
		t.VY = decay(t.VY, textDrag, k)
		t.Life = drain(t.Life, textLifeStep, k)
		if t.Life > 0 {
			out = append(out, t)
		}
	}
	return out
}

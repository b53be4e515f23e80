package effects

import (
	"math"
	"math/rand"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/maze-chase/internal/core"
)

// Viewport maps effect units onto screen cells.
type Viewport struct {
	OriginX, OriginY int // Screen position of maze cell (0,0)
	CellW, CellH     int // Screen characters per maze cell
}

// Project converts a unit position to a screen position.
func (v Viewport) Project(x, y float64) (int, int) {
	sx := v.OriginX + int(math.Floor(x/UnitsPerCell*float64(v.CellW)))
	sy := v.OriginY + int(math.Floor(y/UnitsPerCell*float64(v.CellH)))
	return sx, sy
}

// fade dims colors near the end of their life.
func fade(c core.Color, life float64) core.Color {
	if life < 0.25 {
		return core.ColorGray
	}
	return c
}

// DrawTrails draws trails as shaded blocks that thin out as they fade.
func DrawTrails(dst *core.Screen, v Viewport, ts []Trail) {
	for _, t := range ts {
		x, y := v.Project(t.X, t.Y)
		r := '░'
		if t.Life > 0.6 {
			r = '▒'
		}
		dst.SetColor(x, y, r, fade(t.Color, t.Life))
	}
}

// DrawParticles draws particles by shape and size.
func DrawParticles(dst *core.Screen, v Viewport, ps []Particle) {
	for _, p := range ps {
		x, y := v.Project(p.X, p.Y)
		var r rune
		switch p.Shape {
		case ShapeStar:
			r = '*'
		case ShapeSparkle:
			r = '+'
			if p.Size > 3 {
				r = '✦'
			}
		default:
			r = '·'
			if p.Size > 3 {
				r = '•'
			}
		}
		dst.SetColor(x, y, r, fade(p.Color, p.Life))
	}
}

var confettiGlyphs = [4]rune{'-', '\\', '|', '/'}

// DrawConfetti picks a strip glyph from each piece's rotation.
func DrawConfetti(dst *core.Screen, v Viewport, cs []Confetti) {
	for _, c := range cs {
		x, y := v.Project(c.X, c.Y)
		turn := math.Mod(c.Rotation, math.Pi)
		if turn < 0 {
			turn += math.Pi
		}
		i := int(turn/(math.Pi/4)) % len(confettiGlyphs)
		dst.SetColor(x, y, confettiGlyphs[i], fade(c.Color, c.Life))
	}
}

// DrawFloatingTexts draws labels centered on their position.
func DrawFloatingTexts(dst *core.Screen, v Viewport, ts []FloatingText) {
	for _, t := range ts {
		x, y := v.Project(t.X, t.Y)
		x -= utf8.RuneCountInString(t.Text) / 2
		dst.DrawTextColor(x, y, t.Text, fade(t.Color, t.Life))
	}
}

var shadeGlyphs = []rune{'░', '▒', '▓', '█'}

// DrawTransition covers area with a shade matching the fade progress.
func DrawTransition(dst *core.Screen, area core.Rect, t Transition) {
	if t.Progress <= 0.05 {
		return
	}
	i := min(int(t.Progress*float64(len(shadeGlyphs))), len(shadeGlyphs)-1)
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			dst.SetColor(x, y, shadeGlyphs[i], core.ColorGray)
		}
	}
}

// ApplyShake shifts the screen origin by the shake offset, converted from
// units to whole cells. It reports whether a shake is active.
func ApplyShake(dst *core.Screen, v Viewport, s *Shake, now time.Duration, rng *rand.Rand) bool {
	if s == nil {
		return false
	}
	dx, dy, ok := s.Offset(now, rng)
	if !ok {
		return false
	}
	sx := int(math.Round(dx / UnitsPerCell * float64(v.CellW)))
	sy := int(math.Round(dy / UnitsPerCell * float64(v.CellH)))
	dst.SetOffset(sx, sy)
	return true
}

// Draw renders the whole set in back-to-front order. The transition cover
// is left to the caller so it can sit above the HUD.
func (s *Set) Draw(dst *core.Screen, v Viewport) {
	DrawTrails(dst, v, s.Trails)
	DrawParticles(dst, v, s.Particles)
	DrawConfetti(dst, v, s.Confetti)
	DrawFloatingTexts(dst, v, s.Texts)
}

package effects

import (
	"math"
	"time"

	"github.com/vovakirdan/maze-chase/internal/core"
)

// ComboColors goes from gold to red as a combo grows.
var ComboColors = []core.Color{
	core.ColorGold,
	core.ColorOrange,
	core.ColorBrightRed,
	core.ColorRed,
	core.ColorMagenta,
}

// ComboColor returns the label color for a combo count.
func ComboColor(count int) core.Color {
	i := min(count-1, len(ComboColors)-1)
	return ComboColors[max(0, i)]
}

// RainbowColor cycles the hue once every 7.2 seconds of simulation time.
func RainbowColor(now time.Duration) core.Color {
	ms := float64(now.Milliseconds())
	return core.HSVHue(math.Mod(ms/20, 360))
}

// Pulse returns a 0..1 sine wave at freq Hz.
func Pulse(now time.Duration, freq float64) float64 {
	if freq <= 0 {
		freq = 1
	}
	ms := float64(now.Milliseconds())
	return (math.Sin(ms/(1000/freq)) + 1) / 2
}

// AuraRadius pulses a base radius between 80% and 120% at 2 Hz.
func AuraRadius(base float64, now time.Duration) float64 {
	return base * (0.8 + Pulse(now, 2)*0.4)
}

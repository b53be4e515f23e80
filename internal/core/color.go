package core

// Color represents a foreground color for a screen cell.
// Values map onto ANSI 256-color codes in the platform renderer.
type Color uint8

// Palette used by the maze, entities and effects.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorGold
	ColorPink
	ColorPurple
)

// HSVHue maps a hue in degrees onto the nearest palette color.
// Used for rainbow cycling where a true-color terminal is not assumed.
func HSVHue(deg float64) Color {
	for deg < 0 {
		deg += 360
	}
	for deg >= 360 {
		deg -= 360
	}
	switch {
	case deg < 30:
		return ColorBrightRed
	case deg < 60:
		return ColorOrange
	case deg < 90:
		return ColorBrightYellow
	case deg < 150:
		return ColorBrightGreen
	case deg < 210:
		return ColorBrightCyan
	case deg < 270:
		return ColorBrightBlue
	case deg < 330:
		return ColorBrightMagenta
	default:
		return ColorPink
	}
}

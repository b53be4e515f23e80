package levels

import "github.com/vovakirdan/maze-chase/internal/core"

// Theme is the palette a level is drawn with.
type Theme struct {
	Name   string
	Wall   core.Color
	Food   core.Color
	Goal   core.Color
	Player core.Color
	Accent core.Color // HUD titles and borders
}

// ThemeNames lists the built-in themes in the order generated levels use them.
var ThemeNames = []string{"classic", "forest", "neon", "lava", "ice"}

var themes = map[string]Theme{
	"classic": {Name: "classic", Wall: core.ColorBlue, Food: core.ColorWhite, Goal: core.ColorBrightGreen, Player: core.ColorBrightYellow, Accent: core.ColorCyan},
	"forest":  {Name: "forest", Wall: core.ColorGreen, Food: core.ColorBrightYellow, Goal: core.ColorGold, Player: core.ColorBrightWhite, Accent: core.ColorBrightGreen},
	"neon":    {Name: "neon", Wall: core.ColorBrightMagenta, Food: core.ColorBrightCyan, Goal: core.ColorBrightGreen, Player: core.ColorBrightYellow, Accent: core.ColorPink},
	"lava":    {Name: "lava", Wall: core.ColorRed, Food: core.ColorOrange, Goal: core.ColorBrightYellow, Player: core.ColorBrightWhite, Accent: core.ColorBrightRed},
	"ice":     {Name: "ice", Wall: core.ColorBrightBlue, Food: core.ColorBrightWhite, Goal: core.ColorBrightCyan, Player: core.ColorGold, Accent: core.ColorCyan},
}

// ThemeFor returns the named theme, falling back to classic.
func ThemeFor(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["classic"]
}

// Package powerups places power-ups in a maze, detects pickups and tracks
// the timed modifiers they grant.
package powerups

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/maze"
)

// Type is the kind of power-up.
type Type uint8

const (
	Speed Type = iota
	Invincible
	Freeze
	Multiplier
)

// Types lists every power-up type in a fixed order.
var Types = []Type{Speed, Invincible, Freeze, Multiplier}

// String returns the lower-case identifier.
func (t Type) String() string {
	switch t {
	case Speed:
		return "speed"
	case Invincible:
		return "invincible"
	case Freeze:
		return "freeze"
	case Multiplier:
		return "multiplier"
	default:
		return "unknown"
	}
}

// Info is the static configuration of a power-up type.
type Info struct {
	Type        Type
	Name        string
	Description string
	Emoji       string
	Glyph       rune // Single-width map glyph
	Color       core.Color
	Duration    time.Duration
}

var table = map[Type]Info{
	Speed: {
		Type: Speed, Name: "Speed Boost", Description: "Move 2x faster!",
		Emoji: "⚡", Glyph: '»', Color: core.ColorBrightYellow, Duration: 8 * time.Second,
	},
	Invincible: {
		Type: Invincible, Name: "Invincibility", Description: "Ghosts cannot hurt you!",
		Emoji: "⭐", Glyph: '★', Color: core.ColorGold, Duration: 10 * time.Second,
	},
	Freeze: {
		Type: Freeze, Name: "Ghost Freeze", Description: "Freeze all ghosts!",
		Emoji: "❄️", Glyph: '❄', Color: core.ColorBrightCyan, Duration: 5 * time.Second,
	},
	Multiplier: {
		Type: Multiplier, Name: "Score Multiplier", Description: "2x points for everything!",
		Emoji: "💰", Glyph: '$', Color: core.ColorBrightMagenta, Duration: 15 * time.Second,
	},
}

// Lookup returns the static configuration for t.
func Lookup(t Type) Info {
	return table[t]
}

// Instance is a power-up placed on the map.
type Instance struct {
	ID          int
	Type        Type
	Pos         maze.Point
	Collected   bool
	CollectedAt time.Duration
}

// Config controls spawning.
type Config struct {
	SpawnChance float64 // Probability a level gets any power-ups
	MaxPerLevel int
}

// DefaultConfig returns the standard spawn settings.
func DefaultConfig() Config {
	return Config{SpawnChance: 0.25, MaxPerLevel: 3}
}

// Generate rolls the level's power-ups. With probability SpawnChance it
// places between 1 and MaxPerLevel of them on distinct open cells other than
// start and goal, each with a uniformly random type. Fewer are placed when
// the maze runs out of cells.
func Generate(rng *rand.Rand, g *maze.Grid, start, goal maze.Point, cfg Config) []Instance {
	if cfg.MaxPerLevel <= 0 || rng.Float64() >= cfg.SpawnChance {
		return nil
	}
	count := rng.Intn(cfg.MaxPerLevel) + 1

	var cells []maze.Point
	for _, p := range g.OpenCells() {
		if p != start && p != goal {
			cells = append(cells, p)
		}
	}

	out := make([]Instance, 0, count)
	for i := 0; i < count && len(cells) > 0; i++ {
		j := rng.Intn(len(cells))
		pos := cells[j]
		cells[j] = cells[len(cells)-1]
		cells = cells[:len(cells)-1]

		out = append(out, Instance{
			ID:   i,
			Type: Types[rng.Intn(len(Types))],
			Pos:  pos,
		})
	}
	return out
}

// pickupTolerance is the per-axis distance, in cells, that counts as touching.
const pickupTolerance = 0.5

// CheckCollision returns the index of the first uncollected instance the
// player at pos is touching. It does not modify anything.
func CheckCollision(pos core.Vec, instances []Instance) (int, bool) {
	for i, in := range instances {
		if !in.Collected && core.Near(pos, in.Pos.Vec(), pickupTolerance) {
			return i, true
		}
	}
	return -1, false
}

// Effect is what a power-up does while active.
type Effect struct {
	SpeedMultiplier float64
	Invincible      bool
	FreezeEnemies   bool
	ScoreMultiplier float64
}

// ApplyEffect maps a type to its effect. Multipliers not touched by the
// type are left at zero; see Modifiers.Effect for the merged view.
func ApplyEffect(t Type) Effect {
	switch t {
	case Speed:
		return Effect{SpeedMultiplier: 2}
	case Invincible:
		return Effect{Invincible: true}
	case Freeze:
		return Effect{FreezeEnemies: true}
	case Multiplier:
		return Effect{ScoreMultiplier: 2}
	default:
		return Effect{}
	}
}

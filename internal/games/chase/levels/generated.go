package levels

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/maze-chase/internal/games/chase/ai"
	"github.com/vovakirdan/maze-chase/internal/maze"
)

const (
	maxGeneratedGhosts = 4
	patrolWaypoints    = 4
	bossEvery          = 5
)

var generatedVariants = []ai.Variant{ai.Chase, ai.Patrol, ai.Predictive}

// Generated builds a random level. Size and ghost count grow with the
// level number and every fifth level is a boss level.
func Generated(number int, rng *rand.Rand) Definition {
	number = max(number, 1)
	size := maze.SizeForLevel(number)
	g := maze.Generate(size, size, rng)

	d := Definition{
		Number: number,
		Name:   fmt.Sprintf("Maze %d", number),
		Theme:  ThemeNames[(number-1)%len(ThemeNames)],
		Boss:   number%bossEvery == 0,
		Layout: g.Layout(),
	}

	spawns := spawnCells(g)
	rng.Shuffle(len(spawns), func(i, j int) { spawns[i], spawns[j] = spawns[j], spawns[i] })

	count := min(1+number/2, maxGeneratedGhosts, len(spawns))
	open := g.OpenCells()
	for i := range count {
		gs := GhostSpec{
			Variant: generatedVariants[i%len(generatedVariants)],
			At:      spawns[i],
		}
		if gs.Variant == ai.Patrol {
			for range patrolWaypoints {
				gs.Waypoints = append(gs.Waypoints, open[rng.Intn(len(open))])
			}
		}
		d.Ghosts = append(d.Ghosts, gs)
	}
	return d
}

// spawnCells returns open cells in the far half of the maze as seen from
// the start, so no ghost spawns on top of the player.
func spawnCells(g *maze.Grid) []maze.Point {
	dist := g.Distances(g.Start())
	far := 0
	for _, row := range dist {
		for _, d := range row {
			far = max(far, d)
		}
	}

	var out []maze.Point
	for _, p := range g.OpenCells() {
		d := dist[p.Y][p.X]
		if p != g.Goal() && d >= far/2 && d > 0 {
			out = append(out, p)
		}
	}
	return out
}

// Source hands out levels by number: authored campaign levels first,
// generated ones after that or for every level in endless mode.
type Source struct {
	Campaign []*Level
	Endless  bool
}

// NewSource loads the built-in campaign.
func NewSource(endless bool) (*Source, error) {
	var campaign []*Level
	if !endless {
		var err error
		campaign, err = Campaign().LoadAll()
		if err != nil {
			return nil, err
		}
	}
	return &Source{Campaign: campaign, Endless: endless}, nil
}

// Level returns level n (1-indexed).
func (s *Source) Level(n int, rng *rand.Rand) (*Level, error) {
	n = max(n, 1)
	if !s.Endless && n <= len(s.Campaign) {
		return s.Campaign[n-1], nil
	}
	return Generated(n, rng).Build()
}

// Final reports whether clearing level n wins the game. Endless mode
// never ends on a clear.
func (s *Source) Final(n int) bool {
	return !s.Endless && n >= len(s.Campaign)
}

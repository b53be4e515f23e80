// Package ai drives the ghosts. Every ghost shares one record type; its
// Variant selects the per-tick behaviour function.
package ai

import (
	"fmt"
	"time"

	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/games/chase/movement"
	"github.com/vovakirdan/maze-chase/internal/maze"
)

// Variant is a ghost behaviour strategy.
type Variant uint8

const (
	// Chase re-paths to the player's cell.
	Chase Variant = iota
	// Patrol walks a waypoint loop and only gives chase when the player
	// comes close, for a limited time.
	Patrol
	// Predictive heads for where the player is going to be.
	Predictive
)

// String returns the identifier used in level files.
func (v Variant) String() string {
	switch v {
	case Chase:
		return "chase"
	case Patrol:
		return "patrol"
	case Predictive:
		return "predictive"
	default:
		return "unknown"
	}
}

// ParseVariant parses a level file identifier.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "chase", "":
		return Chase, nil
	case "patrol":
		return Patrol, nil
	case "predictive":
		return Predictive, nil
	default:
		return 0, fmt.Errorf("ai: unknown ghost variant %q", s)
	}
}

// Params tunes ghost behaviour. Speeds are in cells per second.
type Params struct {
	Speed          float64
	ProximityRange int           // Patrol: graph distance that triggers a chase
	ChaseDuration  time.Duration // Patrol: how long a triggered chase lasts
	ChaseCooldown  time.Duration // Patrol: proximity is ignored this long after a chase
	LookAhead      int           // Predictive: cells ahead of the player to aim for
	AlertRange     int           // Distance that raises a ghost alert
}

// DefaultParams returns the normal difficulty tuning.
func DefaultParams() Params {
	return Params{
		Speed:          3.5,
		ProximityRange: 4,
		ChaseDuration:  4 * time.Second,
		ChaseCooldown:  3 * time.Second,
		LookAhead:      4,
		AlertRange:     3,
	}
}

// Player is the read-only view of the player the ghosts react to.
type Player struct {
	Cell     maze.Point
	Heading  maze.Point
	Moving   bool
	Upcoming []maze.Point // Cells the player is committed to enter, in order
}

// Ghost is one adversary.
type Ghost struct {
	ID        int
	Variant   Variant
	Spawn     maze.Point
	Waypoints []maze.Point
	Mover     *movement.Mover
	Speed     float64 // Multiplier on Params.Speed, 1 for normal ghosts
	Frozen    bool

	waypoint  int
	chasing   bool
	chaseLeft time.Duration // Patrol: chase time remaining
	cooldown  time.Duration // Patrol: time before proximity counts again
	target    maze.Point
	hasTarget bool
}

// NewGhost creates a ghost resting on its spawn cell. A patrol ghost
// without waypoints patrols its spawn cell.
func NewGhost(id int, v Variant, spawn maze.Point, waypoints []maze.Point) *Ghost {
	wp := append([]maze.Point(nil), waypoints...)
	if v == Patrol && len(wp) == 0 {
		wp = []maze.Point{spawn}
	}
	return &Ghost{
		ID:        id,
		Variant:   v,
		Spawn:     spawn,
		Waypoints: wp,
		Mover:     movement.NewMover(spawn),
		Speed:     1,
	}
}

// Cell returns the ghost's nearest cell.
func (g *Ghost) Cell() maze.Point {
	return g.Mover.Cell()
}

// Position returns the interpolated position in cells.
func (g *Ghost) Position() core.Vec {
	return g.Mover.Position()
}

// Chasing reports whether a patrol ghost is currently giving chase.
// Chase and predictive ghosts always are.
func (g *Ghost) Chasing() bool {
	return g.Variant != Patrol || g.chasing
}

// WaypointIndex returns the patrol waypoint the ghost is heading for.
func (g *Ghost) WaypointIndex() int {
	return g.waypoint
}

// Respawn returns the ghost to its spawn with fresh behaviour state.
func (g *Ghost) Respawn() {
	g.Mover.Place(g.Spawn)
	g.Frozen = false
	g.waypoint = 0
	g.chasing = false
	g.chaseLeft = 0
	g.cooldown = 0
	g.hasTarget = false
}

// Step runs one tick. A frozen ghost keeps its cell and its behaviour
// state untouched, patrol timers included, and picks up exactly where it
// left off once thawed. It returns the cells entered during the tick.
func (g *Ghost) Step(grid *maze.Grid, p Player, params Params, dt time.Duration, frozen bool) []maze.Point {
	g.Frozen = frozen
	if frozen {
		return nil
	}

	if g.Variant == Patrol {
		g.chaseLeft = max(g.chaseLeft-dt, 0)
		g.cooldown = max(g.cooldown-dt, 0)
	}

	// Routing decisions are made on every cell boundary, so a ghost never
	// turns around mid-edge but still reacts within one cell.
	dist := params.Speed * g.Speed * dt.Seconds()
	var entered []maze.Point
	for {
		if !g.Mover.OnEdge() {
			g.route(grid, p, params)
		}
		cell, rest, ok := g.Mover.AdvanceCell(dist)
		if !ok {
			break
		}
		entered = append(entered, cell)
		dist = rest
	}
	return entered
}

// route runs the variant's decision for a ghost resting on a cell.
func (g *Ghost) route(grid *maze.Grid, p Player, params Params) {
	switch g.Variant {
	case Patrol:
		g.stepPatrol(grid, p, params)
	case Predictive:
		g.stepPredictive(grid, p, params)
	default:
		g.stepChase(grid, p.Cell)
	}
}

// steer commits to a path toward target unless the ghost is already headed
// there along a live path.
func (g *Ghost) steer(grid *maze.Grid, target maze.Point) {
	if g.hasTarget && g.target == target && g.Mover.Moving() {
		return
	}
	if g.Mover.SetTarget(grid, target) {
		g.target = target
		g.hasTarget = true
	}
}

func (g *Ghost) stepChase(grid *maze.Grid, target maze.Point) {
	g.steer(grid, target)
}

func (g *Ghost) stepPatrol(grid *maze.Grid, p Player, params Params) {
	if g.chasing && g.chaseLeft <= 0 {
		g.chasing = false
		g.cooldown = params.ChaseCooldown
		g.hasTarget = false
	}

	if !g.chasing && g.cooldown <= 0 && g.near(grid, p.Cell, params.ProximityRange) {
		g.chasing = true
		g.chaseLeft = params.ChaseDuration
	}

	if g.chasing {
		g.stepChase(grid, p.Cell)
		return
	}

	if g.Cell() == g.Waypoints[g.waypoint] {
		g.waypoint = (g.waypoint + 1) % len(g.Waypoints)
		g.hasTarget = false
	}
	g.steer(grid, g.Waypoints[g.waypoint])
}

// near reports whether the player is within r steps along the maze.
func (g *Ghost) near(grid *maze.Grid, cell maze.Point, r int) bool {
	if r <= 0 || g.Cell().Manhattan(cell) > r {
		return false
	}
	d := grid.Distance(g.Cell(), cell)
	return d >= 0 && d <= r
}

func (g *Ghost) stepPredictive(grid *maze.Grid, p Player, params Params) {
	target, ok := Predict(grid, p, params.LookAhead)
	if !ok || target == g.Cell() || !grid.Reachable(g.Cell(), target) {
		g.stepChase(grid, p.Cell)
		return
	}
	g.steer(grid, target)
}

// Predict estimates where the player will be n cells from now. It follows
// the player's committed path first and extrapolates the heading beyond it.
// It reports false for a stationary player or one facing a dead end.
func Predict(grid *maze.Grid, p Player, n int) (maze.Point, bool) {
	if !p.Moving || n <= 0 {
		return p.Cell, false
	}

	if len(p.Upcoming) >= n {
		return p.Upcoming[n-1], true
	}

	from := p.Cell
	heading := p.Heading
	if len(p.Upcoming) > 0 {
		from = p.Upcoming[len(p.Upcoming)-1]
		if len(p.Upcoming) > 1 {
			heading = from.Sub(p.Upcoming[len(p.Upcoming)-2])
		}
	}

	cell, steps := movement.Project(grid, from, heading, n-len(p.Upcoming))
	if cell == p.Cell || (steps == 0 && len(p.Upcoming) == 0) {
		return p.Cell, false
	}
	return cell, true
}

package ai

import (
	"time"

	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/events"
	"github.com/vovakirdan/maze-chase/internal/maze"
)

// ContactTolerance is the per-axis distance, in cells, at which a ghost
// touches the player.
const ContactTolerance = 0.5

// DefaultAlertCooldown spaces out ghost alerts.
const DefaultAlertCooldown = 2000 * time.Millisecond

// Controller owns the ghosts of one level attempt.
type Controller struct {
	Ghosts []*Ghost
	Params Params

	alert *events.Limiter
}

// NewController creates a controller for the given ghosts.
func NewController(ghosts []*Ghost, params Params) *Controller {
	return &Controller{
		Ghosts: ghosts,
		Params: params,
		alert:  events.NewLimiter(DefaultAlertCooldown),
	}
}

// SetAlertCooldown overrides the alert rate limit.
func (c *Controller) SetAlertCooldown(d time.Duration) {
	c.alert = events.NewLimiter(d)
}

// Step advances every ghost. While frozen is set no ghost moves. A
// ghost-alert is queued when any ghost is within alert range of the player,
// at most once per cooldown.
func (c *Controller) Step(grid *maze.Grid, p Player, now, dt time.Duration, frozen bool, q *events.Queue) {
	for _, g := range c.Ghosts {
		g.Step(grid, p, c.Params, dt, frozen)
	}

	if frozen || c.Params.AlertRange <= 0 {
		return
	}
	if i, d := c.Nearest(grid, p.Cell); i >= 0 && d <= c.Params.AlertRange {
		if c.alert.Allow(now) {
			q.Push(events.Event{Name: events.GhostAlert, At: now, Cell: c.Ghosts[i].Cell(), Value: d})
		}
	}
}

// Nearest returns the index and maze distance of the ghost closest to cell,
// or -1 when none can reach it.
func (c *Controller) Nearest(grid *maze.Grid, cell maze.Point) (int, int) {
	best, bestDist := -1, -1
	dist := grid.Distances(cell)
	for i, g := range c.Ghosts {
		gc := g.Cell()
		if !grid.InBounds(gc) {
			continue
		}
		d := dist[gc.Y][gc.X]
		if d < 0 {
			continue
		}
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, bestDist
}

// Contacts returns the indexes of ghosts touching pos.
func (c *Controller) Contacts(pos core.Vec) []int {
	var out []int
	for i, g := range c.Ghosts {
		if core.Near(pos, g.Position(), ContactTolerance) {
			out = append(out, i)
		}
	}
	return out
}

// ResetAll returns every ghost to its spawn.
func (c *Controller) ResetAll() {
	for _, g := range c.Ghosts {
		g.Respawn()
	}
	c.alert.Reset()
}

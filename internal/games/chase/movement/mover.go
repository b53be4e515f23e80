// Package movement moves an entity cell to cell along shortest paths with
// smooth sub-cell interpolation.
package movement

import (
	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/maze"
)

// Mover is an entity travelling the maze graph. It is always either resting
// on a cell (From == To) or part way along the edge From→To.
type Mover struct {
	From     maze.Point
	To       maze.Point
	Progress float64 // 0..1 along From→To

	path    []maze.Point // Cells to visit after To
	heading maze.Point
}

// NewMover creates a mover resting on cell at.
func NewMover(at maze.Point) *Mover {
	return &Mover{From: at, To: at}
}

// Place moves the entity to a cell instantly and drops its path.
func (m *Mover) Place(at maze.Point) {
	m.From, m.To = at, at
	m.Progress = 0
	m.path = nil
	m.heading = maze.Point{}
}

// OnEdge reports whether the entity is between two cells.
func (m *Mover) OnEdge() bool {
	return m.From != m.To
}

// Moving reports whether the entity has anywhere left to go.
func (m *Mover) Moving() bool {
	return m.OnEdge() || len(m.path) > 0
}

// Cell returns the cell the entity is closest to.
func (m *Mover) Cell() maze.Point {
	if m.Progress < 0.5 {
		return m.From
	}
	return m.To
}

// Position returns the interpolated position in cells.
func (m *Mover) Position() core.Vec {
	return core.Lerp(m.From.Vec(), m.To.Vec(), m.Progress)
}

// Heading returns the direction of the last edge travelled or started.
func (m *Mover) Heading() maze.Point {
	return m.heading
}

// Target returns the final cell of the committed path.
func (m *Mover) Target() maze.Point {
	if len(m.path) > 0 {
		return m.path[len(m.path)-1]
	}
	return m.To
}

// Path returns the committed route: the resting cell followed by the
// remaining cells when idle, or From, To and the rest when on an edge.
func (m *Mover) Path() []maze.Point {
	out := make([]maze.Point, 0, len(m.path)+2)
	out = append(out, m.From)
	if m.OnEdge() {
		out = append(out, m.To)
	}
	return append(out, m.path...)
}

// Remaining returns the cells still to be entered, in order.
func (m *Mover) Remaining() []maze.Point {
	out := make([]maze.Point, 0, len(m.path)+1)
	if m.OnEdge() {
		out = append(out, m.To)
	}
	return append(out, m.path...)
}

// SetTarget routes the entity to target along a shortest path. Walls,
// out-of-bounds and unreachable cells are rejected and leave the current path
// untouched. On an edge, the entity either carries on to To or turns back to
// From, whichever gives the shorter total trip; turning back mirrors the
// progress so the position does not jump.
func (m *Mover) SetTarget(g *maze.Grid, target maze.Point) bool {
	if !g.Walkable(target) {
		return false
	}

	if !m.OnEdge() {
		p := g.ShortestPath(m.From, target)
		if p == nil {
			return false
		}
		m.path = p[1:]
		return true
	}

	ahead := g.ShortestPath(m.To, target)
	back := g.ShortestPath(m.From, target)

	aheadCost, backCost := -1.0, -1.0
	if ahead != nil {
		aheadCost = (1 - m.Progress) + float64(len(ahead)-1)
	}
	if back != nil {
		backCost = m.Progress + float64(len(back)-1)
	}

	switch {
	case ahead == nil && back == nil:
		return false
	case back == nil || (ahead != nil && aheadCost <= backCost):
		m.path = ahead[1:]
	default:
		m.From, m.To = m.To, m.From
		m.Progress = 1 - m.Progress
		m.heading = m.To.Sub(m.From)
		m.path = back[1:]
	}
	return true
}

// Stop drops the rest of the path. An entity on an edge still finishes it.
func (m *Mover) Stop() {
	m.path = nil
}

// Advance moves the entity dist cells along its path and returns each cell
// entered, in order.
func (m *Mover) Advance(dist float64) []maze.Point {
	var entered []maze.Point
	for {
		cell, rest, ok := m.AdvanceCell(dist)
		if !ok {
			return entered
		}
		entered = append(entered, cell)
		dist = rest
	}
}

// AdvanceCell moves the entity at most dist cells along its path, stopping
// on the first cell entered. It returns that cell, the distance left over
// and whether a cell was entered at all.
func (m *Mover) AdvanceCell(dist float64) (maze.Point, float64, bool) {
	if dist <= 0 {
		return m.From, 0, false
	}
	if !m.OnEdge() {
		if len(m.path) == 0 {
			m.Progress = 0
			return m.From, 0, false
		}
		m.To = m.path[0]
		m.path = m.path[1:]
		m.Progress = 0
		m.heading = m.To.Sub(m.From)
	}

	left := 1 - m.Progress
	if dist < left {
		m.Progress += dist
		return m.To, 0, false
	}
	m.From = m.To
	m.Progress = 0
	return m.To, dist - left, true
}

// Farthest returns the last walkable cell reached by walking from 'from' in
// direction dir until a wall. It returns 'from' when the first step is blocked.
func Farthest(g *maze.Grid, from, dir maze.Point) maze.Point {
	if dir == (maze.Point{}) {
		return from
	}
	cur := from
	for {
		next := cur.Add(dir)
		if !g.Walkable(next) {
			return cur
		}
		cur = next
	}
}

// Project walks up to n cells from 'from' in direction dir and returns the
// cell reached and how many steps were taken.
func Project(g *maze.Grid, from, dir maze.Point, n int) (maze.Point, int) {
	if dir == (maze.Point{}) {
		return from, 0
	}
	cur := from
	steps := 0
	for steps < n {
		next := cur.Add(dir)
		if !g.Walkable(next) {
			break
		}
		cur = next
		steps++
	}
	return cur, steps
}

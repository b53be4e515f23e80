// Package maze holds the immutable level grid and the graph queries
// (neighbours, shortest paths, distances) the simulation runs on.
package maze

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/maze-chase/internal/core"
)

// Point is an integer cell coordinate.
type Point = core.Point

// Kind is the static content of a cell.
type Kind uint8

const (
	Wall Kind = iota
	Floor
	Food
	Goal
)

// String returns the layout glyph for the kind.
func (k Kind) String() string {
	switch k {
	case Wall:
		return "#"
	case Food:
		return "."
	case Goal:
		return "G"
	default:
		return " "
	}
}

// Layout glyphs accepted by Parse.
const (
	GlyphWall  = '#'
	GlyphFood  = '.'
	GlyphFloor = ' '
	GlyphStart = 'S'
	GlyphGoal  = 'G'
)

var (
	ErrEmpty       = errors.New("maze: empty layout")
	ErrRagged      = errors.New("maze: rows have different widths")
	ErrBadGlyph    = errors.New("maze: unknown glyph")
	ErrNoStart     = errors.New("maze: no start cell")
	ErrNoGoal      = errors.New("maze: no goal cell")
	ErrExtraStart  = errors.New("maze: more than one start cell")
	ErrExtraGoal   = errors.New("maze: more than one goal cell")
	ErrUnreachable = errors.New("maze: goal unreachable from start")
)

// Grid is a rows×cols cell grid. It is never mutated after construction.
type Grid struct {
	rows, cols int
	cells      []Kind
	start      Point
	goal       Point
}

// Parse builds a grid from text rows. Exactly one 'S' and one 'G' are required;
// the start cell is plain floor.
func Parse(layout []string) (*Grid, error) {
	if len(layout) == 0 || len(layout[0]) == 0 {
		return nil, ErrEmpty
	}

	cols := len([]rune(layout[0]))
	g := &Grid{
		rows:  len(layout),
		cols:  cols,
		cells: make([]Kind, len(layout)*cols),
		start: Point{X: -1, Y: -1},
		goal:  Point{X: -1, Y: -1},
	}

	for y, row := range layout {
		runes := []rune(row)
		if len(runes) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrRagged, y, len(runes), cols)
		}
		for x, ch := range runes {
			k := Floor
			switch ch {
			case GlyphWall:
				k = Wall
			case GlyphFood:
				k = Food
			case GlyphFloor:
			case GlyphStart:
				if g.start.X >= 0 {
					return nil, fmt.Errorf("%w: (%d,%d) and (%d,%d)", ErrExtraStart, g.start.X, g.start.Y, x, y)
				}
				g.start = Point{X: x, Y: y}
			case GlyphGoal:
				if g.goal.X >= 0 {
					return nil, fmt.Errorf("%w: (%d,%d) and (%d,%d)", ErrExtraGoal, g.goal.X, g.goal.Y, x, y)
				}
				k = Goal
				g.goal = Point{X: x, Y: y}
			default:
				return nil, fmt.Errorf("%w %q at (%d,%d)", ErrBadGlyph, ch, x, y)
			}
			g.cells[y*cols+x] = k
		}
	}

	if g.start.X < 0 {
		return nil, ErrNoStart
	}
	if g.goal.X < 0 {
		return nil, ErrNoGoal
	}
	return g, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// built-in layouts.
func MustParse(layout ...string) *Grid {
	g, err := Parse(layout)
	if err != nil {
		panic(err)
	}
	return g
}

// Validate reports ErrUnreachable when the goal cannot be reached from the start.
func (g *Grid) Validate() error {
	if !g.Reachable(g.start, g.goal) {
		return ErrUnreachable
	}
	return nil
}

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid width.
func (g *Grid) Cols() int { return g.cols }

// Start returns the player spawn cell.
func (g *Grid) Start() Point { return g.start }

// Goal returns the exit cell.
func (g *Grid) Goal() Point { return g.goal }

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.cols && p.Y >= 0 && p.Y < g.rows
}

// At returns the kind of cell p. Out-of-bounds cells read as walls.
func (g *Grid) At(p Point) Kind {
	if !g.InBounds(p) {
		return Wall
	}
	return g.cells[p.Y*g.cols+p.X]
}

// Walkable reports whether p is inside the grid and not a wall.
func (g *Grid) Walkable(p Point) bool {
	return g.At(p) != Wall
}

// Cells returns every cell of the given kind in row-major order.
func (g *Grid) Cells(k Kind) []Point {
	var out []Point
	for i, c := range g.cells {
		if c == k {
			out = append(out, Point{X: i % g.cols, Y: i / g.cols})
		}
	}
	return out
}

// OpenCells returns every walkable cell in row-major order.
func (g *Grid) OpenCells() []Point {
	out := make([]Point, 0, len(g.cells))
	for i, c := range g.cells {
		if c != Wall {
			out = append(out, Point{X: i % g.cols, Y: i / g.cols})
		}
	}
	return out
}

// Layout renders the grid back into Parse's text form.
func (g *Grid) Layout() []string {
	rows := make([]string, g.rows)
	var sb strings.Builder
	for y := range g.rows {
		sb.Reset()
		for x := range g.cols {
			p := Point{X: x, Y: y}
			if p == g.start {
				sb.WriteRune(GlyphStart)
				continue
			}
			sb.WriteString(g.At(p).String())
		}
		rows[y] = sb.String()
	}
	return rows
}

package movement

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/maze"
)

var corridor = maze.MustParse(
	"S....",
	".###.",
	"....G",
)

func TestSetTargetPathEndpoints(t *testing.T) {
	g := maze.Generate(15, 15, rand.New(rand.NewSource(11)))
	m := NewMover(g.Start())

	for _, target := range g.OpenCells() {
		m.Place(g.Start())
		if !m.SetTarget(g, target) {
			t.Fatalf("SetTarget(%v) rejected a reachable cell", target)
		}
		path := m.Path()
		if path[0] != g.Start() || path[len(path)-1] != target {
			t.Fatalf("path to %v runs %v..%v", target, path[0], path[len(path)-1])
		}

		toTarget := g.Distances(target)
		for i := 1; i < len(path); i++ {
			a, b := path[i-1], path[i]
			if toTarget[b.Y][b.X] >= toTarget[a.Y][a.X] {
				t.Fatalf("distance to %v did not decrease between %v and %v", target, a, b)
			}
			if a.Manhattan(b) != 1 {
				t.Fatalf("path jumps from %v to %v", a, b)
			}
		}
	}
}

func TestSetTargetRejects(t *testing.T) {
	g := maze.MustParse(
		"S.#..",
		"..#.G",
	)
	m := NewMover(g.Start())
	if !m.SetTarget(g, core.Pt(1, 1)) {
		t.Fatal("SetTarget on a reachable cell failed")
	}
	before := m.Path()

	for _, bad := range []maze.Point{core.Pt(2, 0), core.Pt(-1, 0), core.Pt(9, 9), core.Pt(4, 1)} {
		if m.SetTarget(g, bad) {
			t.Errorf("SetTarget(%v) should be rejected", bad)
		}
	}

	after := m.Path()
	if len(after) != len(before) || after[len(after)-1] != core.Pt(1, 1) {
		t.Errorf("rejected target changed the path: %v -> %v", before, after)
	}
}

func TestAdvanceEntersCells(t *testing.T) {
	m := NewMover(corridor.Start())
	m.SetTarget(corridor, core.Pt(3, 0))

	if got := m.Advance(0.5); len(got) != 0 {
		t.Errorf("half a cell should enter nothing, got %v", got)
	}
	pos := m.Position()
	if math.Abs(pos.X-0.5) > 1e-9 || pos.Y != 0 {
		t.Errorf("Position() = %v, expected (0.5, 0)", pos)
	}
	if m.Heading() != core.Pt(1, 0) {
		t.Errorf("Heading() = %v, expected right", m.Heading())
	}

	got := m.Advance(2)
	if len(got) != 2 || got[0] != core.Pt(1, 0) || got[1] != core.Pt(2, 0) {
		t.Errorf("Advance(2) entered %v, expected (1,0),(2,0)", got)
	}

	got = m.Advance(10)
	if len(got) != 1 || got[0] != core.Pt(3, 0) {
		t.Errorf("Advance past the end entered %v, expected only (3,0)", got)
	}
	if m.Moving() || m.Cell() != core.Pt(3, 0) || m.Progress != 0 {
		t.Errorf("mover should rest on (3,0), got %+v", m)
	}
}

func TestAdvanceCellStopsOnBoundary(t *testing.T) {
	m := NewMover(core.Pt(0, 0))
	m.SetTarget(corridor, core.Pt(4, 0))

	cell, rest, ok := m.AdvanceCell(2.5)
	if !ok || cell != core.Pt(1, 0) || math.Abs(rest-1.5) > 1e-9 {
		t.Fatalf("AdvanceCell(2.5) = %v, %v, %v, expected (1,0), 1.5, true", cell, rest, ok)
	}
	if m.OnEdge() {
		t.Error("mover should rest on the cell it entered")
	}

	if _, rest, ok := m.AdvanceCell(0.4); ok || rest != 0 {
		t.Errorf("AdvanceCell(0.4) = %v, %v, expected 0, false", rest, ok)
	}
	if math.Abs(m.Progress-0.4) > 1e-9 {
		t.Errorf("progress = %f, expected 0.4", m.Progress)
	}

	idle := NewMover(core.Pt(0, 0))
	if _, _, ok := idle.AdvanceCell(1); ok {
		t.Error("a mover without a path should not enter a cell")
	}
}

func TestRetargetMidEdgeReverses(t *testing.T) {
	m := NewMover(core.Pt(2, 0))
	m.SetTarget(corridor, core.Pt(4, 0))
	m.Advance(0.25) // a quarter of the way to (3,0)

	if !m.SetTarget(corridor, core.Pt(0, 0)) {
		t.Fatal("SetTarget back along the corridor failed")
	}
	if m.From != core.Pt(3, 0) || m.To != core.Pt(2, 0) {
		t.Errorf("edge after reversal = %v->%v, expected (3,0)->(2,0)", m.From, m.To)
	}
	if math.Abs(m.Progress-0.75) > 1e-9 {
		t.Errorf("Progress after reversal = %f, expected 0.75", m.Progress)
	}
	pos := m.Position()
	if math.Abs(pos.X-2.25) > 1e-9 {
		t.Errorf("reversal moved the entity: Position() = %v, expected x=2.25", pos)
	}

	got := m.Advance(0.25)
	if len(got) != 1 || got[0] != core.Pt(2, 0) {
		t.Errorf("Advance(0.25) entered %v, expected (2,0)", got)
	}
	if m.Target() != core.Pt(0, 0) {
		t.Errorf("Target() = %v, expected (0,0)", m.Target())
	}
}

func TestRetargetMidEdgeContinues(t *testing.T) {
	m := NewMover(core.Pt(1, 0))
	m.SetTarget(corridor, core.Pt(3, 0))
	m.Advance(0.6)

	m.SetTarget(corridor, core.Pt(4, 2))
	if m.From != core.Pt(1, 0) || m.To != core.Pt(2, 0) {
		t.Errorf("edge = %v->%v, expected to keep (1,0)->(2,0)", m.From, m.To)
	}
	path := m.Path()
	if path[len(path)-1] != core.Pt(4, 2) {
		t.Errorf("Path() = %v, expected to end at goal", path)
	}
}

func TestRapidRetargetStaysOnGrid(t *testing.T) {
	g := maze.Generate(15, 15, rand.New(rand.NewSource(3)))
	rng := rand.New(rand.NewSource(4))
	open := g.OpenCells()
	m := NewMover(g.Start())

	for i := 0; i < 2000; i++ {
		if i%3 == 0 {
			m.SetTarget(g, open[rng.Intn(len(open))])
		}
		m.Advance(rng.Float64() * 0.7)

		if !g.Walkable(m.From) || !g.Walkable(m.To) {
			t.Fatalf("tick %d: mover on a wall %+v", i, m)
		}
		if m.From.Manhattan(m.To) > 1 {
			t.Fatalf("tick %d: edge %v->%v is not between neighbours", i, m.From, m.To)
		}
		if m.Progress < 0 || m.Progress >= 1 {
			t.Fatalf("tick %d: progress %f out of range", i, m.Progress)
		}
	}
}

func TestFarthestAndProject(t *testing.T) {
	if got := Farthest(corridor, core.Pt(0, 0), core.Pt(1, 0)); got != core.Pt(4, 0) {
		t.Errorf("Farthest(right) = %v, expected (4,0)", got)
	}
	if got := Farthest(corridor, core.Pt(0, 0), core.Pt(0, -1)); got != core.Pt(0, 0) {
		t.Errorf("Farthest(blocked) = %v, expected start", got)
	}

	cell, steps := Project(corridor, core.Pt(0, 0), core.Pt(1, 0), 2)
	if cell != core.Pt(2, 0) || steps != 2 {
		t.Errorf("Project(2) = %v, %d", cell, steps)
	}
	cell, steps = Project(corridor, core.Pt(3, 0), core.Pt(1, 0), 5)
	if cell != core.Pt(4, 0) || steps != 1 {
		t.Errorf("Project() stopping at wall = %v, %d", cell, steps)
	}
	if _, steps := Project(corridor, core.Pt(0, 0), core.Pt(0, 0), 4); steps != 0 {
		t.Error("Project() with no heading should not move")
	}
}

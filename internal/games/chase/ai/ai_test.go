package ai

import (
	"testing"
	"time"

	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/events"
	"github.com/vovakirdan/maze-chase/internal/maze"
)

const tick = time.Second / 60

// A ring corridor in the top-left with a long tail leading to the goal.
var arena = maze.MustParse(
	"S....#.........",
	".###.#.#######.",
	".....#.#.......",
	"####...#.#####.",
	"........#.....G",
)

func run(g *Ghost, grid *maze.Grid, p Player, params Params, ticks int, frozen bool) {
	for range ticks {
		g.Step(grid, p, params, tick, frozen)
	}
}

// A straight two-lane hall for mid-route behaviour.
var hall = maze.MustParse(
	"S.................G",
	"...................",
)

func TestParseVariant(t *testing.T) {
	for _, v := range []Variant{Chase, Patrol, Predictive} {
		got, err := ParseVariant(v.String())
		if err != nil || got != v {
			t.Errorf("ParseVariant(%q) = %v, %v", v.String(), got, err)
		}
	}
	if _, err := ParseVariant("teleport"); err == nil {
		t.Error("ParseVariant should reject unknown variants")
	}
}

func TestChaseReachesStationaryPlayer(t *testing.T) {
	g := NewGhost(0, Chase, core.Pt(4, 2), nil)
	p := Player{Cell: core.Pt(0, 0)}
	params := DefaultParams()

	run(g, arena, p, params, 120, false)
	if g.Cell() != p.Cell {
		t.Errorf("chase ghost at %v after 2s, expected to reach %v", g.Cell(), p.Cell)
	}
}

func TestChaseFollowsPlayerMove(t *testing.T) {
	g := NewGhost(0, Chase, core.Pt(0, 0), nil)
	params := DefaultParams()

	run(g, arena, Player{Cell: core.Pt(4, 0)}, params, 20, false)
	if g.Mover.Target() != core.Pt(4, 0) {
		t.Fatalf("target = %v, expected (4,0)", g.Mover.Target())
	}

	run(g, arena, Player{Cell: core.Pt(0, 2)}, params, 30, false)
	if g.Mover.Target() != core.Pt(0, 2) {
		t.Errorf("target after player moved = %v, expected (0,2)", g.Mover.Target())
	}
}

func TestPatrolIgnoresFarPlayer(t *testing.T) {
	loop := []maze.Point{core.Pt(4, 0), core.Pt(4, 2), core.Pt(0, 2), core.Pt(0, 0)}
	params := DefaultParams()

	a := NewGhost(0, Patrol, core.Pt(0, 0), loop)
	b := NewGhost(1, Patrol, core.Pt(0, 0), loop)

	// Two players, both well outside proximity range, moving differently.
	farA := []maze.Point{core.Pt(14, 4), core.Pt(13, 4), core.Pt(12, 4)}
	farB := []maze.Point{core.Pt(14, 0), core.Pt(14, 1), core.Pt(14, 2)}

	var visited []maze.Point
	for i := 0; i < 600; i++ {
		pa := Player{Cell: farA[(i/40)%len(farA)], Moving: true, Heading: core.Pt(-1, 0)}
		pb := Player{Cell: farB[(i/25)%len(farB)], Moving: true, Heading: core.Pt(0, 1)}

		enteredA := a.Step(arena, pa, params, tick, false)
		b.Step(arena, pb, params, tick, false)

		if a.Position() != b.Position() {
			t.Fatalf("tick %d: patrol depends on the player: %v vs %v", i, a.Position(), b.Position())
		}
		if a.Chasing() {
			t.Fatalf("tick %d: patrol ghost started chasing a far player", i)
		}
		for _, c := range enteredA {
			for _, w := range loop {
				if c == w {
					visited = append(visited, c)
				}
			}
		}
	}

	if len(visited) < len(loop)+1 {
		t.Fatalf("visited waypoints %v, expected at least one full loop", visited)
	}
	for i, c := range visited {
		if c != loop[i%len(loop)] {
			t.Fatalf("waypoint %d = %v, expected %v (sequence %v)", i, c, loop[i%len(loop)], visited)
		}
	}
}

func TestPatrolBoundedChase(t *testing.T) {
	loop := []maze.Point{core.Pt(4, 0), core.Pt(4, 2)}
	params := DefaultParams()
	params.ChaseDuration = time.Second
	params.ChaseCooldown = 10 * time.Second

	g := NewGhost(0, Patrol, core.Pt(0, 0), loop)
	near := Player{Cell: core.Pt(0, 2)}

	g.Step(arena, near, params, tick, false)
	if !g.Chasing() {
		t.Fatal("patrol ghost should chase a player within range")
	}
	index := g.WaypointIndex()

	run(g, arena, near, params, 59, false)
	if !g.Chasing() {
		t.Error("chase ended before its duration")
	}

	run(g, arena, near, params, 30, false)
	if g.Chasing() {
		t.Error("chase should end after its duration even with the player near")
	}
	if g.WaypointIndex() != index {
		t.Errorf("waypoint index = %d after chase, expected to resume at %d", g.WaypointIndex(), index)
	}
}

func TestFrozenGhostHoldsStill(t *testing.T) {
	for _, v := range []Variant{Chase, Patrol, Predictive} {
		t.Run(v.String(), func(t *testing.T) {
			params := DefaultParams()
			frozenG := NewGhost(0, v, core.Pt(0, 0), []maze.Point{core.Pt(4, 0), core.Pt(0, 2)})
			freeG := NewGhost(1, v, core.Pt(0, 0), []maze.Point{core.Pt(4, 0), core.Pt(0, 2)})
			p := Player{Cell: core.Pt(4, 2), Moving: true, Heading: core.Pt(0, 1)}

			// Move both a little, then freeze one mid-edge.
			for range 10 {
				frozenG.Step(arena, p, params, tick, false)
				freeG.Step(arena, p, params, tick, false)
			}
			before := frozenG.Position()
			beforeMover := *frozenG.Mover

			for i := range 120 {
				frozenG.Step(arena, p, params, tick, true)
				if frozenG.Position() != before {
					t.Fatalf("frozen ghost moved on tick %d", i)
				}
				if !frozenG.Frozen {
					t.Fatal("Frozen flag should be set")
				}
			}
			if frozenG.Mover.From != beforeMover.From || frozenG.Mover.To != beforeMover.To {
				t.Fatal("frozen ghost changed its edge")
			}

			// After thawing it behaves like the ghost that never froze.
			for range 30 {
				frozenG.Step(arena, p, params, tick, false)
				freeG.Step(arena, p, params, tick, false)
			}
			if frozenG.Frozen {
				t.Error("Frozen flag should clear")
			}
			if frozenG.Position() != freeG.Position() {
				t.Errorf("thawed ghost at %v, expected %v", frozenG.Position(), freeG.Position())
			}
			if frozenG.Chasing() != freeG.Chasing() {
				t.Errorf("thawed Chasing() = %v, expected %v", frozenG.Chasing(), freeG.Chasing())
			}
		})
	}
}

func TestFreezeKeepsPatrolTimers(t *testing.T) {
	params := DefaultParams()
	params.ChaseDuration = time.Second
	params.ChaseCooldown = time.Second

	g := NewGhost(0, Patrol, core.Pt(0, 0), []maze.Point{core.Pt(4, 0)})
	near := Player{Cell: core.Pt(0, 2)}

	run(g, arena, near, params, 10, false)
	if !g.Chasing() {
		t.Fatal("patrol ghost should chase a player within range")
	}

	// A freeze far longer than the chase does not use it up.
	run(g, arena, near, params, 300, true)
	run(g, arena, near, params, 10, false)
	if !g.Chasing() {
		t.Fatal("chase ended during the freeze")
	}

	// Ends after 1s of unfrozen time, then the cooldown also survives a freeze.
	run(g, arena, near, params, 45, false)
	if g.Chasing() {
		t.Fatal("chase should end after its duration")
	}
	run(g, arena, near, params, 300, true)
	run(g, arena, near, params, 10, false)
	if g.Chasing() {
		t.Error("cooldown ran out during the freeze")
	}
	run(g, arena, near, params, 90, false)
	if !g.Chasing() {
		t.Error("patrol ghost should chase again once the cooldown is over")
	}
}

func TestChaseRetargetsMidRoute(t *testing.T) {
	g := NewGhost(0, Chase, core.Pt(0, 0), nil)
	params := DefaultParams()

	run(g, hall, Player{Cell: core.Pt(18, 0)}, params, 10, false)
	run(g, hall, Player{Cell: core.Pt(0, 1)}, params, 20, false)
	if g.Mover.Target() != core.Pt(0, 1) {
		t.Errorf("target = %v, expected (0,1)", g.Mover.Target())
	}
}

func TestPatrolNoticesPlayerMidRoute(t *testing.T) {
	params := DefaultParams()
	g := NewGhost(0, Patrol, core.Pt(0, 0), []maze.Point{core.Pt(18, 0), core.Pt(0, 0)})
	p := Player{Cell: core.Pt(8, 1)}

	run(g, hall, p, params, 120, false)
	if !g.Chasing() {
		t.Fatalf("patrol ghost at %v ignored a player in range", g.Cell())
	}
	if g.Mover.Target() != p.Cell {
		t.Errorf("target = %v, expected %v", g.Mover.Target(), p.Cell)
	}
}

func TestPredictiveReaimsMidRoute(t *testing.T) {
	params := DefaultParams()
	params.LookAhead = 3
	g := NewGhost(0, Predictive, core.Pt(0, 0), nil)

	run(g, hall, Player{Cell: core.Pt(10, 1), Moving: true, Heading: core.Pt(1, 0)}, params, 10, false)
	if g.Mover.Target() != core.Pt(13, 1) {
		t.Fatalf("target = %v, expected (13,1)", g.Mover.Target())
	}

	run(g, hall, Player{Cell: core.Pt(10, 1), Moving: true, Heading: core.Pt(-1, 0)}, params, 20, false)
	if g.Mover.Target() != core.Pt(7, 1) {
		t.Errorf("target after player turned = %v, expected (7,1)", g.Mover.Target())
	}
}

func TestPredict(t *testing.T) {
	tests := []struct {
		name   string
		player Player
		n      int
		cell   maze.Point
		ok     bool
	}{
		{
			name:   "stationary",
			player: Player{Cell: core.Pt(0, 4)},
			n:      3, cell: core.Pt(0, 4), ok: false,
		},
		{
			name:   "along committed path",
			player: Player{Cell: core.Pt(0, 4), Moving: true, Upcoming: []maze.Point{core.Pt(1, 4), core.Pt(2, 4), core.Pt(3, 4)}},
			n:      2, cell: core.Pt(2, 4), ok: true,
		},
		{
			name:   "extrapolated past the path",
			player: Player{Cell: core.Pt(0, 4), Moving: true, Heading: core.Pt(1, 0), Upcoming: []maze.Point{core.Pt(1, 4), core.Pt(2, 4)}},
			n:      4, cell: core.Pt(4, 4), ok: true,
		},
		{
			name:   "facing a wall",
			player: Player{Cell: core.Pt(7, 4), Moving: true, Heading: core.Pt(1, 0)},
			n:      4, cell: core.Pt(7, 4), ok: false,
		},
		{
			name:   "heading only",
			player: Player{Cell: core.Pt(9, 4), Moving: true, Heading: core.Pt(1, 0)},
			n:      3, cell: core.Pt(12, 4), ok: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cell, ok := Predict(arena, tc.player, tc.n)
			if cell != tc.cell || ok != tc.ok {
				t.Errorf("Predict() = %v, %v, expected %v, %v", cell, ok, tc.cell, tc.ok)
			}
		})
	}
}

func TestPredictiveFallsBackToChase(t *testing.T) {
	params := DefaultParams()
	g := NewGhost(0, Predictive, core.Pt(4, 2), nil)
	p := Player{Cell: core.Pt(0, 0)} // stationary

	g.Step(arena, p, params, tick, false)
	if g.Mover.Target() != p.Cell {
		t.Errorf("predictive target = %v, expected player cell %v", g.Mover.Target(), p.Cell)
	}
}

func TestPredictiveAimsAhead(t *testing.T) {
	params := DefaultParams()
	params.LookAhead = 3
	g := NewGhost(0, Predictive, core.Pt(4, 2), nil)
	p := Player{Cell: core.Pt(0, 4), Moving: true, Heading: core.Pt(1, 0)}

	g.Step(arena, p, params, tick, false)
	if g.Mover.Target() != core.Pt(3, 4) {
		t.Errorf("predictive target = %v, expected (3,4)", g.Mover.Target())
	}
}

func TestControllerAlertRateLimited(t *testing.T) {
	ghosts := []*Ghost{NewGhost(0, Chase, core.Pt(4, 0), nil)}
	params := DefaultParams()
	params.Speed = 0.0001
	c := NewController(ghosts, params)
	q := events.NewQueue()
	p := Player{Cell: core.Pt(2, 0)}

	alerts := 0
	now := time.Duration(0)
	for range 300 { // 5 seconds
		c.Step(arena, p, now, tick, false, q)
		for _, e := range q.Drain() {
			if e.Name == events.GhostAlert {
				alerts++
			}
		}
		now += tick
	}
	if alerts != 3 {
		t.Errorf("alerts in 5s = %d, expected 3 (t=0, 2s, 4s)", alerts)
	}
}

func TestControllerContactsAndReset(t *testing.T) {
	ghosts := []*Ghost{
		NewGhost(0, Chase, core.Pt(2, 0), nil),
		NewGhost(1, Chase, core.Pt(0, 4), nil),
	}
	c := NewController(ghosts, DefaultParams())

	got := c.Contacts(core.Vec{X: 2.3, Y: 0})
	if len(got) != 1 || got[0] != 0 {
		t.Errorf("Contacts() = %v, expected [0]", got)
	}

	i, d := c.Nearest(arena, core.Pt(0, 0))
	if i != 0 || d != 2 {
		t.Errorf("Nearest() = %d, %d, expected 0, 2", i, d)
	}

	ghosts[0].Mover.Place(core.Pt(4, 2))
	c.ResetAll()
	if ghosts[0].Cell() != core.Pt(2, 0) {
		t.Errorf("ResetAll() left ghost at %v", ghosts[0].Cell())
	}
}

package powerups

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/maze"
)

// openMaze returns a 10×10 maze walled on the right and bottom edges.
func openMaze(t *testing.T) *maze.Grid {
	t.Helper()
	rows := []string{
		"S........#",
		".........#",
		".........#",
		".........#",
		".........#",
		".........#",
		".........#",
		".........#",
		"........G#",
		"##########",
	}
	g, err := maze.Parse(rows)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if n := len(g.OpenCells()); n != 81 {
		t.Fatalf("open cells = %d", n)
	}
	return g
}

func ninetyCellMaze(t *testing.T) *maze.Grid {
	t.Helper()
	rows := make([]string, 10)
	for y := range rows {
		rows[y] = ".........."
	}
	rows[0] = "S........."
	rows[8] = ".........G"
	rows[9] = "##########"
	g, err := maze.Parse(rows)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if n := len(g.OpenCells()); n != 90 {
		t.Fatalf("open cells = %d, expected 90", n)
	}
	return g
}

func TestGenerateBounds(t *testing.T) {
	g := ninetyCellMaze(t)
	cfg := DefaultConfig()
	counts := map[int]int{}

	for seed := int64(0); seed < 400; seed++ {
		rng := rand.New(rand.NewSource(seed))
		got := Generate(rng, g, g.Start(), g.Goal(), cfg)

		if len(got) > cfg.MaxPerLevel {
			t.Fatalf("seed %d: %d power-ups, max %d", seed, len(got), cfg.MaxPerLevel)
		}
		counts[len(got)]++

		seen := map[maze.Point]bool{}
		for _, in := range got {
			if in.Pos == g.Start() || in.Pos == g.Goal() {
				t.Fatalf("seed %d: power-up on start/goal %v", seed, in.Pos)
			}
			if !g.Walkable(in.Pos) {
				t.Fatalf("seed %d: power-up on wall %v", seed, in.Pos)
			}
			if seen[in.Pos] {
				t.Fatalf("seed %d: duplicate position %v", seed, in.Pos)
			}
			seen[in.Pos] = true
			if in.Collected {
				t.Fatalf("seed %d: new power-up already collected", seed)
			}
		}
	}

	// Roughly a quarter of levels get power-ups.
	if counts[0] < 250 || counts[0] > 350 {
		t.Errorf("levels without power-ups = %d of 400, expected about 300", counts[0])
	}
	for n := 1; n <= 3; n++ {
		if counts[n] == 0 {
			t.Errorf("no level rolled %d power-ups", n)
		}
	}
}

func TestGenerateNoCells(t *testing.T) {
	g := maze.MustParse("SG")
	cfg := Config{SpawnChance: 1, MaxPerLevel: 3}

	got := Generate(rand.New(rand.NewSource(1)), g, g.Start(), g.Goal(), cfg)
	if len(got) != 0 {
		t.Errorf("Generate() with no free cells = %v, expected empty", got)
	}
}

func TestGenerateAlwaysSpawn(t *testing.T) {
	g := openMaze(t)
	cfg := Config{SpawnChance: 1, MaxPerLevel: 3}

	for seed := int64(0); seed < 50; seed++ {
		got := Generate(rand.New(rand.NewSource(seed)), g, g.Start(), g.Goal(), cfg)
		if len(got) < 1 || len(got) > 3 {
			t.Fatalf("seed %d: count = %d, expected 1..3", seed, len(got))
		}
	}
}

func TestCheckCollision(t *testing.T) {
	ins := []Instance{
		{ID: 0, Type: Speed, Pos: core.Pt(2, 2), Collected: true},
		{ID: 1, Type: Freeze, Pos: core.Pt(2, 2)},
		{ID: 2, Type: Multiplier, Pos: core.Pt(5, 5)},
	}

	tests := []struct {
		name  string
		pos   core.Vec
		index int
		ok    bool
	}{
		{"skips collected", core.Vec{X: 2, Y: 2}, 1, true},
		{"within tolerance", core.Vec{X: 5.4, Y: 4.6}, 2, true},
		{"at tolerance edge", core.Vec{X: 5.5, Y: 5}, -1, false},
		{"far away", core.Vec{X: 0, Y: 0}, -1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			i, ok := CheckCollision(tc.pos, ins)
			if i != tc.index || ok != tc.ok {
				t.Errorf("CheckCollision() = %d, %v, expected %d, %v", i, ok, tc.index, tc.ok)
			}
		})
	}
	if ins[1].Collected {
		t.Error("CheckCollision must not mark instances collected")
	}
}

func TestApplyEffect(t *testing.T) {
	if e := ApplyEffect(Speed); e.SpeedMultiplier != 2 {
		t.Errorf("speed effect = %+v", e)
	}
	if e := ApplyEffect(Invincible); !e.Invincible {
		t.Errorf("invincible effect = %+v", e)
	}
	if e := ApplyEffect(Freeze); !e.FreezeEnemies {
		t.Errorf("freeze effect = %+v", e)
	}
	if e := ApplyEffect(Multiplier); e.ScoreMultiplier != 2 {
		t.Errorf("multiplier effect = %+v", e)
	}
}

func TestStaticTable(t *testing.T) {
	expected := map[Type]time.Duration{
		Speed:      8 * time.Second,
		Invincible: 10 * time.Second,
		Freeze:     5 * time.Second,
		Multiplier: 15 * time.Second,
	}
	for typ, d := range expected {
		info := Lookup(typ)
		if info.Duration != d {
			t.Errorf("%v duration = %v, expected %v", typ, info.Duration, d)
		}
		if info.Name == "" || info.Emoji == "" || info.Glyph == 0 {
			t.Errorf("%v has incomplete display data: %+v", typ, info)
		}
	}
}

func TestModifierExpiry(t *testing.T) {
	m := NewModifiers()

	at := m.Activate(Multiplier, 0)
	if at != 15000*time.Millisecond {
		t.Fatalf("expiry = %v, expected 15s", at)
	}
	if list := m.List(); len(list) != 1 || list[0].Type != Multiplier || list[0].Expires != 15*time.Second {
		t.Fatalf("List() = %+v, expected one multiplier expiring at 15s", list)
	}

	if expired := m.Expire(14999 * time.Millisecond); len(expired) != 0 {
		t.Errorf("Expire(14.999s) = %v, expected none", expired)
	}
	expired := m.Expire(15001 * time.Millisecond)
	if len(expired) != 1 || expired[0] != Multiplier {
		t.Errorf("Expire(15.001s) = %v, expected [multiplier]", expired)
	}
	if m.Len() != 0 || m.Has(Multiplier, 15001*time.Millisecond) {
		t.Error("multiplier should be gone after expiry")
	}
}

func TestModifierRecollectResets(t *testing.T) {
	m := NewModifiers()
	m.Activate(Speed, 0)
	at := m.Activate(Speed, 5*time.Second)

	if at != 13*time.Second {
		t.Errorf("re-collect expiry = %v, expected 13s (reset, not 16s)", at)
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, expected one entry per type", m.Len())
	}
	if r := m.Remaining(Speed, 10*time.Second); r != 3*time.Second {
		t.Errorf("Remaining() = %v, expected 3s", r)
	}
}

func TestModifierEffectMerge(t *testing.T) {
	m := NewModifiers()
	if e := m.Effect(0); e.SpeedMultiplier != 1 || e.ScoreMultiplier != 1 || e.Invincible || e.FreezeEnemies {
		t.Errorf("empty Effect() = %+v", e)
	}

	m.Activate(Speed, 0)
	m.Activate(Freeze, 0)
	m.Activate(Invincible, 0)
	e := m.Effect(time.Second)
	if e.SpeedMultiplier != 2 || !e.FreezeEnemies || !e.Invincible || e.ScoreMultiplier != 1 {
		t.Errorf("merged Effect() = %+v", e)
	}

	// Freeze lapses first, the others keep going.
	e = m.Effect(6 * time.Second)
	if e.FreezeEnemies || !e.Invincible {
		t.Errorf("Effect() at 6s = %+v, expected freeze off and invincible on", e)
	}

	m.Clear()
	if m.Len() != 0 {
		t.Error("Clear() should empty the set")
	}
}

package levels

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/maze-chase/internal/games/chase/ai"
	"github.com/vovakirdan/maze-chase/internal/maze"
)

func TestCampaignLoads(t *testing.T) {
	all, err := Campaign().LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error: %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("campaign has %d levels, expected 5", len(all))
	}
	for i, lvl := range all {
		if lvl.Number != i+1 {
			t.Errorf("level %d has number %d", i, lvl.Number)
		}
		if len(lvl.Ghosts) == 0 {
			t.Errorf("%s has no ghosts", lvl.Title())
		}
		if !lvl.Grid.Reachable(lvl.Grid.Start(), lvl.Grid.Goal()) {
			t.Errorf("%s goal unreachable", lvl.Title())
		}
	}
	if !all[4].Boss {
		t.Error("level 5 should be a boss level")
	}
}

func TestCampaignGhostSpeeds(t *testing.T) {
	lvl, err := Campaign().LoadNumber(5)
	if err != nil {
		t.Fatalf("LoadNumber(5) error: %v", err)
	}
	for _, gh := range lvl.NewGhosts() {
		if gh.Speed != bossSpeed {
			t.Errorf("boss ghost %d speed = %v, expected %v", gh.ID, gh.Speed, bossSpeed)
		}
	}

	lvl, _ = Campaign().LoadNumber(1)
	ghosts := lvl.NewGhosts()
	if ghosts[0].Speed != 1 || ghosts[0].Variant != ai.Patrol {
		t.Errorf("level 1 ghost = %v speed %v, expected patrol at speed 1", ghosts[0].Variant, ghosts[0].Speed)
	}
}

func TestLoadNumberMissing(t *testing.T) {
	if _, err := Campaign().LoadNumber(99); err == nil {
		t.Error("LoadNumber(99) should fail")
	}
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		code string
	}{
		{"malformed", "layout: [", CodeBadFile},
		{"empty layout", "number: 1\nlayout: []\n", CodeBadLayout},
		{"ragged rows", "layout:\n  - \"#####\"\n  - \"#SG#\"\n", CodeBadLayout},
		{"bad glyph", "layout:\n  - \"#S?G#\"\n", CodeBadLayout},
		{"no start", "layout:\n  - \"#..G#\"\n", CodeNoStart},
		{"no goal", "layout:\n  - \"#S..#\"\n", CodeNoGoal},
		{"unreachable", "layout:\n  - \"#S#G#\"\n", CodeGoalUnreachable},
		{
			"ghost on wall",
			"layout:\n  - \"#S..G#\"\nghosts:\n  - variant: chase\n    at: {x: 0, y: 0}\n",
			CodeGhostOnWall,
		},
		{
			"waypoint on wall",
			"layout:\n  - \"#S..G#\"\nghosts:\n  - variant: patrol\n    at: {x: 2, y: 0}\n    waypoints:\n      - {x: 5, y: 0}\n",
			CodeWaypointOnWall,
		},
		{"two starts", "layout:\n  - \"#S.SG#\"\n", CodeBadLayout},
		{
			"ghost cut off",
			"layout:\n  - \"#S..G#.#\"\nghosts:\n  - variant: chase\n    at: {x: 6, y: 0}\n",
			CodeGhostCutOff,
		},
		{
			"waypoint cut off",
			"layout:\n  - \"#S..G#.#\"\nghosts:\n  - variant: patrol\n    at: {x: 2, y: 0}\n    waypoints:\n      - {x: 3, y: 0}\n      - {x: 6, y: 0}\n",
			CodeWaypointCutOff,
		},
		{
			"bad variant",
			"layout:\n  - \"#S..G#\"\nghosts:\n  - variant: sneaky\n    at: {x: 2, y: 0}\n",
			CodeBadVariant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lvl, err := Parse([]byte(tt.yaml))
			if lvl != nil {
				t.Error("a level should not be returned with an error")
			}
			var ve ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Parse() error = %v, expected a ValidationError", err)
			}
			if ve.Code != tt.code {
				t.Errorf("Code = %s, expected %s", ve.Code, tt.code)
			}
		})
	}
}

func TestParseValid(t *testing.T) {
	data := []byte(`number: 7
name: Corridor
theme: ice
layout:
  - "#######"
  - "#S...G#"
  - "#######"
ghosts:
  - variant: predictive
    at: {x: 3, y: 1}
    speed: 0.5
`)
	lvl, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if lvl.Title() != "Level 7: Corridor" {
		t.Errorf("Title() = %q", lvl.Title())
	}
	if lvl.Grid.Goal() != (maze.Point{X: 5, Y: 1}) {
		t.Errorf("Goal() = %v", lvl.Grid.Goal())
	}
	gh := lvl.NewGhosts()[0]
	if gh.Variant != ai.Predictive || gh.Speed != 0.5 || gh.Cell() != (maze.Point{X: 3, Y: 1}) {
		t.Errorf("ghost = %v speed %v at %v", gh.Variant, gh.Speed, gh.Cell())
	}
}

func TestLoaderDirectory(t *testing.T) {
	dir := t.TempDir()
	good := "number: 2\nlayout:\n  - \"#S.G#\"\n"
	first := "number: 1\nlayout:\n  - \"#SG#\"\n"
	if err := os.WriteFile(filepath.Join(dir, "b.yaml"), []byte(good), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "a.yml"), []byte(first), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}

	all, err := NewLoader(dir).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error: %v", err)
	}
	if len(all) != 2 || all[0].Number != 1 || all[1].Number != 2 {
		t.Fatalf("LoadAll() returned %d levels in the wrong order", len(all))
	}

	if err := os.WriteFile(filepath.Join(dir, "c.yaml"), []byte("layout:\n  - \"#S#G#\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewLoader(dir).LoadAll(); err == nil {
		t.Error("an invalid file should fail the whole load")
	}
}

func TestYAMLExportReloads(t *testing.T) {
	lvl, err := Campaign().LoadNumber(3)
	if err != nil {
		t.Fatal(err)
	}
	back, err := FromYAML(ToYAML(lvl.Definition))
	if err != nil {
		t.Fatalf("FromYAML() error: %v", err)
	}
	if _, err := back.Build(); err != nil {
		t.Errorf("exported level does not rebuild: %v", err)
	}
	if len(back.Ghosts) != len(lvl.Ghosts) || back.Ghosts[2].Variant != ai.Patrol {
		t.Error("ghosts should survive export")
	}
}

func TestGeneratedLevelsValid(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for n := 1; n <= 12; n++ {
		d := Generated(n, rng)
		lvl, err := d.Build()
		if err != nil {
			t.Fatalf("Generated(%d) does not build: %v", n, err)
		}

		size := maze.SizeForLevel(n)
		if lvl.Grid.Rows() != size || lvl.Grid.Cols() != size {
			t.Errorf("Generated(%d) size = %dx%d, expected %d", n, lvl.Grid.Cols(), lvl.Grid.Rows(), size)
		}
		if want := min(1+n/2, maxGeneratedGhosts); len(lvl.Ghosts) != want {
			t.Errorf("Generated(%d) has %d ghosts, expected %d", n, len(lvl.Ghosts), want)
		}
		if lvl.Boss != (n%5 == 0) {
			t.Errorf("Generated(%d).Boss = %v", n, lvl.Boss)
		}
		for _, gs := range lvl.Ghosts {
			if gs.At == lvl.Grid.Start() {
				t.Errorf("Generated(%d) spawned a ghost on the start", n)
			}
		}
	}
}

func TestGeneratedDeterministic(t *testing.T) {
	a := Generated(4, rand.New(rand.NewSource(7)))
	b := Generated(4, rand.New(rand.NewSource(7)))

	for i := range a.Layout {
		if a.Layout[i] != b.Layout[i] {
			t.Fatalf("row %d differs for the same seed", i)
		}
	}
	for i := range a.Ghosts {
		if a.Ghosts[i].At != b.Ghosts[i].At {
			t.Errorf("ghost %d spawn differs for the same seed", i)
		}
	}
}

func TestSource(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	src, err := NewSource(false)
	if err != nil {
		t.Fatalf("NewSource() error: %v", err)
	}
	lvl, err := src.Level(2, rng)
	if err != nil || lvl.Name != "Crossroads" {
		t.Errorf("Level(2) = %v, %v", lvl, err)
	}
	if src.Final(4) || !src.Final(5) {
		t.Error("the campaign should end at level 5")
	}

	endless, _ := NewSource(true)
	lvl, err = endless.Level(2, rng)
	if err != nil {
		t.Fatalf("endless Level(2) error: %v", err)
	}
	if lvl.Name != "Maze 2" || endless.Final(100) {
		t.Errorf("endless Level(2) = %q", lvl.Name)
	}
}

func TestThemeFor(t *testing.T) {
	for _, name := range ThemeNames {
		if ThemeFor(name).Name != name {
			t.Errorf("ThemeFor(%q) missing", name)
		}
	}
	if ThemeFor("nope").Name != "classic" {
		t.Error("unknown theme should fall back to classic")
	}
}

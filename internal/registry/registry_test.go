package registry

import (
	"testing"

	"github.com/vovakirdan/maze-chase/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("test_b", func() Game { return &stubGame{id: "test_b"} })
	Register("test_a", func() Game { return &stubGame{id: "test_a"} })

	if !Exists("test_a") || Exists("test_missing") {
		t.Error("Exists() does not match registrations")
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
		if info.ID == "test_a" && info.Title != "Stub test_a" {
			t.Errorf("Title = %q, expected %q", info.Title, "Stub test_a")
		}
	}
	if len(ids) < 2 || ids[0] != "test_a" || ids[1] != "test_b" {
		t.Errorf("List() = %v, expected sorted IDs", ids)
	}

	g, err := Create("test_b")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if g.ID() != "test_b" {
		t.Errorf("Create() returned %q", g.ID())
	}
	if _, err := Create("test_missing"); err == nil {
		t.Error("Create() of an unknown ID should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_dup", func() Game { return &stubGame{id: "test_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("registering an ID twice should panic")
		}
	}()
	Register("test_dup", func() Game { return &stubGame{id: "test_dup"} })
}

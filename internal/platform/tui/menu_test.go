package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/maze-chase/internal/core"
	_ "github.com/vovakirdan/maze-chase/internal/games/chase"
	"github.com/vovakirdan/maze-chase/internal/progress"
)

func menuIDs(m MenuModel) []string {
	ids := make([]string, len(m.items))
	for i, item := range m.items {
		ids[i] = item.GameID
	}
	return ids
}

func updateMenu(m MenuModel, msg tea.Msg) MenuModel {
	next, _ := m.Update(msg)
	return next.(MenuModel)
}

func TestMenuSelect(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore("endless", 777, 4); err != nil {
		t.Fatalf("SaveScore() error: %v", err)
	}
	m := NewMenuModel(store, core.DefaultConfig())

	ids := strings.Join(menuIDs(m), ",")
	if ids != "chase,chase_endless" {
		t.Fatalf("menu items = %s, expected chase,chase_endless", ids)
	}
	if m.items[1].Best != 777 {
		t.Errorf("endless best = %d, expected 777", m.items[1].Best)
	}
	if !strings.Contains(m.View(), "best 777") {
		t.Error("menu should show the best score")
	}

	m = updateMenu(m, tea.KeyMsg{Type: tea.KeyDown})
	m = updateMenu(m, tea.KeyMsg{Type: tea.KeyDown}) // Stays on the last item
	m = updateMenu(m, tea.KeyMsg{Type: tea.KeyEnter})
	if r := m.Result(); r.GameID != "chase_endless" || r.Quit || r.WantsProgress {
		t.Errorf("Result() = %+v, expected chase_endless", r)
	}
}

func TestMenuProgressAndQuit(t *testing.T) {
	m := updateMenu(NewMenuModel(nil, core.DefaultConfig()), tea.KeyMsg{Type: tea.KeyTab})
	if !m.Result().WantsProgress {
		t.Error("tab should open progress")
	}

	m = updateMenu(NewMenuModel(nil, core.DefaultConfig()), runeKey('q'))
	if !m.Result().Quit {
		t.Error("q should quit")
	}
}

func TestCenterTextIgnoresStyling(t *testing.T) {
	styled := titleStyle.Render("abcd")
	got := centerText(styled, 10)
	if pad := lipgloss.Width(got) - lipgloss.Width(styled); pad != 3 {
		t.Errorf("padding = %d, expected 3", pad)
	}
}

func TestProgressView(t *testing.T) {
	store := openTestStore(t)
	if err := store.RecordLevel(progress.LevelResult{Mode: "campaign", Level: 1, Score: 1200, Stars: 2}); err != nil {
		t.Fatalf("RecordLevel() error: %v", err)
	}
	if err := store.RecordUnlock(progress.Unlock{ID: progress.FirstClear, Level: 1}); err != nil {
		t.Fatalf("RecordUnlock() error: %v", err)
	}
	if _, err := store.SaveScore("campaign", 1200, 1); err != nil {
		t.Fatalf("SaveScore() error: %v", err)
	}

	m := NewProgressModel(store, 120, 40)
	if m.Mode() != "campaign" || len(m.levels) != 1 || len(m.scores) != 1 {
		t.Fatalf("campaign view loaded %d levels and %d scores", len(m.levels), len(m.scores))
	}
	view := m.View()
	for _, want := range []string{"PROGRESS", "Top scores", "First Steps", "1/8"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ProgressModel)
	if m.Mode() != "endless" || len(m.levels) != 0 {
		t.Errorf("tab should switch to an empty endless view, got %s with %d levels", m.Mode(), len(m.levels))
	}

	next, _ = m.Update(runeKey('b'))
	if !next.(ProgressModel).IsGoingBack() {
		t.Error("b should go back")
	}
}

func TestStarString(t *testing.T) {
	if got := starString(2); got != "★★☆" {
		t.Errorf("starString(2) = %q", got)
	}
	if got := starString(5); got != "★★★" {
		t.Errorf("starString(5) = %q", got)
	}
}

func TestRenderScreenSize(t *testing.T) {
	s := core.NewScreen(6, 3)
	s.DrawTextColor(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd")
	out := RenderScreen(s)
	if lines := strings.Count(out, "\n") + 1; lines != 3 {
		t.Errorf("RenderScreen() has %d lines, expected 3", lines)
	}
	if w := lipgloss.Width(out); w != 6 {
		t.Errorf("RenderScreen() width = %d, expected 6", w)
	}
}

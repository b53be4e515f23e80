package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/maze-chase/internal/progress"
	"github.com/vovakirdan/maze-chase/internal/storage"
)

// Progress view layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show the side panel next to the table
	sidebarWidth       = 34
	topScoresShown     = 5
)

// progressModes are the tabs of the progress view, in order.
var progressModes = []string{"campaign", "endless"}

// ProgressKeyMap defines the key bindings for the progress view.
type ProgressKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ProgressKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ProgressKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextMode, k.PrevMode},
		{k.Back, k.Quit},
	}
}

// DefaultProgressKeyMap returns default key bindings.
func DefaultProgressKeyMap() ProgressKeyMap {
	return ProgressKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextMode: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next mode"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev mode"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ProgressModel shows per-level bests, top scores, and achievements.
type ProgressModel struct {
	store       *storage.Store
	modeCursor  int
	levels      []storage.LevelProgress
	scores      []storage.ScoreEntry
	unlocked    map[progress.AchievementID]bool
	loadErr     error
	table       table.Model
	help        help.Model
	keys        ProgressKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewProgressModel creates a new progress view model.
func NewProgressModel(store *storage.Store, width, height int) ProgressModel {
	m := ProgressModel{
		store:       store,
		keys:        DefaultProgressKeyMap(),
		help:        help.New(),
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// Mode returns the mode currently shown.
func (m ProgressModel) Mode() string {
	return progressModes[m.modeCursor]
}

// createTable creates the level table sized for the current window.
func (m *ProgressModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Level", Width: 6},
		{Title: "Best", Width: 8},
		{Title: "Stars", Width: 6},
		{Title: "Time", Width: 8},
		{Title: "Clears", Width: 7},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, tabs, and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads everything shown for the current mode.
func (m *ProgressModel) load() {
	m.levels, m.scores, m.loadErr = nil, nil, nil
	m.unlocked = make(map[progress.AchievementID]bool)

	if m.store != nil {
		mode := m.Mode()
		if m.levels, m.loadErr = m.store.Levels(mode); m.loadErr == nil {
			m.scores, m.loadErr = m.store.TopScores(mode, topScoresShown)
		}
		if m.loadErr == nil {
			var ids []progress.AchievementID
			ids, m.loadErr = m.store.UnlockedIDs()
			for _, id := range ids {
				m.unlocked[id] = true
			}
		}
	}
	m.updateTableRows()
}

// updateTableRows fills the table from the loaded levels.
func (m *ProgressModel) updateTableRows() {
	rows := make([]table.Row, len(m.levels))
	for i, lp := range m.levels {
		rows[i] = table.Row{
			fmt.Sprintf("%d", lp.Level),
			fmt.Sprintf("%d", lp.BestScore),
			starString(lp.BestStars),
			fmt.Sprintf("%.1fs", lp.BestTime.Seconds()),
			fmt.Sprintf("%d", lp.Clears),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// starString draws a 0-3 star rating.
func starString(n int) string {
	n = min(max(n, 0), 3)
	return strings.Repeat("★", n) + strings.Repeat("☆", 3-n)
}

// Init initializes the progress model.
func (m ProgressModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the progress view.
func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.PrevMode):
			m.modeCursor = (m.modeCursor + len(progressModes) - 1) % len(progressModes)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.NextMode):
			m.modeCursor = (m.modeCursor + 1) % len(progressModes)
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the progress view.
func (m ProgressModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.MarginBottom(1).Render(centerText("PROGRESS", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	levels := panelStyle.Render(m.renderLevels())
	side := panelStyle.Width(sidebarWidth).Render(m.renderSide())
	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, levels, "  ", side))
	} else {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, levels, side))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderTabs renders the mode tabs.
func (m ProgressModel) renderTabs() string {
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(progressModes))
	for i, mode := range progressModes {
		if i == m.modeCursor {
			tabs[i] = activeTabStyle.Render(mode)
		} else {
			tabs[i] = helpStyle.Render(" " + mode + " ")
		}
	}
	return strings.Join(tabs, " ")
}

// renderLevels renders the level table or an empty message.
func (m ProgressModel) renderLevels() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load progress:\n" + m.loadErr.Error())
	case len(m.levels) == 0:
		return emptyStyle.Render("No levels cleared yet.\nEat every dot to set a record!")
	}
	return m.table.View()
}

// renderSide renders top scores and the achievement list.
func (m ProgressModel) renderSide() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Top scores"))
	b.WriteString("\n")
	if len(m.scores) == 0 {
		b.WriteString(helpStyle.Render("  none yet"))
		b.WriteString("\n")
	}
	for i, s := range m.scores {
		fmt.Fprintf(&b, "%d. %6d  L%-2d %s\n", i+1, s.Score, s.Level, s.CreatedAt.Format("Jan 02"))
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %d/%d\n", titleStyle.Render("Achievements"), len(m.unlocked), len(progress.Catalog))
	for _, a := range progress.Catalog {
		if m.unlocked[a.ID] {
			b.WriteString(a.Icon + " " + a.Title + "\n")
		} else {
			b.WriteString(helpStyle.Render("·  "+a.Title+": "+a.Description) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ProgressModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ProgressModel) IsQuitting() bool {
	return m.quitting
}

// RunProgress runs the progress view.
// Returns true if user wants to go back to menu, false if quitting.
func RunProgress(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewProgressModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ProgressModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}

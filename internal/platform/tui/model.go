package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/events"
	"github.com/vovakirdan/maze-chase/internal/progress"
	"github.com/vovakirdan/maze-chase/internal/registry"
	"github.com/vovakirdan/maze-chase/internal/storage"
)

// footerHeight is the number of rows reserved below the game for help.
const footerHeight = 1

// Sounder consumes drained game events. The audio engine implements it.
type Sounder interface {
	Handle(evs []events.Event)
	ToggleMute() bool
}

// unlockMarker is implemented by games that skip achievements already
// stored from earlier sessions.
type unlockMarker interface {
	MarkUnlocked(ids []progress.AchievementID)
}

// configReporter is implemented by games that fall back to defaults when
// their config cannot be loaded.
type configReporter interface {
	ConfigError() error
}

// Options wires the model to the outside world. Every field is optional.
type Options struct {
	Store  *storage.Store
	Audio  Sounder
	Logger *log.Logger

	// InSession enables the back-to-menu key when paused or finished.
	InSession bool
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	help       help.Model
	showHelp   bool
	soundOn    bool
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if pr, ok := game.(registry.ProgressRecorder); ok && opts.Store != nil {
		pr.SetSink(newLoggingSink(opts.Store, logger))
	}
	if um, ok := game.(unlockMarker); ok && opts.Store != nil {
		ids, err := opts.Store.UnlockedIDs()
		if err != nil {
			logger.Warn("could not load achievements", "error", err)
		} else {
			um.MarkUnlocked(ids)
		}
	}

	h := help.New()
	h.Styles.ShortKey = helpStyle
	h.Styles.ShortDesc = helpStyle

	m := Model{
		game:       game,
		opts:       opts,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		help:       h,
		soundOn:    opts.Audio != nil,
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.gameHeight())
	return m
}

// gameHeight is the screen height left for the game.
func (m Model) gameHeight() int {
	return max(m.config.ScreenH-footerHeight, 1)
}

// gameConfig is the runtime config the game sees.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = m.gameHeight()
	return cfg
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	// Note: gameState will be set on first tick (value receiver limitation)
	if cr, ok := m.game.(configReporter); ok {
		if err := cr.ConfigError(); err != nil {
			m.logger.Warn("could not load config, using defaults", "error", err)
		}
	}

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys
	switch {
	case key.Matches(msg, keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	case key.Matches(msg, keys.Mute):
		if m.opts.Audio != nil {
			m.soundOn = m.opts.Audio.ToggleMute()
		}
		return m, nil
	case key.Matches(msg, keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("could not save screenshot", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	case key.Matches(msg, keys.Back) && m.opts.InSession && (m.gameState.GameOver || m.gameState.Paused):
		m.backToMenu = true
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		// The game gets the quit action to drop in-flight state
		m.game.Step(m.inputFrame)
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, m.gameHeight())
	m.help.Width = msg.Width

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, m.gameHeight())
	} else if !m.gameState.GameOver {
		m.game.Reset(m.gameConfig())
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if src, ok := m.game.(registry.EventSource); ok {
		evs := src.DrainEvents()
		if m.opts.Audio != nil && len(evs) > 0 {
			m.opts.Audio.Handle(evs)
		}
	}

	// Save score on game over (once per run)
	switch {
	case !m.gameState.GameOver:
		m.scoreSaved = false
	case !m.scoreSaved:
		m.scoreSaved = true
		if m.opts.Store != nil && m.gameState.Score > 0 {
			mode := modeOf(m.game.ID())
			if _, err := m.opts.Store.SaveScore(mode, m.gameState.Score, m.gameState.Level); err != nil {
				m.logger.Warn("could not save score", "mode", mode, "error", err)
			} else {
				m.logger.Info("score saved", "mode", mode, "score", m.gameState.Score, "level", m.gameState.Level)
			}
		}
	}

	if m.gameState.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file and returns its path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".mazechase", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	return path, os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	body := RenderScreen(m.screen)

	footer := m.help.View(m.keyMapper.Keys)
	if m.opts.Audio != nil && !m.soundOn {
		footer = helpStyle.Render("♪ muted  ") + footer
	}

	// The full help covers the bottom of the game
	if extra := strings.Count(footer, "\n"); extra > 0 {
		lines := strings.Split(body, "\n")
		lines = lines[:max(len(lines)-extra, 0)]
		body = strings.Join(lines, "\n")
	}
	return body + "\n" + footer
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Click-to-move
	)

	_, err := p.Run()
	return err
}

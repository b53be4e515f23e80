package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/maze-chase/internal/audio"
	"github.com/vovakirdan/maze-chase/internal/config"
	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/games/chase"
	"github.com/vovakirdan/maze-chase/internal/platform/tui"
	"github.com/vovakirdan/maze-chase/internal/registry"
	"github.com/vovakirdan/maze-chase/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagLevelsDir  string
	flagEndless    bool
	flagMute       bool
	flagVolume     float64
)

var playCmd = &cobra.Command{
	Use:   "play [campaign|endless]",
	Short: "Play a run",
	Long: `Start a campaign or endless run.

Controls:
  Click         - Run to a cell
  Arrows/WASD   - Run to the end of a corridor
  Enter/Space   - Next level
  P/Esc         - Pause
  R             - Restart the level
  M             - Mute
  ?             - Help
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  mazechase play
  mazechase play --level 3 --difficulty hard
  mazechase play endless --seed 7
  mazechase play --levels ./my-levels --mute
  mazechase play --config ./my-chase.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "Play generated mazes without end")
}

// addGameFlags registers the flags shared by play and menu.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign level to start at")
	cmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory of level files replacing the built-in campaign")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Start without sound")
	cmd.Flags().Float64Var(&flagVolume, "volume", 0.8, "Sound volume from 0 to 1")
}

// applyGameFlags pushes the flags into the game package before creation.
// A custom config that does not load is an error rather than a silent
// fallback to the defaults.
func applyGameFlags() error {
	if flagConfig != "" {
		if _, err := config.LoadChase(flagConfig); err != nil {
			return err
		}
	}
	chase.SetConfigPath(flagConfig)
	chase.SetDifficultyPreset(flagDifficulty)
	chase.SetLevelsDir(flagLevelsDir)
	if flagLevel > 0 {
		chase.SetStartLevel(flagLevel)
	}
	return nil
}

// terminalConfig sizes the runtime config from stdout.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the progress database. A failure is logged and the
// game runs without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open progress database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// startAudio starts the sound engine unless muted. Audio failures leave
// the game silent.
func startAudio(logger *log.Logger) (*audio.Engine, func()) {
	if flagMute {
		return nil, func() {}
	}
	engine := audio.NewEngine(flagVolume)
	if err := engine.Start(); err != nil {
		logger.Warn("audio disabled", "error", err)
		return nil, func() {}
	}
	return engine, func() {
		played, dropped := engine.Stats()
		logger.Debug("audio stopped", "played", played, "dropped", dropped)
		engine.Stop()
	}
}

// gameOptions wires storage, audio and logging into the game model.
func gameOptions(store *storage.Store, engine *audio.Engine, logger *log.Logger) tui.Options {
	opts := tui.Options{Store: store, Logger: logger}
	// A nil engine must stay a nil interface
	if engine != nil {
		opts.Audio = engine
	}
	return opts
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "chase"
	if flagEndless || (len(args) == 1 && args[0] == "endless") {
		gameID = "chase_endless"
	} else if len(args) == 1 && args[0] != "campaign" {
		return fmt.Errorf("unknown mode %q, expected campaign or endless", args[0])
	}

	logger, closeLog, err := screenLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	if err := applyGameFlags(); err != nil {
		return err
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	engine, stopAudio := startAudio(logger)
	defer stopAudio()

	if err := tui.Run(game, terminalConfig(), gameOptions(store, engine, logger)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	if g, ok := game.(*chase.Game); ok {
		if err := g.LoadError(); err != nil {
			return fmt.Errorf("loading levels: %w", err)
		}
		if err := g.SinkError(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: progress was not fully saved: %v\n", err)
		}
	}
	return nil
}

package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-chase/internal/platform/tui"
	"github.com/vovakirdan/maze-chase/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start a mode, Tab to open the
progress view. After a run ends, you return to the menu to play again.

Examples:
  mazechase menu
  mazechase menu --fps 30
  mazechase menu --db ./progress.db --mute`,
	RunE: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := screenLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	engine, stopAudio := startAudio(logger)
	defer stopAudio()

	cfg := terminalConfig()
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsProgress {
			goBack, err := tui.RunProgress(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		if err := applyGameFlags(); err != nil {
			return err
		}
		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("could not create game", "id", menuResult.GameID, "error", err)
			continue
		}

		// Fresh seed per run unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		if err := tui.Run(game, cfg, gameOptions(store, engine, logger)); err != nil {
			logger.Error("game ended with error", "id", menuResult.GameID, "error", err)
		}
	}
}

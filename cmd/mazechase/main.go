// mazechase is a terminal maze chase game: eat every dot, reach the goal,
// and stay clear of the ghosts.
//
// Usage:
//
//	mazechase play [campaign|endless] - Play a run
//	mazechase menu                    - Pick a mode interactively
//	mazechase serve                   - Start SSH server for remote play
//	mazechase levels list             - List campaign levels
//	mazechase progress [mode]         - Show best results per level
//	mazechase scores [mode]           - Show top scores
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.mazechase/progress.db)
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs while a game is on screen
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import the game to register its modes
	_ "github.com/vovakirdan/maze-chase/internal/games/chase"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mazechase",
	Short: "Maze Chase - eat the dots, dodge the ghosts",
	Long: `Maze Chase is a terminal maze game. Click a cell or use the arrow keys
to run, eat every dot, then reach the goal before the ghosts catch you.

Available commands:
  play      - Play the campaign or endless mode
  menu      - Interactive mode picker with progress view
  serve     - Start SSH server for remote play
  levels    - List, export and validate level files
  progress  - Show best results per level and achievements
  scores    - View top scores

Examples:
  mazechase play
  mazechase play endless --seed 42
  mazechase menu
  mazechase levels validate ./my-levels
  mazechase serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mazechase/progress.db", "Path to progress database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file used while a game is on screen")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds a logger writing to w at the --log-level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "mazechase",
	}), nil
}

// screenLogger returns the logger used while the alternate screen is up.
// Without --log-file, logs are dropped so they cannot tear the display.
func screenLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		logger, err := newLogger(io.Discard)
		return logger, func() {}, err
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger, err := newLogger(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-chase/internal/progress"
	"github.com/vovakirdan/maze-chase/internal/storage"
)

var flagClear bool

var progressCmd = &cobra.Command{
	Use:   "progress [campaign|endless]",
	Short: "Show best results per level and achievements",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runProgress,
}

var scoresCmd = &cobra.Command{
	Use:   "scores [campaign|endless]",
	Short: "Show top scores",
	Long: `Display the top 10 scores for a mode (campaign by default).

Examples:
  mazechase scores
  mazechase scores endless
  mazechase scores endless --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every score for the mode")
}

// modeArg returns the mode named on the command line.
func modeArg(args []string) (string, error) {
	if len(args) == 0 {
		return "campaign", nil
	}
	switch args[0] {
	case "campaign", "endless":
		return args[0], nil
	}
	return "", fmt.Errorf("unknown mode %q, expected campaign or endless", args[0])
}

func runProgress(_ *cobra.Command, args []string) error {
	mode, err := modeArg(args)
	if err != nil {
		return err
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	lvls, err := store.Levels(mode)
	if err != nil {
		return err
	}

	fmt.Printf("Progress - %s\n\n", mode)
	if len(lvls) == 0 {
		fmt.Println("No levels cleared yet.")
	} else {
		fmt.Printf("  %-5s  %-8s  %-5s  %-8s  %-6s  %s\n", "Level", "Best", "Stars", "Time", "Clears", "Combo")
		fmt.Printf("  %-5s  %-8s  %-5s  %-8s  %-6s  %s\n", "-----", "----", "-----", "----", "------", "-----")
		for _, lp := range lvls {
			fmt.Printf("  %-5d  %-8d  %-5d  %-8s  %-6d  x%d\n",
				lp.Level, lp.BestScore, lp.BestStars, fmt.Sprintf("%.1fs", lp.BestTime.Seconds()), lp.Clears, lp.MaxCombo)
		}
	}

	unlocks, err := store.Unlocks()
	if err != nil {
		return err
	}
	unlocked := make(map[progress.AchievementID]storage.UnlockEntry, len(unlocks))
	for _, u := range unlocks {
		unlocked[u.ID] = u
	}

	fmt.Printf("\nAchievements %d/%d\n", len(unlocked), len(progress.Catalog))
	for _, a := range progress.Catalog {
		if u, ok := unlocked[a.ID]; ok {
			fmt.Printf("  [x] %-14s  %s (level %d, %s)\n", a.Title, a.Description, u.Level, u.UnlockedAt.Format("2006-01-02"))
		} else {
			fmt.Printf("  [ ] %-14s  %s\n", a.Title, a.Description)
		}
	}
	return nil
}

func runScores(_ *cobra.Command, args []string) error {
	mode, err := modeArg(args)
	if err != nil {
		return err
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening progress database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(mode); err != nil {
			return err
		}
		fmt.Printf("Cleared %s scores.\n", mode)
		return nil
	}

	scores, err := store.TopScores(mode, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n\n", mode)
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'mazechase play %s' to set the first high score!\n", mode)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "----", "-----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %-5d  %s\n", i+1, entry.Score, entry.Level, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(mode); err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Best: %d  Games: %d  Average: %.0f  Furthest level: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.BestLevel)
	}
	return nil
}

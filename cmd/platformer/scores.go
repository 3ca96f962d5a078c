package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show the leaderboard",
	Long: `Display the best campaign totals, or the best runs of one level.

Examples:
  platformer scores
  platformer scores 2
  platformer scores 2 --limit 25
  platformer scores 2 --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run of the level")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run database: %w", err)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagClear {
			return fmt.Errorf("--clear needs a level id")
		}
		return printCampaigns(store)
	}

	levelID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("level must be a number, got %q", args[0])
	}
	if !registry.Exists(levelID) {
		return fmt.Errorf("level %d: %w", levelID, sim.ErrLevelNotFound)
	}

	if flagClear {
		if err := store.ClearRuns(levelID); err != nil {
			return err
		}
		fmt.Printf("Cleared runs for level %d.\n", levelID)
		return nil
	}

	return printLevel(store, levelID)
}

func printCampaigns(store *storage.Store) error {
	runs, err := store.TopCampaigns(flagLimit)
	if err != nil {
		return err
	}

	fmt.Println("Best Campaign Totals")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'platformer play' to set the first score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-10s  %s\n", "Rank", "Total", "Level", "Result", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-10s  %s\n", "----", "-----", "-----", "------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-6d  %-10s  %s\n",
			i+1, r.Total, r.LevelID, r.Outcome, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printLevel(store *storage.Store, levelID int) error {
	runs, err := store.TopRuns(levelID, flagLimit)
	if err != nil {
		return err
	}

	name := fmt.Sprintf("Level %d", levelID)
	for _, info := range registry.List() {
		if info.ID == levelID {
			name = fmt.Sprintf("%s (level %d)", info.Name, levelID)
		}
	}

	fmt.Printf("High Scores - %s\n", name)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'platformer play %d' to set the first high score!\n", levelID)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-5s  %-10s  %s\n", "Rank", "Score", "Coins", "Result", "Date")
	fmt.Printf("  %-4s  %-6s  %-5s  %-10s  %s\n", "----", "-----", "-----", "------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-6d  %-5d  %-10s  %s\n",
			i+1, r.Score, r.Coins, r.Outcome, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetLevelStats(levelID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Attempts: %d  Cleared: %d (%.0f%%)  Avg: %.1f\n",
		stats.BestScore, stats.Attempts, stats.Completed, stats.CompletionRate()*100, stats.AvgScore)
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a starting level interactively",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a level, Enter to play from it.
After a campaign ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play from the selected level
  Tab          - Leaderboard
  Q/Esc        - Quit

Examples:
  platformer menu
  platformer menu --fps 30
  platformer menu --levels ./my-levels`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue // Back to menu
			}
			return nil // User quit from scoreboard
		}

		back, err := playLevel(store, cfg, menuResult.LevelID)
		if err != nil {
			// A small terminal can be resized before picking again.
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			logger.Error("campaign failed", "level", menuResult.LevelID, "err", err)
			continue
		}
		if !back {
			return nil
		}
	}
}

package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play the campaign",
	Long: `Start the campaign, from the first level or from the given level id.

Controls:
  Left/Right, A/D  - Run
  Space/Up/W       - Jump
  Enter            - Next level
  P                - Pause
  R                - Restart (after game over)
  Esc              - Back to the level picker
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More lives, longer key hold, enemies speed up from normal pace
  normal - Enemies start at 30% extra speed and speed up per level
  hard   - Fewer lives, enemies start at 70% extra speed
  fixed  - No progression, stays at config's initial level

Examples:
  platformer play
  platformer play 2
  platformer play --difficulty hard
  platformer play --config ./my-platformer.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) error {
	levelID := 0
	if len(args) == 1 {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("level must be a number, got %q", args[0])
		}
		if !registry.Exists(id) {
			fmt.Fprintln(os.Stderr, "Run 'platformer list' to see available levels.")
			return fmt.Errorf("level %d: %w", id, sim.ErrLevelNotFound)
		}
		levelID = id
	}

	if err := applyGameFlags(); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	_, err := playLevel(store, runtimeConfig(), levelID)
	return err
}

// applyGameFlags passes --config and --difficulty to the game package.
func applyGameFlags() error {
	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	platformer.SetConfigPath(flagConfig)
	platformer.SetDifficultyPreset(flagDifficulty)
	return nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}

// openStore opens the run database. The game still runs without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		logger.Warn("run database unavailable", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// playLevel runs one campaign and reports whether the player went back to the picker.
func playLevel(store *storage.Store, cfg core.RuntimeConfig, levelID int) (bool, error) {
	game := platformer.New()
	game.SetLogger(logger)
	game.SetStartLevel(levelID)
	if store != nil {
		game.SetRunSaver(store)
	}

	back, err := tui.Run(game, cfg, logger)
	if errors.Is(err, sim.ErrRenderTargetUnavailable) {
		return false, fmt.Errorf("terminal too small (need at least %dx%d): %w",
			platformer.MinScreenW, platformer.MinScreenH+1, err)
	}
	if err != nil {
		return false, fmt.Errorf("running game: %w", err)
	}

	if r := game.LastResult(); r.Outcome == platformer.RunComplete || r.Outcome == platformer.RunGameOver {
		logger.Info("campaign ended", "level", r.LevelID, "outcome", r.Outcome, "total", r.Total)
	}
	return back, nil
}

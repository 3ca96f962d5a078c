// platformer is a terminal platformer: run, jump, collect coins and reach
// the flag on every level.
//
// Usage:
//
//	platformer list              - List available levels
//	platformer play [level]      - Play the campaign, optionally from a level
//	platformer menu              - Pick a starting level interactively
//	platformer scores [level]    - Show the leaderboard
//	platformer validate <file>   - Check level files
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--db <path>        - Set database path (default: ~/.arcade/platformer.db)
//	--levels <dir>     - Load extra level files from a directory
//	--log-file <path>  - Write debug logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Register the built-in levels
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

var (
	// Global flags
	flagFPS       int
	flagDBPath    string
	flagLevelsDir string
	flagLogFile   string

	logger  = log.New(io.Discard)
	logSink io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logSink != nil {
		logSink.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "TUI Platformer - a side-scrolling platformer in your terminal",
	Long: `TUI Platformer is a small platform game that runs in the terminal.
Run and jump across platforms, collect coins, avoid patrolling enemies and
touch the flag to clear each level.

Available commands:
  list      - Show all available levels
  play      - Play the campaign
  menu      - Interactive level picker
  scores    - View the leaderboard
  validate  - Check level files

Examples:
  platformer play
  platformer play 2 --difficulty hard
  platformer menu --levels ./my-levels
  platformer scores 1`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/platformer.db", "Path to run database")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory with extra level files")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(validateCmd)
}

// setup opens the log file and registers extra levels before any command runs.
func setup(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	// The terminal belongs to the game, so logs only go to a file.
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		logSink = f
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "platformer",
			Level:           log.DebugLevel,
		})
	}

	if flagLevelsDir != "" {
		n, err := levels.NewLoader(flagLevelsDir).RegisterAll()
		if err != nil {
			// Duplicates and unreadable files are skipped, the rest still load.
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
		logger.Info("extra levels registered", "dir", flagLevelsDir, "count", n)
	}

	return nil
}

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check level files",
	Long: `Parse and validate level files without playing them.

Examples:
  platformer validate ./my-levels/cave.yaml
  platformer validate ./my-levels/*.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func runValidate(_ *cobra.Command, args []string) error {
	loader := levels.NewLoader("")
	failed := 0

	for _, path := range args {
		f, err := loader.LoadFile(path)
		if err != nil {
			failed++
			var verr sim.ValidationError
			if errors.As(err, &verr) {
				fmt.Printf("FAIL  %s: [%s] %s\n", path, verr.Code, verr.Message)
			} else {
				fmt.Printf("FAIL  %s: %v\n", path, err)
			}
			continue
		}
		fmt.Printf("ok    %s: level %d %q, %d platforms, %d enemies, %d coins worth %d\n",
			path, f.Level.ID, f.Level.Name, len(f.Level.Platforms), len(f.Level.Enemies),
			len(f.Level.Collectibles), f.Level.TotalValue())
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d level files invalid", failed, len(args))
	}
	return nil
}

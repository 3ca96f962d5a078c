package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long:  `Shows every level in the campaign, built-in and loaded with --levels.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	levels := registry.List()

	if len(levels) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, l := range levels {
		maxNameLen = max(maxNameLen, len(l.Name))
	}

	// Print header
	fmt.Printf("  %-4s  %-*s  %s\n", "ID", maxNameLen, "Name", "Source")
	fmt.Printf("  %-4s  %-*s  %s\n", "--", maxNameLen, "----", "------")

	// Print levels
	for _, l := range levels {
		fmt.Printf("  %-4d  %-*s  %s\n", l.ID, maxNameLen, l.Name, l.Source)
	}

	fmt.Println()
	fmt.Println("Run 'platformer play <id>' to start from a level.")
}

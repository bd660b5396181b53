package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-quest/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long:  `Shows a list of all levels known to the platform, built-in and loaded.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	quests := registry.List()

	if len(quests) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, q := range quests {
		if len(q.ID) > maxIDLen {
			maxIDLen = len(q.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, q := range quests {
		fmt.Printf("  %-*s  %s\n", maxIDLen, q.ID, q.Title)
	}

	fmt.Println()
	fmt.Println("Run 'quest play <id>' to play a level.")
}

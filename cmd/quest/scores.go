package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-quest/internal/registry"
	"github.com/vovakirdan/tui-quest/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <level>",
	Short: "Show best attempts for a level",
	Long: `Display the top 10 attempts for the specified level, fewest steps first.

Examples:
  quest scores meadow
  quest scores vault`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	questID := args[0]

	quest, err := registry.Get(questID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", questID)
		fmt.Fprintln(os.Stderr, "Run 'quest list' to see available levels.")
		os.Exit(1)
	}

	// Open attempt storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening attempts database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	attempts, err := store.BestAttempts(questID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving attempts: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Attempts - %s\n", quest.Title)
	fmt.Println()

	if len(attempts) == 0 {
		fmt.Println("No attempts recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'quest play %s' to set the first record!\n", questID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %s\n", "Rank", "Steps", "Cmds", "Bumps", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %s\n", "----", "-----", "----", "-----", "----")

	for i, entry := range attempts {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-6d  %-6d  %s\n", i+1, entry.Steps, entry.Commands, entry.Blocked, dateStr)
	}

	fmt.Println()
	if count, err := store.SolveCount(questID); err == nil {
		fmt.Printf("Solved %d time(s).\n", count)
	}
}

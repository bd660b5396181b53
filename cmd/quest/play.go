package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-quest/internal/core"
	"github.com/vovakirdan/tui-quest/internal/engine"
	"github.com/vovakirdan/tui-quest/internal/platform/tui"
	"github.com/vovakirdan/tui-quest/internal/registry"
	"github.com/vovakirdan/tui-quest/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <level>",
	Short: "Play a level",
	Long: `Start playing the specified level.

Controls:
  Arrows/WASD - Move the hero
  E/Space     - Pick up the object on the hero's cell
  O           - Open the padlock next to the hero
  R           - Restart the attempt
  Q/Ctrl+C    - Quit

Examples:
  quest play meadow
  quest play vault
  quest play my-level --levels ./levels`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	questID := args[0]

	quest, err := registry.Get(questID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", questID)
		fmt.Fprintln(os.Stderr, "Run 'quest list' to see available levels.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate(),
	}

	eng, err := engine.New(quest)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open attempt storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open attempts database: %v\n", err)
		// Continue without storage - play still works
		store = nil
	}

	runErr := tui.Run(eng, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running level: %v\n", runErr)
		os.Exit(1)
	}
}

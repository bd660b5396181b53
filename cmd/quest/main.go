// quest is a TUI platform for playing grid puzzle levels in the terminal.
//
// Usage:
//
//	quest list               - List available levels
//	quest play <level>       - Play a level
//	quest menu               - Start menu to pick levels interactively
//	quest run <level> <file> - Replay a command script headlessly
//	quest serve              - Start SSH server for remote play
//	quest scores <level>     - Show best attempts for a level
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 30)
//	--db <path>      - Set database path (default: ~/.quest/attempts.db)
//	--config <path>  - Path to custom config YAML
//	--levels <dir>   - Directory with extra YAML level files
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-quest/internal/config"
	"github.com/vovakirdan/tui-quest/internal/levels"

	// Import built-in levels to register them
	_ "github.com/vovakirdan/tui-quest/internal/quests/meadow"
	_ "github.com/vovakirdan/tui-quest/internal/quests/vault"
)

var (
	// Global flags
	flagFPS    int
	flagDBPath string
	flagConfig string
	flagLevels string

	// Loaded at startup, before any subcommand runs
	questCfg config.QuestConfig
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "quest",
	Short: "TUI Quest - Solve grid puzzles in your terminal",
	Long: `TUI Quest is a terminal-based puzzle platform. Guide the hero
through walls, keys and padlocks to the flag, with guidance after
every move.

Available commands:
  list     - Show all available levels
  play     - Play a specific level directly
  menu     - Interactive level picker menu
  run      - Replay a command script headlessly
  serve    - Start SSH server for remote play
  scores   - View best attempts

Examples:
  quest list
  quest play meadow
  quest menu
  quest run vault solution.txt
  quest serve --ssh :2222
  quest scores vault`,
	PersistentPreRunE: setup,
}

// setup loads the configuration and registers extra YAML levels before
// any subcommand runs.
func setup(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	questCfg = cfg

	dir := flagLevels
	if dir == "" {
		dir = questCfg.Levels.Dir
	}
	if dir != "" {
		if _, err := levels.RegisterAll(dir); err != nil {
			return fmt.Errorf("loading levels from %s: %w", dir, err)
		}
	}
	return nil
}

// tickRate resolves the effective tick rate: flag wins over config.
func tickRate() int {
	if flagFPS > 0 {
		return flagFPS
	}
	return questCfg.Playback.TickRate
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config value)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.quest/attempts.db", "Path to attempts database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Directory with extra YAML level files")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

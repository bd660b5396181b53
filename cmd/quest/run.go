package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-quest/internal/core"
	"github.com/vovakirdan/tui-quest/internal/engine"
	"github.com/vovakirdan/tui-quest/internal/registry"
	"github.com/vovakirdan/tui-quest/internal/storage"
)

var (
	flagWatch  bool
	flagNoSave bool
)

var runCmd = &cobra.Command{
	Use:   "run <level> <script>",
	Short: "Replay a command script headlessly",
	Long: `Replay a script of commands against a level and report the verdict.

The script is a text file with one command per line:
  move_up, move_down, move_left, move_right, pick, open
Blank lines and lines starting with '#' are skipped.

The exit code is 0 when the script completes the level, 1 otherwise.

Examples:
  quest run meadow solution.txt
  quest run vault solution.txt --watch`,
	Args: cobra.ExactArgs(2),
	RunE: runScript,
}

func init() {
	runCmd.Flags().BoolVar(&flagWatch, "watch", false, "Render the board after each command")
	runCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the attempt")
}

func runScript(cmd *cobra.Command, args []string) error {
	questID, scriptPath := args[0], args[1]

	quest, err := registry.Get(questID)
	if err != nil {
		return fmt.Errorf("unknown level %q, run 'quest list' to see available levels", questID)
	}

	file, err := os.Open(scriptPath)
	if err != nil {
		return fmt.Errorf("opening script: %w", err)
	}
	defer file.Close()

	eng, err := engine.New(quest)
	if err != nil {
		return err
	}

	var screen *core.Screen
	if flagWatch {
		screen = core.NewScreen(core.DefaultConfig().ScreenW, core.DefaultConfig().ScreenH)
	}

	lineNo := 0
	applied := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if err := eng.ApplyWire(line); err != nil {
			return fmt.Errorf("script line %d: %w", lineNo, err)
		}
		applied++

		if flagWatch {
			eng.Render(screen)
			fmt.Println(screen.String())
			time.Sleep(time.Duration(questCfg.Playback.StepDelayMs) * time.Millisecond)
		} else {
			fmt.Printf("%3d  %-12s %s\n", applied, line, eng.Verdict().Message())
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading script: %w", err)
	}

	verdict := eng.Verdict()
	hero := eng.Hero()
	blocked := len(eng.Events().BlockedMoves)

	fmt.Println()
	if verdict.Solved() {
		fmt.Printf("Completed %q in %d steps (%d commands, %d bumps).\n",
			questID, hero.Steps, eng.Commands().Count(), blocked)
	} else {
		fmt.Printf("Not completed: %s\n", verdict.Message())
	}

	if !flagNoSave {
		if store, serr := storage.Open(flagDBPath); serr == nil {
			//nolint:errcheck // Best-effort save
			store.SaveAttempt(storage.AttemptEntry{
				QuestID:  questID,
				Solved:   verdict.Solved(),
				Steps:    hero.Steps,
				Commands: eng.Commands().Count(),
				Blocked:  blocked,
			})
			store.Close()
		}
	}

	if !verdict.Solved() {
		// Non-zero exit without cobra usage noise
		cmd.SilenceUsage = true
		return fmt.Errorf("script did not complete the level")
	}
	return nil
}

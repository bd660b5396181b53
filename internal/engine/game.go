package engine

import (
	"fmt"

	"github.com/vovakirdan/tui-quest/internal/core"
)

// Step advances the attempt by one simulation tick, translating
// platform actions into quest commands. Movement is command-driven,
// not physics-driven: a tick without input changes nothing.
func (e *Engine) Step(input core.InputFrame) core.StepResult {
	if input.Has(core.ActionRestart) {
		e.Reset(core.RuntimeConfig{ScreenW: e.screenW, ScreenH: e.screenH})
		return core.StepResult{State: e.State()}
	}

	switch {
	case input.Has(core.ActionUp):
		e.Apply(core.Move(core.DirUp))
	case input.Has(core.ActionDown):
		e.Apply(core.Move(core.DirDown))
	case input.Has(core.ActionLeft):
		e.Apply(core.Move(core.DirLeft))
	case input.Has(core.ActionRight):
		e.Apply(core.Move(core.DirRight))
	case input.Has(core.ActionPick):
		e.Apply(core.Pick())
	case input.Has(core.ActionOpen):
		e.Apply(core.Open())
	}

	return core.StepResult{State: e.State()}
}

// State reports the attempt status for the platform.
func (e *Engine) State() core.GameState {
	return core.GameState{
		Solved:   e.verdict.Solved(),
		Steps:    e.hero.Steps,
		Guidance: e.verdict.Message(),
	}
}

// Render draws the current attempt into the screen buffer.
func (e *Engine) Render(dst *core.Screen) {
	dst.Clear()

	e.renderHUD(dst)

	if e.tooSmall {
		e.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	e.renderMap(dst)

	// Guidance (or nothing once solved) on the bottom row
	if msg := e.verdict.Message(); msg != "" {
		dst.DrawTextColored((dst.Width()-len(msg))/2, dst.Height()-1, msg, core.ColorYellow)
	}

	if e.verdict.Solved() {
		e.renderOverlay(dst,
			"Level complete!",
			fmt.Sprintf("Steps: %d — press R to replay", e.hero.Steps))
	}
}

// renderHUD draws the top status bar.
func (e *Engine) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s — Steps: %d", e.quest.Title, e.hero.Steps)
	if n := len(e.events.BlockedMoves); n > 0 {
		hud += fmt.Sprintf("  Bumps: %d", n)
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderMap draws walls, objects, the flag and the hero.
func (e *Engine) renderMap(dst *core.Screen) {
	level := e.parsed.Level

	for _, w := range level.Walls() {
		dst.SetColored(e.mapOffsetX+w.X, e.mapOffsetY+w.Y, '#', core.ColorGray)
	}

	dst.SetColored(e.mapOffsetX+level.Flag.X, e.mapOffsetY+level.Flag.Y, 'F', core.ColorGreen)

	if e.parsed.Key != nil && !e.events.GoalDone(core.GoalKeyCollected) {
		dst.SetColored(e.mapOffsetX+e.parsed.Key.X, e.mapOffsetY+e.parsed.Key.Y, 'K', core.ColorYellow)
	}
	if e.parsed.Padlock != nil && !e.events.GoalDone(core.GoalLockUnlocked) {
		dst.SetColored(e.mapOffsetX+e.parsed.Padlock.X, e.mapOffsetY+e.parsed.Padlock.Y, 'P', core.ColorRed)
	}

	dst.SetColored(e.mapOffsetX+e.hero.X, e.mapOffsetY+e.hero.Y, '@', core.ColorCyan)
}

// renderOverlay draws a centered boxed message.
func (e *Engine) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY + 1; y < boxY+boxH-1; y++ {
		dst.DrawHLine(boxX+1, y, boxW-2, ' ')
	}
	dst.DrawBox(boxX, boxY, boxW, boxH)
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}

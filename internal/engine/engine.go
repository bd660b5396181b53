// Package engine is the quest runtime. It owns one attempt's hero,
// level, command history and event log, mutates them as commands are
// processed, and invokes the quest's evaluator after every state
// change. The evaluator only ever sees the resulting snapshot — the
// engine decides how the hero moves, the evaluator decides whether the
// quest is done.
package engine

import (
	"fmt"

	"github.com/vovakirdan/tui-quest/internal/core"
	"github.com/vovakirdan/tui-quest/internal/eval"
	"github.com/vovakirdan/tui-quest/internal/levels"
	"github.com/vovakirdan/tui-quest/internal/registry"
)

// Engine runs attempts for a single quest. Command processing and
// evaluation are serialized by the caller; one attempt at a time.
type Engine struct {
	quest  registry.Quest
	parsed levels.Parsed

	hero    *core.Hero
	log     *core.CommandLog
	events  *core.Events
	verdict eval.Verdict

	// Screen placement, set on Reset
	screenW    int
	screenH    int
	mapOffsetX int
	mapOffsetY int
	tooSmall   bool
}

// New creates an engine for the given quest. The layout is parsed once;
// an invalid layout is a definition error, not a gameplay condition.
func New(q registry.Quest) (*Engine, error) {
	parsed, err := levels.ParseLayout(q.Layout)
	if err != nil {
		return nil, fmt.Errorf("engine: quest %q: %w", q.ID, err)
	}

	e := &Engine{quest: q, parsed: parsed}
	e.Reset(core.DefaultConfig())
	return e, nil
}

// Quest returns the quest this engine runs.
func (e *Engine) Quest() registry.Quest {
	return e.quest
}

// Reset starts a fresh attempt: new hero at the start cell, empty
// command history, empty event log. The level itself is immutable and
// shared across attempts.
func (e *Engine) Reset(cfg core.RuntimeConfig) {
	e.hero = core.NewHero(e.parsed.HeroStart)
	e.log = core.NewCommandLog()
	e.events = core.NewEvents()

	e.screenW = cfg.ScreenW
	e.screenH = cfg.ScreenH
	e.layoutScreen()

	e.verdict = e.Evaluate()
}

// Resize updates the screen placement for a new terminal size.
// The attempt itself is untouched.
func (e *Engine) Resize(w, h int) {
	e.screenW = w
	e.screenH = h
	e.layoutScreen()
}

// layoutScreen centers the map under the HUD.
func (e *Engine) layoutScreen() {
	const hudHeight = 2
	requiredW := e.parsed.Level.Width + 2
	requiredH := e.parsed.Level.Height + hudHeight + 2
	if e.screenW < requiredW || e.screenH < requiredH {
		e.tooSmall = true
		return
	}
	e.tooSmall = false
	e.mapOffsetX = (e.screenW - e.parsed.Level.Width) / 2
	e.mapOffsetY = hudHeight
}

// Apply processes one command: mutates the hero and the event log,
// appends to the command history, then re-evaluates. Commands after
// the quest is solved are ignored — the attempt is over.
func (e *Engine) Apply(cmd core.Command) {
	if e.verdict.Solved() {
		return
	}

	switch cmd.Kind {
	case core.CmdMove:
		e.applyMove(cmd.Dir)
	case core.CmdPick:
		e.applyPick()
	case core.CmdOpen:
		e.applyOpen()
	}
	e.log.Append(cmd)

	e.verdict = e.Evaluate()
}

// ApplyWire parses and applies a wire-format command. Parse failures
// are recorded into the event log as runtime error descriptors and
// also returned so script runners can report them.
func (e *Engine) ApplyWire(s string) error {
	cmd, err := core.ParseCommand(s)
	if err != nil {
		e.events.RecordError(fmt.Sprintf("unknown command %q", s))
		return err
	}
	e.Apply(cmd)
	return nil
}

// applyMove moves the hero one cell, or records a blocked attempt if
// the target is a wall, out of bounds, or a still-locked padlock.
func (e *Engine) applyMove(d core.Direction) {
	level := e.parsed.Level
	from := e.hero.Position()
	target := from.Step(d)

	blocked := !level.InBounds(target.X, target.Y) || level.IsWall(target.X, target.Y)
	if !blocked && e.lockedPadlockAt(target) {
		blocked = true
	}
	if blocked {
		e.events.RecordBlocked(from, d)
		return
	}

	e.hero.MoveTo(target, d)
	if e.hero.AtFlag(level) {
		e.events.ReachedFlag = true
	}
}

// lockedPadlockAt reports whether p holds the padlock and it has not
// been unlocked yet. A locked padlock blocks movement like a wall.
func (e *Engine) lockedPadlockAt(p core.Point) bool {
	return e.parsed.Padlock != nil &&
		*e.parsed.Padlock == p &&
		!e.events.GoalDone(core.GoalLockUnlocked)
}

// applyPick picks up the key when the hero stands on its cell.
func (e *Engine) applyPick() {
	if e.parsed.Key == nil || e.hero.Position() != *e.parsed.Key {
		e.events.RecordError("nothing to pick up here")
		return
	}
	if e.events.GoalDone(core.GoalKeyCollected) {
		e.events.RecordError("the key is already collected")
		return
	}
	e.events.MarkGoal(core.GoalKeyCollected)
}

// applyOpen unlocks the padlock when the hero is on or orthogonally
// adjacent to it and has collected the key.
func (e *Engine) applyOpen() {
	if e.parsed.Padlock == nil || !e.nextToPadlock() {
		e.events.RecordError("nothing to open here")
		return
	}
	if !e.events.GoalDone(core.GoalKeyCollected) {
		e.events.RecordError("the padlock needs a key")
		return
	}
	if e.events.GoalDone(core.GoalLockUnlocked) {
		e.events.RecordError("the padlock is already open")
		return
	}
	e.events.MarkGoal(core.GoalLockUnlocked)
}

func (e *Engine) nextToPadlock() bool {
	p := *e.parsed.Padlock
	h := e.hero.Position()
	dx := h.X - p.X
	dy := h.Y - p.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx+dy <= 1
}

// Evaluate builds a snapshot context and invokes the quest's
// evaluator. The call is pure: nothing in the engine changes.
func (e *Engine) Evaluate() eval.Verdict {
	ctx := core.NewContext(e.hero, e.parsed.Level, e.log, e.events)
	return e.quest.Evaluator.Evaluate(ctx)
}

// Verdict returns the verdict from the most recent evaluation.
func (e *Engine) Verdict() eval.Verdict {
	return e.verdict
}

// Hero returns the current hero. Read-only by convention.
func (e *Engine) Hero() *core.Hero {
	return e.hero
}

// Level returns the immutable level.
func (e *Engine) Level() *core.Level {
	return e.parsed.Level
}

// Events returns the attempt's event log. Read-only by convention.
func (e *Engine) Events() *core.Events {
	return e.events
}

// Commands returns the attempt's command history.
func (e *Engine) Commands() *core.CommandLog {
	return e.log
}

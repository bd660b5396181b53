// Package eval defines the completion-evaluation contract between the
// quest runtime and per-level logic. Each quest supplies exactly one
// Evaluator; the runtime invokes it after every state change with a
// snapshot Context and gets back a Verdict: solved, or a player-facing
// hint explaining why not.
//
// Evaluators are pure functions of the context: no side effects, no
// mutation of the entities they read, the same verdict for the same
// snapshot. They never fail — every well-formed context yields either
// success or guidance.
package eval

import "github.com/vovakirdan/tui-quest/internal/core"

// Verdict is the tagged outcome of one evaluation call: either the
// quest is complete, or it carries guidance text for the player.
type Verdict struct {
	solved  bool
	message string
}

// Success returns the verdict for a completed quest.
func Success() Verdict {
	return Verdict{solved: true}
}

// Guidance returns a not-yet-complete verdict with a player-facing hint.
func Guidance(message string) Verdict {
	return Verdict{message: message}
}

// Solved reports whether the quest is complete.
func (v Verdict) Solved() bool {
	return v.solved
}

// Message returns the guidance text. Empty when the quest is solved.
func (v Verdict) Message() string {
	return v.message
}

// Evaluator judges one attempt snapshot. Implementations must treat
// the context as read-only.
type Evaluator interface {
	Evaluate(ctx *core.Context) Verdict
}

// Func adapts a plain function to the Evaluator interface.
type Func func(ctx *core.Context) Verdict

// Evaluate calls f(ctx).
func (f Func) Evaluate(ctx *core.Context) Verdict {
	return f(ctx)
}

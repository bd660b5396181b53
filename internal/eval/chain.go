package eval

import "github.com/vovakirdan/tui-quest/internal/core"

// Default guidance messages shared by quests that don't override them.
const (
	HintBlocked   = "You can't move there."
	HintReachFlag = "Reach the flag to complete this level."
)

// Rule is one prerequisite in a quest's priority chain: a predicate
// over the snapshot and the hint shown while it is unmet.
type Rule struct {
	Met  func(ctx *core.Context) bool
	Hint string
}

// GoalRule builds a rule that is met once the named sub-goal has been
// recorded in the event log.
func GoalRule(goal, hint string) Rule {
	return Rule{
		Met: func(ctx *core.Context) bool {
			return ctx.Events.GoalDone(goal)
		},
		Hint: hint,
	}
}

// Chain is the rule-chain evaluator every quest variant follows.
// Checks run in fixed priority order and short-circuit on the first
// unmet prerequisite, so the player always sees the earliest unmet
// step rather than a multi-cause dump:
//
//  1. each Rule in order — the first unmet one wins;
//  2. hero at the flag with all rules met — success;
//  3. any blocked move so far — BlockedHint;
//  4. otherwise — FallbackHint.
//
// Reaching the flag before the prerequisites hold is not success: the
// flag check only runs after every rule passes.
type Chain struct {
	Rules        []Rule
	BlockedHint  string // Defaults to HintBlocked
	FallbackHint string // Defaults to HintReachFlag
}

// Evaluate runs the chain against one snapshot.
func (c Chain) Evaluate(ctx *core.Context) Verdict {
	for _, r := range c.Rules {
		if !r.Met(ctx) {
			return Guidance(r.Hint)
		}
	}

	if ctx.Hero.AtFlag(ctx.Level) {
		return Success()
	}

	if len(ctx.Events.BlockedMoves) > 0 {
		return Guidance(c.blockedHint())
	}
	return Guidance(c.fallbackHint())
}

func (c Chain) blockedHint() string {
	if c.BlockedHint != "" {
		return c.BlockedHint
	}
	return HintBlocked
}

func (c Chain) fallbackHint() string {
	if c.FallbackHint != "" {
		return c.FallbackHint
	}
	return HintReachFlag
}

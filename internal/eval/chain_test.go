package eval

import (
	"testing"

	"github.com/vovakirdan/tui-quest/internal/core"
)

// newContext builds a minimal snapshot: 5x5 grid, flag at (2,2), hero
// at the given cell.
func newContext(heroX, heroY int) *core.Context {
	level := core.NewLevel(5, 5, core.Point{X: 2, Y: 2}, nil)
	hero := core.NewHero(core.Point{X: heroX, Y: heroY})
	return core.NewContext(hero, level, core.NewCommandLog(), core.NewEvents())
}

func TestChainSuccessAtFlag(t *testing.T) {
	ctx := newContext(2, 2)

	v := Chain{}.Evaluate(ctx)
	if !v.Solved() {
		t.Errorf("Hero at flag with no prerequisites should be solved, got %q", v.Message())
	}
	if v.Message() != "" {
		t.Errorf("Solved verdict should carry no message, got %q", v.Message())
	}
}

func TestChainBlockedMoveGuidance(t *testing.T) {
	ctx := newContext(0, 0)
	ctx.Events.RecordBlocked(core.Point{X: 0, Y: 0}, core.DirLeft)

	v := Chain{}.Evaluate(ctx)
	if v.Solved() {
		t.Fatal("Hero away from flag should not be solved")
	}
	if v.Message() != "You can't move there." {
		t.Errorf("Message = %q, want blocked-move hint", v.Message())
	}
}

func TestChainFallbackGuidance(t *testing.T) {
	ctx := newContext(0, 0)

	v := Chain{}.Evaluate(ctx)
	if v.Solved() {
		t.Fatal("Hero away from flag should not be solved")
	}
	if v.Message() != "Reach the flag to complete this level." {
		t.Errorf("Message = %q, want fallback hint", v.Message())
	}
}

func TestChainFirstUnmetRuleWins(t *testing.T) {
	ctx := newContext(2, 2) // At the flag, but prerequisites unmet

	chain := Chain{
		Rules: []Rule{
			GoalRule("key_collected", "Pick up the key first."),
			GoalRule("lock_unlocked", "Unlock the padlock before reaching the flag."),
		},
	}

	// Neither goal met: the first rule's hint wins, never the second
	v := chain.Evaluate(ctx)
	if v.Solved() {
		t.Fatal("Flag without prerequisites must not be success")
	}
	if v.Message() != "Pick up the key first." {
		t.Errorf("Message = %q, want the first unmet prerequisite", v.Message())
	}

	// First goal met: now the second rule's hint shows
	ctx.Events.MarkGoal("key_collected")
	v = chain.Evaluate(ctx)
	if v.Solved() {
		t.Fatal("Flag with one prerequisite still unmet must not be success")
	}
	if v.Message() != "Unlock the padlock before reaching the flag." {
		t.Errorf("Message = %q, want the second prerequisite", v.Message())
	}

	// All goals met at the flag: success
	ctx.Events.MarkGoal("lock_unlocked")
	v = chain.Evaluate(ctx)
	if !v.Solved() {
		t.Errorf("All prerequisites met at the flag should be solved, got %q", v.Message())
	}
}

func TestChainPrerequisiteBeforeBlockedHint(t *testing.T) {
	// An unmet prerequisite outranks blocked-move guidance
	ctx := newContext(0, 0)
	ctx.Events.RecordBlocked(core.Point{X: 0, Y: 0}, core.DirUp)

	chain := Chain{
		Rules: []Rule{GoalRule("key_collected", "Pick up the key first.")},
	}

	v := chain.Evaluate(ctx)
	if v.Message() != "Pick up the key first." {
		t.Errorf("Message = %q, prerequisite should outrank blocked hint", v.Message())
	}
}

func TestChainIsPure(t *testing.T) {
	ctx := newContext(1, 1)
	ctx.Events.RecordBlocked(core.Point{X: 1, Y: 1}, core.DirUp)

	chain := Chain{
		Rules: []Rule{GoalRule("key_collected", "Pick up the key first.")},
	}

	v1 := chain.Evaluate(ctx)
	v2 := chain.Evaluate(ctx)
	if v1 != v2 {
		t.Errorf("Two evaluations of an unchanged context differ: %v vs %v", v1, v2)
	}

	// Evaluation must not have touched the entities
	if ctx.Hero.Steps != 0 || ctx.Commands.Count() != 0 || len(ctx.Events.BlockedMoves) != 1 {
		t.Error("Evaluate mutated the context")
	}
}

func TestChainCustomHints(t *testing.T) {
	ctx := newContext(0, 0)

	chain := Chain{FallbackHint: "Find the exit."}
	if got := chain.Evaluate(ctx).Message(); got != "Find the exit." {
		t.Errorf("Message = %q, want custom fallback", got)
	}

	ctx.Events.RecordBlocked(core.Point{X: 0, Y: 0}, core.DirLeft)
	chain = Chain{BlockedHint: "Ouch, a wall."}
	if got := chain.Evaluate(ctx).Message(); got != "Ouch, a wall." {
		t.Errorf("Message = %q, want custom blocked hint", got)
	}
}

func TestFuncAdapter(t *testing.T) {
	always := Func(func(ctx *core.Context) Verdict {
		return Guidance("keep going")
	})

	v := always.Evaluate(newContext(0, 0))
	if v.Solved() || v.Message() != "keep going" {
		t.Errorf("Func adapter returned %v", v)
	}
}

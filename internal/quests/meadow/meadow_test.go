package meadow

import (
	"testing"

	"github.com/vovakirdan/tui-quest/internal/core"
	"github.com/vovakirdan/tui-quest/internal/levels"
)

// snapshot builds a context on a bare 5x5 grid with the flag at (2,2).
func snapshot(heroX, heroY int) *core.Context {
	level := core.NewLevel(5, 5, core.Point{X: 2, Y: 2}, nil)
	hero := core.NewHero(core.Point{X: heroX, Y: heroY})
	return core.NewContext(hero, level, core.NewCommandLog(), core.NewEvents())
}

func TestMeadowSuccessAtFlag(t *testing.T) {
	v := Quest().Evaluator.Evaluate(snapshot(2, 2))
	if !v.Solved() {
		t.Errorf("Hero on the flag should solve the meadow, got %q", v.Message())
	}
}

func TestMeadowBlockedMoveGuidance(t *testing.T) {
	ctx := snapshot(0, 0)
	ctx.Events.RecordBlocked(core.Point{X: 0, Y: 0}, core.DirUp)

	v := Quest().Evaluator.Evaluate(ctx)
	if v.Message() != "You can't move there." {
		t.Errorf("Message = %q", v.Message())
	}
}

func TestMeadowFallbackGuidance(t *testing.T) {
	v := Quest().Evaluator.Evaluate(snapshot(0, 0))
	if v.Message() != "Reach the flag to complete this level." {
		t.Errorf("Message = %q", v.Message())
	}
}

func TestMeadowLayoutValid(t *testing.T) {
	parsed, err := levels.ParseLayout(Quest().Layout)
	if err != nil {
		t.Fatalf("Layout invalid: %v", err)
	}
	if parsed.Key != nil || parsed.Padlock != nil {
		t.Error("The meadow has no objects")
	}
}

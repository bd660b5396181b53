package levels

import (
	"testing"

	"github.com/vovakirdan/tui-quest/internal/core"
)

func TestParseLayoutBasic(t *testing.T) {
	parsed, err := ParseLayout([]string{
		"#####",
		"#H F#",
		"#####",
	})
	if err != nil {
		t.Fatalf("ParseLayout() failed: %v", err)
	}

	if parsed.Level.Width != 5 || parsed.Level.Height != 3 {
		t.Errorf("Dimensions = %dx%d, want 5x3", parsed.Level.Width, parsed.Level.Height)
	}
	if parsed.HeroStart != (core.Point{X: 1, Y: 1}) {
		t.Errorf("HeroStart = %v, want (1,1)", parsed.HeroStart)
	}
	if parsed.Level.Flag != (core.Point{X: 3, Y: 1}) {
		t.Errorf("Flag = %v, want (3,1)", parsed.Level.Flag)
	}
	if !parsed.Level.IsWall(0, 0) || !parsed.Level.IsWall(4, 2) {
		t.Error("Border cells should be walls")
	}
	if parsed.Level.IsWall(2, 1) {
		t.Error("Floor cell should not be a wall")
	}
	if parsed.Key != nil || parsed.Padlock != nil {
		t.Error("Layout without K/P should have nil key and padlock")
	}
}

func TestParseLayoutKeyAndPadlock(t *testing.T) {
	parsed, err := ParseLayout([]string{
		"######",
		"#H K #",
		"#P  F#",
		"######",
	})
	if err != nil {
		t.Fatalf("ParseLayout() failed: %v", err)
	}

	if parsed.Key == nil || *parsed.Key != (core.Point{X: 3, Y: 1}) {
		t.Errorf("Key = %v, want (3,1)", parsed.Key)
	}
	if parsed.Padlock == nil || *parsed.Padlock != (core.Point{X: 1, Y: 2}) {
		t.Errorf("Padlock = %v, want (1,2)", parsed.Padlock)
	}
}

func TestParseLayoutRaggedRows(t *testing.T) {
	// Short rows pad with floor; width is the longest line
	parsed, err := ParseLayout([]string{
		"H",
		"   F",
	})
	if err != nil {
		t.Fatalf("ParseLayout() failed: %v", err)
	}
	if parsed.Level.Width != 4 {
		t.Errorf("Width = %d, want 4", parsed.Level.Width)
	}
	if parsed.Level.IsWall(3, 0) {
		t.Error("Padded cells should be floor")
	}
}

func TestParseLayoutErrors(t *testing.T) {
	cases := []struct {
		name   string
		layout []string
	}{
		{"empty", nil},
		{"no flag", []string{"#H #"}},
		{"no hero", []string{"#F #"}},
		{"two flags", []string{"#HFF#"}},
		{"two heroes", []string{"#HHF#"}},
	}

	for _, c := range cases {
		if _, err := ParseLayout(c.layout); err == nil {
			t.Errorf("%s: expected error", c.name)
		}
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
id: cavern
title: The Cavern
layout:
  - "#######"
  - "#H  K #"
  - "#P   F#"
  - "#######"
goals:
  - id: key_collected
    hint: Pick up the key first.
  - id: lock_unlocked
    hint: Unlock the padlock before reaching the flag.
`)

	q, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML() failed: %v", err)
	}

	if q.ID != "cavern" || q.Title != "The Cavern" {
		t.Errorf("Quest identity = %q/%q", q.ID, q.Title)
	}

	// The generated evaluator must enforce the declared goal order
	parsed, err := ParseLayout(q.Layout)
	if err != nil {
		t.Fatalf("Layout invalid: %v", err)
	}
	hero := core.NewHero(parsed.Level.Flag) // Stand on the flag
	ctx := core.NewContext(hero, parsed.Level, core.NewCommandLog(), core.NewEvents())

	v := q.Evaluator.Evaluate(ctx)
	if v.Solved() {
		t.Fatal("Flag without goals met must not be success")
	}
	if v.Message() != "Pick up the key first." {
		t.Errorf("Message = %q, want first goal hint", v.Message())
	}

	ctx.Events.MarkGoal("key_collected")
	ctx.Events.MarkGoal("lock_unlocked")
	if !q.Evaluator.Evaluate(ctx).Solved() {
		t.Error("All goals met on the flag should be success")
	}
}

func TestParseYAMLDefaultsTitleToID(t *testing.T) {
	q, err := ParseYAML([]byte("id: plain\nlayout:\n  - \"HF\"\n"))
	if err != nil {
		t.Fatalf("ParseYAML() failed: %v", err)
	}
	if q.Title != "plain" {
		t.Errorf("Title = %q, want id fallback", q.Title)
	}
}

func TestParseYAMLRejectsBadFiles(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"not yaml", ":\n -"},
		{"no id", "title: x\nlayout:\n  - \"HF\"\n"},
		{"bad layout", "id: x\nlayout:\n  - \"H\"\n"},
		{"goal without hint", "id: x\nlayout:\n  - \"HF\"\ngoals:\n  - id: g\n"},
	}

	for _, c := range cases {
		if _, err := ParseYAML([]byte(c.data)); err == nil {
			t.Errorf("%s: expected error", c.name)
		}
	}
}

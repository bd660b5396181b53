package core

import "testing"

func TestLevelIsWall(t *testing.T) {
	walls := []Point{{X: 1, Y: 1}, {X: 2, Y: 3}, {X: 1, Y: 1}} // Duplicate on purpose
	level := NewLevel(5, 5, Point{X: 4, Y: 4}, walls)

	if !level.IsWall(1, 1) {
		t.Error("Expected (1,1) to be a wall")
	}
	if !level.IsWall(2, 3) {
		t.Error("Expected (2,3) to be a wall")
	}
	if level.IsWall(0, 0) {
		t.Error("Expected (0,0) to be free")
	}
	if level.WallCount() != 2 {
		t.Errorf("Expected 2 walls after dedup, got %d", level.WallCount())
	}
}

func TestLevelFlagNeverWall(t *testing.T) {
	flag := Point{X: 2, Y: 2}
	level := NewLevel(5, 5, flag, []Point{flag, {X: 0, Y: 0}})

	if level.IsWall(flag.X, flag.Y) {
		t.Error("Flag cell must never be a wall")
	}
	if level.WallCount() != 1 {
		t.Errorf("Expected the wall on the flag cell to be dropped, got %d walls", level.WallCount())
	}
}

func TestLevelInBounds(t *testing.T) {
	level := NewLevel(3, 2, Point{X: 2, Y: 1}, nil)

	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{2, 1, true},
		{3, 0, false},
		{0, 2, false},
		{-1, 0, false},
		{0, -1, false},
	}
	for _, c := range cases {
		if got := level.InBounds(c.x, c.y); got != c.want {
			t.Errorf("InBounds(%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestHeroAtFlag(t *testing.T) {
	level := NewLevel(5, 5, Point{X: 2, Y: 2}, nil)
	hero := NewHero(Point{X: 0, Y: 0})

	if hero.AtFlag(level) {
		t.Error("Hero at (0,0) should not be at the flag")
	}

	hero.MoveTo(Point{X: 2, Y: 2}, DirRight)
	if !hero.AtFlag(level) {
		t.Error("Hero at (2,2) should be at the flag")
	}
}

func TestHeroMoveTo(t *testing.T) {
	hero := NewHero(Point{X: 1, Y: 1})

	if hero.LastMove != nil {
		t.Error("LastMove should be nil before the first move")
	}
	if hero.Steps != 0 {
		t.Errorf("Steps should start at 0, got %d", hero.Steps)
	}

	hero.MoveTo(Point{X: 1, Y: 0}, DirUp)
	if hero.Position() != (Point{X: 1, Y: 0}) {
		t.Errorf("Position = %v, want (1,0)", hero.Position())
	}
	if hero.Steps != 1 {
		t.Errorf("Steps = %d, want 1", hero.Steps)
	}
	if hero.LastMove == nil || *hero.LastMove != DirUp {
		t.Errorf("LastMove = %v, want up", hero.LastMove)
	}
}

func TestCommandLogAppendOnly(t *testing.T) {
	log := NewCommandLog()

	log.Append(Move(DirUp))
	log.Append(Pick())
	log.Append(Move(DirLeft))

	if log.Count() != 3 {
		t.Fatalf("Count = %d, want 3", log.Count())
	}
	if log.At(0).Wire() != "move_up" {
		t.Errorf("At(0) = %s, want move_up", log.At(0).Wire())
	}
	if log.At(1).Wire() != "pick" {
		t.Errorf("At(1) = %s, want pick", log.At(1).Wire())
	}

	// Mutating the copy must not affect the log
	all := log.All()
	all[0] = Open()
	if log.At(0).Wire() != "move_up" {
		t.Error("All() must return a copy, not the backing slice")
	}
}

func TestEventsAppendOnly(t *testing.T) {
	ev := NewEvents()

	ev.RecordBlocked(Point{X: 0, Y: 0}, DirLeft)
	ev.RecordError("bad command")
	ev.RecordBlocked(Point{X: 1, Y: 0}, DirUp)

	if len(ev.BlockedMoves) != 2 {
		t.Errorf("BlockedMoves = %d entries, want 2", len(ev.BlockedMoves))
	}
	if len(ev.Errors) != 1 {
		t.Errorf("Errors = %d entries, want 1", len(ev.Errors))
	}
	if ev.BlockedMoves[0].Dir != DirLeft {
		t.Errorf("First blocked move dir = %v, want left", ev.BlockedMoves[0].Dir)
	}
}

func TestEventsGoals(t *testing.T) {
	ev := NewEvents()

	if ev.GoalDone("key_collected") {
		t.Error("Unmarked goal should not be done")
	}

	ev.MarkGoal("key_collected")
	if !ev.GoalDone("key_collected") {
		t.Error("Marked goal should be done")
	}
	if ev.GoalDone("lock_unlocked") {
		t.Error("Other goals should stay unmarked")
	}
}

func TestCommandWireRoundTrip(t *testing.T) {
	wires := []string{"move_up", "move_down", "move_left", "move_right", "pick", "open"}

	for _, w := range wires {
		cmd, err := ParseCommand(w)
		if err != nil {
			t.Fatalf("ParseCommand(%q) failed: %v", w, err)
		}
		if cmd.Wire() != w {
			t.Errorf("Wire() = %q, want %q", cmd.Wire(), w)
		}
	}

	if _, err := ParseCommand("teleport"); err == nil {
		t.Error("Expected error for unknown command")
	}
}

func TestDirectionDelta(t *testing.T) {
	p := Point{X: 2, Y: 2}

	if p.Step(DirUp) != (Point{X: 2, Y: 1}) {
		t.Error("Up should decrease y")
	}
	if p.Step(DirDown) != (Point{X: 2, Y: 3}) {
		t.Error("Down should increase y")
	}
	if p.Step(DirLeft) != (Point{X: 1, Y: 2}) {
		t.Error("Left should decrease x")
	}
	if p.Step(DirRight) != (Point{X: 3, Y: 2}) {
		t.Error("Right should increase x")
	}
}

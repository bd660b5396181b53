package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '@')
	if s.Get(3, 2) != '@' {
		t.Errorf("Get(3,2) = %q, want '@'", s.Get(3, 2))
	}

	// Out of bounds writes are ignored, reads return space
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')
	if s.Get(-1, 0) != ' ' || s.Get(10, 0) != ' ' || s.Get(0, 5) != ' ' {
		t.Error("Out-of-bounds Get should return space")
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(4, 4)

	s.SetColored(1, 1, 'F', ColorGreen)
	cell := s.GetCell(1, 1)
	if cell.Rune != 'F' || cell.Color != ColorGreen {
		t.Errorf("GetCell(1,1) = %+v, want F/green", cell)
	}

	// Plain Set uses the default color
	s.Set(2, 2, '#')
	if s.GetCell(2, 2).Color != ColorDefault {
		t.Error("Set should use the default color")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetColored(2, 2, 'x', ColorRed)

	s.Clear()
	cell := s.GetCell(2, 2)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("After Clear, cell = %+v, want space/default", cell)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'H')

	s.Resize(20, 10)
	if s.Get(2, 2) != 'H' {
		t.Error("Resize should preserve content within the old bounds")
	}
	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("Dimensions = %dx%d, want 20x10", s.Width(), s.Height())
	}

	s.Resize(2, 2)
	if s.Width() != 2 || s.Height() != 2 {
		t.Error("Shrinking resize failed")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(1, 1, "hero")
	if s.Row(1) != " hero     " {
		t.Errorf("Row(1) = %q", s.Row(1))
	}

	// Clipped at the right edge
	s.DrawText(8, 0, "long")
	if s.Get(8, 0) != 'l' || s.Get(9, 0) != 'o' {
		t.Error("DrawText should clip at the screen edge")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	got := s.String()
	want := "a  \n  b"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if strings.Count(got, "\n") != 1 {
		t.Error("Expected exactly one newline for two rows")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawBox(1, 1, 5, 3)

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' {
		t.Error("Top corners wrong")
	}
	if s.Get(1, 3) != '└' || s.Get(5, 3) != '┘' {
		t.Error("Bottom corners wrong")
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("Edges wrong")
	}
}

package core

import (
	"strings"
	"testing"
)

func TestNewScreenDimensions(t *testing.T) {
	s := NewScreen(40, 12)

	if s.Width() != 40 {
		t.Errorf("Width() = %d, want 40", s.Width())
	}
	if s.Height() != 12 {
		t.Errorf("Height() = %d, want 12", s.Height())
	}
}

func TestScreenClearFillsSpaces(t *testing.T) {
	s := NewScreen(10, 5)
	s.SetColored(3, 2, '#', ColorRed)

	s.Clear()

	cell := s.GetCell(3, 2)
	if cell.Rune != ' ' {
		t.Errorf("cleared cell rune = %q, want space", cell.Rune)
	}
	if cell.Color != ColorDefault {
		t.Errorf("cleared cell color = %d, want ColorDefault", cell.Color)
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(2, 3, 'X')
	if got := s.Get(2, 3); got != 'X' {
		t.Errorf("Get(2,3) = %q, want 'X'", got)
	}

	s.SetColored(4, 1, 'O', ColorYellow)
	cell := s.GetCell(4, 1)
	if cell.Rune != 'O' || cell.Color != ColorYellow {
		t.Errorf("GetCell(4,1) = %+v, want {'O', ColorYellow}", cell)
	}
}

func TestScreenSetPreservesColor(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetColored(1, 1, '#', ColorCyan)
	s.Set(1, 1, '@')

	cell := s.GetCell(1, 1)
	if cell.Rune != '@' {
		t.Errorf("rune = %q, want '@'", cell.Rune)
	}
	if cell.Color != ColorCyan {
		t.Errorf("color = %d, want ColorCyan", cell.Color)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)

	// Should not panic
	s.Set(-1, 0, 'X')
	s.Set(0, -1, 'X')
	s.Set(10, 0, 'X')
	s.Set(0, 5, 'X')
	s.SetColored(99, 99, 'X', ColorRed)

	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("Get out of bounds = %q, want space", got)
	}
	if cell := s.GetCell(10, 5); cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("GetCell out of bounds = %+v, want uncolored space", cell)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.SetColored(2, 2, 'A', ColorGreen)

	s.Resize(20, 10)

	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("size after resize = %dx%d, want 20x10", s.Width(), s.Height())
	}
	cell := s.GetCell(2, 2)
	if cell.Rune != 'A' || cell.Color != ColorGreen {
		t.Errorf("content lost on resize: %+v", cell)
	}
}

func TestScreenResizeShrinkClips(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(8, 4, 'B')

	s.Resize(5, 3)

	if s.Width() != 5 || s.Height() != 3 {
		t.Errorf("size after shrink = %dx%d, want 5x3", s.Width(), s.Height())
	}
	// Former (8,4) is now out of bounds
	if got := s.Get(8, 4); got != ' ' {
		t.Errorf("Get(8,4) after shrink = %q, want space", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hello")

	if row := s.Row(1); row != "  hello   " {
		t.Errorf("Row(1) = %q, want %q", row, "  hello   ")
	}
}

func TestScreenDrawTextClipped(t *testing.T) {
	s := NewScreen(5, 1)
	s.DrawText(3, 0, "long")

	if row := s.Row(0); row != "   lo" {
		t.Errorf("Row(0) = %q, want %q", row, "   lo")
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextColored(0, 0, "ab", ColorMagenta)

	if cell := s.GetCell(1, 0); cell.Rune != 'b' || cell.Color != ColorMagenta {
		t.Errorf("GetCell(1,0) = %+v, want {'b', ColorMagenta}", cell)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4))

	if got := s.Get(0, 0); got != '┌' {
		t.Errorf("top-left = %q, want '┌'", got)
	}
	if got := s.Get(5, 0); got != '┐' {
		t.Errorf("top-right = %q, want '┐'", got)
	}
	if got := s.Get(0, 3); got != '└' {
		t.Errorf("bottom-left = %q, want '└'", got)
	}
	if got := s.Get(5, 3); got != '┘' {
		t.Errorf("bottom-right = %q, want '┘'", got)
	}
	if got := s.Get(2, 0); got != '─' {
		t.Errorf("top edge = %q, want '─'", got)
	}
	if got := s.Get(0, 1); got != '│' {
		t.Errorf("left edge = %q, want '│'", got)
	}
	// Interior untouched
	if got := s.Get(2, 1); got != ' ' {
		t.Errorf("interior = %q, want space", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if strings.Count(s.String(), "\n") != 1 {
		t.Error("String() should join rows with single newlines")
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)

	if row := s.Row(-1); row != "    " {
		t.Errorf("Row(-1) = %q, want blank row", row)
	}
	if row := s.Row(2); row != "    " {
		t.Errorf("Row(2) = %q, want blank row", row)
	}
}

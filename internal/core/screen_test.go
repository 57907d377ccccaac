package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetColor(t *testing.T) {
	s := NewScreen(4, 1)
	s.SetColor(1, 0, '3', ColorRed)

	cell := s.GetCell(1, 0)
	if cell.Rune != '3' || cell.Color != ColorRed {
		t.Errorf("GetCell(1, 0) = %+v, expected red '3'", cell)
	}

	s.Clear()
	if cell := s.GetCell(1, 0); cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("After Clear, GetCell(1, 0) = %+v, expected plain space", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Score: 99")

	if got := strings.TrimRight(s.Row(1), " "); got != "  Score: 99" {
		t.Errorf("Row(1) = %q, expected %q", got, "  Score: 99")
	}

	// Clipping at the right edge
	s.DrawText(15, 2, "overflow")
	if got := s.Row(2)[15:]; got != "overf" {
		t.Errorf("clipped text = %q, expected %q", got, "overf")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "WIN", ColorGreen)

	if s.Row(0) != "    WIN    " {
		t.Errorf("Row(0) = %q, expected centered text", s.Row(0))
	}
	if s.GetCell(4, 0).Color != ColorGreen {
		t.Error("centered text should carry its color")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(s.Bounds(), ColorGray)

	want := "┌──┐\n│  │\n└──┘"
	if s.String() != want {
		t.Errorf("String() =\n%s\nexpected\n%s", s.String(), want)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(1, 1, 'X')
	s.Resize(5, 3)

	if s.Width() != 5 || s.Height() != 3 {
		t.Errorf("size after Resize = %dx%d, expected 5x3", s.Width(), s.Height())
	}
	if s.Get(1, 1) != ' ' {
		t.Error("Resize should clear the buffer")
	}
}

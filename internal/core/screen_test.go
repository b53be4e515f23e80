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
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("new screen should be blank, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetColor(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColor(5, 5, 'X', ColorGold)
	c := s.GetCell(5, 5)
	if c.Rune != 'X' || c.Color != ColorGold {
		t.Errorf("GetCell(5, 5) = %+v, expected X in gold", c)
	}

	// Out of bounds writes are dropped
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')
	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenOffset(t *testing.T) {
	s := NewScreen(10, 10)
	s.SetOffset(2, 1)
	s.Set(0, 0, '@')

	if s.Get(2, 1) != '@' {
		t.Errorf("offset draw landed at wrong cell, (2,1) = %q", s.Get(2, 1))
	}

	s.Clear()
	s.Set(0, 0, '@')
	if s.Get(0, 0) != '@' {
		t.Error("Clear should reset the offset")
	}
}

func TestScreenDrawTextUnicode(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "★ ok")

	if s.Get(2, 1) != '★' || s.Get(4, 1) != 'o' {
		t.Errorf("DrawText should advance one cell per rune, row = %q", s.Row(1))
	}

	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, row = %q", s.Row(2))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorCyan)

	corners := []struct {
		x, y int
		r    rune
	}{
		{1, 1, '┌'}, {5, 1, '┐'}, {1, 4, '└'}, {5, 4, '┘'},
	}
	for _, c := range corners {
		if got := s.Get(c.x, c.y); got != c.r {
			t.Errorf("corner (%d,%d) = %q, expected %q", c.x, c.y, got, c.r)
		}
	}
	if s.GetCell(3, 1).Color != ColorCyan {
		t.Error("box edges should carry the box color")
	}
}

func TestScreenStringAndResize(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}

	s.Resize(3, 2)
	if s.Width() != 3 || s.Height() != 2 {
		t.Fatalf("after resize, dimensions = %dx%d, expected 3x2", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "AAA") {
		t.Errorf("content should be preserved, row 0 = %q", s.Row(0))
	}
	if s.Row(-1) != "   " {
		t.Errorf("out of bounds row should be spaces, got %q", s.Row(-1))
	}
}

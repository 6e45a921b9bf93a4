package core

import (
	"strings"
	"testing"
)

func runeAt(s *Screen, x, y int) rune {
	return s.GetCell(x, y).Rune
}

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
			if r := runeAt(s, x, y); r != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", r, x, y)
			}
		}
	}
}

func TestScreenSetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, 'X', ColorRed)
	if got := s.GetCell(5, 5); got != (Cell{Rune: 'X', Color: ColorRed}) {
		t.Errorf("GetCell(5, 5) = %+v, expected red 'X'", got)
	}

	// Out of bounds should be silent
	s.SetCell(-1, 0, 'A', ColorDefault)  // Should not panic
	s.SetCell(100, 0, 'A', ColorDefault) // Should not panic
	s.SetCell(0, -1, 'A', ColorDefault)  // Should not panic
	s.SetCell(0, 100, 'A', ColorDefault) // Should not panic

	// Out of bounds get should return space
	if runeAt(s, -1, 0) != ' ' {
		t.Error("Out of bounds GetCell should return space")
	}
	if runeAt(s, 100, 0) != ' ' {
		t.Error("Out of bounds GetCell should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	// Fill with some characters
	for y := 0; y < 10; y++ {
		s.DrawTextColor(0, y, strings.Repeat("X", 10), ColorBlue)
	}

	s.Clear()

	// Should all be uncoloured spaces now
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c != (Cell{Rune: ' '}) {
				t.Errorf("After Clear, expected blank cell at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	expected := "Hello"
	for i, ch := range expected {
		if r := runeAt(s, 2+i, 1); r != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, r)
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello") // Only "He" should fit
	if runeAt(s, 18, 0) != 'H' || runeAt(s, 19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	text := "Hi"
	s.DrawTextCentered(2, text)

	// "Hi" is 2 chars, centered in 20 chars should start at position 9
	x := (20 - 2) / 2
	if runeAt(s, x, 2) != 'H' || runeAt(s, x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 5, "World")

	// Resize smaller - should preserve top-left content
	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}

	row0 := s.Row(0)
	if !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", row0)
	}

	// Resize larger - old content should still be there
	s.Resize(15, 8)
	row0 = s.Row(0)
	if !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", row0)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len(row) != 10 {
		t.Errorf("Row length should be 10, got %d", len(row))
	}

	// Out of bounds row
	outOfBounds := s.Row(-1)
	if outOfBounds != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", outOfBounds)
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawTextColor(1, 0, "2048", ColorOrange)

	cell := s.GetCell(1, 0)
	if cell.Rune != '2' || cell.Color != ColorOrange {
		t.Errorf("GetCell(1, 0) = %+v, expected orange '2'", cell)
	}

	// Plain DrawText resets the color
	s.DrawText(1, 0, "x")
	if s.GetCell(1, 0).Color != ColorDefault {
		t.Error("DrawText should use the default color")
	}

	// Clear removes colors
	s.Clear()
	if s.GetCell(2, 0) != (Cell{Rune: ' '}) {
		t.Error("Clear should leave uncoloured spaces")
	}

	// Out of bounds is a blank cell
	if s.GetCell(-1, 5) != (Cell{Rune: ' '}) {
		t.Error("Out of bounds GetCell should return a blank cell")
	}
}

func TestScreenDrawTextUnicode(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawText(0, 0, "┌─┐ok")

	if runeAt(s, 3, 0) != 'o' || runeAt(s, 4, 0) != 'k' {
		t.Errorf("DrawText should advance one cell per rune, got row %q", s.Row(0))
	}
}

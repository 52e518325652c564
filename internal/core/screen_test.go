package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(4, 2)
	if s.Width() != 4 || s.Height() != 2 {
		t.Fatalf("NewScreen(4, 2) = %dx%d", s.Width(), s.Height())
	}
	if got := s.String(); got != "    \n    " {
		t.Errorf("String() = %q, expected blank rows", got)
	}
}

func TestScreenDrawing(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		draw func(s *Screen)
		want string
	}{
		{
			name: "set and out of bounds",
			w:    3, h: 2,
			draw: func(s *Screen) {
				s.Set(1, 1, 'X')
				s.Set(-1, 0, 'A')
				s.Set(3, 0, 'A')
				s.Set(0, 2, 'A')
			},
			want: "   \n X ",
		},
		{
			name: "text clipped at the right edge",
			w:    6, h: 1,
			draw: func(s *Screen) { s.DrawText(3, 0, "tile") },
			want: "   til",
		},
		{
			name: "centered text",
			w:    8, h: 1,
			draw: func(s *Screen) { s.DrawTextCentered(0, "GO") },
			want: "   GO   ",
		},
		{
			name: "fill then clear",
			w:    2, h: 2,
			draw: func(s *Screen) {
				s.Fill('#')
				s.Clear()
				s.Set(0, 0, '.')
			},
			want: ". \n  ",
		},
		{
			name: "rect",
			w:    4, h: 3,
			draw: func(s *Screen) { s.DrawRect(NewRect(1, 1, 2, 2), '#') },
			want: "    \n ## \n ## ",
		},
		{
			name: "box",
			w:    4, h: 3,
			draw: func(s *Screen) { s.DrawBox(NewRect(0, 0, 4, 3)) },
			want: "┌──┐\n│  │\n└──┘",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(tc.w, tc.h)
			tc.draw(s)
			if got := s.String(); got != tc.want {
				t.Errorf("String() = %q, expected %q", got, tc.want)
			}
		})
	}
}

func TestScreenGetOutOfBounds(t *testing.T) {
	s := NewScreen(2, 2)
	s.Fill('x')
	for _, p := range [][2]int{{-1, 0}, {2, 0}, {0, -1}, {0, 2}} {
		if got := s.Get(p[0], p[1]); got != ' ' {
			t.Errorf("Get(%d, %d) = %q, expected space", p[0], p[1], got)
		}
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextColored(1, 1, "RGB", ColorRed, AttrBold)

	cell := s.GetCell(2, 1)
	if cell.Rune != 'G' || cell.Color != ColorRed || !cell.Attr.Has(AttrBold) {
		t.Errorf("GetCell(2, 1) = %+v, expected bold red 'G'", cell)
	}
	if s.GetCell(0, 1).Color != ColorDefault {
		t.Error("cells outside the text should keep the default color")
	}

	s.Clear()
	if c := s.GetCell(2, 1); c.Rune != ' ' || c.Color != ColorDefault || c.Attr != AttrNone {
		t.Errorf("after Clear, GetCell(2, 1) = %+v", c)
	}

	// Out of bounds reads return a blank cell.
	if c := s.GetCell(-1, 0); c.Rune != ' ' {
		t.Errorf("GetCell(-1, 0) = %+v, expected blank", c)
	}
}

func TestScreenDrawBoxColored(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBoxColored(NewRect(0, 0, 6, 4), ColorYellow)

	for _, p := range [][2]int{{0, 0}, {5, 0}, {0, 3}, {5, 3}, {2, 0}, {0, 2}} {
		if c := s.GetCell(p[0], p[1]); c.Color != ColorYellow {
			t.Errorf("border cell %v color = %v, expected yellow", p, c.Color)
		}
	}
	if s.Get(2, 2) != ' ' {
		t.Error("box interior should stay empty")
	}

	// Degenerate boxes are skipped.
	s.Clear()
	s.DrawBoxColored(NewRect(1, 1, 1, 3), ColorYellow)
	if s.Get(1, 1) != ' ' {
		t.Error("a box narrower than 2 should not be drawn")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 5, "World")

	// Shrinking keeps the top-left content.
	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}

	row0 := s.Row(0)
	if !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", row0)
	}

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

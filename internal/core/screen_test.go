package core

import "testing"

func TestScreenSetAndGet(t *testing.T) {
	s := NewScreen(4, 2)

	s.SetColored(1, 0, '#', ColorRed)
	s.Set(-1, 0, 'x')
	s.Set(4, 1, 'x')

	if got := s.GetCell(1, 0); got.Rune != '#' || got.Color != ColorRed {
		t.Errorf("GetCell(1, 0) = %+v", got)
	}
	if got := s.Get(10, 10); got != ' ' {
		t.Errorf("Get out of bounds = %q, want space", got)
	}
	if s.String() != " #  \n    " {
		t.Errorf("String() = %q", s.String())
	}
}

func TestDrawTextClipsAndCountsRunes(t *testing.T) {
	s := NewScreen(5, 1)
	s.DrawTextColored(2, 0, "█▄ab", ColorGreen)

	if got := s.Row(0); got != "  █▄a" {
		t.Errorf("Row(0) = %q", got)
	}
	if got := s.GetCell(3, 0).Color; got != ColorGreen {
		t.Errorf("color = %v, want green", got)
	}
}

func TestDrawTextCentered(t *testing.T) {
	s := NewScreen(9, 1)
	s.DrawTextCentered(0, "abc", ColorDefault)
	if got := s.Row(0); got != "   abc   " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestDrawBox(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(NewRect(0, 0, 4, 3), ColorGray)

	want := "┌──┐\n│  │\n└──┘"
	if s.String() != want {
		t.Errorf("DrawBox:\n%s\nwant:\n%s", s.String(), want)
	}
}

func TestResizeClears(t *testing.T) {
	s := NewScreen(2, 2)
	s.Set(0, 0, 'x')
	s.Resize(3, 1)

	if s.Width() != 3 || s.Height() != 1 || s.Row(0) != "   " {
		t.Errorf("after Resize: %dx%d %q", s.Width(), s.Height(), s.Row(0))
	}
}

func TestScale(t *testing.T) {
	tests := []struct {
		used, total, width, want int
	}{
		{0, 10, 10, 0},
		{1, 100, 10, 1},
		{50, 100, 10, 5},
		{100, 100, 10, 10},
		{150, 100, 10, 10},
		{5, 0, 10, 0},
	}
	for _, tt := range tests {
		if got := Scale(tt.used, tt.total, tt.width); got != tt.want {
			t.Errorf("Scale(%d, %d, %d) = %d, want %d", tt.used, tt.total, tt.width, got, tt.want)
		}
	}
}

func TestLoadColor(t *testing.T) {
	if LoadColor(1, 10) != ColorGreen || LoadColor(5, 10) != ColorYellow || LoadColor(9, 10) != ColorRed {
		t.Error("LoadColor thresholds are off")
	}
	if LoadColor(0, 0) != ColorRed {
		t.Error("zero capacity should read as full")
	}
}

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if !f.Empty() {
		t.Fatal("new frame is not empty")
	}
	f.Set(ActionAppendFloor)
	f.Set(ActionNone)
	if !f.Has(ActionAppendFloor) || f.Has(ActionNone) || f.Has(ActionQuit) {
		t.Errorf("frame = %+v", f)
	}
	f.Clear()
	if !f.Empty() {
		t.Error("Clear() left actions set")
	}
}

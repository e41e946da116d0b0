package ui

import "testing"

func TestFrameCentersContent(t *testing.T) {
	r := Frame(10, 40, 30, 100)
	if r.Width != 40 || r.Height != 10 {
		t.Errorf("Frame size = %dx%d, want 40x10", r.Width, r.Height)
	}
	if r.X != 30 || r.Y != 10 {
		t.Errorf("Frame origin = (%d,%d), want (30,10)", r.X, r.Y)
	}
}

func TestFrameClampsToTerminal(t *testing.T) {
	r := Frame(50, 200, 20, 80)
	if r.Width != 80 {
		t.Errorf("Frame width = %d, want clamped to 80", r.Width)
	}
	if r.Height != 20 {
		t.Errorf("Frame height = %d, want clamped to 20", r.Height)
	}
	if r.X != 0 || r.Y != 0 {
		t.Errorf("Frame origin = (%d,%d), want (0,0)", r.X, r.Y)
	}
}

func TestFrameNeverNegative(t *testing.T) {
	r := Frame(0, 0, 0, 0)
	if r.Width < 1 || r.Height < 1 {
		t.Errorf("Frame produced degenerate box %+v", r)
	}
	if r.X < 0 || r.Y < 0 {
		t.Errorf("Frame origin negative: %+v", r)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly ten..", 13, "exactly ten.."},
		{"this is far too long", 10, "this is..."},
		{"abcdef", 3, "abc"},
		{"anything", 0, ""},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestCenterPads(t *testing.T) {
	got := Center("ab", 6)
	if got != "  ab  " {
		t.Errorf("Center = %q, want %q", got, "  ab  ")
	}
}

func TestCenterTruncatesWideText(t *testing.T) {
	got := Center("much too wide", 6)
	if len(got) > 6 {
		t.Errorf("Center returned %q, wider than budget", got)
	}
}

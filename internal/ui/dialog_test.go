package ui

import (
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestAckDialogDismissedByAnyKey(t *testing.T) {
	d := NewDialog(DialogInfo, "Notice", "order sent")
	d, _ = d.Update(key("x"))
	if !d.Done() {
		t.Error("acknowledge dialog not dismissed by a key")
	}
	if d.Answer() {
		t.Error("acknowledge dialog reported a yes answer")
	}
}

func TestYesNoDialogFiltersKeys(t *testing.T) {
	d := NewYesNoDialog(DialogWarning, "Confirm", "send order?")

	for _, k := range []string{"x", "enter", " ", "q", "1", "j"} {
		d, _ = d.Update(key(k))
		if d.Done() {
			t.Fatalf("key %q resolved a yes/no dialog", k)
		}
	}

	d, _ = d.Update(key("y"))
	if !d.Done() || !d.Answer() {
		t.Errorf("y gave done=%v answer=%v, want true/true", d.Done(), d.Answer())
	}
}

func TestYesNoDialogNo(t *testing.T) {
	for _, k := range []string{"n", "N", "esc"} {
		d := NewYesNoDialog(DialogWarning, "Confirm", "send order?")
		d, _ = d.Update(key(k))
		if !d.Done() || d.Answer() {
			t.Errorf("key %q gave done=%v answer=%v, want true/false", k, d.Done(), d.Answer())
		}
	}
}

func TestYesNoDialogUppercaseYes(t *testing.T) {
	d := NewYesNoDialog(DialogError, "Confirm", "cancel order?")
	d, _ = d.Update(key("Y"))
	if !d.Done() || !d.Answer() {
		t.Error("Y did not answer yes")
	}
}

func TestWrapTextBreaksOnSpaces(t *testing.T) {
	lines := wrapText("one two three four", 9)
	want := []string{"one two", "three", "four"}
	if len(lines) != len(want) {
		t.Fatalf("wrapText produced %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestWrapTextHardBreaksLongWords(t *testing.T) {
	lines := wrapText("abcdefghij", 4)
	if len(lines) != 3 {
		t.Fatalf("wrapText produced %v, want 3 chunks", lines)
	}
	for _, line := range lines {
		if len(line) > 4 {
			t.Errorf("line %q exceeds width", line)
		}
	}
}

func TestWrapTextMeasuresCells(t *testing.T) {
	// Each CJK rune occupies two cells, so four of them need two lines at
	// a six-cell budget even though the bytes would fit.
	lines := wrapText("倉庫注文 ok", 6)
	if len(lines) < 2 {
		t.Fatalf("wrapText produced %v, want the wide word split off", lines)
	}
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > 6 {
			t.Errorf("line %q is %d cells wide, budget 6", line, w)
		}
	}
}

package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestMenuCursorClampedNoWrap(t *testing.T) {
	m := NewMenu("Orders", []string{"one", "two", "three"})

	m, _ = m.Update(key("up"))
	if m.Cursor() != 0 {
		t.Errorf("cursor wrapped past top, got %d", m.Cursor())
	}

	for i := 0; i < 10; i++ {
		m, _ = m.Update(key("down"))
	}
	if m.Cursor() != 2 {
		t.Errorf("cursor wrapped past bottom, got %d", m.Cursor())
	}
}

func TestMenuDigitResolvesImmediately(t *testing.T) {
	m := NewMenu("Orders", []string{"a", "b", "c", "d"})

	m, _ = m.Update(key("2"))
	if !m.Done() {
		t.Fatal("digit did not resolve the menu")
	}
	res := m.Result()
	if res.Kind != SelectionChosen || res.Index != 2 {
		t.Errorf("digit 2 resolved %+v, want Chosen(2)", res)
	}
}

func TestMenuDigitOutOfRangeIgnored(t *testing.T) {
	m := NewMenu("Orders", []string{"a", "b"})

	m, _ = m.Update(key("7"))
	if m.Done() {
		t.Error("out-of-range digit resolved the menu")
	}
}

func TestMenuEnterChoosesCursor(t *testing.T) {
	m := NewMenu("Orders", []string{"a", "b", "c"})

	m, _ = m.Update(key("down"))
	m, _ = m.Update(key("enter"))
	if !m.Done() {
		t.Fatal("enter did not resolve the menu")
	}
	if res := m.Result(); res.Kind != SelectionChosen || res.Index != 1 {
		t.Errorf("got %+v, want Chosen(1)", res)
	}
}

func TestMenuRefreshAndBackNeverCollide(t *testing.T) {
	m := NewMenu("Orders", []string{"a", "b", "c"})
	m, _ = m.Update(key("r"))
	if res := m.Result(); res.Kind != SelectionRefresh {
		t.Errorf("r resolved %+v, want Refresh", res)
	}

	m = NewMenu("Orders", []string{"a", "b", "c"})
	m, _ = m.Update(key("b"))
	if res := m.Result(); res.Kind != SelectionBack {
		t.Errorf("b resolved %+v, want Back", res)
	}

	// Control outcomes carry their own kind, so no option index can shadow
	// them even in long menus.
	if SelectionRefresh == SelectionChosen || SelectionBack == SelectionChosen {
		t.Error("control kinds overlap with Chosen")
	}
}

func TestMenuQuitCancels(t *testing.T) {
	m := NewMenu("Orders", []string{"a"})
	m, _ = m.Update(key("q"))
	if res := m.Result(); res.Kind != SelectionCancelled {
		t.Errorf("q resolved %+v, want Cancelled", res)
	}
}

func TestMultiMenuToggleAndFinish(t *testing.T) {
	m := NewMultiMenu("Capacities", []string{"a", "b", "c", "d"})

	m, _ = m.Update(key(" "))    // toggle 0 on
	m, _ = m.Update(key("down")) // cursor 1
	m, _ = m.Update(key(" "))    // toggle 1 on
	m, _ = m.Update(key("3"))    // digit toggles in multi mode
	m, _ = m.Update(key("1"))    // toggle 1 back off
	if m.Done() {
		t.Fatal("multi menu resolved before enter")
	}

	m, _ = m.Update(key("enter"))
	if !m.Done() {
		t.Fatal("enter did not finish the multi menu")
	}
	res := m.Result()
	if res.Kind != SelectionChosen {
		t.Fatalf("got %+v, want Chosen set", res)
	}
	if len(res.Indices) != 2 || res.Indices[0] != 0 || res.Indices[1] != 3 {
		t.Errorf("indices = %v, want [0 3]", res.Indices)
	}
}

func TestMultiMenuViewShowsSelectionCount(t *testing.T) {
	m := NewMultiMenu("Capacities", []string{"a", "b", "c"})
	m, _ = m.Update(key(" "))
	m, _ = m.Update(key("2"))

	if view := m.View(); !strings.Contains(view, "Selected: 2 items") {
		t.Error("multi-select view does not show the selection count")
	}
}

func TestMultiMenuCancelKeepsAccumulatedSet(t *testing.T) {
	m := NewMultiMenu("Capacities", []string{"a", "b"})
	m, _ = m.Update(key(" "))
	m, _ = m.Update(key("q"))

	res := m.Result()
	if res.Kind != SelectionCancelled {
		t.Fatalf("got %+v, want Cancelled", res)
	}
	if len(res.Indices) != 1 || res.Indices[0] != 0 {
		t.Errorf("cancelled set = %v, want [0]", res.Indices)
	}
}

package ui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Menu is a single- or multi-select option list. It stays in one browsing
// state until a key resolves it; the parent model polls Done and reads
// Result. Callers must supply a non-empty option list.
type Menu struct {
	Title        string
	Instructions string
	Options      []string
	Multi        bool

	Width  int
	Height int

	cursor int
	picked map[int]bool
	done   bool
	result Selection
}

// NewMenu creates a single-select menu.
func NewMenu(title string, options []string) Menu {
	w, h := GetTerminalSize()
	return Menu{
		Title:        title,
		Instructions: "up/down navigate - enter select - r refresh - b back - q quit",
		Options:      options,
		Width:        w,
		Height:       h,
		picked:       make(map[int]bool),
	}
}

// NewMultiMenu creates a multi-select menu.
func NewMultiMenu(title string, options []string) Menu {
	m := NewMenu(title, options)
	m.Multi = true
	m.Instructions = "space toggle - enter finish - q quit"
	return m
}

// Done reports whether the menu has resolved.
func (m Menu) Done() bool { return m.done }

// Result returns the tagged outcome; only meaningful once Done is true.
func (m Menu) Result() Selection { return m.result }

// Cursor returns the highlighted index.
func (m Menu) Cursor() int { return m.cursor }

// Update handles one message and returns the updated menu.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		key := msg.String()
		switch {
		case key == "up" || key == "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case key == "down" || key == "j":
			if m.cursor < len(m.Options)-1 {
				m.cursor++
			}
		case key == " ":
			if m.Multi {
				m.toggle(m.cursor)
			}
		case key == "enter" || key == "l":
			if m.Multi {
				m.done = true
				m.result = ChosenSet(m.pickedIndices())
			} else {
				m.done = true
				m.result = Chosen(m.cursor)
			}
		case len(key) == 1 && key[0] >= '0' && key[0] <= '9':
			idx := int(key[0] - '0')
			if idx < len(m.Options) {
				if m.Multi {
					m.toggle(idx)
				} else {
					m.done = true
					m.result = Chosen(idx)
				}
			}
		case key == "r" || key == "R":
			m.done = true
			m.result = Selection{Kind: SelectionRefresh}
		case key == "b" || key == "B":
			m.done = true
			m.result = Selection{Kind: SelectionBack}
		case key == "q" || key == "Q":
			m.done = true
			m.result = Selection{Kind: SelectionCancelled, Indices: m.pickedIndices()}
		}
	}
	return m, nil
}

func (m *Menu) toggle(idx int) {
	if m.picked[idx] {
		delete(m.picked, idx)
	} else {
		m.picked[idx] = true
	}
}

func (m Menu) pickedIndices() []int {
	out := make([]int, 0, len(m.picked))
	for idx := range m.picked {
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}

// View renders the menu inside a centered panel. Rows that do not fit the
// terminal are omitted.
func (m Menu) View() string {
	inner := m.Width - 2*DefaultBoxPadding - 4
	if inner < 10 {
		inner = 10
	}
	maxRows := m.Height - 10
	if maxRows < 1 {
		maxRows = 1
	}

	var b strings.Builder
	for idx, opt := range m.Options {
		if idx >= maxRows {
			break
		}
		label := opt
		if m.Multi {
			box := "[ ]"
			if m.picked[idx] {
				box = "[*]"
			}
			label = box + " " + label
		}
		label = Truncate(label, inner)
		if idx == m.cursor {
			b.WriteString(SelectedMenuItemStyle.Render("> " + label))
		} else {
			b.WriteString(MenuItemStyle.Render(label))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if m.Multi {
		b.WriteString(FieldValueStyle.Render(Center(m.StatusLine(), inner)))
		b.WriteString("\n")
	}
	b.WriteString(InstructionStyle.Render(Center(Truncate(m.Instructions, inner), inner)))

	box := Panel(m.Title, b.String(), m.boxWidth())
	return Overlay(box, m.Width, m.Height)
}

func (m Menu) boxWidth() int {
	longest := 0
	for _, opt := range m.Options {
		if len(opt) > longest {
			longest = len(opt)
		}
	}
	want := longest + 14
	if m.Multi {
		want += 6
	}
	if want < MinTerminalWidth {
		want = MinTerminalWidth
	}
	if want > m.Width {
		want = m.Width
	}
	return want
}

// StatusLine returns a short selection summary for multi-select menus.
func (m Menu) StatusLine() string {
	if !m.Multi {
		return ""
	}
	return fmt.Sprintf("Selected: %d items", len(m.picked))
}

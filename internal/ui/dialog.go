package ui

import (
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// DialogKind selects the border colour and default heading of a dialog.
type DialogKind int

const (
	DialogInfo DialogKind = iota
	DialogSuccess
	DialogWarning
	DialogError
)

// Dialog is a modal message box. In acknowledge mode any key dismisses it.
// In yes/no mode only y/Y answers yes and only n/N or esc answers no; every
// other key is ignored, so the dialog can sit open indefinitely.
type Dialog struct {
	Kind    DialogKind
	Title   string
	Message string
	YesNo   bool

	Width  int
	Height int

	done   bool
	answer bool
}

// NewDialog creates an acknowledge dialog.
func NewDialog(kind DialogKind, title, message string) Dialog {
	w, h := GetTerminalSize()
	return Dialog{Kind: kind, Title: title, Message: message, Width: w, Height: h}
}

// NewYesNoDialog creates a yes/no confirmation dialog.
func NewYesNoDialog(kind DialogKind, title, message string) Dialog {
	d := NewDialog(kind, title, message)
	d.YesNo = true
	return d
}

// Done reports whether the dialog has been dismissed.
func (d Dialog) Done() bool { return d.done }

// Answer returns the yes/no outcome; only meaningful once Done is true.
// Acknowledge dialogs always answer false.
func (d Dialog) Answer() bool { return d.answer }

// Update handles one message and returns the updated dialog.
func (d Dialog) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.Width = msg.Width
		d.Height = msg.Height
		return d, nil

	case tea.KeyMsg:
		if !d.YesNo {
			d.done = true
			return d, nil
		}
		switch msg.String() {
		case "y", "Y":
			d.done = true
			d.answer = true
		case "n", "N", "esc":
			d.done = true
			d.answer = false
		}
	}
	return d, nil
}

// View renders the dialog centered in the terminal.
func (d Dialog) View() string {
	inner := d.Width/2 - 2*DefaultBoxPadding
	if inner < 24 {
		inner = 24
	}
	if inner > MaxContentWidth-2*DefaultBoxPadding {
		inner = MaxContentWidth - 2*DefaultBoxPadding
	}

	var b strings.Builder
	if d.Title != "" {
		b.WriteString(TitleStyle.Render(Center(Truncate(d.Title, inner), inner)))
		b.WriteString("\n\n")
	}
	for _, line := range wrapText(d.Message, inner) {
		b.WriteString(Center(line, inner))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	hint := "press any key to continue"
	if d.YesNo {
		hint = "[y]es / [n]o"
	}
	b.WriteString(InstructionStyle.Render(Center(hint, inner)))

	box := d.borderStyle().Width(inner + 2*DefaultBoxPadding).Render(b.String())
	return Overlay(box, d.Width, d.Height)
}

func (d Dialog) borderStyle() lipgloss.Style {
	switch d.Kind {
	case DialogSuccess:
		return dialogBorderSuccess
	case DialogWarning:
		return dialogBorderWarning
	case DialogError:
		return dialogBorderError
	default:
		return dialogBorderInfo
	}
}

// wrapText splits text into lines no wider than width terminal cells,
// breaking on spaces where possible. Explicit newlines are respected.
// Widths are measured in cells, not bytes, so wide runes wrap correctly.
func wrapText(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	var out []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := ""
		for _, word := range words {
			for runewidth.StringWidth(word) > width {
				if line != "" {
					out = append(out, line)
					line = ""
				}
				head := runewidth.Truncate(word, width, "")
				if head == "" {
					// A single rune wider than the budget still has
					// to make progress.
					_, size := utf8.DecodeRuneInString(word)
					head = word[:size]
				}
				out = append(out, head)
				word = word[len(head):]
			}
			switch {
			case line == "":
				line = word
			case runewidth.StringWidth(line)+1+runewidth.StringWidth(word) <= width:
				line += " " + word
			default:
				out = append(out, line)
				line = word
			}
		}
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/osrtools/osrdesk/internal/order"
)

// EditorOutcome is how a line-editor session ended.
type EditorOutcome int

const (
	// EditorNone means the session is still running.
	EditorNone EditorOutcome = iota
	// EditorFinalize means the operator accepted the collection.
	EditorFinalize
	// EditorCancelled means the operator backed out without accepting.
	EditorCancelled
)

type editorMode int

const (
	editorBrowsing editorMode = iota
	editorForm
)

// LineEditor manages the order's line collection: browsing, appending and
// deleting lines, and opening a Form on one line. The collection is mutated
// in place; the set never drops below one line.
type LineEditor struct {
	Title  string
	Mode   order.Mode
	Set    *order.RecordSet
	Lookup LookupFunc

	Width  int
	Height int

	mode   editorMode
	cursor int
	form   Form
	status Status

	done       bool
	outcome    EditorOutcome
	wantConfig bool
}

// NewLineEditor creates an editor over the given collection.
func NewLineEditor(title string, m order.Mode, set *order.RecordSet, lookup LookupFunc) LineEditor {
	w, h := GetTerminalSize()
	return LineEditor{
		Title:  title,
		Mode:   m,
		Set:    set,
		Lookup: lookup,
		Width:  w,
		Height: h,
	}
}

// Done reports whether the session has ended.
func (e LineEditor) Done() bool { return e.done }

// Outcome returns how the session ended; EditorNone until Done is true.
func (e LineEditor) Outcome() EditorOutcome { return e.outcome }

// WantConfig reports whether a lookup inside the line form asked for the
// facility identifier to be configured.
func (e LineEditor) WantConfig() bool { return e.wantConfig }

// Cursor returns the highlighted line index.
func (e LineEditor) Cursor() int { return e.cursor }

// Update handles one message and returns the updated editor.
func (e LineEditor) Update(msg tea.Msg) (LineEditor, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		e.Width = size.Width
		e.Height = size.Height
		if e.mode == editorForm {
			var cmd tea.Cmd
			e.form, cmd = e.form.Update(msg)
			return e, cmd
		}
		return e, nil
	}

	if e.mode == editorForm {
		return e.updateForm(msg)
	}
	return e.updateBrowsing(msg)
}

func (e LineEditor) updateBrowsing(msg tea.Msg) (LineEditor, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return e, nil
	}
	e.status.Clear()
	switch key.String() {
	case "up", "k":
		if e.cursor > 0 {
			e.cursor--
		}
	case "down", "j":
		if e.cursor < e.Set.Len()-1 {
			e.cursor++
		}
	case "a", "A":
		e.cursor = e.Set.Append()
		e.renumber()
		e.status.Set(StatusSuccess, fmt.Sprintf("Added line %d", e.cursor+1))
	case "d", "D":
		if !e.Set.Delete(e.cursor) {
			e.status.Set(StatusWarning, "An order needs at least one line")
			break
		}
		e.renumber()
		if e.cursor >= e.Set.Len() {
			e.cursor = e.Set.Len() - 1
		}
		e.status.Set(StatusInfo, "Line removed")
	case "enter", "l":
		title := fmt.Sprintf("%s - Line %d", e.Title, e.cursor+1)
		e.form = NewForm(title, e.Set.At(e.cursor), e.Mode.Schema(), e.Lookup)
		e.form.Width = e.Width
		e.form.Height = e.Height
		e.mode = editorForm
	case "s", "S":
		e.done = true
		e.outcome = EditorFinalize
	case "b", "B", "h":
		e.done = true
		e.outcome = EditorCancelled
	}
	return e, nil
}

func (e LineEditor) updateForm(msg tea.Msg) (LineEditor, tea.Cmd) {
	var cmd tea.Cmd
	e.form, cmd = e.form.Update(msg)
	if !e.form.Done() {
		return e, cmd
	}
	e.mode = editorBrowsing
	if e.form.WantConfig() {
		e.wantConfig = true
		e.done = true
		e.outcome = EditorCancelled
		return e, cmd
	}
	// Shared fields fan out whether the line form saved or backed out;
	// committed edits already live on the line either way.
	e.broadcastShared(e.form.Edited())
	if e.form.Accepted() {
		e.done = true
		e.outcome = EditorFinalize
	}
	return e, cmd
}

// broadcastShared copies order-level fields edited on one line onto every
// other line so the collection stays consistent.
func (e *LineEditor) broadcastShared(edited []string) {
	shared := e.Mode.SharedFields()
	src := e.Set.At(e.cursor)
	applied := 0
	for _, name := range edited {
		if !containsString(shared, name) {
			continue
		}
		applied += e.Set.Broadcast(name, src.Value(name))
	}
	if applied > 0 {
		e.status.Set(StatusInfo, "Shared fields copied to all lines")
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func (e *LineEditor) renumber() {
	if seq, ok := e.Mode.SequenceField(); ok {
		e.Set.Renumber(seq)
	}
}

// View renders the line list or the open line form.
func (e LineEditor) View() string {
	if e.mode == editorForm {
		return e.form.View()
	}

	inner := e.Width - 2*DefaultBoxPadding - 4
	if inner > MaxContentWidth-2*DefaultBoxPadding {
		inner = MaxContentWidth - 2*DefaultBoxPadding
	}
	maxRows := e.Height - 12
	if maxRows < 1 {
		maxRows = 1
	}

	var b strings.Builder
	for idx := 0; idx < e.Set.Len() && idx < maxRows; idx++ {
		row := fmt.Sprintf("Line %d: %s", idx+1, e.summary(idx, inner-12))
		if idx == e.cursor {
			b.WriteString(SelectedMenuItemStyle.Render("> " + row))
		} else {
			b.WriteString(MenuItemStyle.Render(row))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(ActionStyle.Render(Center("[S]ave    [B]ack", inner)))
	b.WriteString("\n")
	b.WriteString(InstructionStyle.Render(Center("enter edit - a add - d delete - s save - b back", inner)))
	if e.status.Message != "" {
		b.WriteString("\n")
		b.WriteString(e.status.Render(inner))
	}

	return Overlay(Panel(e.Title, b.String(), e.Width), e.Width, e.Height)
}

// summary condenses a line's fields into "Name=Value" pairs for the list row.
func (e LineEditor) summary(idx, budget int) string {
	rec := e.Set.At(idx)
	parts := make([]string, 0, rec.Len())
	for _, name := range rec.DisplayOrder(e.Mode.Schema()) {
		if rec.Value(name) == "" {
			continue
		}
		parts = append(parts, name+"="+rec.Value(name))
	}
	return Truncate(strings.Join(parts, ", "), budget)
}

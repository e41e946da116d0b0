package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/osrtools/osrdesk/internal/order"
)

// ErrUnconfigured is returned by a LookupFunc when the facility identifier
// needed to reach the lookup service has not been configured yet.
var ErrUnconfigured = errors.New("facility identifier not configured")

// Candidate is one result offered by a field lookup. Accepting it applies
// every value in Values to the record being edited.
type Candidate struct {
	Label  string
	Values []order.Field
}

// LookupFunc fetches candidate values for a field. It may return
// ErrUnconfigured to trigger the configuration prompt.
type LookupFunc func(field string) ([]Candidate, error)

type formMode int

const (
	formBrowsing formMode = iota
	formEditing
	formPicking
	formConfirmConfig
)

// Form edits the fields of a single record in place. The caller passes the
// record by pointer; committed edits mutate it directly. The form resolves
// through Done plus Accepted: s saves, b abandons.
type Form struct {
	Title  string
	Record *order.Record
	Schema []string
	Lookup LookupFunc

	Width  int
	Height int

	mode           formMode
	cursor         int
	input          textinput.Model
	picker         Menu
	pickCandidates []Candidate
	confirm        Dialog
	status         Status

	fields []string

	done       bool
	accepted   bool
	wantConfig bool
	edited     []string
}

// NewForm creates a form over the given record. The schema orders the rows;
// fields on the record but not in the schema are appended after it.
func NewForm(title string, rec *order.Record, schema []string, lookup LookupFunc) Form {
	w, h := GetTerminalSize()
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 40
	return Form{
		Title:  title,
		Record: rec,
		Schema: schema,
		Lookup: lookup,
		Width:  w,
		Height: h,
		input:  ti,
		fields: fieldRows(rec, schema),
	}
}

func fieldRows(rec *order.Record, schema []string) []string {
	return rec.DisplayOrder(schema)
}

// Done reports whether the form session has ended.
func (f Form) Done() bool { return f.done }

// Accepted reports whether the session ended with a save.
func (f Form) Accepted() bool { return f.accepted }

// WantConfig reports whether the operator asked to configure the facility
// identifier after a lookup hit ErrUnconfigured.
func (f Form) WantConfig() bool { return f.wantConfig }

// Edited returns the names of fields whose values were committed during the
// session, in commit order without duplicates.
func (f Form) Edited() []string { return f.edited }

// Update handles one message and returns the updated form.
func (f Form) Update(msg tea.Msg) (Form, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		f.Width = size.Width
		f.Height = size.Height
		return f, nil
	}

	switch f.mode {
	case formEditing:
		return f.updateEditing(msg)
	case formPicking:
		return f.updatePicking(msg)
	case formConfirmConfig:
		return f.updateConfirmConfig(msg)
	default:
		return f.updateBrowsing(msg)
	}
}

func (f Form) updateBrowsing(msg tea.Msg) (Form, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil
	}
	f.status.Clear()
	switch key.String() {
	case "up", "k":
		if f.cursor > 0 {
			f.cursor--
		}
	case "down", "j":
		if f.cursor < len(f.fields)-1 {
			f.cursor++
		}
	case "enter", "l":
		f.mode = formEditing
		f.input.SetValue(f.Record.Value(f.currentField()))
		f.input.CursorEnd()
		f.input.Focus()
		return f, textinput.Blink
	case "d", "D":
		return f.startLookup()
	case "s", "S":
		f.done = true
		f.accepted = true
	case "b", "B", "h":
		f.done = true
		f.accepted = false
	}
	return f, nil
}

func (f Form) updateEditing(msg tea.Msg) (Form, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			f.commit(f.currentField(), f.input.Value())
			f.mode = formBrowsing
			f.input.Blur()
			return f, nil
		case "esc":
			f.mode = formBrowsing
			f.input.Blur()
			return f, nil
		}
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f Form) startLookup() (Form, tea.Cmd) {
	field := f.currentField()
	if f.Lookup == nil || !order.LookupEligible(field) {
		f.status.Set(StatusWarning, "No lookup available for "+field)
		return f, nil
	}
	candidates, err := f.Lookup(field)
	if err != nil {
		if errors.Is(err, ErrUnconfigured) {
			f.confirm = NewYesNoDialog(DialogWarning, "Facility Not Configured",
				"Lookups need a facility identifier. Configure it now?")
			f.mode = formConfirmConfig
			return f, nil
		}
		f.status.Set(StatusError, "Lookup failed: "+err.Error())
		return f, nil
	}
	if len(candidates) == 0 {
		f.status.Set(StatusWarning, "No results for "+field)
		return f, nil
	}
	labels := make([]string, len(candidates))
	for i, c := range candidates {
		labels[i] = c.Label
	}
	f.picker = NewMenu("Select "+field, labels)
	f.pickCandidates = candidates
	f.mode = formPicking
	return f, nil
}

func (f Form) updatePicking(msg tea.Msg) (Form, tea.Cmd) {
	var cmd tea.Cmd
	f.picker, cmd = f.picker.Update(msg)
	if !f.picker.Done() {
		return f, cmd
	}
	res := f.picker.Result()
	f.mode = formBrowsing
	if res.Kind != SelectionChosen || res.Index >= len(f.pickCandidates) {
		return f, cmd
	}
	for _, fv := range f.pickCandidates[res.Index].Values {
		f.commit(fv.Name, fv.Value)
	}
	f.status.Set(StatusSuccess, "Applied "+f.pickCandidates[res.Index].Label)
	return f, cmd
}

func (f Form) updateConfirmConfig(msg tea.Msg) (Form, tea.Cmd) {
	var cmd tea.Cmd
	f.confirm, cmd = f.confirm.Update(msg)
	if !f.confirm.Done() {
		return f, cmd
	}
	f.mode = formBrowsing
	if f.confirm.Answer() {
		f.wantConfig = true
		f.done = true
		f.accepted = false
	}
	return f, cmd
}

func (f *Form) commit(field, value string) {
	f.Record.Set(field, value)
	// A lookup can introduce a field the record did not carry yet; the row
	// list has to pick it up.
	f.fields = fieldRows(f.Record, f.Schema)
	for _, name := range f.edited {
		if name == field {
			return
		}
	}
	f.edited = append(f.edited, field)
}

func (f Form) currentField() string {
	if f.cursor < len(f.fields) {
		return f.fields[f.cursor]
	}
	return ""
}

// View renders the form or, when a lookup picker or confirmation is open,
// that overlay instead.
func (f Form) View() string {
	switch f.mode {
	case formPicking:
		return f.picker.View()
	case formConfirmConfig:
		return f.confirm.View()
	}

	inner := f.Width - 2*DefaultBoxPadding - 4
	if inner > MaxContentWidth-2*DefaultBoxPadding {
		inner = MaxContentWidth - 2*DefaultBoxPadding
	}
	nameW := 0
	for _, name := range f.fields {
		if len(name) > nameW {
			nameW = len(name)
		}
	}

	var b strings.Builder
	for idx, name := range f.fields {
		row := fmt.Sprintf("%-*s : ", nameW, name)
		if f.mode == formEditing && idx == f.cursor {
			row += f.input.View()
		} else {
			row += FieldValueStyle.Render(Truncate(f.Record.Value(name), inner-nameW-5))
		}
		if idx == f.cursor && f.mode == formBrowsing {
			b.WriteString(SelectedMenuItemStyle.Render("> " + row))
		} else {
			b.WriteString(MenuItemStyle.Render(row))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(ActionStyle.Render(Center("[S]ave    [B]ack", inner)))
	b.WriteString("\n")
	hint := "enter edit - d lookup - s save - b back"
	if f.mode == formEditing {
		hint = "enter commit - esc abandon"
	}
	b.WriteString(InstructionStyle.Render(Center(hint, inner)))
	if f.status.Message != "" {
		b.WriteString("\n")
		b.WriteString(f.status.Render(inner))
	}

	return Overlay(Panel(f.Title, b.String(), f.Width), f.Width, f.Height)
}

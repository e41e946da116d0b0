package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/osrtools/osrdesk/internal/config"
	"github.com/osrtools/osrdesk/internal/history"
	"github.com/osrtools/osrdesk/internal/order"
	"github.com/osrtools/osrdesk/internal/payload"
	"github.com/osrtools/osrdesk/internal/sandbox"
	"github.com/osrtools/osrdesk/internal/ui"
)

// lookupFunc adapts the inventory API to the form's lookup callback. The
// facility is resolved at call time so configuring it mid-session takes
// effect immediately.
func (m AppModel) lookupFunc() ui.LookupFunc {
	return func(field string) ([]ui.Candidate, error) {
		facility := m.deps.Settings.Facility()
		if facility == "" {
			return nil, ui.ErrUnconfigured
		}
		if m.deps.Lookup == nil {
			return nil, errors.New("lookup service not available")
		}
		ctx := context.Background()
		switch field {
		case order.FieldContainerType:
			types, err := m.deps.Lookup.ContainerTypes(ctx, facility)
			if err != nil {
				return nil, err
			}
			out := make([]ui.Candidate, len(types))
			for i, t := range types {
				out[i] = ui.Candidate{
					Label:  t,
					Values: []order.Field{{Name: order.FieldContainerType, Value: t}},
				}
			}
			return out, nil
		default:
			products, err := m.deps.Lookup.Products(ctx, facility)
			if err != nil {
				return nil, err
			}
			out := make([]ui.Candidate, len(products))
			for i, p := range products {
				out[i] = ui.Candidate{
					Label: fmt.Sprintf("%s  %s", p.Code, p.Name),
					Values: []order.Field{
						{Name: order.FieldProductCode, Value: p.Code},
						{Name: order.FieldProductName, Value: p.Name},
					},
				}
			}
			return out, nil
		}
	}
}

// startEditing opens the editor for one mode, seeded from the last composed
// order of that mode.
func (m AppModel) startEditing(mode order.Mode) (tea.Model, tea.Cmd) {
	m.mode = mode
	m.set = m.deps.Settings.Order(mode)
	m.screen = ScreenEditing
	if mode.MultiLine() {
		m.editor = ui.NewLineEditor(string(mode), mode, m.set, m.lookupFunc())
		m.editor.Width = m.width
		m.editor.Height = m.height
	} else {
		m.form = ui.NewForm(string(mode), m.set.First(), mode.Schema(), m.lookupFunc())
		m.form.Width = m.width
		m.form.Height = m.height
	}
	return m, nil
}

func (m AppModel) updateEditing(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.mode.MultiLine() {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		if !m.editor.Done() {
			return m, cmd
		}
		if m.editor.WantConfig() {
			return m.configDetour()
		}
		if m.editor.Outcome() == ui.EditorCancelled {
			return m.persistAndReturn()
		}
		return m.finalizeOrder()
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	if !m.form.Done() {
		return m, cmd
	}
	if m.form.WantConfig() {
		return m.configDetour()
	}
	if !m.form.Accepted() {
		return m.persistAndReturn()
	}
	return m.finalizeOrder()
}

// persistAndReturn stores the edited order and goes back to the top menu.
// The order is kept even when the operator backs out so a half-finished
// composition survives the session.
func (m AppModel) persistAndReturn() (tea.Model, tea.Cmd) {
	m.deps.Settings.SetOrder(m.mode, m.set)
	if err := m.deps.Store.Save(m.deps.Settings); err != nil {
		return m.fail("Could Not Save", err)
	}
	return m.toTopMenu(), nil
}

// configDetour stores the edits made so far, collects the facility
// identifier and then reopens the editing session so the lookup can be
// retried.
func (m AppModel) configDetour() (tea.Model, tea.Cmd) {
	m.deps.Settings.SetOrder(m.mode, m.set)
	if err := m.deps.Store.Save(m.deps.Settings); err != nil {
		return m.fail("Could Not Save", err)
	}
	return m.toFacilityInput(ScreenEditing), nil
}

// finalizeOrder persists the composition, builds the payload and moves to the
// confirmation screen. Validation failures turn into error dialogs.
func (m AppModel) finalizeOrder() (tea.Model, tea.Cmd) {
	m.deps.Settings.SetOrder(m.mode, m.set)
	if err := m.deps.Store.Save(m.deps.Settings); err != nil {
		return m.fail("Could Not Save", err)
	}

	doc, err := payload.Build(m.mode, m.set, payload.Options{
		Operator:      m.deps.Settings.Operator,
		CapacitySpecs: m.deps.Settings.CapacitySpecs,
	})
	if err != nil {
		var verr *payload.ValidationError
		if errors.As(err, &verr) {
			return m.showDialog(ui.DialogWarning, "Order Incomplete", verr.Error(), ScreenTopMenu), nil
		}
		return m.fail("Could Not Build Order", err)
	}

	m.pendingDoc = doc
	m.screen = ScreenConfirming
	m.confirm = ui.NewYesNoDialog(ui.DialogInfo, "Send Order?", confirmSummary(m.mode, doc, m.deps.DryRun))
	m.confirm.Width = m.width
	m.confirm.Height = m.height
	return m, nil
}

func confirmSummary(mode order.Mode, doc string, dryRun bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s order %s is ready.\n\n", mode, payload.OrderID(doc))
	preview := doc
	if len(preview) > 400 {
		preview = preview[:400] + "..."
	}
	b.WriteString(preview)
	if dryRun {
		b.WriteString("\n\nDry run: nothing will be sent.")
	}
	return b.String()
}

func (m AppModel) updateConfirming(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.confirm, cmd = m.confirm.Update(msg)
	if !m.confirm.Done() {
		return m, cmd
	}
	if !m.confirm.Answer() {
		m.pendingDoc = ""
		return m.toTopMenu(), nil
	}
	return m.dispatch(m.pendingDoc, false)
}

// dispatch fires the payload at the control system as a command so the UI
// stays responsive while the socket round trip runs.
func (m AppModel) dispatch(doc string, resend bool) (tea.Model, tea.Cmd) {
	m.screen = ScreenDispatching
	sender := m.deps.Dispatcher
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		err := sender.Send(ctx, doc)
		return dispatchResultMsg{payload: doc, resend: resend, err: err}
	}
}

func (m AppModel) handleDispatchResult(msg dispatchResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		next := ScreenTopMenu
		if msg.resend {
			next = ScreenHistoryList
		}
		return m.showDialog(ui.DialogError, "Dispatch Failed", msg.err.Error(), next), nil
	}

	status := history.StatusSent
	if m.deps.DryRun {
		status = history.StatusDryRun
	}
	entry := history.Entry{
		OrderID:  payload.OrderID(msg.payload),
		Type:     payload.OrderType(msg.payload),
		Facility: m.deps.Settings.Facility(),
		Status:   status,
		Payload:  msg.payload,
	}
	if _, err := m.deps.History.Add(entry); err != nil {
		return m.fail("Could Not Record Order", err)
	}

	m.lastDoc = msg.payload
	m.pendingDoc = ""

	// Live facilities have no simulator, so skip the sandbox helper menu.
	if m.deps.Settings.ServerType != config.ServerTest {
		title := "Order Sent"
		if m.deps.DryRun {
			title = "Dry Run Complete"
		}
		return m.showDialog(ui.DialogSuccess, title,
			fmt.Sprintf("Order %s dispatched.", entry.OrderID), ScreenTopMenu), nil
	}
	return m.toPostDispatch(), nil
}

// Post-dispatch sandbox menu entries.
const (
	postInsert = iota
	postRemove
	postEnable
	postDisable
	postElement
	postDone
)

func (m AppModel) toPostDispatch() AppModel {
	m.screen = ScreenPostDispatch
	m.menu = ui.NewMenu("Sandbox Commands", []string{
		"Copy carrier insert command",
		"Copy carrier remove command",
		"Copy enable element command",
		"Copy disable element command",
		"Change simulator element",
		"Back to main menu",
	})
	m.menu.Instructions = "enter copy - b back - q quit"
	m.menu.Width = m.width
	m.menu.Height = m.height
	return m
}

func (m AppModel) sandboxElement() string {
	if m.deps.Settings.SandboxElement != "" {
		return m.deps.Settings.SandboxElement
	}
	return sandbox.DefaultElement
}

func (m AppModel) updatePostDispatch(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	if !m.menu.Done() {
		return m, cmd
	}
	res := m.menu.Result()
	if res.Kind != ui.SelectionChosen {
		return m.toTopMenu(), nil
	}

	gen := sandbox.NewGenerator(m.deps.Settings.Facility())
	element := m.sandboxElement()
	carrier := sandbox.CarrierFromPayload(m.lastDoc)

	var command string
	switch res.Index {
	case postInsert:
		command = gen.Insert(element, carrier)
	case postRemove:
		command = gen.Remove(element, carrier)
	case postEnable:
		command = gen.Enable(element, sandbox.KindElement)
	case postDisable:
		command = gen.Disable(element, sandbox.KindElement)
	case postElement:
		return m.toElementInput(), nil
	default:
		return m.toTopMenu(), nil
	}

	if err := m.deps.Clipboard(command); err != nil {
		return m.showDialog(ui.DialogWarning, "Clipboard Unavailable",
			fmt.Sprintf("Copy failed, run manually:\n\n%s", command), ScreenPostDispatch), nil
	}
	return m.showDialog(ui.DialogSuccess, "Copied",
		fmt.Sprintf("Command copied to clipboard:\n\n%s", command), ScreenPostDispatch), nil
}

func (m AppModel) toElementInput() AppModel {
	m.screen = ScreenElementInput
	m.input = newTextInput(m.sandboxElement(), sandbox.DefaultElement)
	return m
}

func (m AppModel) updateElementInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEscape:
			return m.toPostDispatch(), nil
		case tea.KeyEnter:
			value := strings.TrimSpace(m.input.Value())
			if value != "" {
				m.deps.Settings.SandboxElement = value
				if err := m.deps.Store.Save(m.deps.Settings); err != nil {
					return m.fail("Could Not Save", err)
				}
			}
			return m.toPostDispatch(), nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

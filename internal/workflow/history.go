package workflow

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/osrtools/osrdesk/internal/config"
	"github.com/osrtools/osrdesk/internal/history"
	"github.com/osrtools/osrdesk/internal/sandbox"
	"github.com/osrtools/osrdesk/internal/ui"
)

func entryLine(e history.Entry) string {
	return fmt.Sprintf("%-28s %-10s %-17s %s",
		ui.Truncate(e.OrderID, 28), e.Type, e.Status, e.Created.Format("2006-01-02 15:04"))
}

func (m AppModel) toHistoryList() (tea.Model, tea.Cmd) {
	entries, err := m.deps.History.ListFor(m.deps.Settings.Facility())
	if err != nil {
		return m.fail("Could Not Load History", err)
	}
	m.histEntries = entries
	options := make([]string, len(entries))
	for i, e := range entries {
		options[i] = entryLine(e)
	}
	if len(options) == 0 {
		options = []string{"(no orders recorded for this facility)"}
	}
	m.screen = ScreenHistoryList
	m.menu = ui.NewMenu("Order History", options)
	m.menu.Instructions = "enter details - r refresh - b back - q quit"
	m.menu.Width = m.width
	m.menu.Height = m.height
	return m, nil
}

func (m AppModel) updateHistoryList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	if !m.menu.Done() {
		return m, cmd
	}
	res := m.menu.Result()
	switch res.Kind {
	case ui.SelectionRefresh:
		return m.toHistoryList()
	case ui.SelectionChosen:
		if res.Index < len(m.histEntries) {
			m.histSelected = m.histEntries[res.Index]
			return m.toHistoryDetail(), nil
		}
	}
	return m.toTopMenu(), nil
}

// History detail menu entries.
const (
	detailResend = iota
	detailCopyPayload
	detailInsert
	detailRemove
	detailBack
)

func (m AppModel) toHistoryDetail() AppModel {
	e := m.histSelected
	m.screen = ScreenHistoryDetail
	m.menu = ui.NewMenu(
		fmt.Sprintf("%s (%s, %s)", e.OrderID, e.Type, e.Status),
		[]string{
			"Resend order",
			"Copy payload to clipboard",
			"Copy carrier insert command",
			"Copy carrier remove command",
			"Back to history",
		})
	m.menu.Width = m.width
	m.menu.Height = m.height
	return m
}

func (m AppModel) updateHistoryDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	if !m.menu.Done() {
		return m, cmd
	}
	res := m.menu.Result()
	if res.Kind != ui.SelectionChosen {
		return m.toHistoryList()
	}

	e := m.histSelected
	switch res.Index {
	case detailResend:
		return m.dispatch(e.Payload, true)
	case detailCopyPayload:
		return m.copyWithFeedback(e.Payload, ScreenHistoryDetail)
	case detailInsert, detailRemove:
		gen := sandbox.NewGenerator(m.deps.Settings.Facility())
		carrier := sandbox.CarrierFromPayload(e.Payload)
		command := gen.Insert(m.sandboxElement(), carrier)
		if res.Index == detailRemove {
			command = gen.Remove(m.sandboxElement(), carrier)
		}
		return m.copyWithFeedback(command, ScreenHistoryDetail)
	default:
		return m.toHistoryList()
	}
}

// copyWithFeedback copies text and reports the outcome as a dialog that
// resumes at next.
func (m AppModel) copyWithFeedback(text string, next Screen) (tea.Model, tea.Cmd) {
	if err := m.deps.Clipboard(text); err != nil {
		return m.showDialog(ui.DialogWarning, "Clipboard Unavailable",
			fmt.Sprintf("Copy failed, use manually:\n\n%s", ui.Truncate(text, 300)), next), nil
	}
	return m.showDialog(ui.DialogSuccess, "Copied", ui.Truncate(text, 300), next), nil
}

func (m AppModel) toCancelList() (tea.Model, tea.Cmd) {
	entries, err := m.deps.History.ActiveFor(m.deps.Settings.Facility())
	if err != nil {
		return m.fail("Could Not Load Orders", err)
	}
	if len(entries) == 0 {
		return m.showDialog(ui.DialogInfo, "Nothing To Cancel",
			"No active orders for this facility.", ScreenTopMenu), nil
	}
	m.histEntries = entries
	options := make([]string, len(entries))
	for i, e := range entries {
		options[i] = entryLine(e)
	}
	m.screen = ScreenCancelList
	m.menu = ui.NewMenu("Cancel Order", options)
	m.menu.Instructions = "enter cancel - r refresh - b back - q quit"
	m.menu.Width = m.width
	m.menu.Height = m.height
	return m, nil
}

func (m AppModel) updateCancelList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	if !m.menu.Done() {
		return m, cmd
	}
	res := m.menu.Result()
	switch res.Kind {
	case ui.SelectionRefresh:
		return m.toCancelList()
	case ui.SelectionChosen:
		if res.Index < len(m.histEntries) {
			m.histSelected = m.histEntries[res.Index]
			m.screen = ScreenCancelConfirm
			m.confirm = ui.NewYesNoDialog(ui.DialogWarning, "Cancel Order?",
				fmt.Sprintf("Cancel %s (%s)?", m.histSelected.OrderID, m.histSelected.Type))
			m.confirm.Width = m.width
			m.confirm.Height = m.height
			return m, nil
		}
	}
	return m.toTopMenu(), nil
}

func (m AppModel) updateCancelConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.confirm, cmd = m.confirm.Update(msg)
	if !m.confirm.Done() {
		return m, cmd
	}
	if !m.confirm.Answer() {
		return m.toCancelList()
	}

	e := m.histSelected
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	ok, detail := m.deps.Canceller.Cancel(ctx, e.Type, e.OrderID)
	if !ok {
		return m.showDialog(ui.DialogError, "Cancel Failed", detail, ScreenCancelList), nil
	}

	status := history.StatusCancelled
	if m.deps.DryRun {
		status = history.StatusCancelledDryRun
	}
	if err := m.deps.History.UpdateStatus(e.ID, status); err != nil {
		return m.fail("Could Not Record Cancellation", err)
	}
	return m.showDialog(ui.DialogSuccess, "Order Cancelled", detail, ScreenCancelList), nil
}

// Settings menu entries.
const (
	settingFacility = iota
	settingServer
	settingBack
)

func (m AppModel) toSettings() AppModel {
	s := m.deps.Settings
	facility := s.Facility()
	if facility == "" {
		facility = "not configured"
	}
	m.screen = ScreenSettings
	m.menu = ui.NewMenu("Settings", []string{
		fmt.Sprintf("Facility identifier (%s)", facility),
		fmt.Sprintf("Server type (%s)", s.ServerType),
		"Back to main menu",
	})
	m.menu.Width = m.width
	m.menu.Height = m.height
	return m
}

func (m AppModel) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	if !m.menu.Done() {
		return m, cmd
	}
	res := m.menu.Result()
	if res.Kind != ui.SelectionChosen {
		return m.toTopMenu(), nil
	}
	switch res.Index {
	case settingFacility:
		return m.toFacilityInput(ScreenSettings), nil
	case settingServer:
		return m.toServerSelect()
	default:
		return m.toTopMenu(), nil
	}
}

func (m AppModel) toFacilityInput(next Screen) AppModel {
	m.screen = ScreenFacilityInput
	m.inputNext = next
	m.input = newTextInput(m.deps.Settings.FacilityID, "osr1")
	return m
}

func (m AppModel) afterFacilityInput() (tea.Model, tea.Cmd) {
	switch m.inputNext {
	case ScreenSettings:
		return m.toSettings(), nil
	case ScreenEditing:
		return m.startEditing(m.mode)
	default:
		return m.toTopMenu(), nil
	}
}

func (m AppModel) updateFacilityInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEscape:
			return m.afterFacilityInput()
		case tea.KeyEnter:
			value := strings.TrimSpace(m.input.Value())
			if value != "" {
				m.deps.Settings.FacilityID = value
				if err := m.deps.Store.Save(m.deps.Settings); err != nil {
					return m.fail("Could Not Save", err)
				}
			}
			return m.afterFacilityInput()
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m AppModel) toServerSelect() (tea.Model, tea.Cmd) {
	m.screen = ScreenServerSelect
	m.menu = ui.NewMenu("Select Server Type", []string{"Live", "Test"})
	m.menu.Width = m.width
	m.menu.Height = m.height
	return m, nil
}

func (m AppModel) updateServerSelect(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	if !m.menu.Done() {
		return m, cmd
	}
	res := m.menu.Result()
	if res.Kind == ui.SelectionChosen {
		m.deps.Settings.ServerType = config.ServerLive
		if res.Index == 1 {
			m.deps.Settings.ServerType = config.ServerTest
		}
		if err := m.deps.Store.Save(m.deps.Settings); err != nil {
			return m.fail("Could Not Save", err)
		}
	}
	return m.toSettings(), nil
}

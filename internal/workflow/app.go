// Package workflow is the top-level Bubble Tea application: the screen
// state machine that strings the menus, editors, dialogs and collaborators
// into the order composition loop. Every session starts and ends at the top
// menu; collaborator failures become dialogs there, never crashes.
package workflow

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/osrtools/osrdesk/internal/config"
	"github.com/osrtools/osrdesk/internal/history"
	"github.com/osrtools/osrdesk/internal/lookup"
	"github.com/osrtools/osrdesk/internal/order"
	"github.com/osrtools/osrdesk/internal/sandbox"
	"github.com/osrtools/osrdesk/internal/ui"
)

// Screen identifies the active screen of the application.
type Screen string

const (
	ScreenIntroName     Screen = "intro_name"
	ScreenIntroServer   Screen = "intro_server"
	ScreenIntroCapacity Screen = "intro_capacity"
	ScreenIntroQty      Screen = "intro_qty"
	ScreenTopMenu       Screen = "top_menu"
	ScreenEditing       Screen = "editing"
	ScreenConfirming    Screen = "confirming"
	ScreenDispatching   Screen = "dispatching"
	ScreenPostDispatch  Screen = "post_dispatch"
	ScreenElementInput  Screen = "element_input"
	ScreenHistoryList   Screen = "history_list"
	ScreenHistoryDetail Screen = "history_detail"
	ScreenCancelList    Screen = "cancel_list"
	ScreenCancelConfirm Screen = "cancel_confirm"
	ScreenSettings      Screen = "settings"
	ScreenFacilityInput Screen = "facility_input"
	ScreenServerSelect  Screen = "server_select"
	ScreenDialog        Screen = "dialog"
)

// Dispatcher delivers an order payload to the control system.
type Dispatcher interface {
	Send(ctx context.Context, payload string) error
}

// Canceller withdraws a previously dispatched order.
type Canceller interface {
	Cancel(ctx context.Context, orderType, orderID string) (bool, string)
}

// History is the slice of the history store the controller needs.
type History interface {
	Add(history.Entry) (history.Entry, error)
	UpdateStatus(id, status string) error
	ListFor(facility string) ([]history.Entry, error)
	ActiveFor(facility string) ([]history.Entry, error)
}

// Lookup answers assisted-autofill queries.
type Lookup interface {
	Products(ctx context.Context, facility string) ([]lookup.Product, error)
	ContainerTypes(ctx context.Context, facility string) ([]string, error)
}

// Deps are the collaborators the controller drives. Clipboard is injectable
// for tests; nil selects the system clipboard.
type Deps struct {
	Store      *config.Store
	Settings   *config.Settings
	Dispatcher Dispatcher
	Canceller  Canceller
	History    History
	Lookup     Lookup
	DryRun     bool
	Clipboard  func(string) error
}

// dispatchResultMsg reports the outcome of an in-flight dispatch.
type dispatchResultMsg struct {
	payload string
	resend  bool
	err     error
}

// AppModel is the top-level coordinator.
type AppModel struct {
	deps Deps

	screen Screen

	// Active order composition state.
	mode       order.Mode
	set        *order.RecordSet
	pendingDoc string

	// Last dispatched payload, feeding the post-dispatch sandbox screen.
	lastDoc string

	// Child models, one per screen family.
	menu    ui.Menu
	form    ui.Form
	editor  ui.LineEditor
	dialog  ui.Dialog
	confirm ui.Dialog
	input   textinput.Model

	// Where a generic dialog or input returns to when it resolves.
	dialogNext Screen
	inputNext  Screen

	// History browsing state.
	histEntries  []history.Entry
	histSelected history.Entry

	// First-run capacity setup state.
	capacityTypes []string
	capacityIdx   int
	capacityQty   map[string]int

	width  int
	height int
}

// NewAppModel creates the application model. The first-run flow is entered
// when the settings have never been saved.
func NewAppModel(deps Deps) AppModel {
	if deps.Clipboard == nil {
		deps.Clipboard = sandbox.CopyToClipboard
	}
	w, h := ui.GetTerminalSize()
	m := AppModel{deps: deps, width: w, height: h}
	if deps.Settings.FirstRun() {
		return m.toIntroName()
	}
	return m.toTopMenu()
}

// Init implements tea.Model.
func (m AppModel) Init() tea.Cmd {
	if m.screen == ScreenIntroName {
		return textinput.Blink
	}
	return nil
}

// Update implements tea.Model.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case dispatchResultMsg:
		return m.handleDispatchResult(msg)
	}

	switch m.screen {
	case ScreenIntroName, ScreenIntroServer, ScreenIntroCapacity, ScreenIntroQty:
		return m.updateIntro(msg)
	case ScreenTopMenu:
		return m.updateTopMenu(msg)
	case ScreenEditing:
		return m.updateEditing(msg)
	case ScreenConfirming:
		return m.updateConfirming(msg)
	case ScreenDispatching:
		// Keys are ignored while an order is in flight.
		return m, nil
	case ScreenPostDispatch:
		return m.updatePostDispatch(msg)
	case ScreenElementInput:
		return m.updateElementInput(msg)
	case ScreenHistoryList:
		return m.updateHistoryList(msg)
	case ScreenHistoryDetail:
		return m.updateHistoryDetail(msg)
	case ScreenCancelList:
		return m.updateCancelList(msg)
	case ScreenCancelConfirm:
		return m.updateCancelConfirm(msg)
	case ScreenSettings:
		return m.updateSettings(msg)
	case ScreenFacilityInput:
		return m.updateFacilityInput(msg)
	case ScreenServerSelect:
		return m.updateServerSelect(msg)
	case ScreenDialog:
		return m.updateDialog(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m AppModel) View() string {
	switch m.screen {
	case ScreenIntroName, ScreenIntroServer, ScreenIntroCapacity, ScreenIntroQty:
		return m.viewIntro()
	case ScreenTopMenu, ScreenPostDispatch, ScreenHistoryList, ScreenHistoryDetail,
		ScreenCancelList, ScreenSettings, ScreenServerSelect:
		return m.menu.View()
	case ScreenEditing:
		if m.mode.MultiLine() {
			return m.editor.View()
		}
		return m.form.View()
	case ScreenConfirming, ScreenCancelConfirm:
		return m.confirm.View()
	case ScreenDispatching:
		return ui.Overlay(ui.Panel("Dispatching", "Sending order to the control system...", m.width), m.width, m.height)
	case ScreenElementInput, ScreenFacilityInput:
		return m.viewInput()
	case ScreenDialog:
		return m.dialog.View()
	}
	return ""
}

// Screen exposes the active screen for tests.
func (m AppModel) Screen() Screen { return m.screen }

// topMenuOptions are the entries of the main menu in display order. The
// first len(order.Modes) entries map directly onto modes.
func topMenuOptions() []string {
	opts := make([]string, 0, len(order.Modes)+3)
	for _, mode := range order.Modes {
		opts = append(opts, string(mode))
	}
	return append(opts, "Order History", "Cancel Order", "Settings")
}

func (m AppModel) toTopMenu() AppModel {
	m.screen = ScreenTopMenu
	m.menu = ui.NewMenu("OSR Order Console", topMenuOptions())
	m.menu.Width = m.width
	m.menu.Height = m.height
	return m
}

func (m AppModel) updateTopMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	if !m.menu.Done() {
		return m, cmd
	}
	res := m.menu.Result()
	switch res.Kind {
	case ui.SelectionCancelled:
		return m, tea.Quit
	case ui.SelectionRefresh, ui.SelectionBack:
		return m.toTopMenu(), nil
	}

	switch {
	case res.Index < len(order.Modes):
		return m.startEditing(order.Modes[res.Index])
	case res.Index == len(order.Modes):
		return m.toHistoryList()
	case res.Index == len(order.Modes)+1:
		return m.toCancelList()
	default:
		return m.toSettings(), nil
	}
}

// showDialog routes through the generic dialog screen and resumes at next.
func (m AppModel) showDialog(kind ui.DialogKind, title, message string, next Screen) AppModel {
	m.dialog = ui.NewDialog(kind, title, message)
	m.dialog.Width = m.width
	m.dialog.Height = m.height
	m.dialogNext = next
	m.screen = ScreenDialog
	return m
}

func (m AppModel) updateDialog(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.dialog, cmd = m.dialog.Update(msg)
	if !m.dialog.Done() {
		return m, cmd
	}
	switch m.dialogNext {
	case ScreenPostDispatch:
		return m.toPostDispatch(), nil
	case ScreenHistoryList:
		return m.toHistoryList()
	case ScreenCancelList:
		return m.toCancelList()
	case ScreenSettings:
		return m.toSettings(), nil
	default:
		return m.toTopMenu(), nil
	}
}

// fail reports a collaborator error and resumes at the top menu.
func (m AppModel) fail(title string, err error) (tea.Model, tea.Cmd) {
	return m.showDialog(ui.DialogError, title, err.Error(), ScreenTopMenu), nil
}

func (m AppModel) viewInput() string {
	title := "Simulator Element"
	prompt := "Workflow element for carrier insertion:"
	if m.screen == ScreenFacilityInput {
		title = "Facility Identifier"
		prompt = "Facility the console dispatches to (e.g. osr1):"
	}
	content := fmt.Sprintf("%s\n\n%s\n\n%s", prompt, m.input.View(),
		ui.InstructionStyle.Render("enter confirm - esc cancel"))
	return ui.Overlay(ui.Panel(title, content, m.width), m.width, m.height)
}

func newTextInput(value, placeholder string) textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 40
	ti.Placeholder = placeholder
	ti.SetValue(value)
	ti.CursorEnd()
	ti.Focus()
	return ti
}

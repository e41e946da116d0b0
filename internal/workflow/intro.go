package workflow

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/osrtools/osrdesk/internal/config"
	"github.com/osrtools/osrdesk/internal/ui"
)

// defaultOperator is used when the operator skips the name prompt. Order
// numbers still need a prefix.
const defaultOperator = "src"

// capacityOptions are the compartment types offered during first-run setup.
var capacityOptions = []string{"full", "half", "quarter", "eighth"}

func (m AppModel) toIntroName() AppModel {
	m.screen = ScreenIntroName
	m.input = newTextInput(m.deps.Settings.Operator, defaultOperator)
	return m
}

func (m AppModel) toIntroServer() AppModel {
	m.screen = ScreenIntroServer
	m.menu = ui.NewMenu("Select Server Type", []string{"Live", "Test"})
	m.menu.Instructions = "live facilities get no sandbox command helpers"
	m.menu.Width = m.width
	m.menu.Height = m.height
	return m
}

func (m AppModel) toIntroCapacity() AppModel {
	m.screen = ScreenIntroCapacity
	m.menu = ui.NewMultiMenu("Select Capacity Specs", capacityOptions)
	m.menu.Instructions = "space select - enter confirm - q skip"
	m.menu.Width = m.width
	m.menu.Height = m.height
	return m
}

func (m AppModel) toIntroQty() AppModel {
	m.screen = ScreenIntroQty
	spec := m.capacityTypes[m.capacityIdx]
	m.input = newTextInput("", fmt.Sprintf("max quantity for %s", spec))
	return m
}

func (m AppModel) updateIntro(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case ScreenIntroName:
		return m.updateIntroName(msg)
	case ScreenIntroServer:
		return m.updateIntroServer(msg)
	case ScreenIntroCapacity:
		return m.updateIntroCapacity(msg)
	case ScreenIntroQty:
		return m.updateIntroQty(msg)
	}
	return m, nil
}

func (m AppModel) updateIntroName(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEnter {
		name := strings.TrimSpace(m.input.Value())
		if name == "" {
			name = defaultOperator
		}
		m.deps.Settings.Operator = name
		return m.toIntroServer(), nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m AppModel) updateIntroServer(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	if !m.menu.Done() {
		return m, cmd
	}
	res := m.menu.Result()
	// The original defaults skipped selections to live.
	m.deps.Settings.ServerType = config.ServerLive
	if res.Kind == ui.SelectionChosen && res.Index == 1 {
		m.deps.Settings.ServerType = config.ServerTest
	}
	return m.toIntroCapacity(), nil
}

func (m AppModel) updateIntroCapacity(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	if !m.menu.Done() {
		return m, cmd
	}
	res := m.menu.Result()
	if res.Kind != ui.SelectionChosen || len(res.Indices) == 0 {
		return m.finishIntro()
	}
	m.capacityTypes = m.capacityTypes[:0]
	for _, i := range res.Indices {
		m.capacityTypes = append(m.capacityTypes, capacityOptions[i])
	}
	m.capacityIdx = 0
	m.capacityQty = make(map[string]int)
	return m.toIntroQty(), nil
}

func (m AppModel) updateIntroQty(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEnter {
		spec := m.capacityTypes[m.capacityIdx]
		qty, err := strconv.Atoi(strings.TrimSpace(m.input.Value()))
		if err != nil || qty <= 0 {
			m.input.SetValue("")
			m.input.Placeholder = fmt.Sprintf("whole number required for %s", spec)
			return m, nil
		}
		m.capacityQty[spec] = qty
		m.capacityIdx++
		if m.capacityIdx < len(m.capacityTypes) {
			return m.toIntroQty(), nil
		}
		return m.finishIntro()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m AppModel) finishIntro() (tea.Model, tea.Cmd) {
	if len(m.capacityQty) > 0 {
		m.deps.Settings.CapacitySpecs = m.capacityQty
	}
	m.deps.Settings.IntroSeen = true
	if err := m.deps.Store.Save(m.deps.Settings); err != nil {
		return m.fail("Could Not Save", err)
	}
	return m.toTopMenu(), nil
}

func (m AppModel) viewIntro() string {
	switch m.screen {
	case ScreenIntroName:
		content := fmt.Sprintf("Enter your name for order identification:\n\n%s\n\n%s",
			m.input.View(), ui.InstructionStyle.Render("enter confirm - empty uses \"src\""))
		return ui.Overlay(ui.Panel("Welcome", content, m.width), m.width, m.height)
	case ScreenIntroQty:
		spec := m.capacityTypes[m.capacityIdx]
		content := fmt.Sprintf("Maximum quantity for %q compartments:\n\n%s\n\n%s",
			spec, m.input.View(), ui.InstructionStyle.Render("enter confirm"))
		return ui.Overlay(ui.Panel("Capacity Specs", content, m.width), m.width, m.height)
	default:
		return m.menu.View()
	}
}

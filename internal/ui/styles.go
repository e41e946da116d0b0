package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Layout constants for responsive terminal width
const (
	MinTerminalWidth  = 60  // Minimum supported terminal width
	MaxContentWidth   = 120 // Maximum content width before capping
	DefaultBoxPadding = 2   // Default padding inside boxes
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple - titles, borders
	SecondaryColor = lipgloss.Color("#43BF6D") // Green - success, highlight
	WarningColor   = lipgloss.Color("#FFA500") // Orange - warnings
	ErrorColor     = lipgloss.Color("#FF5555") // Red - errors
	TextColor      = lipgloss.Color("#FFFFFF") // White - main content
	SubtleColor    = lipgloss.Color("#626262") // Gray - secondary info
	InfoColor      = lipgloss.Color("#6CA0F6") // Blue - hints, instructions
)

// Common styles
var (
	// TitleStyle is for panel titles
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// MenuItemStyle is for unselected menu rows
	MenuItemStyle = lipgloss.NewStyle().
			PaddingLeft(4).
			Foreground(TextColor)

	// SelectedMenuItemStyle is for the highlighted menu row
	SelectedMenuItemStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				Foreground(SecondaryColor).
				Bold(true)

	// FieldValueStyle is for field values in forms
	FieldValueStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	// InstructionStyle is for key hints at the bottom of panels
	InstructionStyle = lipgloss.NewStyle().
				Foreground(SubtleColor)

	// ActionStyle is for the [S]ave/[B]ack action rows
	ActionStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	// PanelStyle is the bordered container every screen renders into
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PrimaryColor).
			Padding(1, 2)
)

// Dialog border styles keyed by severity
var (
	dialogBorderInfo    = PanelStyle
	dialogBorderSuccess = PanelStyle.BorderForeground(SecondaryColor)
	dialogBorderWarning = PanelStyle.BorderForeground(WarningColor)
	dialogBorderError   = PanelStyle.BorderForeground(ErrorColor)
)

// GetTerminalSize returns the current terminal width and height with safe
// fallbacks for non-terminal environments.
func GetTerminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return MinTerminalWidth, 24
	}
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if width > MaxContentWidth {
		width = MaxContentWidth
	}
	return width, height
}

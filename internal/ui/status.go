package ui

import "github.com/charmbracelet/lipgloss"

// StatusLevel is the severity of a status line message.
type StatusLevel int

const (
	StatusInfo StatusLevel = iota
	StatusSuccess
	StatusWarning
	StatusError
)

// Status is the ephemeral one-line feedback shown at the bottom of the
// screen. It is replaced by the next message and cleared between screens.
type Status struct {
	Level   StatusLevel
	Message string
}

// Set replaces the current status message.
func (s *Status) Set(level StatusLevel, message string) {
	s.Level = level
	s.Message = message
}

// Clear removes the current message.
func (s *Status) Clear() {
	s.Message = ""
}

// Render draws the status line padded to the given width, or an empty line
// when no message is set.
func (s Status) Render(width int) string {
	if s.Message == "" {
		return ""
	}
	var style lipgloss.Style
	var marker string
	switch s.Level {
	case StatusSuccess:
		style = lipgloss.NewStyle().Foreground(SecondaryColor).Bold(true)
		marker = "+"
	case StatusWarning:
		style = lipgloss.NewStyle().Foreground(WarningColor).Bold(true)
		marker = "!"
	case StatusError:
		style = lipgloss.NewStyle().Foreground(ErrorColor).Bold(true)
		marker = "x"
	default:
		style = lipgloss.NewStyle().Foreground(InfoColor)
		marker = "*"
	}
	return style.Render(Truncate(" "+marker+" "+s.Message, width))
}

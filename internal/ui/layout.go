package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Rect is a positioned box in terminal cell coordinates.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Frame computes a centered bounding box for content of the requested size,
// clamped to the terminal. It never fails: when the terminal is smaller than
// the content, the box shrinks to the terminal and starts at the origin.
func Frame(contentH, contentW, termH, termW int) Rect {
	if contentW < 1 {
		contentW = 1
	}
	if contentH < 1 {
		contentH = 1
	}
	if termW > 0 && contentW > termW {
		contentW = termW
	}
	if termH > 0 && contentH > termH {
		contentH = termH
	}
	x := (termW - contentW) / 2
	y := (termH - contentH) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return Rect{X: x, Y: y, Width: contentW, Height: contentH}
}

// Truncate shortens text to at most max display cells, appending "..." only
// when something was cut and the budget allows it.
func Truncate(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= max {
		return text
	}
	if max <= 3 {
		return runewidth.Truncate(text, max, "")
	}
	return runewidth.Truncate(text, max, "...")
}

// Center pads text to sit centered within width. Text wider than the budget
// is truncated instead.
func Center(text string, width int) string {
	w := runewidth.StringWidth(text)
	if w >= width {
		return Truncate(text, width)
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", width-w-left)
}

// Panel renders content inside a bordered box with a centered title row,
// capped to the terminal width.
func Panel(title, content string, termW int) string {
	width := termW
	if width > MaxContentWidth {
		width = MaxContentWidth
	}
	inner := width - 2*DefaultBoxPadding - 2
	if inner < 10 {
		inner = 10
	}
	var b strings.Builder
	if title != "" {
		b.WriteString(TitleStyle.Render(Center(Truncate(title, inner), inner)))
		b.WriteString("\n\n")
	}
	b.WriteString(content)
	return PanelStyle.Width(width - 2).Render(b.String())
}

// Overlay centers a rendered box within the full terminal area.
func Overlay(box string, termW, termH int) string {
	if termW <= 0 || termH <= 0 {
		return box
	}
	return lipgloss.Place(termW, termH, lipgloss.Center, lipgloss.Center, box)
}

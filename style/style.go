// Package style provides a functional API for composing and applying lipgloss-based terminal styles.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/radiosan-cli/radiosan/color"
)

// New returns an empty lipgloss.Style used as a foundation for visual composition.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored initializes a new style with the specified foreground and background colors.
func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a stateless rendering function that applies the specified foreground color to a string.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

// Truncate returns a rendering function that constrains the output string to a specified maximum width.
func Truncate(max int) func(string) string {
	return func(s string) string { return New().Width(max).Render(s) }
}

// Standard Text Transformation Helpers - these functions apply common typographic styles like bold or italics.
var (
	Faint     = func(s string) string { return New().Faint(true).Render(s) }
	Bold      = func(s string) string { return New().Bold(true).Render(s) }
	Italic    = func(s string) string { return New().Italic(true).Render(s) }
	Underline = func(s string) string { return New().Underline(true).Render(s) }
)

// ErrorTitle renders a visually highlighted banner using dominant error status colors.
var ErrorTitle = func(s string) string {
	return Colored(color.New("230"), color.Red).Padding(0, 1).Render(s)
}

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lunit-heesungyang/color-picker/internal/ui"
)

// Styles defines all visual styles for the TUI
type Styles struct {
	// Layout
	App  lipgloss.Style
	Card lipgloss.Style

	// Header/Footer
	Header    lipgloss.Style
	Footer    lipgloss.Style
	StatusBar lipgloss.Style

	// Preview
	Preview      lipgloss.Style
	PreviewLabel lipgloss.Style

	// Controls
	Label        lipgloss.Style
	FocusedLabel lipgloss.Style
	Value        lipgloss.Style
	Marker       lipgloss.Style

	// Input
	InputBox        lipgloss.Style
	FocusedInputBox lipgloss.Style
	Partial         lipgloss.Style

	// Feedback
	Copied lipgloss.Style
	Error  lipgloss.Style
}

// DefaultStyles returns the default style configuration
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(0, 1),

		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ui.ColorBorder).
			Padding(0, 1),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(ui.ColorPrimary).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(ui.ColorBorder).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(ui.ColorWarning).
			Padding(0, 1),

		Preview: lipgloss.NewStyle().
			Align(lipgloss.Center, lipgloss.Center),

		PreviewLabel: lipgloss.NewStyle().
			Bold(true),

		Label: lipgloss.NewStyle().
			Foreground(ui.ColorText).
			Width(12),

		FocusedLabel: lipgloss.NewStyle().
			Bold(true).
			Foreground(ui.ColorSecondary).
			Width(12),

		Value: lipgloss.NewStyle().
			Foreground(ui.ColorMuted),

		Marker: lipgloss.NewStyle().
			Foreground(ui.ColorTextWhite),

		InputBox: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(ui.ColorBorder).
			Padding(0, 1),

		FocusedInputBox: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(ui.ColorSecondary).
			Padding(0, 1),

		Partial: lipgloss.NewStyle().
			Foreground(ui.ColorWarning),

		Copied: lipgloss.NewStyle().
			Foreground(ui.ColorSuccess),

		Error: lipgloss.NewStyle().
			Foreground(ui.ColorError),
	}
}

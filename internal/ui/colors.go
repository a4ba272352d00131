package ui

import "github.com/charmbracelet/lipgloss"

// Color palette for consistent styling across the TUI
var (
	// Primary colors
	ColorPrimary   = lipgloss.Color("#667eea") // Picker accent, matches the default color
	ColorSecondary = lipgloss.Color("62")      // Blue for focus and borders

	// Text colors
	ColorText      = lipgloss.Color("252") // Light gray for labels
	ColorTextWhite = lipgloss.Color("255") // White for input text

	// Border and muted colors
	ColorBorder = lipgloss.Color("240") // Gray for borders and footers
	ColorMuted  = lipgloss.Color("241") // Hints and unfocused values

	// Semantic colors
	ColorSuccess = lipgloss.Color("46")  // Green for "copied"
	ColorError   = lipgloss.Color("196") // Red for clipboard failures
	ColorWarning = lipgloss.Color("214") // Orange for partial hex entry
)

// Swatch label colors, picked by contrast against the swatch
var (
	ColorOnLight = lipgloss.Color("#1a1a1a")
	ColorOnDark  = lipgloss.Color("#f5f5f5")
)

// Package styles provides shared lipgloss styles for UI components.
//
// This package centralizes color definitions so the list table and the
// picker look the same.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Colors used throughout the UI
var (
	// Primary is the main accent color (cyan/teal)
	Primary color.Color = lipgloss.Color("62")

	// Accent is the highlight color for selected/active items (pink)
	Accent color.Color = lipgloss.Color("212")

	// Muted is used for secondary text such as full paths (gray)
	Muted color.Color = lipgloss.Color("240")

	// Normal is the standard text color (light gray)
	Normal color.Color = lipgloss.Color("252")
)

// HeaderStyle for table headers.
func HeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true)
}

// MutedStyle applies the muted color.
func MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Muted)
}

// SelectedStyle for the item under the cursor.
func SelectedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Accent).Bold(true)
}

// NormalStyle for unselected items.
func NormalStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Normal)
}

// HighlightStyle for fuzzy-matched characters.
func HighlightStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Accent).Bold(true).Underline(true)
}

// PromptStyle for the filter prompt.
func PromptStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Primary).Bold(true)
}

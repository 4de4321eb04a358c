// Package styles provides shared lipgloss styles for UI components.
//
// This package centralizes color definitions and styling to ensure
// visual consistency across prompts, progress output, and report tables.
package styles

import "charm.land/lipgloss/v2"

// Primary colors used throughout the UI
var (
	// Primary is the main accent color (cyan/teal)
	Primary = lipgloss.Color("62")

	// Accent is the highlight color for selected/active items (pink)
	Accent = lipgloss.Color("212")

	// Success is used for checkmarks and passing hooks (green)
	Success = lipgloss.Color("82")

	// Error is used for failing hooks and error messages (red)
	Error = lipgloss.Color("196")

	// Muted is used for disabled/secondary text (gray)
	Muted = lipgloss.Color("240")

	// Normal is the standard text color (light gray)
	Normal = lipgloss.Color("252")
)

// Common styles
var (
	// Bold applies bold formatting
	Bold = lipgloss.NewStyle().Bold(true)

	// PrimaryStyle applies the primary color
	PrimaryStyle = lipgloss.NewStyle().Foreground(Primary)

	// AccentStyle applies the accent color with bold
	AccentStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	// SuccessStyle applies the success color
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)

	// ErrorStyle applies the error color
	ErrorStyle = lipgloss.NewStyle().Foreground(Error)

	// MutedStyle applies the muted color
	MutedStyle = lipgloss.NewStyle().Foreground(Muted)

	// NormalStyle applies the normal text color
	NormalStyle = lipgloss.NewStyle().Foreground(Normal)
)

// Symbols for hook and check outcomes
const (
	PassSymbol    = "✓"
	FailSymbol    = "✗"
	MissingSymbol = "?"
)

// Pass renders a green pass marker.
func Pass() string { return SuccessStyle.Render(PassSymbol) }

// Fail renders a red failure marker.
func Fail() string { return ErrorStyle.Render(FailSymbol) }

// Missing renders a muted marker for tools that could not be found.
func Missing() string { return MutedStyle.Render(MissingSymbol) }

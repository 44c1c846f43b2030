// Package tui provides the interactive playground for trying the smart
// backspace without touching other applications.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#FF6B6B") // Red - titles
	ColorSecondary = lipgloss.Color("#4ecdc4") // Teal - labels, prompts
	ColorAccent    = lipgloss.Color("#ffe66d") // Yellow - characters
	ColorMuted     = lipgloss.Color("#666666") // Gray - help text
	ColorSuccess   = lipgloss.Color("#a8e6cf") // Green - retyped letters
	ColorText      = lipgloss.Color("#f1faee") // Light text
	ColorLabel     = lipgloss.Color("#a8dadc") // Label color
	ColorBg        = lipgloss.Color("#1a1a2e") // Dark background
	ColorBgAlt     = lipgloss.Color("#2d3436") // Alt background
	ColorBorder    = lipgloss.Color("#3d5a80") // Border color
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Background(ColorBg).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorLabel).
			Bold(true).
			Width(10)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	CharStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	RetypeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess)

	KeysStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	FallbackStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	BigCharStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Background(ColorBg).
			Padding(1, 2)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)
)

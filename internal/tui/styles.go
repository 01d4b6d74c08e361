// Package tui holds the terminal presentation layer: lipgloss styles, the
// bubbletea input form and the boxed emission summary.
package tui

import "github.com/charmbracelet/lipgloss"

// Adaptive palette shared by every view.
//
//nolint:gochecknoglobals // Style palette, read-only after init.
var (
	ColorHeader    = lipgloss.AdaptiveColor{Light: "#1B5E20", Dark: "#81C784"}
	ColorLabel     = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"}
	ColorValue     = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}
	ColorMuted     = lipgloss.AdaptiveColor{Light: "#888888", Dark: "#777777"}
	ColorHighlight = lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#A5D6A7"}
	ColorError     = lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#EF9A9A"}
	ColorBorder    = lipgloss.AdaptiveColor{Light: "#4CAF50", Dark: "#388E3C"}
)

// Reusable styles.
//
//nolint:gochecknoglobals // Style definitions, read-only after init.
var (
	HeaderStyle    = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	LabelStyle     = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle     = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	SubtleStyle    = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
	HighlightStyle = lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)
	ErrorStyle     = lipgloss.NewStyle().Foreground(ColorError)
	InfoStyle      = lipgloss.NewStyle().Foreground(ColorMuted)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)
)

package components

import "github.com/charmbracelet/lipgloss"

// Styles holds all shared Lipgloss styles used across wizard screens.
type Styles struct {
	Title          lipgloss.Style
	Subtitle       lipgloss.Style
	Body           lipgloss.Style
	Muted          lipgloss.Style
	Success        lipgloss.Style
	Error          lipgloss.Style
	Warning        lipgloss.Style
	Panel          lipgloss.Style
	SelectedItem   lipgloss.Style
	UnselectedItem lipgloss.Style
	StatusApproved string
	StatusDenied   string
	StatusPending  string
	Footer         lipgloss.Style
	AccentColor    lipgloss.AdaptiveColor
}

// DefaultStyles returns a Styles populated with the hatch color palette.
// Uses AdaptiveColor to work in both light and dark terminals.
func DefaultStyles() Styles {
	accent := lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}
	cyan := lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}
	muted := lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	success := lipgloss.AdaptiveColor{Light: "#16A34A", Dark: "#4ADE80"}
	errColor := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}
	warn := lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(cyan),

		Body: lipgloss.NewStyle(),

		Muted: lipgloss.NewStyle().
			Foreground(muted),

		Success: lipgloss.NewStyle().
			Foreground(success),

		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(errColor),

		Warning: lipgloss.NewStyle().
			Foreground(warn),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),

		SelectedItem: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),

		UnselectedItem: lipgloss.NewStyle().
			Foreground(muted),

		StatusApproved: "✓",
		StatusDenied:   "✗",
		StatusPending:  "○",

		Footer: lipgloss.NewStyle().
			Foreground(muted),

		AccentColor: accent,
	}
}

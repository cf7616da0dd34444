package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the lipgloss styles of the menu and overlay screens.
type Theme struct {
	// Menu styles
	MenuTitle    lipgloss.Style
	MenuSubtitle lipgloss.Style
	MenuItem     lipgloss.Style
	MenuDim      lipgloss.Style

	// Leaderboard preview
	BoardHeader lipgloss.Style
	BoardRow    lipgloss.Style
	BoardBest   lipgloss.Style

	// Overlay styles
	OverlayBorder lipgloss.Style
	OverlayTitle  lipgloss.Style
	OverlayText   lipgloss.Style

	// Status line
	Warning lipgloss.Style
	Success lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		MenuTitle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51")),
		MenuSubtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		MenuItem:     lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
		MenuDim:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		BoardHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
		BoardRow:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		BoardBest:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")),

		OverlayBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("51")).
			Padding(1, 3),
		OverlayTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		OverlayText:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),

		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
	}
}

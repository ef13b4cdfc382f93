package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/goyan/diskdash/internal/types"
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("46"))

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226"))

	mustKeepStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	systemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	regularStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	disposableStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	unknownStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// CategoryStyle picks the badge color for a category.
func CategoryStyle(c types.Category) lipgloss.Style {
	switch c {
	case types.MustKeep:
		return mustKeepStyle
	case types.System:
		return systemStyle
	case types.Regular:
		return regularStyle
	case types.Disposable:
		return disposableStyle
	default:
		return unknownStyle
	}
}

// UsefulnessStyle colors a score from red (expendable) to green (keep).
func UsefulnessStyle(score float64) lipgloss.Style {
	switch {
	case score < 20:
		return disposableStyle
	case score < 50:
		return WarningStyle
	case score < 80:
		return regularStyle
	default:
		return mustKeepStyle
	}
}

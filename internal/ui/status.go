package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/metacat/cli/internal/models"
)

// StatusStyle returns the appropriate styling for a run state
func StatusStyle(state models.RunState) lipgloss.Style {
	switch state {
	case models.RunSuccess:
		return lipgloss.NewStyle().Foreground(ColorSuccess)
	case models.RunRunning:
		return lipgloss.NewStyle().Foreground(ColorRunning)
	case models.RunFailed:
		return lipgloss.NewStyle().Foreground(ColorError)
	case models.RunPartialSuccess:
		return lipgloss.NewStyle().Foreground(ColorWarning)
	case models.RunQueued:
		return lipgloss.NewStyle().Foreground(ColorPending)
	default:
		return lipgloss.NewStyle().Foreground(ColorDefault)
	}
}

// StatusIcon returns the appropriate icon for a run state
func StatusIcon(state models.RunState) string {
	switch state {
	case models.RunSuccess:
		return IconSuccess
	case models.RunFailed:
		return IconError
	case models.RunPartialSuccess:
		return IconWarning
	case models.RunRunning:
		return IconRunning
	case models.RunQueued:
		return IconPending
	default:
		return IconDefault
	}
}

// RenderStatus renders a run state with the appropriate icon and styling
func RenderStatus(state models.RunState) string {
	return StatusStyle(state).Render(StatusIcon(state))
}

// RenderStatusLabel renders a run state icon followed by its name
func RenderStatusLabel(state models.RunState) string {
	return StatusStyle(state).Render(StatusIcon(state) + " " + string(state))
}

package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// TruncateText truncates text to the specified length and adds an ellipsis
func TruncateText(text string, maxLength int) string {
	if len(text) <= maxLength {
		return text
	}
	return text[:maxLength] + IconEllipsis
}

// FormatDate formats a time in RFC3339 format
func FormatDate(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// FormatDuration formats a duration in a human-readable way
func FormatDuration(d time.Duration) string {
	if d == 0 {
		return ""
	}
	return d.Round(time.Second).String()
}

// Section creates a titled section with content underneath
func Section(title string, content string) string {
	return lipgloss.JoinVertical(lipgloss.Top, Header.Render(title), content)
}

// Row creates a horizontal row of columns with consistent padding
func Row(columns ...string) string {
	var renderedColumns []string
	for _, col := range columns {
		renderedColumns = append(renderedColumns, Padding.Render(col))
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, renderedColumns...)
}

// LabeledValue creates a "Label: Value" formatted string
func LabeledValue(label string, value string) string {
	labelStyle := lipgloss.NewStyle().Width(15).Bold(true)
	return lipgloss.JoinHorizontal(
		lipgloss.Left,
		labelStyle.Render(label+":"),
		Padding.Render(value),
	)
}

// SpacedVertical joins strings vertically with a blank line between them
func SpacedVertical(sections ...string) string {
	if len(sections) == 0 {
		return ""
	}
	return strings.Join(sections, "\n\n")
}

// Banner renders a persistent informational banner, used for warnings that
// should be shown before any action is attempted
func Banner(message string) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorWarning).
		Padding(0, 1)
	return style.Render(fmt.Sprintf("%s %s", IconWarning, message))
}

package pipeline

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// BulkTrigger aggregates multiple TriggerablePipelines to trigger them in
// parallel and display the progress to the user.
type BulkTrigger struct {
	Pipelines []TriggerablePipeline
}

// Init implements tea.Model
// It calls all TriggerablePipeline Init methods
func (b BulkTrigger) Init() tea.Cmd {
	cmds := make([]tea.Cmd, len(b.Pipelines))
	for i, p := range b.Pipelines {
		cmds[i] = p.Init()
	}

	return tea.Batch(cmds...)
}

// Update implements tea.Model.
// It handles cancelling the whole operation and passing through updates to
// each TriggerablePipeline to update the UI.
func (b BulkTrigger) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// if a key is pressed, ignore everything except for common quitting
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return b, tea.Quit
		default:
			return b, nil
		}
	}
	cmds := make([]tea.Cmd, len(b.Pipelines))
	for i, p := range b.Pipelines {
		p, cmd := p.Update(msg)
		b.Pipelines[i] = p.(TriggerablePipeline)
		cmds[i] = cmd
	}
	return b, tea.Batch(cmds...)
}

// View implements tea.Model to aggregate the output of all TriggerablePipelines
func (b BulkTrigger) View() string {
	var sb strings.Builder

	for _, p := range b.Pipelines {
		sb.WriteString(p.View())
	}

	return sb.String()
}

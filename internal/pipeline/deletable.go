package pipeline

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// DeletablePipeline tracks one pipeline through a delete request. The shape
// matches TriggerablePipeline but with a shorter success flash since the row
// disappears afterwards.
type DeletablePipeline struct {
	err      error
	id       string
	name     string
	spinner  spinner.Model
	status   Status
	deleteFn ActionFn
}

func NewDeletablePipeline(id, name string, deleteFn ActionFn) DeletablePipeline {
	return DeletablePipeline{
		id:       id,
		name:     name,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Points)),
		status:   Waiting,
		deleteFn: deleteFn,
	}
}

// Status reports the current interaction state
func (p DeletablePipeline) Status() Status {
	return p.status
}

// Init implements tea.Model
func (p DeletablePipeline) Init() tea.Cmd {
	return tea.Batch(
		p.spinner.Tick,
		func() tea.Msg {
			if p.deleteFn != nil {
				return p.deleteFn()
			}
			return nil
		},
	)
}

// Update implements tea.Model.
func (p DeletablePipeline) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case spinner.TickMsg:
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd
	case StatusUpdate:
		if msg.ID != p.id {
			return p, nil
		}
		if msg.Err != nil {
			p.err = msg.Err
			p.status = Failed
			return p, msg.Cmd
		}
		p.status = msg.Status
		if msg.Status == Succeeded {
			return p, clearAfter(DeleteFlashDuration, p.id, msg.Cmd)
		}
		return p, msg.Cmd
	case StatusClearedMsg:
		if msg.ID != p.id {
			return p, nil
		}
		p.status = Idle
		return p, msg.Cmd
	default:
		return p, nil
	}
}

// View implements tea.Model.
func (p DeletablePipeline) View() string {
	switch p.status {
	case Waiting:
		return fmt.Sprintf("%s Deleting pipeline %s\n", p.spinner.View(), p.name)
	case Succeeded:
		return fmt.Sprintf("✓   Deleted pipeline %s\n", p.name)
	case Failed:
		return fmt.Sprintf("✖   Failed to delete pipeline %s (error: %s)\n", p.name, p.err.Error())
	default:
		return ""
	}
}

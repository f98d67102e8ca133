package pipeline

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// TriggerablePipeline tracks one pipeline through a manual trigger request.
// It starts in Waiting, moves to Succeeded or Failed when the backend
// responds, and a success clears back to Idle after a short flash.
type TriggerablePipeline struct {
	err       error
	id        string
	name      string
	spinner   spinner.Model
	status    Status
	triggerFn ActionFn
}

func NewTriggerablePipeline(id, name string, triggerFn ActionFn) TriggerablePipeline {
	return TriggerablePipeline{
		id:        id,
		name:      name,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Points)),
		status:    Waiting,
		triggerFn: triggerFn,
	}
}

// Status reports the current interaction state
func (p TriggerablePipeline) Status() Status {
	return p.status
}

// Init implements tea.Model
func (p TriggerablePipeline) Init() tea.Cmd {
	return tea.Batch(
		p.spinner.Tick,
		func() tea.Msg {
			if p.triggerFn != nil {
				return p.triggerFn()
			}
			return nil
		},
	)
}

// Update implements tea.Model.
func (p TriggerablePipeline) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case spinner.TickMsg:
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd
	case StatusUpdate:
		// updates for other pipelines don't apply to this instance
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
			return p, clearAfter(TriggerFlashDuration, p.id, msg.Cmd)
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
func (p TriggerablePipeline) View() string {
	switch p.status {
	case Waiting:
		return fmt.Sprintf("%s Triggering pipeline %s\n", p.spinner.View(), p.name)
	case Succeeded:
		return fmt.Sprintf("✓   Triggered pipeline %s\n", p.name)
	case Failed:
		return fmt.Sprintf("✖   Failed to trigger pipeline %s (error: %s)\n", p.name, p.err.Error())
	default:
		return ""
	}
}

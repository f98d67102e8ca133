package pipeline

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Status tracks the interaction state of a trigger or delete action
type Status int

const (
	Idle Status = iota
	Waiting
	Succeeded
	Failed
)

// Success flashes stay visible briefly before the state clears back to idle.
// Triggering keeps a longer flash than deleting since the row stays on screen.
const (
	TriggerFlashDuration = 1500 * time.Millisecond
	DeleteFlashDuration  = 500 * time.Millisecond
)

// StatusUpdate is used to update the internal state of a trigger or delete
// model. Updates carry the pipeline id so an update for one pipeline never
// touches another's state.
type StatusUpdate struct {
	Cmd    tea.Cmd
	Err    error
	ID     string
	Status Status
}

// ActionFn performs the external call for an action and reports the result
type ActionFn func() StatusUpdate

// StatusClearedMsg signals that a success flash has elapsed and the state
// should return to idle
type StatusClearedMsg struct {
	ID  string
	Cmd tea.Cmd
}

func clearAfter(d time.Duration, id string, cmd tea.Cmd) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return StatusClearedMsg{ID: id, Cmd: cmd}
	})
}

package pipeline

import (
	"bytes"
	"errors"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
)

func TestDeletablePipelineOutput(t *testing.T) {
	t.Parallel()

	t.Run("starts in waiting state", func(t *testing.T) {
		t.Parallel()

		model := NewDeletablePipeline("123", "kafka_usage", func() StatusUpdate {
			return StatusUpdate{tea.Quit, nil, "123", Waiting}
		})
		testModel := teatest.NewTestModel(t, model)
		out, err := io.ReadAll(testModel.FinalOutput(t))
		if err != nil {
			t.Error(err)
		}
		if !bytes.Contains(out, []byte("Deleting pipeline kafka_usage")) {
			t.Error("Output did not match")
		}
	})

	t.Run("failed state", func(t *testing.T) {
		t.Parallel()

		model := NewDeletablePipeline("123", "kafka_usage", func() StatusUpdate {
			return StatusUpdate{tea.Quit, errors.New("forbidden"), "123", Failed}
		})
		testModel := teatest.NewTestModel(t, model)
		out, err := io.ReadAll(testModel.FinalOutput(t))
		if err != nil {
			t.Error(err)
		}
		if !bytes.Contains(out, []byte("Failed to delete pipeline kafka_usage (error: forbidden)")) {
			t.Error("Output did not match")
		}
	})

	t.Run("success clears to idle after the short flash", func(t *testing.T) {
		t.Parallel()

		model := NewDeletablePipeline("123", "kafka_usage", nil)

		updated, _ := model.Update(StatusUpdate{ID: "123", Status: Succeeded})
		if updated.(DeletablePipeline).Status() != Succeeded {
			t.Fatal("expected succeeded state")
		}

		cleared, _ := updated.Update(StatusClearedMsg{ID: "123"})
		if cleared.(DeletablePipeline).Status() != Idle {
			t.Error("expected idle state after the flash cleared")
		}
	})

	t.Run("ignores updates for other pipelines", func(t *testing.T) {
		t.Parallel()

		model := NewDeletablePipeline("123", "kafka_usage", nil)

		updated, _ := model.Update(StatusUpdate{ID: "999", Status: Succeeded})

		if updated.(DeletablePipeline).Status() != Waiting {
			t.Error("an update for another pipeline changed this one's state")
		}
	})
}

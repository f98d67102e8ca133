package pipeline

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/MakeNowJust/heredoc"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/metacat/cli/internal/pipeline"
	"github.com/metacat/cli/pkg/cmd/factory"
	"github.com/spf13/cobra"
	"golang.org/x/sync/semaphore"
)

func NewCmdPipelineTrigger(f *factory.Factory) *cobra.Command {
	var limit int

	cmd := cobra.Command{
		DisableFlagsInUseLine: true,
		Use:                   "trigger <pipeline> [pipeline...]",
		Args:                  cobra.MinimumNArgs(1),
		Short:                 "Trigger pipeline runs",
		Long: heredoc.Doc(`
			Request an immediate run of one or more ingestion pipelines.

			The run is queued on the workflow engine; this command does not wait
			for it to finish.
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := resolveService(f, cmd)
			if err != nil {
				return err
			}

			// Use a wait group to exit the program after every trigger resolves
			var wg sync.WaitGroup
			// limit how many trigger requests are in flight at once
			sem := semaphore.NewWeighted(int64(limit))

			var pipelines []pipeline.TriggerablePipeline
			for _, arg := range args {
				if strings.TrimSpace(arg) == "" {
					continue
				}
				found, err := findPipeline(cmd.Context(), f.RestAPIClient, service, arg)
				if err != nil {
					return err
				}
				wg.Add(1)
				pipelines = append(pipelines, pipeline.NewTriggerablePipeline(
					found.ID,
					found.Title(),
					triggerFn(cmd.Context(), f, found.ID, sem, &wg),
				))
			}

			model := pipeline.BulkTrigger{Pipelines: pipelines}
			p := tea.NewProgram(model, tea.WithOutput(os.Stdout))

			// Send a quit message after every pipeline has resolved
			go func() {
				wg.Wait()
				p.Send(tea.Quit())
			}()

			final, err := p.Run()
			if err != nil {
				return err
			}

			for _, t := range final.(pipeline.BulkTrigger).Pipelines {
				if t.Status() == pipeline.Failed {
					return fmt.Errorf("at least one pipeline failed to trigger")
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 5, "Number of trigger requests to send concurrently")

	return &cmd
}

// triggerFn builds the ActionFn for one pipeline, limiting parallelism with
// the shared semaphore
func triggerFn(ctx context.Context, f *factory.Factory, id string, sem *semaphore.Weighted, wg *sync.WaitGroup) pipeline.ActionFn {
	return func() pipeline.StatusUpdate {
		_ = sem.Acquire(context.Background(), 1)

		return pipeline.StatusUpdate{
			ID:     id,
			Status: pipeline.Waiting,
			// the actual API call runs as a follow-up command so the spinner
			// starts immediately
			Cmd: func() tea.Msg {
				defer sem.Release(1)
				defer wg.Done()

				err := f.RestAPIClient.Trigger(ctx, id)
				return pipeline.StatusUpdate{
					ID:     id,
					Err:    err,
					Status: pipeline.Succeeded,
				}
			},
		}
	}
}

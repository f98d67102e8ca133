package pipeline

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/metacat/cli/internal/io"
	"github.com/metacat/cli/internal/pipeline"
	"github.com/metacat/cli/pkg/cmd/factory"
	"github.com/spf13/cobra"
)

func NewCmdPipelineDelete(f *factory.Factory) *cobra.Command {
	cmd := cobra.Command{
		DisableFlagsInUseLine: true,
		Use:                   "delete <pipeline>",
		Args:                  cobra.ExactArgs(1),
		Short:                 "Delete an ingestion pipeline",
		Long: heredoc.Doc(`
			Delete an ingestion pipeline and its run history. This cannot be
			undone.
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := resolveService(f, cmd)
			if err != nil {
				return err
			}

			found, err := findPipeline(cmd.Context(), f.RestAPIClient, service, args[0])
			if err != nil {
				return err
			}

			confirmed := f.SkipConfirm
			if err := io.Confirm(&confirmed, fmt.Sprintf("Delete pipeline %s?", found.Title())); err != nil {
				return err
			}
			if !confirmed {
				return nil
			}

			ctx := cmd.Context()
			id := found.ID
			model := pipeline.NewDeletablePipeline(id, found.Title(), func() pipeline.StatusUpdate {
				return pipeline.StatusUpdate{
					ID:     id,
					Status: pipeline.Waiting,
					Cmd: func() tea.Msg {
						err := f.RestAPIClient.Delete(ctx, id)
						return pipeline.StatusUpdate{
							ID:     id,
							Err:    err,
							Status: pipeline.Succeeded,
							Cmd:    tea.Quit,
						}
					},
				}
			})

			final, err := tea.NewProgram(model, tea.WithOutput(os.Stdout)).Run()
			if err != nil {
				return err
			}

			if final.(pipeline.DeletablePipeline).Status() == pipeline.Failed {
				return fmt.Errorf("failed to delete pipeline %s", found.Title())
			}
			return nil
		},
	}

	return &cmd
}

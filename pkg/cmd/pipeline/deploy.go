package pipeline

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/metacat/cli/internal/io"
	"github.com/metacat/cli/pkg/cmd/factory"
	"github.com/spf13/cobra"
)

func NewCmdPipelineDeploy(f *factory.Factory) *cobra.Command {
	cmd := cobra.Command{
		DisableFlagsInUseLine: true,
		Use:                   "deploy <pipeline>",
		Args:                  cobra.ExactArgs(1),
		Short:                 "Deploy an ingestion pipeline",
		Long: heredoc.Doc(`
			Deploy an ingestion pipeline to the workflow engine so its schedule
			takes effect.
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := resolveService(f, cmd)
			if err != nil {
				return err
			}

			// create a bubbletea program to manage the output of this command
			l := io.NewPendingCommand(func() tea.Msg {
				found, err := findPipeline(cmd.Context(), f.RestAPIClient, service, args[0])
				if err != nil {
					return err
				}
				if err := f.RestAPIClient.Deploy(cmd.Context(), found.ID); err != nil {
					return err
				}
				return io.PendingOutput(fmt.Sprintf("Deployed pipeline %s\n", found.Title()))
			}, "Deploying pipeline")

			p := tea.NewProgram(l)
			_, err = p.Run()

			return err
		},
	}

	return &cmd
}

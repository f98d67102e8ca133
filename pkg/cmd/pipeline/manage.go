package pipeline

import (
	"github.com/MakeNowJust/heredoc"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/metacat/cli/internal/pipeline"
	"github.com/metacat/cli/pkg/cmd/factory"
	"github.com/spf13/cobra"
)

func NewCmdPipelineManage(f *factory.Factory) *cobra.Command {
	cmd := cobra.Command{
		DisableFlagsInUseLine: true,
		Use:                   "manage",
		Args:                  cobra.NoArgs,
		Short:                 "Manage pipelines interactively",
		Long: heredoc.Doc(`
			Open an interactive view of a service's ingestion pipelines.

			Pipelines can be searched, triggered, added, edited and deleted
			without leaving the view.
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := resolveService(f, cmd)
			if err != nil {
				return err
			}

			model := pipeline.NewManageModel(f.RestAPIClient, service)
			p := tea.NewProgram(model, tea.WithAltScreen())

			_, err = p.Run()
			return err
		},
	}

	return &cmd
}

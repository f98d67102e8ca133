package pipeline

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/metacat/cli/internal/io"
	"github.com/metacat/cli/pkg/cmd/factory"
	"github.com/spf13/cobra"
)

func NewCmdPipelineToggle(f *factory.Factory) *cobra.Command {
	cmd := cobra.Command{
		DisableFlagsInUseLine: true,
		Use:                   "toggle <pipeline>",
		Args:                  cobra.ExactArgs(1),
		Short:                 "Enable or disable an ingestion pipeline",
		Long: heredoc.Doc(`
			Toggle whether an ingestion pipeline runs on its schedule. Disabled
			pipelines keep their configuration and history but stop running.
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := resolveService(f, cmd)
			if err != nil {
				return err
			}

			l := io.NewPendingCommand(func() tea.Msg {
				found, err := findPipeline(cmd.Context(), f.RestAPIClient, service, args[0])
				if err != nil {
					return err
				}
				updated, err := f.RestAPIClient.Toggle(cmd.Context(), found.ID)
				if err != nil {
					return err
				}
				state := "disabled"
				if updated.Enabled {
					state = "enabled"
				}
				return io.PendingOutput(fmt.Sprintf("Pipeline %s is now %s\n", updated.Title(), state))
			}, "Toggling pipeline")

			p := tea.NewProgram(l)
			_, err = p.Run()

			return err
		},
	}

	return &cmd
}

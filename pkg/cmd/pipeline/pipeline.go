package pipeline

import (
	"context"
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/metacat/cli/internal/catalog"
	"github.com/metacat/cli/internal/models"
	"github.com/metacat/cli/internal/validation"
	"github.com/metacat/cli/pkg/cmd/factory"
	"github.com/spf13/cobra"
)

func NewCmdPipeline(f *factory.Factory) *cobra.Command {
	cmd := cobra.Command{
		Use:   "pipeline <command>",
		Short: "Manage ingestion pipelines",
		Long:  "Work with a service's ingestion pipelines.",
		Example: heredoc.Doc(`
			# To list the pipelines of the default service
			$ mcat pipeline list

			# To trigger a run
			$ mcat pipeline trigger my_service_metadata
		`),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			f.SetGlobalFlags(cmd)
			return validation.CheckValidConfiguration(f.Config)
		},
	}

	cmd.PersistentFlags().StringP("service", "s", "", "Service whose pipelines to operate on (defaults to the selected service)")

	cmd.AddCommand(NewCmdPipelineList(f))
	cmd.AddCommand(NewCmdPipelineView(f))
	cmd.AddCommand(NewCmdPipelineCreate(f))
	cmd.AddCommand(NewCmdPipelineEdit(f))
	cmd.AddCommand(NewCmdPipelineDelete(f))
	cmd.AddCommand(NewCmdPipelineTrigger(f))
	cmd.AddCommand(NewCmdPipelineDeploy(f))
	cmd.AddCommand(NewCmdPipelineToggle(f))
	cmd.AddCommand(NewCmdPipelineManage(f))
	cmd.AddCommand(NewCmdPipelineDoctor(f))

	return &cmd
}

// resolveService picks the service from the --service flag, falling back to
// the configured default
func resolveService(f *factory.Factory, cmd *cobra.Command) (string, error) {
	service := ""
	if flag := cmd.Flags().Lookup("service"); flag != nil {
		service = flag.Value.String()
	}
	if service == "" {
		service = f.Config.DefaultService()
	}
	if service == "" {
		return "", fmt.Errorf("no service selected. Use --service or run `mcat service <name>`")
	}
	return service, nil
}

// findPipeline resolves a pipeline argument against a service's pipelines,
// matching on name first and falling back to id
func findPipeline(ctx context.Context, client *catalog.Client, service, arg string) (*models.IngestionPipeline, error) {
	result, err := client.List(ctx, catalog.ListOptions{Service: service})
	if err != nil {
		return nil, err
	}

	for _, p := range result.Data {
		if p.Name == arg {
			return &p, nil
		}
	}
	for _, p := range result.Data {
		if p.ID == arg {
			return &p, nil
		}
	}

	return nil, fmt.Errorf("no pipeline %q found for service %s", arg, service)
}

package pipeline

import (
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/metacat/cli/internal/catalog"
	"github.com/metacat/cli/internal/models"
	"github.com/metacat/cli/internal/pipeline"
	"github.com/metacat/cli/pkg/cmd/factory"
	"github.com/spf13/cobra"
)

func NewCmdPipelineCreate(f *factory.Factory) *cobra.Command {
	var values pipeline.FormValues
	var pipelineType string
	var deploy bool

	cmd := cobra.Command{
		Use:   "create [flags]",
		Args:  cobra.NoArgs,
		Short: "Create an ingestion pipeline",
		Long: heredoc.Doc(`
			Create a new ingestion pipeline for a service.

			Only pipeline types the service connector supports and that are not
			already configured can be created. Without flags an interactive form
			is shown.
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := resolveService(f, cmd)
			if err != nil {
				return err
			}

			result, err := f.RestAPIClient.List(cmd.Context(), catalog.ListOptions{Service: service})
			if err != nil {
				return err
			}

			available := pipeline.AvailableTypes(result.Data, pipeline.CapabilitiesOf(result.Data))
			if len(available) == 0 {
				return fmt.Errorf("all supported ingestion types are already configured for service %s", service)
			}

			values.Type = models.PipelineType(pipelineType)
			if values.Type != "" && !contains(available, values.Type) {
				return fmt.Errorf("pipeline type %q is not available for service %s", pipelineType, service)
			}

			if values.DisplayName == "" || values.Type == "" {
				if f.NoInput {
					return errors.New("--display-name and --type are required with --no-input")
				}
				if err := pipeline.NewForm(&values, available, false).Run(); err != nil {
					return err
				}
			}

			created, err := f.RestAPIClient.Create(cmd.Context(), catalog.CreatePipeline{
				Name:         pipeline.PipelineName(service, values.Type),
				DisplayName:  values.DisplayName,
				Description:  values.Description,
				PipelineType: values.Type,
				Service:      service,
				AirflowConfig: models.AirflowConfig{
					ScheduleInterval: values.Schedule,
				},
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created pipeline %s\n", created.Title())

			if deploy {
				if err := f.RestAPIClient.Deploy(cmd.Context(), created.ID); err != nil {
					return fmt.Errorf("pipeline created but deploy failed: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deployed pipeline %s\n", created.Title())
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&values.DisplayName, "display-name", "", "Display name for the pipeline")
	cmd.Flags().StringVar(&pipelineType, "type", "", "Pipeline type (metadata, usage, lineage, profiler)")
	cmd.Flags().StringVar(&values.Schedule, "schedule", "", "Cron schedule (empty for on-demand)")
	cmd.Flags().StringVar(&values.Description, "description", "", "Pipeline description")
	cmd.Flags().BoolVar(&deploy, "deploy", false, "Deploy the pipeline to the workflow engine after creating it")

	return &cmd
}

func contains(types []models.PipelineType, t models.PipelineType) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}

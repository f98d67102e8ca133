package pipeline

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/metacat/cli/internal/catalog"
	"github.com/metacat/cli/internal/models"
	"github.com/metacat/cli/internal/pipeline"
	"github.com/metacat/cli/pkg/cmd/factory"
	"github.com/spf13/cobra"
)

func NewCmdPipelineEdit(f *factory.Factory) *cobra.Command {
	var flagValues pipeline.FormValues

	cmd := cobra.Command{
		DisableFlagsInUseLine: true,
		Use:                   "edit <pipeline> [flags]",
		Args:                  cobra.ExactArgs(1),
		Short:                 "Edit an ingestion pipeline",
		Long: heredoc.Doc(`
			Edit an existing ingestion pipeline. The pipeline type cannot change
			after creation.

			Flags override single fields; without flags an interactive form is
			shown, prefilled with the current values.
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

			values := pipeline.FormValues{
				DisplayName: found.Title(),
				Type:        found.PipelineType,
				Schedule:    found.AirflowConfig.ScheduleInterval,
				Description: found.Description,
			}

			flagged := applyFlagValues(cmd, &values, flagValues)
			if !flagged {
				if f.NoInput {
					return fmt.Errorf("at least one of --display-name, --schedule or --description is required with --no-input")
				}
				if err := pipeline.NewForm(&values, nil, true).Run(); err != nil {
					return err
				}
			}

			updated, err := f.RestAPIClient.Update(cmd.Context(), catalog.CreatePipeline{
				Name:         found.Name,
				DisplayName:  values.DisplayName,
				Description:  values.Description,
				PipelineType: found.PipelineType,
				Service:      service,
				AirflowConfig: models.AirflowConfig{
					ScheduleInterval: values.Schedule,
				},
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated pipeline %s\n", updated.Title())
			return nil
		},
	}

	cmd.Flags().StringVar(&flagValues.DisplayName, "display-name", "", "Display name for the pipeline")
	cmd.Flags().StringVar(&flagValues.Schedule, "schedule", "", "Cron schedule (empty for on-demand)")
	cmd.Flags().StringVar(&flagValues.Description, "description", "", "Pipeline description")

	return &cmd
}

// applyFlagValues copies explicitly set flags over the current values and
// reports whether any were given
func applyFlagValues(cmd *cobra.Command, values *pipeline.FormValues, flagged pipeline.FormValues) bool {
	any := false
	if cmd.Flags().Changed("display-name") {
		values.DisplayName = flagged.DisplayName
		any = true
	}
	if cmd.Flags().Changed("schedule") {
		values.Schedule = flagged.Schedule
		any = true
	}
	if cmd.Flags().Changed("description") {
		values.Description = flagged.Description
		any = true
	}
	return any
}

package pipeline

import (
	"fmt"
	"strings"

	"github.com/metacat/cli/internal/io"
	"github.com/metacat/cli/internal/models"
	"github.com/metacat/cli/internal/pipeline"
	"github.com/metacat/cli/pkg/cmd/factory"
	"github.com/metacat/cli/pkg/output"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

func NewCmdPipelineView(f *factory.Factory) *cobra.Command {
	var web bool

	cmd := cobra.Command{
		DisableFlagsInUseLine: true,
		Use:                   "view <pipeline> [flags]",
		Short:                 "View an ingestion pipeline",
		Args:                  cobra.ExactArgs(1),
		Long:                  "View an ingestion pipeline and its recent runs.",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := output.GetFormat(cmd.Flags())
			if err != nil {
				return err
			}

			service, err := resolveService(f, cmd)
			if err != nil {
				return err
			}

			var found *models.IngestionPipeline
			var runs []models.PipelineStatus
			var viewErr error
			io.SpinWhile(f.Quiet || format != output.FormatText, "Loading pipeline", func() {
				found, viewErr = findPipeline(cmd.Context(), f.RestAPIClient, service, args[0])
				if viewErr != nil {
					return
				}
				found, runs, viewErr = f.RestAPIClient.GetWithRuns(cmd.Context(), found.ID)
			})
			if viewErr != nil {
				return viewErr
			}

			if web {
				if found.Href == "" {
					return fmt.Errorf("pipeline %s has no web URL", found.Title())
				}
				return browser.OpenURL(found.Href)
			}

			if format != output.FormatText {
				return output.Write(cmd.OutOrStdout(), found, format)
			}

			var out strings.Builder
			if err := pipeline.RenderPipeline(&out, *found, runs); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", out.String())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&web, "web", "w", false, "Open the pipeline in a web browser.")

	output.AddFlags(cmd.Flags())
	return &cmd
}

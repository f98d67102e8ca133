package pipeline

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/charmbracelet/lipgloss"
	"github.com/metacat/cli/internal/catalog"
	"github.com/metacat/cli/internal/io"
	"github.com/metacat/cli/internal/models"
	"github.com/metacat/cli/internal/pipeline"
	"github.com/metacat/cli/internal/ui"
	"github.com/metacat/cli/pkg/cmd/factory"
	"github.com/metacat/cli/pkg/output"
	"github.com/spf13/cobra"
)

type pipelineListOutput struct {
	Service   string                     `json:"service" yaml:"service"`
	Pipelines []models.IngestionPipeline `json:"pipelines" yaml:"pipelines"`
}

func (o pipelineListOutput) TextOutput() string {
	var b strings.Builder

	b.WriteString(ui.Bold.Render(fmt.Sprintf("Ingestion pipelines for %s", o.Service)))
	b.WriteString("\n\n")

	for _, p := range o.Pipelines {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(40).Render(p.Title()),
			lipgloss.NewStyle().Width(12).Render(p.PipelineType.DisplayName()),
			lipgloss.NewStyle().Width(30).Render(pipeline.DescribeSchedule(p.AirflowConfig.ScheduleInterval)),
			pipeline.RenderRunHistory(p),
		))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func NewCmdPipelineList(f *factory.Factory) *cobra.Command {
	var query string
	var limit int
	var all bool

	cmd := cobra.Command{
		DisableFlagsInUseLine: true,
		Use:                   "list",
		Args:                  cobra.NoArgs,
		Short:                 "List ingestion pipelines",
		Long: heredoc.Doc(`
			List the ingestion pipelines of a service, most recent runs included.
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := output.GetFormat(cmd.Flags())
			if err != nil {
				return err
			}

			service, err := resolveService(f, cmd)
			if err != nil {
				return err
			}

			var pipelines []models.IngestionPipeline
			var listErr error
			io.SpinWhile(f.Quiet || format != output.FormatText, "Loading pipelines", func() {
				pipelines, listErr = fetchPipelines(cmd, f, service, limit, all)
			})
			if listErr != nil {
				return listErr
			}

			pipelines = pipeline.SearchFilter(pipelines, query)

			if len(pipelines) == 0 {
				if query != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "No pipelines match %q\n", query)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "No ingestion pipelines found for service %s\n", service)
				}
				return nil
			}

			return output.Write(cmd.OutOrStdout(), pipelineListOutput{
				Service:   service,
				Pipelines: pipelines,
			}, format)
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "Only show pipelines whose name contains this text")
	cmd.Flags().IntVar(&limit, "limit", 25, "Number of pipelines to fetch per API call")
	cmd.Flags().BoolVar(&all, "all", false, "Follow paging cursors and fetch every pipeline")

	output.AddFlags(cmd.Flags())
	return &cmd
}

func fetchPipelines(cmd *cobra.Command, f *factory.Factory, service string, limit int, all bool) ([]models.IngestionPipeline, error) {
	var pipelines []models.IngestionPipeline
	after := ""

	for {
		result, err := f.RestAPIClient.List(cmd.Context(), catalog.ListOptions{
			Service: service,
			Limit:   limit,
			After:   after,
		})
		if err != nil {
			return nil, err
		}

		pipelines = append(pipelines, result.Data...)

		if !all || result.Paging.After == "" {
			return pipelines, nil
		}
		after = result.Paging.After
	}
}

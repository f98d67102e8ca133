package pipeline

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lnquy/cron"
	"github.com/metacat/cli/internal/models"
	"github.com/metacat/cli/internal/ui"
	"github.com/muesli/reflow/wordwrap"
)

const descriptionWidth = 80

// DescribeSchedule turns a cron expression into a human readable sentence.
// The raw expression is returned unchanged when it cannot be parsed, and
// an empty schedule means the pipeline only runs on demand.
func DescribeSchedule(expr string) string {
	if expr == "" {
		return "On demand"
	}

	descriptor, err := cron.NewDescriptor(
		cron.Use24HourTimeFormat(true),
		cron.Verbose(true),
	)
	if err != nil {
		return expr
	}
	desc, err := descriptor.ToDescription(expr, cron.Locale_en)
	if err != nil {
		return expr
	}
	return desc
}

// RenderPipeline renders a full detail view of a pipeline and its run history
func RenderPipeline(out io.Writer, p models.IngestionPipeline, runs []models.PipelineStatus) error {
	header := ui.Bold.Render(p.Title())
	header += fmt.Sprintf("  %s", ui.Italic.Render(p.PipelineType.DisplayName()))

	hr := lipgloss.NewStyle().BorderBottom(true).BorderStyle(lipgloss.ThickBorder())

	var details strings.Builder
	details.WriteString(ui.LabeledValue("Name", p.Name) + "\n")
	details.WriteString(ui.LabeledValue("Schedule", DescribeSchedule(p.AirflowConfig.ScheduleInterval)) + "\n")
	details.WriteString(ui.LabeledValue("Deployed", yesNo(p.Deployed)) + "\n")
	details.WriteString(ui.LabeledValue("Enabled", yesNo(p.Enabled)) + "\n")
	if conn := p.Source.ServiceConnection.Config; conn != nil {
		details.WriteString(ui.LabeledValue("Connector", conn.ConnectorType()) + "\n")
	}
	details.WriteString(ui.LabeledValue("Recent runs", RenderRunHistory(p)))

	sections := []string{
		hr.Width(lipgloss.Width(details.String())).Render(header),
		details.String(),
	}

	if p.Description != "" {
		sections = append(sections, ui.Section("Description", wordwrap.String(p.Description, descriptionWidth)))
	}

	if len(runs) > 0 {
		var history strings.Builder
		for i, run := range runs {
			history.WriteString(DescribeRun(run))
			if i < len(runs)-1 {
				history.WriteString("\n")
			}
		}
		sections = append(sections, ui.Section("Run history", history.String()))
	}

	_, err := fmt.Fprintf(out, "%s\n", ui.SpacedVertical(sections...))
	return err
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

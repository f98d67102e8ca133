package pipeline

import (
	"fmt"
	"sort"
	"strings"

	"github.com/metacat/cli/internal/models"
	"github.com/metacat/cli/internal/ui"
)

// maxRecentRuns is how many run records a summary shows
const maxRecentRuns = 5

// RecentRuns returns up to the last five runs of a pipeline, sorted ascending
// by start date. Runs without a start date sort first. The input is not
// modified; calling this repeatedly with the same input yields the same
// result.
func RecentRuns(p models.IngestionPipeline) []models.PipelineStatus {
	runs := append([]models.PipelineStatus(nil), p.PipelineStatuses...)
	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Started().Before(runs[j].Started())
	})

	if len(runs) > maxRecentRuns {
		runs = runs[len(runs)-maxRecentRuns:]
	}
	return runs
}

// RenderRunHistory renders a compact status summary of the recent runs. The
// most recent run carries its state label, earlier runs show as bare icons.
func RenderRunHistory(p models.IngestionPipeline) string {
	runs := RecentRuns(p)
	if len(runs) == 0 {
		return ui.Faint.Render("No runs yet")
	}

	var sb strings.Builder
	for i, run := range runs {
		if i == len(runs)-1 {
			sb.WriteString(ui.RenderStatusLabel(run.State))
			break
		}
		sb.WriteString(ui.RenderStatus(run.State))
		sb.WriteString(" ")
	}
	return sb.String()
}

// DescribeRun formats one run record for detail output
func DescribeRun(run models.PipelineStatus) string {
	started := "-"
	if run.StartDate != nil {
		started = ui.FormatDate(run.StartDate.Time)
	}
	duration := ""
	if run.StartDate != nil && run.EndDate != nil {
		duration = ui.Faint.Render(ui.FormatDuration(run.EndDate.Time.Sub(run.StartDate.Time)))
	}
	return fmt.Sprintf("%s  %s  %s", ui.RenderStatusLabel(run.State), started, duration)
}

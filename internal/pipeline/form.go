package pipeline

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/metacat/cli/internal/models"
	"github.com/metacat/cli/internal/validation"
)

// FormValues carries the editable fields of the add/edit sub-form
type FormValues struct {
	DisplayName string
	Type        models.PipelineType
	Schedule    string
	Description string
}

// NewForm builds the add/edit form. For a new pipeline the type is picked
// from the remaining addable types with the first one pre-selected; when
// editing, the type is fixed and only the other fields are shown.
func NewForm(values *FormValues, available []models.PipelineType, editing bool) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Title("Display name").
			Value(&values.DisplayName).
			Validate(validation.NonEmpty),
	}

	if !editing {
		options := make([]huh.Option[models.PipelineType], len(available))
		for i, t := range available {
			options[i] = huh.NewOption(t.DisplayName(), t)
		}
		if len(available) > 0 && values.Type == "" {
			values.Type = available[0]
		}
		fields = append(fields, huh.NewSelect[models.PipelineType]().
			Title("Ingestion type").
			Options(options...).
			Value(&values.Type),
		)
	}

	fields = append(fields,
		huh.NewInput().
			Title("Schedule (cron, empty for on demand)").
			Value(&values.Schedule).
			Validate(validation.CronExpression).
			Description("e.g. \"0 2 * * *\" for every day at 02:00"),
		huh.NewText().
			Title("Description").
			Value(&values.Description).
			Lines(3),
	)

	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(huh.ThemeBase16())
}

// PipelineName derives the stored pipeline name from the service and type,
// e.g. "kafka-prod_metadata"
func PipelineName(service string, t models.PipelineType) string {
	return fmt.Sprintf("%s_%s", service, t)
}

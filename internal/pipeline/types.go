// Package pipeline holds the view logic for managing ingestion pipelines:
// derived pipeline-type computation, search filtering, run-history
// summarisation and the interactive trigger/delete state machines.
package pipeline

import "github.com/metacat/cli/internal/models"

// CapabilitiesOf returns the connector capability projection for a pipeline
// list. All entries belong to one service, so the first entry's connection is
// authoritative. An empty list yields the zero value.
func CapabilitiesOf(pipelines []models.IngestionPipeline) models.Capabilities {
	if len(pipelines) == 0 {
		return models.Capabilities{}
	}
	return pipelines[0].Source.ServiceConnection.ConnectionCapabilities()
}

// AvailableTypes computes which pipeline types can still be added for a
// service. With existing pipelines the set is the capability-declared types
// minus the types already configured. With no pipelines the capabilities are
// unknown, so the full default set is offered.
func AvailableTypes(pipelines []models.IngestionPipeline, caps models.Capabilities) []models.PipelineType {
	if len(pipelines) == 0 {
		return append([]models.PipelineType(nil), models.DefaultPipelineTypes...)
	}

	configured := make(map[models.PipelineType]bool, len(pipelines))
	for _, p := range pipelines {
		configured[p.PipelineType] = true
	}

	var available []models.PipelineType
	for _, t := range caps.DeclaredTypes() {
		if !configured[t] {
			available = append(available, t)
		}
	}
	return available
}

package pipeline

import (
	"testing"

	"github.com/metacat/cli/internal/models"
)

func pipelineOfType(t models.PipelineType) models.IngestionPipeline {
	return models.IngestionPipeline{
		Name:         "svc_" + string(t),
		PipelineType: t,
	}
}

func TestAvailableTypes(t *testing.T) {
	t.Parallel()

	t.Run("offers the default types when no pipeline exists", func(t *testing.T) {
		t.Parallel()

		got := AvailableTypes(nil, models.Capabilities{})

		if len(got) != 2 || got[0] != models.TypeMetadata || got[1] != models.TypeUsage {
			t.Errorf("expected default types, got %v", got)
		}
	})

	t.Run("mutating the result does not change the defaults", func(t *testing.T) {
		t.Parallel()

		got := AvailableTypes(nil, models.Capabilities{})
		got[0] = models.TypeProfiler

		if models.DefaultPipelineTypes[0] != models.TypeMetadata {
			t.Error("default type set was modified")
		}
	})

	t.Run("excludes already configured types", func(t *testing.T) {
		t.Parallel()

		caps := models.Capabilities{
			SupportsMetadataExtraction: true,
			SupportsUsageExtraction:    true,
			SupportsLineageExtraction:  true,
		}
		pipelines := []models.IngestionPipeline{pipelineOfType(models.TypeMetadata)}

		got := AvailableTypes(pipelines, caps)

		if len(got) != 2 || got[0] != models.TypeUsage || got[1] != models.TypeLineage {
			t.Errorf("expected [usage lineage], got %v", got)
		}
	})

	t.Run("returns nothing when every supported type is configured", func(t *testing.T) {
		t.Parallel()

		caps := models.Capabilities{
			SupportsMetadataExtraction: true,
			SupportsUsageExtraction:    true,
		}
		pipelines := []models.IngestionPipeline{
			pipelineOfType(models.TypeMetadata),
			pipelineOfType(models.TypeUsage),
		}

		if got := AvailableTypes(pipelines, caps); len(got) != 0 {
			t.Errorf("expected no available types, got %v", got)
		}
	})

	t.Run("ignores types outside the connector capabilities", func(t *testing.T) {
		t.Parallel()

		caps := models.Capabilities{SupportsMetadataExtraction: true}
		pipelines := []models.IngestionPipeline{pipelineOfType(models.TypeUsage)}

		got := AvailableTypes(pipelines, caps)

		if len(got) != 1 || got[0] != models.TypeMetadata {
			t.Errorf("expected [metadata], got %v", got)
		}
	})
}

func TestCapabilitiesOf(t *testing.T) {
	t.Parallel()

	t.Run("empty list has no capabilities", func(t *testing.T) {
		t.Parallel()

		if got := CapabilitiesOf(nil); got != (models.Capabilities{}) {
			t.Errorf("expected zero capabilities, got %+v", got)
		}
	})

	t.Run("reads the first entry's connection", func(t *testing.T) {
		t.Parallel()

		p := pipelineOfType(models.TypeMetadata)
		p.Source.ServiceConnection.Config = models.NifiConnection{
			Type:       "Nifi",
			Capability: models.Capabilities{SupportsMetadataExtraction: true},
		}

		got := CapabilitiesOf([]models.IngestionPipeline{p})

		if !got.SupportsMetadataExtraction || got.SupportsUsageExtraction {
			t.Errorf("unexpected capabilities %+v", got)
		}
	})
}

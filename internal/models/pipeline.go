package models

import "time"

// PipelineType identifies the kind of metadata extraction a pipeline performs
type PipelineType string

const (
	TypeMetadata PipelineType = "metadata"
	TypeUsage    PipelineType = "usage"
	TypeLineage  PipelineType = "lineage"
	TypeProfiler PipelineType = "profiler"
)

// DefaultPipelineTypes is the set of types offered when no pipeline exists yet
// and connector capabilities are unknown.
var DefaultPipelineTypes = []PipelineType{TypeMetadata, TypeUsage}

// DisplayName returns the capitalised form used in user facing output
func (t PipelineType) DisplayName() string {
	switch t {
	case TypeMetadata:
		return "Metadata"
	case TypeUsage:
		return "Usage"
	case TypeLineage:
		return "Lineage"
	case TypeProfiler:
		return "Profiler"
	default:
		return string(t)
	}
}

// RunState is the state of a single pipeline run
type RunState string

const (
	RunQueued         RunState = "queued"
	RunRunning        RunState = "running"
	RunSuccess        RunState = "success"
	RunFailed         RunState = "failed"
	RunPartialSuccess RunState = "partialSuccess"
)

// IngestionPipeline represents a scheduled metadata-extraction job bound to
// one source connector. It is owned by the catalog service; the CLI only ever
// holds a read-only snapshot.
type IngestionPipeline struct {
	ID               string           `json:"id,omitempty" yaml:"id,omitempty"`
	Name             string           `json:"name,omitempty" yaml:"name,omitempty"`
	DisplayName      string           `json:"displayName,omitempty" yaml:"displayName,omitempty"`
	Description      string           `json:"description,omitempty" yaml:"description,omitempty"`
	PipelineType     PipelineType     `json:"pipelineType,omitempty" yaml:"pipelineType,omitempty"`
	Service          string           `json:"service,omitempty" yaml:"service,omitempty"`
	AirflowConfig    AirflowConfig    `json:"airflowConfig,omitempty" yaml:"airflowConfig,omitempty"`
	Source           Source           `json:"source,omitempty" yaml:"source,omitempty"`
	PipelineStatuses []PipelineStatus `json:"pipelineStatuses,omitempty" yaml:"pipelineStatuses,omitempty"`
	Deployed         bool             `json:"deployed,omitempty" yaml:"deployed,omitempty"`
	Enabled          bool             `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Href             string           `json:"href,omitempty" yaml:"href,omitempty"`
	UpdatedAt        *Timestamp       `json:"updatedAt,omitempty" yaml:"updatedAt,omitempty"`
}

// Title returns the name to show for the pipeline, preferring the display name
func (p *IngestionPipeline) Title() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.Name
}

// AirflowConfig carries the scheduling options handed to the workflow engine
type AirflowConfig struct {
	ScheduleInterval string     `json:"scheduleInterval,omitempty" yaml:"scheduleInterval,omitempty"`
	StartDate        *Timestamp `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	Concurrency      int        `json:"concurrency,omitempty" yaml:"concurrency,omitempty"`
	Timezone         string     `json:"timezone,omitempty" yaml:"timezone,omitempty"`
}

// Source describes where the pipeline extracts metadata from
type Source struct {
	Type              string            `json:"type,omitempty" yaml:"type,omitempty"`
	ServiceName       string            `json:"serviceName,omitempty" yaml:"serviceName,omitempty"`
	ServiceConnection ServiceConnection `json:"serviceConnection,omitempty" yaml:"serviceConnection,omitempty"`
}

// PipelineStatus is one run record. Immutable once observed.
type PipelineStatus struct {
	RunID     string     `json:"runId,omitempty" yaml:"runId,omitempty"`
	State     RunState   `json:"state,omitempty" yaml:"state,omitempty"`
	StartDate *Timestamp `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	EndDate   *Timestamp `json:"endDate,omitempty" yaml:"endDate,omitempty"`
}

// Started returns the start time, or the zero time when the run never
// reported one. Sorting treats a missing start date as the minimum.
func (s PipelineStatus) Started() time.Time {
	if s.StartDate == nil {
		return time.Time{}
	}
	return s.StartDate.Time
}

// Paging is the opaque cursor pair returned by list endpoints
type Paging struct {
	Before string `json:"before,omitempty" yaml:"before,omitempty"`
	After  string `json:"after,omitempty" yaml:"after,omitempty"`
	Total  int    `json:"total" yaml:"total"`
}

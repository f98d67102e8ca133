// Package catalog wraps the metadata service's ingestion-pipeline endpoints
// with typed operations. The service owns the data; this is a consumer only.
package catalog

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/metacat/cli/internal/api"
	"github.com/metacat/cli/internal/models"
	"golang.org/x/sync/errgroup"
)

const basePath = "/services/ingestionPipelines"

// Client performs ingestion-pipeline operations against the catalog API
type Client struct {
	api *api.Client
}

func NewClient(apiClient *api.Client) *Client {
	return &Client{api: apiClient}
}

// ListOptions controls a single page fetch. Before and After are the opaque
// cursor pair from a previous page's Paging; at most one should be set.
type ListOptions struct {
	Service string
	Limit   int
	Before  string
	After   string
}

// ListResult is one ordered page of pipelines plus the paging token
type ListResult struct {
	Data   []models.IngestionPipeline `json:"data"`
	Paging models.Paging              `json:"paging"`
}

// List fetches one page of ingestion pipelines for a service. Run histories
// are included so list views can render status summaries without extra calls.
func (c *Client) List(ctx context.Context, opts ListOptions) (*ListResult, error) {
	query := url.Values{}
	query.Set("fields", "pipelineStatuses")
	if opts.Service != "" {
		query.Set("service", opts.Service)
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Before != "" {
		query.Set("before", opts.Before)
	}
	if opts.After != "" {
		query.Set("after", opts.After)
	}

	var result ListResult
	if err := c.api.Get(ctx, basePath, query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Get fetches a single pipeline by id
func (c *Client) Get(ctx context.Context, id string) (*models.IngestionPipeline, error) {
	var pipeline models.IngestionPipeline
	query := url.Values{}
	query.Set("fields", "pipelineStatuses")
	if err := c.api.Get(ctx, fmt.Sprintf("%s/%s", basePath, id), query, &pipeline); err != nil {
		return nil, err
	}
	return &pipeline, nil
}

// Runs fetches the full run history for a pipeline
func (c *Client) Runs(ctx context.Context, id string) ([]models.PipelineStatus, error) {
	var result struct {
		Data []models.PipelineStatus `json:"data"`
	}
	if err := c.api.Get(ctx, fmt.Sprintf("%s/%s/pipelineStatus", basePath, id), nil, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// GetWithRuns fetches the pipeline entity and its run history concurrently
func (c *Client) GetWithRuns(ctx context.Context, id string) (*models.IngestionPipeline, []models.PipelineStatus, error) {
	var (
		pipeline *models.IngestionPipeline
		runs     []models.PipelineStatus
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		pipeline, err = c.Get(ctx, id)
		return err
	})
	g.Go(func() (err error) {
		runs, err = c.Runs(ctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return pipeline, runs, nil
}

// CreatePipeline is the payload for creating or updating a pipeline
type CreatePipeline struct {
	Name          string               `json:"name"`
	DisplayName   string               `json:"displayName,omitempty"`
	Description   string               `json:"description,omitempty"`
	PipelineType  models.PipelineType  `json:"pipelineType"`
	Service       string               `json:"service"`
	AirflowConfig models.AirflowConfig `json:"airflowConfig"`
	LoggerLevel   string               `json:"loggerLevel,omitempty"`
}

// Create persists a new ingestion pipeline and returns the stored entity
func (c *Client) Create(ctx context.Context, payload CreatePipeline) (*models.IngestionPipeline, error) {
	var pipeline models.IngestionPipeline
	if err := c.api.Post(ctx, basePath, payload, &pipeline); err != nil {
		return nil, err
	}
	return &pipeline, nil
}

// Update replaces an existing pipeline's configuration
func (c *Client) Update(ctx context.Context, payload CreatePipeline) (*models.IngestionPipeline, error) {
	var pipeline models.IngestionPipeline
	if err := c.api.Put(ctx, basePath, payload, &pipeline); err != nil {
		return nil, err
	}
	return &pipeline, nil
}

// Delete removes a pipeline and its deployed workflow
func (c *Client) Delete(ctx context.Context, id string) error {
	query := url.Values{}
	query.Set("hardDelete", "true")
	return c.api.Delete(ctx, fmt.Sprintf("%s/%s", basePath, id), query)
}

// Trigger asks the workflow engine to run the pipeline now. The run itself
// happens out of band; success only means the request was accepted.
func (c *Client) Trigger(ctx context.Context, id string) error {
	return c.api.Post(ctx, fmt.Sprintf("%s/trigger/%s", basePath, id), nil, nil)
}

// Deploy redeploys the pipeline's workflow definition to the scheduler
func (c *Client) Deploy(ctx context.Context, id string) error {
	return c.api.Post(ctx, fmt.Sprintf("%s/deploy/%s", basePath, id), nil, nil)
}

// Toggle flips the enabled state of a pipeline and returns the stored entity
func (c *Client) Toggle(ctx context.Context, id string) (*models.IngestionPipeline, error) {
	var pipeline models.IngestionPipeline
	if err := c.api.Post(ctx, fmt.Sprintf("%s/toggleIngestion/%s", basePath, id), nil, &pipeline); err != nil {
		return nil, err
	}
	return &pipeline, nil
}

package catalog_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/metacat/cli/internal/api"
	"github.com/metacat/cli/internal/catalog"
	"github.com/metacat/cli/internal/testutil"
)

func newTestClient(server string) *catalog.Client {
	return catalog.NewClient(api.NewClient(server, "test-token"))
}

func TestList(t *testing.T) {
	t.Parallel()

	t.Run("requests run histories and passes filters", func(t *testing.T) {
		t.Parallel()

		server := testutil.MockHTTPServerWithHandler(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/v1/services/ingestionPipelines" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			q := r.URL.Query()
			if q.Get("fields") != "pipelineStatuses" {
				t.Errorf("expected pipelineStatuses fields param, got %q", q.Get("fields"))
			}
			if q.Get("service") != "kafka-prod" {
				t.Errorf("expected service filter, got %q", q.Get("service"))
			}
			if q.Get("limit") != "10" {
				t.Errorf("expected limit param, got %q", q.Get("limit"))
			}
			w.Write([]byte(`{"data":[{"id":"1","name":"kafka_metadata"}],"paging":{"after":"xyz","total":12}}`))
		})
		defer server.Close()

		result, err := newTestClient(server.URL).List(context.Background(), catalog.ListOptions{
			Service: "kafka-prod",
			Limit:   10,
		})

		testutil.AssertNoError(t, err)
		if len(result.Data) != 1 || result.Data[0].Name != "kafka_metadata" {
			t.Errorf("unexpected result data %v", result.Data)
		}
		if result.Paging.After != "xyz" || result.Paging.Total != 12 {
			t.Errorf("unexpected paging %+v", result.Paging)
		}
	})

	t.Run("forwards the page cursor", func(t *testing.T) {
		t.Parallel()

		server := testutil.MockHTTPServerWithHandler(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("after") != "cursor123" {
				t.Errorf("expected after cursor, got %q", r.URL.Query().Get("after"))
			}
			w.Write([]byte(`{"data":[],"paging":{"total":0}}`))
		})
		defer server.Close()

		_, err := newTestClient(server.URL).List(context.Background(), catalog.ListOptions{After: "cursor123"})
		testutil.AssertNoError(t, err)
	})
}

func TestTrigger(t *testing.T) {
	t.Parallel()

	t.Run("posts to the trigger endpoint", func(t *testing.T) {
		t.Parallel()

		server := testutil.MockHTTPServerWithHandler(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("expected POST, got %s", r.Method)
			}
			if r.URL.Path != "/api/v1/services/ingestionPipelines/trigger/abc" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			w.WriteHeader(http.StatusOK)
		})
		defer server.Close()

		err := newTestClient(server.URL).Trigger(context.Background(), "abc")
		testutil.AssertNoError(t, err)
	})

	t.Run("maps backend failures to an error", func(t *testing.T) {
		t.Parallel()

		server := testutil.MockHTTPServerWithHandler(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"pipeline not found"}`))
		})
		defer server.Close()

		err := newTestClient(server.URL).Trigger(context.Background(), "missing")

		testutil.AssertErrorContains(t, err, "pipeline not found")

		var apiErr *api.ErrorResponse
		if !errors.As(err, &apiErr) || !apiErr.IsNotFound() {
			t.Errorf("expected a not-found error response, got %v", err)
		}
	})
}

func TestDelete(t *testing.T) {
	t.Parallel()

	server := testutil.MockHTTPServerWithHandler(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("expected DELETE, got %s", r.Method)
		}
		if r.URL.Query().Get("hardDelete") != "true" {
			t.Error("expected a hard delete")
		}
		w.WriteHeader(http.StatusOK)
	})
	defer server.Close()

	err := newTestClient(server.URL).Delete(context.Background(), "abc")
	testutil.AssertNoError(t, err)
}

func TestCreate(t *testing.T) {
	t.Parallel()

	server := testutil.MockHTTPServerWithHandler(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}

		var payload map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatal(err)
		}
		if payload["name"] != "kafka-prod_metadata" {
			t.Errorf("unexpected payload name %v", payload["name"])
		}

		w.Write([]byte(`{"id":"new-id","name":"kafka-prod_metadata"}`))
	})
	defer server.Close()

	created, err := newTestClient(server.URL).Create(context.Background(), catalog.CreatePipeline{
		Name:         "kafka-prod_metadata",
		PipelineType: "metadata",
		Service:      "kafka-prod",
	})

	testutil.AssertNoError(t, err)
	if created.ID != "new-id" {
		t.Errorf("unexpected id %q", created.ID)
	}
}

func TestGetWithRuns(t *testing.T) {
	t.Parallel()

	server := testutil.MockHTTPServerWithHandler(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/services/ingestionPipelines/abc":
			w.Write([]byte(`{"id":"abc","name":"kafka_metadata"}`))
		case "/api/v1/services/ingestionPipelines/abc/pipelineStatus":
			w.Write([]byte(`{"data":[{"runId":"r1","state":"success"}]}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})
	defer server.Close()

	pipeline, runs, err := newTestClient(server.URL).GetWithRuns(context.Background(), "abc")

	testutil.AssertNoError(t, err)
	if pipeline.Name != "kafka_metadata" {
		t.Errorf("unexpected pipeline %+v", pipeline)
	}
	if len(runs) != 1 || runs[0].RunID != "r1" {
		t.Errorf("unexpected runs %v", runs)
	}
}

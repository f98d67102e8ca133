package pipeline_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/metacat/cli/internal/testutil"
	pipelineCmd "github.com/metacat/cli/pkg/cmd/pipeline"
)

func TestCmdPipelineList(t *testing.T) {
	t.Parallel()

	t.Run("renders the fetched pipelines", func(t *testing.T) {
		t.Parallel()

		server := testutil.MockHTTPServer(`{
			"data": [
				{"id": "1", "name": "kafka_metadata", "displayName": "Kafka Metadata", "pipelineType": "metadata"}
			],
			"paging": {"total": 1}
		}`)
		defer server.Close()

		f := testutil.CreateFactory(t, server.URL, "kafka-prod", nil)
		cmd := pipelineCmd.NewCmdPipelineList(f)

		var b bytes.Buffer
		cmd.SetOut(&b)
		cmd.SetArgs([]string{"-o", "json"})

		if err := cmd.Execute(); err != nil {
			t.Fatal(err)
		}

		if !strings.Contains(b.String(), "kafka_metadata") {
			t.Errorf("expected pipeline in output, got %q", b.String())
		}
	})

	t.Run("prints a friendly message when the service has no pipelines", func(t *testing.T) {
		t.Parallel()

		server := testutil.MockHTTPServer(`{"data": [], "paging": {"total": 0}}`)
		defer server.Close()

		f := testutil.CreateFactory(t, server.URL, "kafka-prod", nil)
		cmd := pipelineCmd.NewCmdPipelineList(f)

		var b bytes.Buffer
		cmd.SetOut(&b)

		if err := cmd.Execute(); err != nil {
			t.Fatal(err)
		}

		if !strings.Contains(b.String(), "No ingestion pipelines found for service kafka-prod") {
			t.Errorf("unexpected output %q", b.String())
		}
	})

	t.Run("search query filters the output", func(t *testing.T) {
		t.Parallel()

		server := testutil.MockHTTPServer(`{
			"data": [
				{"id": "1", "name": "kafka_metadata", "pipelineType": "metadata"},
				{"id": "2", "name": "kafka_usage", "pipelineType": "usage"}
			],
			"paging": {"total": 2}
		}`)
		defer server.Close()

		f := testutil.CreateFactory(t, server.URL, "kafka-prod", nil)
		cmd := pipelineCmd.NewCmdPipelineList(f)

		var b bytes.Buffer
		cmd.SetOut(&b)
		cmd.SetArgs([]string{"--query", "usage", "-o", "json"})

		if err := cmd.Execute(); err != nil {
			t.Fatal(err)
		}

		if strings.Contains(b.String(), "kafka_metadata") {
			t.Errorf("filtered pipeline leaked into output: %q", b.String())
		}
		if !strings.Contains(b.String(), "kafka_usage") {
			t.Errorf("expected kafka_usage in output, got %q", b.String())
		}
	})

	t.Run("no match message names the query", func(t *testing.T) {
		t.Parallel()

		server := testutil.MockHTTPServer(`{
			"data": [{"id": "1", "name": "kafka_metadata", "pipelineType": "metadata"}],
			"paging": {"total": 1}
		}`)
		defer server.Close()

		f := testutil.CreateFactory(t, server.URL, "kafka-prod", nil)
		cmd := pipelineCmd.NewCmdPipelineList(f)

		var b bytes.Buffer
		cmd.SetOut(&b)
		cmd.SetArgs([]string{"--query", "nomatch"})

		if err := cmd.Execute(); err != nil {
			t.Fatal(err)
		}

		if !strings.Contains(b.String(), `No pipelines match "nomatch"`) {
			t.Errorf("unexpected output %q", b.String())
		}
	})

	t.Run("errors when no service is selected", func(t *testing.T) {
		t.Parallel()

		server := testutil.MockHTTPServer(`{"data": [], "paging": {"total": 0}}`)
		defer server.Close()

		f := testutil.CreateFactory(t, server.URL, "", nil)
		cmd := pipelineCmd.NewCmdPipelineList(f)
		cmd.SetOut(new(bytes.Buffer))
		cmd.SetErr(new(bytes.Buffer))

		err := cmd.Execute()
		testutil.AssertErrorContains(t, err, "no service selected")
	})
}

func TestCmdPipelineView(t *testing.T) {
	t.Parallel()

	t.Run("renders pipeline details", func(t *testing.T) {
		t.Parallel()

		f := testutil.CreateFactory(t, viewServer(t).URL, "kafka-prod", nil)
		cmd := pipelineCmd.NewCmdPipelineView(f)

		var b bytes.Buffer
		cmd.SetOut(&b)
		cmd.SetArgs([]string{"kafka_metadata"})

		if err := cmd.Execute(); err != nil {
			t.Fatal(err)
		}

		for _, want := range []string{"Kafka Metadata", "kafka_metadata"} {
			if !strings.Contains(b.String(), want) {
				t.Errorf("expected %q in output, got %q", want, b.String())
			}
		}
	})

	t.Run("reports an unknown pipeline", func(t *testing.T) {
		t.Parallel()

		f := testutil.CreateFactory(t, viewServer(t).URL, "kafka-prod", nil)
		cmd := pipelineCmd.NewCmdPipelineView(f)
		cmd.SetOut(new(bytes.Buffer))
		cmd.SetErr(new(bytes.Buffer))
		cmd.SetArgs([]string{"missing"})

		err := cmd.Execute()
		testutil.AssertErrorContains(t, err, `no pipeline "missing"`)
	})
}

func viewServer(t *testing.T) *httptest.Server {
	t.Helper()

	server := testutil.MockHTTPServerWithHandler(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/services/ingestionPipelines":
			w.Write([]byte(`{"data":[{"id":"1","name":"kafka_metadata","displayName":"Kafka Metadata","pipelineType":"metadata"}],"paging":{"total":1}}`))
		case "/api/v1/services/ingestionPipelines/1":
			w.Write([]byte(`{"id":"1","name":"kafka_metadata","displayName":"Kafka Metadata","pipelineType":"metadata"}`))
		case "/api/v1/services/ingestionPipelines/1/pipelineStatus":
			w.Write([]byte(`{"data":[{"runId":"r1","state":"success","startDate":1714564800000,"endDate":1714565400000}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	t.Cleanup(server.Close)
	return server
}

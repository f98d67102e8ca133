package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestServiceConnectionUnmarshal(t *testing.T) {
	t.Parallel()

	t.Run("decodes a known connector into its concrete shape", func(t *testing.T) {
		t.Parallel()

		payload := `{"config": {
			"type": "Nifi",
			"hostPort": "http://nifi:8080",
			"username": "admin",
			"supportsMetadataExtraction": true
		}}`

		var sc ServiceConnection
		if err := json.Unmarshal([]byte(payload), &sc); err != nil {
			t.Fatal(err)
		}

		conn, ok := sc.Config.(NifiConnection)
		if !ok {
			t.Fatalf("expected NifiConnection, got %T", sc.Config)
		}
		if conn.HostPort != "http://nifi:8080" {
			t.Errorf("unexpected host %q", conn.HostPort)
		}
		if !sc.ConnectionCapabilities().SupportsMetadataExtraction {
			t.Error("expected metadata extraction capability")
		}
	})

	t.Run("unknown connectors fall back to the generic shape", func(t *testing.T) {
		t.Parallel()

		payload := `{"config": {
			"type": "Postgres",
			"hostPort": "db:5432",
			"supportsMetadataExtraction": true,
			"supportsProfiler": true
		}}`

		var sc ServiceConnection
		if err := json.Unmarshal([]byte(payload), &sc); err != nil {
			t.Fatal(err)
		}

		conn, ok := sc.Config.(GenericConnection)
		if !ok {
			t.Fatalf("expected GenericConnection, got %T", sc.Config)
		}
		if conn.ConnectorType() != "Postgres" {
			t.Errorf("unexpected connector type %q", conn.ConnectorType())
		}

		caps := sc.ConnectionCapabilities()
		if !caps.SupportsMetadataExtraction || !caps.SupportsProfiler {
			t.Errorf("unexpected capabilities %+v", caps)
		}
	})

	t.Run("generic connectors round-trip their raw payload", func(t *testing.T) {
		t.Parallel()

		payload := `{"config":{"type":"Postgres","customOption":"kept"}}`

		var sc ServiceConnection
		if err := json.Unmarshal([]byte(payload), &sc); err != nil {
			t.Fatal(err)
		}

		out, err := json.Marshal(sc)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(out), "customOption") {
			t.Errorf("raw payload was lost: %s", out)
		}
	})

	t.Run("missing config leaves the connection empty", func(t *testing.T) {
		t.Parallel()

		var sc ServiceConnection
		if err := json.Unmarshal([]byte(`{}`), &sc); err != nil {
			t.Fatal(err)
		}

		if sc.Config != nil {
			t.Errorf("expected no config, got %T", sc.Config)
		}
		if sc.ConnectionCapabilities() != (Capabilities{}) {
			t.Error("expected zero capabilities for a missing config")
		}
	})
}

func TestDeclaredTypes(t *testing.T) {
	t.Parallel()

	caps := Capabilities{
		SupportsMetadataExtraction: true,
		SupportsProfiler:           true,
	}

	types := caps.DeclaredTypes()

	if len(types) != 2 || types[0] != TypeMetadata || types[1] != TypeProfiler {
		t.Errorf("unexpected declared types %v", types)
	}
}

func TestTimestampJSON(t *testing.T) {
	t.Parallel()

	var status PipelineStatus
	if err := json.Unmarshal([]byte(`{"state":"success","startDate":1714564800000}`), &status); err != nil {
		t.Fatal(err)
	}

	if status.StartDate == nil {
		t.Fatal("expected a start date")
	}
	if got := status.StartDate.UTC().Format("2006-01-02"); got != "2024-05-01" {
		t.Errorf("unexpected start date %s", got)
	}

	out, err := json.Marshal(status)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "1714564800000") {
		t.Errorf("expected epoch millis on the wire, got %s", out)
	}
}

package models

import "encoding/json"

// Capabilities is the fixed-shape projection of a connector's declared
// extraction support. Every connector config exposes one regardless of its
// own shape.
type Capabilities struct {
	SupportsMetadataExtraction bool `json:"supportsMetadataExtraction,omitempty" yaml:"supportsMetadataExtraction,omitempty"`
	SupportsUsageExtraction    bool `json:"supportsUsageExtraction,omitempty" yaml:"supportsUsageExtraction,omitempty"`
	SupportsLineageExtraction  bool `json:"supportsLineageExtraction,omitempty" yaml:"supportsLineageExtraction,omitempty"`
	SupportsProfiler           bool `json:"supportsProfiler,omitempty" yaml:"supportsProfiler,omitempty"`
}

// DeclaredTypes returns the pipeline types the capability flags allow, in
// declaration order.
func (c Capabilities) DeclaredTypes() []PipelineType {
	var types []PipelineType
	if c.SupportsMetadataExtraction {
		types = append(types, TypeMetadata)
	}
	if c.SupportsUsageExtraction {
		types = append(types, TypeUsage)
	}
	if c.SupportsLineageExtraction {
		types = append(types, TypeLineage)
	}
	if c.SupportsProfiler {
		types = append(types, TypeProfiler)
	}
	return types
}

// ConnectorConfig is the common surface of connector specific configuration.
// The concrete shape varies per connector, so the union is keyed by the
// connector type tag on the wire.
type ConnectorConfig interface {
	ConnectorType() string
	Capabilities() Capabilities
}

// NifiConnection configures the Nifi connector
type NifiConnection struct {
	Type     string `json:"type" yaml:"type"`
	HostPort string `json:"hostPort,omitempty" yaml:"hostPort,omitempty"`
	Username string `json:"username,omitempty" yaml:"username,omitempty"`
	Password string `json:"password,omitempty" yaml:"password,omitempty"`

	Capability Capabilities `json:"-" yaml:"-"`
}

func (c NifiConnection) ConnectorType() string { return "Nifi" }
func (c NifiConnection) Capabilities() Capabilities { return c.Capability }

// GlueConnection configures the AWS Glue connector
type GlueConnection struct {
	Type        string `json:"type" yaml:"type"`
	AwsRegion   string `json:"awsRegion,omitempty" yaml:"awsRegion,omitempty"`
	Endpoint    string `json:"endPointURL,omitempty" yaml:"endPointURL,omitempty"`
	StorageName string `json:"storageServiceName,omitempty" yaml:"storageServiceName,omitempty"`

	Capability Capabilities `json:"-" yaml:"-"`
}

func (c GlueConnection) ConnectorType() string { return "Glue" }
func (c GlueConnection) Capabilities() Capabilities { return c.Capability }

// GenericConnection holds configuration for connectors the CLI has no
// concrete shape for. The raw payload is preserved so updates round-trip.
type GenericConnection struct {
	Type       string
	Capability Capabilities
	Raw        json.RawMessage
}

func (c GenericConnection) ConnectorType() string { return c.Type }
func (c GenericConnection) Capabilities() Capabilities { return c.Capability }

func (c GenericConnection) MarshalJSON() ([]byte, error) {
	if len(c.Raw) > 0 {
		return c.Raw, nil
	}
	return json.Marshal(struct {
		Type string `json:"type,omitempty"`
		Capabilities
	}{c.Type, c.Capability})
}

// ServiceConnection wraps the connector tagged union for (un)marshalling
type ServiceConnection struct {
	Config ConnectorConfig `json:"-" yaml:"-"`
}

// ConnectionCapabilities is a nil-safe accessor for the capability projection
func (sc ServiceConnection) ConnectionCapabilities() Capabilities {
	if sc.Config == nil {
		return Capabilities{}
	}
	return sc.Config.Capabilities()
}

func (sc ServiceConnection) MarshalJSON() ([]byte, error) {
	if sc.Config == nil {
		return []byte(`{}`), nil
	}
	config, err := json.Marshal(sc.Config)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Config json.RawMessage `json:"config"`
	}{config})
}

func (sc *ServiceConnection) UnmarshalJSON(data []byte) error {
	var envelope struct {
		Config json.RawMessage `json:"config"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}
	if len(envelope.Config) == 0 {
		return nil
	}

	// peek at the tag and capability flags common to every connector shape
	var common struct {
		Type string `json:"type"`
		Capabilities
	}
	if err := json.Unmarshal(envelope.Config, &common); err != nil {
		return err
	}

	switch common.Type {
	case "Nifi":
		var conn NifiConnection
		if err := json.Unmarshal(envelope.Config, &conn); err != nil {
			return err
		}
		conn.Capability = common.Capabilities
		sc.Config = conn
	case "Glue":
		var conn GlueConnection
		if err := json.Unmarshal(envelope.Config, &conn); err != nil {
			return err
		}
		conn.Capability = common.Capabilities
		sc.Config = conn
	default:
		sc.Config = GenericConnection{
			Type:       common.Type,
			Capability: common.Capabilities,
			Raw:        append(json.RawMessage(nil), envelope.Config...),
		}
	}
	return nil
}

package output

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

type testValue struct {
	Name string `json:"name" yaml:"name"`
}

func (v testValue) TextOutput() string {
	return "name: " + v.Name
}

func TestWrite(t *testing.T) {
	t.Parallel()

	v := testValue{Name: "kafka_metadata"}

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		var b strings.Builder
		if err := Write(&b, v, FormatJSON); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(b.String(), `"name": "kafka_metadata"`) {
			t.Errorf("unexpected output %q", b.String())
		}
	})

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()

		var b strings.Builder
		if err := Write(&b, v, FormatYAML); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(b.String(), "name: kafka_metadata") {
			t.Errorf("unexpected output %q", b.String())
		}
	})

	t.Run("text uses the Formatter", func(t *testing.T) {
		t.Parallel()

		var b strings.Builder
		if err := Write(&b, v, FormatText); err != nil {
			t.Fatal(err)
		}
		if b.String() != "name: kafka_metadata\n" {
			t.Errorf("unexpected output %q", b.String())
		}
	})

	t.Run("unknown format errors", func(t *testing.T) {
		t.Parallel()

		var b strings.Builder
		if err := Write(&b, v, Format("xml")); err == nil {
			t.Error("expected an error")
		}
	})
}

func TestGetFormat(t *testing.T) {
	t.Parallel()

	t.Run("defaults to text", func(t *testing.T) {
		t.Parallel()

		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		AddFlags(flags)

		format, err := GetFormat(flags)
		if err != nil {
			t.Fatal(err)
		}
		if format != FormatText {
			t.Errorf("unexpected default format %q", format)
		}
	})

	t.Run("rejects unknown formats", func(t *testing.T) {
		t.Parallel()

		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		AddFlags(flags)
		if err := flags.Set("output", "xml"); err != nil {
			t.Fatal(err)
		}

		if _, err := GetFormat(flags); err == nil {
			t.Error("expected an error")
		}
	})
}

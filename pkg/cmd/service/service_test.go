package service_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/metacat/cli/internal/testutil"
	serviceCmd "github.com/metacat/cli/pkg/cmd/service"
)

func TestCmdService(t *testing.T) {
	t.Parallel()

	t.Run("selects a service", func(t *testing.T) {
		t.Parallel()

		f := testutil.CreateFactory(t, "https://catalog.example.com", "", nil)
		cmd := serviceCmd.NewCmdService(f)
		cmd.SetOut(new(bytes.Buffer))
		cmd.SetArgs([]string{"kafka-prod"})

		if err := cmd.Execute(); err != nil {
			t.Fatal(err)
		}

		if got := f.Config.DefaultService(); got != "kafka-prod" {
			t.Errorf("unexpected selected service %q", got)
		}
	})

	t.Run("errors when nothing is selected and no argument given", func(t *testing.T) {
		t.Parallel()

		f := testutil.CreateFactory(t, "https://catalog.example.com", "", nil)
		cmd := serviceCmd.NewCmdService(f)
		cmd.SetOut(new(bytes.Buffer))
		cmd.SetErr(new(bytes.Buffer))

		err := cmd.Execute()
		testutil.AssertErrorContains(t, err, "no default service selected")
	})

	t.Run("shows the current selection", func(t *testing.T) {
		t.Parallel()

		f := testutil.CreateFactory(t, "https://catalog.example.com", "kafka-prod", nil)
		cmd := serviceCmd.NewCmdService(f)
		cmd.SetOut(new(bytes.Buffer))

		if err := cmd.Execute(); err != nil {
			t.Fatal(err)
		}
	})
}

func TestCmdServiceIdempotent(t *testing.T) {
	t.Parallel()

	f := testutil.CreateFactory(t, "https://catalog.example.com", "kafka-prod", nil)
	cmd := serviceCmd.NewCmdService(f)

	var b bytes.Buffer
	cmd.SetOut(&b)
	cmd.SetArgs([]string{"kafka-prod"})

	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}

	if got := f.Config.DefaultService(); !strings.Contains(got, "kafka-prod") {
		t.Errorf("selection lost: %q", got)
	}
}

package validation

import (
	"testing"

	"github.com/metacat/cli/internal/config"
	"github.com/spf13/afero"
)

func TestNonEmpty(t *testing.T) {
	t.Parallel()

	if err := NonEmpty("value"); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if err := NonEmpty("   "); err == nil {
		t.Error("expected an error for blank input")
	}
}

func TestSlug(t *testing.T) {
	t.Parallel()

	for _, valid := range []string{"kafka-prod", "glue_metadata", "svc1"} {
		if err := Slug(valid); err != nil {
			t.Errorf("expected %q to be valid, got %v", valid, err)
		}
	}
	for _, invalid := range []string{"Kafka", "svc prod", "-leading", ""} {
		if err := Slug(invalid); err == nil {
			t.Errorf("expected %q to be rejected", invalid)
		}
	}
}

func TestCronExpression(t *testing.T) {
	t.Parallel()

	t.Run("empty means on demand and is allowed", func(t *testing.T) {
		t.Parallel()

		if err := CronExpression(""); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("accepts five-field expressions", func(t *testing.T) {
		t.Parallel()

		if err := CronExpression("0 2 * * *"); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("rejects garbage", func(t *testing.T) {
		t.Parallel()

		if err := CronExpression("every tuesday"); err == nil {
			t.Error("expected an error")
		}
	})
}

func TestCheckValidConfiguration(t *testing.T) {
	t.Parallel()

	t.Run("rejects a missing server", func(t *testing.T) {
		t.Parallel()

		conf := config.New(afero.NewMemMapFs(), nil)

		err := CheckValidConfiguration(conf)
		if err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("accepts a complete configuration", func(t *testing.T) {
		t.Parallel()

		conf := config.New(afero.NewMemMapFs(), nil)
		if err := conf.SetServer("https://catalog.example.com"); err != nil {
			t.Fatal(err)
		}
		if err := conf.SetToken("token"); err != nil {
			t.Fatal(err)
		}

		if err := CheckValidConfiguration(conf); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})
}

// Package validation holds field validators shared by forms and commands
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/metacat/cli/internal/config"
	cronparser "github.com/robfig/cron/v3"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:[-_][a-z0-9]+)*$`)

// NonEmpty rejects blank values
func NonEmpty(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("value cannot be empty")
	}
	return nil
}

// Slug accepts lowercase names made of letters, numbers, hyphens and underscores
func Slug(value string) error {
	if !slugPattern.MatchString(value) {
		return fmt.Errorf("must be lowercase letters, numbers, hyphens or underscores")
	}
	return nil
}

// CronExpression accepts an empty value (on-demand pipelines) or a standard
// five-field cron expression
func CronExpression(value string) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	if _, err := cronparser.ParseStandard(value); err != nil {
		return fmt.Errorf("invalid cron expression: %w", err)
	}
	return nil
}

// CheckValidConfiguration ensures the server and token are configured before
// a command talks to the catalog
func CheckValidConfiguration(conf *config.Config) error {
	if conf.ServerURL() == "" {
		return fmt.Errorf("no catalog server configured. Run 'mcat configure' first")
	}
	if conf.APIToken() == "" {
		return fmt.Errorf("no API token configured. Run 'mcat configure' first")
	}
	return nil
}

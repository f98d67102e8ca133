// Package testutil provides reusable test helpers for the CLI
package testutil

import (
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/metacat/cli/internal/api"
	"github.com/metacat/cli/internal/catalog"
	"github.com/metacat/cli/internal/config"
	"github.com/metacat/cli/pkg/cmd/factory"
	"github.com/spf13/afero"
)

// CreateFactory creates a Factory pointed at a test server with an in-memory
// configuration
func CreateFactory(t *testing.T, serverURL, service string, repo *git.Repository) *factory.Factory {
	t.Helper()

	conf := config.New(afero.NewMemMapFs(), nil)
	if err := conf.SetServer(serverURL); err != nil {
		t.Errorf("Error setting server: %s", err)
	}
	if err := conf.SetToken("test-token"); err != nil {
		t.Errorf("Error setting token: %s", err)
	}
	if service != "" {
		if err := conf.SelectService(service, false); err != nil {
			t.Errorf("Error selecting service: %s", err)
		}
	}

	return &factory.Factory{
		Config:        conf,
		RestAPIClient: catalog.NewClient(api.NewClient(serverURL, "test-token")),
		GitRepository: repo,
	}
}

// GitRepository creates a test git repository
func GitRepository() *git.Repository {
	repo, _ := git.PlainOpenWithOptions(".", &git.PlainOpenOptions{DetectDotGit: true, EnableDotGitCommonDir: true})
	return repo
}

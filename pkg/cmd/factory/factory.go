package factory

import (
	"fmt"
	"net/http"
	"runtime"

	git "github.com/go-git/go-git/v5"
	"github.com/metacat/cli/internal/api"
	"github.com/metacat/cli/internal/catalog"
	"github.com/metacat/cli/internal/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Factory carries the shared dependencies commands need: configuration, the
// catalog API client and the resolved global flags.
type Factory struct {
	Config        *config.Config
	GitRepository *git.Repository
	HttpClient    *http.Client
	RestAPIClient *catalog.Client
	Version       string

	// global flags, resolved by SetGlobalFlags before a command runs
	SkipConfirm bool
	NoInput     bool
	Quiet       bool
}

func New(version string) *Factory {
	repo := openRepository()
	conf := config.New(afero.NewOsFs(), repo)

	apiClient := api.NewClient(
		conf.ServerURL(),
		conf.APIToken(),
		api.WithUserAgent(userAgent(version)),
	)

	return &Factory{
		Config:        conf,
		GitRepository: repo,
		HttpClient:    http.DefaultClient,
		RestAPIClient: catalog.NewClient(apiClient),
		Version:       version,
	}
}

// SetGlobalFlags resolves the persistent flags defined on the root command.
// Commands that prompt must call this in PersistentPreRunE so --yes and
// --no-input are respected.
func (f *Factory) SetGlobalFlags(cmd *cobra.Command) {
	if yes, err := cmd.Flags().GetBool("yes"); err == nil {
		f.SkipConfirm = yes
	}
	if noInput, err := cmd.Flags().GetBool("no-input"); err == nil {
		f.NoInput = noInput
		if noInput {
			f.SkipConfirm = true
		}
	}
	if quiet, err := cmd.Flags().GetBool("quiet"); err == nil {
		f.Quiet = quiet
	}
}

func userAgent(version string) string {
	return fmt.Sprintf("Metacat CLI/%s (%s/%s)", version, runtime.GOOS, runtime.GOARCH)
}

// openRepository finds an enclosing git repository, if any. Not being in one
// is fine, repo-local config just doesn't apply.
func openRepository() *git.Repository {
	repo, err := git.PlainOpenWithOptions(".", &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil
	}
	return repo
}

package docs

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/metacat/cli/internal/algolia"
	"github.com/metacat/cli/pkg/cmd/factory"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

func NewCmdDocs(f *factory.Factory) *cobra.Command {
	var web bool

	cmd := cobra.Command{
		DisableFlagsInUseLine: true,
		Use:                   "docs <query>",
		Args:                  cobra.MinimumNArgs(1),
		Short:                 "Search the documentation",
		Long: heredoc.Doc(`
			Search the hosted documentation and print matching page URLs.
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			results, err := algolia.Search(query)
			if err != nil {
				return err
			}
			if len(results) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No documentation found for %q\n", query)
				return nil
			}

			if web {
				return browser.OpenURL(results[0])
			}

			for _, url := range results {
				fmt.Fprintln(cmd.OutOrStdout(), url)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&web, "web", "w", false, "Open the best match in a web browser.")

	return &cmd
}

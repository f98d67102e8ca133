package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

func Format(version string) string {
	return fmt.Sprintf("mcat version %s\n", version)
}

func NewCmdVersion(version string) *cobra.Command {
	return &cobra.Command{
		Use:    "version",
		Hidden: true,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), Format(version))
		},
	}
}

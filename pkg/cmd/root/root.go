package root

import (
	"github.com/MakeNowJust/heredoc"
	configureCmd "github.com/metacat/cli/pkg/cmd/configure"
	docsCmd "github.com/metacat/cli/pkg/cmd/docs"
	"github.com/metacat/cli/pkg/cmd/factory"
	pipelineCmd "github.com/metacat/cli/pkg/cmd/pipeline"
	serviceCmd "github.com/metacat/cli/pkg/cmd/service"
	versionCmd "github.com/metacat/cli/pkg/cmd/version"
	"github.com/spf13/cobra"
)

func NewCmdRoot(f *factory.Factory) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "mcat <command> <subcommand> [flags]",
		Short: "Metacat CLI",
		Long:  "Work with data catalog ingestion pipelines from the command line.",
		Example: heredoc.Doc(`
			$ mcat pipeline list
			$ mcat pipeline manage
		`),
		Annotations: map[string]string{
			"versionInfo": versionCmd.Format(f.Version),
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().Bool("yes", false, "Skip confirmation prompts")
	cmd.PersistentFlags().Bool("no-input", false, "Never prompt for input; fail instead")
	cmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress progress output")

	cmd.AddCommand(versionCmd.NewCmdVersion(f.Version))
	cmd.AddCommand(configureCmd.NewCmdConfigure(f))
	cmd.AddCommand(pipelineCmd.NewCmdPipeline(f))
	cmd.AddCommand(serviceCmd.NewCmdService(f))
	cmd.AddCommand(docsCmd.NewCmdDocs(f))

	return cmd, nil
}

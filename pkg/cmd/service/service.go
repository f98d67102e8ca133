package service

import (
	"fmt"

	"github.com/metacat/cli/internal/config"
	"github.com/metacat/cli/pkg/cmd/factory"
	"github.com/spf13/cobra"
)

func NewCmdService(f *factory.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:                   "service <name>",
		Args:                  cobra.MaximumNArgs(1),
		DisableFlagsInUseLine: true,
		Short:                 "Select the default service",
		Long:                  "Select the service whose ingestion pipelines commands operate on by default.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return showRun(f.Config)
			}
			return useRun(args[0], f.Config, f.GitRepository != nil)
		},
	}

	return cmd
}

func showRun(conf *config.Config) error {
	service := conf.DefaultService()
	if service == "" {
		return fmt.Errorf("no default service selected. Run `mcat service <name>` to select one.")
	}

	fmt.Printf("Using service `%s`\n", service)
	return nil
}

func useRun(selected string, conf *config.Config, inGitRepo bool) error {
	// if already selected, do nothing
	if conf.DefaultService() == selected {
		fmt.Printf("Using service `%s`\n", selected)
		return nil
	}

	if err := conf.SelectService(selected, inGitRepo); err != nil {
		return err
	}

	fmt.Printf("Using service `%s`\n", selected)
	return nil
}

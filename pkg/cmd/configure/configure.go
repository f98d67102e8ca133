package configure

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/metacat/cli/internal/validation"
	"github.com/metacat/cli/pkg/cmd/factory"
	"github.com/spf13/cobra"
)

func NewCmdConfigure(f *factory.Factory) *cobra.Command {
	var (
		force  bool
		server string
		token  string
	)

	cmd := &cobra.Command{
		Use:     "configure",
		Aliases: []string{"config"},
		Args:    cobra.NoArgs,
		Short:   "Configure the catalog server and API token",
		RunE: func(cmd *cobra.Command, args []string) error {
			// if a token already exists and --force is not used
			if !force && f.Config.APIToken() != "" {
				return errors.New("API token already configured. You must use --force.")
			}

			// If flags are provided, use them directly
			if server != "" && token != "" {
				return configureWithCredentials(f, server, token)
			}

			f.SetGlobalFlags(cmd)
			if f.NoInput {
				return errors.New("--server and --token are required with --no-input")
			}

			return configureRun(f)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Force setting a new token")
	cmd.Flags().StringVar(&server, "server", "", "Catalog server base URL")
	cmd.Flags().StringVar(&token, "token", "", "API token")

	return cmd
}

func configureWithCredentials(f *factory.Factory, server, token string) error {
	if err := f.Config.SetServer(server); err != nil {
		return err
	}
	if err := f.Config.SetToken(token); err != nil {
		return err
	}

	fmt.Printf("Configured catalog server %s\n", server)
	return nil
}

func configureRun(f *factory.Factory) error {
	server := f.Config.ServerURL()
	var token string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Catalog server URL: ").Value(&server).Validate(validation.NonEmpty).Inline(true).Prompt(""),
		),
		huh.NewGroup(
			huh.NewInput().Title("API Token: ").Value(&token).EchoMode(huh.EchoModePassword).Validate(validation.NonEmpty).Inline(true).Prompt(""),
		),
	).WithTheme(huh.ThemeBase16())
	if err := form.Run(); err != nil {
		return err
	}

	return configureWithCredentials(f, server, token)
}

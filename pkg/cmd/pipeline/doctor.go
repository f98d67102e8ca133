package pipeline

import (
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/metacat/cli/internal/ai"
	"github.com/metacat/cli/internal/io"
	"github.com/metacat/cli/internal/models"
	"github.com/metacat/cli/pkg/cmd/factory"
	"github.com/sashabaranov/go-openai"
	"github.com/spf13/cobra"
)

func NewCmdPipelineDoctor(f *factory.Factory) *cobra.Command {
	cmd := cobra.Command{
		DisableFlagsInUseLine: true,
		Use:                   "doctor <pipeline>",
		Args:                  cobra.ExactArgs(1),
		Short:                 "Diagnose failing pipeline runs",
		Long: heredoc.Doc(`
			Ask an AI assistant why a pipeline's recent runs failed.

			Requires an OpenAI token, set via METACAT_OPENAI_TOKEN or the
			openai_token config entry.
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			token := f.Config.OpenAIToken()
			if token == "" {
				return errors.New("no OpenAI token configured. Set METACAT_OPENAI_TOKEN to use this command.")
			}

			service, err := resolveService(f, cmd)
			if err != nil {
				return err
			}

			var found *models.IngestionPipeline
			var runs []models.PipelineStatus
			var summary string
			var doctorErr error
			io.SpinWhile(f.Quiet, "Diagnosing pipeline", func() {
				found, doctorErr = findPipeline(cmd.Context(), f.RestAPIClient, service, args[0])
				if doctorErr != nil {
					return
				}
				found, runs, doctorErr = f.RestAPIClient.GetWithRuns(cmd.Context(), found.ID)
				if doctorErr != nil {
					return
				}
				summary, doctorErr = ai.DiagnoseRuns(cmd.Context(), openai.NewClient(token), *found, runs)
			})
			if doctorErr != nil {
				return doctorErr
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", summary)
			return nil
		},
	}

	return &cmd
}

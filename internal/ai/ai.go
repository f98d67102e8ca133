// Package ai summarizes pipeline run failures using the OpenAI API.
package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/metacat/cli/internal/models"
	"github.com/metacat/cli/internal/pipeline"
	"github.com/sashabaranov/go-openai"
)

type ChatCompleter interface {
	CreateChatCompletion(context.Context, openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

const diagnosePrompt = `You are a data platform engineer helping debug metadata
ingestion pipelines. Given a pipeline's configuration and its recent run
history, explain the most likely cause of the failures and suggest concrete
next steps. Be brief and specific.`

// DiagnoseRuns asks the model to explain why a pipeline's recent runs failed
func DiagnoseRuns(ctx context.Context, completer ChatCompleter, p models.IngestionPipeline, runs []models.PipelineStatus) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: openai.GPT4o,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: diagnosePrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: describeFailure(p, runs),
			},
		},
	}

	resp, err := completer.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("received no response choices from open ai")
	}

	return resp.Choices[0].Message.Content, nil
}

func describeFailure(p models.IngestionPipeline, runs []models.PipelineStatus) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Pipeline: %s (type %s, service %s)\n", p.Name, p.PipelineType, p.Source.ServiceName)
	fmt.Fprintf(&b, "Connector: %s\n", p.Source.Type)
	fmt.Fprintf(&b, "Schedule: %s\n", pipeline.DescribeSchedule(p.AirflowConfig.ScheduleInterval))
	b.WriteString("Recent runs:\n")

	for _, run := range runs {
		fmt.Fprintf(&b, "  - %s\n", pipeline.DescribeRun(run))
	}

	return b.String()
}

package task

import (
	"context"

	"github.com/TirthDhandhukia30/ai-task-gateway/internal/provider"
)

const (
	defaultTemperature = 0.7
	defaultMaxTokens   = 500
)

type TextGeneratorResult struct {
	GeneratedText string         `json:"generatedText"`
	Model         string         `json:"model"`
	Usage         map[string]int `json:"usage"`
}

func (d *Dispatcher) generateText(ctx context.Context, req *Request) (*TextGeneratorResult, error) {
	userPrompt := templateField(req.Config, "prompt", req.Input)

	completion, err := d.client.Complete(ctx, &provider.Request{
		Messages: []provider.Message{
			{Role: provider.RoleUser, Content: userPrompt},
		},
		Temperature: floatField(req.Config, "temperature", defaultTemperature),
		MaxTokens:   intField(req.Config, "maxTokens", defaultMaxTokens),
	})
	if err != nil {
		return nil, err
	}

	return &TextGeneratorResult{
		GeneratedText: completion.Text,
		Model:         completion.Model,
		Usage:         completion.Usage,
	}, nil
}

package task

import (
	"context"

	"github.com/TirthDhandhukia30/ai-task-gateway/internal/provider"
)

// Fixed system instruction per analysis type. Anything else sends no system
// steering at all, only the user text.
var analysisInstructions = map[string]string{
	"sentiment": "Analyze the sentiment of the following text. Classify it as positive, negative, or neutral, include a confidence score between 0 and 1, and briefly explain your reasoning.",
	"keywords":  "Extract the most important keywords and key phrases from the following text. Respond with a JSON array of strings.",
	"summary":   "Summarize the following text in 2-3 sentences.",
}

type AnalyzerResult struct {
	AnalysisType string         `json:"analysisType"`
	Result       string         `json:"result"`
	Usage        map[string]int `json:"usage"`
}

func (d *Dispatcher) analyze(ctx context.Context, req *Request) (*AnalyzerResult, error) {
	text := templateField(req.Config, "text", req.Input)
	analysisType := stringField(req.Config, "analysisType")

	var messages []provider.Message
	if instruction := analysisInstructions[analysisType]; instruction != "" {
		messages = append(messages, provider.Message{Role: provider.RoleSystem, Content: instruction})
	}
	messages = append(messages, provider.Message{Role: provider.RoleUser, Content: text})

	completion, err := d.client.Complete(ctx, &provider.Request{
		Messages:    messages,
		Temperature: 0.3,
	})
	if err != nil {
		return nil, err
	}

	return &AnalyzerResult{
		AnalysisType: analysisType,
		Result:       completion.Text,
		Usage:        completion.Usage,
	}, nil
}

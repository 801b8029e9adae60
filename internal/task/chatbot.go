package task

import (
	"context"

	"github.com/TirthDhandhukia30/ai-task-gateway/internal/provider"
)

// Instruction line appended after the system prompt, blank-line separated.
// Unrecognized personalities append nothing.
var personalityInstructions = map[string]string{
	"professional": "Maintain a professional, formal tone at all times.",
	"friendly":     "Be warm, friendly, and conversational.",
	"concise":      "Keep your responses short and to the point.",
}

type ChatbotResult struct {
	Response    string         `json:"response"`
	Personality string         `json:"personality"`
	Usage       map[string]int `json:"usage"`
}

func (d *Dispatcher) chat(ctx context.Context, req *Request) (*ChatbotResult, error) {
	systemPrompt := templateField(req.Config, "systemPrompt", req.Input)
	userMessage := templateField(req.Config, "userMessage", req.Input)
	personality := stringField(req.Config, "personality")

	if line := personalityInstructions[personality]; line != "" {
		systemPrompt = systemPrompt + "\n\n" + line
	}

	var messages []provider.Message
	if systemPrompt != "" {
		messages = append(messages, provider.Message{Role: provider.RoleSystem, Content: systemPrompt})
	}
	messages = append(messages, provider.Message{Role: provider.RoleUser, Content: userMessage})

	completion, err := d.client.Complete(ctx, &provider.Request{
		Messages:    messages,
		Temperature: 0.7,
	})
	if err != nil {
		return nil, err
	}

	return &ChatbotResult{
		Response:    completion.Text,
		Personality: personality,
		Usage:       completion.Usage,
	}, nil
}

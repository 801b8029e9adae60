package task

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/TirthDhandhukia30/ai-task-gateway/internal/provider"
)

// ParseFailureNote marks an answer that could not be decoded as JSON. The
// request still succeeds; extractedData degrades to the raw answer text.
const ParseFailureNote = "could not parse as JSON, returning raw text"

type DataExtractorResult struct {
	ExtractedData any            `json:"extractedData"`
	Schema        string         `json:"schema"`
	Usage         map[string]int `json:"usage"`
	Note          string         `json:"note,omitempty"`
}

func (d *Dispatcher) extract(ctx context.Context, req *Request) (*DataExtractorResult, error) {
	text := templateField(req.Config, "text", req.Input)
	schema := templateField(req.Config, "schema", req.Input)

	instruction := fmt.Sprintf(
		"Extract structured data from the text provided by the user. Respond only with valid JSON matching this schema: %s. Do not include any explanation or text outside the JSON.",
		schema,
	)

	completion, err := d.client.Complete(ctx, &provider.Request{
		Messages: []provider.Message{
			{Role: provider.RoleSystem, Content: instruction},
			{Role: provider.RoleUser, Content: text},
		},
		Temperature: 0.1,
	})
	if err != nil {
		return nil, err
	}

	result := &DataExtractorResult{
		Schema: schema,
		Usage:  completion.Usage,
	}

	var parsed any
	if err := json.Unmarshal([]byte(completion.Text), &parsed); err != nil {
		result.ExtractedData = completion.Text
		result.Note = ParseFailureNote
		return result, nil
	}

	result.ExtractedData = parsed
	return result, nil
}

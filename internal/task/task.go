// Package task dispatches incoming requests to one of four prompt-building
// handlers and shapes the completion answer into a task-specific payload.
package task

import (
	"context"
	"fmt"

	"github.com/TirthDhandhukia30/ai-task-gateway/internal/provider"
)

type Type string

const (
	TypeTextGenerator Type = "textGenerator"
	TypeAnalyzer      Type = "analyzer"
	TypeChatbot       Type = "chatbot"
	TypeDataExtractor Type = "dataExtractor"
)

// Request is the inbound task envelope. Config fields vary per type; Input
// is arbitrary JSON made available to template placeholders.
type Request struct {
	Type   Type           `json:"type"`
	Config map[string]any `json:"config"`
	Input  any            `json:"input"`
}

// UnknownTypeError marks a request naming no known task type. It is a
// client error, not a server fault.
type UnknownTypeError struct {
	Type string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown task type: %s", e.Type)
}

type Dispatcher struct {
	client provider.Completer
}

func NewDispatcher(client provider.Completer) *Dispatcher {
	return &Dispatcher{client: client}
}

// Dispatch selects the handler for the request's type. Handler failures
// bubble up unmodified; there is no per-handler recovery.
func (d *Dispatcher) Dispatch(ctx context.Context, req *Request) (any, error) {
	switch req.Type {
	case TypeTextGenerator:
		return d.generateText(ctx, req)
	case TypeAnalyzer:
		return d.analyze(ctx, req)
	case TypeChatbot:
		return d.chat(ctx, req)
	case TypeDataExtractor:
		return d.extract(ctx, req)
	default:
		return nil, &UnknownTypeError{Type: string(req.Type)}
	}
}

package provider

import (
	"context"
)

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Request is a single chat-completion call. The model identifier lives in
// the client (Azure selects it by deployment), not on the request.
type Request struct {
	Messages    []Message
	Temperature float64
	MaxTokens   int // 0 means no cap
}

type Message struct {
	Role    string // "system" or "user"
	Content string
}

// Response carries the single completion choice plus the provider's usage
// statistics, passed through verbatim.
type Response struct {
	Text  string
	Model string
	Usage map[string]int
}

// Completer is the one outbound dependency: a hosted chat-completion API.
// Exactly one blocking round trip per call; failures propagate as-is.
type Completer interface {
	Complete(ctx context.Context, req *Request) (*Response, error)
}

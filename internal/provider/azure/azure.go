package azure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/TirthDhandhukia30/ai-task-gateway/config"
	"github.com/TirthDhandhukia30/ai-task-gateway/internal/provider"
)

// Client talks to an Azure OpenAI chat-completions deployment. The model is
// selected server-side by the deployment name, so requests carry no model
// field.
type Client struct {
	apiKey     string
	endpoint   string
	deployment string
	apiVersion string
	httpClient *http.Client
}

// APIError is a non-2xx answer from the deployment. The status code is kept
// so callers can annotate their own error responses with it.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("azure openai api error (status %d): %s", e.StatusCode, e.Body)
}

type chatRequest struct {
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	ID      string         `json:"id"`
	Model   string         `json:"model"`
	Choices []chatChoice   `json:"choices"`
	Usage   map[string]int `json:"usage"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}

func New(creds config.AzureOpenAI) provider.Completer {
	return &Client{
		apiKey:     creds.APIKey,
		endpoint:   creds.Endpoint,
		deployment: creds.Deployment,
		apiVersion: creds.APIVersion,
		httpClient: http.DefaultClient,
	}
}

func (c *Client) Complete(ctx context.Context, req *provider.Request) (*provider.Response, error) {
	body, err := json.Marshal(c.mapRequest(req))
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		c.endpoint, c.deployment, c.apiVersion)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("api-key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, err
	}

	if len(chatResp.Choices) == 0 {
		return nil, fmt.Errorf("azure openai api returned no choices")
	}

	model := chatResp.Model
	if model == "" {
		model = c.deployment
	}

	return &provider.Response{
		Text:  chatResp.Choices[0].Message.Content,
		Model: model,
		Usage: chatResp.Usage,
	}, nil
}

func (c *Client) mapRequest(req *provider.Request) chatRequest {
	messages := make([]chatMessage, len(req.Messages))
	for i, m := range req.Messages {
		messages[i] = chatMessage{
			Role:    m.Role,
			Content: m.Content,
		}
	}

	return chatRequest{
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
}

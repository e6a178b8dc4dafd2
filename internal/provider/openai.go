package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// OpenAICompatible calls any backend speaking the OpenAI Chat Completions
// wire format. Both the OpenAI and the Grok backends use this client; they
// differ only in base URL and in whether response_format json_object is
// accepted.
type OpenAICompatible struct {
	name     string
	client   *resty.Client
	endpoint string
	jsonMode bool
}

// OpenAIConfig holds the connection settings for an OpenAI-compatible
// backend.
type OpenAIConfig struct {
	Name    string
	APIKey  string
	BaseURL string
	// JSONMode reports whether the backend honors
	// response_format {"type": "json_object"}.
	JSONMode bool
	Timeout  time.Duration
}

// NewOpenAICompatible creates a client for an OpenAI-compatible backend.
// Parameters:
//   - cfg: backend name, credentials, and base URL.
//
// Returns:
//   - *OpenAICompatible: initialized chat-completions client.
func NewOpenAICompatible(cfg OpenAIConfig) *OpenAICompatible {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}

	client := resty.New()
	client.SetHeader("Authorization", "Bearer "+cfg.APIKey)
	client.SetHeader("Content-Type", "application/json")
	client.SetTimeout(timeout)

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}

	return &OpenAICompatible{
		name:     cfg.Name,
		client:   client,
		endpoint: baseURL + "/chat/completions",
		jsonMode: cfg.JSONMode,
	}
}

// Name returns the backend name used in logs and routing.
func (c *OpenAICompatible) Name() string {
	return c.name
}

// OpenAI-compatible Chat Completion API request/response structures
type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	Temperature    float64        `json:"temperature"`
	ResponseFormat *chatRespLayer `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRespLayer struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Complete sends the prompt as a single user message and returns the
// reply text.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - req: model, prompt, and sampling settings.
//
// Returns:
//   - string: raw reply text.
//   - error: non-nil if the API request fails or returns no choices.
func (c *OpenAICompatible) Complete(ctx context.Context, req Request) (string, error) {
	body := chatRequest{
		Model: req.Model,
		Messages: []chatMessage{
			{Role: "user", Content: req.Prompt},
		},
		Temperature: req.Temperature,
	}
	if req.ForceJSON && c.jsonMode {
		body.ResponseFormat = &chatRespLayer{Type: "json_object"}
	}

	var resp chatResponse
	httpResp, err := c.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&resp).
		Post(c.endpoint)

	if err != nil {
		return "", fmt.Errorf("failed to call %s API: %w", c.name, err)
	}

	if httpResp.StatusCode() < 200 || httpResp.StatusCode() >= 300 {
		errorMsg := fmt.Sprintf("HTTP %d", httpResp.StatusCode())
		if resp.Error != nil {
			errorMsg = fmt.Sprintf("HTTP %d: %s", httpResp.StatusCode(), resp.Error.Message)
		} else if len(httpResp.Body()) > 0 {
			errorMsg = fmt.Sprintf("HTTP %d: %s", httpResp.StatusCode(), string(httpResp.Body()))
		}
		return "", fmt.Errorf("%s API returned error: %s", c.name, errorMsg)
	}

	if resp.Error != nil {
		return "", fmt.Errorf("%s API error: %s", c.name, resp.Error.Message)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from %s API (status: %d)", c.name, httpResp.StatusCode())
	}

	return resp.Choices[0].Message.Content, nil
}

package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Gemini calls the Google Generative Language REST API (generateContent).
type Gemini struct {
	client  *resty.Client
	baseURL string
}

// GeminiConfig holds the connection settings for the Gemini backend.
type GeminiConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// NewGemini creates a Gemini client.
func NewGemini(cfg GeminiConfig) *Gemini {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}

	client := resty.New()
	client.SetHeader("x-goog-api-key", cfg.APIKey)
	client.SetHeader("Content-Type", "application/json")
	client.SetTimeout(timeout)

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com"
	}

	return &Gemini{client: client, baseURL: baseURL}
}

// Name returns the backend name used in logs and routing.
func (g *Gemini) Name() string {
	return "gemini"
}

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig geminiGenConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenConfig struct {
	Temperature      float64 `json:"temperature"`
	TopP             float64 `json:"topP"`
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

// Complete sends the prompt to generateContent and returns the first
// candidate's text.
func (g *Gemini) Complete(ctx context.Context, req Request) (string, error) {
	body := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: req.Prompt}}},
		},
		GenerationConfig: geminiGenConfig{
			Temperature: req.Temperature,
			TopP:        0.95,
		},
	}
	if req.ForceJSON {
		body.GenerationConfig.ResponseMimeType = "application/json"
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.baseURL, req.Model)

	var resp geminiResponse
	httpResp, err := g.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&resp).
		Post(endpoint)

	if err != nil {
		return "", fmt.Errorf("failed to call gemini API: %w", err)
	}

	if httpResp.StatusCode() < 200 || httpResp.StatusCode() >= 300 {
		errorMsg := fmt.Sprintf("HTTP %d", httpResp.StatusCode())
		if resp.Error != nil {
			errorMsg = fmt.Sprintf("HTTP %d: %s", httpResp.StatusCode(), resp.Error.Message)
		} else if len(httpResp.Body()) > 0 {
			errorMsg = fmt.Sprintf("HTTP %d: %s", httpResp.StatusCode(), string(httpResp.Body()))
		}
		return "", fmt.Errorf("gemini API returned error: %s", errorMsg)
	}

	if resp.Error != nil {
		return "", fmt.Errorf("gemini API error: %s", resp.Error.Message)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no candidates from gemini API (status: %d)", httpResp.StatusCode())
	}

	return resp.Candidates[0].Content.Parts[0].Text, nil
}

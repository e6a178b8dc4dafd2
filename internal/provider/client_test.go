package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestOpenAICompatibleComplete(t *testing.T) {
	var gotBody chatRequest
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"{\"caption\":\"hi\",\"tags\":[]}"}}]}`))
	}))
	defer srv.Close()

	c := NewOpenAICompatible(OpenAIConfig{
		Name:     BackendOpenAI,
		APIKey:   "test-key",
		BaseURL:  srv.URL,
		JSONMode: true,
	})

	out, err := c.Complete(context.Background(), Request{
		Model:       "gpt-4o-mini",
		Prompt:      "write one caption",
		Temperature: 0.9,
		ForceJSON:   true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "caption") {
		t.Errorf("reply = %q", out)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("auth header = %q", gotAuth)
	}
	if gotBody.Model != "gpt-4o-mini" {
		t.Errorf("model = %q", gotBody.Model)
	}
	if gotBody.Temperature != 0.9 {
		t.Errorf("temperature = %v", gotBody.Temperature)
	}
	if len(gotBody.Messages) != 1 || gotBody.Messages[0].Role != "user" {
		t.Errorf("messages = %+v", gotBody.Messages)
	}
	if gotBody.ResponseFormat == nil || gotBody.ResponseFormat.Type != "json_object" {
		t.Errorf("response_format = %+v", gotBody.ResponseFormat)
	}
}

func TestOpenAICompatibleNoJSONModeOmitsResponseFormat(t *testing.T) {
	var gotBody chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"free text"}}]}`))
	}))
	defer srv.Close()

	// Grok's configuration: ForceJSON requests are still sent without
	// response_format because the backend rejects it.
	c := NewOpenAICompatible(OpenAIConfig{Name: BackendGrok, APIKey: "k", BaseURL: srv.URL})

	if _, err := c.Complete(context.Background(), Request{Model: "grok-4-1-fast-non-reasoning", Prompt: "p", ForceJSON: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotBody.ResponseFormat != nil {
		t.Errorf("response_format sent: %+v", gotBody.ResponseFormat)
	}
}

func TestOpenAICompatibleErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limited","type":"rate_limit"}}`))
	}))
	defer srv.Close()

	c := NewOpenAICompatible(OpenAIConfig{Name: BackendOpenAI, APIKey: "k", BaseURL: srv.URL})

	_, err := c.Complete(context.Background(), Request{Model: "gpt-4o", Prompt: "p"})
	if err == nil {
		t.Fatal("expected error for 429 response")
	}
	if !strings.Contains(err.Error(), "rate limited") {
		t.Errorf("error = %v, want backend message included", err)
	}
}

func TestGeminiComplete(t *testing.T) {
	var gotBody geminiRequest
	var gotPath, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"reply text"}]}}]}`))
	}))
	defer srv.Close()

	g := NewGemini(GeminiConfig{APIKey: "gkey", BaseURL: srv.URL})

	out, err := g.Complete(context.Background(), Request{
		Model:       "gemini-3-flash-preview",
		Prompt:      "hello",
		Temperature: 0.5,
		ForceJSON:   true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "reply text" {
		t.Errorf("reply = %q", out)
	}
	if gotPath != "/v1beta/models/gemini-3-flash-preview:generateContent" {
		t.Errorf("path = %q", gotPath)
	}
	if gotKey != "gkey" {
		t.Errorf("api key header = %q", gotKey)
	}
	if gotBody.GenerationConfig.ResponseMimeType != "application/json" {
		t.Errorf("responseMimeType = %q", gotBody.GenerationConfig.ResponseMimeType)
	}
	if len(gotBody.Contents) != 1 || len(gotBody.Contents[0].Parts) != 1 || gotBody.Contents[0].Parts[0].Text != "hello" {
		t.Errorf("contents = %+v", gotBody.Contents)
	}
}

func TestGeminiNoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	g := NewGemini(GeminiConfig{APIKey: "k", BaseURL: srv.URL})

	if _, err := g.Complete(context.Background(), Request{Model: "gemini-3-flash-preview", Prompt: "p"}); err == nil {
		t.Fatal("expected error for empty candidates")
	}
}

package provider

import (
	"context"
	"errors"
	"testing"
)

func TestResolveRouting(t *testing.T) {
	tests := []struct {
		name          string
		model         string
		wantBackend   string
		wantWireModel string
		wantForceJSON bool
	}{
		{"default model", "", BackendGemini, "gemini-3-flash-preview", true},
		{"gemini current", "gemini-3-flash-preview", BackendGemini, "gemini-3-flash-preview", true},
		{"gemini legacy alias", "gemini-2.0-flash-exp", BackendGemini, "gemini-3-flash-preview", true},
		{"openai", "gpt-4o", BackendOpenAI, "gpt-4o", true},
		{"openai alias", "gpt-5-mini", BackendOpenAI, "gpt-4o-mini", true},
		{"grok no json mode", "grok-4-1-fast-non-reasoning", BackendGrok, "grok-4-1-fast-non-reasoning", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt, err := resolve(tt.model)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rt.backend != tt.wantBackend {
				t.Errorf("backend = %q, want %q", rt.backend, tt.wantBackend)
			}
			if rt.model != tt.wantWireModel {
				t.Errorf("wire model = %q, want %q", rt.model, tt.wantWireModel)
			}
			if rt.forceJSON != tt.wantForceJSON {
				t.Errorf("forceJSON = %v, want %v", rt.forceJSON, tt.wantForceJSON)
			}
		})
	}
}

type stubClient struct {
	name string
	got  Request
}

func (s *stubClient) Name() string { return s.name }
func (s *stubClient) Complete(_ context.Context, req Request) (string, error) {
	s.got = req
	return "ok", nil
}

func TestRegistryComplete(t *testing.T) {
	stub := &stubClient{name: BackendOpenAI}
	r := NewRegistry(stub)

	out, err := r.Complete(context.Background(), "gpt-5-mini", "hello", 0.7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "ok" {
		t.Errorf("reply = %q", out)
	}
	if stub.got.Model != "gpt-4o-mini" {
		t.Errorf("wire model = %q, want gpt-4o-mini", stub.got.Model)
	}
	if !stub.got.ForceJSON {
		t.Error("ForceJSON not set for an openai route")
	}
	if stub.got.Temperature != 0.7 {
		t.Errorf("temperature = %v, want 0.7", stub.got.Temperature)
	}
}

func TestRegistryUnconfiguredBackend(t *testing.T) {
	r := NewRegistry(&stubClient{name: BackendOpenAI})

	_, err := r.Complete(context.Background(), "grok-4-1-fast-non-reasoning", "hi", 0.5)
	if !errors.Is(err, ErrNoAPIKey) {
		t.Errorf("error = %v, want ErrNoAPIKey", err)
	}
}

func TestRegistryRejectsUnknownModel(t *testing.T) {
	stub := &stubClient{name: BackendOpenAI}
	r := NewRegistry(stub)

	for _, model := range []string{"gpt-4o-typo", "gemini-9-ultra", "o9-preview"} {
		_, err := r.Complete(context.Background(), model, "hi", 0.5)
		if !errors.Is(err, ErrUnsupportedModel) {
			t.Errorf("Complete(%q) error = %v, want ErrUnsupportedModel", model, err)
		}
	}
	if stub.got.Model != "" {
		t.Errorf("unknown model reached the backend: %q", stub.got.Model)
	}
}

func TestWireModelAndBackendFor(t *testing.T) {
	if got := WireModel("gemini-2.0-flash-exp"); got != "gemini-3-flash-preview" {
		t.Errorf("WireModel = %q", got)
	}
	if got := BackendFor("grok-4-1-fast-non-reasoning"); got != BackendGrok {
		t.Errorf("BackendFor = %q", got)
	}
	if got := BackendFor("not-a-model"); got != "" {
		t.Errorf("BackendFor(unknown) = %q, want empty", got)
	}
}

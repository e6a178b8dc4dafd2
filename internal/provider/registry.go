package provider

import (
	"context"
	"errors"
	"fmt"
)

// Backend names used by the route table.
const (
	BackendGemini = "gemini"
	BackendOpenAI = "openai"
	BackendGrok   = "grok"
)

// route maps a user-facing model name to the backend that serves it, the
// model id actually sent on the wire, and whether JSON mode is requested.
// Grok rejects response_format, so its routes leave forceJSON off and the
// parser falls back to extraction.
type route struct {
	backend   string
	model     string
	forceJSON bool
}

// modelRoutes carries the known model names, including legacy aliases kept
// so stored history and old clients keep working after a model sunset.
var modelRoutes = map[string]route{
	"gemini-3-flash-preview":      {backend: BackendGemini, model: "gemini-3-flash-preview", forceJSON: true},
	"gemini-2.0-flash-exp":        {backend: BackendGemini, model: "gemini-3-flash-preview", forceJSON: true},
	"gpt-4o":                      {backend: BackendOpenAI, model: "gpt-4o", forceJSON: true},
	"gpt-4o-mini":                 {backend: BackendOpenAI, model: "gpt-4o-mini", forceJSON: true},
	"gpt-5-mini":                  {backend: BackendOpenAI, model: "gpt-4o-mini", forceJSON: true},
	"grok-4-1-fast-non-reasoning": {backend: BackendGrok, model: "grok-4-1-fast-non-reasoning"},
}

// DefaultModel is used when a request carries no model.
const DefaultModel = "gemini-3-flash-preview"

// ErrUnsupportedModel is returned for model names missing from the route
// table. A typo fails here instead of reaching a backend.
var ErrUnsupportedModel = errors.New("unsupported model")

// Registry resolves model names to configured backend clients.
type Registry struct {
	clients map[string]Client
}

// NewRegistry creates a registry over the given backend clients, keyed by
// Client.Name(). A backend without a configured key should simply not be
// registered; routes to it then fail with ErrNoAPIKey.
func NewRegistry(clients ...Client) *Registry {
	r := &Registry{clients: make(map[string]Client, len(clients))}
	for _, c := range clients {
		r.clients[c.Name()] = c
	}
	return r
}

// resolve returns the route for a model name. Only names in the route
// table are accepted; anything else is ErrUnsupportedModel.
func resolve(model string) (route, error) {
	if model == "" {
		model = DefaultModel
	}
	if rt, ok := modelRoutes[model]; ok {
		return rt, nil
	}
	return route{}, fmt.Errorf("%w: %s", ErrUnsupportedModel, model)
}

// Complete routes a prompt to the backend serving the model and returns the
// raw reply text.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - model: user-facing model name ("" selects DefaultModel).
//   - prompt: full instruction text.
//   - temperature: sampling temperature on the 0..2 scale.
//
// Returns:
//   - string: raw reply text.
//   - error: non-nil if the model is unknown, the backend is
//     unconfigured, or the call fails.
func (r *Registry) Complete(ctx context.Context, model, prompt string, temperature float64) (string, error) {
	rt, err := resolve(model)
	if err != nil {
		return "", err
	}
	client, ok := r.clients[rt.backend]
	if !ok {
		return "", fmt.Errorf("%w: backend %s (model %s)", ErrNoAPIKey, rt.backend, model)
	}
	return client.Complete(ctx, Request{
		Model:       rt.model,
		Prompt:      prompt,
		Temperature: temperature,
		ForceJSON:   rt.forceJSON,
	})
}

// BackendFor reports which backend a model name routes to, or "" for an
// unknown name.
func BackendFor(model string) string {
	rt, err := resolve(model)
	if err != nil {
		return ""
	}
	return rt.backend
}

// WireModel reports the model id actually sent for a user-facing name.
// Unknown names pass through unchanged.
func WireModel(model string) string {
	rt, err := resolve(model)
	if err != nil {
		return model
	}
	return rt.model
}

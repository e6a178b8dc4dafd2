// Package provider holds the LLM backend clients and the model registry
// that routes a requested model name to the backend serving it.
package provider

import (
	"context"
	"errors"
)

// Request is a single text completion call. Temperature is the sampling
// temperature on the provider's native 0..2 scale. ForceJSON asks the
// backend to constrain output to a JSON object where the backend supports
// that mode.
type Request struct {
	Model       string
	Prompt      string
	Temperature float64
	ForceJSON   bool
}

// Client is one LLM backend. Complete returns the raw reply text; callers
// own any JSON extraction from it.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
	Name() string
}

// ErrNoAPIKey is returned when a route resolves to a backend whose API key
// is not configured.
var ErrNoAPIKey = errors.New("provider: api key not configured")

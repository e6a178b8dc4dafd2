package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/digipark/captionforge/internal/prompts"
	"github.com/digipark/captionforge/internal/provider"
)

// Translation is the bilingual label pair plus slug key produced for a new
// custom catalog option.
type Translation struct {
	CN  string `json:"cn"`
	EN  string `json:"en"`
	Key string `json:"key"`
}

// TranslateService produces bilingual labels for user-entered option text.
type TranslateService struct {
	registry *provider.Registry
	model    string
}

// NewTranslateService creates a new TranslateService.
// Parameters:
//   - registry: model registry routing completions to backends.
//   - model: model used for translation ("" selects the registry default).
//
// Returns:
//   - *TranslateService: initialized service.
func NewTranslateService(registry *provider.Registry, model string) *TranslateService {
	return &TranslateService{registry: registry, model: model}
}

// Translate turns free text into a {cn, en, key} triple. Translation runs
// cool (low temperature) since it wants fidelity, not creativity.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - text: option text in either language.
//
// Returns:
//   - *Translation: bilingual labels and slug key.
//   - error: non-nil if the call or parse fails.
func (s *TranslateService) Translate(ctx context.Context, text string) (*Translation, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("nothing to translate")
	}

	raw, err := s.registry.Complete(ctx, s.model, prompts.TranslatePrompt(text), 0.2)
	if err != nil {
		return nil, err
	}

	jsonStr, err := extractJSONObject(stripCodeFence(raw))
	if err != nil {
		return nil, err
	}

	var t Translation
	if err := json.Unmarshal([]byte(jsonStr), &t); err != nil {
		return nil, fmt.Errorf("failed to parse translation: %w", err)
	}
	if t.CN == "" && t.EN == "" {
		return nil, fmt.Errorf("empty translation in response")
	}
	if t.Key == "" {
		t.Key = slugify(t.EN)
	}
	return &t, nil
}

// slugify derives a snake_case key from English text.
func slugify(text string) string {
	var b strings.Builder
	lastUnderscore := true
	for _, r := range strings.ToLower(strings.TrimSpace(text)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteRune('_')
				lastUnderscore = true
			}
		}
	}
	return strings.Trim(b.String(), "_")
}

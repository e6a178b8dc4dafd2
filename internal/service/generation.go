package service

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/digipark/captionforge/internal/domain"
	"github.com/digipark/captionforge/internal/logger"
	"github.com/digipark/captionforge/internal/presets"
	"github.com/digipark/captionforge/internal/prompts"
	"github.com/digipark/captionforge/internal/provider"
)

// defaultKeywordPool is the fallback keyword source when a request carries
// neither specific nor available keywords.
var defaultKeywordPool = []string{
	"immersive", "digital art", "Sydney", "interactive", "projection",
	"wonderland", "family fun", "date night", "photo spot", "futuristic",
	"neon", "dreamscape", "technology", "exhibition", "weekend",
	"school holidays", "indoor activity", "magical", "experience", "Westfield",
}

// GenerationConfig carries the dispatcher defaults applied when a request
// leaves a knob unset.
type GenerationConfig struct {
	DefaultModel   string
	Temperature    float64
	Intensity      int
	SampleKeywords int
}

// GenerationService is the caption dispatcher: it resolves variables,
// builds platform prompts, calls the model registry, and parses replies
// into captions.
type GenerationService struct {
	registry *provider.Registry
	catalog  *presets.Catalog
	cfg      GenerationConfig
}

// NewGenerationService creates a new GenerationService.
// Parameters:
//   - registry: model registry routing completions to backends.
//   - catalog: built-in preset catalog.
//   - cfg: dispatcher defaults.
//
// Returns:
//   - *GenerationService: initialized dispatcher.
func NewGenerationService(registry *provider.Registry, catalog *presets.Catalog, cfg GenerationConfig) *GenerationService {
	if cfg.DefaultModel == "" {
		cfg.DefaultModel = provider.DefaultModel
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.9
	}
	if cfg.Intensity == 0 {
		cfg.Intensity = 3
	}
	if cfg.SampleKeywords == 0 {
		cfg.SampleKeywords = 3
	}
	return &GenerationService{registry: registry, catalog: catalog, cfg: cfg}
}

// Catalog returns the built-in catalog the dispatcher resolves against.
func (s *GenerationService) Catalog() *presets.Catalog {
	return s.catalog
}

// GenerateRequest is one dispatch: per-platform counts plus the shared
// style knobs. SpecificKeywords, when present, pin the keyword set;
// otherwise KeywordCount keywords are drawn once from Keywords (or the
// built-in pool when that is empty too). Every unit sees the same set,
// re-shuffled in order.
type GenerateRequest struct {
	Counts            domain.PlatformCounts    `json:"counts"`
	Keywords          []string                 `json:"availableKeywords"`
	SpecificKeywords  []string                 `json:"specificKeywords"`
	KeywordCount      int                      `json:"keywordCount"`
	Variables         domain.VariableSelection `json:"variables"`
	DisabledVariables []string                 `json:"disabledDimensions"`
	Config            presets.VariableConfig   `json:"variableConfig,omitempty"`
	Topic             string                   `json:"topic"`
	Model             string                   `json:"model"`
	Temperature       *float64                 `json:"temperature"`
	Intensity         int                      `json:"intensity"`
}

// Generate produces the requested captions platform by platform. The
// keyword set is fixed once per request; each unit re-shuffles its order
// and resolves its own random variables, so two units of the same request
// differ. A failed unit is logged and skipped; the call errors only when
// every requested unit failed.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - req: counts, keywords, variables, and model settings.
//
// Returns:
//   - *domain.GenerationResult: captions bucketed by platform.
//   - error: non-nil if every requested unit failed.
func (s *GenerationService) Generate(ctx context.Context, req *GenerateRequest) (*domain.GenerationResult, error) {
	result := &domain.GenerationResult{}
	if req.Counts.Total() == 0 {
		return result, nil
	}

	start := time.Now()

	cat := s.catalog.WithConfig(req.Config)

	model := req.Model
	if model == "" {
		model = s.cfg.DefaultModel
	}
	temperature := s.cfg.Temperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}
	intensity := req.Intensity
	if intensity == 0 {
		intensity = s.cfg.Intensity
	}
	creativity := int(math.Round(temperature * 100))
	wireModel := provider.WireModel(model)

	base := prompts.FilterVariables(req.Variables, req.DisabledVariables)
	keywordSet := s.selectKeywords(req)

	failed := 0
	for _, platform := range domain.Platforms {
		count := req.Counts.For(platform)
		for i := 0; i < count; i++ {
			keywords := shuffleKeywords(keywordSet)
			resolved := ResolveVariables(cat, base)
			prompt := prompts.BuildPrompt(platform, cat, keywords, resolved, req.Topic, nil)

			raw, err := s.registry.Complete(ctx, model, prompt, temperature)
			if err != nil {
				failed++
				logger.CtxWarn(ctx, "generation unit failed (platform=%s, model=%s): %v", platform, model, err)
				continue
			}

			caption, tags, err := parseCaptionReply(raw)
			if err != nil {
				failed++
				logger.CtxWarn(ctx, "generation unit unparseable (platform=%s, model=%s): %v", platform, model, err)
				continue
			}

			result.Append(domain.GeneratedCaption{
				Platform:      platform,
				Caption:       caption,
				Tags:          tags,
				KeywordsUsed:  keywords,
				VariablesUsed: resolved,
				Model:         wireModel,
				Creativity:    creativity,
				Intensity:     intensity,
				KeywordCount:  len(keywords),
			})
		}
	}

	if result.Total() == 0 {
		return nil, fmt.Errorf("all %d generation units failed", req.Counts.Total())
	}

	logger.With(logger.Fields{
		logger.FieldCount: result.Total(),
		"failed":          failed,
		logger.FieldModel: model,
	}).WithDuration(time.Since(start).Milliseconds()).Info(ctx, "Generation completed")

	return result, nil
}

// selectKeywords picks the keyword set for the whole request. Specific
// keywords win outright; otherwise KeywordCount keywords are drawn without
// replacement from the available pool, falling back to the built-in sample
// pool. The set is drawn once; units only vary its order.
func (s *GenerationService) selectKeywords(req *GenerateRequest) []string {
	if len(req.SpecificKeywords) > 0 {
		out := make([]string, len(req.SpecificKeywords))
		copy(out, req.SpecificKeywords)
		return out
	}

	pool := req.Keywords
	if len(pool) == 0 {
		pool = defaultKeywordPool
	}

	count := req.KeywordCount
	if count <= 0 {
		count = s.cfg.SampleKeywords
	}
	if count > len(pool) {
		count = len(pool)
	}

	shuffled := shuffleKeywords(pool)
	return shuffled[:count]
}

// shuffleKeywords returns a copy of keywords in fresh random order.
func shuffleKeywords(keywords []string) []string {
	out := make([]string, len(keywords))
	copy(out, keywords)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

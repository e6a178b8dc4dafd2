package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/digipark/captionforge/internal/domain"
	"github.com/digipark/captionforge/internal/logger"
	"github.com/google/uuid"
)

// batchModels is the model pool drawn from when a batch randomizes models.
var batchModels = []string{
	"gemini-3-flash-preview",
	"gpt-4o",
	"gpt-4o-mini",
	"grok-4-1-fast-non-reasoning",
}

// RandomizeFlags select which knobs a batch re-draws per variant. A knob
// left false keeps the base request's value (pinned).
type RandomizeFlags struct {
	Models     bool `json:"models"`
	Creativity bool `json:"creativity"`
	Keywords   bool `json:"keywords"`
	Variables  bool `json:"variables"`
}

// BatchRequest is a batch run: the base generation request plus how many
// variants to produce and which knobs vary between them.
type BatchRequest struct {
	GenerateRequest
	Variants  int            `json:"batchSize"`
	Randomize RandomizeFlags `json:"randomize"`
}

// BatchResult is the merged outcome of a batch run. FailedUnits counts the
// individual caption units that did not produce output.
type BatchResult struct {
	BatchID     string                   `json:"batchId"`
	Result      *domain.GenerationResult `json:"result"`
	FailedUnits int                      `json:"failedUnits"`
}

// BatchService fans a generation request out into randomized variants and
// gathers the results.
type BatchService struct {
	gen          *GenerationService
	maxBatchSize int
}

// NewBatchService creates a new BatchService.
// Parameters:
//   - gen: dispatcher executing each variant.
//   - maxBatchSize: cap on total units per batch (0 uses 20).
//
// Returns:
//   - *BatchService: initialized batch runner.
func NewBatchService(gen *GenerationService, maxBatchSize int) *BatchService {
	if maxBatchSize <= 0 {
		maxBatchSize = 20
	}
	return &BatchService{gen: gen, maxBatchSize: maxBatchSize}
}

// Run executes the batch: each variant re-draws its randomized knobs, runs
// concurrently, and the per-platform buckets are merged. Failed variants
// only reduce the output; the run errors when nothing at all was produced.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - req: base request, variant count, and randomize flags.
//
// Returns:
//   - *BatchResult: merged captions with failure count and batch ID.
//   - error: non-nil if the batch exceeds the size cap or produced nothing.
func (s *BatchService) Run(ctx context.Context, req *BatchRequest) (*BatchResult, error) {
	variants := req.Variants
	if variants <= 0 {
		variants = 1
	}

	unitsPerVariant := req.Counts.Total()
	if unitsPerVariant == 0 {
		return &BatchResult{BatchID: uuid.New().String(), Result: &domain.GenerationResult{}}, nil
	}
	if variants*unitsPerVariant > s.maxBatchSize {
		return nil, fmt.Errorf("batch of %d units exceeds limit of %d", variants*unitsPerVariant, s.maxBatchSize)
	}

	batchID := uuid.New().String()
	ctx = logger.SetBatchID(ctx, batchID)
	start := time.Now()

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		merged = &domain.GenerationResult{}
		failed = 0
	)

	for i := 0; i < variants; i++ {
		vreq := s.variantRequest(req)

		wg.Add(1)
		go func() {
			defer wg.Done()

			res, err := s.gen.Generate(ctx, vreq)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed += unitsPerVariant
				logger.CtxWarn(ctx, "batch variant failed (model=%s): %v", vreq.Model, err)
				return
			}
			failed += unitsPerVariant - res.Total()
			merged.Merge(res)
		}()
	}
	wg.Wait()

	if merged.Total() == 0 {
		return nil, fmt.Errorf("all %d batch units failed", variants*unitsPerVariant)
	}

	logger.With(logger.Fields{
		logger.FieldBatchID: batchID,
		logger.FieldCount:   merged.Total(),
		"failed":            failed,
	}).WithDuration(time.Since(start).Milliseconds()).Info(ctx, "Batch completed")

	return &BatchResult{BatchID: batchID, Result: merged, FailedUnits: failed}, nil
}

// variantRequest derives one variant's request from the base. Only flagged
// knobs are re-drawn; everything else is pinned to the base value. A
// dimension listed in DisabledVariables is never randomized, even when the
// variables flag is on.
func (s *BatchService) variantRequest(req *BatchRequest) *GenerateRequest {
	vreq := req.GenerateRequest
	vreq.Variables = req.Variables.Clone()

	if req.Randomize.Models {
		vreq.Model = batchModels[rand.IntN(len(batchModels))]
	}
	if req.Randomize.Creativity {
		// Creativity covers both sampling knobs: temperature and intensity.
		t := 0.5 + rand.Float64()*0.7
		vreq.Temperature = &t
		vreq.Intensity = 1 + rand.IntN(5)
	}
	if req.Randomize.Keywords {
		// Clearing the pinned set makes the variant draw fresh keywords
		// from the available pool, with a re-rolled pool size.
		vreq.SpecificKeywords = nil
		vreq.KeywordCount = 2 + rand.IntN(4)
	}
	if req.Randomize.Variables {
		disabled := make(map[string]bool, len(req.DisabledVariables))
		for _, k := range req.DisabledVariables {
			disabled[k] = true
		}
		if vreq.Variables == nil {
			vreq.Variables = domain.VariableSelection{}
		}
		for _, key := range s.gen.Catalog().Keys() {
			if disabled[key] {
				continue
			}
			if _, pinned := vreq.Variables[key]; pinned {
				continue
			}
			vreq.Variables[key] = domain.Random()
		}
	}
	return &vreq
}

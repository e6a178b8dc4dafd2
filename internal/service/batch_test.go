package service

import (
	"context"
	"errors"
	"testing"

	"github.com/digipark/captionforge/internal/domain"
	"github.com/digipark/captionforge/internal/provider"
)

func TestVariantRequestPinnedAndDisabled(t *testing.T) {
	fake := &fakeClient{name: provider.BackendOpenAI}
	batch := NewBatchService(newTestGenerator(fake), 20)

	req := &BatchRequest{
		GenerateRequest: GenerateRequest{
			Variables:         domain.VariableSelection{"tone": domain.Single("immersive")},
			DisabledVariables: []string{"hookType"},
			Model:             "gpt-4o",
		},
		Randomize: RandomizeFlags{Variables: true},
	}

	vreq := batch.variantRequest(req)

	if tone := vreq.Variables["tone"]; tone.Kind != domain.KindSingle || tone.One != "immersive" {
		t.Errorf("pinned tone changed: %+v", tone)
	}
	if _, ok := vreq.Variables["hookType"]; ok {
		t.Error("disabled dimension was randomized")
	}
	if v, ok := vreq.Variables["perspective"]; !ok || v.Kind != domain.KindRandom {
		t.Errorf("unpinned dimension not set to random: %+v", v)
	}
	if vreq.Model != "gpt-4o" {
		t.Errorf("model changed without the models flag: %q", vreq.Model)
	}

	// Base request untouched.
	if len(req.Variables) != 1 {
		t.Error("variantRequest mutated the base variables")
	}
}

func TestVariantRequestRandomizedKnobs(t *testing.T) {
	fake := &fakeClient{name: provider.BackendOpenAI}
	batch := NewBatchService(newTestGenerator(fake), 20)

	req := &BatchRequest{
		GenerateRequest: GenerateRequest{
			Model:            "gpt-4o",
			SpecificKeywords: []string{"pinned"},
		},
		Randomize: RandomizeFlags{Models: true, Creativity: true, Keywords: true},
	}

	vreq := batch.variantRequest(req)

	found := false
	for _, m := range batchModels {
		if vreq.Model == m {
			found = true
		}
	}
	if !found {
		t.Errorf("randomized model %q not in the batch pool", vreq.Model)
	}
	if vreq.Temperature == nil {
		t.Fatal("creativity flag did not set a temperature")
	}
	if *vreq.Temperature < 0.5 || *vreq.Temperature > 1.2 {
		t.Errorf("randomized temperature %v out of range", *vreq.Temperature)
	}
	if vreq.Intensity < 1 || vreq.Intensity > 5 {
		t.Errorf("creativity flag left intensity at %d, want 1..5", vreq.Intensity)
	}
	if vreq.SpecificKeywords != nil {
		t.Error("keywords flag did not clear the pinned set")
	}
	if vreq.KeywordCount < 2 || vreq.KeywordCount > 5 {
		t.Errorf("keywords flag left keyword count at %d, want 2..5", vreq.KeywordCount)
	}
}

func TestVariantRequestUnflaggedKnobsStayPinned(t *testing.T) {
	fake := &fakeClient{name: provider.BackendOpenAI}
	batch := NewBatchService(newTestGenerator(fake), 20)

	temp := 0.3
	req := &BatchRequest{
		GenerateRequest: GenerateRequest{
			Model:            "gpt-4o",
			Temperature:      &temp,
			Intensity:        4,
			KeywordCount:     2,
			SpecificKeywords: []string{"pinned"},
		},
	}

	vreq := batch.variantRequest(req)

	if vreq.Model != "gpt-4o" || vreq.Temperature != &temp || vreq.Intensity != 4 {
		t.Errorf("unflagged sampling knobs changed: model=%q temp=%v intensity=%d",
			vreq.Model, vreq.Temperature, vreq.Intensity)
	}
	if vreq.KeywordCount != 2 || len(vreq.SpecificKeywords) != 1 {
		t.Errorf("unflagged keyword knobs changed: count=%d specific=%v",
			vreq.KeywordCount, vreq.SpecificKeywords)
	}
}

func TestBatchRunMergesVariants(t *testing.T) {
	fake := &fakeClient{
		name:    provider.BackendOpenAI,
		replies: []fakeReply{okReply("v")},
	}
	batch := NewBatchService(newTestGenerator(fake), 20)

	res, err := batch.Run(context.Background(), &BatchRequest{
		GenerateRequest: GenerateRequest{
			Counts: domain.PlatformCounts{Instagram: 1},
		},
		Variants: 3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Result.Total() != 3 {
		t.Errorf("merged total = %d, want 3", res.Result.Total())
	}
	if res.FailedUnits != 0 {
		t.Errorf("failed units = %d, want 0", res.FailedUnits)
	}
	if res.BatchID == "" {
		t.Error("missing batch id")
	}
}

func TestBatchRunCountsFailures(t *testing.T) {
	fake := &fakeClient{
		name: provider.BackendOpenAI,
		replies: []fakeReply{
			okReply("good"),
			{err: errors.New("boom")},
		},
	}
	batch := NewBatchService(newTestGenerator(fake), 20)

	// Two variants of one unit each: one succeeds, the other fails.
	// Variants run concurrently, so which one fails is not fixed; only the
	// aggregate counts are.
	res, err := batch.Run(context.Background(), &BatchRequest{
		GenerateRequest: GenerateRequest{
			Counts: domain.PlatformCounts{TikTok: 1},
		},
		Variants: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Result.Total() != 1 {
		t.Errorf("merged total = %d, want 1", res.Result.Total())
	}
	if res.FailedUnits != 1 {
		t.Errorf("failed units = %d, want 1", res.FailedUnits)
	}
}

func TestBatchRunAllFailed(t *testing.T) {
	fake := &fakeClient{
		name:    provider.BackendOpenAI,
		replies: []fakeReply{{err: errors.New("down")}},
	}
	batch := NewBatchService(newTestGenerator(fake), 20)

	_, err := batch.Run(context.Background(), &BatchRequest{
		GenerateRequest: GenerateRequest{
			Counts: domain.PlatformCounts{TikTok: 1},
		},
		Variants: 2,
	})
	if err == nil {
		t.Fatal("expected error when the whole batch fails")
	}
}

func TestBatchRunSizeCap(t *testing.T) {
	fake := &fakeClient{name: provider.BackendOpenAI}
	batch := NewBatchService(newTestGenerator(fake), 5)

	_, err := batch.Run(context.Background(), &BatchRequest{
		GenerateRequest: GenerateRequest{
			Counts: domain.PlatformCounts{TikTok: 2},
		},
		Variants: 3,
	})
	if err == nil {
		t.Fatal("expected size-cap error for 6 units against a cap of 5")
	}
	if fake.callCount() != 0 {
		t.Errorf("capped batch still made %d provider calls", fake.callCount())
	}
}

func TestBatchRunZeroUnits(t *testing.T) {
	fake := &fakeClient{name: provider.BackendOpenAI}
	batch := NewBatchService(newTestGenerator(fake), 20)

	res, err := batch.Run(context.Background(), &BatchRequest{Variants: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Result.Total() != 0 || fake.callCount() != 0 {
		t.Error("zero-unit batch should not call providers")
	}
}

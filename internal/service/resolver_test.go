package service

import (
	"testing"

	"github.com/digipark/captionforge/internal/domain"
	"github.com/digipark/captionforge/internal/presets"
)

func TestResolveVariablesReplacesRandom(t *testing.T) {
	cat := presets.Default()
	vars := domain.VariableSelection{
		"tone":     domain.Random(),
		"hookType": domain.Single("question"),
	}

	resolved := ResolveVariables(cat, vars)

	tone, ok := resolved["tone"]
	if !ok || tone.Kind != domain.KindSingle {
		t.Fatalf("random tone not resolved to a single value: %+v", tone)
	}
	dim, _ := cat.Dimension("tone")
	valid := false
	for _, o := range dim.Options {
		if o.Value == tone.One {
			valid = true
		}
	}
	if !valid {
		t.Errorf("resolved tone %q is not a catalog option", tone.One)
	}

	if resolved["hookType"].One != "question" {
		t.Error("pinned value changed during resolution")
	}
	if resolved.HasRandom() {
		t.Error("resolution left a random sentinel behind")
	}

	// Input untouched.
	if vars["tone"].Kind != domain.KindRandom {
		t.Error("ResolveVariables mutated its input")
	}
}

func TestResolveVariablesDropsUnknownRandom(t *testing.T) {
	cat := presets.Default()
	resolved := ResolveVariables(cat, domain.VariableSelection{
		"notADimension": domain.Random(),
	})
	if _, ok := resolved["notADimension"]; ok {
		t.Error("random on unknown dimension was not dropped")
	}
}

func TestResolveVariablesHonorsDerivedCatalog(t *testing.T) {
	cat := presets.Default()
	dim, _ := cat.Dimension("perspective")
	hidden := make([]string, 0, len(dim.Options)-1)
	for _, o := range dim.Options[1:] {
		hidden = append(hidden, o.Value)
	}
	derived := cat.WithConfig(presets.VariableConfig{
		"perspective": {Deleted: hidden},
	})

	want := dim.Options[0].Value
	for i := 0; i < 20; i++ {
		resolved := ResolveVariables(derived, domain.VariableSelection{
			"perspective": domain.Random(),
		})
		if resolved["perspective"].One != want {
			t.Fatalf("resolution drew hidden option %q", resolved["perspective"].One)
		}
	}
}

func TestResolveVariablesEmptyInput(t *testing.T) {
	resolved := ResolveVariables(presets.Default(), nil)
	if len(resolved) != 0 {
		t.Errorf("expected empty selection, got %+v", resolved)
	}
}

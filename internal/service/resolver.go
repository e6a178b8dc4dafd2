package service

import (
	"github.com/digipark/captionforge/internal/domain"
	"github.com/digipark/captionforge/internal/presets"
)

// ResolveVariables replaces every random selection with a concrete option
// drawn uniformly from the catalog's option list for that dimension. All
// other selections pass through untouched, including values the catalog
// does not know (custom values typed by the user). The input is never
// mutated.
//
// Resolution happens against the caller's catalog, so a catalog derived
// via WithConfig never draws soft-deleted or disabled options.
func ResolveVariables(cat *presets.Catalog, vars domain.VariableSelection) domain.VariableSelection {
	if len(vars) == 0 {
		return domain.VariableSelection{}
	}

	resolved := make(domain.VariableSelection, len(vars))
	for key, value := range vars {
		if value.Kind != domain.KindRandom {
			resolved[key] = value
			continue
		}
		if !cat.Has(key) {
			// A random pick on an unknown dimension has no pool to
			// draw from; drop it.
			continue
		}
		picked := cat.RandomOption(key)
		if picked == "" {
			continue
		}
		resolved[key] = domain.Single(picked)
	}
	return resolved
}

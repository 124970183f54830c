package search

import (
	"context"
	"sort"

	"github.com/prvnlhr/nexop-backend-sub001/models"
)

// matchByOptionValue is the last tier, reached only when name matching
// produced nothing: tokens are resolved against active attribute option
// values, candidates ordered by value length descending so the most
// specific option ("space gray" before "gray") is tried first. As in the
// name tiers, the first option with any variants wins and the rest are
// skipped.
func (e *Engine) matchByOptionValue(ctx context.Context, sig *models.CatalogSignature, tokens []string) ([]models.VariantMatch, error) {
	options, err := e.store.ActiveOptionsByValues(ctx, tokens)
	if err != nil {
		return nil, err
	}
	if len(options) == 0 {
		return nil, nil
	}

	sort.SliceStable(options, func(i, j int) bool {
		return len(options[i].Value) > len(options[j].Value)
	})

	for _, option := range options {
		variants, err := e.store.VariantsByOption(ctx, option.ID, MaxVariantMatches)
		if err != nil {
			return nil, err
		}
		if matches := buildMatches(sig, variants); len(matches) > 0 {
			return matches, nil
		}
	}
	return nil, nil
}

package search

import (
	"context"

	"github.com/prvnlhr/nexop-backend-sub001/models"
)

// matchByExactName is the first variant tier: one query matching any
// ACTIVE variant whose name equals any token in the set.
func (e *Engine) matchByExactName(ctx context.Context, sig *models.CatalogSignature, tokens []string) ([]models.VariantMatch, error) {
	variants, err := e.store.VariantsByExactNames(ctx, tokens, MaxVariantMatches)
	if err != nil {
		return nil, err
	}
	return buildMatches(sig, variants), nil
}

// matchByPartialName is the second tier: substring matching, token by
// token in token order (longest phrase first). The first token that
// returns any variant wins and the remaining tokens are never scanned.
// Longest-phrase-first with early stop approximates "most specific match
// wins" without relevance scoring and bounds the query count.
func (e *Engine) matchByPartialName(ctx context.Context, sig *models.CatalogSignature, tokens []string) ([]models.VariantMatch, error) {
	for _, token := range tokens {
		variants, err := e.store.VariantsByNameSubstring(ctx, token, MaxVariantMatches)
		if err != nil {
			return nil, err
		}
		if matches := buildMatches(sig, variants); len(matches) > 0 {
			return matches, nil
		}
	}
	return nil, nil
}

package search

import (
	"context"

	"github.com/prvnlhr/nexop-backend-sub001/models"
)

// MaxVariantMatches caps every variant-matching tier.
const MaxVariantMatches = 20

// CatalogStore defines the read-only variant lookups the engine issues
// against the catalog database. Every lookup is scoped to ACTIVE variants
// and capped at the given limit. Implementations may use Postgres,
// in-memory storage, or other backends.
type CatalogStore interface {
	// VariantsByExactNames returns variants whose name equals any of the
	// given lowercased names.
	VariantsByExactNames(ctx context.Context, names []string, limit int) ([]models.Variant, error)

	// VariantsByNameSubstring returns variants whose name contains the
	// given lowercased fragment.
	VariantsByNameSubstring(ctx context.Context, fragment string, limit int) ([]models.Variant, error)

	// VariantsByOption returns variants carrying the given attribute option.
	VariantsByOption(ctx context.Context, optionID uint, limit int) ([]models.Variant, error)

	// ActiveOptionsByValues returns active attribute options whose value
	// equals any of the given lowercased values.
	ActiveOptionsByValues(ctx context.Context, values []string) ([]models.AttributeOption, error)
}

// SignatureProvider supplies the current catalog signature snapshot.
type SignatureProvider interface {
	Signature(ctx context.Context) (*models.CatalogSignature, error)
}

// Engine resolves free-text storefront queries into ranked catalog
// matches. It is stateless; concurrent searches share nothing but the
// store and the signature snapshot.
type Engine struct {
	store      CatalogStore
	signatures SignatureProvider
}

// NewEngine wires a search engine to its catalog store and signature
// provider.
func NewEngine(store CatalogStore, signatures SignatureProvider) *Engine {
	return &Engine{store: store, signatures: signatures}
}

// variantMatcher is one tier of the fallback cascade. Tiers run in order
// and the first one to yield any result wins; results are never merged
// across tiers.
type variantMatcher func(ctx context.Context, sig *models.CatalogSignature, tokens []string) ([]models.VariantMatch, error)

// Search tokenizes the query and resolves it against categories, variant
// names and attribute option values, merging category and variant matches
// into one result. Storage errors propagate to the caller untouched.
func (e *Engine) Search(ctx context.Context, query string) (*models.SearchResult, error) {
	result := &models.SearchResult{
		Categories: make([]models.CategorySummary, 0),
		Products:   make([]models.VariantMatch, 0),
	}

	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return result, nil
	}

	sig, err := e.signatures.Signature(ctx)
	if err != nil {
		return nil, err
	}

	if categories := MatchCategories(sig.Categories, tokens); categories != nil {
		result.Categories = categories
	}

	matchers := []variantMatcher{
		e.matchByExactName,
		e.matchByPartialName,
		e.matchByOptionValue,
	}
	for _, matchVariants := range matchers {
		hits, err := matchVariants(ctx, sig, tokens)
		if err != nil {
			return nil, err
		}
		if len(hits) > 0 {
			result.Products = hits
			break
		}
	}

	return result, nil
}

// buildMatches converts raw variants into storefront matches, resolving
// each assignment to its (attribute name, option value) pair through the
// signature. Variants whose product is missing or has no slug are dropped;
// assignments pointing at unknown or inactive options are filtered out of
// the pair list rather than producing a malformed record.
func buildMatches(sig *models.CatalogSignature, variants []models.Variant) []models.VariantMatch {
	matches := make([]models.VariantMatch, 0, len(variants))
	for i := range variants {
		variant := &variants[i]
		if variant.Product == nil || variant.Product.Slug == "" {
			continue
		}

		image := variant.PrimaryImage()
		if image == "" {
			image = variant.Product.PrimaryImage()
		}

		matches = append(matches, models.VariantMatch{
			ID:    variant.ID,
			Name:  variant.Name,
			Slug:  variant.Slug,
			Price: variant.Price,
			Image: image,
			Product: models.ProductSummary{
				ID:   variant.Product.ID,
				Name: variant.Product.Name,
				Slug: variant.Product.Slug,
			},
			Attributes: resolveAssignments(sig, variant),
		})
	}
	return matches
}

func resolveAssignments(sig *models.CatalogSignature, variant *models.Variant) []models.AttributePair {
	pairs := make([]models.AttributePair, 0, len(variant.Assignments))
	if variant.Product == nil {
		return pairs
	}

	attributes := sig.AttributesFor(variant.Product.CategoryID)
	for _, assignment := range variant.Assignments {
		for _, attribute := range attributes {
			if attribute.ID != assignment.AttributeID {
				continue
			}
			for _, option := range attribute.Options {
				if option.ID == assignment.OptionID {
					pairs = append(pairs, models.AttributePair{
						Name:  attribute.Name,
						Value: option.Value,
					})
				}
			}
		}
	}
	return pairs
}

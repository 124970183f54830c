package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/prvnlhr/nexop-backend-sub001/cache"
	"github.com/prvnlhr/nexop-backend-sub001/config"
	"github.com/prvnlhr/nexop-backend-sub001/models"
)

// CatalogService is the read side of the catalog: the variant lookups the
// search engine issues, plus signature snapshot loading. All lookups are
// scoped to ACTIVE/active rows; storage errors bubble up untouched.
type CatalogService struct {
	db *gorm.DB
}

var catalogService *CatalogService

// InitCatalogService wires the service to a database handle.
func InitCatalogService(db *gorm.DB) {
	catalogService = &CatalogService{db: db}
}

// GetCatalogService returns the initialized catalog service.
func GetCatalogService() *CatalogService {
	if catalogService == nil {
		catalogService = &CatalogService{db: config.CatalogGorm}
	}
	return catalogService
}

// ─────────────────────────────────────────────────────────────
// Variant store reads (search.CatalogStore)
// ─────────────────────────────────────────────────────────────

// VariantsByExactNames returns ACTIVE variants whose name equals any of
// the given tokens, case-insensitively.
func (s *CatalogService) VariantsByExactNames(ctx context.Context, names []string, limit int) ([]models.Variant, error) {
	if len(names) == 0 {
		return nil, nil
	}

	lowered := make([]string, len(names))
	for i, name := range names {
		lowered[i] = strings.ToLower(name)
	}

	var variants []models.Variant
	err := s.db.WithContext(ctx).
		Preload("Product").
		Where("status = ?", models.VariantStatusActive).
		Where("LOWER(name) IN ?", lowered).
		Limit(limit).
		Find(&variants).Error
	return variants, err
}

// VariantsByNameSubstring returns ACTIVE variants whose name contains the
// fragment, case-insensitively.
func (s *CatalogService) VariantsByNameSubstring(ctx context.Context, fragment string, limit int) ([]models.Variant, error) {
	var variants []models.Variant
	err := s.db.WithContext(ctx).
		Preload("Product").
		Where("status = ?", models.VariantStatusActive).
		Where("name ILIKE ?", "%"+fragment+"%").
		Limit(limit).
		Find(&variants).Error
	return variants, err
}

// VariantsByOption returns ACTIVE variants carrying the given option in
// their JSONB assignment list.
func (s *CatalogService) VariantsByOption(ctx context.Context, optionID uint, limit int) ([]models.Variant, error) {
	var variants []models.Variant
	err := s.db.WithContext(ctx).
		Preload("Product").
		Where("status = ?", models.VariantStatusActive).
		Where(`EXISTS (
			SELECT 1 FROM jsonb_array_elements(assignments) AS assignment
			WHERE (assignment->>'option_id')::int = ?
		)`, optionID).
		Limit(limit).
		Find(&variants).Error
	return variants, err
}

// ActiveOptionsByValues returns active attribute options whose value
// equals any token, case-insensitively.
func (s *CatalogService) ActiveOptionsByValues(ctx context.Context, values []string) ([]models.AttributeOption, error) {
	if len(values) == 0 {
		return nil, nil
	}

	lowered := make([]string, len(values))
	for i, value := range values {
		lowered[i] = strings.ToLower(value)
	}

	var options []models.AttributeOption
	err := s.db.WithContext(ctx).
		Where("active = ?", true).
		Where("LOWER(value) IN ?", lowered).
		Find(&options).Error
	return options, err
}

// ProductsWithVariants returns the Active products of a category with
// their variants preloaded, newest first. Used by the facet filter path.
func (s *CatalogService) ProductsWithVariants(ctx context.Context, categoryID uuid.UUID) ([]models.Product, error) {
	var products []models.Product
	err := s.db.WithContext(ctx).
		Preload("Variants").
		Where("category_id = ?", categoryID).
		Where("status = ?", "Active").
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

// ─────────────────────────────────────────────────────────────
// Catalog signature (search.SignatureProvider)
// ─────────────────────────────────────────────────────────────

// Signature returns the current catalog signature, serving the cached
// snapshot when fresh and rebuilding it otherwise.
func (s *CatalogService) Signature(ctx context.Context) (*models.CatalogSignature, error) {
	if sig, ok := signature_cache.Get(); ok {
		return sig, nil
	}
	return s.RefreshSignature(ctx)
}

// RefreshSignature rebuilds the signature from the database and swaps it
// into the cache in one step.
func (s *CatalogService) RefreshSignature(ctx context.Context) (*models.CatalogSignature, error) {
	sig, err := s.loadSignature(ctx)
	if err != nil {
		return nil, err
	}
	signature_cache.Set(sig)
	return sig, nil
}

func (s *CatalogService) loadSignature(ctx context.Context) (*models.CatalogSignature, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}

	var attributes []models.Attribute
	if err := s.db.WithContext(ctx).
		Preload("Options", "active = ?", true).
		Order("display_order ASC, id ASC").
		Find(&attributes).Error; err != nil {
		return nil, err
	}

	sig := &models.CatalogSignature{
		Categories: make([]models.CategorySummary, 0, len(categories)),
		Attributes: make(map[uuid.UUID][]models.AttributeSignature),
	}
	for i := range categories {
		sig.Categories = append(sig.Categories, categories[i].Summary())
	}
	for _, attribute := range attributes {
		options := make([]models.OptionSignature, 0, len(attribute.Options))
		for _, option := range attribute.Options {
			options = append(options, models.OptionSignature{
				ID:    option.ID,
				Value: option.Value,
			})
		}
		sig.Attributes[attribute.CategoryID] = append(sig.Attributes[attribute.CategoryID], models.AttributeSignature{
			ID:         attribute.ID,
			Name:       attribute.Name,
			Filterable: attribute.Filterable,
			Options:    options,
		})
	}
	return sig, nil
}

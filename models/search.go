package models

import (
	"github.com/google/uuid"
)

// ═══════════════════════════════════════════════════════════
// Catalog signature (read-only snapshot used by the search engine)
// ═══════════════════════════════════════════════════════════

// OptionSignature is an active attribute option as seen by the search
// engine. Inactive options never appear in a signature.
type OptionSignature struct {
	ID    uint   `json:"id"`
	Value string `json:"value"`
}

// AttributeSignature describes one attribute of a category together with
// its active options.
type AttributeSignature struct {
	ID         uint              `json:"id"`
	Name       string            `json:"name"`
	Filterable bool              `json:"filterable"`
	Options    []OptionSignature `json:"options"`
}

// CatalogSignature is the immutable snapshot of categories, attributes and
// active options every query resolution reads. Snapshots are built once and
// swapped whole; a signature is never mutated after construction.
type CatalogSignature struct {
	Categories []CategorySummary `json:"categories"`
	// Attributes keyed by category id, in display order.
	Attributes map[uuid.UUID][]AttributeSignature `json:"attributes"`
}

// AttributesFor returns the attribute signatures of a category. A category
// missing from the snapshot yields nil, which every caller treats as
// "no attributes", not as an error.
func (s *CatalogSignature) AttributesFor(categoryID uuid.UUID) []AttributeSignature {
	if s == nil || s.Attributes == nil {
		return nil
	}
	return s.Attributes[categoryID]
}

// ═══════════════════════════════════════════════════════════
// Search result shapes
// ═══════════════════════════════════════════════════════════

// ProductSummary identifies the product a matched variant belongs to.
type ProductSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

// AttributePair is one (attribute name, option value) pair distinguishing
// a matched variant.
type AttributePair struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// VariantMatch is a single storefront search hit.
type VariantMatch struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	Slug       string          `json:"slug"`
	Price      float64         `json:"price"`
	Image      string          `json:"image"`
	Product    ProductSummary  `json:"product"`
	Attributes []AttributePair `json:"attributes"`
}

// SearchResult is the merged output of one free-text query resolution.
type SearchResult struct {
	Categories []CategorySummary `json:"categories"`
	Products   []VariantMatch    `json:"products"`
}

// PriceRange is an optional price constraint extracted from free text or
// supplied by the storefront.
type PriceRange struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

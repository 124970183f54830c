package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Variant status values. Only ACTIVE variants are eligible for search
// and facet matching.
const (
	VariantStatusActive     = "ACTIVE"
	VariantStatusInactive   = "INACTIVE"
	VariantStatusOutOfStock = "OUT_OF_STOCK"
)

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

type MediaURL struct {
	URL   string `json:"url" binding:"required"`
	Order *int   `json:"order,omitempty"`
}

// VariantAssignment binds a variant to one option of one attribute.
// At most one assignment per attribute per variant.
type VariantAssignment struct {
	AttributeID uint `json:"attribute_id" binding:"required"`
	OptionID    uint `json:"option_id" binding:"required"`
}

// Custom slice types so GORM can round-trip them as JSONB
type (
	MediaList      []MediaURL
	AssignmentList []VariantAssignment
)

// ═══════════════════════════════════════════════════════════
// Main Models (GORM)
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name       string    `json:"name" gorm:"not null;index"`
	Slug       string    `json:"slug" gorm:"not null;uniqueIndex"`
	CategoryID uuid.UUID `json:"category_id" gorm:"type:uuid;not null;index:idx_products_category"`
	BasePrice  float64   `json:"base_price" gorm:"type:numeric(12,2);not null;check:base_price >= 0"`
	Status     string    `json:"status" gorm:"not null;check:status IN ('Active', 'Draft');index"`
	Media      MediaList `json:"media" gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
	Variants []Variant `json:"variants,omitempty" gorm:"foreignKey:ProductID"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// Variant is a purchasable SKU of a product, distinguished from its
// siblings by its attribute/option assignments.
type Variant struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string         `json:"name" gorm:"not null;index"`
	Slug        string         `json:"slug" gorm:"not null"`
	SKU         string         `json:"sku" gorm:"not null;uniqueIndex"`
	Price       float64        `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	Stock       int            `json:"stock" gorm:"not null;default:0"`
	Status      string         `json:"status" gorm:"not null;check:status IN ('ACTIVE', 'INACTIVE', 'OUT_OF_STOCK');index"`
	ProductID   uuid.UUID      `json:"product_id" gorm:"type:uuid;not null;index"`
	Media       MediaList      `json:"media" gorm:"type:jsonb;not null;default:'[]'"`
	Assignments AssignmentList `json:"assignments" gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt   time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `json:"updated_at" gorm:"autoUpdateTime"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID;references:ID"`
}

// BeforeCreate hook - auto-generate UUID v7
func (v *Variant) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Variant) TableName() string {
	return "variants"
}

// PrimaryImage returns the first image URL by order, or "" when the
// variant has no media.
func (v *Variant) PrimaryImage() string {
	return firstMediaURL(v.Media)
}

// PrimaryImage returns the product-level primary image URL.
func (p *Product) PrimaryImage() string {
	return firstMediaURL(p.Media)
}

func firstMediaURL(media MediaList) string {
	if len(media) == 0 {
		return ""
	}
	first := media[0]
	for _, m := range media[1:] {
		if m.Order != nil && (first.Order == nil || *m.Order < *first.Order) {
			first = m
		}
	}
	return first.URL
}

// OptionFor returns the assigned option id for an attribute, if any.
func (v *Variant) OptionFor(attributeID uint) (uint, bool) {
	for _, a := range v.Assignments {
		if a.AttributeID == attributeID {
			return a.OptionID, true
		}
	}
	return 0, false
}

// ═══════════════════════════════════════════════════════════
// JSONB Scanner/Valuer for GORM (Custom slice types)
// ═══════════════════════════════════════════════════════════

// MediaList methods
func (m *MediaList) Scan(value interface{}) error {
	if value == nil {
		*m = make(MediaList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan MediaList")
	}
	return json.Unmarshal(bytes, m)
}

func (m MediaList) Value() (driver.Value, error) {
	if m == nil {
		return json.Marshal([]MediaURL{})
	}
	return json.Marshal(m)
}

// AssignmentList methods
func (a *AssignmentList) Scan(value interface{}) error {
	if value == nil {
		*a = make(AssignmentList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan AssignmentList")
	}
	return json.Unmarshal(bytes, a)
}

func (a AssignmentList) Value() (driver.Value, error) {
	if a == nil {
		return json.Marshal([]VariantAssignment{})
	}
	return json.Marshal(a)
}

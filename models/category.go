package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category represents a catalog category. Categories form a tree through
// ParentID; names are unique within a parent scope, slugs globally.
type Category struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey" db:"id"`
	Name      string     `json:"name" gorm:"not null;index" db:"name"`
	Slug      string     `json:"slug" gorm:"not null;uniqueIndex" db:"slug"`
	ParentID  *uuid.UUID `json:"parent_id" gorm:"type:uuid;index" db:"parent_id"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime" db:"updated_at"`

	// Relationships (GORM will handle these automatically)
	Parent   *Category   `json:"parent,omitempty" gorm:"foreignKey:ParentID;references:ID"`
	Children []*Category `json:"children,omitempty" gorm:"foreignKey:ParentID"`
}

// BeforeCreate hook - auto-generate UUID v7
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Category) TableName() string {
	return "categories"
}

// CategorySummary is the storefront-facing shape of a category, used in
// search results and in the catalog signature.
type CategorySummary struct {
	ID       uuid.UUID  `json:"id"`
	Name     string     `json:"name"`
	Slug     string     `json:"slug"`
	ParentID *uuid.UUID `json:"parent_id,omitempty"`
}

// Summary converts a Category to its storefront shape.
func (c *Category) Summary() CategorySummary {
	return CategorySummary{
		ID:       c.ID,
		Name:     c.Name,
		Slug:     c.Slug,
		ParentID: c.ParentID,
	}
}

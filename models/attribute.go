package models

import (
	"time"

	"github.com/google/uuid"
)

// Attribute is a per-category axis a variant can be distinguished by
// (e.g. "Color", "Storage"). Filterable attributes show up as storefront
// facets; non-filterable ones are display-only.
type Attribute struct {
	ID           uint      `json:"id" gorm:"primaryKey" db:"id"`
	Name         string    `json:"name" gorm:"not null" db:"name"`
	CategoryID   uuid.UUID `json:"category_id" gorm:"type:uuid;not null;index" db:"category_id"`
	Filterable   bool      `json:"filterable" gorm:"not null;default:false" db:"filterable"`
	DisplayOrder int       `json:"display_order" gorm:"not null;default:0" db:"display_order"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime" db:"updated_at"`

	Category *Category         `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
	Options  []AttributeOption `json:"options,omitempty" gorm:"foreignKey:AttributeID"`
}

// TableName specifies the table name
func (Attribute) TableName() string {
	return "attributes"
}

// AttributeOption is one selectable value of an attribute. Inactive options
// are excluded from every search and filter path but may still be referenced
// by existing variant assignments.
type AttributeOption struct {
	ID          uint      `json:"id" gorm:"primaryKey" db:"id"`
	Value       string    `json:"value" gorm:"not null" db:"value"`
	AttributeID uint      `json:"attribute_id" gorm:"not null;index" db:"attribute_id"`
	Active      bool      `json:"active" gorm:"not null;default:true" db:"active"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime" db:"created_at"`

	Attribute *Attribute `json:"attribute,omitempty" gorm:"foreignKey:AttributeID;references:ID"`
}

// TableName specifies the table name
func (AttributeOption) TableName() string {
	return "attribute_options"
}

// internal/models/product_page.go
package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ProductPage holds the product data a page is built from. Price is kept as
// the raw string the user entered (or the scanner found); export normalizes
// it at generation time.
type ProductPage struct {
	BaseModel
	OwnerID        uuid.UUID      `json:"owner_id" gorm:"type:uuid;not null;index"`
	Title          string         `json:"title" gorm:"not null" validate:"required,min=1,max=200"`
	ProductName    string         `json:"product_name"`
	Description    string         `json:"description" gorm:"type:text"`
	Price          string         `json:"price"`
	Features       pq.StringArray `json:"features" gorm:"type:text[]"`
	Images         pq.StringArray `json:"images" gorm:"type:text[]"`
	Specifications JSONBArray     `json:"specifications" gorm:"type:jsonb"`
	SourceURL      string         `json:"source_url,omitempty"`
	TemplateID     *uuid.UUID     `json:"template_id,omitempty" gorm:"type:uuid;index"`
	Status         PageStatus     `json:"status" gorm:"default:'draft';index"`

	// Relationships
	Owner    *User     `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Template *Template `json:"template,omitempty" gorm:"foreignKey:TemplateID"`
}

type Collection struct {
	BaseModel
	OwnerID            uuid.UUID      `json:"owner_id" gorm:"type:uuid;not null;index"`
	Name               string         `json:"name" gorm:"not null" validate:"required,min=1,max=200"`
	Description        string         `json:"description" gorm:"type:text"`
	Type               CollectionType `json:"type" gorm:"default:'grid'"`
	ProductPageIDs     pq.StringArray `json:"product_page_ids" gorm:"type:text[]"`
	ComparisonCriteria pq.StringArray `json:"comparison_criteria" gorm:"type:text[]"`

	Owner *User `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
}

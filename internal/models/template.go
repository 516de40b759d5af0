// internal/models/template.go
package models

import (
	"github.com/google/uuid"
)

// Template is a starter layout users can base a page on. Layout holds the
// ordered section list, Styling the color and font choices. Builtin templates
// have no owner; user-created ones belong to the user who saved them.
type Template struct {
	BaseModel
	OwnerID     *uuid.UUID `json:"owner_id,omitempty" gorm:"type:uuid;index"`
	Name        string     `json:"name" gorm:"not null;index"`
	Description string     `json:"description"`
	Category    string     `json:"category" gorm:"index"`
	Layout      JSONBArray `json:"layout" gorm:"type:jsonb"`
	Styling     JSONB      `json:"styling" gorm:"type:jsonb"`
	IsBuiltin   bool       `json:"is_builtin" gorm:"default:false"`
}

// TemplateCustomization stores a user's per-template overrides. One row per
// (template, owner) pair.
type TemplateCustomization struct {
	BaseModel
	TemplateID uuid.UUID  `json:"template_id" gorm:"type:uuid;not null;uniqueIndex:idx_customization_owner"`
	OwnerID    uuid.UUID  `json:"owner_id" gorm:"type:uuid;not null;uniqueIndex:idx_customization_owner"`
	Sections   JSONBArray `json:"sections" gorm:"type:jsonb"`
	Styling    JSONB      `json:"styling" gorm:"type:jsonb"`

	Template *Template `json:"template,omitempty" gorm:"foreignKey:TemplateID"`
}

// ExportRecord is an audit row written for every successful export.
type ExportRecord struct {
	BaseModel
	PageID   uuid.UUID `json:"page_id" gorm:"type:uuid;not null;index"`
	OwnerID  uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index"`
	Platform string    `json:"platform" gorm:"not null"`
	Filename string    `json:"filename"`
	ByteSize int       `json:"byte_size"`
}

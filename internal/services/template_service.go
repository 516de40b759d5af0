// internal/services/template_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageforge/pageforge-backend/internal/models"
	"github.com/pageforge/pageforge-backend/internal/utils"
)

type TemplateService struct {
	db *gorm.DB
}

type SaveCustomizationRequest struct {
	Sections []map[string]interface{} `json:"sections,omitempty"`
	Styling  map[string]interface{}   `json:"styling,omitempty"`
}

type CreateTemplateRequest struct {
	Name        string                   `json:"name" validate:"required,min=2,max=100"`
	Description string                   `json:"description" validate:"max=500"`
	Category    string                   `json:"category" validate:"max=50"`
	Layout      []map[string]interface{} `json:"layout,omitempty"`
	Styling     map[string]interface{}   `json:"styling,omitempty"`
}

type UpdateTemplateRequest struct {
	Name        *string                  `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Description *string                  `json:"description,omitempty" validate:"omitempty,max=500"`
	Category    *string                  `json:"category,omitempty" validate:"omitempty,max=50"`
	Layout      []map[string]interface{} `json:"layout,omitempty"`
	Styling     map[string]interface{}   `json:"styling,omitempty"`
}

func NewTemplateService(db *gorm.DB) *TemplateService {
	return &TemplateService{db: db}
}

// ListTemplates returns the builtin templates plus, when ownerID is set, the
// caller's own templates.
func (s *TemplateService) ListTemplates(ownerID *uuid.UUID) ([]models.Template, error) {
	query := s.db.Where("is_builtin = true")
	if ownerID != nil {
		query = s.db.Where("is_builtin = true OR owner_id = ?", *ownerID)
	}

	var templates []models.Template
	if err := query.Order("is_builtin desc, name asc").Find(&templates).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch templates: %w", err)
	}
	return templates, nil
}

func (s *TemplateService) GetTemplate(id uuid.UUID) (*models.Template, error) {
	var template models.Template
	if err := s.db.First(&template, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("template not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &template, nil
}

// CreateTemplate saves a user-owned template.
func (s *TemplateService) CreateTemplate(ownerID uuid.UUID, req *CreateTemplateRequest) (*models.Template, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	template := models.Template{
		OwnerID:     &ownerID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Layout:      models.JSONBArray(req.Layout),
		Styling:     models.JSONB(req.Styling),
	}
	if err := s.db.Create(&template).Error; err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}

	return &template, nil
}

// UpdateTemplate modifies a user-owned template. Builtin templates are
// read-only; use customizations to override them per user.
func (s *TemplateService) UpdateTemplate(id uuid.UUID, ownerID uuid.UUID, req *UpdateTemplateRequest) (*models.Template, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	template, err := s.GetTemplate(id)
	if err != nil {
		return nil, err
	}
	if template.IsBuiltin {
		return nil, errors.New("builtin templates cannot be modified")
	}
	if template.OwnerID == nil || *template.OwnerID != ownerID {
		return nil, errors.New("access denied")
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Layout != nil {
		updates["layout"] = models.JSONBArray(req.Layout)
	}
	if req.Styling != nil {
		updates["styling"] = models.JSONB(req.Styling)
	}

	if len(updates) > 0 {
		if err := s.db.Model(template).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update template: %w", err)
		}
	}

	return s.GetTemplate(id)
}

// DeleteTemplate removes a user-owned template and any customizations saved
// against it.
func (s *TemplateService) DeleteTemplate(id uuid.UUID, ownerID uuid.UUID) error {
	template, err := s.GetTemplate(id)
	if err != nil {
		return err
	}
	if template.IsBuiltin {
		return errors.New("builtin templates cannot be deleted")
	}
	if template.OwnerID == nil || *template.OwnerID != ownerID {
		return errors.New("access denied")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("template_id = ?", id).Delete(&models.TemplateCustomization{}).Error; err != nil {
			return fmt.Errorf("failed to delete customizations: %w", err)
		}
		if err := tx.Delete(template).Error; err != nil {
			return fmt.Errorf("failed to delete template: %w", err)
		}
		return nil
	})
}

// GetCustomization returns the user's overrides for a template, or nil when
// none have been saved yet.
func (s *TemplateService) GetCustomization(templateID uuid.UUID, ownerID uuid.UUID) (*models.TemplateCustomization, error) {
	if _, err := s.GetTemplate(templateID); err != nil {
		return nil, err
	}

	var customization models.TemplateCustomization
	err := s.db.Where("template_id = ? AND owner_id = ?", templateID, ownerID).
		First(&customization).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &customization, nil
}

// SaveCustomization upserts the user's overrides for a template.
func (s *TemplateService) SaveCustomization(templateID uuid.UUID, ownerID uuid.UUID, req *SaveCustomizationRequest) (*models.TemplateCustomization, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.GetTemplate(templateID); err != nil {
		return nil, err
	}

	var customization models.TemplateCustomization
	err := s.db.Where("template_id = ? AND owner_id = ?", templateID, ownerID).
		First(&customization).Error

	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("database error: %w", err)
		}

		customization = models.TemplateCustomization{
			TemplateID: templateID,
			OwnerID:    ownerID,
			Sections:   models.JSONBArray(req.Sections),
			Styling:    models.JSONB(req.Styling),
		}
		if err := s.db.Create(&customization).Error; err != nil {
			return nil, fmt.Errorf("failed to save customization: %w", err)
		}
		return &customization, nil
	}

	updates := make(map[string]interface{})
	if req.Sections != nil {
		updates["sections"] = models.JSONBArray(req.Sections)
	}
	if req.Styling != nil {
		updates["styling"] = models.JSONB(req.Styling)
	}

	if err := s.db.Model(&customization).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to save customization: %w", err)
	}

	s.db.First(&customization, customization.ID)

	return &customization, nil
}

// ResetCustomization drops the user's overrides so the template's defaults
// apply again.
func (s *TemplateService) ResetCustomization(templateID uuid.UUID, ownerID uuid.UUID) error {
	result := s.db.Where("template_id = ? AND owner_id = ?", templateID, ownerID).
		Delete(&models.TemplateCustomization{})
	if result.Error != nil {
		return fmt.Errorf("failed to reset customization: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("customization not found")
	}
	return nil
}

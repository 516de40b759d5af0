// internal/services/page_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/pageforge/pageforge-backend/internal/models"
	"github.com/pageforge/pageforge-backend/internal/utils"
)

type PageService struct {
	db *gorm.DB
}

type SpecificationInput struct {
	Name  string `json:"name" validate:"required"`
	Value string `json:"value"`
}

type CreatePageRequest struct {
	Title          string               `json:"title" validate:"required,min=1,max=200"`
	ProductName    string               `json:"product_name,omitempty"`
	Description    string               `json:"description,omitempty"`
	Price          string               `json:"price,omitempty"`
	Features       []string             `json:"features,omitempty"`
	Images         []string             `json:"images,omitempty"`
	Specifications []SpecificationInput `json:"specifications,omitempty" validate:"omitempty,dive"`
	SourceURL      string               `json:"source_url,omitempty" validate:"omitempty,url"`
	TemplateID     *uuid.UUID           `json:"template_id,omitempty"`
}

type UpdatePageRequest struct {
	Title          string               `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	ProductName    *string              `json:"product_name,omitempty"`
	Description    *string              `json:"description,omitempty"`
	Price          *string              `json:"price,omitempty"`
	Features       []string             `json:"features,omitempty"`
	Images         []string             `json:"images,omitempty"`
	Specifications []SpecificationInput `json:"specifications,omitempty" validate:"omitempty,dive"`
	TemplateID     *uuid.UUID           `json:"template_id,omitempty"`
	Status         models.PageStatus    `json:"status,omitempty"`
}

type PageSearchParams struct {
	utils.PaginationParams
	TemplateID *uuid.UUID `json:"template_id,omitempty"`
}

func NewPageService(db *gorm.DB) *PageService {
	return &PageService{db: db}
}

func (s *PageService) CreatePage(ownerID uuid.UUID, req *CreatePageRequest) (*models.ProductPage, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.TemplateID != nil {
		if err := s.verifyTemplate(*req.TemplateID); err != nil {
			return nil, err
		}
	}

	page := &models.ProductPage{
		OwnerID:        ownerID,
		Title:          req.Title,
		ProductName:    req.ProductName,
		Description:    req.Description,
		Price:          req.Price,
		Features:       req.Features,
		Images:         req.Images,
		Specifications: specificationsToJSONB(req.Specifications),
		SourceURL:      req.SourceURL,
		TemplateID:     req.TemplateID,
		Status:         models.PageStatusDraft,
	}

	if err := s.db.Create(page).Error; err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	s.db.Preload("Template").First(page, page.ID)

	return page, nil
}

func (s *PageService) GetPage(id uuid.UUID, ownerID uuid.UUID) (*models.ProductPage, error) {
	var page models.ProductPage
	if err := s.db.Preload("Template").First(&page, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("page not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if page.OwnerID != ownerID {
		return nil, errors.New("page not found")
	}

	return &page, nil
}

func (s *PageService) UpdatePage(id uuid.UUID, ownerID uuid.UUID, req *UpdatePageRequest) (*models.ProductPage, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Find and verify ownership
	var page models.ProductPage
	if err := s.db.First(&page, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("page not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if page.OwnerID != ownerID {
		return nil, errors.New("unauthorized to update this page")
	}

	// Prepare updates. Pointer fields distinguish "clear" from "leave as is".
	updates := make(map[string]interface{})
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.ProductName != nil {
		updates["product_name"] = *req.ProductName
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Features != nil {
		updates["features"] = pq.StringArray(req.Features)
	}
	if req.Images != nil {
		updates["images"] = pq.StringArray(req.Images)
	}
	if req.Specifications != nil {
		updates["specifications"] = specificationsToJSONB(req.Specifications)
	}
	if req.TemplateID != nil {
		if err := s.verifyTemplate(*req.TemplateID); err != nil {
			return nil, err
		}
		updates["template_id"] = *req.TemplateID
	}
	if req.Status != "" {
		if req.Status != models.PageStatusDraft && req.Status != models.PageStatusPublished {
			return nil, errors.New("invalid page status")
		}
		updates["status"] = req.Status
	}

	// Apply updates
	if err := s.db.Model(&page).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update page: %w", err)
	}

	// Reload with relationships
	s.db.Preload("Template").First(&page, id)

	return &page, nil
}

func (s *PageService) DeletePage(id uuid.UUID, ownerID uuid.UUID) error {
	// Find and verify ownership
	var page models.ProductPage
	if err := s.db.First(&page, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("page not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	if page.OwnerID != ownerID {
		return errors.New("unauthorized to delete this page")
	}

	// Soft delete
	if err := s.db.Delete(&page).Error; err != nil {
		return fmt.Errorf("failed to delete page: %w", err)
	}

	return nil
}

func (s *PageService) SearchPages(ownerID uuid.UUID, params PageSearchParams) ([]models.ProductPage, int64, error) {
	query := s.db.Model(&models.ProductPage{}).
		Preload("Template").
		Where("owner_id = ?", ownerID)

	// Apply filters
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}

	if params.TemplateID != nil {
		query = query.Where("template_id = ?", *params.TemplateID)
	}

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(product_name) LIKE ? OR LOWER(description) LIKE ?",
			searchTerm, searchTerm, searchTerm)
	}

	// Get total count
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count pages: %w", err)
	}

	// Apply sorting
	allowedSortFields := []string{"created_at", "updated_at", "title"}
	query = utils.ApplySort(query, params.PaginationParams, allowedSortFields)

	// Apply pagination
	query = utils.ApplyPagination(query, params.PaginationParams)

	// Execute query
	var pages []models.ProductPage
	if err := query.Find(&pages).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch pages: %w", err)
	}

	return pages, total, nil
}

func (s *PageService) verifyTemplate(templateID uuid.UUID) error {
	var count int64
	if err := s.db.Model(&models.Template{}).Where("id = ?", templateID).Count(&count).Error; err != nil {
		return fmt.Errorf("database error: %w", err)
	}
	if count == 0 {
		return errors.New("template not found")
	}
	return nil
}

func specificationsToJSONB(specs []SpecificationInput) models.JSONBArray {
	if specs == nil {
		return nil
	}
	out := make(models.JSONBArray, 0, len(specs))
	for _, spec := range specs {
		out = append(out, map[string]interface{}{
			"name":  spec.Name,
			"value": spec.Value,
		})
	}
	return out
}

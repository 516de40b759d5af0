// internal/services/collection_service.go
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

type CollectionService struct {
	db *gorm.DB
}

type CreateCollectionRequest struct {
	Name               string                `json:"name" validate:"required,min=1,max=200"`
	Description        string                `json:"description,omitempty"`
	Type               models.CollectionType `json:"type,omitempty"`
	ProductPageIDs     []string              `json:"product_page_ids,omitempty" validate:"omitempty,dive,uuid"`
	ComparisonCriteria []string              `json:"comparison_criteria,omitempty"`
}

type UpdateCollectionRequest struct {
	Name               string                `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description        *string               `json:"description,omitempty"`
	Type               models.CollectionType `json:"type,omitempty"`
	ProductPageIDs     []string              `json:"product_page_ids,omitempty" validate:"omitempty,dive,uuid"`
	ComparisonCriteria []string              `json:"comparison_criteria,omitempty"`
}

func NewCollectionService(db *gorm.DB) *CollectionService {
	return &CollectionService{db: db}
}

func (s *CollectionService) CreateCollection(ownerID uuid.UUID, req *CreateCollectionRequest) (*models.Collection, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	collectionType := req.Type
	if collectionType == "" {
		collectionType = models.CollectionTypeGrid
	}
	if collectionType != models.CollectionTypeGrid && collectionType != models.CollectionTypeComparison {
		return nil, errors.New("invalid collection type")
	}

	if err := s.verifyPageOwnership(ownerID, req.ProductPageIDs); err != nil {
		return nil, err
	}

	collection := &models.Collection{
		OwnerID:            ownerID,
		Name:               req.Name,
		Description:        req.Description,
		Type:               collectionType,
		ProductPageIDs:     req.ProductPageIDs,
		ComparisonCriteria: req.ComparisonCriteria,
	}

	if err := s.db.Create(collection).Error; err != nil {
		return nil, fmt.Errorf("failed to create collection: %w", err)
	}

	return collection, nil
}

func (s *CollectionService) GetCollection(id uuid.UUID, ownerID uuid.UUID) (*models.Collection, error) {
	var collection models.Collection
	if err := s.db.First(&collection, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("collection not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if collection.OwnerID != ownerID {
		return nil, errors.New("collection not found")
	}

	return &collection, nil
}

// GetCollectionPages resolves the member page IDs in their stored order.
func (s *CollectionService) GetCollectionPages(id uuid.UUID, ownerID uuid.UUID) (*models.Collection, []models.ProductPage, error) {
	collection, err := s.GetCollection(id, ownerID)
	if err != nil {
		return nil, nil, err
	}

	if len(collection.ProductPageIDs) == 0 {
		return collection, []models.ProductPage{}, nil
	}

	var pages []models.ProductPage
	if err := s.db.Where("id IN ? AND owner_id = ?", []string(collection.ProductPageIDs), ownerID).
		Find(&pages).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to fetch collection pages: %w", err)
	}

	byID := make(map[string]models.ProductPage, len(pages))
	for _, page := range pages {
		byID[page.ID.String()] = page
	}

	ordered := make([]models.ProductPage, 0, len(collection.ProductPageIDs))
	for _, pageID := range collection.ProductPageIDs {
		if page, ok := byID[pageID]; ok {
			ordered = append(ordered, page)
		}
	}

	return collection, ordered, nil
}

func (s *CollectionService) UpdateCollection(id uuid.UUID, ownerID uuid.UUID, req *UpdateCollectionRequest) (*models.Collection, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Find and verify ownership
	var collection models.Collection
	if err := s.db.First(&collection, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("collection not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if collection.OwnerID != ownerID {
		return nil, errors.New("unauthorized to update this collection")
	}

	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Type != "" {
		if req.Type != models.CollectionTypeGrid && req.Type != models.CollectionTypeComparison {
			return nil, errors.New("invalid collection type")
		}
		updates["type"] = req.Type
	}
	if req.ProductPageIDs != nil {
		if err := s.verifyPageOwnership(ownerID, req.ProductPageIDs); err != nil {
			return nil, err
		}
		updates["product_page_ids"] = pq.StringArray(req.ProductPageIDs)
	}
	if req.ComparisonCriteria != nil {
		updates["comparison_criteria"] = pq.StringArray(req.ComparisonCriteria)
	}

	if err := s.db.Model(&collection).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update collection: %w", err)
	}

	s.db.First(&collection, id)

	return &collection, nil
}

func (s *CollectionService) DeleteCollection(id uuid.UUID, ownerID uuid.UUID) error {
	var collection models.Collection
	if err := s.db.First(&collection, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("collection not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	if collection.OwnerID != ownerID {
		return errors.New("unauthorized to delete this collection")
	}

	if err := s.db.Delete(&collection).Error; err != nil {
		return fmt.Errorf("failed to delete collection: %w", err)
	}

	return nil
}

func (s *CollectionService) ListCollections(ownerID uuid.UUID, params utils.PaginationParams) ([]models.Collection, int64, error) {
	query := s.db.Model(&models.Collection{}).Where("owner_id = ?", ownerID)

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", searchTerm, searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count collections: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "name"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var collections []models.Collection
	if err := query.Find(&collections).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch collections: %w", err)
	}

	return collections, total, nil
}

func (s *CollectionService) verifyPageOwnership(ownerID uuid.UUID, pageIDs []string) error {
	if len(pageIDs) == 0 {
		return nil
	}

	var count int64
	if err := s.db.Model(&models.ProductPage{}).
		Where("id IN ? AND owner_id = ?", pageIDs, ownerID).
		Count(&count).Error; err != nil {
		return fmt.Errorf("database error: %w", err)
	}

	if count != int64(len(pageIDs)) {
		return errors.New("one or more pages not found")
	}

	return nil
}

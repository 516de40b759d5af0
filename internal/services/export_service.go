// internal/services/export_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/pageforge/pageforge-backend/internal/export"
	"github.com/pageforge/pageforge-backend/internal/models"
	"github.com/pageforge/pageforge-backend/internal/utils"
)

type ExportService struct {
	db          *gorm.DB
	pageService *PageService
}

type ExportRequest struct {
	Platform string `json:"platform" validate:"required,platform"`
}

// PreviewRequest carries inline product data so the editor can render
// documents for pages that have not been saved yet.
type PreviewRequest struct {
	Platform       string               `json:"platform" validate:"required,platform"`
	ProductName    string               `json:"product_name,omitempty"`
	Description    string               `json:"description,omitempty"`
	Price          export.Price         `json:"price,omitempty"`
	Features       []string             `json:"features,omitempty"`
	Images         []string             `json:"images,omitempty"`
	Specifications []SpecificationInput `json:"specifications,omitempty" validate:"omitempty,dive"`
}

type ExportResult struct {
	Platform string `json:"platform"`
	Filename string `json:"filename"`
	Document string `json:"document"`
	ByteSize int    `json:"byte_size"`
}

func NewExportService(db *gorm.DB, pageService *PageService) *ExportService {
	return &ExportService{
		db:          db,
		pageService: pageService,
	}
}

// ExportPage renders a saved page for the requested platform and records the
// export.
func (s *ExportService) ExportPage(pageID uuid.UUID, ownerID uuid.UUID, req *ExportRequest) (*ExportResult, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	page, err := s.pageService.GetPage(pageID, ownerID)
	if err != nil {
		return nil, err
	}

	platform, err := export.ParsePlatform(req.Platform)
	if err != nil {
		return nil, err
	}

	product := pageToProduct(page)

	result, err := s.render(product, platform)
	if err != nil {
		return nil, err
	}

	record := &models.ExportRecord{
		PageID:   page.ID,
		OwnerID:  ownerID,
		Platform: string(platform),
		Filename: result.Filename,
		ByteSize: result.ByteSize,
	}
	if err := s.db.Create(record).Error; err != nil {
		logrus.WithError(err).Error("Failed to record export")
	}

	return result, nil
}

// Preview renders inline product data without touching the database.
func (s *ExportService) Preview(req *PreviewRequest) (*ExportResult, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	platform, err := export.ParsePlatform(req.Platform)
	if err != nil {
		return nil, err
	}

	product := &export.Product{
		ProductName: req.ProductName,
		Description: req.Description,
		Price:       req.Price,
		Features:    req.Features,
		Images:      req.Images,
	}
	for _, spec := range req.Specifications {
		product.Specifications = append(product.Specifications, export.Specification{
			Name:  spec.Name,
			Value: spec.Value,
		})
	}

	return s.render(product, platform)
}

type PlatformDescriptor struct {
	Platform string `json:"platform"`
	export.PlatformInfo
}

// Platforms lists the supported export targets with their metadata.
func (s *ExportService) Platforms() []PlatformDescriptor {
	platforms := export.Platforms()
	out := make([]PlatformDescriptor, 0, len(platforms))
	for _, p := range platforms {
		info, err := export.GetPlatformInfo(p)
		if err != nil {
			continue
		}
		out = append(out, PlatformDescriptor{
			Platform:     string(p),
			PlatformInfo: info,
		})
	}
	return out
}

func (s *ExportService) ListExports(ownerID uuid.UUID, params utils.PaginationParams) ([]models.ExportRecord, int64, error) {
	query := s.db.Model(&models.ExportRecord{}).Where("owner_id = ?", ownerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count exports: %w", err)
	}

	allowedSortFields := []string{"created_at", "platform"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var records []models.ExportRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch exports: %w", err)
	}

	return records, total, nil
}

func (s *ExportService) render(product *export.Product, platform export.Platform) (*ExportResult, error) {
	document, err := export.Generate(product, platform)
	if err != nil {
		if errors.Is(err, export.ErrUnknownPlatform) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to generate document: %w", err)
	}

	filename, err := export.Filename(product, platform)
	if err != nil {
		return nil, err
	}

	return &ExportResult{
		Platform: string(platform),
		Filename: filename,
		Document: document,
		ByteSize: len(document),
	}, nil
}

func pageToProduct(page *models.ProductPage) *export.Product {
	name := page.ProductName
	if name == "" {
		name = page.Title
	}

	product := &export.Product{
		ProductName: name,
		Description: page.Description,
		Price:       export.Price(page.Price),
		Features:    page.Features,
		Images:      page.Images,
	}

	for _, spec := range page.Specifications {
		specName, _ := spec["name"].(string)
		specValue, _ := spec["value"].(string)
		if specName == "" {
			continue
		}
		product.Specifications = append(product.Specifications, export.Specification{
			Name:  specName,
			Value: specValue,
		})
	}

	return product
}

// internal/handlers/export.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pageforge/pageforge-backend/internal/export"
	"github.com/pageforge/pageforge-backend/internal/services"
	"github.com/pageforge/pageforge-backend/internal/utils"
)

type ExportHandler struct {
	exportService *services.ExportService
}

func NewExportHandler(exportService *services.ExportService) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
	}
}

// POST /pages/:id/export
func (h *ExportHandler) ExportPage(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	pageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid page ID", nil)
		return
	}

	var req services.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	result, err := h.exportService.ExportPage(pageID, userID, &req)
	if err != nil {
		if err.Error() == "page not found" {
			utils.NotFoundResponse(c, "Page")
			return
		}
		writeExportError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

// POST /export/preview
func (h *ExportHandler) Preview(c *gin.Context) {
	var req services.PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	result, err := h.exportService.Preview(&req)
	if err != nil {
		writeExportError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

// writeExportError maps engine errors onto the response envelope. An unknown
// platform gets its own code so clients can tell it apart from field errors.
func writeExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, export.ErrUnknownPlatform):
		utils.ErrorResponse(c, http.StatusBadRequest, "UNKNOWN_PLATFORM", err.Error(), nil)
	case errors.Is(err, export.ErrInvalidProduct):
		utils.ErrorResponse(c, http.StatusBadRequest, "INVALID_PRODUCT", err.Error(), nil)
	default:
		utils.BadRequestResponse(c, err.Error(), nil)
	}
}

// GET /export/platforms
func (h *ExportHandler) ListPlatforms(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{"platforms": h.exportService.Platforms()})
}

// GET /export/history
func (h *ExportHandler) ListExports(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	params := utils.GetPaginationParams(c)

	records, total, err := h.exportService.ListExports(userID, params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(records, total, params))
}

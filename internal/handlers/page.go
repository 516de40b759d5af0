// internal/handlers/page.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pageforge/pageforge-backend/internal/services"
	"github.com/pageforge/pageforge-backend/internal/utils"
)

type PageHandler struct {
	pageService *services.PageService
}

func NewPageHandler(pageService *services.PageService) *PageHandler {
	return &PageHandler{
		pageService: pageService,
	}
}

// POST /pages
func (h *PageHandler) CreatePage(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req services.CreatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	page, err := h.pageService.CreatePage(userID, &req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{"page": page})
}

// GET /pages
func (h *PageHandler) ListPages(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	params := services.PageSearchParams{
		PaginationParams: utils.GetPaginationParams(c),
	}

	if templateID := c.Query("template_id"); templateID != "" {
		parsed, err := uuid.Parse(templateID)
		if err != nil {
			utils.BadRequestResponse(c, "Invalid template ID", nil)
			return
		}
		params.TemplateID = &parsed
	}

	pages, total, err := h.pageService.SearchPages(userID, params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(pages, total, params.PaginationParams))
}

// GET /pages/:id
func (h *PageHandler) GetPage(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	pageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid page ID", nil)
		return
	}

	page, err := h.pageService.GetPage(pageID, userID)
	if err != nil {
		utils.NotFoundResponse(c, "Page")
		return
	}

	utils.SuccessResponse(c, gin.H{"page": page})
}

// PUT /pages/:id
func (h *PageHandler) UpdatePage(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	pageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid page ID", nil)
		return
	}

	var req services.UpdatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	page, err := h.pageService.UpdatePage(pageID, userID, &req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{"page": page})
}

// DELETE /pages/:id
func (h *PageHandler) DeletePage(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	pageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid page ID", nil)
		return
	}

	if err := h.pageService.DeletePage(pageID, userID); err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{"deleted": true})
}

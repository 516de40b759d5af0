// internal/handlers/content.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/pageforge/pageforge-backend/internal/services"
	"github.com/pageforge/pageforge-backend/internal/utils"
)

type ContentHandler struct {
	contentService *services.ContentService
}

func NewContentHandler(contentService *services.ContentService) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
	}
}

// POST /content/generate
func (h *ContentHandler) GenerateContent(c *gin.Context) {
	var req services.GenerateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	content, err := h.contentService.GenerateContent(&req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, content)
}

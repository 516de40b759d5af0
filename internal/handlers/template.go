// internal/handlers/template.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pageforge/pageforge-backend/internal/services"
	"github.com/pageforge/pageforge-backend/internal/utils"
)

type TemplateHandler struct {
	templateService *services.TemplateService
}

func NewTemplateHandler(templateService *services.TemplateService) *TemplateHandler {
	return &TemplateHandler{
		templateService: templateService,
	}
}

// GET /templates
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	var ownerID *uuid.UUID
	if userIDStr, exists := utils.GetUserIDFromContext(c); exists {
		if userID, err := uuid.Parse(userIDStr); err == nil {
			ownerID = &userID
		}
	}

	templates, err := h.templateService.ListTemplates(ownerID)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{"templates": templates})
}

// POST /templates
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req services.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	template, err := h.templateService.CreateTemplate(userID, &req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{"template": template})
}

// PUT /templates/:id
func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid template ID", nil)
		return
	}

	var req services.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	template, err := h.templateService.UpdateTemplate(templateID, userID, &req)
	if err != nil {
		switch err.Error() {
		case "template not found":
			utils.NotFoundResponse(c, "Template")
		case "access denied", "builtin templates cannot be modified":
			utils.ForbiddenResponse(c, err.Error())
		default:
			utils.BadRequestResponse(c, err.Error(), nil)
		}
		return
	}

	utils.SuccessResponse(c, gin.H{"template": template})
}

// DELETE /templates/:id
func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid template ID", nil)
		return
	}

	if err := h.templateService.DeleteTemplate(templateID, userID); err != nil {
		switch err.Error() {
		case "template not found":
			utils.NotFoundResponse(c, "Template")
		case "access denied", "builtin templates cannot be deleted":
			utils.ForbiddenResponse(c, err.Error())
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	utils.SuccessResponse(c, gin.H{"deleted": true})
}

// GET /templates/:id
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid template ID", nil)
		return
	}

	template, err := h.templateService.GetTemplate(templateID)
	if err != nil {
		utils.NotFoundResponse(c, "Template")
		return
	}

	utils.SuccessResponse(c, gin.H{"template": template})
}

// GET /templates/:id/customization
func (h *TemplateHandler) GetCustomization(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid template ID", nil)
		return
	}

	customization, err := h.templateService.GetCustomization(templateID, userID)
	if err != nil {
		utils.NotFoundResponse(c, "Template")
		return
	}

	utils.SuccessResponse(c, gin.H{"customization": customization})
}

// PUT /templates/:id/customization
func (h *TemplateHandler) SaveCustomization(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid template ID", nil)
		return
	}

	var req services.SaveCustomizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	customization, err := h.templateService.SaveCustomization(templateID, userID, &req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{"customization": customization})
}

// DELETE /templates/:id/customization
func (h *TemplateHandler) ResetCustomization(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid template ID", nil)
		return
	}

	if err := h.templateService.ResetCustomization(templateID, userID); err != nil {
		utils.NotFoundResponse(c, "Customization")
		return
	}

	utils.SuccessResponse(c, gin.H{"reset": true})
}

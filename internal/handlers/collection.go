// internal/handlers/collection.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pageforge/pageforge-backend/internal/services"
	"github.com/pageforge/pageforge-backend/internal/utils"
)

type CollectionHandler struct {
	collectionService *services.CollectionService
}

func NewCollectionHandler(collectionService *services.CollectionService) *CollectionHandler {
	return &CollectionHandler{
		collectionService: collectionService,
	}
}

// POST /collections
func (h *CollectionHandler) CreateCollection(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req services.CreateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	collection, err := h.collectionService.CreateCollection(userID, &req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{"collection": collection})
}

// GET /collections
func (h *CollectionHandler) ListCollections(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	params := utils.GetPaginationParams(c)

	collections, total, err := h.collectionService.ListCollections(userID, params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(collections, total, params))
}

// GET /collections/:id
func (h *CollectionHandler) GetCollection(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	collectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid collection ID", nil)
		return
	}

	collection, pages, err := h.collectionService.GetCollectionPages(collectionID, userID)
	if err != nil {
		utils.NotFoundResponse(c, "Collection")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"collection": collection,
		"pages":      pages,
	})
}

// PUT /collections/:id
func (h *CollectionHandler) UpdateCollection(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	collectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid collection ID", nil)
		return
	}

	var req services.UpdateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	collection, err := h.collectionService.UpdateCollection(collectionID, userID, &req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{"collection": collection})
}

// DELETE /collections/:id
func (h *CollectionHandler) DeleteCollection(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	collectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid collection ID", nil)
		return
	}

	if err := h.collectionService.DeleteCollection(collectionID, userID); err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{"deleted": true})
}

// internal/handlers/category.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/shopora/storefront-api/internal/services"
	"github.com/shopora/storefront-api/internal/utils"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
}

func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// GET /categories
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.GetCategories()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"categories": categories})
}

// GET /categories/:slug
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	category, err := h.categoryService.GetCategoryBySlug(c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"category": category})
}

// POST /categories (admin)
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req services.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	category, err := h.categoryService.CreateCategory(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"category": category})
}

// PUT /categories/:slug (admin)
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	existing, err := h.categoryService.GetCategoryBySlug(c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	var req services.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	category, err := h.categoryService.UpdateCategory(existing.ID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"category": category})
}

// DELETE /categories/:slug (admin)
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	existing, err := h.categoryService.GetCategoryBySlug(c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if err := h.categoryService.DeleteCategory(existing.ID); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Category deleted"})
}

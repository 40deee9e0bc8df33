// internal/handlers/carousel.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shopora/storefront-api/internal/services"
	"github.com/shopora/storefront-api/internal/utils"
)

type CarouselHandler struct {
	carouselService *services.CarouselService
}

func NewCarouselHandler(carouselService *services.CarouselService) *CarouselHandler {
	return &CarouselHandler{carouselService: carouselService}
}

// GET /carousel
func (h *CarouselHandler) ListSlides(c *gin.Context) {
	slides, err := h.carouselService.ListSlides(isAdmin(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"slides": slides})
}

// POST /carousel (admin)
func (h *CarouselHandler) CreateSlide(c *gin.Context) {
	var req services.CarouselRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	slide, err := h.carouselService.CreateSlide(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"slide": slide})
}

// PUT /carousel/:id (admin)
func (h *CarouselHandler) UpdateSlide(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid slide ID", nil)
		return
	}

	var req services.CarouselRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	slide, err := h.carouselService.UpdateSlide(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"slide": slide})
}

// DELETE /carousel/:id (admin)
func (h *CarouselHandler) DeleteSlide(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid slide ID", nil)
		return
	}

	if err := h.carouselService.DeleteSlide(id); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Slide deleted"})
}

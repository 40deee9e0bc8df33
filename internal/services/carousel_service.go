// internal/services/carousel_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopora/storefront-api/internal/models"
	"github.com/shopora/storefront-api/internal/utils"
)

type CarouselService struct {
	db *gorm.DB
}

type CarouselRequest struct {
	Title    string `json:"title" validate:"required,max=255"`
	ImageURL string `json:"image_url" validate:"required,url"`
	LinkURL  string `json:"link_url,omitempty" validate:"omitempty,url"`
	Position int    `json:"position" validate:"gte=0"`
	Active   *bool  `json:"active,omitempty"`
}

func NewCarouselService(db *gorm.DB) *CarouselService {
	return &CarouselService{db: db}
}

func (s *CarouselService) CreateSlide(req *CarouselRequest) (*models.Carousel, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	slide := &models.Carousel{
		Title:    req.Title,
		ImageURL: req.ImageURL,
		LinkURL:  req.LinkURL,
		Position: req.Position,
		Active:   true,
	}
	if req.Active != nil {
		slide.Active = *req.Active
	}

	if err := s.db.Create(slide).Error; err != nil {
		return nil, fmt.Errorf("failed to create slide: %w", err)
	}

	return slide, nil
}

// ListSlides returns active slides ordered by position for the storefront.
func (s *CarouselService) ListSlides(includeInactive bool) ([]models.Carousel, error) {
	query := s.db.Order("position ASC, created_at ASC")
	if !includeInactive {
		query = query.Where("active = ?", true)
	}

	var slides []models.Carousel
	if err := query.Find(&slides).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch slides: %w", err)
	}
	return slides, nil
}

func (s *CarouselService) UpdateSlide(id uuid.UUID, req *CarouselRequest) (*models.Carousel, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var slide models.Carousel
	if err := s.db.First(&slide, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("slide: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	slide.Title = req.Title
	slide.ImageURL = req.ImageURL
	slide.LinkURL = req.LinkURL
	slide.Position = req.Position
	if req.Active != nil {
		slide.Active = *req.Active
	}

	if err := s.db.Save(&slide).Error; err != nil {
		return nil, fmt.Errorf("failed to update slide: %w", err)
	}

	return &slide, nil
}

func (s *CarouselService) DeleteSlide(id uuid.UUID) error {
	res := s.db.Unscoped().Delete(&models.Carousel{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete slide: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("slide: %w", ErrNotFound)
	}
	return nil
}

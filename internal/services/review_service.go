// internal/services/review_service.go
package services

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopora/storefront-api/internal/models"
	"github.com/shopora/storefront-api/internal/utils"
)

// ReviewService owns reviews and the cached rating aggregate on products.
// Every review mutation rescans the product's reviews and persists the new
// count and mean; reads trust the cached fields.
type ReviewService struct {
	db *gorm.DB
}

type CreateReviewRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Rating    int       `json:"rating" validate:"required,min=1,max=5"`
	Comment   string    `json:"comment" validate:"max=500"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment,omitempty" validate:"omitempty,max=500"`
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

func (s *ReviewService) CreateReview(userID uuid.UUID, req *CreateReviewRequest) (*models.Review, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var product models.Product
	if err := s.db.First(&product, req.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	var existing models.Review
	err := s.db.Where("product_id = ? AND user_id = ?", req.ProductID, userID).
		First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("review for this product: %w", ErrConflict)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("database error: %w", err)
	}

	review := &models.Review{
		ProductID: req.ProductID,
		UserID:    userID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			return fmt.Errorf("failed to create review: %w", err)
		}
		return s.recomputeAggregate(tx, req.ProductID)
	})
	if err != nil {
		return nil, err
	}

	s.db.Preload("User").First(review, review.ID)
	return review, nil
}

func (s *ReviewService) UpdateReview(reviewID, requesterID uuid.UUID, req *UpdateReviewRequest) (*models.Review, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	review, err := s.findOwnedReview(reviewID, requesterID)
	if err != nil {
		return nil, err
	}

	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Comment != nil {
		review.Comment = *req.Comment
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(review).Error; err != nil {
			return fmt.Errorf("failed to update review: %w", err)
		}
		return s.recomputeAggregate(tx, review.ProductID)
	})
	if err != nil {
		return nil, err
	}

	return review, nil
}

func (s *ReviewService) DeleteReview(reviewID, requesterID uuid.UUID) error {
	review, err := s.findOwnedReview(reviewID, requesterID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Delete(review).Error; err != nil {
			return fmt.Errorf("failed to delete review: %w", err)
		}
		return s.recomputeAggregate(tx, review.ProductID)
	})
}

// GetProductReviews returns the product's reviews newest first together with
// the cached aggregate from the product row.
func (s *ReviewService) GetProductReviews(productID uuid.UUID) ([]models.Review, *models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("product: %w", ErrNotFound)
		}
		return nil, nil, fmt.Errorf("database error: %w", err)
	}

	var reviews []models.Review
	if err := s.db.Preload("User").
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}

	return reviews, &product, nil
}

func (s *ReviewService) findOwnedReview(reviewID, requesterID uuid.UUID) (*models.Review, error) {
	var review models.Review
	if err := s.db.First(&review, reviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("review: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if review.UserID != requesterID {
		return nil, fmt.Errorf("review belongs to another user: %w", ErrForbidden)
	}

	return &review, nil
}

// recomputeAggregate rescans all reviews for the product and persists the
// cached count and mean. O(n) per mutation, fine at this scale.
func (s *ReviewService) recomputeAggregate(tx *gorm.DB, productID uuid.UUID) error {
	var stats struct {
		Count int64
		Avg   float64
	}

	if err := tx.Model(&models.Review{}).
		Where("product_id = ?", productID).
		Select("COUNT(*) AS count, COALESCE(AVG(rating), 0) AS avg").
		Scan(&stats).Error; err != nil {
		return fmt.Errorf("failed to aggregate reviews: %w", err)
	}

	if err := tx.Model(&models.Product{}).
		Where("id = ?", productID).
		Updates(map[string]interface{}{
			"average_rating": RoundRating(stats.Avg),
			"total_reviews":  stats.Count,
		}).Error; err != nil {
		return fmt.Errorf("failed to update product aggregate: %w", err)
	}

	return nil
}

// RoundRating rounds a mean rating to one decimal place.
func RoundRating(v float64) float64 {
	return math.Round(v*10) / 10
}

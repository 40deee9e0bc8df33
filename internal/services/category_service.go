// internal/services/category_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopora/storefront-api/internal/models"
	"github.com/shopora/storefront-api/internal/utils"
)

type CategoryService struct {
	db *gorm.DB
}

type CategoryRequest struct {
	Name string `json:"name" validate:"required,min=3,max=100"`
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) CreateCategory(req *CategoryRequest) (*models.Category, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	slug := utils.Slugify(req.Name)

	var count int64
	s.db.Model(&models.Category{}).
		Where("name = ? OR slug = ?", req.Name, slug).Count(&count)
	if count > 0 {
		return nil, fmt.Errorf("category %q: %w", req.Name, ErrConflict)
	}

	category := &models.Category{Name: req.Name, Slug: slug}
	if err := s.db.Create(category).Error; err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

func (s *CategoryService) GetCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return categories, nil
}

func (s *CategoryService) GetCategoryBySlug(slug string) (*models.Category, error) {
	var category models.Category
	if err := s.db.Where("slug = ?", slug).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &category, nil
}

func (s *CategoryService) UpdateCategory(id uuid.UUID, req *CategoryRequest) (*models.Category, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	slug := utils.Slugify(req.Name)

	var count int64
	s.db.Model(&models.Category{}).
		Where("(name = ? OR slug = ?) AND id <> ?", req.Name, slug, id).Count(&count)
	if count > 0 {
		return nil, fmt.Errorf("category %q: %w", req.Name, ErrConflict)
	}

	category.Name = req.Name
	category.Slug = slug
	if err := s.db.Save(&category).Error; err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &category, nil
}

// DeleteCategory is restricted while products still reference the category.
func (s *CategoryService) DeleteCategory(id uuid.UUID) error {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("category: %w", ErrNotFound)
		}
		return fmt.Errorf("database error: %w", err)
	}

	var productCount int64
	if err := s.db.Model(&models.Product{}).
		Where("category_id = ?", id).Count(&productCount).Error; err != nil {
		return fmt.Errorf("failed to check references: %w", err)
	}
	if productCount > 0 {
		return fmt.Errorf("category still referenced by %d products: %w", productCount, ErrConflict)
	}

	if err := s.db.Unscoped().Delete(&category).Error; err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return nil
}

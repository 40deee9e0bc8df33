// internal/services/cart_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopora/storefront-api/internal/models"
	"github.com/shopora/storefront-api/internal/utils"
)

// CartService maintains the single active cart per user.
//
// Price policy: a line item's price is re-synced to the live catalog price on
// every add/update, so the cart total always matches what checkout will
// charge. Totals are recomputed after every mutation and cart saves are
// compare-and-swap on the cart's version column; a concurrent writer makes
// the save fail with ErrConflict instead of silently losing the update.
type CartService struct {
	db *gorm.DB
}

type CartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db}
}

func (s *CartService) AddItem(userID uuid.UUID, req *CartItemRequest) (*models.Cart, error) {
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

	cart, err := s.loadCart(userID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		// First add creates the cart.
		cart = &models.Cart{UserID: userID, Version: 1}
		if err := s.db.Create(cart).Error; err != nil {
			return nil, fmt.Errorf("failed to create cart: %w", err)
		}
	}

	requested := req.Quantity
	if existing := cart.FindItem(product.ID); existing != nil {
		requested += existing.Quantity
	}
	if !product.InStock(requested) {
		return nil, fmt.Errorf("product %q: %w", product.Title, ErrInsufficientStock)
	}

	if existing := cart.FindItem(product.ID); existing != nil {
		existing.Quantity = requested
		existing.Price = product.Price
		if err := s.db.Save(existing).Error; err != nil {
			return nil, fmt.Errorf("failed to update cart item: %w", err)
		}
	} else {
		item := models.CartItem{
			CartID:    cart.ID,
			ProductID: product.ID,
			Quantity:  req.Quantity,
			Price:     product.Price,
		}
		if err := s.db.Create(&item).Error; err != nil {
			return nil, fmt.Errorf("failed to add cart item: %w", err)
		}
		cart.Items = append(cart.Items, item)
	}

	if err := s.saveTotals(cart); err != nil {
		return nil, err
	}

	return s.GetCart(userID)
}

func (s *CartService) UpdateItem(userID uuid.UUID, req *CartItemRequest) (*models.Cart, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	cart, err := s.loadCart(userID)
	if err != nil {
		return nil, err
	}

	item := cart.FindItem(req.ProductID)
	if item == nil {
		return nil, fmt.Errorf("cart item: %w", ErrNotFound)
	}

	var product models.Product
	if err := s.db.First(&product, req.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if !product.InStock(req.Quantity) {
		return nil, fmt.Errorf("product %q: %w", product.Title, ErrInsufficientStock)
	}

	item.Quantity = req.Quantity
	item.Price = product.Price
	if err := s.db.Save(item).Error; err != nil {
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}

	if err := s.saveTotals(cart); err != nil {
		return nil, err
	}

	return s.GetCart(userID)
}

func (s *CartService) RemoveItem(userID, productID uuid.UUID) (*models.Cart, error) {
	cart, err := s.loadCart(userID)
	if err != nil {
		return nil, err
	}

	item := cart.FindItem(productID)
	if item == nil {
		return nil, fmt.Errorf("cart item: %w", ErrNotFound)
	}

	if err := s.db.Unscoped().Delete(&models.CartItem{}, item.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to remove cart item: %w", err)
	}
	cart.RemoveItem(productID)

	if err := s.saveTotals(cart); err != nil {
		return nil, err
	}

	return s.GetCart(userID)
}

func (s *CartService) GetCart(userID uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	if err := s.db.Preload("Items.Product").
		Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cart: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &cart, nil
}

// ClearCart empties the user's cart after a successful checkout. A missing
// cart is not an error here.
func (s *CartService) ClearCart(tx *gorm.DB, userID uuid.UUID) error {
	var cart models.Cart
	if err := tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := tx.Unscoped().Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
		return fmt.Errorf("failed to clear cart items: %w", err)
	}

	res := tx.Model(&models.Cart{}).
		Where("id = ? AND version = ?", cart.ID, cart.Version).
		Updates(map[string]interface{}{
			"total_price":                0,
			"total_price_after_discount": 0,
			"discount":                   0,
			"version":                    gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return fmt.Errorf("failed to reset cart: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart was modified concurrently: %w", ErrConflict)
	}

	return nil
}

func (s *CartService) loadCart(userID uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	if err := s.db.Preload("Items").
		Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cart: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &cart, nil
}

// saveTotals recomputes the cart totals and persists them with a
// compare-and-swap on the version column.
func (s *CartService) saveTotals(cart *models.Cart) error {
	cart.Recalculate()

	res := s.db.Model(&models.Cart{}).
		Where("id = ? AND version = ?", cart.ID, cart.Version).
		Updates(map[string]interface{}{
			"total_price":                cart.TotalPrice,
			"total_price_after_discount": cart.TotalPriceAfterDiscount,
			"discount":                   cart.Discount,
			"version":                    gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return fmt.Errorf("failed to save cart totals: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart was modified concurrently: %w", ErrConflict)
	}
	cart.Version++

	return nil
}

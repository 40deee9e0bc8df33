// internal/services/order_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/shopora/storefront-api/internal/models"
	"github.com/shopora/storefront-api/internal/utils"
)

const (
	taxRate               = 0.15
	freeShippingThreshold = 200.0
	flatShippingPrice     = 30.0
)

// OrderService converts checkout payloads into immutable orders. Stock is
// decremented inside a single transaction with conditional updates, so a
// failing line rolls back every earlier decrement.
type OrderService struct {
	db          *gorm.DB
	cartService *CartService
	mailer      *MailerService
}

type OrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

type ShippingAddressRequest struct {
	Street  string `json:"street" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	Country string `json:"country" validate:"required"`
	Zip     string `json:"zip" validate:"required"`
}

type PaymentInfoRequest struct {
	Method models.PaymentMethod `json:"method" validate:"required"`
	ID     string               `json:"id,omitempty"`
	Status models.PaymentStatus `json:"status,omitempty"`
}

type CreateOrderRequest struct {
	Items           []OrderItemRequest     `json:"items" validate:"required,min=1,dive"`
	ShippingAddress ShippingAddressRequest `json:"shipping_address" validate:"required"`
	PaymentInfo     PaymentInfoRequest     `json:"payment_info" validate:"required"`
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" validate:"required"`
}

// OrderCharges is the pricing breakdown of an order.
type OrderCharges struct {
	ItemsPrice    float64
	TaxPrice      float64
	ShippingPrice float64
	TotalPrice    float64
}

// ComputeOrderCharges derives tax, shipping and total from the items price:
// tax is 15%, shipping is free above 200, otherwise a flat 30.
func ComputeOrderCharges(itemsPrice float64) OrderCharges {
	charges := OrderCharges{ItemsPrice: itemsPrice}
	charges.TaxPrice = itemsPrice * taxRate
	if itemsPrice > freeShippingThreshold {
		charges.ShippingPrice = 0
	} else {
		charges.ShippingPrice = flatShippingPrice
	}
	charges.TotalPrice = charges.ItemsPrice + charges.TaxPrice + charges.ShippingPrice
	return charges
}

func NewOrderService(db *gorm.DB, cartService *CartService, mailer *MailerService) *OrderService {
	return &OrderService{
		db:          db,
		cartService: cartService,
		mailer:      mailer,
	}
}

func (s *OrderService) CreateOrder(userID uuid.UUID, req *CreateOrderRequest) (*models.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if !req.PaymentInfo.Method.Valid() {
		return nil, fmt.Errorf("validation failed: unknown payment method %q", req.PaymentInfo.Method)
	}

	paymentStatus := req.PaymentInfo.Status
	if paymentStatus == "" {
		paymentStatus = models.PaymentStatusPending
	}

	order := &models.Order{
		UserID:          userID,
		ShippingStreet:  req.ShippingAddress.Street,
		ShippingCity:    req.ShippingAddress.City,
		ShippingState:   req.ShippingAddress.State,
		ShippingCountry: req.ShippingAddress.Country,
		ShippingZip:     req.ShippingAddress.Zip,
		PaymentMethod:   req.PaymentInfo.Method,
		PaymentID:       req.PaymentInfo.ID,
		PaymentStatus:   paymentStatus,
		Status:          models.OrderStatusPending,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var itemsPrice float64

		for _, line := range req.Items {
			var product models.Product
			if err := tx.First(&product, line.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("product %s: %w", line.ProductID, ErrNotFound)
				}
				return fmt.Errorf("database error: %w", err)
			}

			// Conditional decrement: the WHERE clause rejects oversell even
			// when a concurrent checkout raced past the read above.
			res := tx.Model(&models.Product{}).
				Where("id = ? AND quantity >= ?", product.ID, line.Quantity).
				UpdateColumn("quantity", gorm.Expr("quantity - ?", line.Quantity))
			if res.Error != nil {
				return fmt.Errorf("failed to decrement stock: %w", res.Error)
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("product %q: %w", product.Title, ErrInsufficientStock)
			}

			productID := product.ID
			order.Items = append(order.Items, models.OrderItem{
				ProductID: &productID,
				Title:     product.Title,
				Quantity:  line.Quantity,
				Price:     product.Price,
			})
			itemsPrice += product.Price * float64(line.Quantity)
		}

		charges := ComputeOrderCharges(itemsPrice)
		order.ItemsPrice = charges.ItemsPrice
		order.TaxPrice = charges.TaxPrice
		order.ShippingPrice = charges.ShippingPrice
		order.TotalPrice = charges.TotalPrice

		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		return s.cartService.ClearCart(tx, userID)
	})
	if err != nil {
		return nil, err
	}

	s.db.Preload("Items.Product").Preload("User").First(order, order.ID)

	// Confirmation mail is best effort and must not delay the response. The
	// goroutine works on its own copy so it never reads the caller's order.
	if s.mailer != nil {
		mailOrder := *order
		go func() {
			if err := s.mailer.SendOrderConfirmation(&mailOrder); err != nil {
				logrus.WithError(err).
					WithField("order_id", mailOrder.ID).
					Error("Failed to send order confirmation")
			}
		}()
	}

	return order, nil
}

// GetOrder returns the order with user and product references expanded.
// Non-admin callers may only read their own orders.
func (s *OrderService) GetOrder(orderID, requesterID uuid.UUID, isAdmin bool) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Items.Product").Preload("User").
		First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if !isAdmin && order.UserID != requesterID {
		return nil, fmt.Errorf("order belongs to another user: %w", ErrForbidden)
	}

	return &order, nil
}

func (s *OrderService) MyOrders(userID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return orders, nil
}

// scopedOrders narrows an order query to the requested status filter. Count,
// revenue sum and the page fetch all run through it so the three figures
// describe the same set.
func (s *OrderService) scopedOrders(params utils.PaginationParams) *gorm.DB {
	query := s.db.Model(&models.Order{})
	if params.Search != "" {
		query = query.Where("status = ?", params.Search)
	}
	return query
}

// GetAllOrders returns the filtered orders plus the aggregate revenue over
// that same filtered set.
func (s *OrderService) GetAllOrders(params utils.PaginationParams) ([]models.Order, int64, float64, error) {
	var total int64
	if err := s.scopedOrders(params).Count(&total).Error; err != nil {
		return nil, 0, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	var totalAmount float64
	if err := s.scopedOrders(params).
		Select("COALESCE(SUM(total_price), 0)").Scan(&totalAmount).Error; err != nil {
		return nil, 0, 0, fmt.Errorf("failed to sum revenue: %w", err)
	}

	query := s.scopedOrders(params).Preload("Items").Preload("User")
	allowedSortFields := []string{"created_at", "updated_at", "total_price", "status"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, 0, 0, fmt.Errorf("failed to fetch orders: %w", err)
	}

	return orders, total, totalAmount, nil
}

func (s *OrderService) UpdateOrderStatus(orderID uuid.UUID, req *UpdateOrderStatusRequest) (*models.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Status.Valid() {
		return nil, fmt.Errorf("status %q: %w", req.Status, ErrInvalidTransition)
	}

	var order models.Order
	if err := s.db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if order.Status.Terminal() {
		return nil, fmt.Errorf("order is %s: %w", order.Status, ErrInvalidTransition)
	}

	order.Status = req.Status
	if req.Status == models.OrderStatusDelivered {
		now := time.Now()
		order.DeliveredAt = &now
	}

	if err := s.db.Save(&order).Error; err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	s.db.Preload("Items").Preload("User").First(&order, orderID)
	return &order, nil
}

// DeleteOrder hard deletes the order. Stock is not restored.
func (s *OrderService) DeleteOrder(orderID uuid.UUID) error {
	var order models.Order
	if err := s.db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("order: %w", ErrNotFound)
		}
		return fmt.Errorf("database error: %w", err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete order items: %w", err)
		}
		if err := tx.Unscoped().Delete(&order).Error; err != nil {
			return fmt.Errorf("failed to delete order: %w", err)
		}
		return nil
	})
}

// internal/models/cart.go
package models

import (
	"math"

	"github.com/google/uuid"
)

// Cart holds the single active cart of a user. The unique index on UserID
// enforces at most one cart per user; Version backs compare-and-swap saves.
type Cart struct {
	BaseModel
	UserID                  uuid.UUID  `json:"user_id" gorm:"type:uuid;uniqueIndex;not null"`
	Items                   []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	TotalPrice              float64    `json:"total_price" gorm:"type:decimal(10,2);default:0"`
	TotalPriceAfterDiscount float64    `json:"total_price_after_discount" gorm:"type:decimal(10,2);default:0"`
	Discount                float64    `json:"discount" gorm:"type:decimal(10,2);default:0"`
	Version                 int64      `json:"version" gorm:"default:1"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

type CartItem struct {
	BaseModel
	CartID    uuid.UUID `json:"cart_id" gorm:"type:uuid;index;not null"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;index;not null"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	Price     float64   `json:"price" gorm:"type:decimal(10,2);not null"`
	Discount  float64   `json:"discount" gorm:"type:decimal(10,2);default:0"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// Subtotal is the line contribution to the cart total.
func (i CartItem) Subtotal() float64 {
	return float64(i.Quantity) * i.Price
}

// Recalculate restores the cart total invariant:
// TotalPrice == sum(item.Quantity * item.Price) over all items.
// No discount engine exists, so the discounted total mirrors the total
// and the discount resets to zero.
func (c *Cart) Recalculate() {
	var total float64
	for _, item := range c.Items {
		total += item.Subtotal()
	}
	c.TotalPrice = roundMoney(total)
	c.TotalPriceAfterDiscount = c.TotalPrice
	c.Discount = 0
}

// FindItem returns the line item for the product, or nil.
func (c *Cart) FindItem(productID uuid.UUID) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// RemoveItem filters out the line item for the product and reports whether
// it was present.
func (c *Cart) RemoveItem(productID uuid.UUID) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

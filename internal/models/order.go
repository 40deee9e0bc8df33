// internal/models/order.go
package models

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	BaseModel
	UserID uuid.UUID   `json:"user_id" gorm:"type:uuid;index;not null"`
	Items  []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`

	// Shipping address, all fields required at checkout.
	ShippingStreet  string `json:"shipping_street" gorm:"size:255;not null"`
	ShippingCity    string `json:"shipping_city" gorm:"size:100;not null"`
	ShippingState   string `json:"shipping_state" gorm:"size:100;not null"`
	ShippingCountry string `json:"shipping_country" gorm:"size:100;not null"`
	ShippingZip     string `json:"shipping_zip" gorm:"size:20;not null"`

	PaymentMethod PaymentMethod `json:"payment_method" gorm:"type:varchar(10);not null"`
	PaymentID     string        `json:"payment_id" gorm:"size:255"`
	PaymentStatus PaymentStatus `json:"payment_status" gorm:"type:varchar(20);default:'pending'"`

	ItemsPrice    float64 `json:"items_price" gorm:"type:decimal(10,2);not null"`
	TaxPrice      float64 `json:"tax_price" gorm:"type:decimal(10,2);not null"`
	ShippingPrice float64 `json:"shipping_price" gorm:"type:decimal(10,2);not null"`
	TotalPrice    float64 `json:"total_price" gorm:"type:decimal(10,2);not null"`

	Status      OrderStatus `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	DeliveredAt *time.Time  `json:"delivered_at"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// OrderItem snapshots title and price at order time so orders stay readable
// after the catalog product changes or is deleted.
type OrderItem struct {
	BaseModel
	OrderID   uuid.UUID  `json:"order_id" gorm:"type:uuid;index;not null"`
	ProductID *uuid.UUID `json:"product_id" gorm:"type:uuid;index"`
	Title     string     `json:"title" gorm:"size:255;not null"`
	Quantity  int        `json:"quantity" gorm:"not null"`
	Price     float64    `json:"price" gorm:"type:decimal(10,2);not null"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

func (i OrderItem) Subtotal() float64 {
	return float64(i.Quantity) * i.Price
}

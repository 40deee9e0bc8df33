// internal/models/product.go
package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Product struct {
	BaseModel
	Title       string         `json:"title" gorm:"uniqueIndex;size:255;not null"`
	Slug        string         `json:"slug" gorm:"uniqueIndex;size:280;not null"`
	Description string         `json:"description" gorm:"type:text"`
	Price       float64        `json:"price" gorm:"type:decimal(10,2);not null"`
	Quantity    int            `json:"quantity" gorm:"default:0"`
	CategoryID  *uuid.UUID     `json:"category_id" gorm:"type:uuid;index"`
	Images      pq.StringArray `json:"images" gorm:"type:text[]"`

	// Review aggregate, recomputed by the review service on every mutation.
	AverageRating float64 `json:"average_rating" gorm:"type:decimal(3,1);default:0"`
	TotalReviews  int64   `json:"total_reviews" gorm:"default:0"`

	// Relationships
	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Reviews  []Review  `json:"reviews,omitempty" gorm:"foreignKey:ProductID"`
}

// InStock reports whether the requested quantity can be fulfilled.
func (p *Product) InStock(quantity int) bool {
	return quantity > 0 && quantity <= p.Quantity
}

// internal/models/category.go
package models

type Category struct {
	BaseModel
	Name string `json:"name" gorm:"uniqueIndex;size:100;not null"`
	Slug string `json:"slug" gorm:"uniqueIndex;size:120;not null"`

	// Relationships
	Products []Product `json:"products,omitempty" gorm:"foreignKey:CategoryID"`
}

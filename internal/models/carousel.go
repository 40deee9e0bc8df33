// internal/models/carousel.go
package models

type Carousel struct {
	BaseModel
	Title    string `json:"title" gorm:"size:255;not null"`
	ImageURL string `json:"image_url" gorm:"size:512;not null"`
	LinkURL  string `json:"link_url" gorm:"size:512"`
	Position int    `json:"position" gorm:"default:0;index"`
	Active   bool   `json:"active" gorm:"default:true"`
}

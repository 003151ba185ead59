package models

import "gorm.io/gorm"

// Product represents a product in the catalogue.
type Product struct {
	gorm.Model
	Title       string         `gorm:"size:255;not null;index" json:"title"`
	Type        string         `gorm:"size:100;default:Spray" json:"type"`
	Description string         `gorm:"type:text" json:"description"`
	Category    string         `gorm:"size:100;default:Unisex;index" json:"category"`
	Price       float64        `gorm:"not null;default:0" json:"price"`
	Stock       int            `gorm:"not null;default:0" json:"stock"`
	BrandName   string         `gorm:"size:255" json:"brand_name"`
	BrandOrigin string         `gorm:"size:100;default:India" json:"brand_origin"`
	Rating      float64        `gorm:"default:0" json:"rating"`
	Images      []ProductImage `json:"images,omitempty"`
	Reviews     []Review       `json:"reviews,omitempty"`
}

// ProductImage is one stored image for a product.
type ProductImage struct {
	gorm.Model
	ProductID uint   `gorm:"not null;index" json:"product_id"`
	URL       string `gorm:"size:500;not null" json:"url"`
	Key       string `gorm:"size:500" json:"key"` // storage object key, used on delete
}

// Review is a customer review attached to a product.
type Review struct {
	gorm.Model
	ProductID uint   `gorm:"not null;index" json:"product_id"`
	UserID    uint   `gorm:"not null;index" json:"user_id"`
	Rating    int    `gorm:"not null" json:"rating"` // 1..5
	Comment   string `gorm:"type:text" json:"comment"`
}

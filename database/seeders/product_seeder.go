package seeders

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/goldenaura/app/models"
)

func init() {
	Register("products", SeedProducts)
}

// SeedProducts inserts the starter catalogue. Skipped when the
// products table already has rows.
func SeedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []models.Product{
		{
			Title:       "Golden Aura — Amber Oud",
			Type:        "Spray",
			Category:    "Unisex",
			Description: "Luxurious woody-amber fragrance with oud accents.",
			Price:       9999,
			Stock:       40,
			BrandName:   "Golden Aura",
			Images:      []models.ProductImage{{URL: "/storage/seed/amber-oud.jpg"}},
		},
		{
			Title:       "Golden Aura — Rose Elixir",
			Type:        "Spray",
			Category:    "Women",
			Description: "Soft rose with musky base for evenings.",
			Price:       7999,
			Stock:       60,
			BrandName:   "Golden Aura",
			Images:      []models.ProductImage{{URL: "/storage/seed/rose-elixir.jpg"}},
		},
		{
			Title:       "Golden Aura — Citrus Breeze",
			Type:        "Spray",
			Category:    "Men",
			Description: "Fresh citrus blend for daytime daily wear.",
			Price:       5999,
			Stock:       80,
			BrandName:   "Golden Aura",
			Images:      []models.ProductImage{{URL: "/storage/seed/citrus-breeze.jpg"}},
		},
		{
			Title:       "Golden Aura — Musk Attar",
			Type:        "Attar",
			Category:    "Unisex",
			Description: "Alcohol-free concentrated musk attar in a rollerball.",
			Price:       3499,
			Stock:       100,
			BrandName:   "Golden Aura",
			Images:      []models.ProductImage{{URL: "/storage/seed/musk-attar.jpg"}},
		},
		{
			Title:       "Golden Aura — Sandal Candle",
			Type:        "Perfume Candle",
			Category:    "Unisex",
			Description: "Hand-poured sandalwood candle, 40 hour burn.",
			Price:       1999,
			Stock:       120,
			BrandName:   "Golden Aura",
			Images:      []models.ProductImage{{URL: "/storage/seed/sandal-candle.jpg"}},
		},
	}

	return db.Create(&products).Error
}

package seeders

import (
	"errors"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/goldenaura/app/models"
)

func init() {
	Register("store", SeedStore)
}

// SeedStore inserts the default storefront settings row if none exists.
func SeedStore(db *gorm.DB) error {
	var existing models.StoreSettings
	err := db.First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return db.Create(&models.StoreSettings{
		Name:    "Golden Aura",
		Tagline: "Fragrances with soul",
		Email:   "orders@goldenaura.in",
	}).Error
}

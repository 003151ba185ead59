package repositories

import (
	"errors"

	"github.com/shashiranjanraj/goldenaura/app/models"
	"github.com/shashiranjanraj/goldenaura/pkg/orm"
	"gorm.io/gorm"
)

// StoreRepository persists the single storefront settings row.
type StoreRepository struct{}

func NewStoreRepository() *StoreRepository {
	return &StoreRepository{}
}

// Get returns the settings row, creating the defaults on first call.
func (r *StoreRepository) Get() (models.StoreSettings, error) {
	var s models.StoreSettings
	err := orm.DB().Model(&models.StoreSettings{}).Order("id ASC").First(&s)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s = models.StoreSettings{Name: "Golden Aura", Tagline: "Luxury Perfumes • India"}
		if err := orm.DB().Create(&s); err != nil {
			return s, err
		}
		return s, nil
	}
	return s, err
}

// Update persists settings changes.
func (r *StoreRepository) Update(s *models.StoreSettings) error {
	return orm.DB().Save(s)
}

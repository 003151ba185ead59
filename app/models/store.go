package models

import "gorm.io/gorm"

// StoreSettings is the persisted storefront configuration (single row).
// Replaces the in-memory settings global the admin dashboard used to
// mutate; loaded through StoreRepository so restarts keep edits.
type StoreSettings struct {
	gorm.Model
	Name         string `gorm:"size:255;default:Golden Aura" json:"name"`
	Tagline      string `gorm:"size:255" json:"tagline"`
	Email        string `gorm:"size:255" json:"email"`
	Phone        string `gorm:"size:50" json:"phone"`
	Address      string `gorm:"size:500" json:"address"`
	LogoURL      string `gorm:"size:500" json:"logo_url"`
	Instagram    string `gorm:"size:255" json:"instagram"`
	Facebook     string `gorm:"size:255" json:"facebook"`
	ThemePrimary string `gorm:"size:20;default:#b45309" json:"theme_primary"`
}

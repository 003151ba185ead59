package services

import (
	"github.com/shashiranjanraj/goldenaura/app/models"
	"github.com/shashiranjanraj/goldenaura/app/repositories"
)

// StoreService reads and writes the persisted storefront settings.
type StoreService struct {
	store *repositories.StoreRepository
}

func NewStoreService() *StoreService {
	return &StoreService{store: repositories.NewStoreRepository()}
}

// Get returns the settings, creating defaults on first use.
func (s *StoreService) Get() (models.StoreSettings, error) {
	return s.store.Get()
}

// Update applies edits over the current settings row.
func (s *StoreService) Update(apply func(*models.StoreSettings)) (models.StoreSettings, error) {
	settings, err := s.store.Get()
	if err != nil {
		return settings, err
	}
	apply(&settings)
	return settings, s.store.Update(&settings)
}

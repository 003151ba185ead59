package services

import (
	"errors"

	"github.com/shashiranjanraj/goldenaura/app/models"
	"github.com/shashiranjanraj/goldenaura/app/repositories"
	"gorm.io/gorm"
)

// WishlistService maintains per-user wishlists.
type WishlistService struct {
	wishes   *repositories.WishlistRepository
	products *repositories.ProductRepository
}

func NewWishlistService() *WishlistService {
	return &WishlistService{
		wishes:   repositories.NewWishlistRepository(),
		products: repositories.NewProductRepository(),
	}
}

// List returns the user's wished products, newest first.
func (s *WishlistService) List(userID uint) ([]models.WishlistItem, error) {
	return s.wishes.ListFor(userID)
}

// Add marks a product as wished; adding twice is a no-op.
func (s *WishlistService) Add(userID, productID uint) ([]models.WishlistItem, error) {
	if _, err := s.products.FindByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownProduct
		}
		return nil, err
	}

	if err := s.wishes.Add(userID, productID); err != nil {
		return nil, err
	}
	return s.wishes.ListFor(userID)
}

// Remove unmarks a product.
func (s *WishlistService) Remove(userID, productID uint) ([]models.WishlistItem, error) {
	if _, err := s.wishes.Remove(userID, productID); err != nil {
		return nil, err
	}
	return s.wishes.ListFor(userID)
}

// Has reports whether the product is wished by the user.
func (s *WishlistService) Has(userID, productID uint) (bool, error) {
	return s.wishes.Has(userID, productID)
}

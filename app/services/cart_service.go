package services

import (
	"errors"

	"github.com/shashiranjanraj/goldenaura/app/models"
	"github.com/shashiranjanraj/goldenaura/app/repositories"
	"github.com/shashiranjanraj/goldenaura/pkg/collection"
	"gorm.io/gorm"
)

// CartService maintains the per-user cart with merge-on-add semantics.
type CartService struct {
	carts    *repositories.CartRepository
	products *repositories.ProductRepository
}

func NewCartService() *CartService {
	return &CartService{
		carts:    repositories.NewCartRepository(),
		products: repositories.NewProductRepository(),
	}
}

// Get returns the full cart with derived totals.
func (s *CartService) Get(userID uint) (models.Cart, error) {
	items, err := s.carts.ItemsFor(userID)
	if err != nil {
		return models.Cart{}, err
	}
	return models.BuildCart(items), nil
}

// Add merges a single item into the cart: quantity is coerced to ≥1 and
// an already-present product gets its quantity incremented. Stock is not
// checked here; availability is the catalogue's concern.
func (s *CartService) Add(userID, productID uint, qty int) (models.Cart, error) {
	if _, err := s.products.FindByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Cart{}, ErrUnknownProduct
		}
		return models.Cart{}, err
	}

	if err := s.carts.AddOrIncrement(userID, productID, qty); err != nil {
		return models.Cart{}, err
	}
	return s.Get(userID)
}

// ReplaceItem is one entry of a wholesale cart sync.
type ReplaceItem struct {
	ProductID uint `json:"product_id" validate:"required,gte=1"`
	Quantity  int  `json:"quantity"`
}

// Replace swaps the entire cart for the client's local copy
// (last writer wins, no merge). A product repeated in the payload
// keeps its last quantity.
func (s *CartService) Replace(userID uint, items []ReplaceItem) (models.Cart, error) {
	ids := collection.Unique(collection.Map(items, func(it ReplaceItem) uint { return it.ProductID }))
	if len(ids) > 0 {
		found, err := s.products.FindByIDs(ids)
		if err != nil {
			return models.Cart{}, err
		}
		if len(found) != len(ids) {
			return models.Cart{}, ErrUnknownProduct
		}
	}

	last := collection.KeyBy(items, func(it ReplaceItem) uint { return it.ProductID })
	rows := collection.Map(ids, func(id uint) models.CartItem {
		return models.CartItem{ProductID: id, Quantity: last[id].Quantity}
	})

	if err := s.carts.Replace(userID, rows); err != nil {
		return models.Cart{}, err
	}
	return s.Get(userID)
}

// Remove deletes one product from the cart.
func (s *CartService) Remove(userID, productID uint) (models.Cart, error) {
	affected, err := s.carts.RemoveItem(userID, productID)
	if err != nil {
		return models.Cart{}, err
	}
	if affected == 0 {
		return models.Cart{}, ErrNotFound
	}
	return s.Get(userID)
}

// Clear empties the cart.
func (s *CartService) Clear(userID uint) error {
	return s.carts.Clear(userID)
}

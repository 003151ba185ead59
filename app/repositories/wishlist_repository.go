package repositories

import (
	"github.com/shashiranjanraj/goldenaura/app/models"
	"github.com/shashiranjanraj/goldenaura/pkg/orm"
)

// WishlistRepository handles database operations for wishlists.
type WishlistRepository struct{}

func NewWishlistRepository() *WishlistRepository {
	return &WishlistRepository{}
}

// ListFor returns the user's wished products.
func (r *WishlistRepository) ListFor(userID uint) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	err := orm.DB().Model(&models.WishlistItem{}).
		Preload("Product").
		Preload("Product.Images").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Get(&items)
	if items == nil {
		items = []models.WishlistItem{}
	}
	return items, err
}

// Add marks a product as wished. Adding an already-wished product is a
// no-op thanks to the unique (user_id, product_id) index.
func (r *WishlistRepository) Add(userID, productID uint) error {
	if has, err := r.Has(userID, productID); err != nil || has {
		return err
	}
	return orm.DB().Create(&models.WishlistItem{UserID: userID, ProductID: productID})
}

// Remove unmarks a product.
func (r *WishlistRepository) Remove(userID, productID uint) (int64, error) {
	return orm.DB().Exec(
		"DELETE FROM wishlist_items WHERE user_id = ? AND product_id = ?", userID, productID,
	)
}

// Has reports whether the product is on the user's wishlist.
func (r *WishlistRepository) Has(userID, productID uint) (bool, error) {
	var n int64
	err := orm.DB().Model(&models.WishlistItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&n)
	return n > 0, err
}

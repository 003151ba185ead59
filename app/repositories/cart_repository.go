package repositories

import (
	"github.com/shashiranjanraj/goldenaura/app/models"
	"github.com/shashiranjanraj/goldenaura/pkg/orm"
)

// CartRepository handles database operations for cart items.
type CartRepository struct{}

func NewCartRepository() *CartRepository {
	return &CartRepository{}
}

// ItemsFor returns the user's cart rows with product details, oldest first.
func (r *CartRepository) ItemsFor(userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := orm.DB().Model(&models.CartItem{}).
		Preload("Product").
		Preload("Product.Images").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Get(&items)
	return items, err
}

// AddOrIncrement merges a single add into the cart. The increment is one
// UPDATE statement, so two concurrent adds for the same row both land;
// when no row exists yet the insert races behind the unique
// (user_id, product_id) index and the loser retries the increment.
func (r *CartRepository) AddOrIncrement(userID, productID uint, qty int) error {
	if qty < 1 {
		qty = 1
	}

	for attempt := 0; attempt < 2; attempt++ {
		affected, err := orm.DB().Exec(
			`UPDATE cart_items SET quantity = quantity + ?, updated_at = CURRENT_TIMESTAMP
			 WHERE user_id = ? AND product_id = ? AND deleted_at IS NULL`,
			qty, userID, productID,
		)
		if err != nil {
			return err
		}
		if affected > 0 {
			return nil
		}

		err = orm.DB().Create(&models.CartItem{
			UserID:    userID,
			ProductID: productID,
			Quantity:  qty,
		})
		if err == nil {
			return nil
		}
		// Unique-index collision: another request inserted the row
		// between our UPDATE and INSERT. Loop back to the increment.
		if attempt == 1 {
			return err
		}
	}
	return nil
}

// Replace swaps the whole cart for the given items (last writer wins).
func (r *CartRepository) Replace(userID uint, items []models.CartItem) error {
	return orm.DB().Transaction(func(tx *orm.Query) error {
		if _, err := tx.Exec(
			"DELETE FROM cart_items WHERE user_id = ?", userID,
		); err != nil {
			return err
		}
		for i := range items {
			items[i].ID = 0
			items[i].UserID = userID
			if items[i].Quantity < 1 {
				items[i].Quantity = 1
			}
			if err := tx.Create(&items[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

// RemoveItem deletes a single product from the cart.
func (r *CartRepository) RemoveItem(userID, productID uint) (int64, error) {
	return orm.DB().Exec(
		"DELETE FROM cart_items WHERE user_id = ? AND product_id = ?", userID, productID,
	)
}

// Clear empties the user's cart.
func (r *CartRepository) Clear(userID uint) error {
	_, err := orm.DB().Exec("DELETE FROM cart_items WHERE user_id = ?", userID)
	return err
}

package models

import "gorm.io/gorm"

// WishlistItem marks a product as wished by a user. The unique index
// keeps a product from appearing twice in the same wishlist.
type WishlistItem struct {
	gorm.Model
	UserID    uint    `gorm:"not null;uniqueIndex:idx_wish_user_product" json:"user_id"`
	ProductID uint    `gorm:"not null;uniqueIndex:idx_wish_user_product" json:"product_id"`
	Product   Product `json:"product"`
}

package models

import "gorm.io/gorm"

// CartItem is one (product, quantity) row in a user's cart.
// A product appears at most once per user — adds merge into the
// existing row instead of duplicating it.
type CartItem struct {
	gorm.Model
	UserID    uint    `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductID uint    `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Quantity  int     `gorm:"not null;default:1" json:"quantity"`
	Product   Product `json:"product"`
}

// Cart is the full cart returned to clients, with derived totals.
type Cart struct {
	Items    []CartItem `json:"items"`
	Subtotal float64    `json:"subtotal"`
	Count    int        `json:"count"`
}

// BuildCart computes derived totals over the given items.
func BuildCart(items []CartItem) Cart {
	c := Cart{Items: items}
	if c.Items == nil {
		c.Items = []CartItem{}
	}
	for _, it := range items {
		c.Subtotal += it.Product.Price * float64(it.Quantity)
		c.Count += it.Quantity
	}
	return c
}

package migrations

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/goldenaura/app/models"
	"github.com/shashiranjanraj/goldenaura/pkg/migration"
)

func init() {
	migration.Register("20250301000200_create_commerce_tables", &CreateCommerceTables{})
}

// CreateCommerceTables creates the cart, wishlist, order and store
// settings tables.
type CreateCommerceTables struct{}

func (m *CreateCommerceTables) Up(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.CartItem{},
		&models.WishlistItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.StoreSettings{},
	)
}

func (m *CreateCommerceTables) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(
		"store_settings", "order_items", "orders",
		"wishlist_items", "cart_items",
	)
}

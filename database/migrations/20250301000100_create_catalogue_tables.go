package migrations

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/goldenaura/app/models"
	"github.com/shashiranjanraj/goldenaura/pkg/migration"
)

func init() {
	migration.Register("20250301000100_create_catalogue_tables", &CreateCatalogueTables{})
}

// CreateCatalogueTables creates the products, product_images and
// reviews tables.
type CreateCatalogueTables struct{}

func (m *CreateCatalogueTables) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{}, &models.ProductImage{}, &models.Review{})
}

func (m *CreateCatalogueTables) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("reviews", "product_images", "products")
}

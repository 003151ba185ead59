package migrations

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/goldenaura/app/models"
	"github.com/shashiranjanraj/goldenaura/pkg/migration"
)

func init() {
	migration.Register("20250301000000_create_users_tables", &CreateUsersTables{})
}

// CreateUsersTables creates the users and addresses tables.
type CreateUsersTables struct{}

func (m *CreateUsersTables) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Address{})
}

func (m *CreateUsersTables) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("addresses", "users")
}

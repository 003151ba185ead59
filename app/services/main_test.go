package services_test

import (
	"fmt"
	"testing"

	"github.com/shashiranjanraj/goldenaura/app/models"
	"github.com/shashiranjanraj/goldenaura/pkg/database"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// testDB opens a fresh in-memory database for one test and points the
// shared handle at it. cache=shared keeps every pooled connection on
// the same database; naming the database after the test keeps tests
// isolated from each other.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{}, &models.Address{},
		&models.Product{}, &models.ProductImage{}, &models.Review{},
		&models.CartItem{}, &models.WishlistItem{},
		&models.Order{}, &models.OrderItem{},
		&models.StoreSettings{},
	); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	database.DB = db
	t.Cleanup(func() { database.DB = nil })
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, title string, price float64) models.Product {
	t.Helper()
	p := models.Product{Title: title, Price: price, Stock: 25}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed product %q: %v", title, err)
	}
	return p
}

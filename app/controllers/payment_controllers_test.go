package controllers_test

import (
	"fmt"
	"testing"

	"github.com/shashiranjanraj/goldenaura/app/controllers"
	"github.com/shashiranjanraj/goldenaura/app/models"
	"github.com/shashiranjanraj/goldenaura/app/services"
	"github.com/shashiranjanraj/goldenaura/pkg/database"
	"github.com/shashiranjanraj/goldenaura/pkg/razorpay"
	"github.com/shashiranjanraj/goldenaura/pkg/router"
	"github.com/shashiranjanraj/goldenaura/pkg/testkit"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// scenarioSecret signs the verify_payment scenarios under testdata/.
const scenarioSecret = "scenario_secret"

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
		&models.Product{}, &models.ProductImage{}, &models.Review{},
		&models.CartItem{}, &models.Order{}, &models.OrderItem{},
	); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	database.DB = db
	t.Cleanup(func() { database.DB = nil })
	return db
}

func TestPaymentEndpoints(t *testing.T) {
	db := testDB(t)
	if err := db.Create(&models.Product{Title: "Amber Oud", Price: 9999, Stock: 25}).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}

	gateway := razorpay.NewWith("https://api.razorpay.test/v1", "rzp_test_key", scenarioSecret)
	pc := controllers.NewPaymentControllerWith(services.NewCheckoutServiceWith(gateway))

	r := router.New()
	r.Post("/api/payments/order", "payments.order", pc.CreateOrder)
	r.Post("/api/payments/verify", "payments.verify", pc.Verify)

	testkit.RunDir(t, r.Handler(), "testdata/payments")
}

// Package bootstrap assembles the storefront Application: routes,
// auto-migrated models and seeders. Both entrypoints (cmd/server and
// the aura CLI) build the same Application through here.
package bootstrap

import (
	"fmt"
	"os"

	"github.com/shashiranjanraj/goldenaura/app/models"
	"github.com/shashiranjanraj/goldenaura/app/routes"
	"github.com/shashiranjanraj/goldenaura/database/seeders"
	"github.com/shashiranjanraj/goldenaura/pkg/app"
	"github.com/shashiranjanraj/goldenaura/pkg/database"
)

// App returns the fully configured storefront application.
func App() *app.Application {
	return app.New().
		Routes(routes.RegisterAPI).
		AutoMigrate(
			&models.User{}, &models.Address{},
			&models.Product{}, &models.ProductImage{}, &models.Review{},
			&models.CartItem{}, &models.WishlistItem{},
			&models.Order{}, &models.OrderItem{},
			&models.StoreSettings{},
		).
		Seeders(func() {
			if err := seeders.RunAll(database.DB); err != nil {
				fmt.Fprintln(os.Stderr, "seed:", err)
				os.Exit(1)
			}
		})
}

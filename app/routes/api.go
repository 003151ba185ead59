// Package routes declares the storefront API surface and wires the
// application-level plumbing (event listeners, queue jobs, scheduled
// tasks) the handlers depend on.
package routes

import (
	"net/http"
	"strings"
	"sync"

	"github.com/shashiranjanraj/goldenaura/app/controllers"
	"github.com/shashiranjanraj/goldenaura/app/graph"
	"github.com/shashiranjanraj/goldenaura/app/jobs"
	"github.com/shashiranjanraj/goldenaura/app/listeners"
	"github.com/shashiranjanraj/goldenaura/app/repositories"
	"github.com/shashiranjanraj/goldenaura/app/services"
	"github.com/shashiranjanraj/goldenaura/config"
	"github.com/shashiranjanraj/goldenaura/pkg/logger"
	"github.com/shashiranjanraj/goldenaura/pkg/middleware"
	"github.com/shashiranjanraj/goldenaura/pkg/rbac"
	"github.com/shashiranjanraj/goldenaura/pkg/router"
	"github.com/shashiranjanraj/goldenaura/pkg/schedule"
	"github.com/shashiranjanraj/goldenaura/pkg/ws"
)

var (
	bootOnce sync.Once
	feed     *ws.Hub
)

// boot runs the one-time application wiring: the admin order feed hub,
// job registration, event listeners, the auth user loader, and the
// scheduled cache warmer. Kept out of RegisterAPI's hot path so
// `route:list` can build the table without side effects beyond these.
func boot() {
	feed = ws.NewHub()
	go feed.Run()

	jobs.Register()
	listeners.Register(feed)

	users := repositories.NewUserRepository()
	middleware.UserLoader = func(id uint) (string, bool, error) {
		u, err := users.FindByID(id)
		if err != nil {
			return "", false, err
		}
		return u.Role, u.Blocked, nil
	}

	schedule.Hourly().Name("catalogue.warm_featured").WithoutOverlapping().Run(func() {
		if _, err := services.NewProductService().Featured(0); err != nil {
			logger.Warn("schedule: featured warmup", "error", err)
		}
	})
}

// RegisterAPI mounts every storefront route on r.
func RegisterAPI(r *router.Router) {
	bootOnce.Do(boot)

	auth := controllers.NewAuthController()
	products := controllers.NewProductController()
	cart := controllers.NewCartController()
	wishlist := controllers.NewWishlistController()
	orders := controllers.NewOrderController()
	payments := controllers.NewPaymentController()
	store := controllers.NewStoreController()
	admin := controllers.NewAdminController(feed)

	api := r.Group("/api")

	// Public catalogue and store info.
	api.Get("/products", "products.index", products.Index)
	api.Get("/products/featured", "products.featured", products.Featured)
	api.Get("/products/recent", "products.recent", products.Recent)
	api.Get("/products/{id}", "products.show", products.Show)
	api.Post("/graphql", "graphql", graph.Handler())
	api.Get("/store", "store.show", store.Show)
	api.Get("/orders/track", "orders.track", orders.Track)

	// Auth.
	api.Post("/auth/register", "auth.register", auth.Register)
	api.Post("/auth/login", "auth.login", auth.Login)

	// Checkout works for guests too, so auth is optional here. The
	// identity, when present, attaches the order to the account.
	api.Post("/payments/order", "payments.create", payments.CreateOrder, middleware.OptionalAuth)
	api.Post("/payments/verify", "payments.verify", payments.Verify, middleware.OptionalAuth)

	// Everything below requires a valid bearer token.
	account := api.Group("", middleware.AuthMiddleware)

	account.Get("/auth/me", "auth.me", auth.Me)
	account.Put("/auth/password", "auth.password", auth.ChangePassword)
	account.Put("/auth/profile", "auth.profile", auth.UpdateProfile)
	account.Get("/auth/addresses", "auth.addresses", auth.Addresses)
	account.Post("/auth/addresses", "auth.addresses.add", auth.AddAddress)
	account.Delete("/auth/addresses/{id}", "auth.addresses.delete", auth.DeleteAddress)

	account.Get("/cart", "cart.show", cart.Show)
	account.Post("/cart", "cart.add", cart.Add)
	account.Put("/cart", "cart.replace", cart.Replace)
	account.Delete("/cart/{productID}", "cart.remove", cart.Remove)
	account.Delete("/cart", "cart.clear", cart.Clear)
	// Older storefront builds call DELETE /cart/clear; keep it working.
	account.Delete("/cart/clear", "cart.clear.legacy", cart.Clear)

	account.Get("/wishlist", "wishlist.index", wishlist.Index)
	account.Post("/wishlist", "wishlist.add", wishlist.Add)
	account.Get("/wishlist/{productID}", "wishlist.check", wishlist.Check)
	account.Delete("/wishlist/{productID}", "wishlist.remove", wishlist.Remove)

	account.Get("/orders/mine", "orders.mine", orders.Mine)
	account.Get("/orders/{id}", "orders.show", orders.Show)

	account.Post("/products/{id}/reviews", "products.review", products.Review)

	// Back office.
	back := api.Group("/admin", middleware.AuthMiddleware, rbac.HasRole("admin"))

	back.Post("/products", "admin.products.create", products.Store)
	back.Put("/products/{id}", "admin.products.update", products.Update)
	back.Delete("/products/{id}", "admin.products.delete", products.Destroy)
	back.Post("/products/{id}/image", "admin.products.image", products.UploadImage)

	back.Get("/orders", "admin.orders.index", orders.Index)
	back.Put("/orders/{id}/status", "admin.orders.status", orders.UpdateStatus)
	back.Delete("/orders/{id}", "admin.orders.delete", orders.Destroy)

	back.Get("/users", "admin.users.index", auth.IndexUsers)
	back.Put("/users/{id}/blocked", "admin.users.blocked", auth.SetBlocked)

	back.Put("/store", "admin.store.update", store.Update)
	back.Get("/stats", "admin.stats", admin.Stats)
	back.Get("/orders/feed", "admin.orders.feed", admin.OrderFeed)
	back.Get("/orders/stream", "admin.orders.stream", admin.OrderStream)

	// Locally stored product images, served straight off disk. S3-backed
	// uploads never hit this path; their URLs point at the bucket.
	fileServer := http.StripPrefix("/storage/", http.FileServer(http.Dir(config.StorageLocalRoot())))
	r.Get("/storage/*", "storage", func(w http.ResponseWriter, req *http.Request) {
		if strings.Contains(req.URL.Path, "..") {
			http.NotFound(w, req)
			return
		}
		fileServer.ServeHTTP(w, req)
	})
}

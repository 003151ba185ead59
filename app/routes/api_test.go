package routes_test

import (
	"net/http"
	"testing"

	"github.com/shashiranjanraj/goldenaura/app/routes"
	"github.com/shashiranjanraj/goldenaura/pkg/router"
)

func TestRegisterAPIMountsCoreRoutes(t *testing.T) {
	r := router.New()
	routes.RegisterAPI(r)

	mounted := make(map[string]bool)
	for _, info := range r.Routes() {
		mounted[info.Method+" "+info.Path] = true
	}

	want := []string{
		http.MethodGet + " /api/products",
		http.MethodPost + " /api/auth/login",
		http.MethodPost + " /api/payments/order",
		http.MethodPost + " /api/payments/verify",
		http.MethodGet + " /api/cart",
		http.MethodDelete + " /api/cart",
		http.MethodDelete + " /api/cart/clear",
		http.MethodDelete + " /api/cart/{productID}",
		http.MethodGet + " /api/wishlist",
		http.MethodGet + " /api/orders/mine",
		http.MethodPut + " /api/admin/orders/{id}/status",
	}
	for _, route := range want {
		if !mounted[route] {
			t.Errorf("route table missing %s", route)
		}
	}
}

func TestCartClearAliasSharesHandler(t *testing.T) {
	r := router.New()
	routes.RegisterAPI(r)

	canonical, ok := r.Path("cart.clear")
	if !ok {
		t.Fatal("cart.clear not registered")
	}
	if canonical != "/api/cart" {
		t.Errorf("cart.clear path = %q, want /api/cart", canonical)
	}

	alias, ok := r.Path("cart.clear.legacy")
	if !ok {
		t.Fatal("cart.clear.legacy not registered")
	}
	if alias != "/api/cart/clear" {
		t.Errorf("cart.clear.legacy path = %q, want /api/cart/clear", alias)
	}
}

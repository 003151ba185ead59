package services_test

import (
	"errors"
	"testing"

	"github.com/shashiranjanraj/goldenaura/app/services"
)

func TestWishlistAddIsIdempotent(t *testing.T) {
	db := testDB(t)
	p := seedProduct(t, db, "Amber Oud", 9999)

	svc := services.NewWishlistService()
	if _, err := svc.Add(1, p.ID); err != nil {
		t.Fatalf("first add: %v", err)
	}
	items, err := svc.Add(1, p.ID)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("expected 1 wishlist row, got %d", len(items))
	}
}

func TestWishlistAddUnknownProduct(t *testing.T) {
	testDB(t)

	svc := services.NewWishlistService()
	if _, err := svc.Add(1, 404); !errors.Is(err, services.ErrUnknownProduct) {
		t.Fatalf("expected ErrUnknownProduct, got %v", err)
	}
}

func TestWishlistRemoveAndHas(t *testing.T) {
	db := testDB(t)
	p := seedProduct(t, db, "Rose Elixir", 7999)

	svc := services.NewWishlistService()
	if _, err := svc.Add(1, p.ID); err != nil {
		t.Fatalf("add: %v", err)
	}

	has, err := svc.Has(1, p.ID)
	if err != nil || !has {
		t.Fatalf("Has = %v, %v; want true", has, err)
	}

	items, err := svc.Remove(1, p.ID)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty wishlist, got %d rows", len(items))
	}

	if has, _ := svc.Has(1, p.ID); has {
		t.Error("Has should be false after remove")
	}
}

func TestWishlistIsPerUser(t *testing.T) {
	db := testDB(t)
	p := seedProduct(t, db, "Citrus Breeze", 5999)

	svc := services.NewWishlistService()
	if _, err := svc.Add(1, p.ID); err != nil {
		t.Fatalf("add: %v", err)
	}

	items, err := svc.List(2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("user 2 should have an empty wishlist, got %d rows", len(items))
	}
}

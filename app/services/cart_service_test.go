package services_test

import (
	"errors"
	"testing"

	"github.com/shashiranjanraj/goldenaura/app/services"
)

func TestCartAddMergesQuantities(t *testing.T) {
	db := testDB(t)
	p := seedProduct(t, db, "Amber Oud", 9999)

	svc := services.NewCartService()
	if _, err := svc.Add(1, p.ID, 2); err != nil {
		t.Fatalf("first add: %v", err)
	}
	cart, err := svc.Add(1, p.ID, 3)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}

	if len(cart.Items) != 1 {
		t.Fatalf("expected a single merged row, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 5 {
		t.Errorf("quantity = %d, want 5", cart.Items[0].Quantity)
	}
	if cart.Subtotal != 9999*5 {
		t.Errorf("subtotal = %v, want %v", cart.Subtotal, 9999*5.0)
	}
}

func TestCartAddCoercesQuantity(t *testing.T) {
	db := testDB(t)
	p := seedProduct(t, db, "Rose Elixir", 7999)

	svc := services.NewCartService()
	cart, err := svc.Add(1, p.ID, 0)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if cart.Items[0].Quantity != 1 {
		t.Errorf("zero quantity should coerce to 1, got %d", cart.Items[0].Quantity)
	}
}

func TestCartAddUnknownProduct(t *testing.T) {
	testDB(t)

	svc := services.NewCartService()
	if _, err := svc.Add(1, 404, 1); !errors.Is(err, services.ErrUnknownProduct) {
		t.Fatalf("expected ErrUnknownProduct, got %v", err)
	}
}

func TestCartReplaceLastWriterWins(t *testing.T) {
	db := testDB(t)
	oud := seedProduct(t, db, "Amber Oud", 9999)
	rose := seedProduct(t, db, "Rose Elixir", 7999)

	svc := services.NewCartService()
	if _, err := svc.Add(1, oud.ID, 4); err != nil {
		t.Fatalf("seed add: %v", err)
	}

	// A product repeated in the payload keeps its last quantity.
	cart, err := svc.Replace(1, []services.ReplaceItem{
		{ProductID: rose.ID, Quantity: 1},
		{ProductID: rose.ID, Quantity: 3},
	})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}

	if len(cart.Items) != 1 {
		t.Fatalf("expected 1 row after replace, got %d", len(cart.Items))
	}
	if cart.Items[0].ProductID != rose.ID || cart.Items[0].Quantity != 3 {
		t.Errorf("row = product %d qty %d, want product %d qty 3",
			cart.Items[0].ProductID, cart.Items[0].Quantity, rose.ID)
	}
}

func TestCartReplaceUnknownProduct(t *testing.T) {
	db := testDB(t)
	p := seedProduct(t, db, "Citrus Breeze", 5999)

	svc := services.NewCartService()
	_, err := svc.Replace(1, []services.ReplaceItem{
		{ProductID: p.ID, Quantity: 1},
		{ProductID: 404, Quantity: 1},
	})
	if !errors.Is(err, services.ErrUnknownProduct) {
		t.Fatalf("expected ErrUnknownProduct, got %v", err)
	}
}

func TestCartReplaceWithEmptyListClears(t *testing.T) {
	db := testDB(t)
	p := seedProduct(t, db, "Musk Attar", 3499)

	svc := services.NewCartService()
	if _, err := svc.Add(1, p.ID, 2); err != nil {
		t.Fatalf("seed add: %v", err)
	}

	cart, err := svc.Replace(1, nil)
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if len(cart.Items) != 0 || cart.Count != 0 {
		t.Errorf("expected empty cart, got %d items", len(cart.Items))
	}
}

func TestCartRemoveMissingRow(t *testing.T) {
	testDB(t)

	svc := services.NewCartService()
	if _, err := svc.Remove(1, 42); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCartRemoveAndTotals(t *testing.T) {
	db := testDB(t)
	oud := seedProduct(t, db, "Amber Oud", 9999)
	rose := seedProduct(t, db, "Rose Elixir", 7999)

	svc := services.NewCartService()
	if _, err := svc.Add(1, oud.ID, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.Add(1, rose.ID, 2); err != nil {
		t.Fatalf("add: %v", err)
	}

	cart, err := svc.Remove(1, oud.ID)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("expected 1 row, got %d", len(cart.Items))
	}
	if cart.Count != 2 || cart.Subtotal != 7999*2 {
		t.Errorf("count=%d subtotal=%v, want 2 and %v", cart.Count, cart.Subtotal, 7999*2.0)
	}
}

package services_test

import (
	"errors"
	"testing"

	"github.com/shashiranjanraj/goldenaura/app/models"
	"github.com/shashiranjanraj/goldenaura/app/services"
	"gorm.io/gorm"
)

func seedOrder(t *testing.T, db *gorm.DB, userID *uint, status string) models.Order {
	t.Helper()
	order := models.Order{
		UserID: userID,
		Amount: 9999,
		Status: status,
		Items: []models.OrderItem{
			{ProductID: 1, Title: "Amber Oud", Price: 9999, Quantity: 1},
		},
		RazorpayOrderID:   "order_seed_" + status,
		RazorpayPaymentID: "pay_seed_" + status,
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return order
}

func TestSetStatusForwardTransition(t *testing.T) {
	db := testDB(t)
	order := seedOrder(t, db, nil, models.OrderPaid)

	svc := services.NewOrderService()
	updated, err := svc.SetStatus(order.ID, models.OrderProcessing)
	if err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	if updated.Status != models.OrderProcessing {
		t.Errorf("status = %q, want %q", updated.Status, models.OrderProcessing)
	}

	var reloaded models.Order
	if err := db.First(&reloaded, order.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Status != models.OrderProcessing {
		t.Errorf("persisted status = %q, want %q", reloaded.Status, models.OrderProcessing)
	}
}

func TestSetStatusRejectsSkippedStep(t *testing.T) {
	db := testDB(t)
	order := seedOrder(t, db, nil, models.OrderPaid)

	svc := services.NewOrderService()
	if _, err := svc.SetStatus(order.ID, models.OrderDelivered); !errors.Is(err, services.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestSetStatusRejectsLeavingTerminalState(t *testing.T) {
	db := testDB(t)
	order := seedOrder(t, db, nil, models.OrderDelivered)

	svc := services.NewOrderService()
	if _, err := svc.SetStatus(order.ID, models.OrderProcessing); !errors.Is(err, services.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestSetStatusRejectsUnknownValue(t *testing.T) {
	db := testDB(t)
	order := seedOrder(t, db, nil, models.OrderPaid)

	svc := services.NewOrderService()
	if _, err := svc.SetStatus(order.ID, "misplaced"); !errors.Is(err, services.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestSetStatusSameValueIsIdempotent(t *testing.T) {
	db := testDB(t)
	order := seedOrder(t, db, nil, models.OrderShipped)

	svc := services.NewOrderService()
	updated, err := svc.SetStatus(order.ID, models.OrderShipped)
	if err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	if updated.Status != models.OrderShipped {
		t.Errorf("status = %q, want %q", updated.Status, models.OrderShipped)
	}
}

func TestSetStatusCancelFromAnyActiveState(t *testing.T) {
	db := testDB(t)

	for _, from := range []string{models.OrderPending, models.OrderPaid, models.OrderProcessing, models.OrderShipped} {
		order := seedOrder(t, db, nil, from)

		svc := services.NewOrderService()
		updated, err := svc.SetStatus(order.ID, models.OrderCancelled)
		if err != nil {
			t.Errorf("cancel from %q: %v", from, err)
			continue
		}
		if updated.Status != models.OrderCancelled {
			t.Errorf("cancel from %q left status %q", from, updated.Status)
		}
	}
}

func TestSetStatusMissingOrder(t *testing.T) {
	testDB(t)

	svc := services.NewOrderService()
	if _, err := svc.SetStatus(404, models.OrderShipped); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetEnforcesOwnership(t *testing.T) {
	db := testDB(t)
	owner := uint(7)
	order := seedOrder(t, db, &owner, models.OrderPaid)

	svc := services.NewOrderService()

	if _, err := svc.Get(order.ID, owner, false); err != nil {
		t.Errorf("owner read: %v", err)
	}
	if _, err := svc.Get(order.ID, 8, false); !errors.Is(err, services.ErrForbidden) {
		t.Errorf("stranger read: expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Get(order.ID, 8, true); err != nil {
		t.Errorf("admin read: %v", err)
	}
}

func TestGetGuestOrderIsAdminOnly(t *testing.T) {
	db := testDB(t)
	order := seedOrder(t, db, nil, models.OrderPaid)

	svc := services.NewOrderService()
	if _, err := svc.Get(order.ID, 7, false); !errors.Is(err, services.ErrForbidden) {
		t.Errorf("expected ErrForbidden for guest order, got %v", err)
	}
	if _, err := svc.Get(order.ID, 0, true); err != nil {
		t.Errorf("admin read of guest order: %v", err)
	}
}

func TestListAllValidatesStatusFilter(t *testing.T) {
	testDB(t)

	svc := services.NewOrderService()
	if _, err := svc.ListAll("misplaced"); !errors.Is(err, services.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestListMineReturnsOnlyOwnOrders(t *testing.T) {
	db := testDB(t)
	mine, other := uint(1), uint(2)
	seedOrder(t, db, &mine, models.OrderPaid)
	seedOrder(t, db, &other, models.OrderShipped)
	seedOrder(t, db, nil, models.OrderPaid)

	svc := services.NewOrderService()
	orders, err := svc.ListMine(mine)
	if err != nil {
		t.Fatalf("ListMine: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
	if orders[0].UserID == nil || *orders[0].UserID != mine {
		t.Errorf("listed someone else's order")
	}
}

func TestDeleteMissingOrder(t *testing.T) {
	testDB(t)

	svc := services.NewOrderService()
	if err := svc.Delete(404); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

package services_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shashiranjanraj/goldenaura/app/models"
	"github.com/shashiranjanraj/goldenaura/app/services"
	"github.com/shashiranjanraj/goldenaura/pkg/notification"
	"github.com/shashiranjanraj/goldenaura/pkg/razorpay"
)

// fakeGateway satisfies services.Gateway without network calls.
type fakeGateway struct {
	accept    bool
	intent    *razorpay.Intent
	createErr error
}

func (g *fakeGateway) CreateOrder(_ context.Context, amount float64, currency, receipt string) (*razorpay.Intent, error) {
	if g.createErr != nil {
		return nil, g.createErr
	}
	if g.intent != nil {
		return g.intent, nil
	}
	return &razorpay.Intent{
		ID:       "order_fake_1",
		Amount:   int64(amount * 100),
		Currency: currency,
		Receipt:  receipt,
		Status:   "created",
	}, nil
}

func (g *fakeGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return g.accept
}

func (g *fakeGateway) KeyID() string { return "rzp_test_fake" }

func confirmInput(userID *uint, items ...services.ConfirmItem) services.ConfirmInput {
	return services.ConfirmInput{
		GatewayOrderID:   "order_fake_1",
		GatewayPaymentID: "pay_fake_1",
		Signature:        "sig",
		Items:            items,
		Delivery: models.Delivery{
			Name:    "Asha Verma",
			Email:   "asha@example.com",
			Phone:   "9876543210",
			Address: "12 MG Road, Pune",
			Pincode: "411001",
		},
		UserID: userID,
	}
}

func TestBeginRejectsEmptyCart(t *testing.T) {
	svc := services.NewCheckoutServiceWith(&fakeGateway{accept: true})
	if _, _, err := svc.Begin(context.Background(), 499, nil); !errors.Is(err, services.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestBeginRejectsNonPositiveAmount(t *testing.T) {
	svc := services.NewCheckoutServiceWith(&fakeGateway{accept: true})
	items := []services.BeginItem{{ProductID: 1, Quantity: 1}}
	if _, _, err := svc.Begin(context.Background(), 0, items); !errors.Is(err, services.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestBeginReturnsIntentAndKeyID(t *testing.T) {
	svc := services.NewCheckoutServiceWith(&fakeGateway{accept: true})
	items := []services.BeginItem{{ProductID: 1, Quantity: 2}}

	intent, keyID, err := svc.Begin(context.Background(), 499, items)
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if intent.ID != "order_fake_1" {
		t.Errorf("intent id = %q", intent.ID)
	}
	if keyID != "rzp_test_fake" {
		t.Errorf("key id = %q", keyID)
	}
}

func TestConfirmMissingFields(t *testing.T) {
	svc := services.NewCheckoutServiceWith(&fakeGateway{accept: true})

	in := confirmInput(nil, services.ConfirmItem{ProductID: 1, Quantity: 1})
	in.Signature = ""
	if _, err := svc.Confirm(context.Background(), in); !errors.Is(err, services.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestConfirmBadSignatureWritesNothing(t *testing.T) {
	db := testDB(t)
	p := seedProduct(t, db, "Amber Oud", 9999)

	// A forged callback is rejected identically no matter how often it
	// is resubmitted, and never touches the orders table.
	svc := services.NewCheckoutServiceWith(&fakeGateway{accept: false})
	in := confirmInput(nil, services.ConfirmItem{ProductID: p.ID, Quantity: 1})
	for i := 0; i < 2; i++ {
		if _, err := svc.Confirm(context.Background(), in); !errors.Is(err, services.ErrSignatureMismatch) {
			t.Fatalf("attempt %d: expected ErrSignatureMismatch, got %v", i+1, err)
		}
	}

	var count int64
	db.Model(&models.Order{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no orders after rejected signature, found %d", count)
	}
}

func TestConfirmBadSignatureAlertsSlack(t *testing.T) {
	db := testDB(t)
	p := seedProduct(t, db, "Amber Oud", 9999)

	payloads := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		payloads <- string(body)
	}))
	t.Cleanup(srv.Close)
	notification.SetSlackWebhook(srv.URL)
	t.Cleanup(func() { notification.SetSlackWebhook("") })

	svc := services.NewCheckoutServiceWith(&fakeGateway{accept: false})
	in := confirmInput(nil, services.ConfirmItem{ProductID: p.ID, Quantity: 1})
	in.Signature = "forged-signature-value"
	if _, err := svc.Confirm(context.Background(), in); !errors.Is(err, services.ErrSignatureMismatch) {
		t.Fatalf("expected ErrSignatureMismatch, got %v", err)
	}

	select {
	case payload := <-payloads:
		if !strings.Contains(payload, in.GatewayOrderID) {
			t.Errorf("alert payload missing gateway order id: %s", payload)
		}
		if strings.Contains(payload, in.Signature) {
			t.Error("alert payload must not carry the submitted signature")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no slack alert posted for rejected signature")
	}

	var count int64
	db.Model(&models.Order{}).Count(&count)
	if count != 0 {
		t.Errorf("alerting path must not write orders, found %d", count)
	}
}

func TestConfirmEmptyItems(t *testing.T) {
	testDB(t)

	svc := services.NewCheckoutServiceWith(&fakeGateway{accept: true})
	if _, err := svc.Confirm(context.Background(), confirmInput(nil)); !errors.Is(err, services.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestConfirmUnknownProduct(t *testing.T) {
	testDB(t)

	svc := services.NewCheckoutServiceWith(&fakeGateway{accept: true})
	_, err := svc.Confirm(context.Background(), confirmInput(nil, services.ConfirmItem{ProductID: 404, Quantity: 1}))
	if !errors.Is(err, services.ErrUnknownProduct) {
		t.Fatalf("expected ErrUnknownProduct, got %v", err)
	}
}

func TestConfirmSnapshotsCataloguePrices(t *testing.T) {
	db := testDB(t)
	oud := seedProduct(t, db, "Amber Oud", 9999)
	rose := seedProduct(t, db, "Rose Elixir", 7999)
	userID := uint(7)

	// Client-side prices are never part of the payload; only refs and
	// quantities go in. Quantity zero is coerced up to one.
	svc := services.NewCheckoutServiceWith(&fakeGateway{accept: true})
	order, err := svc.Confirm(context.Background(), confirmInput(&userID,
		services.ConfirmItem{ProductID: oud.ID, Quantity: 2},
		services.ConfirmItem{ProductID: rose.ID, Quantity: 0},
	))
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}

	want := 9999*2 + 7999.0
	if order.Amount != want {
		t.Errorf("amount = %v, want %v", order.Amount, want)
	}
	if order.Status != models.OrderPaid {
		t.Errorf("status = %q, want %q", order.Status, models.OrderPaid)
	}
	if order.UserID == nil || *order.UserID != userID {
		t.Errorf("order owner = %v, want %d", order.UserID, userID)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(order.Items))
	}
	if order.Items[0].Title != "Amber Oud" || order.Items[0].Price != 9999 {
		t.Errorf("line 0 snapshot = %q/%v", order.Items[0].Title, order.Items[0].Price)
	}
	if order.Items[1].Quantity != 1 {
		t.Errorf("zero quantity should coerce to 1, got %d", order.Items[1].Quantity)
	}
}

func TestConfirmGuestOrderHasNoOwner(t *testing.T) {
	db := testDB(t)
	p := seedProduct(t, db, "Citrus Breeze", 5999)

	svc := services.NewCheckoutServiceWith(&fakeGateway{accept: true})
	order, err := svc.Confirm(context.Background(), confirmInput(nil, services.ConfirmItem{ProductID: p.ID, Quantity: 1}))
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if order.UserID != nil {
		t.Errorf("guest order should have nil user id, got %v", *order.UserID)
	}
}

func TestConfirmReplayReturnsExistingOrder(t *testing.T) {
	db := testDB(t)
	p := seedProduct(t, db, "Musk Attar", 3499)

	svc := services.NewCheckoutServiceWith(&fakeGateway{accept: true})
	in := confirmInput(nil, services.ConfirmItem{ProductID: p.ID, Quantity: 1})

	first, err := svc.Confirm(context.Background(), in)
	if err != nil {
		t.Fatalf("first Confirm: %v", err)
	}
	second, err := svc.Confirm(context.Background(), in)
	if err != nil {
		t.Fatalf("replayed Confirm: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("replay created a new order: %d then %d", first.ID, second.ID)
	}

	var count int64
	db.Model(&models.Order{}).Count(&count)
	if count != 1 {
		t.Errorf("expected exactly 1 order, found %d", count)
	}
}

func TestConfirmClearsOwnerCart(t *testing.T) {
	db := testDB(t)
	p := seedProduct(t, db, "Sandal Candle", 1999)
	userID := uint(3)

	if err := db.Create(&models.CartItem{UserID: userID, ProductID: p.ID, Quantity: 2}).Error; err != nil {
		t.Fatalf("seed cart: %v", err)
	}

	svc := services.NewCheckoutServiceWith(&fakeGateway{accept: true})
	if _, err := svc.Confirm(context.Background(), confirmInput(&userID, services.ConfirmItem{ProductID: p.ID, Quantity: 2})); err != nil {
		t.Fatalf("Confirm: %v", err)
	}

	var count int64
	db.Model(&models.CartItem{}).Where("user_id = ?", userID).Count(&count)
	if count != 0 {
		t.Errorf("cart should be empty after checkout, found %d rows", count)
	}
}

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shashiranjanraj/goldenaura/app/models"
	"github.com/shashiranjanraj/goldenaura/app/notifications"
	"github.com/shashiranjanraj/goldenaura/app/repositories"
	"github.com/shashiranjanraj/goldenaura/pkg/event"
	"github.com/shashiranjanraj/goldenaura/pkg/logger"
	"github.com/shashiranjanraj/goldenaura/pkg/metrics"
	"github.com/shashiranjanraj/goldenaura/pkg/notification"
	"github.com/shashiranjanraj/goldenaura/pkg/razorpay"
	"gorm.io/gorm"
)

// Event names fired by the checkout flow. Listeners (invoice mail job,
// admin websocket feed) are registered at boot.
const (
	EventOrderPaid   = "order.paid"
	EventOrderStatus = "order.status"
)

// Gateway is the payment-gateway surface the checkout flow needs.
// Satisfied by *razorpay.Client; tests substitute a fake.
type Gateway interface {
	CreateOrder(ctx context.Context, amount float64, currency, receipt string) (*razorpay.Intent, error)
	VerifySignature(orderID, paymentID, signature string) bool
	KeyID() string
}

// CheckoutService orchestrates the order lifecycle: intent creation,
// signature verification, and the one-time persistence of a paid order.
type CheckoutService struct {
	gateway  Gateway
	orders   *repositories.OrderRepository
	products *repositories.ProductRepository
	carts    *repositories.CartRepository
}

func NewCheckoutService() *CheckoutService {
	return NewCheckoutServiceWith(razorpay.New())
}

// NewCheckoutServiceWith injects an explicit gateway (tests).
func NewCheckoutServiceWith(gw Gateway) *CheckoutService {
	return &CheckoutService{
		gateway:  gw,
		orders:   repositories.NewOrderRepository(),
		products: repositories.NewProductRepository(),
		carts:    repositories.NewCartRepository(),
	}
}

// BeginItem is one advisory line in a checkout request.
type BeginItem struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// Begin asks the gateway for a payment intent. The client-declared
// amount is advisory — it opens the payment UI at the right figure —
// and the authoritative amount is recomputed at confirmation.
func (s *CheckoutService) Begin(ctx context.Context, amount float64, items []BeginItem) (*razorpay.Intent, string, error) {
	if len(items) == 0 {
		return nil, "", ErrEmptyCart
	}
	if amount <= 0 {
		return nil, "", ErrInvalidAmount
	}

	receipt := fmt.Sprintf("ga_%d", time.Now().UnixMilli())
	intent, err := s.gateway.CreateOrder(ctx, amount, "", receipt)
	if err != nil {
		return nil, "", err
	}

	return intent, s.gateway.KeyID(), nil
}

// ConfirmItem references a product being bought. Price and title are
// NOT accepted from the client; the catalogue is authoritative.
type ConfirmItem struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// ConfirmInput is the payment-outcome callback from the browser.
type ConfirmInput struct {
	GatewayOrderID   string
	GatewayPaymentID string
	Signature        string
	Items            []ConfirmItem
	Delivery         models.Delivery
	UserID           *uint // nil for guest checkout
}

// Confirm verifies the gateway signature and, only on success, persists
// the order exactly once. A signature mismatch writes no state at all.
func (s *CheckoutService) Confirm(ctx context.Context, in ConfirmInput) (*models.Order, error) {
	if in.GatewayOrderID == "" || in.GatewayPaymentID == "" || in.Signature == "" {
		return nil, ErrMissingFields
	}

	if !s.gateway.VerifySignature(in.GatewayOrderID, in.GatewayPaymentID, in.Signature) {
		metrics.PaymentRejected.Inc()
		logger.Error("payment verification failed",
			"gateway_order_id", in.GatewayOrderID,
			"reason", "signature mismatch",
		)
		notification.SendAsync("", &notifications.PaymentAlert{GatewayOrderID: in.GatewayOrderID})
		return nil, ErrSignatureMismatch
	}

	if len(in.Items) == 0 {
		return nil, ErrEmptyCart
	}

	// A replayed callback for an already-recorded intent returns the
	// existing order instead of creating a second one.
	if existing, err := s.orders.FindByGatewayOrderID(in.GatewayOrderID); err == nil {
		return &existing, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// Snapshot lines from the live catalogue. The confirming client
	// supplies product refs and quantities only — prices come from the
	// catalogue so a manipulated request cannot cheapen the order.
	lines := make([]models.OrderItem, 0, len(in.Items))
	var amount float64
	for _, it := range in.Items {
		qty := it.Quantity
		if qty < 1 {
			qty = 1
		}

		product, err := s.products.FindByID(it.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: product %d", ErrUnknownProduct, it.ProductID)
			}
			return nil, err
		}

		lines = append(lines, models.OrderItem{
			ProductID: product.ID,
			Title:     product.Title,
			Price:     product.Price,
			Quantity:  qty,
		})
		amount += product.Price * float64(qty)
	}

	order := models.Order{
		UserID:            in.UserID,
		Items:             lines,
		Amount:            amount,
		Status:            models.OrderPaid,
		RazorpayOrderID:   in.GatewayOrderID,
		RazorpayPaymentID: in.GatewayPaymentID,
		Delivery:          in.Delivery,
	}
	if err := s.orders.Create(&order); err != nil {
		return nil, err
	}

	metrics.PaymentVerified.Inc()
	metrics.OrderAmount.Observe(amount)

	// Side effects past this point are best-effort: the order is
	// already the record of truth and must be returned regardless.
	if in.UserID != nil {
		if err := s.carts.Clear(*in.UserID); err != nil {
			logger.Warn("checkout: cart clear failed", "user_id", *in.UserID, "error", err)
		}
	}
	event.FireAsync(EventOrderPaid, &order)

	logger.Info("order confirmed",
		"order_id", order.ID,
		"amount", order.Amount,
		"guest", in.UserID == nil,
	)
	return &order, nil
}

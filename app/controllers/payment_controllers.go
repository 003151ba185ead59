package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/goldenaura/app/models"
	"github.com/shashiranjanraj/goldenaura/app/services"
	"github.com/shashiranjanraj/goldenaura/pkg/bind"
	"github.com/shashiranjanraj/goldenaura/pkg/middleware"
	"github.com/shashiranjanraj/goldenaura/pkg/response"
)

type PaymentController struct {
	checkout *services.CheckoutService
}

func NewPaymentController() *PaymentController {
	return &PaymentController{checkout: services.NewCheckoutService()}
}

// NewPaymentControllerWith injects a prepared checkout service (tests).
func NewPaymentControllerWith(checkout *services.CheckoutService) *PaymentController {
	return &PaymentController{checkout: checkout}
}

type createOrderInput struct {
	Amount float64              `json:"amount" validate:"required,gt=0"`
	Items  []services.BeginItem `json:"items"`
}

// CreateOrder registers a payment intent with the gateway and returns
// it together with the public key id the browser checkout needs.
func (c *PaymentController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var in createOrderInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	intent, keyID, err := c.checkout.Begin(r.Context(), in.Amount, in.Items)
	if err != nil {
		respondError(w, r, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"order":  intent,
		"key_id": keyID,
	})
}

type verifyInput struct {
	RazorpayOrderID   string                 `json:"razorpay_order_id"`
	RazorpayPaymentID string                 `json:"razorpay_payment_id"`
	RazorpaySignature string                 `json:"razorpay_signature"`
	Items             []services.ConfirmItem `json:"items"`
	Delivery          models.Delivery        `json:"delivery"`
}

// Verify checks the gateway callback signature and persists the order
// on success. Works for both authenticated and guest checkouts.
func (c *PaymentController) Verify(w http.ResponseWriter, r *http.Request) {
	var in verifyInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	var owner *uint
	if id, ok := middleware.UserIDFromCtx(r); ok {
		owner = &id
	}

	order, err := c.checkout.Confirm(r.Context(), services.ConfirmInput{
		GatewayOrderID:   in.RazorpayOrderID,
		GatewayPaymentID: in.RazorpayPaymentID,
		Signature:        in.RazorpaySignature,
		Items:            in.Items,
		Delivery:         in.Delivery,
		UserID:           owner,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	payload := map[string]interface{}{"order": order}
	if owner == nil {
		// Guests can't list orders, so hand back a tracking token.
		if token, err := TrackToken(order.ID); err == nil {
			payload["track_token"] = token
		}
	}
	response.Success(w, payload)
}

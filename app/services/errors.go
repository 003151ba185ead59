// Package services holds the storefront's business logic. Controllers
// call into services; services speak to repositories and the payment
// gateway. Failures are sentinel errors so the HTTP layer can map each
// kind to a status code exactly once.
package services

import (
	"errors"

	"github.com/shashiranjanraj/goldenaura/pkg/razorpay"
)

var (
	// ErrEmptyCart means a checkout was attempted with no line items.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrMissingFields means the payment callback lacked the gateway
	// order id, payment id, or signature.
	ErrMissingFields = errors.New("missing payment verification fields")

	// ErrSignatureMismatch means the callback signature did not verify.
	// Treated as a potential forgery: never retried, nothing persisted.
	ErrSignatureMismatch = errors.New("invalid payment signature")

	// ErrUnknownProduct means a referenced product does not exist in the
	// catalogue.
	ErrUnknownProduct = errors.New("unknown product")

	// ErrInvalidInput means a field failed business validation after
	// passing structural validation at the boundary.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound means the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden means the caller is authenticated but not entitled.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidStatus means the status is not one of the five
	// recognised order states.
	ErrInvalidStatus = errors.New("invalid order status")

	// ErrInvalidTransition means the status change breaks the
	// forward-only order lifecycle.
	ErrInvalidTransition = errors.New("illegal status transition")

	// ErrEmailTaken means the registration email is already in use.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials means login failed. Deliberately does not
	// say whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrBlocked means the account exists but has been blocked.
	ErrBlocked = errors.New("account is blocked")

	// Gateway errors surface unchanged so controllers can map them.
	ErrInvalidAmount      = razorpay.ErrInvalidAmount
	ErrGatewayUnavailable = razorpay.ErrGatewayUnavailable
)

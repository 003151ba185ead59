// Package razorpay wraps the Razorpay Orders API: creating a payment
// intent for an amount, and verifying that a checkout callback really
// came from the gateway.
//
// Verification recomputes HMAC-SHA256 over "{orderID}|{paymentID}" with
// the key secret and compares against the client-supplied signature in
// constant time. A mismatch is a potential forgery, never a transient
// failure.
package razorpay

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/shashiranjanraj/goldenaura/config"
	"github.com/shashiranjanraj/goldenaura/pkg/http"
)

var (
	// ErrInvalidAmount means the requested amount is zero or negative.
	ErrInvalidAmount = errors.New("razorpay: amount must be greater than zero")

	// ErrGatewayUnavailable means the gateway could not be reached or
	// rejected our credentials. Safe for the client to retry.
	ErrGatewayUnavailable = errors.New("razorpay: gateway unavailable")

	// ErrNotConfigured means key id/secret are missing from config.
	ErrNotConfigured = errors.New("razorpay: key id and secret not configured")
)

// Intent is the gateway's record of an amount to be collected.
type Intent struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"` // minor units (paise)
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// Client talks to the Razorpay REST API.
type Client struct {
	baseURL string
	keyID   string
	secret  string
	timeout time.Duration
}

// New builds a client from the storefront config.
func New() *Client {
	return &Client{
		baseURL: config.RazorpayAPIURL(),
		keyID:   config.RazorpayKeyID(),
		secret:  config.RazorpaySecret(),
		timeout: 10 * time.Second,
	}
}

// NewWith builds a client with explicit credentials (tests, tooling).
func NewWith(baseURL, keyID, secret string) *Client {
	return &Client{baseURL: baseURL, keyID: keyID, secret: secret, timeout: 10 * time.Second}
}

// KeyID exposes the public key id the browser checkout needs.
func (c *Client) KeyID() string { return c.keyID }

// CreateOrder registers a payment intent with the gateway. amount is in
// major currency units and is converted to minor units (×100) on the
// wire. receipt is an opaque caller reference.
func (c *Client) CreateOrder(ctx context.Context, amount float64, currency, receipt string) (*Intent, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if c.keyID == "" || c.secret == "" {
		return nil, ErrNotConfigured
	}
	if currency == "" {
		currency = config.StoreCurrency()
	}

	paise := int64(math.Round(amount * 100))

	resp, err := http.Post(c.baseURL+"/orders").
		WithContext(ctx).
		Header("Authorization", basicAuth(c.keyID, c.secret)).
		Body(map[string]interface{}{
			"amount":   paise,
			"currency": currency,
			"receipt":  receipt,
		}).
		Timeout(c.timeout).
		Retry(2, time.Second).
		Send()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}

	if resp.StatusCode == 400 {
		return nil, fmt.Errorf("%w: gateway rejected amount %d", ErrInvalidAmount, paise)
	}
	if !resp.OK() {
		return nil, fmt.Errorf("%w: gateway returned HTTP %d", ErrGatewayUnavailable, resp.StatusCode)
	}

	var intent Intent
	if err := resp.JSON(&intent); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	if intent.ID == "" {
		return nil, fmt.Errorf("%w: gateway response missing order id", ErrGatewayUnavailable)
	}

	return &intent, nil
}

// VerifySignature reports whether signature is a valid HMAC-SHA256 of
// "{orderID}|{paymentID}" under the key secret.
func (c *Client) VerifySignature(orderID, paymentID, signature string) bool {
	return Verify(orderID, paymentID, signature, c.secret)
}

// Verify is the credential-explicit form of VerifySignature.
func Verify(orderID, paymentID, signature, secret string) bool {
	if orderID == "" || paymentID == "" || signature == "" || secret == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	// Constant-time compare so the check leaks no timing signal.
	return hmac.Equal([]byte(expected), []byte(signature))
}

func basicAuth(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}

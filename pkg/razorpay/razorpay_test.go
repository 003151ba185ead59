package razorpay_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	gohttp "net/http"
	"strings"
	"testing"

	aurahttp "github.com/shashiranjanraj/goldenaura/pkg/http"
	"github.com/shashiranjanraj/goldenaura/pkg/razorpay"
)

const testSecret = "test_secret_key"

func sign(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyAcceptsValidSignature(t *testing.T) {
	sig := sign("order_abc", "pay_xyz", testSecret)
	if !razorpay.Verify("order_abc", "pay_xyz", sig, testSecret) {
		t.Error("valid signature rejected")
	}
}

func TestVerifyRejectsTamperedInputs(t *testing.T) {
	sig := sign("order_abc", "pay_xyz", testSecret)

	cases := []struct {
		name                         string
		orderID, paymentID, sigValue string
	}{
		{"wrong order id", "order_other", "pay_xyz", sig},
		{"wrong payment id", "order_abc", "pay_other", sig},
		{"mutated signature", "order_abc", "pay_xyz", sig[:len(sig)-1] + "0"},
		{"truncated signature", "order_abc", "pay_xyz", sig[:16]},
		{"empty signature", "order_abc", "pay_xyz", ""},
		{"empty order id", "", "pay_xyz", sig},
		{"empty payment id", "order_abc", "", sig},
	}
	for _, tc := range cases {
		if razorpay.Verify(tc.orderID, tc.paymentID, tc.sigValue, testSecret) {
			t.Errorf("%s: verification should fail", tc.name)
		}
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	sig := sign("order_abc", "pay_xyz", testSecret)
	if razorpay.Verify("order_abc", "pay_xyz", sig, "another_secret") {
		t.Error("signature under a different secret accepted")
	}
	if razorpay.Verify("order_abc", "pay_xyz", sig, "") {
		t.Error("empty secret accepted")
	}
}

func TestVerifySignatureUsesClientSecret(t *testing.T) {
	client := razorpay.NewWith("https://api.razorpay.test/v1", "rzp_test_key", testSecret)
	sig := sign("order_abc", "pay_xyz", testSecret)
	if !client.VerifySignature("order_abc", "pay_xyz", sig) {
		t.Error("valid signature rejected")
	}
	if client.VerifySignature("order_abc", "pay_xyz", "deadbeef") {
		t.Error("bogus signature accepted")
	}
}

// stubTransport routes every outgoing request through fn.
type stubTransport func(*gohttp.Request) (*gohttp.Response, error)

func (fn stubTransport) RoundTrip(req *gohttp.Request) (*gohttp.Response, error) {
	return fn(req)
}

func jsonResponse(code int, body string) *gohttp.Response {
	return &gohttp.Response{
		StatusCode: code,
		Header:     gohttp.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func withTransport(t *testing.T, fn stubTransport) {
	t.Helper()
	aurahttp.DefaultClient.Transport = fn
	t.Cleanup(aurahttp.ResetTransport)
}

func TestCreateOrderSendsPaise(t *testing.T) {
	var got struct {
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
		Receipt  string `json:"receipt"`
	}
	var auth string

	withTransport(t, func(req *gohttp.Request) (*gohttp.Response, error) {
		auth = req.Header.Get("Authorization")
		body, _ := io.ReadAll(req.Body)
		if err := json.Unmarshal(body, &got); err != nil {
			t.Fatalf("decode outgoing body: %v", err)
		}
		return jsonResponse(200, `{"id":"order_live_1","amount":49900,"currency":"INR","receipt":"ga_1","status":"created"}`), nil
	})

	client := razorpay.NewWith("https://api.razorpay.test/v1", "rzp_test_key", testSecret)
	intent, err := client.CreateOrder(context.Background(), 499, "INR", "ga_1")
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	if got.Amount != 49900 {
		t.Errorf("wire amount = %d paise, want 49900", got.Amount)
	}
	if got.Currency != "INR" || got.Receipt != "ga_1" {
		t.Errorf("wire payload = %+v", got)
	}
	if !strings.HasPrefix(auth, "Basic ") {
		t.Errorf("missing basic auth header, got %q", auth)
	}
	if intent.ID != "order_live_1" || intent.Status != "created" {
		t.Errorf("intent = %+v", intent)
	}
}

func TestCreateOrderRejectsNonPositiveAmount(t *testing.T) {
	client := razorpay.NewWith("https://api.razorpay.test/v1", "rzp_test_key", testSecret)
	if _, err := client.CreateOrder(context.Background(), 0, "INR", "r1"); !errors.Is(err, razorpay.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestCreateOrderWithoutCredentials(t *testing.T) {
	client := razorpay.NewWith("https://api.razorpay.test/v1", "", "")
	if _, err := client.CreateOrder(context.Background(), 499, "INR", "r1"); !errors.Is(err, razorpay.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestCreateOrderGatewayRejectsAmount(t *testing.T) {
	withTransport(t, func(req *gohttp.Request) (*gohttp.Response, error) {
		return jsonResponse(400, `{"error":{"description":"amount too small"}}`), nil
	})

	client := razorpay.NewWith("https://api.razorpay.test/v1", "rzp_test_key", testSecret)
	if _, err := client.CreateOrder(context.Background(), 0.001, "INR", "r1"); !errors.Is(err, razorpay.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestCreateOrderGatewayError(t *testing.T) {
	withTransport(t, func(req *gohttp.Request) (*gohttp.Response, error) {
		return jsonResponse(502, `{"error":"bad gateway"}`), nil
	})

	client := razorpay.NewWith("https://api.razorpay.test/v1", "rzp_test_key", testSecret)
	if _, err := client.CreateOrder(context.Background(), 499, "INR", "r1"); !errors.Is(err, razorpay.ErrGatewayUnavailable) {
		t.Fatalf("expected ErrGatewayUnavailable, got %v", err)
	}
}

func TestCreateOrderMissingIntentID(t *testing.T) {
	withTransport(t, func(req *gohttp.Request) (*gohttp.Response, error) {
		return jsonResponse(200, `{"amount":49900,"currency":"INR"}`), nil
	})

	client := razorpay.NewWith("https://api.razorpay.test/v1", "rzp_test_key", testSecret)
	if _, err := client.CreateOrder(context.Background(), 499, "INR", "r1"); !errors.Is(err, razorpay.ErrGatewayUnavailable) {
		t.Fatalf("expected ErrGatewayUnavailable, got %v", err)
	}
}

func TestCreateOrderTransportFailure(t *testing.T) {
	withTransport(t, func(req *gohttp.Request) (*gohttp.Response, error) {
		return nil, errors.New("connection refused")
	})

	client := razorpay.NewWith("https://api.razorpay.test/v1", "rzp_test_key", testSecret)
	if _, err := client.CreateOrder(context.Background(), 499, "INR", "r1"); !errors.Is(err, razorpay.ErrGatewayUnavailable) {
		t.Fatalf("expected ErrGatewayUnavailable, got %v", err)
	}
}

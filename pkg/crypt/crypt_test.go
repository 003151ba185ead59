package crypt_test

import (
	"errors"
	"testing"

	"github.com/shashiranjanraj/goldenaura/pkg/crypt"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	enc, err := crypt.Encrypt("hello world")
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	plain, err := crypt.Decrypt(enc)
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if plain != "hello world" {
		t.Errorf("round trip = %q", plain)
	}
}

func TestEncryptUsesRandomNonce(t *testing.T) {
	a, err := crypt.Encrypt("same input")
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	b, err := crypt.Encrypt("same input")
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if a == b {
		t.Error("two encryptions of the same input should differ")
	}
}

func TestDecryptRejectsTamperedCiphertext(t *testing.T) {
	enc, err := crypt.Encrypt("sensitive")
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}

	tampered := []byte(enc)
	if tampered[len(tampered)-5] == 'A' {
		tampered[len(tampered)-5] = 'B'
	} else {
		tampered[len(tampered)-5] = 'A'
	}

	if _, err := crypt.Decrypt(string(tampered)); !errors.Is(err, crypt.ErrDecrypt) {
		t.Fatalf("expected ErrDecrypt, got %v", err)
	}
}

func TestDecryptRejectsGarbage(t *testing.T) {
	if _, err := crypt.Decrypt("not base64 at all!"); !errors.Is(err, crypt.ErrDecrypt) {
		t.Fatalf("expected ErrDecrypt, got %v", err)
	}
	if _, err := crypt.Decrypt(""); !errors.Is(err, crypt.ErrDecrypt) {
		t.Fatalf("expected ErrDecrypt for short input, got %v", err)
	}
}

func TestEncryptJSONRoundTrip(t *testing.T) {
	type claim struct {
		OrderID uint `json:"order_id"`
	}

	enc, err := crypt.EncryptJSON(claim{OrderID: 42})
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}

	var out claim
	if err := crypt.DecryptJSON(enc, &out); err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if out.OrderID != 42 {
		t.Errorf("order id = %d, want 42", out.OrderID)
	}
}

package jwt

import (
	"testing"
	"time"

	"clinic-portal/config"
)

func newSigner(ttl time.Duration) *CookieSigner {
	return NewCookieSigner(config.SessionConfig{
		Secret: "test-secret",
		TTL:    ttl,
	})
}

func TestSignVerifyRoundTrip(t *testing.T) {
	signer := newSigner(time.Hour)

	value, err := signer.Sign("session-123")
	if err != nil {
		t.Fatalf("Sign() returned error: %v", err)
	}

	id, err := signer.Verify(value)
	if err != nil {
		t.Fatalf("Verify() returned error: %v", err)
	}
	if id != "session-123" {
		t.Fatalf("expected session-123, got %q", id)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	value, err := newSigner(time.Hour).Sign("session-123")
	if err != nil {
		t.Fatalf("Sign() returned error: %v", err)
	}

	other := NewCookieSigner(config.SessionConfig{Secret: "other-secret", TTL: time.Hour})
	if _, err := other.Verify(value); err != ErrInvalidCookie {
		t.Fatalf("expected ErrInvalidCookie, got %v", err)
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	signer := newSigner(-time.Minute)

	value, err := signer.Sign("session-123")
	if err != nil {
		t.Fatalf("Sign() returned error: %v", err)
	}

	if _, err := signer.Verify(value); err != ErrInvalidCookie {
		t.Fatalf("expected ErrInvalidCookie for expired cookie, got %v", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	signer := newSigner(time.Hour)

	for _, value := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := signer.Verify(value); err != ErrInvalidCookie {
			t.Fatalf("expected ErrInvalidCookie for %q, got %v", value, err)
		}
	}
}

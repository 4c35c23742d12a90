package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueAndVerify(t *testing.T) {
	m, err := NewManager("test-secret", 15*time.Minute)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	signed, err := m.Issue(42, "player@example.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	userID, email, err := m.Verify(signed)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if userID != 42 {
		t.Errorf("userID = %d, want 42", userID)
	}
	if email != "player@example.com" {
		t.Errorf("email = %q, want player@example.com", email)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	m, err := NewManager("test-secret", time.Nanosecond)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	signed, err := m.Issue(1, "a@x.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	if _, _, err := m.Verify(signed); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer, _ := NewManager("secret-a", 15*time.Minute)
	verifier, _ := NewManager("secret-b", 15*time.Minute)

	signed, err := issuer.Issue(1, "a@x.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, _, err := verifier.Verify(signed); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestVerifyWrongAlgorithm(t *testing.T) {
	m, _ := NewManager("test-secret", 15*time.Minute)

	claims := Claims{
		Email: "a@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, _, err := m.Verify(signed); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for HS512 token, got %v", err)
	}
}

func TestVerifyGarbage(t *testing.T) {
	m, _ := NewManager("test-secret", 15*time.Minute)

	if _, _, err := m.Verify("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

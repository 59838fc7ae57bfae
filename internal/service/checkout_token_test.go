package service

import (
	"errors"
	"testing"
	"time"

	"github.com/wellkart/wellkart/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

func newCheckoutTokenTestService(secret string) *CheckoutTokenService {
	cfg := &config.Config{}
	cfg.Checkout.TokenSecret = secret
	cfg.Checkout.TokenExpireHours = 24
	return NewCheckoutTokenService(cfg)
}

func TestCheckoutTokenRoundTrip(t *testing.T) {
	svc := newCheckoutTokenTestService("checkout-secret")

	token, expiresAt, err := svc.Generate(12, 34)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if !expiresAt.After(time.Now()) {
		t.Fatalf("expiry should be in the future, got %v", expiresAt)
	}

	claims, err := svc.Parse(token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if claims.CartID != 12 || claims.AddressID != 34 {
		t.Fatalf("claims want cart=12 address=34, got cart=%d address=%d", claims.CartID, claims.AddressID)
	}
}

func TestCheckoutTokenExpired(t *testing.T) {
	svc := newCheckoutTokenTestService("checkout-secret")

	// 手工签发一张已过期的令牌
	now := time.Now()
	claims := CheckoutTokenClaims{
		CartID:    1,
		AddressID: 2,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("checkout-secret"))
	if err != nil {
		t.Fatalf("sign expired token failed: %v", err)
	}

	_, err = svc.Parse(token)
	if !errors.Is(err, ErrCheckoutTokenExpired) {
		t.Fatalf("want ErrCheckoutTokenExpired, got %v", err)
	}
}

func TestCheckoutTokenTampered(t *testing.T) {
	svc := newCheckoutTokenTestService("checkout-secret")
	other := newCheckoutTokenTestService("another-secret")

	token, _, err := other.Generate(12, 34)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := svc.Parse(token); !errors.Is(err, ErrCheckoutTokenInvalid) {
		t.Fatalf("foreign signature want ErrCheckoutTokenInvalid, got %v", err)
	}
	if _, err := svc.Parse(""); !errors.Is(err, ErrCheckoutTokenInvalid) {
		t.Fatalf("empty token want ErrCheckoutTokenInvalid, got %v", err)
	}
	if _, err := svc.Parse("not-a-jwt"); !errors.Is(err, ErrCheckoutTokenInvalid) {
		t.Fatalf("garbage token want ErrCheckoutTokenInvalid, got %v", err)
	}
}

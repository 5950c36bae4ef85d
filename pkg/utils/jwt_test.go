package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func testPair(t *testing.T, accessSecret, refreshSecret []byte) *JWTPair {
	t.Helper()

	pair, err := GenerateJWTPair(GenerateJWTPairDto{
		Method: jwt.SigningMethodHS256,
		AccessSecret: accessSecret,
		AccessClaims: jwt.MapClaims{"id": "abc123", "isAdmin": false},
		AccessExpiry: time.Hour,
		RefreshSecret: refreshSecret,
		RefreshClaims: jwt.MapClaims{"id": "abc123"},
		RefreshExpiry: 24 * time.Hour,
	})
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}
	return pair
}

func TestGenerateAndDecodeJWTPair(t *testing.T) {
	accessSecret := []byte("access-secret")
	refreshSecret := []byte("refresh-secret")

	pair := testPair(t, accessSecret, refreshSecret)

	claims, err := DecodeJWT(pair.AccessToken, accessSecret)
	if err != nil {
		t.Fatalf("decode access token: %v", err)
	}
	if claims["id"] != "abc123" {
		t.Fatalf("expected id claim %q, got %v", "abc123", claims["id"])
	}
	if claims["isAdmin"] != false {
		t.Fatalf("expected isAdmin claim false, got %v", claims["isAdmin"])
	}

	refreshClaims, err := DecodeJWT(pair.RefreshToken, refreshSecret)
	if err != nil {
		t.Fatalf("decode refresh token: %v", err)
	}
	if refreshClaims["id"] != "abc123" {
		t.Fatalf("expected id claim %q, got %v", "abc123", refreshClaims["id"])
	}
}

func TestDecodeJWTWrongSecret(t *testing.T) {
	pair := testPair(t, []byte("access-secret"), []byte("refresh-secret"))

	if _, err := DecodeJWT(pair.AccessToken, []byte("not-the-secret")); err == nil {
		t.Fatal("expected an error for a wrong secret")
	}
}

func TestDecodeJWTExpired(t *testing.T) {
	secret := []byte("access-secret")
	pair, err := GenerateJWTPair(GenerateJWTPairDto{
		Method: jwt.SigningMethodHS256,
		AccessSecret: secret,
		AccessClaims: jwt.MapClaims{"id": "abc123"},
		AccessExpiry: -time.Minute,
		RefreshSecret: secret,
		RefreshClaims: jwt.MapClaims{"id": "abc123"},
		RefreshExpiry: -time.Minute,
	})
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}

	if _, err := DecodeJWT(pair.AccessToken, secret); !errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

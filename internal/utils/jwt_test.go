package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewAccessTokenRoundTrip(t *testing.T) {
	const secret = "test-secret"
	at, err := NewAccessToken(secret, 42, "MEMBER", 15)
	if err != nil {
		t.Fatalf("NewAccessToken() error = %v", err)
	}

	tok, err := jwt.Parse(at.Token, func(tok *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		t.Fatalf("parse failed: %v valid=%v", err, tok.Valid)
	}
	claims := tok.Claims.(jwt.MapClaims)
	if sub, _ := claims["sub"].(float64); uint64(sub) != 42 {
		t.Errorf("sub = %v, want 42", claims["sub"])
	}
	if role, _ := claims["role"].(string); role != "MEMBER" {
		t.Errorf("role = %v, want MEMBER", claims["role"])
	}
}

func TestHashRefreshRawStable(t *testing.T) {
	ref, err := NewRefreshToken(7)
	if err != nil {
		t.Fatalf("NewRefreshToken() error = %v", err)
	}
	if len(ref.Raw) != 96 {
		t.Errorf("raw length = %d, want 96", len(ref.Raw))
	}
	if HashRefreshRaw(ref.Raw) != HashRefreshRaw(ref.Raw) {
		t.Error("hash is not deterministic")
	}
	if HashRefreshRaw(ref.Raw) == ref.Raw {
		t.Error("hash equals raw token")
	}
}

func TestPasswordHashVerify(t *testing.T) {
	hash, err := HashPassword("s3cret", 4)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if !VerifyPassword(hash, "s3cret") {
		t.Error("correct password rejected")
	}
	if VerifyPassword(hash, "wrong") {
		t.Error("wrong password accepted")
	}
}

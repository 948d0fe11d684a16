package services

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const defaultTestTTL = 15 * time.Minute

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("access", "refresh", defaultTestTTL, time.Hour)

	access, err := issuer.CreateAccessToken("user-1", "ADMIN")
	if err != nil {
		t.Fatalf("CreateAccessToken failed: %v", err)
	}
	claims, err := issuer.ParseAccessToken(access)
	if err != nil {
		t.Fatalf("ParseAccessToken failed: %v", err)
	}
	if claims.UserID != "user-1" || claims.Role != "ADMIN" || claims.Issuer != "planly" {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	refresh, err := issuer.CreateRefreshToken("user-1")
	if err != nil {
		t.Fatalf("CreateRefreshToken failed: %v", err)
	}
	if _, err := issuer.ParseAccessToken(refresh); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("refresh token accepted as access token: %v", err)
	}
	rc, err := issuer.ParseRefreshToken(refresh)
	if err != nil {
		t.Fatalf("ParseRefreshToken failed: %v", err)
	}
	if rc.UserID != "user-1" {
		t.Fatalf("unexpected refresh claims: %+v", rc)
	}
}

func TestTokenIssuer_Expired(t *testing.T) {
	issuer := NewTokenIssuer("access", "refresh", defaultTestTTL, time.Hour)
	token, err := issuer.CreateAccessToken("user-1", "USER")
	if err != nil {
		t.Fatalf("CreateAccessToken failed: %v", err)
	}
	issuer.now = func() time.Time { return time.Now().Add(2 * defaultTestTTL) }
	if _, err := issuer.ParseAccessToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	token, err := NewTokenIssuer("one", "r", defaultTestTTL, time.Hour).CreateAccessToken("u", "USER")
	if err != nil {
		t.Fatalf("CreateAccessToken failed: %v", err)
	}
	if _, err := NewTokenIssuer("two", "r", defaultTestTTL, time.Hour).ParseAccessToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestRefreshTokenHash(t *testing.T) {
	hash, err := HashRefreshToken("token-value", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashRefreshToken failed: %v", err)
	}
	if !CompareRefreshToken(hash, "token-value") {
		t.Fatalf("expected token to match its hash")
	}
	if CompareRefreshToken(hash, "other") || CompareRefreshToken("", "token-value") {
		t.Fatalf("unexpected match")
	}
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("s3cret-pass", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if !CheckPassword(hash, "s3cret-pass") || CheckPassword(hash, "wrong") {
		t.Fatalf("password check mismatch")
	}
}

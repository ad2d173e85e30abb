package jwt

import (
	"testing"
	"time"
)

var secret = []byte("unit-test-secret")

func TestGenerateAndParse(t *testing.T) {
	token, err := GenerateToken(secret, 42, true, "access", time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	claims, err := ParseToken(secret, "access", token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("expected user_id 42, got %d", claims.UserID)
	}
	if !claims.Admin {
		t.Fatal("expected admin claim")
	}
}

func TestParse_WrongType(t *testing.T) {
	token, err := GenerateToken(secret, 1, false, "refresh", time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if _, err := ParseToken(secret, "access", token); err == nil {
		t.Fatal("expected error for mismatched token type")
	}
}

func TestParse_Expired(t *testing.T) {
	token, err := GenerateToken(secret, 1, false, "access", -time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if _, err := ParseToken(secret, "access", token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestParse_WrongSecret(t *testing.T) {
	token, err := GenerateToken(secret, 1, false, "access", time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if _, err := ParseToken([]byte("other-secret"), "access", token); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

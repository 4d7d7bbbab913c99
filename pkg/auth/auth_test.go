package auth

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	token, err := m.GenerateToken("user-1", "alice", "alice@example.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("UserID = %q, want %q", claims.UserID, "user-1")
	}
	if claims.Username != "alice" {
		t.Errorf("Username = %q, want %q", claims.Username, "alice")
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTManager("secret-a", time.Hour, 24*time.Hour)
	verifier := NewJWTManager("secret-b", time.Hour, 24*time.Hour)

	token, err := issuer.GenerateToken("user-1", "alice", "alice@example.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := verifier.ValidateToken(token); err == nil {
		t.Error("expected validation to fail with a different secret")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "hunter2hunter2" {
		t.Fatal("hash equals plaintext")
	}
	if !CheckPasswordHash("hunter2hunter2", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Error("wrong password accepted")
	}
}

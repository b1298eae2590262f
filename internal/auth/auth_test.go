package auth

import (
	"testing"
	"time"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("admin123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "admin123" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !CheckPasswordHash("admin123", hash) {
		t.Fatal("correct password must verify")
	}
	if CheckPasswordHash("admin124", hash) {
		t.Fatal("wrong password must not verify")
	}
}

func TestGenerateAndParseJWT(t *testing.T) {
	svc := NewService("test-secret", time.Hour)
	token, err := svc.GenerateJWT("u1", "hamza", "staff", []string{"p1", "p2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	claims, err := svc.ParseJWT(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserKey != "u1" || claims.Username != "hamza" || claims.Role != "staff" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if len(claims.Projects) != 2 {
		t.Fatalf("project assignments must round-trip, got %v", claims.Projects)
	}
}

func TestParseJWTRejectsWrongSecret(t *testing.T) {
	token, err := NewService("secret-a", time.Hour).GenerateJWT("u1", "x", "admin", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := NewService("secret-b", time.Hour).ParseJWT(token); err == nil {
		t.Fatal("token signed with another secret must be rejected")
	}
}

func TestParseJWTRejectsExpired(t *testing.T) {
	svc := NewService("test-secret", -time.Minute)
	token, err := svc.GenerateJWT("u1", "x", "admin", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.ParseJWT(token); err == nil {
		t.Fatal("expired token must be rejected")
	}
}

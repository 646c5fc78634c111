package auth_test

import (
	"strings"
	"testing"

	"github.com/iiuc/alumnihub/internal/pkg/auth"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := auth.HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Fatalf("expected a bcrypt hash, got %q", hash)
	}

	if !auth.CheckPassword(hash, "secret123") {
		t.Fatal("correct password rejected")
	}
	if auth.CheckPassword(hash, "wrong") {
		t.Fatal("wrong password accepted")
	}
}

func TestCheckPassword_InvalidHash(t *testing.T) {
	if auth.CheckPassword("not-a-hash", "secret123") {
		t.Fatal("garbage hash must never verify")
	}
}

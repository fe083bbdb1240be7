package utils

import "testing"

func TestHashPassword_And_CheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if hash == "" {
		t.Fatal("expected non-empty hash")
	}
	if hash == "correct horse battery staple" {
		t.Error("hash must not equal the plaintext password")
	}

	if !CheckPassword("correct horse battery staple", hash) {
		t.Error("expected correct password to verify")
	}
	if CheckPassword("wrong password", hash) {
		t.Error("expected wrong password to fail verification")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	second, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if first == second {
		t.Error("expected different hashes for the same password (bcrypt salts)")
	}
}

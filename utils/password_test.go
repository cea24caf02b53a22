package utils

import "testing"

func TestHashPasswordAndCheck(t *testing.T) {
	password := "field-app-secret-1"
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if hash == password {
		t.Fatalf("hash must not equal the plaintext")
	}
	if !CheckPasswordHash(password, hash) {
		t.Fatalf("expected password check to succeed")
	}
	if CheckPasswordHash("wrong-password", hash) {
		t.Fatalf("expected wrong password check to fail")
	}
}

func TestGenerateRandomTokenLength(t *testing.T) {
	tok := GenerateRandomToken(10)
	if len(tok) != 10 {
		t.Fatalf("expected 10 chars, got %d", len(tok))
	}
}

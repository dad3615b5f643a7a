package auth

import "testing"

func TestHashPassword_VerifyRoundTrip(t *testing.T) {
	hash, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if hash == "pw123" {
		t.Error("Expected hash to differ from the plain password")
	}

	if !VerifyPassword(hash, "pw123") {
		t.Error("Expected correct password to verify")
	}
	if VerifyPassword(hash, "wrong") {
		t.Error("Expected wrong password to fail verification")
	}
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	h1, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	h2, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if h1 == h2 {
		t.Error("Expected salted hashes of the same password to differ")
	}
}

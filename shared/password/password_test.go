package password_test

import (
	"testing"

	"innkeep/shared/password"
)

func TestHashAndVerify(t *testing.T) {
	hashed, err := password.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash() failed: %v", err)
	}

	if hashed == "correct horse battery staple" {
		t.Error("hash must not equal the plain text")
	}

	if !password.Verify(hashed, "correct horse battery staple") {
		t.Error("expected matching password to verify")
	}

	if password.Verify(hashed, "wrong password") {
		t.Error("expected non-matching password to fail verification")
	}
}

func TestVerify_MalformedHash(t *testing.T) {
	if password.Verify("not-a-bcrypt-hash", "anything") {
		t.Error("expected malformed hash to fail verification")
	}
}

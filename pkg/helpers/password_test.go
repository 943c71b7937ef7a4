package helpers

import (
	"strings"
	"testing"
)

func TestHashPassword_SaltUniqueness(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if h1 == h2 {
		t.Fatalf("identical passwords produced identical hashes")
	}
	if !strings.HasPrefix(h1, "$2") {
		t.Fatalf("hash not bcrypt-encoded: %q", h1)
	}
	if h1 == "pw123" || strings.Contains(h1, "pw123") {
		t.Fatalf("hash leaks plaintext")
	}

	if !CompareHashAndPassword(h1, "pw123") {
		t.Fatalf("first hash did not verify")
	}
	if !CompareHashAndPassword(h2, "pw123") {
		t.Fatalf("second hash did not verify")
	}
}

func TestCompareHashAndPassword_Mismatch(t *testing.T) {
	t.Parallel()

	h, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if CompareHashAndPassword(h, "wrong") {
		t.Fatalf("wrong password verified")
	}
	if CompareHashAndPassword("not-a-hash", "pw123") {
		t.Fatalf("garbage hash verified")
	}
}

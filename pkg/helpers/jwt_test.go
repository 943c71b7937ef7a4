package helpers

import (
	"testing"
	"time"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("super-secret", time.Hour)

	tok, exp, err := m.GenerateToken(42, "a@x.com")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	if remaining := time.Until(exp); remaining < 59*time.Minute {
		t.Fatalf("expiry too close: %v", remaining)
	}

	claims, err := m.ParseToken(tok)
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("uid mismatch: got %d want 42", claims.UserID)
	}
	if claims.Email != "a@x.com" {
		t.Fatalf("email mismatch: got %q", claims.Email)
	}
	if claims.Subject != "42" {
		t.Fatalf("subject mismatch: got %q", claims.Subject)
	}
}

func TestParseToken_Expired(t *testing.T) {
	t.Parallel()

	m := &JWTManager{Secret: []byte("secret"), TTL: -1 * time.Second}

	tok, _, err := m.GenerateToken(1, "u@x.com")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := m.ParseToken(tok); err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Parallel()

	right := &JWTManager{Secret: []byte("right-secret"), TTL: time.Hour}
	wrong := &JWTManager{Secret: []byte("wrong-secret"), TTL: time.Hour}

	tok, _, err := right.GenerateToken(2, "u@x.com")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := wrong.ParseToken(tok); err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestParseToken_TamperedSignature(t *testing.T) {
	t.Parallel()

	m := &JWTManager{Secret: []byte("secret"), TTL: time.Hour}

	tok, _, err := m.GenerateToken(3, "u@x.com")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	// flip the last signature byte
	b := []byte(tok)
	if b[len(b)-1] == 'A' {
		b[len(b)-1] = 'B'
	} else {
		b[len(b)-1] = 'A'
	}

	if _, err := m.ParseToken(string(b)); err == nil {
		t.Fatalf("expected error for tampered token, got nil")
	}
}

func TestParseToken_MalformedString(t *testing.T) {
	t.Parallel()

	m := &JWTManager{Secret: []byte("k"), TTL: time.Hour}
	if _, err := m.ParseToken("not.a.jwt"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}

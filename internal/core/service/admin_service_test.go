package service

import (
	"errors"
	"testing"
)

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := NewAdminService("admin123", false, NewMemoryTokenStore())

	if _, err := svc.Login("nope"); !errors.Is(err, ErrInvalidPassword) {
		t.Errorf("wrong password: got %v, want ErrInvalidPassword", err)
	}
	if _, err := svc.Login(""); !errors.Is(err, ErrInvalidPassword) {
		t.Errorf("empty password: got %v, want ErrInvalidPassword", err)
	}
}

func TestLoginIssuesValidToken(t *testing.T) {
	svc := NewAdminService("admin123", false, NewMemoryTokenStore())

	token, err := svc.Login("admin123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("Login returned empty token")
	}
	if !svc.Authorize(token) {
		t.Error("issued token not authorized")
	}
	if svc.Authorize("bogus") {
		t.Error("bogus token authorized")
	}
	if svc.Authorize("") {
		t.Error("empty token authorized")
	}
}

func TestLoginNormalizesPasswords(t *testing.T) {
	svc := NewAdminService("admin123", false, NewMemoryTokenStore())

	// Whitespace and Unicode formatting differences must not matter.
	if _, err := svc.Login(" admin 123 \n"); err != nil {
		t.Errorf("whitespace-padded password rejected: %v", err)
	}
}

func TestBypassMode(t *testing.T) {
	// No password configured.
	svc := NewAdminService("", false, NewMemoryTokenStore())
	if !svc.BypassActive() || svc.PasswordRequired() {
		t.Error("empty password should activate bypass")
	}
	if _, err := svc.Login("anything"); err != nil {
		t.Errorf("bypass login failed: %v", err)
	}
	if !svc.Authorize("") {
		t.Error("bypass should authorize every request")
	}

	// Explicit allow-any override with a password configured.
	svc = NewAdminService("admin123", true, NewMemoryTokenStore())
	if !svc.BypassActive() || svc.PasswordRequired() {
		t.Error("allow-any override should activate bypass")
	}
}

func TestMemoryTokenStoreRevoke(t *testing.T) {
	store := NewMemoryTokenStore()

	token, err := store.Issue()
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if !store.IsValid(token) {
		t.Error("issued token invalid")
	}

	store.Revoke(token)
	if store.IsValid(token) {
		t.Error("revoked token still valid")
	}
}

func TestJWTTokenStore(t *testing.T) {
	store := NewJWTTokenStore("test-secret")

	token, err := store.Issue()
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if !store.IsValid(token) {
		t.Error("issued token invalid")
	}

	// Tokens survive a "restart": a fresh store with the same secret
	// accepts them, one with a different secret does not.
	if !NewJWTTokenStore("test-secret").IsValid(token) {
		t.Error("token rejected by fresh store with same secret")
	}
	if NewJWTTokenStore("other-secret").IsValid(token) {
		t.Error("token accepted with wrong secret")
	}
	if store.IsValid(token + "x") {
		t.Error("tampered token accepted")
	}
	if store.IsValid("") {
		t.Error("empty token accepted")
	}
}

package models

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestCredentialFor_HashWins(t *testing.T) {
	c := CredentialFor("$2a$10$hash", "legacy")
	if c.Kind != CredentialHashed {
		t.Errorf("expected hashed credential, got %v", c.Kind)
	}

	c = CredentialFor("", "legacy")
	if c.Kind != CredentialPlaintext {
		t.Errorf("expected plaintext credential, got %v", c.Kind)
	}

	c = CredentialFor("", "")
	if c.Kind != CredentialNone {
		t.Errorf("expected no credential, got %v", c.Kind)
	}
}

func TestCredentialVerify_Hashed(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	c := CredentialFor(hash, "")

	ok, err := c.Verify("secret123")
	if err != nil || !ok {
		t.Errorf("Verify(correct) = (%v, %v), want (true, nil)", ok, err)
	}

	ok, err = c.Verify("wrong-password")
	if err != nil {
		t.Errorf("mismatch should not be an error, got %v", err)
	}
	if ok {
		t.Error("Verify(wrong) should be false")
	}
}

func TestCredentialVerify_MalformedHash(t *testing.T) {
	c := Credential{Kind: CredentialHashed, Value: "not-a-bcrypt-hash"}

	ok, err := c.Verify("anything")
	if ok {
		t.Error("malformed hash should never verify")
	}
	if err == nil {
		t.Error("malformed hash should be an internal error, not a mismatch")
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		t.Error("malformed hash must be distinguishable from a mismatch")
	}
}

func TestCredentialVerify_Plaintext(t *testing.T) {
	c := CredentialFor("", "legacy-pass")

	ok, err := c.Verify("legacy-pass")
	if err != nil || !ok {
		t.Errorf("Verify(correct) = (%v, %v), want (true, nil)", ok, err)
	}
	if !c.NeedsUpgrade() {
		t.Error("plaintext credential should need upgrade")
	}

	ok, err = c.Verify("other")
	if err != nil || ok {
		t.Errorf("Verify(wrong) = (%v, %v), want (false, nil)", ok, err)
	}
}

func TestCredentialVerify_None(t *testing.T) {
	c := CredentialFor("", "")
	ok, err := c.Verify("anything")
	if ok {
		t.Error("user without credential should never verify")
	}
	if !errors.Is(err, ErrNoCredential) {
		t.Errorf("expected ErrNoCredential, got %v", err)
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"valid", "secret", nil},
		{"too short", "12345", ErrPasswordTooShort},
		{"empty", "", ErrPasswordTooShort},
		{"max length", string(make([]byte, 72)), nil},
		{"too long", string(make([]byte, 73)), ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidatePassword() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

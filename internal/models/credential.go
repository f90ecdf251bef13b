package models

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the default cost parameter for bcrypt hashing.
// Cost 10 provides a good balance between security and performance.
const DefaultBcryptCost = 10

// Password validation errors.
var (
	// ErrPasswordTooShort is returned when a password is too short.
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")

	// ErrPasswordTooLong is returned when a password is too long.
	// bcrypt has a maximum input length of 72 bytes.
	ErrPasswordTooLong = errors.New("password must be at most 72 characters")
)

// Password length constraints.
const (
	// MinPasswordLength is the minimum required password length.
	MinPasswordLength = 6

	// MaxPasswordLength is the maximum allowed password length.
	// bcrypt silently truncates at 72 bytes, so we enforce this limit.
	MaxPasswordLength = 72
)

// CredentialKind identifies how a user's password is stored.
type CredentialKind int

const (
	// CredentialNone means the user has no usable credential.
	CredentialNone CredentialKind = iota
	// CredentialHashed is a bcrypt hash, the only encoding new writes produce.
	CredentialHashed
	// CredentialPlaintext is a legacy plaintext password imported from the
	// pre-hashing database. It is upgraded to a hash on first successful login.
	CredentialPlaintext
)

// Credential is the authoritative password encoding for a user. When a row
// carries both a hash and a legacy plaintext value, the hash wins and the
// plaintext is ignored.
type Credential struct {
	Kind  CredentialKind
	Value string
}

// CredentialFor selects the authoritative credential from the two storage
// columns. Hash takes precedence over legacy plaintext.
func CredentialFor(hash, plaintext string) Credential {
	switch {
	case hash != "":
		return Credential{Kind: CredentialHashed, Value: hash}
	case plaintext != "":
		return Credential{Kind: CredentialPlaintext, Value: plaintext}
	default:
		return Credential{Kind: CredentialNone}
	}
}

// Verify checks a supplied password against the credential.
//
// A mismatch is (false, nil); an error is returned only for internal
// failures such as a malformed stored hash, which callers surface as a
// server error rather than a failed login.
func (c Credential) Verify(supplied string) (bool, error) {
	switch c.Kind {
	case CredentialHashed:
		err := bcrypt.CompareHashAndPassword([]byte(c.Value), []byte(supplied))
		if err == nil {
			return true, nil
		}
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, err
	case CredentialPlaintext:
		return supplied == c.Value, nil
	default:
		return false, ErrNoCredential
	}
}

// NeedsUpgrade reports whether a successful verification should trigger a
// rehash of the stored credential.
func (c Credential) NeedsUpgrade() bool {
	return c.Kind == CredentialPlaintext
}

// HashPassword creates a bcrypt hash of the given password.
func HashPassword(password string) (string, error) {
	if err := ValidatePassword(password); err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), DefaultBcryptCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// ValidatePassword checks if a password meets the requirements.
// Requirements: at least 6 characters, at most 72 characters (bcrypt limit).
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > MaxPasswordLength {
		return ErrPasswordTooLong
	}
	return nil
}

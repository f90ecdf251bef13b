package models

import (
	"strings"
	"time"
)

// UserRole represents the role of a user in the system.
type UserRole string

const (
	// RoleUser is a regular account that only sees its own records.
	RoleUser UserRole = "usuario"
	// RoleAdmin is an administrator with access to the user directory.
	RoleAdmin UserRole = "admin"
)

// IsValid checks if the role is a valid UserRole.
func (r UserRole) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents an account that owns landlord, tenant and property records.
//
// The table keeps the legacy column layout: Password holds a plaintext
// password imported from the pre-hashing database and PasswordHash the bcrypt
// hash that replaces it. New accounts only ever get a hash; legacy rows are
// upgraded in place on their first successful login.
type User struct {
	ID           uint       `gorm:"primaryKey;column:id" json:"id"`
	Name         string     `gorm:"column:nome;not null;size:255" json:"nome"`
	Email        string     `gorm:"column:email;uniqueIndex;not null;size:255" json:"email"`
	Password     string     `gorm:"column:senha;size:255" json:"-"`
	PasswordHash string     `gorm:"column:senha_hash;size:255" json:"-"`
	Role         string     `gorm:"column:tipo;default:usuario;size:50" json:"tipo"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	LastLogin    *time.Time `gorm:"column:last_login" json:"last_login,omitempty"`
}

// TableName returns the table name for User.
func (User) TableName() string {
	return "usuarios"
}

// Credential returns the authoritative credential for the user.
func (u *User) Credential() Credential {
	return CredentialFor(u.PasswordHash, u.Password)
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return UserRole(u.Role) == RoleAdmin
}

// NormalizeEmail lowercases and trims an email for storage and lookup, so
// logins are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Validate checks if the user has valid configuration.
func (u *User) Validate() error {
	if u.Name == "" {
		return ErrNameRequired
	}
	if !strings.Contains(u.Email, "@") {
		return ErrInvalidEmail
	}
	if u.Role != "" && !UserRole(u.Role).IsValid() {
		return ErrInvalidRole
	}
	return nil
}

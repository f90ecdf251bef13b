// Package auth provides JWT session token issuance and validation for the API.
package auth

import "github.com/golang-jwt/jwt/v5"

// Claims represents the JWT claims of a session token.
//
// The user id in the claims is the sole source of record ownership for every
// authenticated operation; handlers never take it from the request payload.
type Claims struct {
	jwt.RegisteredClaims

	// UserID is the numeric id of the authenticated user.
	UserID uint `json:"uid"`

	// Email is the login the token was issued for.
	Email string `json:"email"`

	// Name is the user's display name.
	Name string `json:"nome"`

	// Role is the user's role ("admin" or "usuario").
	Role string `json:"tipo"`
}

// IsAdmin returns true if the user has admin role.
func (c *Claims) IsAdmin() bool {
	return c.Role == "admin"
}

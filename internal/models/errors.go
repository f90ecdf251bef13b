package models

import "errors"

// Common errors for identity and registry operations.
var (
	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateUser      = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoCredential       = errors.New("user has no credential set")

	// Landlord errors
	ErrLandlordNotFound = errors.New("landlord not found")

	// Tenant errors
	ErrTenantNotFound = errors.New("tenant not found")

	// Property errors
	ErrPropertyNotFound = errors.New("property not found")

	// ErrNotOwner is returned when a row exists but belongs to another user.
	// Handlers map it to 403, distinct from the 404 of the *NotFound errors.
	ErrNotOwner = errors.New("resource belongs to another user")

	// Validation errors
	ErrInvalidCPF      = errors.New("invalid cpf")
	ErrInvalidEmail    = errors.New("invalid email")
	ErrNameRequired         = errors.New("nome is required")
	ErrAddressRequired      = errors.New("endereco is required")
	ErrPropertyKindRequired = errors.New("tipo is required")
	ErrLandlordRequired     = errors.New("id_locador is required")
	ErrInvalidRole          = errors.New("invalid user role")
)

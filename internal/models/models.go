// Package models defines the persistent domain entities of the registry
// (users, landlords, tenants, properties), their credential handling and the
// sentinel errors shared between the store and the HTTP layer.
package models

// AllModels returns all models for database auto-migration.
func AllModels() []any {
	return []any{
		&User{},
		&Landlord{},
		&Tenant{},
		&Property{},
	}
}

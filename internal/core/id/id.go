// Package id provides UUID handling for entity references coming from the
// ERP database (warehouses, customers, employees).
package id

import (
	"github.com/google/uuid"
)

// ID is a type alias for UUID, used across all entity references.
type ID = uuid.UUID

// Parse converts string to ID with validation.
func Parse(s string) (ID, error) {
	return uuid.Parse(s)
}

// MustParse converts string to ID, panics on error.
// Use only for constants and tests.
func MustParse(s string) ID {
	return uuid.MustParse(s)
}

// Nil returns zero-value UUID.
func Nil() ID {
	return uuid.Nil
}

// IsNil checks if ID is zero-value.
func IsNil(id ID) bool {
	return id == uuid.Nil
}

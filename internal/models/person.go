package models

import (
	"github.com/google/uuid"
)

// PersonDB represents a person row in the database. Rows reachable through
// owner-scoped queries always carry an owner and a sequence number; legacy
// rows without an owner are never returned by those queries.
type PersonDB struct {
	ID     int64     `json:"id" db:"id"`          // Global storage-assigned identifier
	UserID uuid.UUID `json:"-" db:"user_id"`      // Owning user
	Seq    int64     `json:"seq" db:"person_seq"` // Per-owner sequence number, the external key
	Name   string    `json:"name" db:"name"`      // Person name
	Roll   string    `json:"roll" db:"roll"`      // Roll identifier, kept as string
	Age    int       `json:"age" db:"age"`        // Non-negative age
	Gender string    `json:"gender" db:"gender"`  // Free-text gender
}

// Updatable person columns, the allow-list for partial updates.
const (
	PersonFieldName   = "name"
	PersonFieldRoll   = "roll"
	PersonFieldAge    = "age"
	PersonFieldGender = "gender"
)

// PersonProtectedField reports whether a field names part of a record's
// identity (global id, owner, sequence number) and therefore may never
// appear in an update payload.
func PersonProtectedField(field string) bool {
	switch field {
	case "id", "user_id", "person_seq", "seq":
		return true
	}
	return false
}

// PersonUpdatableField reports whether a field may be changed by
// replace or partial-update operations.
func PersonUpdatableField(field string) bool {
	switch field {
	case PersonFieldName, PersonFieldRoll, PersonFieldAge, PersonFieldGender:
		return true
	}
	return false
}

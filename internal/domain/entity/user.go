// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"
)

// Gender is the optional self-declared gender of a user.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// IsValid reports whether g is one of the accepted values.
func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

// User is an account together with its public profile.
type User struct {
	ID               int64     // Store-assigned surrogate key, immutable once created.
	FirstName        string    // Required, never empty.
	LastName         *string   // Optional; nil when absent.
	Email            string    // Normalized (trimmed, lower-cased) and unique across all users.
	PasswordHash     string    // bcrypt output; never leaves the service boundary.
	Gender           *Gender   // Optional; nil when absent.
	Photo            *string   // Asset name in the asset store; nil when the user has no photo.
	RegistrationDate time.Time // Set by the store on insert and never updated.
}

// NormalizeEmail returns the canonical form used for every email lookup and write.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

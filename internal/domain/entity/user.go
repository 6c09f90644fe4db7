// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the credential record of an account.
// Email is unique across all users and is the login identifier.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // The login identifier, unique in the credential store.
	PasswordHash string    // bcrypt digest of the password. Never exposed outside the use case layer.
	Name         string
	Surname      string
	Phone        string
	Roles        Roles     // Non-empty once the record is created.
	Verified     bool      // Set by an out-of-band verification flow; new accounts start unverified.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// DefaultRoles returns the role set assigned to every new registration.
func DefaultRoles() Roles {
	return Roles{RoleUser}
}

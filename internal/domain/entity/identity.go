package entity

import "github.com/google/uuid"

// Identity is the authenticated account acting on a request.
// A nil *Identity means the request is unauthenticated.
type Identity struct {
	UserID uuid.UUID
	Email  string
}

// Owned is implemented by every resource that carries an immutable owner.
type Owned interface {
	GetOwnerID() uuid.UUID
}

// SameIdentity compares two identities by their canonical string form.
func SameIdentity(a, b uuid.UUID) bool {
	return a.String() == b.String()
}

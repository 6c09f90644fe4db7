package entity

import (
	"time"

	"github.com/google/uuid"
)

// Technology is an entry in the public technology catalog.
type Technology struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Person is a read-only directory entry referencing the technologies they use.
type Person struct {
	ID      uuid.UUID
	Name    string
	TechIDs []uuid.UUID
}

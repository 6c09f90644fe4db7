package entity

import (
	"time"

	"github.com/google/uuid"
)

// Post is a link shared by a user about a technology.
type Post struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID // Set on creation, never changed afterwards.
	Title     string
	Link      string
	TechID    uuid.UUID
	Date      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GetOwnerID implements Owned.
func (p *Post) GetOwnerID() uuid.UUID {
	return p.OwnerID
}

// PostFilter narrows a post listing. Nil fields do not filter.
type PostFilter struct {
	OwnerID *uuid.UUID
	TechID  *uuid.UUID
}

// Matches reports whether the post passes every set criterion.
func (f PostFilter) Matches(p *Post) bool {
	if f.OwnerID != nil && !SameIdentity(*f.OwnerID, p.OwnerID) {
		return false
	}
	if f.TechID != nil && *f.TechID != p.TechID {
		return false
	}

	return true
}

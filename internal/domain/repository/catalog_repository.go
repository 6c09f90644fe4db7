package repository

import (
	"context"
	"errors"

	"rentql/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrTechnologyNotFound is returned when a technology is not found.
	ErrTechnologyNotFound = errors.New("technology not found")

	// ErrPersonNotFound is returned when a person is not found.
	ErrPersonNotFound = errors.New("person not found")
)

// TechnologyRepository defines persistence operations for the technology catalog.
type TechnologyRepository interface {
	Create(ctx context.Context, technology *entity.Technology) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Technology, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Technology, error)
	List(ctx context.Context) ([]*entity.Technology, error)
	Update(ctx context.Context, technology *entity.Technology) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PersonRepository is the read-only people directory.
type PersonRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Person, error)
	List(ctx context.Context) ([]*entity.Person, error)
	// Seed inserts people that are not yet present. It is only called at startup.
	Seed(ctx context.Context, people []*entity.Person) error
}

package repository

import (
	"context"
	"errors"

	"rentql/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrApartmentNotFound is returned when an apartment is not found.
var ErrApartmentNotFound = errors.New("apartment not found")

// ApartmentRepository defines persistence operations for apartments.
type ApartmentRepository interface {
	Create(ctx context.Context, apartment *entity.Apartment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Apartment, error)
	// Find returns apartments matching filter, ordered by sort. A nil sort keeps insertion order.
	Find(ctx context.Context, filter entity.ApartmentFilter, sort *entity.ApartmentSort) ([]*entity.Apartment, error)
	// Update writes every mutable field. The owner is never changed.
	Update(ctx context.Context, apartment *entity.Apartment) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteByOwner removes every apartment owned by ownerID and reports how many were removed.
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
}

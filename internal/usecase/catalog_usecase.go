package usecase

import (
	"context"

	"rentql/internal/domain/entity"

	"github.com/google/uuid"
)

// TechnologyInput names a catalog entry.
type TechnologyInput struct {
	Name string `validate:"required,max=100"`
}

// TechnologyUsecase defines the technology catalog operations.
// Reads are public; mutations require an authenticated caller.
type TechnologyUsecase interface {
	Get(ctx context.Context, id uuid.UUID) (*entity.Technology, error)
	List(ctx context.Context) ([]*entity.Technology, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Technology, error)
	Add(ctx context.Context, actor *entity.Identity, input *TechnologyInput) (*entity.Technology, error)
	Update(ctx context.Context, actor *entity.Identity, id uuid.UUID, input *TechnologyInput) (*entity.Technology, error)
	// Delete returns the removed technology.
	Delete(ctx context.Context, actor *entity.Identity, id uuid.UUID) (*entity.Technology, error)
}

// PersonUsecase exposes the read-only people directory.
type PersonUsecase interface {
	Get(ctx context.Context, id uuid.UUID) (*entity.Person, error)
	List(ctx context.Context) ([]*entity.Person, error)
}

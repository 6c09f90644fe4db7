package usecase

import (
	"context"

	"rentql/internal/domain/entity"

	"github.com/google/uuid"
)

// PostInput is the mutable attribute set of a post.
type PostInput struct {
	Title  string    `validate:"required,max=255"`
	Link   string    `validate:"required,url"`
	Date   string    `validate:"max=64"`
	TechID uuid.UUID `validate:"required"`
}

// PostUsecase defines the post operations.
type PostUsecase interface {
	Get(ctx context.Context, id uuid.UUID) (*entity.Post, error)
	List(ctx context.Context, filter entity.PostFilter) ([]*entity.Post, error)
	Create(ctx context.Context, actor *entity.Identity, input *PostInput) (*entity.Post, error)
	Update(ctx context.Context, actor *entity.Identity, id uuid.UUID, input *PostInput) (*entity.Post, error)
	// Delete returns the removed post.
	Delete(ctx context.Context, actor *entity.Identity, id uuid.UUID) (*entity.Post, error)
}

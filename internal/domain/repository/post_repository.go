package repository

import (
	"context"
	"errors"

	"rentql/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPostNotFound is returned when a post is not found.
var ErrPostNotFound = errors.New("post not found")

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error)
	Find(ctx context.Context, filter entity.PostFilter) ([]*entity.Post, error)
	// Update writes every mutable field. The owner is never changed.
	Update(ctx context.Context, post *entity.Post) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
}

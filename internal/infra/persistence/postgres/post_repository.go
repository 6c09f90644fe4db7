package postgres

import (
	"context"
	"time"

	"rentql/internal/domain/entity"
	domainerrors "rentql/internal/domain/errors"
	"rentql/internal/domain/repository"
	"rentql/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// postRepository implements the domain.PostRepository interface.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

// Create persists a new post. A missing owner row surfaces as an authentication failure.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	if err := assignID(&post.ID); err != nil {
		return err
	}

	postM := fromPostDomain(post)
	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUnauthenticated.WrapMessage("post owner no longer exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create post")
	}

	post.CreatedAt = postM.CreatedAt
	post.UpdatedAt = postM.UpdatedAt

	return nil
}

// FindByID retrieves a post by its unique ID.
func (repo *postRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	var postM model.PostModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&postM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by ID")
	}

	return toPostDomain(&postM), nil
}

// Find lists posts in creation order.
func (repo *postRepository) Find(ctx context.Context, filter entity.PostFilter) ([]*entity.Post, error) {
	tx := repo.db.WithContext(ctx).Model(&model.PostModel{})
	if filter.OwnerID != nil {
		tx = tx.Where("owner_id = ?", *filter.OwnerID)
	}
	if filter.TechID != nil {
		tx = tx.Where("tech_id = ?", *filter.TechID)
	}

	var postModels []*model.PostModel
	if err := tx.Order("created_at ASC").Order("id ASC").Find(&postModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find posts")
	}

	posts := make([]*entity.Post, 0, len(postModels))
	for _, postM := range postModels {
		posts = append(posts, toPostDomain(postM))
	}

	return posts, nil
}

// Update writes every mutable column. owner_id is never part of the update set.
func (repo *postRepository) Update(ctx context.Context, post *entity.Post) error {
	post.UpdatedAt = time.Now()
	postM := fromPostDomain(post)

	result := repo.db.WithContext(ctx).
		Model(&model.PostModel{ID: post.ID}).
		Select("Title", "Link", "TechID", "Date", "UpdatedAt").
		Updates(postM)
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// Delete removes a post by its ID.
func (repo *postRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PostModel{})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// DeleteByOwner removes every post of the owner. Zero matches is not an error.
func (repo *postRepository) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).Where("owner_id = ?", ownerID).Delete(&model.PostModel{})
	if err := result.Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to delete posts by owner")
	}

	return result.RowsAffected, nil
}

func toPostDomain(data *model.PostModel) *entity.Post {
	return &entity.Post{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Title:     data.Title,
		Link:      data.Link,
		TechID:    data.TechID,
		Date:      data.Date,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromPostDomain(data *entity.Post) *model.PostModel {
	return &model.PostModel{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Title:     data.Title,
		Link:      data.Link,
		TechID:    data.TechID,
		Date:      data.Date,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

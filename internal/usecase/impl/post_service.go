package impl

import (
	"context"
	"log/slog"

	deliverycontext "rentql/internal/delivery/context"
	"rentql/internal/domain/entity"
	domainerrors "rentql/internal/domain/errors"
	"rentql/internal/domain/policy"
	"rentql/internal/domain/repository"
	"rentql/internal/errors"
	"rentql/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// postService implements the PostUsecase interface.
type postService struct {
	txManager repository.TransactionManager
	postRepo  repository.PostRepository
	techRepo  repository.TechnologyRepository
	logger    *slog.Logger
}

// PostServiceParams holds dependencies for PostService, injected by Fx.
type PostServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	PostRepo  repository.PostRepository
	TechRepo  repository.TechnologyRepository
	Logger    *slog.Logger
}

// NewPostService creates a new post service.
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	return &postService{
		txManager: params.TxManager,
		postRepo:  params.PostRepo,
		techRepo:  params.TechRepo,
		logger:    params.Logger,
	}
}

func (srv *postService) Get(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	post, err := srv.postRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find post")
	}

	return post, nil
}

func (srv *postService) List(ctx context.Context, filter entity.PostFilter) ([]*entity.Post, error) {
	posts, err := srv.postRepo.Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	return posts, nil
}

// Create stores a new post owned by the caller.
func (srv *postService) Create(ctx context.Context, actor *entity.Identity, input *usecase.PostInput) (*entity.Post, error) {
	if err := policy.RequireIdentity(actor); err != nil {
		return nil, err
	}
	if err := srv.ensureTechnology(ctx, input.TechID); err != nil {
		return nil, err
	}

	post := &entity.Post{OwnerID: actor.UserID}
	applyPostInput(post, input)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := ensureAccount(ctx, repoFactory.NewUserRepository(), actor); err != nil {
			return err
		}

		return repoFactory.NewPostRepository().Create(ctx, post)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrUnauthenticated) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to create post")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Post created",
		slog.String("post_id", post.ID.String()),
		slog.String("owner_id", post.OwnerID.String()),
	)

	return post, nil
}

// Update replaces the mutable attributes of a post the caller owns.
func (srv *postService) Update(ctx context.Context, actor *entity.Identity, id uuid.UUID, input *usecase.PostInput) (*entity.Post, error) {
	post, err := policy.LoadOwned(ctx, actor, id, srv.postRepo.FindByID, repository.ErrPostNotFound)
	if err != nil {
		return nil, err
	}
	if post.TechID != input.TechID {
		if err := srv.ensureTechnology(ctx, input.TechID); err != nil {
			return nil, err
		}
	}

	applyPostInput(post, input)

	if err := srv.postRepo.Update(ctx, post); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to update post")
	}

	return post, nil
}

// Delete removes a post the caller owns.
func (srv *postService) Delete(ctx context.Context, actor *entity.Identity, id uuid.UUID) (*entity.Post, error) {
	post, err := policy.LoadOwned(ctx, actor, id, srv.postRepo.FindByID, repository.ErrPostNotFound)
	if err != nil {
		return nil, err
	}

	if err := srv.postRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to delete post")
	}

	return post, nil
}

func (srv *postService) ensureTechnology(ctx context.Context, techID uuid.UUID) error {
	_, err := srv.techRepo.FindByID(ctx, techID)
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrTechnologyNotFound) {
		return domainerrors.ErrValidationFailed.WithDetails("techId does not reference a known technology")
	}

	return errors.Wrap(err, "failed to find technology")
}

func applyPostInput(post *entity.Post, input *usecase.PostInput) {
	post.Title = input.Title
	post.Link = input.Link
	post.Date = input.Date
	post.TechID = input.TechID
}

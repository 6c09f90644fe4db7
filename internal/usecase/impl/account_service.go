// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "rentql/internal/delivery/context"
	"rentql/internal/domain/constants"
	"rentql/internal/domain/entity"
	domainerrors "rentql/internal/domain/errors"
	"rentql/internal/domain/policy"
	"rentql/internal/domain/repository"
	"rentql/internal/domain/service"
	"rentql/internal/errors"
	"rentql/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// normalizeEmail makes lookups case-insensitive by storing a canonical form.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an unverified account with the default role set.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}

	_, err := srv.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, domainerrors.ErrDuplicateEmail
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check email")
	}

	digest, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := &entity.User{
		Email:        email,
		PasswordHash: digest,
		Name:         input.Name,
		Surname:      input.Surname,
		Phone:        input.Phone,
		Roles:        entity.DefaultRoles(),
		Verified:     false,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("Registration completed", slog.String("user_id", user.ID.String()))

	return user, nil
}

// Login answers an unknown email and a wrong password with the same error.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Debug("Login rejected: unknown email")

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	ok, err := srv.hasher.Check(input.Password, user.PasswordHash)
	if err != nil {
		srv.log(ctx).Error("Stored password digest is unusable",
			slog.String("user_id", user.ID.String()),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrInternalError.WrapMessage("password check failed")
	}
	if !ok {
		srv.log(ctx).Debug("Login rejected: password mismatch", slog.String("user_id", user.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.Issue(service.TokenClaims{Email: user.Email, UserID: user.ID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	return &usecase.LoginOutput{User: user, Token: token}, nil
}

// Me returns the caller's own credential record.
func (srv *accountService) Me(ctx context.Context, actor *entity.Identity) (*entity.User, error) {
	if err := policy.RequireIdentity(actor); err != nil {
		return nil, err
	}

	return srv.findUser(ctx, actor.UserID)
}

// UpdateProfile changes the caller's own profile fields.
func (srv *accountService) UpdateProfile(ctx context.Context, actor *entity.Identity, input *usecase.UpdateProfileInput) (*entity.User, error) {
	if err := policy.RequireIdentity(actor); err != nil {
		return nil, err
	}

	user, err := srv.findUser(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Surname != nil {
		user.Surname = *input.Surname
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to update user")
	}

	return user, nil
}

// DeleteAccount removes the account and cascades to owned resources in one transaction,
// then announces the deletion so the sweeper can reconcile stores without transactions.
func (srv *accountService) DeleteAccount(ctx context.Context, actor *entity.Identity) (*usecase.PurgeOutput, error) {
	if err := policy.RequireIdentity(actor); err != nil {
		return nil, err
	}

	var out *usecase.PurgeOutput
	// Owned rows go first; the store references users from apartments and posts.
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		purged, err := purgeOwned(ctx, repoFactory, actor.UserID)
		if err != nil {
			return err
		}

		if err := repoFactory.NewUserRepository().Delete(ctx, actor.UserID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to delete user")
		}
		out = purged

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Account deleted",
		slog.String("user_id", actor.UserID.String()),
		slog.Int64("apartments", out.Apartments),
		slog.Int64("posts", out.Posts),
	)

	event := &service.AccountDeletedEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		EventType: constants.EventTypeAccountDeleted,
		UserID:    actor.UserID.String(),
		DeletedAt: time.Now().Unix(),
	}
	if err := srv.publisher.PublishAccountDeleted(ctx, event); err != nil {
		// The deletion is committed; the sweeper simply misses this reconciliation.
		srv.log(ctx).Warn("Failed to publish account deletion", slog.Any("error", err))
	}

	return out, nil
}

// PurgeOwnedResources removes whatever the owner left behind. Live accounts are never purged.
func (srv *accountService) PurgeOwnedResources(ctx context.Context, ownerID uuid.UUID) (*usecase.PurgeOutput, error) {
	var out *usecase.PurgeOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		_, err := repoFactory.NewUserRepository().FindByID(ctx, ownerID)
		switch {
		case err == nil:
			return usecase.ErrAccountStillExists
		case !errors.Is(err, repository.ErrUserNotFound):
			return errors.Wrap(err, "failed to look up owner")
		}

		purged, err := purgeOwned(ctx, repoFactory, ownerID)
		if err != nil {
			return err
		}
		out = purged

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func purgeOwned(ctx context.Context, repoFactory repository.RepositoryFactory, ownerID uuid.UUID) (*usecase.PurgeOutput, error) {
	apartments, err := repoFactory.NewApartmentRepository().DeleteByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete owned apartments")
	}

	posts, err := repoFactory.NewPostRepository().DeleteByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete owned posts")
	}

	return &usecase.PurgeOutput{Apartments: apartments, Posts: posts}, nil
}

func (srv *accountService) findUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

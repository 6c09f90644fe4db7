package impl

import (
	"context"

	"rentql/internal/domain/entity"
	domainerrors "rentql/internal/domain/errors"
	"rentql/internal/domain/repository"
	"rentql/internal/errors"
)

// ensureAccount rejects an identity whose credential record is gone.
// Issued tokens outlive account deletion.
func ensureAccount(ctx context.Context, users repository.UserRepository, actor *entity.Identity) error {
	if _, err := users.FindByID(ctx, actor.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUnauthenticated.WithDetails("account no longer exists")
		}

		return errors.Wrap(err, "failed to find account")
	}

	return nil
}

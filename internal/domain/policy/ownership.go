// Package policy holds the authorization rules applied before any mutation.
package policy

import (
	"context"

	"rentql/internal/domain/entity"
	domainerrors "rentql/internal/domain/errors"
	"rentql/internal/errors"

	"github.com/google/uuid"
)

// RequireIdentity rejects unauthenticated callers before any store access.
func RequireIdentity(actor *entity.Identity) error {
	if actor == nil {
		return domainerrors.ErrUnauthenticated
	}

	return nil
}

// Authorize checks that the actor owns the resource.
func Authorize(actor *entity.Identity, resource entity.Owned) error {
	if err := RequireIdentity(actor); err != nil {
		return err
	}
	if !entity.SameIdentity(actor.UserID, resource.GetOwnerID()) {
		return domainerrors.ErrForbidden
	}

	return nil
}

// LoadOwned runs the full mutation check: identity, existence, then ownership.
// notFound is the store's sentinel error for a missing record; it is reported as ErrNotFound.
// Any other store error is returned wrapped.
func LoadOwned[T entity.Owned](ctx context.Context, actor *entity.Identity, id uuid.UUID, find func(ctx context.Context, id uuid.UUID) (T, error), notFound error) (T, error) {
	var zero T

	if err := RequireIdentity(actor); err != nil {
		return zero, err
	}

	resource, err := find(ctx, id)
	if err != nil {
		if errors.Is(err, notFound) {
			return zero, domainerrors.ErrNotFound
		}

		return zero, errors.Wrap(err, "load owned resource")
	}

	if err := Authorize(actor, resource); err != nil {
		return zero, err
	}

	return resource, nil
}

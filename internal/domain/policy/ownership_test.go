package policy

import (
	"context"
	"testing"

	"rentql/internal/domain/entity"
	domainerrors "rentql/internal/domain/errors"
	"rentql/internal/domain/repository"
	"rentql/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireIdentity(t *testing.T) {
	assert.ErrorIs(t, RequireIdentity(nil), domainerrors.ErrUnauthenticated)
	assert.NoError(t, RequireIdentity(&entity.Identity{UserID: uuid.New()}))
}

func TestAuthorize(t *testing.T) {
	owner := uuid.New()
	post := &entity.Post{ID: uuid.New(), OwnerID: owner}

	// A re-parsed copy of the same identity is still the owner.
	sameOwner, err := uuid.Parse(owner.String())
	require.NoError(t, err)

	assert.NoError(t, Authorize(&entity.Identity{UserID: sameOwner}, post))
	assert.ErrorIs(t, Authorize(&entity.Identity{UserID: uuid.New()}, post), domainerrors.ErrForbidden)
	assert.ErrorIs(t, Authorize(nil, post), domainerrors.ErrUnauthenticated)
}

func TestLoadOwned(t *testing.T) {
	owner := uuid.New()
	apt := &entity.Apartment{ID: uuid.New(), OwnerID: owner}
	dbErr := errors.New("connection refused")

	calls := 0
	find := func(_ context.Context, id uuid.UUID) (*entity.Apartment, error) {
		calls++
		switch id {
		case apt.ID:
			return apt, nil
		case uuid.Nil:
			return nil, dbErr
		default:
			return nil, repository.ErrApartmentNotFound
		}
	}

	tests := []struct {
		name    string
		actor   *entity.Identity
		id      uuid.UUID
		wantErr error
		calls   int
	}{
		{name: "owner", actor: &entity.Identity{UserID: owner}, id: apt.ID, calls: 1},
		{name: "unauthenticated skips the store", actor: nil, id: apt.ID, wantErr: domainerrors.ErrUnauthenticated, calls: 0},
		{name: "missing", actor: &entity.Identity{UserID: owner}, id: uuid.New(), wantErr: domainerrors.ErrNotFound, calls: 1},
		{name: "stranger", actor: &entity.Identity{UserID: uuid.New()}, id: apt.ID, wantErr: domainerrors.ErrForbidden, calls: 1},
		{name: "store failure", actor: &entity.Identity{UserID: owner}, id: uuid.Nil, wantErr: dbErr, calls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls = 0
			got, err := LoadOwned(context.Background(), tt.actor, tt.id, find, repository.ErrApartmentNotFound)
			assert.Equal(t, tt.calls, calls)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Same(t, apt, got)
		})
	}
}

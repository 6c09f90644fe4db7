package impl

import (
	"context"
	"testing"

	"rentql/internal/domain/entity"
	domainerrors "rentql/internal/domain/errors"
	"rentql/internal/domain/repository"
	mockRepo "rentql/internal/mocks/repository"
	"rentql/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTechnologyService_MutationsRequireIdentity(t *testing.T) {
	techRepo := mockRepo.NewMockTechnologyRepository(t)
	srv := NewTechnologyService(TechnologyServiceParams{TechRepo: techRepo, Logger: discardLogger()})
	ctx := context.Background()

	_, err := srv.Add(ctx, nil, &usecase.TechnologyInput{Name: "Go"})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	_, err = srv.Update(ctx, nil, uuid.New(), &usecase.TechnologyInput{Name: "Go"})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	_, err = srv.Delete(ctx, nil, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestTechnologyService_UpdateAndDelete(t *testing.T) {
	techRepo := mockRepo.NewMockTechnologyRepository(t)
	srv := NewTechnologyService(TechnologyServiceParams{TechRepo: techRepo, Logger: discardLogger()})
	ctx := context.Background()
	actor := &entity.Identity{UserID: uuid.New()}
	id := uuid.New()

	techRepo.EXPECT().FindByID(ctx, id).Return(&entity.Technology{ID: id, Name: "Golang"}, nil).Twice()
	techRepo.EXPECT().Update(ctx, mock.MatchedBy(func(tech *entity.Technology) bool {
		return tech.ID == id && tech.Name == "Go"
	})).Return(nil)
	techRepo.EXPECT().Delete(ctx, id).Return(nil)

	updated, err := srv.Update(ctx, actor, id, &usecase.TechnologyInput{Name: "Go"})
	require.NoError(t, err)
	assert.Equal(t, "Go", updated.Name)

	deleted, err := srv.Delete(ctx, actor, id)
	require.NoError(t, err)
	assert.Equal(t, id, deleted.ID)
}

func TestTechnologyService_ListByIDs(t *testing.T) {
	techRepo := mockRepo.NewMockTechnologyRepository(t)
	srv := NewTechnologyService(TechnologyServiceParams{TechRepo: techRepo, Logger: discardLogger()})
	ctx := context.Background()

	empty, err := srv.ListByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	ids := []uuid.UUID{uuid.New()}
	techRepo.EXPECT().FindByIDs(ctx, ids).Return([]*entity.Technology{{ID: ids[0]}}, nil)

	found, err := srv.ListByIDs(ctx, ids)
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestPersonService_Get(t *testing.T) {
	personRepo := mockRepo.NewMockPersonRepository(t)
	srv := NewPersonService(personRepo)
	ctx := context.Background()
	id := uuid.New()

	personRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrPersonNotFound)

	_, err := srv.Get(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

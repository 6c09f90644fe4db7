package memory

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

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())

	user := &entity.User{Email: "ana@example.com", PasswordHash: "digest", Roles: entity.DefaultRoles()}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	dup := &entity.User{Email: "ana@example.com", PasswordHash: "other"}
	assert.ErrorIs(t, repo.Create(ctx, dup), domainerrors.ErrDuplicateEmail)

	found, err := repo.FindByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	// Mutating a returned record does not touch the store.
	found.Roles[0] = entity.RoleAdmin
	again, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.Roles{entity.RoleUser}, again.Roles)

	again.Email = "ana@new.example.com"
	again.Name = "Ana"
	require.NoError(t, repo.Update(ctx, again))

	_, err = repo.FindByEmail(ctx, "ana@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	updated, err := repo.FindByEmail(ctx, "ana@new.example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ana", updated.Name)

	require.NoError(t, repo.Delete(ctx, user.ID))
	assert.ErrorIs(t, repo.Delete(ctx, user.ID), repository.ErrUserNotFound)
	_, err = repo.FindByID(ctx, user.ID)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	// The email is free again after deletion.
	assert.NoError(t, repo.Create(ctx, &entity.User{Email: "ana@new.example.com"}))
}

func TestApartmentRepository_OwnerIsImmutable(t *testing.T) {
	ctx := context.Background()
	repo := NewApartmentRepository(NewStore())

	owner := uuid.New()
	apt := &entity.Apartment{OwnerID: owner, Title: "Loft", Photos: []string{"a.jpg"}}
	require.NoError(t, repo.Create(ctx, apt))

	changed := *apt
	changed.OwnerID = uuid.New()
	changed.Title = "Renamed loft"
	require.NoError(t, repo.Update(ctx, &changed))

	stored, err := repo.FindByID(ctx, apt.ID)
	require.NoError(t, err)
	assert.Equal(t, owner, stored.OwnerID)
	assert.Equal(t, "Renamed loft", stored.Title)

	assert.ErrorIs(t, repo.Update(ctx, &entity.Apartment{ID: uuid.New()}), repository.ErrApartmentNotFound)
}

func TestApartmentRepository_FindFilterAndSort(t *testing.T) {
	ctx := context.Background()
	repo := NewApartmentRepository(NewStore())

	owner := uuid.New()
	for _, apt := range []*entity.Apartment{
		{OwnerID: owner, Title: "A", City: "Riga", Price: 700, RoomCount: 2},
		{OwnerID: uuid.New(), Title: "B", City: "Riga", Price: 300, RoomCount: 1},
		{OwnerID: owner, Title: "C", City: "Oslo", Price: 500, RoomCount: 3},
	} {
		require.NoError(t, repo.Create(ctx, apt))
	}

	all, err := repo.Find(ctx, entity.ApartmentFilter{}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, titles(all))

	byPrice, err := repo.Find(ctx, entity.ApartmentFilter{}, &entity.ApartmentSort{Field: entity.ApartmentSortByPrice})
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "A"}, titles(byPrice))

	city := "Riga"
	riga, err := repo.Find(ctx, entity.ApartmentFilter{City: &city}, &entity.ApartmentSort{Field: entity.ApartmentSortByPrice, Desc: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, titles(riga))

	mine, err := repo.Find(ctx, entity.ApartmentFilter{OwnerID: &owner}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, titles(mine))

	none, err := repo.Find(ctx, entity.ApartmentFilter{OwnerID: new(uuid.UUID)}, nil)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestDeleteByOwner(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	apartments := NewApartmentRepository(store)
	posts := NewPostRepository(store)

	owner, other := uuid.New(), uuid.New()
	require.NoError(t, apartments.Create(ctx, &entity.Apartment{OwnerID: owner}))
	require.NoError(t, apartments.Create(ctx, &entity.Apartment{OwnerID: owner}))
	require.NoError(t, apartments.Create(ctx, &entity.Apartment{OwnerID: other}))
	require.NoError(t, posts.Create(ctx, &entity.Post{OwnerID: owner}))

	n, err := apartments.DeleteByOwner(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = posts.DeleteByOwner(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	// Running the cascade again is a no-op.
	n, err = apartments.DeleteByOwner(ctx, owner)
	require.NoError(t, err)
	assert.Zero(t, n)

	left, err := apartments.Find(ctx, entity.ApartmentFilter{}, nil)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, other, left[0].OwnerID)
}

func TestTransactionManager(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	users := NewUserRepository(store)
	apartments := NewApartmentRepository(store)
	tm := NewTransactionManager(store)

	user := &entity.User{Email: "ana@example.com"}
	require.NoError(t, users.Create(ctx, user))
	require.NoError(t, apartments.Create(ctx, &entity.Apartment{OwnerID: user.ID}))

	t.Run("rollback restores every table", func(t *testing.T) {
		boom := errors.New("boom")
		err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
			require.NoError(t, f.NewUserRepository().Delete(ctx, user.ID))
			_, err := f.NewApartmentRepository().DeleteByOwner(ctx, user.ID)
			require.NoError(t, err)

			return boom
		})
		assert.ErrorIs(t, err, boom)

		_, err = users.FindByEmail(ctx, "ana@example.com")
		assert.NoError(t, err)
		left, err := apartments.Find(ctx, entity.ApartmentFilter{OwnerID: &user.ID}, nil)
		require.NoError(t, err)
		assert.Len(t, left, 1)
	})

	t.Run("panic restores and propagates", func(t *testing.T) {
		assert.Panics(t, func() {
			_ = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
				_ = f.NewUserRepository().Delete(ctx, user.ID)
				panic("boom")
			})
		})

		_, err := users.FindByID(ctx, user.ID)
		assert.NoError(t, err)
	})

	t.Run("commit", func(t *testing.T) {
		err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
			if err := f.NewUserRepository().Delete(ctx, user.ID); err != nil {
				return err
			}
			_, err := f.NewApartmentRepository().DeleteByOwner(ctx, user.ID)

			return err
		})
		require.NoError(t, err)

		_, err = users.FindByID(ctx, user.ID)
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		called := false
		err := tm.Execute(cancelled, func(repository.RepositoryFactory) error {
			called = true

			return nil
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)
	})
}

func TestCatalogRepositories(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	technologies := NewTechnologyRepository(store)
	people := NewPersonRepository(store)

	react := &entity.Technology{Name: "React"}
	vue := &entity.Technology{Name: "Vue"}
	require.NoError(t, technologies.Create(ctx, react))
	require.NoError(t, technologies.Create(ctx, vue))
	assert.Error(t, technologies.Create(ctx, &entity.Technology{ID: react.ID, Name: "dup"}))

	found, err := technologies.FindByIDs(ctx, []uuid.UUID{vue.ID, uuid.New()})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Vue", found[0].Name)

	person := &entity.Person{ID: uuid.New(), Name: "Luka Modric", TechIDs: []uuid.UUID{react.ID}}
	require.NoError(t, people.Seed(ctx, []*entity.Person{person}))
	require.NoError(t, people.Seed(ctx, []*entity.Person{person}))

	all, err := people.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, technologies.Delete(ctx, vue.ID))
	_, err = technologies.FindByID(ctx, vue.ID)
	assert.ErrorIs(t, err, repository.ErrTechnologyNotFound)
}

func titles(apartments []*entity.Apartment) []string {
	out := make([]string, 0, len(apartments))
	for _, apt := range apartments {
		out = append(out, apt.Title)
	}

	return out
}

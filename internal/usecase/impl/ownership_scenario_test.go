package impl

import (
	"context"
	"testing"

	"rentql/internal/domain/entity"
	domainerrors "rentql/internal/domain/errors"
	"rentql/internal/infra/persistence/memory"
	"rentql/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryServices struct {
	accounts   usecase.AccountUsecase
	apartments usecase.ApartmentUsecase
	posts      usecase.PostUsecase
	tech       usecase.TechnologyUsecase
	publisher  *recordingPublisher
}

func newMemoryServices(t *testing.T) *memoryServices {
	t.Helper()

	store := memory.NewStore()
	publisher := &recordingPublisher{}
	logger := discardLogger()

	return &memoryServices{
		accounts: NewAccountService(AccountServiceParams{
			TxManager:    memory.NewTransactionManager(store),
			UserRepo:     memory.NewUserRepository(store),
			Hasher:       plainHasher{},
			TokenService: staticTokens{},
			Publisher:    publisher,
			Logger:       logger,
		}),
		apartments: NewApartmentService(ApartmentServiceParams{
			TxManager:     memory.NewTransactionManager(store),
			ApartmentRepo: memory.NewApartmentRepository(store),
			Logger:        logger,
		}),
		posts: NewPostService(PostServiceParams{
			TxManager: memory.NewTransactionManager(store),
			PostRepo:  memory.NewPostRepository(store),
			TechRepo:  memory.NewTechnologyRepository(store),
			Logger:    logger,
		}),
		tech: NewTechnologyService(TechnologyServiceParams{
			TechRepo: memory.NewTechnologyRepository(store),
			Logger:   logger,
		}),
		publisher: publisher,
	}
}

func register(t *testing.T, s *memoryServices, email string) *entity.Identity {
	t.Helper()

	user, err := s.accounts.Register(context.Background(), &usecase.RegisterInput{Email: email, Password: "Secret#123"})
	require.NoError(t, err)

	return &entity.Identity{UserID: user.ID, Email: user.Email}
}

func apartmentInput(title string, price float64) *usecase.ApartmentInput {
	return &usecase.ApartmentInput{
		Title:     title,
		City:      "Taipei",
		Latitude:  25.033,
		Longitude: 121.5654,
		Price:     price,
		RoomCount: 2,
	}
}

func TestOwnership_ForeignUpdateAndDeleteAreForbidden(t *testing.T) {
	s := newMemoryServices(t)
	ctx := context.Background()
	owner := register(t, s, "owner@example.com")
	intruder := register(t, s, "intruder@example.com")

	apartment, err := s.apartments.Create(ctx, owner, apartmentInput("Loft", 1000))
	require.NoError(t, err)

	_, err = s.apartments.Update(ctx, intruder, apartment.ID, apartmentInput("Hijacked", 1))
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = s.apartments.Delete(ctx, intruder, apartment.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	stored, err := s.apartments.Get(ctx, apartment.ID)
	require.NoError(t, err)
	assert.Equal(t, "Loft", stored.Title)
	assert.Equal(t, 1000.0, stored.Price)
	assert.Equal(t, owner.UserID, stored.OwnerID)
}

func TestOwnership_OwnerUpdateIsVisible(t *testing.T) {
	s := newMemoryServices(t)
	ctx := context.Background()
	owner := register(t, s, "owner@example.com")

	apartment, err := s.apartments.Create(ctx, owner, apartmentInput("Loft", 1000))
	require.NoError(t, err)

	// A different encoding of the same identity is still the owner.
	sameOwner := &entity.Identity{UserID: uuid.MustParse(owner.UserID.String())}
	_, err = s.apartments.Update(ctx, sameOwner, apartment.ID, apartmentInput("Renovated loft", 1200))
	require.NoError(t, err)

	stored, err := s.apartments.Get(ctx, apartment.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renovated loft", stored.Title)
	assert.Equal(t, 1200.0, stored.Price)
	assert.Equal(t, owner.UserID, stored.OwnerID)
}

func TestOwnership_UnauthenticatedCreatePersistsNothing(t *testing.T) {
	s := newMemoryServices(t)
	ctx := context.Background()

	_, err := s.apartments.Create(ctx, nil, apartmentInput("Ghost", 1))
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	_, err = s.posts.Create(ctx, nil, &usecase.PostInput{Title: "Ghost", Link: "https://example.com", TechID: uuid.New()})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	apartments, err := s.apartments.List(ctx, entity.ApartmentFilter{}, nil)
	require.NoError(t, err)
	assert.Empty(t, apartments)

	posts, err := s.posts.List(ctx, entity.PostFilter{})
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestOwnership_MissingResourceIsNotFound(t *testing.T) {
	s := newMemoryServices(t)
	owner := register(t, s, "owner@example.com")

	_, err := s.apartments.Update(context.Background(), owner, uuid.New(), apartmentInput("Nope", 1))
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestOwnership_DeleteAccountCascades(t *testing.T) {
	s := newMemoryServices(t)
	ctx := context.Background()
	owner := register(t, s, "owner@example.com")
	other := register(t, s, "other@example.com")

	tech, err := s.tech.Add(ctx, owner, &usecase.TechnologyInput{Name: "Go"})
	require.NoError(t, err)

	first, err := s.apartments.Create(ctx, owner, apartmentInput("First", 1000))
	require.NoError(t, err)
	second, err := s.apartments.Create(ctx, owner, apartmentInput("Second", 2000))
	require.NoError(t, err)
	post, err := s.posts.Create(ctx, owner, &usecase.PostInput{Title: "Tour", Link: "https://go.dev/tour", TechID: tech.ID})
	require.NoError(t, err)
	kept, err := s.apartments.Create(ctx, other, apartmentInput("Kept", 500))
	require.NoError(t, err)

	out, err := s.accounts.DeleteAccount(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, int64(2), out.Apartments)
	assert.Equal(t, int64(1), out.Posts)
	require.Len(t, s.publisher.events, 1)
	assert.Equal(t, owner.UserID.String(), s.publisher.events[0].UserID)

	for _, id := range []uuid.UUID{first.ID, second.ID} {
		_, err := s.apartments.Get(ctx, id)
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	}
	_, err = s.posts.Get(ctx, post.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = s.apartments.Get(ctx, kept.ID)
	assert.NoError(t, err)

	_, err = s.accounts.Me(ctx, owner)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)

	// A replayed purge is a no-op.
	again, err := s.accounts.PurgeOwnedResources(ctx, owner.UserID)
	require.NoError(t, err)
	assert.Equal(t, &usecase.PurgeOutput{}, again)
}

func TestOwnership_DeletedAccountCannotCreate(t *testing.T) {
	s := newMemoryServices(t)
	ctx := context.Background()
	owner := register(t, s, "owner@example.com")
	other := register(t, s, "other@example.com")

	tech, err := s.tech.Add(ctx, other, &usecase.TechnologyInput{Name: "Go"})
	require.NoError(t, err)

	_, err = s.accounts.DeleteAccount(ctx, owner)
	require.NoError(t, err)

	_, err = s.apartments.Create(ctx, owner, apartmentInput("Orphan", 1000))
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	_, err = s.posts.Create(ctx, owner, &usecase.PostInput{Title: "Orphan", Link: "https://go.dev/tour", TechID: tech.ID})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	apartments, err := s.apartments.List(ctx, entity.ApartmentFilter{}, nil)
	require.NoError(t, err)
	assert.Empty(t, apartments)

	posts, err := s.posts.List(ctx, entity.PostFilter{})
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestOwnership_PostRequiresKnownTechnology(t *testing.T) {
	s := newMemoryServices(t)
	owner := register(t, s, "owner@example.com")

	_, err := s.posts.Create(context.Background(), owner, &usecase.PostInput{Title: "Tour", Link: "https://go.dev/tour", TechID: uuid.New()})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestListMine_SortsOwnApartments(t *testing.T) {
	s := newMemoryServices(t)
	ctx := context.Background()
	owner := register(t, s, "owner@example.com")
	other := register(t, s, "other@example.com")

	for _, price := range []float64{300, 100, 200} {
		_, err := s.apartments.Create(ctx, owner, apartmentInput("Flat", price))
		require.NoError(t, err)
	}
	_, err := s.apartments.Create(ctx, other, apartmentInput("Elsewhere", 50))
	require.NoError(t, err)

	mine, err := s.apartments.ListMine(ctx, owner, &entity.ApartmentSort{Field: entity.ApartmentSortByPrice})
	require.NoError(t, err)
	require.Len(t, mine, 3)
	assert.Equal(t, []float64{100, 200, 300}, []float64{mine[0].Price, mine[1].Price, mine[2].Price})

	_, err = s.apartments.ListMine(ctx, owner, &entity.ApartmentSort{Field: "owner"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = s.apartments.ListMine(ctx, nil, nil)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

package impl

import (
	"context"
	"fmt"
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

// apartmentService implements the ApartmentUsecase interface.
type apartmentService struct {
	txManager     repository.TransactionManager
	apartmentRepo repository.ApartmentRepository
	logger        *slog.Logger
}

// ApartmentServiceParams holds dependencies for ApartmentService, injected by Fx.
type ApartmentServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	ApartmentRepo repository.ApartmentRepository
	Logger        *slog.Logger
}

// NewApartmentService creates a new apartment service.
func NewApartmentService(params ApartmentServiceParams) usecase.ApartmentUsecase {
	return &apartmentService{
		txManager:     params.TxManager,
		apartmentRepo: params.ApartmentRepo,
		logger:        params.Logger,
	}
}

func (srv *apartmentService) Get(ctx context.Context, id uuid.UUID) (*entity.Apartment, error) {
	apartment, err := srv.apartmentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrApartmentNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find apartment")
	}

	return apartment, nil
}

func (srv *apartmentService) List(ctx context.Context, filter entity.ApartmentFilter, sort *entity.ApartmentSort) ([]*entity.Apartment, error) {
	if err := validateApartmentSort(sort); err != nil {
		return nil, err
	}

	apartments, err := srv.apartmentRepo.Find(ctx, filter, sort)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list apartments")
	}

	return apartments, nil
}

// ListMine lists the caller's own apartments.
func (srv *apartmentService) ListMine(ctx context.Context, actor *entity.Identity, sort *entity.ApartmentSort) ([]*entity.Apartment, error) {
	if err := policy.RequireIdentity(actor); err != nil {
		return nil, err
	}

	return srv.List(ctx, entity.ApartmentFilter{OwnerID: &actor.UserID}, sort)
}

// Create stores a new apartment owned by the caller.
// The owner account is checked in the same transaction as the insert.
func (srv *apartmentService) Create(ctx context.Context, actor *entity.Identity, input *usecase.ApartmentInput) (*entity.Apartment, error) {
	if err := policy.RequireIdentity(actor); err != nil {
		return nil, err
	}

	apartment := &entity.Apartment{OwnerID: actor.UserID}
	applyApartmentInput(apartment, input)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := ensureAccount(ctx, repoFactory.NewUserRepository(), actor); err != nil {
			return err
		}

		return repoFactory.NewApartmentRepository().Create(ctx, apartment)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrUnauthenticated) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to create apartment")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Apartment created",
		slog.String("apartment_id", apartment.ID.String()),
		slog.String("owner_id", apartment.OwnerID.String()),
	)

	return apartment, nil
}

// Update replaces the mutable attributes of an apartment the caller owns.
func (srv *apartmentService) Update(ctx context.Context, actor *entity.Identity, id uuid.UUID, input *usecase.ApartmentInput) (*entity.Apartment, error) {
	apartment, err := policy.LoadOwned(ctx, actor, id, srv.apartmentRepo.FindByID, repository.ErrApartmentNotFound)
	if err != nil {
		return nil, err
	}

	applyApartmentInput(apartment, input)

	if err := srv.apartmentRepo.Update(ctx, apartment); err != nil {
		if errors.Is(err, repository.ErrApartmentNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to update apartment")
	}

	return apartment, nil
}

// Delete removes an apartment the caller owns.
func (srv *apartmentService) Delete(ctx context.Context, actor *entity.Identity, id uuid.UUID) (*entity.Apartment, error) {
	apartment, err := policy.LoadOwned(ctx, actor, id, srv.apartmentRepo.FindByID, repository.ErrApartmentNotFound)
	if err != nil {
		return nil, err
	}

	if err := srv.apartmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrApartmentNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to delete apartment")
	}

	return apartment, nil
}

func validateApartmentSort(sort *entity.ApartmentSort) error {
	if sort == nil || sort.Field == "" || sort.Field.IsValid() {
		return nil
	}

	return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unsupported sort field %q", sort.Field))
}

func applyApartmentInput(apartment *entity.Apartment, input *usecase.ApartmentInput) {
	apartment.Title = input.Title
	apartment.Details = input.Details
	apartment.Date = input.Date
	apartment.Geolocation = entity.Geolocation{Latitude: input.Latitude, Longitude: input.Longitude}
	apartment.Address = input.Address
	apartment.City = input.City
	apartment.Price = input.Price
	apartment.Type = input.Type
	apartment.Photos = append([]string(nil), input.Photos...)
	apartment.MSquare = input.MSquare
	apartment.RoomCount = input.RoomCount
}

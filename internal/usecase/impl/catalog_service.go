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

// technologyService implements the TechnologyUsecase interface.
// The catalog is shared: any authenticated caller may change it.
type technologyService struct {
	techRepo repository.TechnologyRepository
	logger   *slog.Logger
}

// TechnologyServiceParams holds dependencies for TechnologyService, injected by Fx.
type TechnologyServiceParams struct {
	fx.In

	TechRepo repository.TechnologyRepository
	Logger   *slog.Logger
}

// NewTechnologyService creates a new technology service.
func NewTechnologyService(params TechnologyServiceParams) usecase.TechnologyUsecase {
	return &technologyService{
		techRepo: params.TechRepo,
		logger:   params.Logger,
	}
}

func (srv *technologyService) Get(ctx context.Context, id uuid.UUID) (*entity.Technology, error) {
	technology, err := srv.techRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapTechnologyError(err, "failed to find technology")
	}

	return technology, nil
}

func (srv *technologyService) List(ctx context.Context) ([]*entity.Technology, error) {
	technologies, err := srv.techRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list technologies")
	}

	return technologies, nil
}

// ListByIDs returns the known technologies among ids. Unknown ids are skipped.
func (srv *technologyService) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Technology, error) {
	if len(ids) == 0 {
		return []*entity.Technology{}, nil
	}

	technologies, err := srv.techRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find technologies")
	}

	return technologies, nil
}

func (srv *technologyService) Add(ctx context.Context, actor *entity.Identity, input *usecase.TechnologyInput) (*entity.Technology, error) {
	if err := policy.RequireIdentity(actor); err != nil {
		return nil, err
	}

	technology := &entity.Technology{Name: input.Name}
	if err := srv.techRepo.Create(ctx, technology); err != nil {
		return nil, errors.Wrap(err, "failed to create technology")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Technology added",
		slog.String("technology_id", technology.ID.String()),
		slog.String("actor_id", actor.UserID.String()),
	)

	return technology, nil
}

func (srv *technologyService) Update(ctx context.Context, actor *entity.Identity, id uuid.UUID, input *usecase.TechnologyInput) (*entity.Technology, error) {
	if err := policy.RequireIdentity(actor); err != nil {
		return nil, err
	}

	technology, err := srv.techRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapTechnologyError(err, "failed to find technology")
	}

	technology.Name = input.Name
	if err := srv.techRepo.Update(ctx, technology); err != nil {
		return nil, mapTechnologyError(err, "failed to update technology")
	}

	return technology, nil
}

func (srv *technologyService) Delete(ctx context.Context, actor *entity.Identity, id uuid.UUID) (*entity.Technology, error) {
	if err := policy.RequireIdentity(actor); err != nil {
		return nil, err
	}

	technology, err := srv.techRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapTechnologyError(err, "failed to find technology")
	}

	if err := srv.techRepo.Delete(ctx, id); err != nil {
		return nil, mapTechnologyError(err, "failed to delete technology")
	}

	return technology, nil
}

func mapTechnologyError(err error, message string) error {
	if errors.Is(err, repository.ErrTechnologyNotFound) {
		return domainerrors.ErrNotFound
	}

	return errors.Wrap(err, message)
}

// personService implements the PersonUsecase interface.
type personService struct {
	personRepo repository.PersonRepository
}

// NewPersonService creates a new person service.
func NewPersonService(personRepo repository.PersonRepository) usecase.PersonUsecase {
	return &personService{personRepo: personRepo}
}

func (srv *personService) Get(ctx context.Context, id uuid.UUID) (*entity.Person, error) {
	person, err := srv.personRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPersonNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find person")
	}

	return person, nil
}

func (srv *personService) List(ctx context.Context) ([]*entity.Person, error) {
	people, err := srv.personRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list people")
	}

	return people, nil
}

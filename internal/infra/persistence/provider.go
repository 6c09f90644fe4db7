// Package persistence selects and wires the repository implementations configured by storage.driver.
package persistence

import (
	"log/slog"

	"rentql/config"
	"rentql/internal/domain/constants"
	"rentql/internal/domain/repository"
	"rentql/internal/infra/persistence/memory"
	"rentql/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the dependencies of the repository provider
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories is the full repository set handed to the use cases
type Repositories struct {
	fx.Out

	Users        repository.UserRepository
	Apartments   repository.ApartmentRepository
	Posts        repository.PostRepository
	Technologies repository.TechnologyRepository
	People       repository.PersonRepository
	TxManager    repository.TransactionManager
}

// New builds the repositories for the configured driver
func New(params Params) (Repositories, error) {
	driver := params.Config.Storage.Driver

	switch driver {
	case constants.StorageDriverMemory, "":
		params.Logger.Info("Using in-memory storage")

		return NewMemory(memory.NewStore()), nil

	case constants.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}
		params.Logger.Info("Using PostgreSQL storage")

		return Repositories{
			Users:        postgres.NewUserRepository(db),
			Apartments:   postgres.NewApartmentRepository(db),
			Posts:        postgres.NewPostRepository(db),
			Technologies: postgres.NewTechnologyRepository(db),
			People:       postgres.NewPersonRepository(db),
			TxManager:    postgres.NewTransactionManager(db),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown storage driver: %s", driver)
	}
}

// NewMemory wires every repository to one memory store
func NewMemory(store *memory.Store) Repositories {
	return Repositories{
		Users:        memory.NewUserRepository(store),
		Apartments:   memory.NewApartmentRepository(store),
		Posts:        memory.NewPostRepository(store),
		Technologies: memory.NewTechnologyRepository(store),
		People:       memory.NewPersonRepository(store),
		TxManager:    memory.NewTransactionManager(store),
	}
}

// Module provides the repositories and seeds the catalog on start
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
	fx.Invoke(RegisterSeed),
)

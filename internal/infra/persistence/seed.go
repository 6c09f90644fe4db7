package persistence

import (
	"context"
	"log/slog"
	"strconv"

	"rentql/config"
	"rentql/internal/domain/entity"
	"rentql/internal/domain/lifecycle"
	"rentql/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// seedNamespace derives stable IDs for catalog fixtures so restarts and both drivers agree.
var seedNamespace = uuid.MustParse("6f1c2f0e-6a43-4c1a-9c59-4f5b1d1b7a10")

var seedTechnologies = []string{"Angular", "React", "Vue", "Svelte", "MongoDB", "Cuba"}

var seedPeople = []struct {
	name    string
	techIDs []int
}{
	{"Ibrahim Aliu", []int{1, 2, 4, 5}},
	{"Cristiano Ronaldo", []int{2, 3, 4, 6}},
	{"Manuel Neuer", []int{1, 2, 4, 5}},
	{"Mesut Ozil", []int{1, 2, 4, 5}},
	{"Pablo Dybala", []int{1, 2, 4, 5}},
	{"Ansu Fati", []int{1, 2, 4, 5}},
	{"Sergio Ramos", []int{1, 2, 4, 5}},
	{"Karim Benzema", []int{1, 2, 4, 5}},
	{"Luka Modric", []int{1, 2, 4, 5}},
	{"Gareth Bale", []int{1, 2, 4, 5}},
}

// TechnologyID returns the stable ID of the n-th (1-based) seeded technology.
func TechnologyID(n int) uuid.UUID {
	return uuid.NewSHA1(seedNamespace, []byte("technology/"+strconv.Itoa(n)))
}

// PersonID returns the stable ID of the n-th (1-based) seeded person.
func PersonID(n int) uuid.UUID {
	return uuid.NewSHA1(seedNamespace, []byte("person/"+strconv.Itoa(n)))
}

// SeedParams defines the dependencies of the catalog seeder
type SeedParams struct {
	fx.In
	fx.Lifecycle

	Config       *config.Config
	Logger       *slog.Logger
	Technologies repository.TechnologyRepository
	People       repository.PersonRepository
}

// RegisterSeed loads the catalog fixtures on start when seed.enabled is set
func RegisterSeed(params SeedParams) {
	if params.Config.Seed == nil || !params.Config.Seed.Enabled {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := Seed(ctx, params.Technologies, params.People); err != nil {
				return err
			}
			params.Logger.Info("Catalog seeded",
				slog.Int("technologies", len(seedTechnologies)),
				slog.Int("people", len(seedPeople)),
			)

			return nil
		},
	})
}

// Seed inserts the technology catalog when it is empty and the people directory idempotently.
func Seed(ctx context.Context, technologies repository.TechnologyRepository, people repository.PersonRepository) error {
	existing, err := technologies.List(ctx)
	if err != nil {
		return errors.Wrap(err, "list technologies")
	}
	if len(existing) == 0 {
		for i, name := range seedTechnologies {
			if err := technologies.Create(ctx, &entity.Technology{ID: TechnologyID(i + 1), Name: name}); err != nil {
				return errors.Wrapf(err, "seed technology %s", name)
			}
		}
	}

	directory := make([]*entity.Person, 0, len(seedPeople))
	for i, p := range seedPeople {
		techIDs := make([]uuid.UUID, 0, len(p.techIDs))
		for _, n := range p.techIDs {
			techIDs = append(techIDs, TechnologyID(n))
		}
		directory = append(directory, &entity.Person{ID: PersonID(i + 1), Name: p.name, TechIDs: techIDs})
	}

	if err := people.Seed(ctx, directory); err != nil {
		return errors.Wrap(err, "seed people")
	}

	return nil
}

package postgres

import (
	"context"
	"time"

	"rentql/internal/domain/entity"
	domainerrors "rentql/internal/domain/errors"
	"rentql/internal/domain/repository"
	"rentql/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// technologyRepository implements the domain.TechnologyRepository interface.
type technologyRepository struct {
	db *gorm.DB
}

// NewTechnologyRepository is the constructor for technologyRepository.
func NewTechnologyRepository(db *gorm.DB) repository.TechnologyRepository {
	return &technologyRepository{db: db}
}

func (repo *technologyRepository) Create(ctx context.Context, technology *entity.Technology) error {
	if err := assignID(&technology.ID); err != nil {
		return err
	}

	techM := &model.TechnologyModel{ID: technology.ID, Name: technology.Name}
	if err := repo.db.WithContext(ctx).Create(techM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create technology")
	}

	technology.CreatedAt = techM.CreatedAt
	technology.UpdatedAt = techM.UpdatedAt

	return nil
}

func (repo *technologyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Technology, error) {
	var techM model.TechnologyModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&techM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTechnologyNotFound
		}

		return nil, errors.Wrap(err, "failed to find technology by ID")
	}

	return toTechnologyDomain(&techM), nil
}

// FindByIDs returns the technologies that exist among ids, in catalog order.
func (repo *technologyRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Technology, error) {
	if len(ids) == 0 {
		return []*entity.Technology{}, nil
	}

	var techModels []*model.TechnologyModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Order("created_at ASC").Find(&techModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find technologies by IDs")
	}

	return toTechnologiesDomain(techModels), nil
}

func (repo *technologyRepository) List(ctx context.Context) ([]*entity.Technology, error) {
	var techModels []*model.TechnologyModel
	if err := repo.db.WithContext(ctx).Order("created_at ASC").Find(&techModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list technologies")
	}

	return toTechnologiesDomain(techModels), nil
}

func (repo *technologyRepository) Update(ctx context.Context, technology *entity.Technology) error {
	technology.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.TechnologyModel{ID: technology.ID}).
		Updates(map[string]any{"name": technology.Name, "updated_at": technology.UpdatedAt})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update technology")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTechnologyNotFound
	}

	return nil
}

func (repo *technologyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.TechnologyModel{})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete technology")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTechnologyNotFound
	}

	return nil
}

func toTechnologyDomain(data *model.TechnologyModel) *entity.Technology {
	return &entity.Technology{
		ID:        data.ID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toTechnologiesDomain(data []*model.TechnologyModel) []*entity.Technology {
	technologies := make([]*entity.Technology, 0, len(data))
	for _, techM := range data {
		technologies = append(technologies, toTechnologyDomain(techM))
	}

	return technologies
}

// personRepository implements the domain.PersonRepository interface.
type personRepository struct {
	db *gorm.DB
}

// NewPersonRepository is the constructor for personRepository.
func NewPersonRepository(db *gorm.DB) repository.PersonRepository {
	return &personRepository{db: db}
}

func (repo *personRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Person, error) {
	var personM model.PersonModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&personM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPersonNotFound
		}

		return nil, errors.Wrap(err, "failed to find person by ID")
	}

	return toPersonDomain(&personM), nil
}

func (repo *personRepository) List(ctx context.Context) ([]*entity.Person, error) {
	var personModels []*model.PersonModel
	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&personModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list people")
	}

	people := make([]*entity.Person, 0, len(personModels))
	for _, personM := range personModels {
		people = append(people, toPersonDomain(personM))
	}

	return people, nil
}

// Seed inserts the directory, skipping people that already exist.
func (repo *personRepository) Seed(ctx context.Context, people []*entity.Person) error {
	if len(people) == 0 {
		return nil
	}

	personModels := make([]*model.PersonModel, 0, len(people))
	for _, person := range people {
		personModels = append(personModels, &model.PersonModel{ID: person.ID, Name: person.Name, TechIDs: person.TechIDs})
	}

	if err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&personModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to seed people")
	}

	return nil
}

func toPersonDomain(data *model.PersonModel) *entity.Person {
	return &entity.Person{
		ID:      data.ID,
		Name:    data.Name,
		TechIDs: data.TechIDs,
	}
}

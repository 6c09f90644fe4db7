package memory

import (
	"context"
	"time"

	"rentql/internal/domain/entity"
	"rentql/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// technologyRepository implements repository.TechnologyRepository on the memory store.
type technologyRepository struct {
	store *Store
}

// NewTechnologyRepository is the constructor for the memory technologyRepository.
func NewTechnologyRepository(store *Store) repository.TechnologyRepository {
	return &technologyRepository{store: store}
}

func (repo *technologyRepository) Create(ctx context.Context, technology *entity.Technology) error {
	id, err := newID(technology.ID)
	if err != nil {
		return err
	}

	return repo.store.write(ctx, false, func(d *dataset) error {
		if d.technologies.has(id) {
			return errors.Errorf("technology %s already exists", id)
		}

		now := time.Now()
		technology.ID = id
		technology.CreatedAt = now
		technology.UpdatedAt = now
		d.technologies.insert(id, *technology)

		return nil
	})
}

func (repo *technologyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Technology, error) {
	var found *entity.Technology
	err := repo.store.read(ctx, false, func(d *dataset) error {
		technology, ok := d.technologies.get(id)
		if !ok {
			return repository.ErrTechnologyNotFound
		}
		found = cloneTechnology(technology)

		return nil
	})

	return found, err
}

func (repo *technologyRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Technology, error) {
	wanted := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	found := []*entity.Technology{}
	err := repo.store.read(ctx, false, func(d *dataset) error {
		for _, technology := range d.technologies.values() {
			if _, ok := wanted[technology.ID]; ok {
				found = append(found, cloneTechnology(technology))
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

func (repo *technologyRepository) List(ctx context.Context) ([]*entity.Technology, error) {
	found := []*entity.Technology{}
	err := repo.store.read(ctx, false, func(d *dataset) error {
		for _, technology := range d.technologies.values() {
			found = append(found, cloneTechnology(technology))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

func (repo *technologyRepository) Update(ctx context.Context, technology *entity.Technology) error {
	return repo.store.write(ctx, false, func(d *dataset) error {
		current, ok := d.technologies.get(technology.ID)
		if !ok {
			return repository.ErrTechnologyNotFound
		}

		technology.CreatedAt = current.CreatedAt
		technology.UpdatedAt = time.Now()
		d.technologies.put(technology.ID, *technology)

		return nil
	})
}

func (repo *technologyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return repo.store.write(ctx, false, func(d *dataset) error {
		if !d.technologies.remove(id) {
			return repository.ErrTechnologyNotFound
		}

		return nil
	})
}

// personRepository implements repository.PersonRepository on the memory store.
type personRepository struct {
	store *Store
}

// NewPersonRepository is the constructor for the memory personRepository.
func NewPersonRepository(store *Store) repository.PersonRepository {
	return &personRepository{store: store}
}

func (repo *personRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Person, error) {
	var found *entity.Person
	err := repo.store.read(ctx, false, func(d *dataset) error {
		person, ok := d.people.get(id)
		if !ok {
			return repository.ErrPersonNotFound
		}
		found = clonePerson(person)

		return nil
	})

	return found, err
}

func (repo *personRepository) List(ctx context.Context) ([]*entity.Person, error) {
	found := []*entity.Person{}
	err := repo.store.read(ctx, false, func(d *dataset) error {
		for _, person := range d.people.values() {
			found = append(found, clonePerson(person))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

func (repo *personRepository) Seed(ctx context.Context, people []*entity.Person) error {
	return repo.store.write(ctx, false, func(d *dataset) error {
		for _, person := range people {
			if d.people.has(person.ID) {
				continue
			}
			d.people.insert(person.ID, *clonePerson(*person))
		}

		return nil
	})
}

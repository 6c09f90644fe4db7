package memory

import (
	"context"
	"slices"
	"time"

	"rentql/internal/domain/entity"
	"rentql/internal/domain/repository"

	"github.com/google/uuid"
)

// apartmentRepository implements repository.ApartmentRepository on the memory store.
type apartmentRepository struct {
	store *Store
	inTx  bool
}

// NewApartmentRepository is the constructor for the memory apartmentRepository.
func NewApartmentRepository(store *Store) repository.ApartmentRepository {
	return &apartmentRepository{store: store}
}

func (repo *apartmentRepository) Create(ctx context.Context, apartment *entity.Apartment) error {
	id, err := newID(apartment.ID)
	if err != nil {
		return err
	}

	return repo.store.write(ctx, repo.inTx, func(d *dataset) error {
		now := time.Now()
		apartment.ID = id
		apartment.CreatedAt = now
		apartment.UpdatedAt = now
		d.apartments.insert(id, *cloneApartment(*apartment))

		return nil
	})
}

func (repo *apartmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Apartment, error) {
	var found *entity.Apartment
	err := repo.store.read(ctx, repo.inTx, func(d *dataset) error {
		apartment, ok := d.apartments.get(id)
		if !ok {
			return repository.ErrApartmentNotFound
		}
		found = cloneApartment(apartment)

		return nil
	})

	return found, err
}

func (repo *apartmentRepository) Find(ctx context.Context, filter entity.ApartmentFilter, sort *entity.ApartmentSort) ([]*entity.Apartment, error) {
	var found []*entity.Apartment
	err := repo.store.read(ctx, repo.inTx, func(d *dataset) error {
		for _, apartment := range d.apartments.values() {
			if filter.Matches(&apartment) {
				found = append(found, cloneApartment(apartment))
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if sort != nil && sort.Field.IsValid() {
		slices.SortStableFunc(found, sort.Compare)
	}
	if found == nil {
		found = []*entity.Apartment{}
	}

	return found, nil
}

// Update replaces the mutable fields. The stored owner is kept regardless of the input.
func (repo *apartmentRepository) Update(ctx context.Context, apartment *entity.Apartment) error {
	return repo.store.write(ctx, repo.inTx, func(d *dataset) error {
		current, ok := d.apartments.get(apartment.ID)
		if !ok {
			return repository.ErrApartmentNotFound
		}

		apartment.OwnerID = current.OwnerID
		apartment.CreatedAt = current.CreatedAt
		apartment.UpdatedAt = time.Now()
		d.apartments.put(apartment.ID, *cloneApartment(*apartment))

		return nil
	})
}

func (repo *apartmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return repo.store.write(ctx, repo.inTx, func(d *dataset) error {
		if !d.apartments.remove(id) {
			return repository.ErrApartmentNotFound
		}

		return nil
	})
}

func (repo *apartmentRepository) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var removed int64
	err := repo.store.write(ctx, repo.inTx, func(d *dataset) error {
		for _, apartment := range d.apartments.values() {
			if entity.SameIdentity(apartment.OwnerID, ownerID) && d.apartments.remove(apartment.ID) {
				removed++
			}
		}

		return nil
	})

	return removed, err
}

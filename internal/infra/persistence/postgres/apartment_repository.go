package postgres

import (
	"context"
	"time"

	"rentql/internal/domain/entity"
	domainerrors "rentql/internal/domain/errors"
	"rentql/internal/domain/repository"
	"rentql/internal/infra/persistence/model"
	"rentql/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gen"
	"gorm.io/gen/field"
	"gorm.io/gorm"
)

// apartmentColumns maps sortable fields to their column names.
var apartmentColumns = map[entity.ApartmentSortField]string{
	entity.ApartmentSortByDate:      "date",
	entity.ApartmentSortByPrice:     "price",
	entity.ApartmentSortByMSquare:   "msquare",
	entity.ApartmentSortByRoomCount: "room_count",
	entity.ApartmentSortByTitle:     "title",
}

// apartmentRepository implements the domain.ApartmentRepository interface.
type apartmentRepository struct {
	q *query.Query
}

// NewApartmentRepository is the constructor for apartmentRepository.
func NewApartmentRepository(db *gorm.DB) repository.ApartmentRepository {
	return &apartmentRepository{
		q: query.Use(db),
	}
}

// Create persists a new apartment. A missing owner row surfaces as an authentication failure.
func (repo *apartmentRepository) Create(ctx context.Context, apartment *entity.Apartment) error {
	if err := assignID(&apartment.ID); err != nil {
		return err
	}

	apartmentM := fromApartmentDomain(apartment)
	if err := repo.q.ApartmentModel.WithContext(ctx).Create(apartmentM); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUnauthenticated.WrapMessage("apartment owner no longer exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create apartment")
	}

	apartment.CreatedAt = apartmentM.CreatedAt
	apartment.UpdatedAt = apartmentM.UpdatedAt

	return nil
}

// FindByID retrieves an apartment by its unique ID.
func (repo *apartmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Apartment, error) {
	a := repo.q.ApartmentModel
	apartmentM, err := a.WithContext(ctx).Where(a.ID.Eq(id)).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrApartmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find apartment by ID")
	}

	return toApartmentDomain(apartmentM), nil
}

// Find lists apartments. The radius filter is pushed down as a bounding box and refined by haversine distance.
func (repo *apartmentRepository) Find(ctx context.Context, filter entity.ApartmentFilter, sort *entity.ApartmentSort) ([]*entity.Apartment, error) {
	a := repo.q.ApartmentModel
	do := a.WithContext(ctx).Where(repo.conditions(filter)...)

	if sort != nil {
		if column, ok := apartmentColumns[sort.Field]; ok {
			if orderBy, ok := a.GetFieldByName(column); ok {
				if sort.Desc {
					do = do.Order(orderBy.Desc())
				} else {
					do = do.Order(orderBy)
				}
			}
		}
	}

	apartmentModels, err := do.Order(a.CreatedAt, a.ID).Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to find apartments")
	}

	apartments := make([]*entity.Apartment, 0, len(apartmentModels))
	for _, apartmentM := range apartmentModels {
		apartment := toApartmentDomain(apartmentM)
		if filter.Near != nil && !filter.Near.Contains(apartment.Geolocation) {
			continue
		}
		apartments = append(apartments, apartment)
	}

	return apartments, nil
}

// conditions translates a filter into query conditions.
// A box that crosses the antimeridian becomes two longitude ranges joined by OR.
func (repo *apartmentRepository) conditions(filter entity.ApartmentFilter) []gen.Condition {
	a := repo.q.ApartmentModel
	var conds []gen.Condition

	if filter.OwnerID != nil {
		conds = append(conds, a.OwnerID.Eq(*filter.OwnerID))
	}
	if filter.City != nil {
		conds = append(conds, a.City.Eq(*filter.City))
	}
	if filter.Type != nil {
		conds = append(conds, a.Type.Eq(*filter.Type))
	}
	if filter.MinPrice != nil {
		conds = append(conds, a.Price.Gte(*filter.MinPrice))
	}
	if filter.MaxPrice != nil {
		conds = append(conds, a.Price.Lte(*filter.MaxPrice))
	}
	if filter.MinRooms != nil {
		conds = append(conds, a.RoomCount.Gte(*filter.MinRooms))
	}
	if filter.Near != nil {
		box := filter.Near.SearchBox()
		conds = append(conds, a.Latitude.Between(box.MinLat, box.MaxLat))

		ranges := make([]field.Expr, 0, len(box.Longitudes))
		for _, lon := range box.Longitudes {
			ranges = append(ranges, a.Longitude.Between(lon.Min, lon.Max))
		}
		switch len(ranges) {
		case 0:
		case 1:
			conds = append(conds, ranges[0])
		default:
			conds = append(conds, field.Or(ranges...))
		}
	}

	return conds
}

// Update writes every mutable column. owner_id is never part of the update set.
func (repo *apartmentRepository) Update(ctx context.Context, apartment *entity.Apartment) error {
	apartment.UpdatedAt = time.Now()
	apartmentM := fromApartmentDomain(apartment)

	a := repo.q.ApartmentModel
	info, err := a.WithContext(ctx).
		Select(a.Title, a.Details, a.Date, a.Latitude, a.Longitude, a.Address, a.City,
			a.Price, a.Type, a.Photos, a.MSquare, a.RoomCount, a.UpdatedAt).
		Where(a.ID.Eq(apartment.ID)).
		Updates(apartmentM)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update apartment")
	}
	if info.RowsAffected == 0 {
		return repository.ErrApartmentNotFound
	}

	return nil
}

// Delete removes an apartment by its ID.
func (repo *apartmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	a := repo.q.ApartmentModel
	info, err := a.WithContext(ctx).Where(a.ID.Eq(id)).Delete()
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete apartment")
	}
	if info.RowsAffected == 0 {
		return repository.ErrApartmentNotFound
	}

	return nil
}

// DeleteByOwner removes every apartment of the owner. Zero matches is not an error.
func (repo *apartmentRepository) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	a := repo.q.ApartmentModel
	info, err := a.WithContext(ctx).Where(a.OwnerID.Eq(ownerID)).Delete()
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to delete apartments by owner")
	}

	return info.RowsAffected, nil
}

// --- Mapper Functions ---

func toApartmentDomain(data *model.ApartmentModel) *entity.Apartment {
	if data == nil {
		return nil
	}

	return &entity.Apartment{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Title:       data.Title,
		Details:     data.Details,
		Date:        data.Date,
		Geolocation: entity.Geolocation{Latitude: data.Latitude, Longitude: data.Longitude},
		Address:     data.Address,
		City:        data.City,
		Price:       data.Price,
		Type:        data.Type,
		Photos:      data.Photos,
		MSquare:     data.MSquare,
		RoomCount:   data.RoomCount,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromApartmentDomain(data *entity.Apartment) *model.ApartmentModel {
	if data == nil {
		return nil
	}

	return &model.ApartmentModel{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Title:     data.Title,
		Details:   data.Details,
		Date:      data.Date,
		Latitude:  data.Geolocation.Latitude,
		Longitude: data.Geolocation.Longitude,
		Address:   data.Address,
		City:      data.City,
		Price:     data.Price,
		Type:      data.Type,
		Photos:    data.Photos,
		MSquare:   data.MSquare,
		RoomCount: data.RoomCount,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

package graphql

import (
	"fmt"

	"rentql/internal/domain/entity"
	domainerrors "rentql/internal/domain/errors"
	"rentql/internal/usecase"

	"github.com/google/uuid"
	graphqlgo "github.com/graph-gophers/graphql-go"
)

type registerInput struct {
	Email    string
	Password string
	Name     *string
	Surname  *string
	Phone    *string
}

type profileInput struct {
	Name    *string
	Surname *string
	Phone   *string
}

type apartmentInput struct {
	Title     string
	Details   *string
	Date      *string
	Latitude  float64
	Longitude float64
	Address   *string
	City      *string
	Price     float64
	Type      *string
	Photos    *[]string
	MSquare   *float64
	RoomCount *int32
}

type postInput struct {
	Title  string
	Link   string
	Date   *string
	TechID graphqlgo.ID
}

type geoRadiusInput struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
}

type apartmentFilterInput struct {
	OwnerID  *graphqlgo.ID
	City     *string
	Type     *string
	MinPrice *float64
	MaxPrice *float64
	MinRooms *int32
	Near     *geoRadiusInput
}

type apartmentSortInput struct {
	Field string
	Desc  *bool
}

var sortFields = map[string]entity.ApartmentSortField{
	"DATE":       entity.ApartmentSortByDate,
	"PRICE":      entity.ApartmentSortByPrice,
	"MSQUARE":    entity.ApartmentSortByMSquare,
	"ROOM_COUNT": entity.ApartmentSortByRoomCount,
	"TITLE":      entity.ApartmentSortByTitle,
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}

	return *p
}

func parseID(id graphqlgo.ID) (uuid.UUID, error) {
	parsed, err := uuid.Parse(string(id))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("invalid id %q", string(id)))
	}

	return parsed, nil
}

func parseOptionalID(id *graphqlgo.ID) (*uuid.UUID, error) {
	if id == nil {
		return nil, nil
	}

	parsed, err := parseID(*id)
	if err != nil {
		return nil, err
	}

	return &parsed, nil
}

func (in registerInput) toUsecase() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Email:    in.Email,
		Password: in.Password,
		Name:     deref(in.Name),
		Surname:  deref(in.Surname),
		Phone:    deref(in.Phone),
	}
}

func (in profileInput) toUsecase() *usecase.UpdateProfileInput {
	return &usecase.UpdateProfileInput{
		Name:    in.Name,
		Surname: in.Surname,
		Phone:   in.Phone,
	}
}

func (in apartmentInput) toUsecase() *usecase.ApartmentInput {
	return &usecase.ApartmentInput{
		Title:     in.Title,
		Details:   deref(in.Details),
		Date:      deref(in.Date),
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		Address:   deref(in.Address),
		City:      deref(in.City),
		Price:     in.Price,
		Type:      deref(in.Type),
		Photos:    deref(in.Photos),
		MSquare:   deref(in.MSquare),
		RoomCount: int(deref(in.RoomCount)),
	}
}

func (in postInput) toUsecase() (*usecase.PostInput, error) {
	techID, err := parseID(in.TechID)
	if err != nil {
		return nil, err
	}

	return &usecase.PostInput{
		Title:  in.Title,
		Link:   in.Link,
		Date:   deref(in.Date),
		TechID: techID,
	}, nil
}

func (in *apartmentFilterInput) toEntity() (entity.ApartmentFilter, error) {
	var filter entity.ApartmentFilter
	if in == nil {
		return filter, nil
	}

	ownerID, err := parseOptionalID(in.OwnerID)
	if err != nil {
		return filter, err
	}

	filter.OwnerID = ownerID
	filter.City = in.City
	filter.Type = in.Type
	filter.MinPrice = in.MinPrice
	filter.MaxPrice = in.MaxPrice
	if in.MinRooms != nil {
		minRooms := int(*in.MinRooms)
		filter.MinRooms = &minRooms
	}
	if in.Near != nil {
		if in.Near.RadiusKm <= 0 {
			return filter, domainerrors.ErrValidationFailed.WithDetails("near.radiusKm must be positive")
		}
		filter.Near = &entity.GeoRadius{
			Center:   entity.Geolocation{Latitude: in.Near.Latitude, Longitude: in.Near.Longitude},
			RadiusKm: in.Near.RadiusKm,
		}
	}

	return filter, nil
}

func (in *apartmentSortInput) toEntity() *entity.ApartmentSort {
	if in == nil {
		return nil
	}

	return &entity.ApartmentSort{Field: sortFields[in.Field], Desc: deref(in.Desc)}
}

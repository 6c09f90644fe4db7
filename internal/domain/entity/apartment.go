package entity

import (
	"cmp"
	"time"

	"github.com/google/uuid"
)

// Apartment is a rental listing owned by the user who created it.
type Apartment struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID // Set on creation, never changed afterwards.
	Title       string
	Details     string
	Date        string // Free-form listing date as supplied by the owner.
	Geolocation Geolocation
	Address     string
	City        string
	Price       float64
	Type        string
	Photos      []string
	MSquare     float64
	RoomCount   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// GetOwnerID implements Owned.
func (a *Apartment) GetOwnerID() uuid.UUID {
	return a.OwnerID
}

// ApartmentSortField is a sortable apartment attribute.
type ApartmentSortField string

const (
	ApartmentSortByDate      ApartmentSortField = "date"
	ApartmentSortByPrice     ApartmentSortField = "price"
	ApartmentSortByMSquare   ApartmentSortField = "msquare"
	ApartmentSortByRoomCount ApartmentSortField = "roomCount"
	ApartmentSortByTitle     ApartmentSortField = "title"
)

// IsValid checks if the sort field is supported.
func (f ApartmentSortField) IsValid() bool {
	switch f {
	case ApartmentSortByDate, ApartmentSortByPrice, ApartmentSortByMSquare, ApartmentSortByRoomCount, ApartmentSortByTitle:
		return true
	default:
		return false
	}
}

// ApartmentFilter narrows an apartment listing. Nil fields do not filter.
type ApartmentFilter struct {
	OwnerID  *uuid.UUID
	City     *string
	Type     *string
	MinPrice *float64
	MaxPrice *float64
	MinRooms *int
	Near     *GeoRadius
}

// Matches reports whether the apartment passes every set criterion.
func (f ApartmentFilter) Matches(a *Apartment) bool {
	if f.OwnerID != nil && !SameIdentity(*f.OwnerID, a.OwnerID) {
		return false
	}
	if f.City != nil && *f.City != a.City {
		return false
	}
	if f.Type != nil && *f.Type != a.Type {
		return false
	}
	if f.MinPrice != nil && a.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && a.Price > *f.MaxPrice {
		return false
	}
	if f.MinRooms != nil && a.RoomCount < *f.MinRooms {
		return false
	}
	if f.Near != nil && !f.Near.Contains(a.Geolocation) {
		return false
	}

	return true
}

// ApartmentSort orders an apartment listing. The zero value keeps insertion order.
type ApartmentSort struct {
	Field ApartmentSortField
	Desc  bool
}

// Compare orders a before b according to the sort, returning a negative number, zero, or a positive number.
func (s ApartmentSort) Compare(a, b *Apartment) int {
	var c int
	switch s.Field {
	case ApartmentSortByDate:
		c = cmp.Compare(a.Date, b.Date)
	case ApartmentSortByPrice:
		c = cmp.Compare(a.Price, b.Price)
	case ApartmentSortByMSquare:
		c = cmp.Compare(a.MSquare, b.MSquare)
	case ApartmentSortByRoomCount:
		c = cmp.Compare(a.RoomCount, b.RoomCount)
	case ApartmentSortByTitle:
		c = cmp.Compare(a.Title, b.Title)
	}
	if s.Desc {
		return -c
	}

	return c
}

package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSameIdentity(t *testing.T) {
	id := uuid.New()
	parsed, err := uuid.Parse(id.String())
	assert.NoError(t, err)

	assert.True(t, SameIdentity(id, parsed))
	assert.False(t, SameIdentity(id, uuid.New()))
}

func TestApartmentFilter_Matches(t *testing.T) {
	owner := uuid.New()
	city := "Taipei"
	minPrice := 100.0
	maxPrice := 500.0
	minRooms := 2

	apt := &Apartment{
		OwnerID:     owner,
		City:        city,
		Price:       300,
		RoomCount:   3,
		Geolocation: Geolocation{Latitude: 25.0330, Longitude: 121.5654},
	}

	tests := []struct {
		name   string
		filter ApartmentFilter
		want   bool
	}{
		{name: "empty filter", filter: ApartmentFilter{}, want: true},
		{name: "owner match", filter: ApartmentFilter{OwnerID: &owner}, want: true},
		{name: "price range", filter: ApartmentFilter{MinPrice: &minPrice, MaxPrice: &maxPrice}, want: true},
		{name: "city and rooms", filter: ApartmentFilter{City: &city, MinRooms: &minRooms}, want: true},
		{
			name:   "within radius",
			filter: ApartmentFilter{Near: &GeoRadius{Center: Geolocation{Latitude: 25.0478, Longitude: 121.5170}, RadiusKm: 10}},
			want:   true,
		},
		{
			name:   "outside radius",
			filter: ApartmentFilter{Near: &GeoRadius{Center: Geolocation{Latitude: 22.6273, Longitude: 120.3014}, RadiusKm: 10}},
			want:   false,
		},
		{name: "price too low", filter: ApartmentFilter{MinPrice: &maxPrice}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(apt))
		})
	}

	stranger := uuid.New()
	assert.False(t, ApartmentFilter{OwnerID: &stranger}.Matches(apt))
}

func TestApartmentSort_Compare(t *testing.T) {
	cheap := &Apartment{Title: "b", Price: 100}
	pricey := &Apartment{Title: "a", Price: 900}

	assert.Negative(t, ApartmentSort{Field: ApartmentSortByPrice}.Compare(cheap, pricey))
	assert.Positive(t, ApartmentSort{Field: ApartmentSortByPrice, Desc: true}.Compare(cheap, pricey))
	assert.Positive(t, ApartmentSort{Field: ApartmentSortByTitle}.Compare(cheap, pricey))
	assert.Zero(t, ApartmentSort{}.Compare(cheap, pricey))
}

func TestRoles(t *testing.T) {
	roles := RolesFromStrings([]string{"user", "admin", "bogus"})

	assert.True(t, roles.Contains(RoleAdmin))
	assert.Equal(t, []string{"user", "admin"}, roles.ToStrings())
	assert.Equal(t, Roles{RoleUser}, DefaultRoles())
}

func TestGeoRadius_SearchBox(t *testing.T) {
	t.Run("regular", func(t *testing.T) {
		r := GeoRadius{Center: Geolocation{Latitude: 25.033, Longitude: 121.5654}, RadiusKm: 10}
		box := r.SearchBox()

		assert.Less(t, box.MinLat, 25.033)
		assert.Greater(t, box.MaxLat, 25.033)
		if assert.Len(t, box.Longitudes, 1) {
			assert.Less(t, box.Longitudes[0].Min, 121.5654)
			assert.Greater(t, box.Longitudes[0].Max, 121.5654)
		}
	})

	t.Run("crosses antimeridian", func(t *testing.T) {
		r := GeoRadius{Center: Geolocation{Latitude: 0, Longitude: 179.9}, RadiusKm: 50}
		box := r.SearchBox()

		if assert.Len(t, box.Longitudes, 2) {
			assert.Greater(t, box.Longitudes[0].Min, 179.0)
			assert.Equal(t, 180.0, box.Longitudes[0].Max)
			assert.Equal(t, -180.0, box.Longitudes[1].Min)
			assert.Less(t, box.Longitudes[1].Max, -179.0)
		}

		across := Geolocation{Latitude: 0, Longitude: -179.95}
		assert.True(t, r.Contains(across))
		covered := false
		for _, lon := range box.Longitudes {
			covered = covered || (across.Longitude >= lon.Min && across.Longitude <= lon.Max)
		}
		assert.True(t, covered)
	})

	t.Run("reaches a pole", func(t *testing.T) {
		r := GeoRadius{Center: Geolocation{Latitude: 89.9, Longitude: 10}, RadiusKm: 50}
		box := r.SearchBox()

		assert.Empty(t, box.Longitudes)
		assert.LessOrEqual(t, box.MaxLat, 90.0)
	})
}

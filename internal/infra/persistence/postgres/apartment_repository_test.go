package postgres

import (
	"context"
	"strings"
	"testing"

	"rentql/internal/domain/entity"
	"rentql/internal/infra/persistence/model"
	"rentql/internal/infra/persistence/postgres/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{DSN: "host=localhost user=rentql dbname=rentql sslmode=disable"}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	return db
}

func TestApartmentRepository_NearConditions(t *testing.T) {
	repo := &apartmentRepository{q: query.Use(newDryRunDB(t))}

	tests := []struct {
		name       string
		center     entity.Geolocation
		longitudes int
		hasOr      bool
	}{
		{name: "regular box", center: entity.Geolocation{Latitude: 25.033, Longitude: 121.5654}, longitudes: 1},
		{name: "crosses antimeridian", center: entity.Geolocation{Latitude: 0, Longitude: 179.9}, longitudes: 2, hasOr: true},
		{name: "reaches a pole", center: entity.Geolocation{Latitude: 89.9, Longitude: 10}, longitudes: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := entity.ApartmentFilter{Near: &entity.GeoRadius{Center: tt.center, RadiusKm: 50}}

			var rows []*model.ApartmentModel
			stmt := repo.q.ApartmentModel.WithContext(context.Background()).
				Where(repo.conditions(filter)...).
				UnderlyingDB().
				Find(&rows).Statement
			sql := stmt.SQL.String()

			assert.Equal(t, 1, strings.Count(sql, "latitude"), sql)
			assert.Equal(t, tt.longitudes, strings.Count(sql, "longitude"), sql)
			assert.Equal(t, tt.hasOr, strings.Contains(sql, " OR "), sql)
			if tt.hasOr {
				assert.Contains(t, stmt.Vars, 180.0)
				assert.Contains(t, stmt.Vars, -180.0)
			}
		})
	}
}

func TestApartmentRepository_FilterConditions(t *testing.T) {
	repo := &apartmentRepository{q: query.Use(newDryRunDB(t))}
	city := "Taipei"
	minRooms := 2

	conds := repo.conditions(entity.ApartmentFilter{City: &city, MinRooms: &minRooms})
	require.Len(t, conds, 2)

	var rows []*model.ApartmentModel
	stmt := repo.q.ApartmentModel.WithContext(context.Background()).Where(conds...).UnderlyingDB().Find(&rows).Statement

	assert.Contains(t, stmt.SQL.String(), "city")
	assert.Contains(t, stmt.SQL.String(), "room_count")
	assert.Contains(t, stmt.Vars, "Taipei")
	assert.Contains(t, stmt.Vars, 2)
}

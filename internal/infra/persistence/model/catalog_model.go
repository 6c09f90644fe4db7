package model

import (
	"time"

	"github.com/google/uuid"
)

// TechnologyModel mirrors the 'technologies' table.
type TechnologyModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TechnologyModel) TableName() string {
	return "technologies"
}

// PersonModel mirrors the read-only 'people' table.
type PersonModel struct {
	ID      uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name    string      `gorm:"type:varchar(100);not null"`
	TechIDs []uuid.UUID `gorm:"type:jsonb;serializer:json"`
}

// TableName explicitly sets the table name for GORM.
func (PersonModel) TableName() string {
	return "people"
}

// All lists every model managed by AutoMigrate.
func All() []any {
	return []any{
		&UserModel{},
		&ApartmentModel{},
		&PostModel{},
		&TechnologyModel{},
		&PersonModel{},
	}
}

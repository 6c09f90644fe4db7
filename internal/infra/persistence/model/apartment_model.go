package model

import (
	"time"

	"github.com/google/uuid"
)

// ApartmentModel mirrors the 'apartments' table.
type ApartmentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Details   string    `gorm:"type:text"`
	Date      string    `gorm:"type:varchar(64)"`
	Latitude  float64   `gorm:"type:decimal(10,8);not null;default:0;index:idx_apartments_on_location"`
	Longitude float64   `gorm:"type:decimal(11,8);not null;default:0;index:idx_apartments_on_location"`
	Address   string    `gorm:"type:text"`
	City      string    `gorm:"type:varchar(100);index"`
	Price     float64   `gorm:"type:decimal(12,2);not null;default:0"`
	Type      string    `gorm:"type:varchar(50)"`
	Photos    []string  `gorm:"type:jsonb;serializer:json"`
	MSquare   float64   `gorm:"column:msquare;type:decimal(10,2);not null;default:0"`
	RoomCount int       `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Owner *UserModel `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ApartmentModel) TableName() string {
	return "apartments"
}

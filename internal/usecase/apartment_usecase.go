package usecase

import (
	"context"

	"rentql/internal/domain/entity"

	"github.com/google/uuid"
)

// ApartmentInput is the full mutable attribute set of an apartment. There is no owner field.
type ApartmentInput struct {
	Title     string   `validate:"required,max=255"`
	Details   string   `validate:"max=5000"`
	Date      string   `validate:"max=64"`
	Latitude  float64  `validate:"latitude"`
	Longitude float64  `validate:"longitude"`
	Address   string   `validate:"max=500"`
	City      string   `validate:"max=100"`
	Price     float64  `validate:"gte=0,lt=10000000000,cents"`
	Type      string   `validate:"max=50"`
	Photos    []string `validate:"max=50,dive,url"`
	MSquare   float64  `validate:"gte=0,lt=100000000,cents"`
	RoomCount int      `validate:"gte=0"`
}

// ApartmentUsecase defines the apartment listing operations.
type ApartmentUsecase interface {
	Get(ctx context.Context, id uuid.UUID) (*entity.Apartment, error)
	List(ctx context.Context, filter entity.ApartmentFilter, sort *entity.ApartmentSort) ([]*entity.Apartment, error)
	ListMine(ctx context.Context, actor *entity.Identity, sort *entity.ApartmentSort) ([]*entity.Apartment, error)
	Create(ctx context.Context, actor *entity.Identity, input *ApartmentInput) (*entity.Apartment, error)
	Update(ctx context.Context, actor *entity.Identity, id uuid.UUID, input *ApartmentInput) (*entity.Apartment, error)
	// Delete returns the removed apartment.
	Delete(ctx context.Context, actor *entity.Identity, id uuid.UUID) (*entity.Apartment, error)
}

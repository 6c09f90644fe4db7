// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"errors"

	"rentql/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string `validate:"required,email,max=255"`
	Password string `validate:"required"`
	Name     string `validate:"max=100"`
	Surname  string `validate:"max=100"`
	Phone    string `validate:"max=50"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// UpdateProfileInput carries the profile fields to change. Nil fields are left as they are.
type UpdateProfileInput struct {
	Name    *string `validate:"omitempty,max=100"`
	Surname *string `validate:"omitempty,max=100"`
	Phone   *string `validate:"omitempty,max=50"`
}

// --- Output DTOs ---

// LoginOutput returns the profile together with a freshly issued token.
type LoginOutput struct {
	User  *entity.User
	Token string
}

// PurgeOutput reports how many owned resources a cascade removed.
type PurgeOutput struct {
	Apartments int64
	Posts      int64
}

// AccountUsecase defines the credential and profile operations.
// Every method acting on behalf of a caller takes the caller explicitly; a nil actor is unauthenticated.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Me(ctx context.Context, actor *entity.Identity) (*entity.User, error)
	UpdateProfile(ctx context.Context, actor *entity.Identity, input *UpdateProfileInput) (*entity.User, error)
	// DeleteAccount removes the caller's credential record and every resource it owns.
	DeleteAccount(ctx context.Context, actor *entity.Identity) (*PurgeOutput, error)
	// PurgeOwnedResources re-runs the owner cascade. It is idempotent and used by the sweeper.
	PurgeOwnedResources(ctx context.Context, ownerID uuid.UUID) (*PurgeOutput, error)
}

// ErrAccountStillExists is returned when a purge targets an account that has not been deleted.
var ErrAccountStillExists = errors.New("account still exists")

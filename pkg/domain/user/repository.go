package user

import (
	"context"

	"github.com/campaignhub/api/pkg/domain/shared"
)

// Repository defines the interface for user persistence.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id shared.ID) (*User, error)
	GetByExternalID(ctx context.Context, externalID string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, u *User) error

	// Upsert inserts the user or, on external ID conflict, refreshes email,
	// name, and last login. Used by the sync middleware on every
	// authenticated request, so it must be idempotent under concurrency.
	Upsert(ctx context.Context, u *User) (*User, error)
}

package project

import (
	"context"

	"github.com/campaignhub/api/pkg/domain/shared"
)

// Repository defines the interface for project persistence.
type Repository interface {
	Create(ctx context.Context, p *Project) error
	// GetByID looks a project up within an agency scope.
	GetByID(ctx context.Context, agencyID, id shared.ID) (*Project, error)
	// Lookup looks a project up by ID alone. Used by invitation acceptance,
	// which runs before the accepting user has any tenant context.
	Lookup(ctx context.Context, id shared.ID) (*Project, error)
	ListByAgency(ctx context.Context, agencyID shared.ID) ([]*Project, error)
	ListByClient(ctx context.Context, agencyID, clientID shared.ID) ([]*Project, error)
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, agencyID, id shared.ID) error
}

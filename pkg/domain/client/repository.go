package client

import (
	"context"

	"github.com/campaignhub/api/pkg/domain/shared"
)

// Repository defines the interface for client persistence. All reads are
// agency-scoped; a row outside the agency is indistinguishable from a miss.
type Repository interface {
	Create(ctx context.Context, c *Client) error
	GetByID(ctx context.Context, agencyID, id shared.ID) (*Client, error)
	ListByAgency(ctx context.Context, agencyID shared.ID) ([]*Client, error)
	Update(ctx context.Context, c *Client) error
	Delete(ctx context.Context, agencyID, id shared.ID) error
}

// ProfileRepository defines the interface for brand profile persistence.
// A client has at most one profile; Upsert returns the stored row, which
// keeps its original ID and creation time when the profile already exists.
type ProfileRepository interface {
	Upsert(ctx context.Context, p *BrandProfile) (*BrandProfile, error)
	GetByClient(ctx context.Context, agencyID, clientID shared.ID) (*BrandProfile, error)
	DeleteByClient(ctx context.Context, agencyID, clientID shared.ID) error
}

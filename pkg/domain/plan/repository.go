package plan

import (
	"context"

	"github.com/campaignhub/api/pkg/domain/shared"
)

// Repository defines the interface for campaign plan persistence.
type Repository interface {
	Create(ctx context.Context, p *CampaignPlan) error
	GetByID(ctx context.Context, agencyID, id shared.ID) (*CampaignPlan, error)
	GetByProject(ctx context.Context, agencyID, projectID shared.ID) (*CampaignPlan, error)
	ListByAgency(ctx context.Context, agencyID shared.ID) ([]*CampaignPlan, error)
	Update(ctx context.Context, p *CampaignPlan) error
	Delete(ctx context.Context, agencyID, id shared.ID) error
}

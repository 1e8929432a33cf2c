package app

import (
	"context"
	"fmt"

	"github.com/campaignhub/api/pkg/domain/plan"
	"github.com/campaignhub/api/pkg/domain/project"
	"github.com/campaignhub/api/pkg/domain/shared"
	"github.com/campaignhub/api/pkg/logger"
)

// PlanService handles campaign plans.
type PlanService struct {
	repo     plan.Repository
	projects project.Repository
	logger   *logger.Logger
}

// NewPlanService creates a new PlanService.
func NewPlanService(repo plan.Repository, projects project.Repository, log *logger.Logger) *PlanService {
	return &PlanService{
		repo:     repo,
		projects: projects,
		logger:   log.With("service", "plan"),
	}
}

// PlanFieldsInput carries the editable campaign plan fields.
type PlanFieldsInput struct {
	Goals        []string `json:"goals"`
	Themes       []string `json:"themes"`
	Events       []string `json:"events"`
	NumPosts     int      `json:"num_posts" validate:"min=0"`
	NumReels     int      `json:"num_reels" validate:"min=0"`
	SplitPercent int      `json:"split_percent" validate:"min=0,max=100"`
	MeetingNotes string   `json:"meeting_notes"`
}

func (in PlanFieldsInput) fields() plan.Fields {
	return plan.Fields{
		Goals:        in.Goals,
		Themes:       in.Themes,
		Events:       in.Events,
		NumPosts:     in.NumPosts,
		NumReels:     in.NumReels,
		SplitPercent: in.SplitPercent,
		MeetingNotes: in.MeetingNotes,
	}
}

// CreatePlanInput represents the input for creating a campaign plan.
type CreatePlanInput struct {
	ProjectID string `json:"project_id" validate:"required,uuid"`
	PlanFieldsInput
}

// CreatePlan creates a campaign plan for a project in the caller's agency.
// The project must belong to the agency; each project holds at most one plan.
func (s *PlanService) CreatePlan(ctx context.Context, agencyID shared.ID, input CreatePlanInput) (*plan.CampaignPlan, error) {
	projectID, err := shared.IDFromString(input.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid project id", shared.ErrValidation)
	}

	if _, err := s.projects.GetByID(ctx, agencyID, projectID); err != nil {
		return nil, err
	}

	p, err := plan.New(agencyID, projectID, input.fields())
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info("campaign plan created",
		"id", p.ID().String(),
		"agency_id", agencyID.String(),
		"project_id", projectID.String(),
	)
	return p, nil
}

// GetPlan retrieves a campaign plan within the agency scope.
func (s *PlanService) GetPlan(ctx context.Context, agencyID, id shared.ID) (*plan.CampaignPlan, error) {
	return s.repo.GetByID(ctx, agencyID, id)
}

// GetPlanByProject retrieves the campaign plan of a project.
func (s *PlanService) GetPlanByProject(ctx context.Context, agencyID, projectID shared.ID) (*plan.CampaignPlan, error) {
	return s.repo.GetByProject(ctx, agencyID, projectID)
}

// ListPlans lists all campaign plans of an agency.
func (s *PlanService) ListPlans(ctx context.Context, agencyID shared.ID) ([]*plan.CampaignPlan, error) {
	return s.repo.ListByAgency(ctx, agencyID)
}

// UpdatePlan updates a campaign plan within the agency scope.
func (s *PlanService) UpdatePlan(ctx context.Context, agencyID, id shared.ID, input PlanFieldsInput) (*plan.CampaignPlan, error) {
	p, err := s.repo.GetByID(ctx, agencyID, id)
	if err != nil {
		return nil, err
	}

	if err := p.Update(input.fields()); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// DeletePlan deletes a campaign plan within the agency scope.
func (s *PlanService) DeletePlan(ctx context.Context, agencyID, id shared.ID) error {
	if err := s.repo.Delete(ctx, agencyID, id); err != nil {
		return err
	}

	s.logger.Info("campaign plan deleted", "id", id.String(), "agency_id", agencyID.String())
	return nil
}

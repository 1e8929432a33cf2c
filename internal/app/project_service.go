package app

import (
	"context"
	"fmt"
	"time"

	"github.com/campaignhub/api/pkg/domain/client"
	"github.com/campaignhub/api/pkg/domain/project"
	"github.com/campaignhub/api/pkg/domain/shared"
	"github.com/campaignhub/api/pkg/logger"
)

// ProjectService handles agency projects.
type ProjectService struct {
	repo    project.Repository
	clients client.Repository
	logger  *logger.Logger
}

// NewProjectService creates a new ProjectService.
func NewProjectService(repo project.Repository, clients client.Repository, log *logger.Logger) *ProjectService {
	return &ProjectService{
		repo:    repo,
		clients: clients,
		logger:  log.With("service", "project"),
	}
}

// CreateProjectInput represents the input for creating a project.
type CreateProjectInput struct {
	Name      string     `json:"name" validate:"required,min=1,max=255"`
	ClientID  string     `json:"client_id" validate:"required,uuid"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

// CreateProject creates a project within the caller's agency. The client must
// belong to the same agency; a client outside it reads as not found.
func (s *ProjectService) CreateProject(ctx context.Context, agencyID shared.ID, input CreateProjectInput) (*project.Project, error) {
	clientID, err := shared.IDFromString(input.ClientID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid client id", shared.ErrValidation)
	}

	if _, err := s.clients.GetByID(ctx, agencyID, clientID); err != nil {
		return nil, err
	}

	p, err := project.New(agencyID, clientID, input.Name, input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info("project created",
		"id", p.ID().String(),
		"agency_id", agencyID.String(),
		"client_id", clientID.String(),
	)
	return p, nil
}

// GetProject retrieves a project within the agency scope.
func (s *ProjectService) GetProject(ctx context.Context, agencyID, id shared.ID) (*project.Project, error) {
	return s.repo.GetByID(ctx, agencyID, id)
}

// ListProjects lists all projects of an agency.
func (s *ProjectService) ListProjects(ctx context.Context, agencyID shared.ID) ([]*project.Project, error) {
	return s.repo.ListByAgency(ctx, agencyID)
}

// ListProjectsByClient lists an agency's projects for one client.
func (s *ProjectService) ListProjectsByClient(ctx context.Context, agencyID, clientID shared.ID) ([]*project.Project, error) {
	return s.repo.ListByClient(ctx, agencyID, clientID)
}

// UpdateProjectInput represents the input for updating a project.
type UpdateProjectInput struct {
	Name      string     `json:"name" validate:"required,min=1,max=255"`
	Status    string     `json:"status" validate:"required,project_status"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

// UpdateProject updates a project within the agency scope.
func (s *ProjectService) UpdateProject(ctx context.Context, agencyID, id shared.ID, input UpdateProjectInput) (*project.Project, error) {
	p, err := s.repo.GetByID(ctx, agencyID, id)
	if err != nil {
		return nil, err
	}

	status, ok := project.ParseStatus(input.Status)
	if !ok {
		return nil, fmt.Errorf("%w: invalid status", shared.ErrValidation)
	}

	if err := p.UpdateName(input.Name); err != nil {
		return nil, err
	}
	if err := p.UpdateStatus(status); err != nil {
		return nil, err
	}
	if err := p.UpdateDates(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// DeleteProject deletes a project within the agency scope.
func (s *ProjectService) DeleteProject(ctx context.Context, agencyID, id shared.ID) error {
	if err := s.repo.Delete(ctx, agencyID, id); err != nil {
		return err
	}

	s.logger.Info("project deleted", "id", id.String(), "agency_id", agencyID.String())
	return nil
}

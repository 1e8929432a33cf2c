package app

import (
	"context"

	"github.com/campaignhub/api/pkg/domain/client"
	"github.com/campaignhub/api/pkg/domain/shared"
	"github.com/campaignhub/api/pkg/logger"
)

// ClientService handles agency client records.
type ClientService struct {
	repo   client.Repository
	logger *logger.Logger
}

// NewClientService creates a new ClientService.
func NewClientService(repo client.Repository, log *logger.Logger) *ClientService {
	return &ClientService{
		repo:   repo,
		logger: log.With("service", "client"),
	}
}

// CreateClientInput represents the input for creating a client.
type CreateClientInput struct {
	Name        string         `json:"name" validate:"required,min=1,max=255"`
	ContactInfo map[string]any `json:"contact_info"`
}

// CreateClient creates a client within the caller's agency.
func (s *ClientService) CreateClient(ctx context.Context, agencyID shared.ID, input CreateClientInput) (*client.Client, error) {
	c, err := client.New(agencyID, input.Name, input.ContactInfo)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info("client created", "id", c.ID().String(), "agency_id", agencyID.String())
	return c, nil
}

// GetClient retrieves a client within the agency scope.
func (s *ClientService) GetClient(ctx context.Context, agencyID, id shared.ID) (*client.Client, error) {
	return s.repo.GetByID(ctx, agencyID, id)
}

// ListClients lists all clients of an agency.
func (s *ClientService) ListClients(ctx context.Context, agencyID shared.ID) ([]*client.Client, error) {
	return s.repo.ListByAgency(ctx, agencyID)
}

// UpdateClientInput represents the input for updating a client.
type UpdateClientInput struct {
	Name        string         `json:"name" validate:"required,min=1,max=255"`
	ContactInfo map[string]any `json:"contact_info"`
}

// UpdateClient updates a client within the agency scope.
func (s *ClientService) UpdateClient(ctx context.Context, agencyID, id shared.ID, input UpdateClientInput) (*client.Client, error) {
	c, err := s.repo.GetByID(ctx, agencyID, id)
	if err != nil {
		return nil, err
	}

	if err := c.Update(input.Name, input.ContactInfo); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

// DeleteClient deletes a client within the agency scope.
func (s *ClientService) DeleteClient(ctx context.Context, agencyID, id shared.ID) error {
	if err := s.repo.Delete(ctx, agencyID, id); err != nil {
		return err
	}

	s.logger.Info("client deleted", "id", id.String(), "agency_id", agencyID.String())
	return nil
}

package app

import (
	"context"

	"github.com/campaignhub/api/pkg/domain/client"
	"github.com/campaignhub/api/pkg/domain/shared"
	"github.com/campaignhub/api/pkg/logger"
)

// BrandProfileService handles per-client brand profiles.
type BrandProfileService struct {
	profiles client.ProfileRepository
	clients  client.Repository
	logger   *logger.Logger
}

// NewBrandProfileService creates a new BrandProfileService.
func NewBrandProfileService(profiles client.ProfileRepository, clients client.Repository, log *logger.Logger) *BrandProfileService {
	return &BrandProfileService{
		profiles: profiles,
		clients:  clients,
		logger:   log.With("service", "brand_profile"),
	}
}

// UpsertProfileInput represents the input for creating or replacing a profile.
type UpsertProfileInput struct {
	BrandTone       string         `json:"brand_tone" validate:"omitempty,max=255"`
	Industry        string         `json:"industry" validate:"omitempty,max=255"`
	TargetAudience  string         `json:"target_audience" validate:"omitempty,max=2000"`
	VoiceAttributes map[string]any `json:"voice_attributes"`
}

// UpsertProfile creates or replaces the brand profile of a client within the
// caller's agency. A client outside the agency is indistinguishable from a
// missing one.
func (s *BrandProfileService) UpsertProfile(ctx context.Context, agencyID, clientID shared.ID, input UpsertProfileInput) (*client.BrandProfile, error) {
	if _, err := s.clients.GetByID(ctx, agencyID, clientID); err != nil {
		return nil, err
	}

	p, err := client.NewBrandProfile(agencyID, clientID, input.BrandTone, input.Industry, input.TargetAudience, input.VoiceAttributes)
	if err != nil {
		return nil, err
	}

	stored, err := s.profiles.Upsert(ctx, p)
	if err != nil {
		return nil, err
	}

	s.logger.Info("brand profile saved",
		"client_id", clientID.String(),
		"agency_id", agencyID.String(),
	)
	return stored, nil
}

// GetProfile retrieves a client's brand profile within the agency scope.
func (s *BrandProfileService) GetProfile(ctx context.Context, agencyID, clientID shared.ID) (*client.BrandProfile, error) {
	return s.profiles.GetByClient(ctx, agencyID, clientID)
}

// DeleteProfile removes a client's brand profile within the agency scope.
func (s *BrandProfileService) DeleteProfile(ctx context.Context, agencyID, clientID shared.ID) error {
	if err := s.profiles.DeleteByClient(ctx, agencyID, clientID); err != nil {
		return err
	}

	s.logger.Info("brand profile deleted",
		"client_id", clientID.String(),
		"agency_id", agencyID.String(),
	)
	return nil
}

package app

import (
	"context"
	"fmt"

	"github.com/campaignhub/api/pkg/domain/shared"
	"github.com/campaignhub/api/pkg/domain/user"
	"github.com/campaignhub/api/pkg/idp"
	"github.com/campaignhub/api/pkg/logger"
)

// UserService handles local user records synced from the identity provider.
type UserService struct {
	repo   user.Repository
	logger *logger.Logger
}

// NewUserService creates a new UserService.
func NewUserService(repo user.Repository, log *logger.Logger) *UserService {
	return &UserService{
		repo:   repo,
		logger: log.With("service", "user"),
	}
}

// SyncFromIdentity upserts the local user for a verified identity. Called on
// every authenticated request; the store-level upsert keeps it idempotent
// under concurrent requests from the same user.
func (s *UserService) SyncFromIdentity(ctx context.Context, ident *idp.Identity) (*user.User, error) {
	if ident == nil {
		return nil, fmt.Errorf("%w: identity is required", shared.ErrValidation)
	}

	u, err := user.NewFromIdentity(ident.SubjectID, ident.Email, ident.Name)
	if err != nil {
		return nil, err
	}

	synced, err := s.repo.Upsert(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("failed to sync user: %w", err)
	}

	return synced, nil
}

// GetByID retrieves a user by local ID.
func (s *UserService) GetByID(ctx context.Context, id shared.ID) (*user.User, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByExternalID retrieves a user by identity provider subject ID.
func (s *UserService) GetByExternalID(ctx context.Context, externalID string) (*user.User, error) {
	return s.repo.GetByExternalID(ctx, externalID)
}

// GetUserNameByID returns the display name for a user. Used when composing
// invitation emails.
func (s *UserService) GetUserNameByID(ctx context.Context, id shared.ID) (string, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return u.Name(), nil
}

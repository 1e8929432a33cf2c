package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campaignhub/api/pkg/domain/shared"
	"github.com/campaignhub/api/pkg/idp"
	"github.com/campaignhub/api/pkg/logger"
)

func TestUserService_SyncFromIdentity(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user on first sync", func(t *testing.T) {
		repo := newMockUserRepo()
		svc := NewUserService(repo, logger.NewNop())

		u, err := svc.SyncFromIdentity(ctx, &idp.Identity{
			SubjectID: "auth0|abc123",
			Email:     "jordan@example.com",
			Name:      "Jordan",
		})

		require.NoError(t, err)
		assert.Equal(t, "auth0|abc123", u.ExternalID())

		stored, err := repo.GetByExternalID(ctx, "auth0|abc123")
		require.NoError(t, err)
		assert.Equal(t, "jordan@example.com", stored.Email())
	})

	t.Run("nil identity rejected", func(t *testing.T) {
		svc := NewUserService(newMockUserRepo(), logger.NewNop())

		_, err := svc.SyncFromIdentity(ctx, nil)
		assert.ErrorIs(t, err, shared.ErrValidation)
	})

	t.Run("missing email rejected", func(t *testing.T) {
		svc := NewUserService(newMockUserRepo(), logger.NewNop())

		_, err := svc.SyncFromIdentity(ctx, &idp.Identity{SubjectID: "auth0|abc123"})
		assert.ErrorIs(t, err, shared.ErrValidation)
	})

	t.Run("upsert failure propagates", func(t *testing.T) {
		repo := newMockUserRepo()
		repo.upsertErr = errors.New("db down")
		svc := NewUserService(repo, logger.NewNop())

		_, err := svc.SyncFromIdentity(ctx, &idp.Identity{
			SubjectID: "auth0|abc123",
			Email:     "jordan@example.com",
		})
		require.Error(t, err)
	})
}

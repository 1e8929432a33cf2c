package app

import (
	"context"
	"fmt"
	"time"

	"github.com/campaignhub/api/internal/infra/redis"
	"github.com/campaignhub/api/pkg/domain/shared"
	"github.com/campaignhub/api/pkg/domain/tenant"
	"github.com/campaignhub/api/pkg/logger"
)

// CachedMembership is the cached projection of an agency membership.
type CachedMembership struct {
	MembershipID string `json:"membership_id"`
	Role         string `json:"role"`
	Status       string `json:"status"`
}

const (
	membershipCachePrefix = "agency_member"
	membershipCacheTTL    = 5 * time.Minute
)

// MembershipCacheService provides cached agency membership lookups.
// Memberships change rarely but are read on the whoami path and on every
// tenant-scoped request, so a short Redis TTL takes most of that load off
// the database. Entries are invalidated when memberships change.
//
// Key format: agency_member:{agency_id}:{user_id}
type MembershipCacheService struct {
	cache  *redis.Cache[CachedMembership]
	repo   tenant.Repository
	logger *logger.Logger
}

// NewMembershipCacheService creates a new membership cache service.
func NewMembershipCacheService(redisClient *redis.Client, repo tenant.Repository, log *logger.Logger) (*MembershipCacheService, error) {
	cache, err := redis.NewCache[CachedMembership](redisClient, membershipCachePrefix, membershipCacheTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to create membership cache: %w", err)
	}

	return &MembershipCacheService{
		cache:  cache,
		repo:   repo,
		logger: log.With("service", "membership_cache"),
	}, nil
}

func (s *MembershipCacheService) cacheKey(agencyID, userID shared.ID) string {
	return fmt.Sprintf("%s:%s", agencyID.String(), userID.String())
}

// GetMembership returns the membership projection for a user in an agency,
// falling back to the database on any cache error. A negative result is not
// cached; shared.ErrNotFound passes through.
func (s *MembershipCacheService) GetMembership(ctx context.Context, agencyID, userID shared.ID) (*CachedMembership, error) {
	key := s.cacheKey(agencyID, userID)

	return s.cache.GetOrSetFallback(ctx, key, func(ctx context.Context) (*CachedMembership, error) {
		m, err := s.repo.GetMembership(ctx, agencyID, userID)
		if err != nil {
			return nil, err
		}
		return &CachedMembership{
			MembershipID: m.ID().String(),
			Role:         m.Role().String(),
			Status:       m.Status().String(),
		}, nil
	})
}

// Invalidate removes the cached membership for a user in an agency.
// Called when memberships are created or changed.
func (s *MembershipCacheService) Invalidate(ctx context.Context, agencyID, userID shared.ID) {
	key := s.cacheKey(agencyID, userID)
	if err := s.cache.Delete(ctx, key); err != nil {
		s.logger.Warn("failed to invalidate membership cache",
			"agency_id", agencyID.String(),
			"user_id", userID.String(),
			"error", err,
		)
		return
	}
	s.logger.Debug("membership cache invalidated",
		"agency_id", agencyID.String(),
		"user_id", userID.String(),
	)
}

// InvalidateAgency removes all cached memberships for an agency.
func (s *MembershipCacheService) InvalidateAgency(ctx context.Context, agencyID shared.ID) {
	pattern := fmt.Sprintf("%s:*", agencyID.String())
	if err := s.cache.DeletePattern(ctx, pattern); err != nil {
		s.logger.Warn("failed to invalidate agency membership cache",
			"agency_id", agencyID.String(),
			"error", err,
		)
	}
}

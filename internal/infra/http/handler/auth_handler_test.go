package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campaignhub/api/internal/app"
	"github.com/campaignhub/api/internal/infra/http/middleware"
	"github.com/campaignhub/api/pkg/domain/shared"
	"github.com/campaignhub/api/pkg/domain/user"
	"github.com/campaignhub/api/pkg/idp"
	"github.com/campaignhub/api/pkg/logger"
)

type fakeMembershipResolver struct {
	membership *app.CachedMembership
	err        error
	calls      int
}

func (f *fakeMembershipResolver) GetMembership(_ context.Context, _, _ shared.ID) (*app.CachedMembership, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.membership, nil
}

func meRequest(ident *idp.Identity, agencyID shared.ID, localUser *user.User) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	ctx := req.Context()
	if ident != nil {
		ctx = context.WithValue(ctx, middleware.IdentityKey, ident)
	}
	if !agencyID.IsZero() {
		ctx = context.WithValue(ctx, middleware.TenantIDKey, agencyID)
	}
	if localUser != nil {
		ctx = context.WithValue(ctx, middleware.LocalUserKey, localUser)
	}
	return req.WithContext(ctx)
}

func TestAuthHandler_Me(t *testing.T) {
	ident := &idp.Identity{SubjectID: "auth0|abc123", Email: "jordan@example.com", Name: "Jordan"}

	t.Run("rejects missing identity", func(t *testing.T) {
		h := NewAuthHandler(nil, logger.NewNop())
		rec := httptest.NewRecorder()

		h.Me(rec, meRequest(nil, shared.ID{}, nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("includes membership from the resolver", func(t *testing.T) {
		agencyID := shared.NewID()
		localUser, err := user.NewFromIdentity(ident.SubjectID, ident.Email, ident.Name)
		require.NoError(t, err)

		resolver := &fakeMembershipResolver{membership: &app.CachedMembership{
			MembershipID: shared.NewID().String(),
			Role:         "ADMIN",
			Status:       "ACTIVE",
		}}
		h := NewAuthHandler(resolver, logger.NewNop())
		rec := httptest.NewRecorder()

		h.Me(rec, meRequest(ident, agencyID, localUser))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, resolver.calls)

		var resp MeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotNil(t, resp.Membership)
		assert.Equal(t, "ADMIN", resp.Membership.Role)
		assert.Equal(t, "ACTIVE", resp.Membership.Status)
		assert.Equal(t, agencyID.String(), resp.AgencyID)
	})

	t.Run("omits membership without tenant context", func(t *testing.T) {
		localUser, err := user.NewFromIdentity(ident.SubjectID, ident.Email, ident.Name)
		require.NoError(t, err)

		resolver := &fakeMembershipResolver{}
		h := NewAuthHandler(resolver, logger.NewNop())
		rec := httptest.NewRecorder()

		h.Me(rec, meRequest(ident, shared.ID{}, localUser))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 0, resolver.calls, "resolver is skipped without an agency")

		var resp MeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Nil(t, resp.Membership)
	})

	t.Run("omits membership when caller is not a member", func(t *testing.T) {
		localUser, err := user.NewFromIdentity(ident.SubjectID, ident.Email, ident.Name)
		require.NoError(t, err)

		resolver := &fakeMembershipResolver{err: fmt.Errorf("%w: no membership", shared.ErrNotFound)}
		h := NewAuthHandler(resolver, logger.NewNop())
		rec := httptest.NewRecorder()

		h.Me(rec, meRequest(ident, shared.NewID(), localUser))

		require.Equal(t, http.StatusOK, rec.Code)

		var resp MeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Nil(t, resp.Membership)
	})

	t.Run("resolver failure does not fail the request", func(t *testing.T) {
		localUser, err := user.NewFromIdentity(ident.SubjectID, ident.Email, ident.Name)
		require.NoError(t, err)

		resolver := &fakeMembershipResolver{err: errors.New("redis down")}
		h := NewAuthHandler(resolver, logger.NewNop())
		rec := httptest.NewRecorder()

		h.Me(rec, meRequest(ident, shared.NewID(), localUser))

		require.Equal(t, http.StatusOK, rec.Code)

		var resp MeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Nil(t, resp.Membership)
		assert.Equal(t, ident.Email, resp.Email)
	})
}

package middleware

import (
	"context"
	"net/http"

	"github.com/campaignhub/api/internal/app"
	"github.com/campaignhub/api/pkg/apierror"
	"github.com/campaignhub/api/pkg/domain/shared"
	"github.com/campaignhub/api/pkg/domain/user"
	"github.com/campaignhub/api/pkg/logger"
)

// LocalUserKey is the context key for the local user entity.
const LocalUserKey logger.ContextKey = "local_user"

// UserSync middleware syncs the authenticated identity to the local database.
// It runs AFTER the auth middleware and upserts the local user record by
// external subject ID, refreshing email and name on every request. The upsert
// is idempotent; concurrent first requests are resolved by the store's unique
// constraint.
func UserSync(userService *app.UserService, log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			ident := GetIdentity(ctx)
			if ident == nil {
				next.ServeHTTP(w, r)
				return
			}

			localUser, err := userService.SyncFromIdentity(ctx, ident)
			if err != nil {
				log.Error("user sync failed",
					"error", err,
					"external_id", ident.SubjectID,
					"request_id", GetRequestID(ctx),
				)
				apierror.InternalError(err).WriteJSON(w)
				return
			}

			ctx = context.WithValue(ctx, LocalUserKey, localUser)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetLocalUser extracts the local user entity from context.
// Returns nil if user sync did not run.
func GetLocalUser(ctx context.Context) *user.User {
	if u, ok := ctx.Value(LocalUserKey).(*user.User); ok {
		return u
	}
	return nil
}

// GetLocalUserID extracts the local user ID from context.
// Returns the zero ID if user sync did not run.
func GetLocalUserID(ctx context.Context) shared.ID {
	if u := GetLocalUser(ctx); u != nil {
		return u.ID()
	}
	return shared.ID{}
}

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/campaignhub/api/pkg/apierror"
	"github.com/campaignhub/api/pkg/domain/shared"
	"github.com/campaignhub/api/pkg/idp"
	"github.com/campaignhub/api/pkg/logger"
)

// Auth-related context keys - use logger.ContextKey for consistency.
const (
	UserIDKey                      = logger.ContextKeyUserID
	IdentityKey  logger.ContextKey = "identity"  // Verified identity from the provider
	EmailKey     logger.ContextKey = "email"     // User email
	TenantIDKey  logger.ContextKey = "tenant_id" // Multi-tenant: agency identifier from org_id claim
)

// Auth verifies the bearer credential against the identity provider and
// places the resulting Identity on the request context.
//
// Tenant context comes exclusively from the token's org_id claim. A user with
// a stored primary agency but a session issued without an organization gets
// no tenant context.
func Auth(verifier *idp.Verifier, log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apierror.Unauthorized("Missing authorization header").WriteJSON(w)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				apierror.Unauthorized("Invalid authorization header format").WriteJSON(w)
				return
			}

			ident, err := verifier.Verify(parts[1])
			if err != nil {
				log.Warn("credential verification failed",
					"error", err,
					"request_id", GetRequestID(r.Context()),
				)
				apierror.Unauthorized("Invalid or expired credential").WriteJSON(w)
				return
			}

			ctx := r.Context()
			ctx = context.WithValue(ctx, IdentityKey, ident)
			ctx = context.WithValue(ctx, UserIDKey, ident.SubjectID)
			ctx = context.WithValue(ctx, EmailKey, ident.Email)

			if ident.OrgID != "" {
				agencyID, parseErr := shared.IDFromString(ident.OrgID)
				if parseErr != nil {
					log.Warn("org_id claim is not a valid agency id",
						"org_id", ident.OrgID,
						"request_id", GetRequestID(r.Context()),
					)
					apierror.Unauthorized("Invalid organization claim").WriteJSON(w)
					return
				}
				ctx = context.WithValue(ctx, TenantIDKey, agencyID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetIdentity extracts the verified identity from context.
// Returns nil if the request did not pass the auth middleware.
func GetIdentity(ctx context.Context) *idp.Identity {
	if ident, ok := ctx.Value(IdentityKey).(*idp.Identity); ok {
		return ident
	}
	return nil
}

// GetUserID extracts the external subject ID from context.
func GetUserID(ctx context.Context) string {
	if id, ok := ctx.Value(UserIDKey).(string); ok {
		return id
	}
	return ""
}

// GetEmail extracts the user email from context.
func GetEmail(ctx context.Context) string {
	if email, ok := ctx.Value(EmailKey).(string); ok {
		return email
	}
	return ""
}

// GetTenantID extracts the agency ID from context.
// Returns the zero ID when the session carries no organization.
func GetTenantID(ctx context.Context) shared.ID {
	if id, ok := ctx.Value(TenantIDKey).(shared.ID); ok {
		return id
	}
	return shared.ID{}
}

// RequireTenant rejects requests whose session carries no tenant context.
// Context-optional routes (onboarding, invitation acceptance, whoami) omit it.
func RequireTenant() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if GetTenantID(r.Context()).IsZero() {
				apierror.Forbidden("Agency context required").WriteJSON(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

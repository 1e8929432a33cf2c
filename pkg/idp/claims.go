// Package idp verifies bearer credentials issued by the external identity
// provider. Tokens are RS256 JWTs validated against the provider's JWKS
// endpoint.
package idp

import "github.com/golang-jwt/jwt/v5"

// Claims represents the identity provider's JWT claims.
type Claims struct {
	jwt.RegisteredClaims

	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`

	// OrgID is the active organization the session was issued for. When
	// present it is authoritative for tenant context.
	OrgID string `json:"org_id,omitempty"`

	// Azp is the authorized party (client ID).
	Azp string `json:"azp,omitempty"`
}

// Identity is the verified result handed to the rest of the system. Only
// these fields cross the auth boundary.
type Identity struct {
	// SubjectID is the provider's stable subject identifier.
	SubjectID string
	Email     string
	Name      string
	// OrgID is empty when the session carries no organization.
	OrgID string
}

// ToIdentity projects the claims onto an Identity.
func (c *Claims) ToIdentity() Identity {
	return Identity{
		SubjectID: c.Subject,
		Email:     c.Email,
		Name:      c.Name,
		OrgID:     c.OrgID,
	}
}

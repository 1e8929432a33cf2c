// Package user provides the user domain model.
package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/campaignhub/api/pkg/domain/shared"
	"github.com/campaignhub/api/pkg/domain/tenant"
)

// User represents a local user synced from the external identity provider.
// The external subject ID is the stable join key; email is refreshed on every
// authenticated request.
type User struct {
	id              shared.ID
	externalID      string
	email           string
	name            string
	primaryAgencyID *shared.ID
	primaryRole     *tenant.Role
	lastLoginAt     *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

// NewFromIdentity creates a new User from verified identity claims.
// The email is lower-cased so uniqueness holds regardless of how the
// identity provider capitalizes it.
func NewFromIdentity(externalID, email, name string) (*User, error) {
	if externalID == "" {
		return nil, fmt.Errorf("%w: externalID is required", shared.ErrValidation)
	}
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", shared.ErrValidation)
	}

	now := time.Now().UTC()
	return &User{
		id:          shared.NewID(),
		externalID:  externalID,
		email:       strings.ToLower(email),
		name:        name,
		lastLoginAt: &now,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// Reconstitute recreates a User from persistence.
func Reconstitute(
	id shared.ID,
	externalID, email, name string,
	primaryAgencyID *shared.ID,
	primaryRole *tenant.Role,
	lastLoginAt *time.Time,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:              id,
		externalID:      externalID,
		email:           email,
		name:            name,
		primaryAgencyID: primaryAgencyID,
		primaryRole:     primaryRole,
		lastLoginAt:     lastLoginAt,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// ID returns the user ID.
func (u *User) ID() shared.ID {
	return u.id
}

// ExternalID returns the identity provider subject ID.
func (u *User) ExternalID() string {
	return u.externalID
}

// Email returns the user email.
func (u *User) Email() string {
	return u.email
}

// Name returns the user name.
func (u *User) Name() string {
	return u.name
}

// PrimaryAgencyID returns the user's primary agency (nil if none).
func (u *User) PrimaryAgencyID() *shared.ID {
	return u.primaryAgencyID
}

// PrimaryRole returns the user's role in the primary agency (nil if none).
func (u *User) PrimaryRole() *tenant.Role {
	return u.primaryRole
}

// LastLoginAt returns the last login timestamp.
func (u *User) LastLoginAt() *time.Time {
	return u.lastLoginAt
}

// CreatedAt returns the creation timestamp.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// UpdatedAt returns the last update timestamp.
func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// HasPrimaryAgency checks if the user has a primary agency set.
func (u *User) HasPrimaryAgency() bool {
	return u.primaryAgencyID != nil && !u.primaryAgencyID.IsZero()
}

// SyncFromIdentity refreshes mutable fields from identity claims.
func (u *User) SyncFromIdentity(email, name string) {
	if email = strings.ToLower(email); email != "" && email != u.email {
		u.email = email
	}
	if name != "" && name != u.name {
		u.name = name
	}
	now := time.Now().UTC()
	u.lastLoginAt = &now
	u.updatedAt = now
}

// SetPrimaryContext sets the user's primary agency and role, replacing any
// existing value.
func (u *User) SetPrimaryContext(agencyID shared.ID, role tenant.Role) error {
	if agencyID.IsZero() {
		return fmt.Errorf("%w: agencyID is required", shared.ErrValidation)
	}
	if !role.IsValid() {
		return fmt.Errorf("%w: invalid role", shared.ErrValidation)
	}
	u.primaryAgencyID = &agencyID
	u.primaryRole = &role
	u.updatedAt = time.Now().UTC()
	return nil
}

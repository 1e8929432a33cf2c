// Package client provides the client domain model. Clients are the agency's
// customers and the anchor for projects.
package client

import (
	"fmt"
	"time"

	"github.com/campaignhub/api/pkg/domain/shared"
)

// Client represents a client of an agency.
type Client struct {
	id          shared.ID
	agencyID    shared.ID
	name        string
	contactInfo map[string]any
	createdAt   time.Time
	updatedAt   time.Time
}

// New creates a new Client entity.
func New(agencyID shared.ID, name string, contactInfo map[string]any) (*Client, error) {
	if agencyID.IsZero() {
		return nil, fmt.Errorf("%w: agencyID is required", shared.ErrValidation)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", shared.ErrValidation)
	}
	if contactInfo == nil {
		contactInfo = make(map[string]any)
	}

	now := time.Now().UTC()
	return &Client{
		id:          shared.NewID(),
		agencyID:    agencyID,
		name:        name,
		contactInfo: contactInfo,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// Reconstitute recreates a Client from persistence.
func Reconstitute(
	id, agencyID shared.ID,
	name string,
	contactInfo map[string]any,
	createdAt, updatedAt time.Time,
) *Client {
	if contactInfo == nil {
		contactInfo = make(map[string]any)
	}
	return &Client{
		id:          id,
		agencyID:    agencyID,
		name:        name,
		contactInfo: contactInfo,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ID returns the client ID.
func (c *Client) ID() shared.ID {
	return c.id
}

// AgencyID returns the owning agency ID.
func (c *Client) AgencyID() shared.ID {
	return c.agencyID
}

// Name returns the client name.
func (c *Client) Name() string {
	return c.name
}

// ContactInfo returns the client contact info.
func (c *Client) ContactInfo() map[string]any {
	result := make(map[string]any, len(c.contactInfo))
	for k, v := range c.contactInfo {
		result[k] = v
	}
	return result
}

// CreatedAt returns the creation timestamp.
func (c *Client) CreatedAt() time.Time {
	return c.createdAt
}

// UpdatedAt returns the last update timestamp.
func (c *Client) UpdatedAt() time.Time {
	return c.updatedAt
}

// Update changes the client name and contact info.
func (c *Client) Update(name string, contactInfo map[string]any) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", shared.ErrValidation)
	}
	c.name = name
	if contactInfo != nil {
		c.contactInfo = contactInfo
	}
	c.updatedAt = time.Now().UTC()
	return nil
}

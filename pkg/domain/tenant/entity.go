// Package tenant provides the agency tenancy domain model: agencies,
// memberships, and invitations.
package tenant

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/campaignhub/api/pkg/domain/shared"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Agency represents an agency tenant. All client, project, and campaign plan
// data is scoped to exactly one agency. Settings is an opaque key-value map
// the agency controls; the domain never interprets it.
type Agency struct {
	id        shared.ID
	name      string
	slug      string
	settings  map[string]any
	createdBy shared.ID
	createdAt time.Time
	updatedAt time.Time
}

// NewAgency creates a new Agency entity. A nil settings map becomes empty.
func NewAgency(name, slug string, createdBy shared.ID, settings map[string]any) (*Agency, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", shared.ErrValidation)
	}
	if slug == "" {
		return nil, fmt.Errorf("%w: slug is required", shared.ErrValidation)
	}
	if !IsValidSlug(slug) {
		return nil, fmt.Errorf("%w: invalid slug format (use lowercase letters, numbers, and hyphens)", shared.ErrValidation)
	}
	if createdBy.IsZero() {
		return nil, fmt.Errorf("%w: createdBy is required", shared.ErrValidation)
	}
	if settings == nil {
		settings = make(map[string]any)
	}

	now := time.Now().UTC()
	return &Agency{
		id:        shared.NewID(),
		name:      name,
		slug:      strings.ToLower(slug),
		settings:  settings,
		createdBy: createdBy,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Reconstitute recreates an Agency from persistence.
func Reconstitute(
	id shared.ID,
	name, slug string,
	settings map[string]any,
	createdBy shared.ID,
	createdAt, updatedAt time.Time,
) *Agency {
	if settings == nil {
		settings = make(map[string]any)
	}
	return &Agency{
		id:        id,
		name:      name,
		slug:      slug,
		settings:  settings,
		createdBy: createdBy,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ID returns the agency ID.
func (a *Agency) ID() shared.ID {
	return a.id
}

// Name returns the agency name.
func (a *Agency) Name() string {
	return a.name
}

// Slug returns the agency slug (URL-friendly identifier).
func (a *Agency) Slug() string {
	return a.slug
}

// Settings returns a copy of the agency settings map.
func (a *Agency) Settings() map[string]any {
	result := make(map[string]any, len(a.settings))
	for k, v := range a.settings {
		result[k] = v
	}
	return result
}

// CreatedBy returns the user ID who created this agency.
func (a *Agency) CreatedBy() shared.ID {
	return a.createdBy
}

// CreatedAt returns the creation timestamp.
func (a *Agency) CreatedAt() time.Time {
	return a.createdAt
}

// UpdatedAt returns the last update timestamp.
func (a *Agency) UpdatedAt() time.Time {
	return a.updatedAt
}

// UpdateName updates the agency name.
func (a *Agency) UpdateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", shared.ErrValidation)
	}
	a.name = name
	a.updatedAt = time.Now().UTC()
	return nil
}

// UpdateSettings replaces the agency settings map.
func (a *Agency) UpdateSettings(settings map[string]any) {
	if settings == nil {
		settings = make(map[string]any)
	}
	a.settings = settings
	a.updatedAt = time.Now().UTC()
}

// IsValidSlug checks if a slug is valid.
func IsValidSlug(slug string) bool {
	if len(slug) < 3 || len(slug) > 100 {
		return false
	}
	return slugRegex.MatchString(slug)
}

// GenerateSlug generates a slug from a name.
func GenerateSlug(name string) string {
	slug := strings.ToLower(name)
	slug = regexp.MustCompile(`[^a-z0-9]+`).ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > 100 {
		slug = slug[:100]
	}
	return slug
}

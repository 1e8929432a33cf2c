package client

import (
	"fmt"
	"time"

	"github.com/campaignhub/api/pkg/domain/shared"
)

// BrandProfile captures how a client wants to sound: tone, industry,
// audience, and free-form voice attributes. Each client has at most one.
type BrandProfile struct {
	id              shared.ID
	agencyID        shared.ID
	clientID        shared.ID
	brandTone       string
	industry        string
	targetAudience  string
	voiceAttributes map[string]any
	createdAt       time.Time
	updatedAt       time.Time
}

// NewBrandProfile creates a new BrandProfile entity.
func NewBrandProfile(agencyID, clientID shared.ID, brandTone, industry, targetAudience string, voiceAttributes map[string]any) (*BrandProfile, error) {
	if agencyID.IsZero() {
		return nil, fmt.Errorf("%w: agencyID is required", shared.ErrValidation)
	}
	if clientID.IsZero() {
		return nil, fmt.Errorf("%w: clientID is required", shared.ErrValidation)
	}
	if voiceAttributes == nil {
		voiceAttributes = make(map[string]any)
	}

	now := time.Now().UTC()
	return &BrandProfile{
		id:              shared.NewID(),
		agencyID:        agencyID,
		clientID:        clientID,
		brandTone:       brandTone,
		industry:        industry,
		targetAudience:  targetAudience,
		voiceAttributes: voiceAttributes,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// ReconstituteBrandProfile recreates a BrandProfile from persistence.
func ReconstituteBrandProfile(
	id, agencyID, clientID shared.ID,
	brandTone, industry, targetAudience string,
	voiceAttributes map[string]any,
	createdAt, updatedAt time.Time,
) *BrandProfile {
	if voiceAttributes == nil {
		voiceAttributes = make(map[string]any)
	}
	return &BrandProfile{
		id:              id,
		agencyID:        agencyID,
		clientID:        clientID,
		brandTone:       brandTone,
		industry:        industry,
		targetAudience:  targetAudience,
		voiceAttributes: voiceAttributes,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// ID returns the profile ID.
func (p *BrandProfile) ID() shared.ID {
	return p.id
}

// AgencyID returns the owning agency ID.
func (p *BrandProfile) AgencyID() shared.ID {
	return p.agencyID
}

// ClientID returns the client this profile describes.
func (p *BrandProfile) ClientID() shared.ID {
	return p.clientID
}

// BrandTone returns the brand tone.
func (p *BrandProfile) BrandTone() string {
	return p.brandTone
}

// Industry returns the client industry.
func (p *BrandProfile) Industry() string {
	return p.industry
}

// TargetAudience returns the target audience description.
func (p *BrandProfile) TargetAudience() string {
	return p.targetAudience
}

// VoiceAttributes returns the free-form voice attributes.
func (p *BrandProfile) VoiceAttributes() map[string]any {
	result := make(map[string]any, len(p.voiceAttributes))
	for k, v := range p.voiceAttributes {
		result[k] = v
	}
	return result
}

// CreatedAt returns the creation timestamp.
func (p *BrandProfile) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns the last update timestamp.
func (p *BrandProfile) UpdatedAt() time.Time {
	return p.updatedAt
}

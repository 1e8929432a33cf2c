// Package plan provides the campaign plan domain model: the content planning
// document attached to a project.
package plan

import (
	"fmt"
	"time"

	"github.com/campaignhub/api/pkg/domain/shared"
)

// CampaignPlan represents the content plan for a project: campaign goals,
// content themes, key events, and the post/reel production split.
type CampaignPlan struct {
	id           shared.ID
	agencyID     shared.ID
	projectID    shared.ID
	goals        []string
	themes       []string
	events       []string
	numPosts     int
	numReels     int
	splitPercent int // share of posts vs reels, 0-100
	meetingNotes string
	createdAt    time.Time
	updatedAt    time.Time
}

// Fields holds the mutable content of a campaign plan.
type Fields struct {
	Goals        []string
	Themes       []string
	Events       []string
	NumPosts     int
	NumReels     int
	SplitPercent int
	MeetingNotes string
}

// New creates a new CampaignPlan entity.
func New(agencyID, projectID shared.ID, f Fields) (*CampaignPlan, error) {
	if agencyID.IsZero() {
		return nil, fmt.Errorf("%w: agencyID is required", shared.ErrValidation)
	}
	if projectID.IsZero() {
		return nil, fmt.Errorf("%w: projectID is required", shared.ErrValidation)
	}
	if err := validateFields(f); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p := &CampaignPlan{
		id:        shared.NewID(),
		agencyID:  agencyID,
		projectID: projectID,
		createdAt: now,
		updatedAt: now,
	}
	p.apply(f)
	return p, nil
}

// Reconstitute recreates a CampaignPlan from persistence.
func Reconstitute(
	id, agencyID, projectID shared.ID,
	f Fields,
	createdAt, updatedAt time.Time,
) *CampaignPlan {
	p := &CampaignPlan{
		id:        id,
		agencyID:  agencyID,
		projectID: projectID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
	p.apply(f)
	p.updatedAt = updatedAt
	return p
}

func validateFields(f Fields) error {
	if f.NumPosts < 0 || f.NumReels < 0 {
		return fmt.Errorf("%w: content counts must not be negative", shared.ErrValidation)
	}
	if f.SplitPercent < 0 || f.SplitPercent > 100 {
		return fmt.Errorf("%w: split percent must be between 0 and 100", shared.ErrValidation)
	}
	return nil
}

func (p *CampaignPlan) apply(f Fields) {
	p.goals = append([]string(nil), f.Goals...)
	p.themes = append([]string(nil), f.Themes...)
	p.events = append([]string(nil), f.Events...)
	p.numPosts = f.NumPosts
	p.numReels = f.NumReels
	p.splitPercent = f.SplitPercent
	p.meetingNotes = f.MeetingNotes
	p.updatedAt = time.Now().UTC()
}

// ID returns the plan ID.
func (p *CampaignPlan) ID() shared.ID {
	return p.id
}

// AgencyID returns the owning agency ID.
func (p *CampaignPlan) AgencyID() shared.ID {
	return p.agencyID
}

// ProjectID returns the project this plan belongs to.
func (p *CampaignPlan) ProjectID() shared.ID {
	return p.projectID
}

// Goals returns the campaign goals.
func (p *CampaignPlan) Goals() []string {
	return append([]string(nil), p.goals...)
}

// Themes returns the content themes.
func (p *CampaignPlan) Themes() []string {
	return append([]string(nil), p.themes...)
}

// Events returns the key events.
func (p *CampaignPlan) Events() []string {
	return append([]string(nil), p.events...)
}

// NumPosts returns the planned post count.
func (p *CampaignPlan) NumPosts() int {
	return p.numPosts
}

// NumReels returns the planned reel count.
func (p *CampaignPlan) NumReels() int {
	return p.numReels
}

// SplitPercent returns the post/reel split percentage.
func (p *CampaignPlan) SplitPercent() int {
	return p.splitPercent
}

// MeetingNotes returns the meeting notes.
func (p *CampaignPlan) MeetingNotes() string {
	return p.meetingNotes
}

// CreatedAt returns the creation timestamp.
func (p *CampaignPlan) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns the last update timestamp.
func (p *CampaignPlan) UpdatedAt() time.Time {
	return p.updatedAt
}

// Update replaces the plan content.
func (p *CampaignPlan) Update(f Fields) error {
	if err := validateFields(f); err != nil {
		return err
	}
	p.apply(f)
	return nil
}

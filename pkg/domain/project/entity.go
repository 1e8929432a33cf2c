// Package project provides the project domain model.
package project

import (
	"fmt"
	"time"

	"github.com/campaignhub/api/pkg/domain/shared"
)

// Status represents the project lifecycle state.
type Status string

const (
	StatusPlanning  Status = "PLANNING"
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
	StatusArchived  Status = "ARCHIVED"
)

// IsValid checks if the status is valid.
func (s Status) IsValid() bool {
	switch s {
	case StatusPlanning, StatusActive, StatusCompleted, StatusArchived:
		return true
	}
	return false
}

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// ParseStatus parses a string to a Status.
func ParseStatus(s string) (Status, bool) {
	st := Status(s)
	return st, st.IsValid()
}

// Project represents a campaign project run for a client.
type Project struct {
	id        shared.ID
	agencyID  shared.ID
	clientID  shared.ID
	name      string
	status    Status
	startDate *time.Time
	endDate   *time.Time
	createdAt time.Time
	updatedAt time.Time
}

// New creates a new Project entity.
func New(agencyID, clientID shared.ID, name string, startDate, endDate *time.Time) (*Project, error) {
	if agencyID.IsZero() {
		return nil, fmt.Errorf("%w: agencyID is required", shared.ErrValidation)
	}
	if clientID.IsZero() {
		return nil, fmt.Errorf("%w: clientID is required", shared.ErrValidation)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", shared.ErrValidation)
	}
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return nil, fmt.Errorf("%w: end date must not be before start date", shared.ErrValidation)
	}

	now := time.Now().UTC()
	return &Project{
		id:        shared.NewID(),
		agencyID:  agencyID,
		clientID:  clientID,
		name:      name,
		status:    StatusPlanning,
		startDate: startDate,
		endDate:   endDate,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Reconstitute recreates a Project from persistence.
func Reconstitute(
	id, agencyID, clientID shared.ID,
	name string,
	status Status,
	startDate, endDate *time.Time,
	createdAt, updatedAt time.Time,
) *Project {
	return &Project{
		id:        id,
		agencyID:  agencyID,
		clientID:  clientID,
		name:      name,
		status:    status,
		startDate: startDate,
		endDate:   endDate,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ID returns the project ID.
func (p *Project) ID() shared.ID {
	return p.id
}

// AgencyID returns the owning agency ID.
func (p *Project) AgencyID() shared.ID {
	return p.agencyID
}

// ClientID returns the client this project is run for.
func (p *Project) ClientID() shared.ID {
	return p.clientID
}

// Name returns the project name.
func (p *Project) Name() string {
	return p.name
}

// Status returns the project status.
func (p *Project) Status() Status {
	return p.status
}

// StartDate returns the project start date (nil if unset).
func (p *Project) StartDate() *time.Time {
	return p.startDate
}

// EndDate returns the project end date (nil if unset).
func (p *Project) EndDate() *time.Time {
	return p.endDate
}

// CreatedAt returns the creation timestamp.
func (p *Project) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns the last update timestamp.
func (p *Project) UpdatedAt() time.Time {
	return p.updatedAt
}

// UpdateName updates the project name.
func (p *Project) UpdateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", shared.ErrValidation)
	}
	p.name = name
	p.updatedAt = time.Now().UTC()
	return nil
}

// UpdateStatus transitions the project to a new status.
func (p *Project) UpdateStatus(status Status) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: invalid status", shared.ErrValidation)
	}
	p.status = status
	p.updatedAt = time.Now().UTC()
	return nil
}

// UpdateDates updates the project start and end dates.
func (p *Project) UpdateDates(startDate, endDate *time.Time) error {
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return fmt.Errorf("%w: end date must not be before start date", shared.ErrValidation)
	}
	p.startDate = startDate
	p.endDate = endDate
	p.updatedAt = time.Now().UTC()
	return nil
}

package project

import (
	"testing"
	"time"

	"github.com/campaignhub/api/pkg/domain/shared"
)

func TestNew(t *testing.T) {
	agencyID := shared.NewID()
	clientID := shared.NewID()
	start := time.Now().UTC()
	end := start.Add(30 * 24 * time.Hour)
	before := start.Add(-time.Hour)

	tests := []struct {
		name      string
		agencyID  shared.ID
		clientID  shared.ID
		projName  string
		startDate *time.Time
		endDate   *time.Time
		wantErr   bool
	}{
		{"valid with dates", agencyID, clientID, "Summer Launch", &start, &end, false},
		{"valid without dates", agencyID, clientID, "Summer Launch", nil, nil, false},
		{"valid start only", agencyID, clientID, "Summer Launch", &start, nil, false},
		{"end before start", agencyID, clientID, "Summer Launch", &start, &before, true},
		{"zero agency", shared.ID{}, clientID, "Summer Launch", nil, nil, true},
		{"zero client", agencyID, shared.ID{}, "Summer Launch", nil, nil, true},
		{"empty name", agencyID, clientID, "", nil, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(tt.agencyID, tt.clientID, tt.projName, tt.startDate, tt.endDate)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && p.Status() != StatusPlanning {
				t.Errorf("Status() = %v, want %v for new project", p.Status(), StatusPlanning)
			}
		})
	}
}

func TestProject_UpdateStatus(t *testing.T) {
	p, err := New(shared.NewID(), shared.NewID(), "Summer Launch", nil, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := p.UpdateStatus(StatusActive); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if p.Status() != StatusActive {
		t.Errorf("Status() = %v, want %v", p.Status(), StatusActive)
	}

	if err := p.UpdateStatus(Status("ON_HOLD")); err == nil {
		t.Error("UpdateStatus() with invalid status should fail")
	}
}

func TestProject_UpdateDates(t *testing.T) {
	p, err := New(shared.NewID(), shared.NewID(), "Summer Launch", nil, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	start := time.Now().UTC()
	end := start.Add(time.Hour)
	if err := p.UpdateDates(&start, &end); err != nil {
		t.Fatalf("UpdateDates() error = %v", err)
	}

	bad := start.Add(-time.Hour)
	if err := p.UpdateDates(&start, &bad); err == nil {
		t.Error("UpdateDates() with end before start should fail")
	}

	// Equal start and end is a zero-length project, allowed.
	if err := p.UpdateDates(&start, &start); err != nil {
		t.Errorf("UpdateDates() with equal dates error = %v, want nil", err)
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"PLANNING", true},
		{"ACTIVE", true},
		{"COMPLETED", true},
		{"ARCHIVED", true},
		{"active", false},
		{"", false},
	}

	for _, tt := range tests {
		if _, ok := ParseStatus(tt.input); ok != tt.ok {
			t.Errorf("ParseStatus(%q) ok = %v, want %v", tt.input, ok, tt.ok)
		}
	}
}

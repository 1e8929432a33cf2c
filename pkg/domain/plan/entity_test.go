package plan

import (
	"testing"

	"github.com/campaignhub/api/pkg/domain/shared"
)

func TestNew(t *testing.T) {
	agencyID := shared.NewID()
	projectID := shared.NewID()

	valid := Fields{
		Goals:        []string{"Brand awareness"},
		Themes:       []string{"Summer"},
		Events:       []string{"Launch week"},
		NumPosts:     12,
		NumReels:     4,
		SplitPercent: 60,
		MeetingNotes: "Kickoff notes",
	}

	tests := []struct {
		name      string
		agencyID  shared.ID
		projectID shared.ID
		fields    Fields
		wantErr   bool
	}{
		{"valid plan", agencyID, projectID, valid, false},
		{"empty fields allowed", agencyID, projectID, Fields{}, false},
		{"zero agency", shared.ID{}, projectID, valid, true},
		{"zero project", agencyID, shared.ID{}, valid, true},
		{"negative posts", agencyID, projectID, Fields{NumPosts: -1}, true},
		{"negative reels", agencyID, projectID, Fields{NumReels: -1}, true},
		{"split below range", agencyID, projectID, Fields{SplitPercent: -1}, true},
		{"split above range", agencyID, projectID, Fields{SplitPercent: 101}, true},
		{"split at boundaries", agencyID, projectID, Fields{SplitPercent: 100}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(tt.agencyID, tt.projectID, tt.fields)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if p.NumPosts() != tt.fields.NumPosts || p.SplitPercent() != tt.fields.SplitPercent {
				t.Error("New() did not apply fields")
			}
		})
	}
}

func TestCampaignPlan_Update(t *testing.T) {
	p, err := New(shared.NewID(), shared.NewID(), Fields{NumPosts: 5})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := p.Update(Fields{NumPosts: 8, NumReels: 2, SplitPercent: 75, MeetingNotes: "revised"}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if p.NumPosts() != 8 || p.NumReels() != 2 || p.SplitPercent() != 75 {
		t.Error("Update() did not replace fields")
	}
	if p.MeetingNotes() != "revised" {
		t.Errorf("MeetingNotes() = %q, want %q", p.MeetingNotes(), "revised")
	}

	if err := p.Update(Fields{SplitPercent: 200}); err == nil {
		t.Error("Update() with out-of-range split should fail")
	}
	// Failed update leaves the plan unchanged.
	if p.SplitPercent() != 75 {
		t.Errorf("SplitPercent() = %d after failed update, want 75", p.SplitPercent())
	}
}

func TestCampaignPlan_SlicesAreCopied(t *testing.T) {
	goals := []string{"one"}
	p, err := New(shared.NewID(), shared.NewID(), Fields{Goals: goals})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	goals[0] = "mutated"
	if p.Goals()[0] != "one" {
		t.Error("plan should copy input slices")
	}

	got := p.Goals()
	got[0] = "mutated"
	if p.Goals()[0] != "one" {
		t.Error("accessor should return a copy")
	}
}

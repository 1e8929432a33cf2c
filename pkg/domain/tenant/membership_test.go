package tenant

import (
	"testing"

	"github.com/campaignhub/api/pkg/domain/shared"
)

func TestNewMembership(t *testing.T) {
	agencyID := shared.NewID()
	userID := shared.NewID()
	inviterID := shared.NewID()

	tests := []struct {
		name      string
		agencyID  shared.ID
		userID    shared.ID
		role      Role
		invitedBy *shared.ID
		wantErr   bool
	}{
		{"valid membership", agencyID, userID, RoleTeam, &inviterID, false},
		{"founder has nil inviter", agencyID, userID, RoleOwner, nil, false},
		{"zero agency ID", shared.ID{}, userID, RoleTeam, &inviterID, true},
		{"zero user ID", agencyID, shared.ID{}, RoleTeam, &inviterID, true},
		{"invalid role", agencyID, userID, Role("bogus"), &inviterID, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMembership(tt.agencyID, tt.userID, tt.role, tt.invitedBy)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewMembership() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if m.Status() != MembershipActive {
				t.Errorf("Status() = %v, want %v", m.Status(), MembershipActive)
			}
			if !m.IsActive() {
				t.Error("IsActive() = false for a new membership")
			}
		})
	}
}

func TestNewOwnerMembership(t *testing.T) {
	m, err := NewOwnerMembership(shared.NewID(), shared.NewID())
	if err != nil {
		t.Fatalf("NewOwnerMembership() error = %v", err)
	}
	if !m.IsOwner() {
		t.Error("IsOwner() = false for founding membership")
	}
	if m.InvitedBy() != nil {
		t.Error("InvitedBy() should be nil for the founder")
	}
}

func TestNewProjectMembership(t *testing.T) {
	projectID := shared.NewID()
	userID := shared.NewID()
	inviterID := shared.NewID()

	m, err := NewProjectMembership(projectID, userID, RoleClient, &inviterID)
	if err != nil {
		t.Fatalf("NewProjectMembership() error = %v", err)
	}
	if m.ProjectID() != projectID {
		t.Errorf("ProjectID() = %v, want %v", m.ProjectID(), projectID)
	}
	if !m.IsActive() {
		t.Error("IsActive() = false for a new project membership")
	}

	if _, err := NewProjectMembership(shared.ID{}, userID, RoleClient, &inviterID); err == nil {
		t.Error("NewProjectMembership() with zero projectID should fail")
	}
	if _, err := NewProjectMembership(projectID, userID, Role("bogus"), &inviterID); err == nil {
		t.Error("NewProjectMembership() with invalid role should fail")
	}
}

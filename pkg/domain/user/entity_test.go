package user

import (
	"testing"
	"time"

	"github.com/campaignhub/api/pkg/domain/shared"
	"github.com/campaignhub/api/pkg/domain/tenant"
)

func TestNewFromIdentity(t *testing.T) {
	tests := []struct {
		name       string
		externalID string
		email      string
		userName   string
		wantErr    bool
	}{
		{"valid", "auth0|abc123", "jordan@example.com", "Jordan", false},
		{"name optional", "auth0|abc123", "jordan@example.com", "", false},
		{"empty externalID", "", "jordan@example.com", "Jordan", true},
		{"empty email", "auth0|abc123", "", "Jordan", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewFromIdentity(tt.externalID, tt.email, tt.userName)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewFromIdentity() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if u.HasPrimaryAgency() {
				t.Error("new user should have no primary agency")
			}
			if u.LastLoginAt() == nil {
				t.Error("new user should have lastLoginAt set")
			}
		})
	}
}

func TestNewFromIdentity_LowercasesEmail(t *testing.T) {
	u, err := NewFromIdentity("auth0|abc123", "Jordan.Lee@Example.COM", "Jordan")
	if err != nil {
		t.Fatalf("NewFromIdentity() error = %v", err)
	}
	if u.Email() != "jordan.lee@example.com" {
		t.Errorf("Email() = %q, want lower-cased email", u.Email())
	}
}

func TestUser_SyncFromIdentity(t *testing.T) {
	u, err := NewFromIdentity("auth0|abc123", "old@example.com", "Old Name")
	if err != nil {
		t.Fatalf("NewFromIdentity() error = %v", err)
	}
	before := *u.LastLoginAt()
	time.Sleep(time.Millisecond)

	u.SyncFromIdentity("new@example.com", "New Name")

	if u.Email() != "new@example.com" {
		t.Errorf("Email() = %q, want refreshed email", u.Email())
	}
	if u.Name() != "New Name" {
		t.Errorf("Name() = %q, want refreshed name", u.Name())
	}
	if !u.LastLoginAt().After(before) {
		t.Error("lastLoginAt should advance on sync")
	}

	// Empty claims leave existing values untouched.
	u.SyncFromIdentity("", "")
	if u.Email() != "new@example.com" || u.Name() != "New Name" {
		t.Error("empty claims should not clobber stored values")
	}

	// Capitalization changes from the identity provider are normalized.
	u.SyncFromIdentity("New@Example.COM", "")
	if u.Email() != "new@example.com" {
		t.Errorf("Email() = %q, want lower-cased email", u.Email())
	}
}

func TestUser_SetPrimaryContext(t *testing.T) {
	u, err := NewFromIdentity("auth0|abc123", "jordan@example.com", "Jordan")
	if err != nil {
		t.Fatalf("NewFromIdentity() error = %v", err)
	}

	first := shared.NewID()
	if err := u.SetPrimaryContext(first, tenant.RoleTeam); err != nil {
		t.Fatalf("SetPrimaryContext() error = %v", err)
	}
	if !u.HasPrimaryAgency() || *u.PrimaryAgencyID() != first {
		t.Error("primary agency not set")
	}
	if *u.PrimaryRole() != tenant.RoleTeam {
		t.Errorf("PrimaryRole() = %v, want TEAM", *u.PrimaryRole())
	}

	// Setting again replaces the existing context.
	second := shared.NewID()
	if err := u.SetPrimaryContext(second, tenant.RoleOwner); err != nil {
		t.Fatalf("SetPrimaryContext() error = %v", err)
	}
	if *u.PrimaryAgencyID() != second {
		t.Error("primary agency should be overwritten")
	}
	if *u.PrimaryRole() != tenant.RoleOwner {
		t.Errorf("PrimaryRole() = %v, want OWNER", *u.PrimaryRole())
	}

	if err := u.SetPrimaryContext(shared.ID{}, tenant.RoleTeam); err == nil {
		t.Error("SetPrimaryContext() with zero agencyID should fail")
	}
	if err := u.SetPrimaryContext(shared.NewID(), tenant.Role("bogus")); err == nil {
		t.Error("SetPrimaryContext() with invalid role should fail")
	}
}

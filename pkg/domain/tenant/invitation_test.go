package tenant

import (
	"errors"
	"testing"
	"time"

	"github.com/campaignhub/api/pkg/domain/shared"
)

func TestNewInvitation(t *testing.T) {
	resourceID := shared.NewID()
	inviterID := shared.NewID()

	tests := []struct {
		name      string
		email     string
		role      Role
		scope     Scope
		resource  shared.ID
		invitedBy shared.ID
		tokenHash string
		wantErr   bool
	}{
		{
			name:      "valid agency invitation",
			email:     "new.member@example.com",
			role:      RoleTeam,
			scope:     ScopeAgency,
			resource:  resourceID,
			invitedBy: inviterID,
			tokenHash: "abc123hash",
			wantErr:   false,
		},
		{
			name:      "valid project invitation",
			email:     "freelancer@example.com",
			role:      RoleClient,
			scope:     ScopeProject,
			resource:  resourceID,
			invitedBy: inviterID,
			tokenHash: "abc123hash",
			wantErr:   false,
		},
		{
			name:      "empty email",
			email:     "",
			role:      RoleTeam,
			scope:     ScopeAgency,
			resource:  resourceID,
			invitedBy: inviterID,
			tokenHash: "abc123hash",
			wantErr:   true,
		},
		{
			name:      "invalid role",
			email:     "new.member@example.com",
			role:      Role("SUPERUSER"),
			scope:     ScopeAgency,
			resource:  resourceID,
			invitedBy: inviterID,
			tokenHash: "abc123hash",
			wantErr:   true,
		},
		{
			name:      "invalid scope",
			email:     "new.member@example.com",
			role:      RoleTeam,
			scope:     Scope("workspace"),
			resource:  resourceID,
			invitedBy: inviterID,
			tokenHash: "abc123hash",
			wantErr:   true,
		},
		{
			name:      "zero resource ID",
			email:     "new.member@example.com",
			role:      RoleTeam,
			scope:     ScopeAgency,
			resource:  shared.ID{},
			invitedBy: inviterID,
			tokenHash: "abc123hash",
			wantErr:   true,
		},
		{
			name:      "zero invitedBy",
			email:     "new.member@example.com",
			role:      RoleTeam,
			scope:     ScopeAgency,
			resource:  resourceID,
			invitedBy: shared.ID{},
			tokenHash: "abc123hash",
			wantErr:   true,
		},
		{
			name:      "empty token hash",
			email:     "new.member@example.com",
			role:      RoleTeam,
			scope:     ScopeAgency,
			resource:  resourceID,
			invitedBy: inviterID,
			tokenHash: "",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := NewInvitation(tt.email, tt.role, tt.scope, tt.resource, tt.invitedBy, tt.tokenHash)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewInvitation() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if !errors.Is(err, shared.ErrValidation) {
					t.Errorf("NewInvitation() error = %v, want validation error", err)
				}
				return
			}
			if inv.Status() != InvitationPending {
				t.Errorf("NewInvitation() status = %v, want %v", inv.Status(), InvitationPending)
			}
			if inv.AcceptedAt() != nil {
				t.Error("NewInvitation() acceptedAt should be nil")
			}
		})
	}
}

func TestNewInvitation_LowercasesEmail(t *testing.T) {
	inv, err := NewInvitation("Jordan.Doe@Example.COM", RoleTeam, ScopeAgency, shared.NewID(), shared.NewID(), "hash")
	if err != nil {
		t.Fatalf("NewInvitation() error = %v", err)
	}
	if inv.Email() != "jordan.doe@example.com" {
		t.Errorf("Email() = %q, want lowercased", inv.Email())
	}
}

func TestNewInvitation_SevenDayExpiry(t *testing.T) {
	inv, err := NewInvitation("member@example.com", RoleTeam, ScopeAgency, shared.NewID(), shared.NewID(), "hash")
	if err != nil {
		t.Fatalf("NewInvitation() error = %v", err)
	}
	want := inv.CreatedAt().Add(DefaultInvitationExpiry)
	if !inv.ExpiresAt().Equal(want) {
		t.Errorf("ExpiresAt() = %v, want %v", inv.ExpiresAt(), want)
	}
}

func TestNewInvitation_StoresOnlyHash(t *testing.T) {
	inv, err := NewInvitation("member@example.com", RoleTeam, ScopeAgency, shared.NewID(), shared.NewID(), "keyed-hash-value")
	if err != nil {
		t.Fatalf("NewInvitation() error = %v", err)
	}
	if inv.TokenHash() != "keyed-hash-value" {
		t.Errorf("TokenHash() = %q, want the hash passed in", inv.TokenHash())
	}
}

// pendingInvitation builds an invitation in the given state for acceptance tests.
func pendingInvitation(t *testing.T, email string, expiresAt time.Time, status InvitationStatus) *Invitation {
	t.Helper()
	return ReconstituteInvitation(
		shared.NewID(),
		email,
		RoleTeam,
		ScopeAgency,
		shared.NewID(),
		"hash",
		shared.NewID(),
		status,
		expiresAt,
		nil,
		time.Now().UTC().Add(-time.Hour),
	)
}

func TestInvitation_CanBeAcceptedBy(t *testing.T) {
	future := time.Now().UTC().Add(24 * time.Hour)
	past := time.Now().UTC().Add(-time.Minute)

	t.Run("pending unexpired matching email", func(t *testing.T) {
		inv := pendingInvitation(t, "member@example.com", future, InvitationPending)
		if err := inv.CanBeAcceptedBy("member@example.com"); err != nil {
			t.Errorf("CanBeAcceptedBy() error = %v, want nil", err)
		}
	})

	t.Run("email match is case-insensitive", func(t *testing.T) {
		inv := pendingInvitation(t, "member@example.com", future, InvitationPending)
		if err := inv.CanBeAcceptedBy("MEMBER@Example.Com"); err != nil {
			t.Errorf("CanBeAcceptedBy() error = %v, want nil", err)
		}
	})

	t.Run("already accepted", func(t *testing.T) {
		inv := pendingInvitation(t, "member@example.com", future, InvitationAccepted)
		err := inv.CanBeAcceptedBy("member@example.com")
		if !errors.Is(err, ErrInvitationNotPending) {
			t.Errorf("CanBeAcceptedBy() error = %v, want ErrInvitationNotPending", err)
		}
		if !errors.Is(err, shared.ErrConflict) {
			t.Errorf("ErrInvitationNotPending should wrap shared.ErrConflict, got %v", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		inv := pendingInvitation(t, "member@example.com", past, InvitationPending)
		err := inv.CanBeAcceptedBy("member@example.com")
		if !errors.Is(err, ErrInvitationExpired) {
			t.Errorf("CanBeAcceptedBy() error = %v, want ErrInvitationExpired", err)
		}
	})

	t.Run("email mismatch", func(t *testing.T) {
		inv := pendingInvitation(t, "member@example.com", future, InvitationPending)
		err := inv.CanBeAcceptedBy("someone.else@example.com")
		if !errors.Is(err, ErrEmailMismatch) {
			t.Errorf("CanBeAcceptedBy() error = %v, want ErrEmailMismatch", err)
		}
		if !errors.Is(err, shared.ErrForbidden) {
			t.Errorf("ErrEmailMismatch should wrap shared.ErrForbidden, got %v", err)
		}
	})

	t.Run("status check precedes expiry and email", func(t *testing.T) {
		// Accepted, expired, and wrong email all at once: the status error wins.
		inv := pendingInvitation(t, "member@example.com", past, InvitationAccepted)
		err := inv.CanBeAcceptedBy("someone.else@example.com")
		if !errors.Is(err, ErrInvitationNotPending) {
			t.Errorf("CanBeAcceptedBy() error = %v, want ErrInvitationNotPending first", err)
		}
	})

	t.Run("expiry check precedes email", func(t *testing.T) {
		inv := pendingInvitation(t, "member@example.com", past, InvitationPending)
		err := inv.CanBeAcceptedBy("someone.else@example.com")
		if !errors.Is(err, ErrInvitationExpired) {
			t.Errorf("CanBeAcceptedBy() error = %v, want ErrInvitationExpired before email check", err)
		}
	})
}

func TestInvitation_IsExpired_Boundary(t *testing.T) {
	// An invitation expiring exactly now counts as expired.
	inv := pendingInvitation(t, "member@example.com", time.Now().UTC(), InvitationPending)
	if !inv.IsExpired() {
		t.Error("IsExpired() = false for expiry at the current instant, want true")
	}

	inv = pendingInvitation(t, "member@example.com", time.Now().UTC().Add(time.Second), InvitationPending)
	if inv.IsExpired() {
		t.Error("IsExpired() = true for expiry in the future, want false")
	}
}

func TestInvitation_Accept(t *testing.T) {
	inv := pendingInvitation(t, "member@example.com", time.Now().UTC().Add(time.Hour), InvitationPending)

	inv.Accept()

	if inv.Status() != InvitationAccepted {
		t.Errorf("Status() = %v after Accept, want %v", inv.Status(), InvitationAccepted)
	}
	if inv.AcceptedAt() == nil {
		t.Fatal("AcceptedAt() = nil after Accept")
	}
	if inv.IsPending() {
		t.Error("IsPending() = true after Accept")
	}

	// ACCEPTED is terminal: a second redemption attempt fails.
	if err := inv.CanBeAcceptedBy("member@example.com"); !errors.Is(err, ErrInvitationNotPending) {
		t.Errorf("CanBeAcceptedBy() after Accept error = %v, want ErrInvitationNotPending", err)
	}
}

func TestInvitation_ErrInvalidToken_WrapsNotFound(t *testing.T) {
	// Unknown tokens and store misses present the same way.
	if !errors.Is(ErrInvalidToken, shared.ErrNotFound) {
		t.Error("ErrInvalidToken should wrap shared.ErrNotFound")
	}
}

func TestParseScope(t *testing.T) {
	tests := []struct {
		input string
		want  Scope
		ok    bool
	}{
		{"agency", ScopeAgency, true},
		{"project", ScopeProject, true},
		{"workspace", Scope("workspace"), false},
		{"", Scope(""), false},
		{"AGENCY", Scope("AGENCY"), false},
	}

	for _, tt := range tests {
		got, ok := ParseScope(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseScope(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

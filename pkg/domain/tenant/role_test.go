package tenant

import "testing"

func TestRole_CanInvite(t *testing.T) {
	tests := []struct {
		role Role
		want bool
	}{
		{RoleOwner, true},
		{RoleAdmin, true},
		{RoleTeam, false},
		{RoleClient, false},
		{Role("SUPERUSER"), false},
	}

	for _, tt := range tests {
		if got := tt.role.CanInvite(); got != tt.want {
			t.Errorf("Role(%s).CanInvite() = %v, want %v", tt.role, got, tt.want)
		}
	}
}

func TestRole_CanWrite(t *testing.T) {
	tests := []struct {
		role Role
		want bool
	}{
		{RoleOwner, true},
		{RoleAdmin, true},
		{RoleTeam, true},
		{RoleClient, false},
	}

	for _, tt := range tests {
		if got := tt.role.CanWrite(); got != tt.want {
			t.Errorf("Role(%s).CanWrite() = %v, want %v", tt.role, got, tt.want)
		}
	}
}

func TestRole_Priority(t *testing.T) {
	if RoleOwner.Priority() <= RoleAdmin.Priority() {
		t.Error("OWNER should outrank ADMIN")
	}
	if RoleAdmin.Priority() <= RoleTeam.Priority() {
		t.Error("ADMIN should outrank TEAM")
	}
	if RoleTeam.Priority() <= RoleClient.Priority() {
		t.Error("TEAM should outrank CLIENT")
	}
	if Role("bogus").Priority() != 0 {
		t.Error("invalid role should have zero priority")
	}
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"OWNER", true},
		{"ADMIN", true},
		{"TEAM", true},
		{"CLIENT", true},
		{"owner", false},
		{"", false},
		{"MEMBER", false},
	}

	for _, tt := range tests {
		if _, ok := ParseRole(tt.input); ok != tt.ok {
			t.Errorf("ParseRole(%q) ok = %v, want %v", tt.input, ok, tt.ok)
		}
	}
}

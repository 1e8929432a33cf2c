package client

import (
	"testing"

	"github.com/campaignhub/api/pkg/domain/shared"
)

func TestNew(t *testing.T) {
	agencyID := shared.NewID()

	tests := []struct {
		name        string
		agencyID    shared.ID
		clientName  string
		contactInfo map[string]any
		wantErr     bool
	}{
		{"valid client", agencyID, "Acme Retail", map[string]any{"email": "hi@acme.example"}, false},
		{"nil contact info", agencyID, "Acme Retail", nil, false},
		{"zero agency", shared.ID{}, "Acme Retail", nil, true},
		{"empty name", agencyID, "", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.agencyID, tt.clientName, tt.contactInfo)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if c.ContactInfo() == nil {
				t.Error("ContactInfo() should never be nil")
			}
		})
	}
}

func TestClient_Update(t *testing.T) {
	c, err := New(shared.NewID(), "Acme Retail", map[string]any{"email": "old@acme.example"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := c.Update("Acme Inc", map[string]any{"email": "new@acme.example"}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if c.Name() != "Acme Inc" {
		t.Errorf("Name() = %q, want %q", c.Name(), "Acme Inc")
	}
	if c.ContactInfo()["email"] != "new@acme.example" {
		t.Error("contact info not replaced")
	}

	// Nil contact info keeps the existing value.
	if err := c.Update("Acme Inc", nil); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if c.ContactInfo()["email"] != "new@acme.example" {
		t.Error("nil contact info should keep existing value")
	}

	if err := c.Update("", nil); err == nil {
		t.Error("Update(\"\") should fail")
	}
}

package client

import (
	"testing"

	"github.com/campaignhub/api/pkg/domain/shared"
)

func TestNewBrandProfile(t *testing.T) {
	agencyID := shared.NewID()
	clientID := shared.NewID()

	tests := []struct {
		name       string
		agencyID   shared.ID
		clientID   shared.ID
		voiceAttrs map[string]any
		wantErr    bool
	}{
		{"valid profile", agencyID, clientID, map[string]any{"formality": "casual"}, false},
		{"nil voice attributes", agencyID, clientID, nil, false},
		{"zero agency", shared.ID{}, clientID, nil, true},
		{"zero client", agencyID, shared.ID{}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewBrandProfile(tt.agencyID, tt.clientID, "playful", "retail", "gen z shoppers", tt.voiceAttrs)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewBrandProfile() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if p.VoiceAttributes() == nil {
				t.Error("VoiceAttributes() should never be nil")
			}
			if p.BrandTone() != "playful" {
				t.Errorf("BrandTone() = %q, want %q", p.BrandTone(), "playful")
			}
		})
	}
}

func TestBrandProfile_VoiceAttributesCopy(t *testing.T) {
	p, err := NewBrandProfile(shared.NewID(), shared.NewID(), "", "", "", map[string]any{"formality": "casual"})
	if err != nil {
		t.Fatalf("NewBrandProfile() error = %v", err)
	}

	p.VoiceAttributes()["formality"] = "formal"
	if p.VoiceAttributes()["formality"] != "casual" {
		t.Error("mutating the returned map changed the profile's attributes")
	}
}

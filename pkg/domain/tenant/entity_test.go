package tenant

import (
	"strings"
	"testing"

	"github.com/campaignhub/api/pkg/domain/shared"
)

func TestNewAgency(t *testing.T) {
	founderID := shared.NewID()

	tests := []struct {
		name      string
		agName    string
		slug      string
		createdBy shared.ID
		wantErr   bool
	}{
		{"valid agency", "Bright Ideas Co", "bright-ideas", founderID, false},
		{"empty name", "", "bright-ideas", founderID, true},
		{"empty slug", "Bright Ideas Co", "", founderID, true},
		{"invalid slug", "Bright Ideas Co", "Bright Ideas!", founderID, true},
		{"slug too short", "Bright Ideas Co", "ab", founderID, true},
		{"zero createdBy", "Bright Ideas Co", "bright-ideas", shared.ID{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agency, err := NewAgency(tt.agName, tt.slug, tt.createdBy, nil)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewAgency() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && agency.Slug() != tt.slug {
				t.Errorf("Slug() = %q, want %q", agency.Slug(), tt.slug)
			}
		})
	}
}

func TestAgency_Settings(t *testing.T) {
	t.Run("nil settings defaults to empty map", func(t *testing.T) {
		agency, err := NewAgency("Bright Ideas Co", "bright-ideas", shared.NewID(), nil)
		if err != nil {
			t.Fatalf("NewAgency() error = %v", err)
		}
		if agency.Settings() == nil {
			t.Fatal("Settings() = nil, want empty map")
		}
		if len(agency.Settings()) != 0 {
			t.Errorf("Settings() has %d entries, want 0", len(agency.Settings()))
		}
	})

	t.Run("settings are carried through", func(t *testing.T) {
		agency, err := NewAgency("Bright Ideas Co", "bright-ideas", shared.NewID(),
			map[string]any{"timezone": "Europe/Berlin", "max_seats": float64(25)})
		if err != nil {
			t.Fatalf("NewAgency() error = %v", err)
		}
		got := agency.Settings()
		if got["timezone"] != "Europe/Berlin" {
			t.Errorf("Settings()[timezone] = %v, want Europe/Berlin", got["timezone"])
		}
		if got["max_seats"] != float64(25) {
			t.Errorf("Settings()[max_seats] = %v, want 25", got["max_seats"])
		}
	})

	t.Run("accessor returns a copy", func(t *testing.T) {
		agency, err := NewAgency("Bright Ideas Co", "bright-ideas", shared.NewID(),
			map[string]any{"timezone": "Europe/Berlin"})
		if err != nil {
			t.Fatalf("NewAgency() error = %v", err)
		}
		agency.Settings()["timezone"] = "UTC"
		if agency.Settings()["timezone"] != "Europe/Berlin" {
			t.Error("mutating the returned map changed the agency's settings")
		}
	})

	t.Run("UpdateSettings replaces the map", func(t *testing.T) {
		agency, err := NewAgency("Bright Ideas Co", "bright-ideas", shared.NewID(), nil)
		if err != nil {
			t.Fatalf("NewAgency() error = %v", err)
		}
		agency.UpdateSettings(map[string]any{"plan": "pro"})
		if agency.Settings()["plan"] != "pro" {
			t.Errorf("Settings()[plan] = %v, want pro", agency.Settings()["plan"])
		}
		agency.UpdateSettings(nil)
		if agency.Settings() == nil || len(agency.Settings()) != 0 {
			t.Errorf("UpdateSettings(nil) left %v, want empty map", agency.Settings())
		}
	})
}

func TestIsValidSlug(t *testing.T) {
	tests := []struct {
		slug string
		want bool
	}{
		{"bright-ideas", true},
		{"agency42", true},
		{"a-b-c", true},
		{"abc", true},
		{"ab", false},
		{"-leading", false},
		{"trailing-", false},
		{"double--hyphen", false},
		{"UPPER", false},
		{"with space", false},
		{strings.Repeat("a", 101), false},
		{strings.Repeat("a", 100), true},
	}

	for _, tt := range tests {
		if got := IsValidSlug(tt.slug); got != tt.want {
			t.Errorf("IsValidSlug(%q) = %v, want %v", tt.slug, got, tt.want)
		}
	}
}

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Bright Ideas Co", "bright-ideas-co"},
		{"  Spaced  Out  ", "spaced-out"},
		{"Already-Slugged", "already-slugged"},
		{"Symbols & Stuff!", "symbols-stuff"},
	}

	for _, tt := range tests {
		if got := GenerateSlug(tt.name); got != tt.want {
			t.Errorf("GenerateSlug(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestAgency_UpdateName(t *testing.T) {
	agency, err := NewAgency("Old Name", "old-name", shared.NewID(), nil)
	if err != nil {
		t.Fatalf("NewAgency() error = %v", err)
	}

	if err := agency.UpdateName("New Name"); err != nil {
		t.Fatalf("UpdateName() error = %v", err)
	}
	if agency.Name() != "New Name" {
		t.Errorf("Name() = %q, want %q", agency.Name(), "New Name")
	}

	if err := agency.UpdateName(""); err == nil {
		t.Error("UpdateName(\"\") should fail")
	}
}

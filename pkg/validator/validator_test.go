package validator

import (
	"errors"
	"testing"
)

type inviteForm struct {
	Email      string `validate:"required,email"`
	Role       string `validate:"required,member_role"`
	Scope      string `validate:"required,invite_scope"`
	ResourceID string `json:"resource_id" validate:"required,uuid"`
}

type agencyForm struct {
	Name string `validate:"required,min=2,max=100"`
	Slug string `validate:"required,min=3,max=100,slug"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	t.Run("valid invitation input", func(t *testing.T) {
		err := v.Validate(inviteForm{
			Email:      "invitee@example.com",
			Role:       "TEAM",
			Scope:      "agency",
			ResourceID: "a2f1c6e4-3b5d-4e7f-9a1b-2c3d4e5f6a7b",
		})
		if err != nil {
			t.Errorf("Validate() error = %v, want nil", err)
		}
	})

	t.Run("invalid fields reported per field", func(t *testing.T) {
		err := v.Validate(inviteForm{
			Email:      "not-an-email",
			Role:       "SUPERUSER",
			Scope:      "workspace",
			ResourceID: "not-a-uuid",
		})
		if err == nil {
			t.Fatal("Validate() error = nil, want validation errors")
		}

		var verrs ValidationErrors
		if !errors.As(err, &verrs) {
			t.Fatalf("Validate() error type = %T, want ValidationErrors", err)
		}
		if len(verrs) != 4 {
			t.Errorf("got %d errors, want 4: %v", len(verrs), verrs)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		err := v.Validate(inviteForm{})
		var verrs ValidationErrors
		if !errors.As(err, &verrs) {
			t.Fatalf("Validate() error type = %T, want ValidationErrors", err)
		}
		if len(verrs) != 4 {
			t.Errorf("got %d errors, want 4", len(verrs))
		}
	})

	t.Run("slug validation", func(t *testing.T) {
		tests := []struct {
			slug    string
			wantErr bool
		}{
			{"bright-ideas", false},
			{"agency42", false},
			{"Bad Slug", true},
			{"UPPER", true},
			{"ab", true}, // below min length
		}
		for _, tt := range tests {
			err := v.Validate(agencyForm{Name: "Agency", Slug: tt.slug})
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(slug=%q) error = %v, wantErr %v", tt.slug, err, tt.wantErr)
			}
		}
	})

	t.Run("field names are snake_cased", func(t *testing.T) {
		err := v.Validate(inviteForm{Email: "x@example.com", Role: "TEAM", Scope: "agency", ResourceID: "bad"})
		var verrs ValidationErrors
		if !errors.As(err, &verrs) {
			t.Fatalf("Validate() error type = %T, want ValidationErrors", err)
		}
		if len(verrs) != 1 || verrs[0].Field != "resource_id" {
			t.Errorf("got %v, want single resource_id error", verrs)
		}
	})
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "must be a valid email"},
		{Field: "role", Message: "invalid role"},
	}
	want := "email: must be a valid email; role: invalid role"
	if errs.Error() != want {
		t.Errorf("Error() = %q, want %q", errs.Error(), want)
	}

	if (ValidationErrors{}).Error() != "" {
		t.Error("empty ValidationErrors should produce empty message")
	}
}

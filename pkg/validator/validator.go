// Package validator provides struct validation utilities with custom validators.
package validator

import (
	stderrors "errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/campaignhub/api/pkg/domain/project"
	"github.com/campaignhub/api/pkg/domain/tenant"
)

// slugRegex validates slugs: lowercase letters, numbers, hyphens
// Must start and end with alphanumeric, no consecutive hyphens
var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Validator wraps the go-playground validator with custom validations.
type Validator struct {
	validate *validator.Validate
}

// ValidationError represents a single field validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, e := range v {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return sb.String()
}

// New creates a new Validator with custom validators registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Register custom validators for tenant domain
	_ = v.RegisterValidation("slug", validateSlug)
	_ = v.RegisterValidation("member_role", validateMemberRole)
	_ = v.RegisterValidation("invite_scope", validateInviteScope)

	// Register custom validators for project domain
	_ = v.RegisterValidation("project_status", validateProjectStatus)

	return &Validator{validate: v}
}

// Validate validates a struct and returns ValidationErrors if validation fails.
func (v *Validator) Validate(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !stderrors.As(err, &validationErrors) {
		return err
	}

	result := make(ValidationErrors, 0, len(validationErrors))
	for _, e := range validationErrors {
		result = append(result, ValidationError{
			Field:   toSnakeCase(e.Field()),
			Message: formatErrorMessage(e),
		})
	}

	return result
}

// validateSlug validates that a string is a valid URL slug.
// Valid: lowercase letters, numbers, hyphens. Must start/end with alphanumeric.
// Examples: "my-agency", "acme-corp", "studio123"
func validateSlug(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // Let 'required' handle empty values
	}
	return slugRegex.MatchString(value)
}

// validateMemberRole validates that a string is a valid membership Role.
func validateMemberRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // Let 'required' handle empty values
	}
	_, ok := tenant.ParseRole(value)
	return ok
}

// validateInviteScope validates that a string is a valid invitation Scope.
func validateInviteScope(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // Let 'required' handle empty values
	}
	_, ok := tenant.ParseScope(value)
	return ok
}

// validateProjectStatus validates that a string is a valid project Status.
func validateProjectStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // Let 'required' handle empty values
	}
	_, ok := project.ParseStatus(value)
	return ok
}

// formatErrorMessage converts validation errors to human-readable messages.
func formatErrorMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", e.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", e.Param())
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "uuid":
		return "must be a valid UUID"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())
	case "slug":
		return "must be a valid slug (lowercase letters, numbers, hyphens only)"
	case "member_role":
		return fmt.Sprintf("must be one of: %s", formatRoles())
	case "invite_scope":
		return "must be one of: agency, project"
	case "project_status":
		return "must be one of: PLANNING, ACTIVE, COMPLETED, ARCHIVED"
	default:
		return fmt.Sprintf("failed on '%s' validation", e.Tag())
	}
}

// toSnakeCase converts PascalCase/camelCase to snake_case.
func toSnakeCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteByte('_')
		}
		result.WriteRune(r)
	}
	return strings.ToLower(result.String())
}

// formatRoles returns a comma-separated list of valid roles.
func formatRoles() string {
	roles := tenant.AllRoles()
	strs := make([]string, len(roles))
	for i, r := range roles {
		strs[i] = string(r)
	}
	return strings.Join(strs, ", ")
}

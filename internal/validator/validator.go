package validator

import (
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/dethrtrns/techwondoe-test-task/internal/domain"
)

var (
	validRoles = []interface{}{domain.RoleAdmin, domain.RoleSalesLeader, domain.RoleSalesRep}

	// Email addresses are restricted to these top-level domains.
	allowedEmailTLDs = []string{"com", "net"}
)

// Validator provides validation methods for user submissions.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateUserForm validates a user form before submission. It is evaluated
// synchronously; a non-nil result means the submission must not reach the
// network.
func (v *Validator) ValidateUserForm(f *domain.UserForm) error {
	return validation.ValidateStruct(f,
		validation.Field(&f.Name,
			validation.Required.Error("name_required"),
			validation.Length(3, 0).Error("name_too_short"),
		),
		validation.Field(&f.Email,
			validation.Required.Error("email_required"),
			is.Email.Error("invalid_email_format"),
			validation.By(emailTLDRule(allowedEmailTLDs)),
		),
		validation.Field(&f.Role,
			validation.Required.Error("role_required"),
			validation.In(validRoles...).Error("invalid_role"),
		),
		validation.Field(&f.Avatar,
			is.URL.Error("invalid_avatar_url"),
		),
	)
}

// ValidateUserPatch validates the patchable fields of an update. A nil
// field is left alone by the patch and passes; a field that is present must
// carry a valid value, so the empty string fails rather than being skipped.
func (v *Validator) ValidateUserPatch(p *domain.UserPatch) error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Name,
			validation.NilOrNotEmpty.Error("name_required"),
			validation.Length(3, 0).Error("name_too_short"),
		),
		validation.Field(&p.Role,
			validation.NilOrNotEmpty.Error("role_required"),
			validation.In(validRoles...).Error("invalid_role"),
		),
	)
}

// emailTLDRule creates a validation rule restricting the email's top-level
// domain to the given allow-list. Shape validation is handled by is.Email;
// empty values are handled by Required.
func emailTLDRule(allowed []string) validation.RuleFunc {
	return func(value interface{}) error {
		s, ok := value.(string)
		if !ok || s == "" {
			return nil
		}
		dot := strings.LastIndex(s, ".")
		if dot < 0 || dot == len(s)-1 {
			return validation.NewError("email_tld_not_allowed", "email domain must end in .com or .net")
		}
		tld := strings.ToLower(s[dot+1:])
		for _, a := range allowed {
			if tld == a {
				return nil
			}
		}
		return validation.NewError("email_tld_not_allowed", "email domain must end in .com or .net")
	}
}

// FieldError reports a validation failure for a single form field.
type FieldError struct {
	Field  string
	Reason string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Reason
}

// Fields flattens an ozzo validation error into per-field errors, sorted by
// field name for deterministic reporting.
func Fields(err error) []FieldError {
	if err == nil {
		return nil
	}

	ve, ok := err.(validation.Errors)
	if !ok {
		return []FieldError{{Field: "form", Reason: err.Error()}}
	}

	fields := make([]FieldError, 0, len(ve))
	for field, fieldErr := range ve {
		fields = append(fields, FieldError{Field: field, Reason: fieldErr.Error()})
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].Field < fields[j].Field })
	return fields
}

package validation

import (
	"regexp"
	"time"

	"yuva-hire-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Allow letters, spaces, and common name punctuation: . ' -
	nameRegex = regexp.MustCompile(`^[\p{L} .'-]+$`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_name", ValidName)
	_ = v.RegisterValidation("job_type", JobType)
	_ = v.RegisterValidation("iso_date", ISODate)
	_ = v.RegisterValidation("user_role", UserRole)
}

// New returns a standalone validator with the custom tags registered.
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// ValidName validates that a string contains only valid name characters
// Rejects digits and most special symbols
func ValidName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return nameRegex.MatchString(val)
}

// JobType accepts the fixed job-type vocabulary. Empty passes; use required if needed.
func JobType(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return domain.IsValidJobType(val)
}

// ISODate validates a calendar date in YYYY-MM-DD form.
func ISODate(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	_, err := time.Parse(domain.DateLayout, val)
	return err == nil
}

func UserRole(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	return val == domain.RoleStudent || val == domain.RoleAdmin
}

package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-facing labels
var FieldLabels = map[string]string{
	// Auth fields
	"Email":      "Email",
	"Password":   "Password",
	"Name":       "Name",
	"Role":       "Role",
	"College":    "College",
	"Department": "Department",
	"StudentID":  "Student ID",

	// Job fields
	"Title":        "Title",
	"Description":  "Description",
	"Location":     "Location",
	"JobType":      "Job type",
	"Salary":       "Salary",
	"SalaryPeriod": "Salary period",
	"Deadline":     "Deadline",
	"Requirements": "Requirements",
	"JobID":        "Job ID",

	// Profile fields
	"GPA":          "GPA",
	"Bio":          "Bio",
	"Skills":       "Skills",
	"Achievements": "Achievements",

	// Article fields
	"Excerpt":  "Excerpt",
	"Content":  "Content",
	"Category": "Category",
	"ReadTime": "Read time",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var messages []string

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}

	return messages
}

// Message joins every field message into the single string carried by a 400 body.
func Message(err error) string {
	return strings.Join(FormatValidationErrors(err), "; ")
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s must be at least %s", label, param)

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s must be at most %s", label, param)

	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.Join(strings.Fields(param), ", "))

	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)

	case "url":
		return fmt.Sprintf("%s must be a valid URL", label)

	case "uuid", "uuid4":
		return fmt.Sprintf("%s must be a valid id", label)

	case "valid_name":
		return fmt.Sprintf("%s may only contain letters, spaces and . ' -", label)

	case "job_type":
		return fmt.Sprintf("%s must be one of: Full-time, Part-time, Internship, Remote", label)

	case "iso_date":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD format", label)

	case "user_role":
		return fmt.Sprintf("%s must be student or admin", label)

	default:
		// Fallback for unknown tags
		return fmt.Sprintf("%s is invalid (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	// Return field name with spaces between camelCase words
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}

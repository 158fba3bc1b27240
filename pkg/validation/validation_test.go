package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleJob struct {
	Title    string `validate:"required"`
	JobType  string `validate:"required,job_type"`
	Deadline string `validate:"required,iso_date"`
	Password string `validate:"min=8"`
	Name     string `validate:"valid_name"`
	Role     string `validate:"user_role"`
}

func TestCustomValidators(t *testing.T) {
	v := New()

	valid := sampleJob{
		Title:    "Intern",
		JobType:  "Internship",
		Deadline: "2025-06-01",
		Password: "pw123456",
		Name:     "Asha O'Neil-Rao",
		Role:     "student",
	}
	assert.NoError(t, v.Struct(valid))

	invalid := sampleJob{
		JobType:  "Contract",
		Deadline: "01/06/2025",
		Password: "short",
		Name:     "R2D2",
		Role:     "recruiter",
	}
	err := v.Struct(invalid)
	require.Error(t, err)

	msgs := FormatValidationErrors(err)
	assert.ElementsMatch(t, []string{
		"Title is required",
		"Job type must be one of: Full-time, Part-time, Internship, Remote",
		"Deadline must be a date in YYYY-MM-DD format",
		"Password must be at least 8 characters",
		"Name may only contain letters, spaces and . ' -",
		"Role must be student or admin",
	}, msgs)
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "boom", Message(errors.New("boom")))

	err := New().Struct(struct {
		Email string `validate:"required,email"`
		JobID string `validate:"required"`
	}{Email: "nope"})
	assert.Equal(t, "Email must be a valid email address; Job ID is required", Message(err))
}

func TestFormatCamelCase(t *testing.T) {
	assert.Equal(t, "Min Deadline", getFieldLabel("MinDeadline"))
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	allowed := [][2]string{
		{ApplicationStatusPending, ApplicationStatusInterviewScheduled},
		{ApplicationStatusPending, ApplicationStatusAccepted},
		{ApplicationStatusPending, ApplicationStatusRejected},
		{ApplicationStatusInterviewScheduled, ApplicationStatusOfferReceived},
		{ApplicationStatusInterviewScheduled, ApplicationStatusRejected},
		{ApplicationStatusOfferReceived, ApplicationStatusAccepted},
		{ApplicationStatusOfferReceived, ApplicationStatusRejected},
	}
	for _, tr := range allowed {
		assert.True(t, CanTransition(tr[0], tr[1]), "%s -> %s", tr[0], tr[1])
	}

	denied := [][2]string{
		{ApplicationStatusPending, ApplicationStatusOfferReceived},
		{ApplicationStatusPending, ApplicationStatusPending},
		{ApplicationStatusOfferReceived, ApplicationStatusInterviewScheduled},
		{ApplicationStatusAccepted, ApplicationStatusRejected},
		{ApplicationStatusRejected, ApplicationStatusPending},
		{"unknown", ApplicationStatusAccepted},
	}
	for _, tr := range denied {
		assert.False(t, CanTransition(tr[0], tr[1]), "%s -> %s", tr[0], tr[1])
	}
}

func TestNewPagination(t *testing.T) {
	assert.Equal(t, Pagination{Page: 1, Limit: 10, Total: 0, TotalPages: 0}, NewPagination(1, 10, 0))
	assert.Equal(t, 3, NewPagination(1, 10, 21).TotalPages)
	assert.Equal(t, 2, NewPagination(2, 10, 20).TotalPages)
	assert.Equal(t, 0, NewPagination(1, 0, 5).TotalPages)
}

func TestJobUpdateApplyTo(t *testing.T) {
	job := &Job{Title: "Intern", Location: "Pune", Requirements: []string{"Go"}, Status: JobStatusActive}
	title := "Backend Intern"
	status := JobStatusClosed
	reqs := []string{"Go", "SQL"}

	JobUpdate{Title: &title, Status: &status, Requirements: &reqs}.ApplyTo(job)

	assert.Equal(t, "Backend Intern", job.Title)
	assert.Equal(t, "Pune", job.Location)
	assert.Equal(t, JobStatusClosed, job.Status)
	assert.Equal(t, []string{"Go", "SQL"}, job.Requirements)

	reqs[0] = "Rust"
	assert.Equal(t, "Go", job.Requirements[0])
}

func TestProfileInputApplyTo(t *testing.T) {
	p := &CandidateProfile{Title: "Student", ProfileViews: 7}
	gpa := 8.7
	skills := []string{"React"}
	ProfileInput{GPA: &gpa, Skills: &skills}.ApplyTo(p)

	assert.Equal(t, "Student", p.Title)
	assert.Equal(t, []string{"React"}, p.Skills)
	assert.InDelta(t, 8.7, *p.GPA, 0.0001)
	assert.Equal(t, int64(7), p.ProfileViews)
}

func TestValidators(t *testing.T) {
	assert.True(t, IsValidJobType("Internship"))
	assert.False(t, IsValidJobType("internship"))
	assert.True(t, IsValidJobStatus("closed"))
	assert.False(t, IsValidJobStatus("archived"))
	assert.True(t, IsValidApplicationStatus("offer_received"))
	assert.False(t, IsValidApplicationStatus("applied"))
}

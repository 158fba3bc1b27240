package domain

import (
	"context"
	"time"
)

// Application status constants
const (
	ApplicationStatusPending            = "pending"
	ApplicationStatusInterviewScheduled = "interview_scheduled"
	ApplicationStatusOfferReceived      = "offer_received"
	ApplicationStatusAccepted           = "accepted"
	ApplicationStatusRejected           = "rejected"
)

// pending → interview_scheduled → offer_received → accepted / rejected
var applicationTransitions = map[string][]string{
	ApplicationStatusPending:            {ApplicationStatusInterviewScheduled, ApplicationStatusAccepted, ApplicationStatusRejected},
	ApplicationStatusInterviewScheduled: {ApplicationStatusOfferReceived, ApplicationStatusAccepted, ApplicationStatusRejected},
	ApplicationStatusOfferReceived:      {ApplicationStatusAccepted, ApplicationStatusRejected},
}

func IsValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusInterviewScheduled, ApplicationStatusOfferReceived,
		ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// CanTransition reports whether an application may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range applicationTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Application struct {
	ID        string    `json:"id"`
	JobID     string    `json:"jobId"`
	StudentID string    `json:"studentId"`
	Status    string    `json:"status"`
	AppliedAt time.Time `json:"appliedAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Joined data for list responses
	Job       *JobSummary       `json:"job,omitempty"`
	Applicant *ApplicantSummary `json:"applicant,omitempty"`
}

// JobSummary is the public slice of a job shown next to a student's application.
type JobSummary struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Location     string `json:"location"`
	JobType      string `json:"jobType"`
	Salary       string `json:"salary"`
	SalaryPeriod string `json:"salaryPeriod"`
	Deadline     string `json:"deadline"`
	College      string `json:"college"`
	Status       string `json:"status"`
}

type ApplicantSummary struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Department *string `json:"department,omitempty"`
	StudentID  *string `json:"studentId,omitempty"`
}

// ApplicationStats is a status histogram plus the count of applications since a cut-off.
type ApplicationStats struct {
	Total    int64
	Recent   int64
	ByStatus map[string]int64
}

type ApplicationRepository interface {
	// Create returns ErrConflict when the (job, student) pair already exists.
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id string) (*Application, error)
	// ListByStudent joins the job summary. limit <= 0 returns everything.
	ListByStudent(ctx context.Context, studentID string, limit int) ([]Application, error)
	// ListByJob joins the applicant summary.
	ListByJob(ctx context.Context, jobID string) ([]Application, error)
	// UpdateStatus moves an application from one status to another and
	// returns ErrConflict if it is no longer in the expected status.
	UpdateStatus(ctx context.Context, id, from, to string) error
	StatsForCollege(ctx context.Context, college string, since time.Time) (*ApplicationStats, error)
	StatsForStudent(ctx context.Context, studentID string) (*ApplicationStats, error)
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, student *User, jobID string) (*Application, error)
	ListMine(ctx context.Context, student *User) ([]Application, error)
	ListForJob(ctx context.Context, admin *User, jobID string) ([]Application, error)
	UpdateStatus(ctx context.Context, admin *User, applicationID, status string) (*Application, error)
}

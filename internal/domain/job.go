package domain

import (
	"context"
	"math"
	"time"
)

const (
	JobStatusActive = "active"
	JobStatusClosed = "closed"

	JobTypeFullTime   = "Full-time"
	JobTypePartTime   = "Part-time"
	JobTypeInternship = "Internship"
	JobTypeRemote     = "Remote"

	DefaultSalaryPeriod = "Monthly"

	// DateLayout is the wire format for deadlines and article dates.
	DateLayout = "2006-01-02"
)

var JobTypes = []string{JobTypeFullTime, JobTypePartTime, JobTypeInternship, JobTypeRemote}

func IsValidJobType(t string) bool {
	for _, jt := range JobTypes {
		if jt == t {
			return true
		}
	}
	return false
}

func IsValidJobStatus(s string) bool {
	return s == JobStatusActive || s == JobStatusClosed
}

type Job struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Location       string    `json:"location"`
	JobType        string    `json:"jobType"`
	Salary         string    `json:"salary"`
	SalaryPeriod   string    `json:"salaryPeriod"`
	Deadline       string    `json:"deadline"` // YYYY-MM-DD
	Requirements   []string  `json:"requirements"`
	College        string    `json:"college"`
	PostedBy       string    `json:"postedBy"`
	PostedByName   string    `json:"postedByName,omitempty"`
	Status         string    `json:"status"`
	ApplicantCount int64     `json:"applicantCount"`
	HasApplied     *bool     `json:"hasApplied,omitempty"` // students only
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// JobFilter is the caller-facing listing filter.
type JobFilter struct {
	Search      string
	Location    string
	JobType     string
	MinDeadline string
	Page        int
	Limit       int
}

// JobQuery is what repositories execute. Empty strings mean "no constraint".
type JobQuery struct {
	College     string
	PostedBy    string
	Status      string
	Search      string
	Location    string
	JobType     string
	MinDeadline string
	// ViewerID annotates HasApplied for that student when set.
	ViewerID string
	Limit    int
	Offset   int
}

type JobInput struct {
	Title        string   `validate:"required,max=200"`
	Description  string   `validate:"required,max=10000"`
	Location     string   `validate:"required,max=200"`
	JobType      string   `validate:"required,job_type"`
	Salary       string   `validate:"required,max=100"`
	SalaryPeriod string   `validate:"omitempty,max=50"`
	Deadline     string   `validate:"required,iso_date"`
	Requirements []string `validate:"max=50,dive,min=1,max=500"`
	Status       string   `validate:"omitempty,oneof=active closed"`
}

// JobUpdate is a partial update; nil fields keep their current value.
type JobUpdate struct {
	Title        *string   `validate:"omitempty,min=1,max=200"`
	Description  *string   `validate:"omitempty,min=1,max=10000"`
	Location     *string   `validate:"omitempty,min=1,max=200"`
	JobType      *string   `validate:"omitempty,min=1,job_type"`
	Salary       *string   `validate:"omitempty,min=1,max=100"`
	SalaryPeriod *string   `validate:"omitempty,min=1,max=50"`
	Deadline     *string   `validate:"omitempty,min=1,iso_date"`
	Requirements *[]string `validate:"omitempty,max=50,dive,min=1,max=500"`
	Status       *string   `validate:"omitempty,oneof=active closed"`
}

func (u JobUpdate) ApplyTo(j *Job) {
	if u.Title != nil {
		j.Title = *u.Title
	}
	if u.Description != nil {
		j.Description = *u.Description
	}
	if u.Location != nil {
		j.Location = *u.Location
	}
	if u.JobType != nil {
		j.JobType = *u.JobType
	}
	if u.Salary != nil {
		j.Salary = *u.Salary
	}
	if u.SalaryPeriod != nil {
		j.SalaryPeriod = *u.SalaryPeriod
	}
	if u.Deadline != nil {
		j.Deadline = *u.Deadline
	}
	if u.Requirements != nil {
		j.Requirements = append([]string{}, (*u.Requirements)...)
	}
	if u.Status != nil {
		j.Status = *u.Status
	}
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

func NewPagination(page, limit int, total int64) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(limit)))
	}
	return Pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id string) (*Job, error)
	Fetch(ctx context.Context, q JobQuery) ([]Job, int64, error)
	Update(ctx context.Context, job *Job) error
	Delete(ctx context.Context, id string) error
	CountByCollege(ctx context.Context, college string) (total int64, active int64, err error)
}

type JobUsecase interface {
	List(ctx context.Context, viewer *User, f JobFilter) ([]Job, Pagination, error)
	Get(ctx context.Context, id string) (*Job, error)
	Create(ctx context.Context, admin *User, in JobInput) (*Job, error)
	Update(ctx context.Context, admin *User, id string, in JobUpdate) (*Job, error)
	Delete(ctx context.Context, admin *User, id string) error
	ListMine(ctx context.Context, admin *User, page, limit int) ([]Job, Pagination, error)
}

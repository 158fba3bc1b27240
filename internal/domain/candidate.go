package domain

import (
	"context"
	"time"
)

type Project struct {
	Name         string   `json:"name" validate:"required,max=200"`
	Description  string   `json:"description" validate:"max=2000"`
	Technologies []string `json:"technologies" validate:"max=30,dive,min=1,max=50"`
	Link         string   `json:"link,omitempty" validate:"omitempty,url"`
}

// CandidateProfile is the enrichment a student keeps next to their user record.
type CandidateProfile struct {
	UserID       string    `json:"-"`
	Title        string    `json:"title"`
	Location     string    `json:"location"`
	Experience   string    `json:"experience"`
	Education    string    `json:"education"`
	Skills       []string  `json:"skills"`
	Bio          string    `json:"bio"`
	GPA          *float64  `json:"gpa,omitempty"`
	Projects     []Project `json:"projects"`
	Achievements []string  `json:"achievements"`
	ProfileViews int64     `json:"profileViews"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Candidate is the read projection of a student user joined with their profile.
type Candidate struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	College    string  `json:"college"`
	Department *string `json:"department,omitempty"`
	StudentID  *string `json:"studentId,omitempty"`
	CandidateProfile

	RecentApplications []RecentApplication `json:"recentApplications,omitempty"`
}

type RecentApplication struct {
	ApplicationID string    `json:"applicationId"`
	JobID         string    `json:"jobId"`
	JobTitle      string    `json:"jobTitle"`
	Status        string    `json:"status"`
	AppliedAt     time.Time `json:"appliedAt"`
}

type CandidateFilter struct {
	College  string
	Search   string
	Location string
	Role     string
}

// ProfileInput is a partial profile edit; nil fields keep their current value.
type ProfileInput struct {
	Title        *string    `validate:"omitempty,max=200"`
	Location     *string    `validate:"omitempty,max=200"`
	Experience   *string    `validate:"omitempty,max=100"`
	Education    *string    `validate:"omitempty,max=300"`
	Skills       *[]string  `validate:"omitempty,max=50,dive,min=1,max=50"`
	Bio          *string    `validate:"omitempty,max=2000"`
	GPA          *float64   `validate:"omitempty,gte=0,lte=10"`
	Projects     *[]Project `validate:"omitempty,max=20,dive"`
	Achievements *[]string  `validate:"omitempty,max=30,dive,min=1,max=300"`
}

func (in ProfileInput) ApplyTo(p *CandidateProfile) {
	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Location != nil {
		p.Location = *in.Location
	}
	if in.Experience != nil {
		p.Experience = *in.Experience
	}
	if in.Education != nil {
		p.Education = *in.Education
	}
	if in.Skills != nil {
		p.Skills = append([]string{}, (*in.Skills)...)
	}
	if in.Bio != nil {
		p.Bio = *in.Bio
	}
	if in.GPA != nil {
		gpa := *in.GPA
		p.GPA = &gpa
	}
	if in.Projects != nil {
		p.Projects = append([]Project{}, (*in.Projects)...)
	}
	if in.Achievements != nil {
		p.Achievements = append([]string{}, (*in.Achievements)...)
	}
}

type CandidateRepository interface {
	// Upsert writes the editable profile fields; ProfileViews is left untouched.
	Upsert(ctx context.Context, profile *CandidateProfile) error
	// GetByUserID returns ErrNotFound unless the user exists with role student.
	GetByUserID(ctx context.Context, userID string) (*Candidate, error)
	List(ctx context.Context, f CandidateFilter) ([]Candidate, error)
	IncrementViews(ctx context.Context, userID string) error
}

type CandidateUsecase interface {
	List(ctx context.Context, admin *User, f CandidateFilter) ([]Candidate, error)
	Get(ctx context.Context, admin *User, id string) (*Candidate, error)
	GetMine(ctx context.Context, student *User) (*Candidate, error)
	UpdateMine(ctx context.Context, student *User, in ProfileInput) (*Candidate, error)
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"yuva-hire-backend/internal/domain"
	"yuva-hire-backend/pkg/apperror"

	"github.com/google/uuid"
)

const (
	msgJobUnavailable      = "Job not found or not available"
	msgAlreadyApplied      = "Already applied to this job"
	msgApplicationNotFound = "Application not found"
)

type applicationUsecase struct {
	appRepo domain.ApplicationRepository
	jobRepo domain.JobRepository
}

func NewApplicationUsecase(appRepo domain.ApplicationRepository, jobRepo domain.JobRepository) domain.ApplicationUsecase {
	return &applicationUsecase{
		appRepo: appRepo,
		jobRepo: jobRepo,
	}
}

func (u *applicationUsecase) Apply(ctx context.Context, student *domain.User, jobID string) (*domain.Application, error) {
	if !student.IsStudent() {
		return nil, apperror.Forbidden("Only students can apply to jobs")
	}
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, apperror.BadRequest("Job ID is required")
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound(msgJobUnavailable)
		}
		return nil, apperror.Internal(err)
	}
	if job.College != student.College || job.Status != domain.JobStatusActive {
		return nil, apperror.NotFound(msgJobUnavailable)
	}

	now := time.Now().UTC()
	app := &domain.Application{
		ID:        uuid.NewString(),
		JobID:     job.ID,
		StudentID: student.ID,
		Status:    domain.ApplicationStatusPending,
		AppliedAt: now,
		UpdatedAt: now,
	}

	if err := u.appRepo.Create(ctx, app); err != nil {
		switch {
		case errors.Is(err, domain.ErrConflict):
			return nil, apperror.Conflict(msgAlreadyApplied)
		case errors.Is(err, domain.ErrNotFound):
			// Job deleted between the lookup and the insert.
			return nil, apperror.NotFound(msgJobUnavailable)
		}
		return nil, apperror.Internal(err)
	}

	app.Job = &domain.JobSummary{
		ID:           job.ID,
		Title:        job.Title,
		Location:     job.Location,
		JobType:      job.JobType,
		Salary:       job.Salary,
		SalaryPeriod: job.SalaryPeriod,
		Deadline:     job.Deadline,
		College:      job.College,
		Status:       job.Status,
	}
	return app, nil
}

func (u *applicationUsecase) ListMine(ctx context.Context, student *domain.User) ([]domain.Application, error) {
	if !student.IsStudent() {
		return nil, apperror.Forbidden("Forbidden")
	}
	apps, err := u.appRepo.ListByStudent(ctx, student.ID, 0)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

func (u *applicationUsecase) ListForJob(ctx context.Context, admin *domain.User, jobID string) ([]domain.Application, error) {
	if !admin.IsAdmin() {
		return nil, apperror.Forbidden("Forbidden")
	}
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound(msgJobNotFound)
		}
		return nil, apperror.Internal(err)
	}
	if job.PostedBy != admin.ID {
		return nil, apperror.NotFound(msgJobNotFound)
	}

	apps, err := u.appRepo.ListByJob(ctx, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

func (u *applicationUsecase) UpdateStatus(ctx context.Context, admin *domain.User, applicationID, status string) (*domain.Application, error) {
	if !admin.IsAdmin() {
		return nil, apperror.Forbidden("Forbidden")
	}
	status = strings.TrimSpace(status)
	if !domain.IsValidApplicationStatus(status) {
		return nil, apperror.BadRequest("Invalid application status")
	}

	app, err := u.load(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	job, err := u.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound(msgApplicationNotFound)
		}
		return nil, apperror.Internal(err)
	}
	if job.PostedBy != admin.ID {
		return nil, apperror.NotFound(msgApplicationNotFound)
	}

	if !domain.CanTransition(app.Status, status) {
		return nil, apperror.BadRequest(fmt.Sprintf("Cannot change status from %s to %s", app.Status, status))
	}

	if err := u.appRepo.UpdateStatus(ctx, app.ID, app.Status, status); err != nil {
		switch {
		case errors.Is(err, domain.ErrConflict):
			return nil, apperror.Conflict("Application status was changed by another request")
		case errors.Is(err, domain.ErrNotFound):
			return nil, apperror.NotFound(msgApplicationNotFound)
		}
		return nil, apperror.Internal(err)
	}

	return u.load(ctx, app.ID)
}

func (u *applicationUsecase) load(ctx context.Context, id string) (*domain.Application, error) {
	app, err := u.appRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound(msgApplicationNotFound)
		}
		return nil, apperror.Internal(err)
	}
	return app, nil
}

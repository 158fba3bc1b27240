package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"yuva-hire-backend/internal/domain"
	"yuva-hire-backend/pkg/apperror"
	"yuva-hire-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100

	msgJobNotFound = "Job not found"
	msgPageRange   = "page is out of range"
)

type jobUsecase struct {
	jobRepo  domain.JobRepository
	validate *validator.Validate
}

func NewJobUsecase(jobRepo domain.JobRepository, validate *validator.Validate) domain.JobUsecase {
	if validate == nil {
		validate = validation.New()
	}
	return &jobUsecase{
		jobRepo:  jobRepo,
		validate: validate,
	}
}

// normalizePage applies the paging defaults and rejects pages whose offset
// would not fit in an int.
func normalizePage(page, limit int) (int, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if page-1 > math.MaxInt/limit {
		return 0, 0, apperror.BadRequest(msgPageRange)
	}
	return page, limit, nil
}

func (u *jobUsecase) List(ctx context.Context, viewer *domain.User, f domain.JobFilter) ([]domain.Job, domain.Pagination, error) {
	page, limit, err := normalizePage(f.Page, f.Limit)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	minDeadline := strings.TrimSpace(f.MinDeadline)
	if minDeadline != "" {
		if _, err := time.Parse(domain.DateLayout, minDeadline); err != nil {
			return nil, domain.Pagination{}, apperror.BadRequest("minDeadline must be a date in YYYY-MM-DD format")
		}
	}

	jobType := strings.TrimSpace(f.JobType)
	if strings.EqualFold(jobType, "all") {
		jobType = ""
	}

	q := domain.JobQuery{
		Status:      domain.JobStatusActive,
		Search:      strings.TrimSpace(f.Search),
		Location:    strings.TrimSpace(f.Location),
		JobType:     jobType,
		MinDeadline: minDeadline,
		Limit:       limit,
		Offset:      (page - 1) * limit,
	}
	if viewer.IsStudent() {
		q.College = viewer.College
		q.ViewerID = viewer.ID
	}

	jobs, total, err := u.jobRepo.Fetch(ctx, q)
	if err != nil {
		return nil, domain.Pagination{}, apperror.Internal(err)
	}
	return jobs, domain.NewPagination(page, limit, total), nil
}

func (u *jobUsecase) Get(ctx context.Context, id string) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound(msgJobNotFound)
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func (u *jobUsecase) Create(ctx context.Context, admin *domain.User, in domain.JobInput) (*domain.Job, error) {
	if !admin.IsAdmin() {
		return nil, apperror.Forbidden("Only admins can post jobs")
	}

	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Location = strings.TrimSpace(in.Location)
	in.Salary = strings.TrimSpace(in.Salary)
	in.SalaryPeriod = strings.TrimSpace(in.SalaryPeriod)
	if in.SalaryPeriod == "" {
		in.SalaryPeriod = domain.DefaultSalaryPeriod
	}
	if in.Status == "" {
		in.Status = domain.JobStatusActive
	}
	if in.Requirements == nil {
		in.Requirements = []string{}
	}

	if err := u.validate.Struct(in); err != nil {
		return nil, apperror.BadRequest(validation.Message(err))
	}

	now := time.Now().UTC()
	job := &domain.Job{
		ID:           uuid.NewString(),
		Title:        in.Title,
		Description:  in.Description,
		Location:     in.Location,
		JobType:      in.JobType,
		Salary:       in.Salary,
		SalaryPeriod: in.SalaryPeriod,
		Deadline:     in.Deadline,
		Requirements: in.Requirements,
		College:      admin.College,
		PostedBy:     admin.ID,
		PostedByName: admin.Name,
		Status:       in.Status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return nil, apperror.Internal(err)
	}
	return job, nil
}

// owned loads a job and hides it unless admin posted it.
func (u *jobUsecase) owned(ctx context.Context, admin *domain.User, id string) (*domain.Job, error) {
	if !admin.IsAdmin() {
		return nil, apperror.Forbidden("Forbidden")
	}
	job, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if job.PostedBy != admin.ID {
		return nil, apperror.NotFound(msgJobNotFound)
	}
	return job, nil
}

func (u *jobUsecase) Update(ctx context.Context, admin *domain.User, id string, in domain.JobUpdate) (*domain.Job, error) {
	if err := u.validate.Struct(in); err != nil {
		return nil, apperror.BadRequest(validation.Message(err))
	}

	job, err := u.owned(ctx, admin, id)
	if err != nil {
		return nil, err
	}

	in.ApplyTo(job)
	job.UpdatedAt = time.Now().UTC()

	if err := u.jobRepo.Update(ctx, job); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound(msgJobNotFound)
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func (u *jobUsecase) Delete(ctx context.Context, admin *domain.User, id string) error {
	if _, err := u.owned(ctx, admin, id); err != nil {
		return err
	}
	if err := u.jobRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound(msgJobNotFound)
		}
		return apperror.Internal(err)
	}
	return nil
}

func (u *jobUsecase) ListMine(ctx context.Context, admin *domain.User, page, limit int) ([]domain.Job, domain.Pagination, error) {
	if !admin.IsAdmin() {
		return nil, domain.Pagination{}, apperror.Forbidden("Forbidden")
	}
	page, limit, err := normalizePage(page, limit)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	jobs, total, err := u.jobRepo.Fetch(ctx, domain.JobQuery{
		PostedBy: admin.ID,
		Limit:    limit,
		Offset:   (page - 1) * limit,
	})
	if err != nil {
		return nil, domain.Pagination{}, apperror.Internal(err)
	}
	return jobs, domain.NewPagination(page, limit, total), nil
}

package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"yuva-hire-backend/internal/domain"
	"yuva-hire-backend/pkg/apperror"
	"yuva-hire-backend/pkg/logger"
	"yuva-hire-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

const (
	msgCandidateNotFound = "Candidate not found"

	recentApplicationsLimit = 5
)

type candidateUsecase struct {
	candidateRepo domain.CandidateRepository
	appRepo       domain.ApplicationRepository
	validate      *validator.Validate
}

func NewCandidateUsecase(candidateRepo domain.CandidateRepository, appRepo domain.ApplicationRepository, validate *validator.Validate) domain.CandidateUsecase {
	if validate == nil {
		validate = validation.New()
	}
	return &candidateUsecase{
		candidateRepo: candidateRepo,
		appRepo:       appRepo,
		validate:      validate,
	}
}

func (u *candidateUsecase) List(ctx context.Context, admin *domain.User, f domain.CandidateFilter) ([]domain.Candidate, error) {
	if !admin.IsAdmin() {
		return nil, apperror.Forbidden("Forbidden")
	}
	f.College = admin.College
	f.Search = strings.TrimSpace(f.Search)
	f.Location = strings.TrimSpace(f.Location)
	f.Role = strings.TrimSpace(f.Role)

	candidates, err := u.candidateRepo.List(ctx, f)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return candidates, nil
}

func (u *candidateUsecase) Get(ctx context.Context, admin *domain.User, id string) (*domain.Candidate, error) {
	if !admin.IsAdmin() {
		return nil, apperror.Forbidden("Forbidden")
	}

	c, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.College != admin.College {
		return nil, apperror.NotFound(msgCandidateNotFound)
	}

	if err := u.candidateRepo.IncrementViews(ctx, id); err != nil {
		logger.Log.Warn("failed to record profile view", "candidate_id", id, "error", err)
	} else {
		c.ProfileViews++
	}

	apps, err := u.appRepo.ListByStudent(ctx, id, recentApplicationsLimit)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	c.RecentApplications = make([]domain.RecentApplication, 0, len(apps))
	for _, a := range apps {
		recent := domain.RecentApplication{
			ApplicationID: a.ID,
			JobID:         a.JobID,
			Status:        a.Status,
			AppliedAt:     a.AppliedAt,
		}
		if a.Job != nil {
			recent.JobTitle = a.Job.Title
		}
		c.RecentApplications = append(c.RecentApplications, recent)
	}
	return c, nil
}

func (u *candidateUsecase) GetMine(ctx context.Context, student *domain.User) (*domain.Candidate, error) {
	if !student.IsStudent() {
		return nil, apperror.Forbidden("Forbidden")
	}
	return u.load(ctx, student.ID)
}

func (u *candidateUsecase) UpdateMine(ctx context.Context, student *domain.User, in domain.ProfileInput) (*domain.Candidate, error) {
	if !student.IsStudent() {
		return nil, apperror.Forbidden("Forbidden")
	}
	if err := u.validate.Struct(in); err != nil {
		return nil, apperror.BadRequest(validation.Message(err))
	}

	current, err := u.load(ctx, student.ID)
	if err != nil {
		return nil, err
	}

	profile := current.CandidateProfile
	in.ApplyTo(&profile)
	// Never trust an id carried by the payload.
	profile.UserID = student.ID
	profile.UpdatedAt = time.Now().UTC()

	if err := u.candidateRepo.Upsert(ctx, &profile); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound(msgCandidateNotFound)
		}
		return nil, apperror.Internal(err)
	}
	return u.load(ctx, student.ID)
}

func (u *candidateUsecase) load(ctx context.Context, id string) (*domain.Candidate, error) {
	c, err := u.candidateRepo.GetByUserID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound(msgCandidateNotFound)
		}
		return nil, apperror.Internal(err)
	}
	return c, nil
}

package usecase

import (
	"context"
	"errors"
	"time"

	"yuva-hire-backend/internal/domain"
	"yuva-hire-backend/pkg/apperror"
)

const recentWindow = 7 * 24 * time.Hour

type dashboardUsecase struct {
	jobRepo       domain.JobRepository
	appRepo       domain.ApplicationRepository
	userRepo      domain.UserRepository
	candidateRepo domain.CandidateRepository
	now           func() time.Time
}

func NewDashboardUsecase(
	jobRepo domain.JobRepository,
	appRepo domain.ApplicationRepository,
	userRepo domain.UserRepository,
	candidateRepo domain.CandidateRepository,
) domain.DashboardUsecase {
	return &dashboardUsecase{
		jobRepo:       jobRepo,
		appRepo:       appRepo,
		userRepo:      userRepo,
		candidateRepo: candidateRepo,
		now:           time.Now,
	}
}

func (u *dashboardUsecase) Stats(ctx context.Context, viewer *domain.User) (any, error) {
	switch {
	case viewer.IsAdmin():
		return u.adminStats(ctx, viewer)
	case viewer.IsStudent():
		return u.studentStats(ctx, viewer)
	}
	return nil, apperror.Forbidden("Forbidden")
}

func (u *dashboardUsecase) adminStats(ctx context.Context, admin *domain.User) (*domain.AdminStats, error) {
	total, active, err := u.jobRepo.CountByCollege(ctx, admin.College)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	apps, err := u.appRepo.StatsForCollege(ctx, admin.College, u.now().Add(-recentWindow))
	if err != nil {
		return nil, apperror.Internal(err)
	}

	students, err := u.userRepo.CountByCollegeAndRole(ctx, admin.College, domain.RoleStudent)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.AdminStats{
		TotalJobs:               total,
		ActiveJobs:              active,
		TotalApplicants:         apps.Total,
		NewApplicationsThisWeek: apps.Recent,
		CandidatesInPipeline:    students,
		InterviewsScheduled:     apps.ByStatus[domain.ApplicationStatusInterviewScheduled],
	}, nil
}

func (u *dashboardUsecase) studentStats(ctx context.Context, student *domain.User) (*domain.StudentStats, error) {
	apps, err := u.appRepo.StatsForStudent(ctx, student.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	var views int64
	c, err := u.candidateRepo.GetByUserID(ctx, student.ID)
	switch {
	case err == nil:
		views = c.ProfileViews
	case !errors.Is(err, domain.ErrNotFound):
		return nil, apperror.Internal(err)
	}

	return &domain.StudentStats{
		JobsApplied:          apps.Total,
		ApplicationsRejected: apps.ByStatus[domain.ApplicationStatusRejected],
		InterviewsCompleted:  apps.ByStatus[domain.ApplicationStatusInterviewScheduled],
		OffersReceived:       apps.ByStatus[domain.ApplicationStatusOfferReceived],
		ApplicationsPending:  apps.ByStatus[domain.ApplicationStatusPending],
		ProfileViews:         views,
	}, nil
}

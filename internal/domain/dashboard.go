package domain

import "context"

type AdminStats struct {
	TotalJobs               int64 `json:"totalJobs"`
	ActiveJobs              int64 `json:"activeJobs"`
	TotalApplicants         int64 `json:"totalApplicants"`
	NewApplicationsThisWeek int64 `json:"newApplicationsThisWeek"`
	CandidatesInPipeline    int64 `json:"candidatesInPipeline"`
	InterviewsScheduled     int64 `json:"interviewsScheduled"`
}

type StudentStats struct {
	JobsApplied          int64 `json:"jobsApplied"`
	ApplicationsRejected int64 `json:"applicationsRejected"`
	InterviewsCompleted  int64 `json:"interviewsCompleted"`
	OffersReceived       int64 `json:"offersReceived"`
	ApplicationsPending  int64 `json:"applicationsPending"`
	ProfileViews         int64 `json:"profileViews"`
}

type DashboardUsecase interface {
	// Stats returns *AdminStats or *StudentStats depending on the viewer's role.
	Stats(ctx context.Context, viewer *User) (any, error)
}

// HealthChecker is implemented by storage backends and optional caches.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

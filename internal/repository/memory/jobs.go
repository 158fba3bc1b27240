package memory

import (
	"context"
	"time"

	"yuva-hire-backend/internal/domain"
)

type jobRepo struct {
	s *Store
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.jobs[job.ID]; exists {
		return domain.ErrConflict
	}
	if _, ok := r.s.users[job.PostedBy]; !ok {
		return domain.ErrNotFound
	}
	stored := *job
	stored.Requirements = cloneStrings(job.Requirements)
	stored.ApplicantCount = 0
	stored.HasApplied = nil
	stored.PostedByName = ""
	r.s.jobs[job.ID] = stored
	return nil
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	j, ok := r.s.jobs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := r.s.hydrateJob(j, "")
	return &out, nil
}

// hydrateJob fills the derived columns. Callers hold at least the read lock.
func (s *Store) hydrateJob(j domain.Job, viewerID string) domain.Job {
	j.Requirements = cloneStrings(j.Requirements)
	if poster, ok := s.users[j.PostedBy]; ok {
		j.PostedByName = poster.Name
	}
	var count int64
	applied := false
	for _, a := range s.applications {
		if a.JobID != j.ID {
			continue
		}
		count++
		if viewerID != "" && a.StudentID == viewerID {
			applied = true
		}
	}
	j.ApplicantCount = count
	if viewerID != "" {
		j.HasApplied = &applied
	}
	return j
}

func matchesJob(j domain.Job, q domain.JobQuery) bool {
	if q.College != "" && j.College != q.College {
		return false
	}
	if q.PostedBy != "" && j.PostedBy != q.PostedBy {
		return false
	}
	if q.Status != "" && j.Status != q.Status {
		return false
	}
	if q.Search != "" && !containsFold(j.Title, q.Search) && !containsFold(j.Description, q.Search) {
		return false
	}
	if q.Location != "" && !containsFold(j.Location, q.Location) {
		return false
	}
	if q.JobType != "" && j.JobType != q.JobType {
		return false
	}
	// YYYY-MM-DD compares correctly as a string.
	if q.MinDeadline != "" && j.Deadline < q.MinDeadline {
		return false
	}
	return true
}

func (r *jobRepo) Fetch(ctx context.Context, q domain.JobQuery) ([]domain.Job, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	matched := []domain.Job{}
	for _, j := range r.s.jobs {
		if matchesJob(j, q) {
			matched = append(matched, j)
		}
	}
	sortNewestFirst(matched, func(j domain.Job) (t time.Time, id string) { return j.CreatedAt, j.ID })

	page := paginate(matched, q.Limit, q.Offset)
	out := make([]domain.Job, 0, len(page))
	for _, j := range page {
		out = append(out, r.s.hydrateJob(j, q.ViewerID))
	}
	return out, int64(len(matched)), nil
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.jobs[job.ID]
	if !ok {
		return domain.ErrNotFound
	}
	current.Title = job.Title
	current.Description = job.Description
	current.Location = job.Location
	current.JobType = job.JobType
	current.Salary = job.Salary
	current.SalaryPeriod = job.SalaryPeriod
	current.Deadline = job.Deadline
	current.Requirements = cloneStrings(job.Requirements)
	current.Status = job.Status
	current.UpdatedAt = job.UpdatedAt
	r.s.jobs[job.ID] = current
	return nil
}

// Delete removes the job and its applications in one critical section.
func (r *jobRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.jobs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.jobs, id)
	for appID, a := range r.s.applications {
		if a.JobID == id {
			delete(r.s.applications, appID)
		}
	}
	return nil
}

func (r *jobRepo) CountByCollege(ctx context.Context, college string) (int64, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var total, active int64
	for _, j := range r.s.jobs {
		if j.College != college {
			continue
		}
		total++
		if j.Status == domain.JobStatusActive {
			active++
		}
	}
	return total, active, nil
}

package memory

import (
	"context"
	"time"

	"yuva-hire-backend/internal/domain"
)

type applicationRepo struct {
	s *Store
}

// Create enforces job/student existence and (job, student) uniqueness under the write lock.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.jobs[app.JobID]; !ok {
		return domain.ErrNotFound
	}
	if _, ok := r.s.users[app.StudentID]; !ok {
		return domain.ErrNotFound
	}
	for _, a := range r.s.applications {
		if a.JobID == app.JobID && a.StudentID == app.StudentID {
			return domain.ErrConflict
		}
	}
	if _, exists := r.s.applications[app.ID]; exists {
		return domain.ErrConflict
	}

	stored := *app
	stored.Job = nil
	stored.Applicant = nil
	r.s.applications[app.ID] = stored
	return nil
}

func (r *applicationRepo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.applications[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &a, nil
}

func (r *applicationRepo) ListByStudent(ctx context.Context, studentID string, limit int) ([]domain.Application, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []domain.Application{}
	for _, a := range r.s.applications {
		if a.StudentID != studentID {
			continue
		}
		j, ok := r.s.jobs[a.JobID]
		if !ok {
			continue
		}
		a.Job = &domain.JobSummary{
			ID:           j.ID,
			Title:        j.Title,
			Location:     j.Location,
			JobType:      j.JobType,
			Salary:       j.Salary,
			SalaryPeriod: j.SalaryPeriod,
			Deadline:     j.Deadline,
			College:      j.College,
			Status:       j.Status,
		}
		out = append(out, a)
	}
	sortNewestFirst(out, func(a domain.Application) (time.Time, string) { return a.AppliedAt, a.ID })
	if limit > 0 {
		out = paginate(out, limit, 0)
	}
	return out, nil
}

func (r *applicationRepo) ListByJob(ctx context.Context, jobID string) ([]domain.Application, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []domain.Application{}
	for _, a := range r.s.applications {
		if a.JobID != jobID {
			continue
		}
		u, ok := r.s.users[a.StudentID]
		if !ok {
			continue
		}
		u = cloneUser(u)
		a.Applicant = &domain.ApplicantSummary{
			ID:         u.ID,
			Name:       u.Name,
			Email:      u.Email,
			Department: u.Department,
			StudentID:  u.StudentID,
		}
		out = append(out, a)
	}
	sortNewestFirst(out, func(a domain.Application) (time.Time, string) { return a.AppliedAt, a.ID })
	return out, nil
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id, from, to string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.applications[id]
	if !ok {
		return domain.ErrNotFound
	}
	if a.Status != from {
		return domain.ErrConflict
	}
	a.Status = to
	a.UpdatedAt = time.Now().UTC()
	r.s.applications[id] = a
	return nil
}

func (r *applicationRepo) StatsForCollege(ctx context.Context, college string, since time.Time) (*domain.ApplicationStats, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	stats := &domain.ApplicationStats{ByStatus: map[string]int64{}}
	for _, a := range r.s.applications {
		j, ok := r.s.jobs[a.JobID]
		if !ok || j.College != college {
			continue
		}
		stats.Total++
		stats.ByStatus[a.Status]++
		if !a.AppliedAt.Before(since) {
			stats.Recent++
		}
	}
	return stats, nil
}

func (r *applicationRepo) StatsForStudent(ctx context.Context, studentID string) (*domain.ApplicationStats, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	stats := &domain.ApplicationStats{ByStatus: map[string]int64{}}
	for _, a := range r.s.applications {
		if a.StudentID != studentID {
			continue
		}
		stats.Total++
		stats.ByStatus[a.Status]++
	}
	return stats, nil
}

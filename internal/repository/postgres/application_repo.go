package postgres

import (
	"context"
	"time"

	"yuva-hire-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create relies on uq_applications_job_student so duplicate applies are rejected atomically.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `INSERT INTO applications (id, job_id, student_id, status, applied_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query, app.ID, app.JobID, app.StudentID, app.Status, app.AppliedAt, app.UpdatedAt)
	return mapError(err)
}

func (r *applicationRepo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	query := `SELECT id, job_id, student_id, status, applied_at, updated_at FROM applications WHERE id = $1`
	var app domain.Application
	err := r.db.QueryRow(ctx, query, id).Scan(
		&app.ID, &app.JobID, &app.StudentID, &app.Status, &app.AppliedAt, &app.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &app, nil
}

func (r *applicationRepo) ListByStudent(ctx context.Context, studentID string, limit int) ([]domain.Application, error) {
	query := `
		SELECT
			a.id, a.job_id, a.student_id, a.status, a.applied_at, a.updated_at,
			j.id, j.title, j.location, j.job_type, j.salary, j.salary_period,
			to_char(j.deadline, 'YYYY-MM-DD'), j.college, j.status
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE a.student_id = $1
		ORDER BY a.applied_at DESC, a.id DESC`
	args := []interface{}{studentID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	apps := []domain.Application{}
	for rows.Next() {
		var app domain.Application
		var job domain.JobSummary
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.StudentID, &app.Status, &app.AppliedAt, &app.UpdatedAt,
			&job.ID, &job.Title, &job.Location, &job.JobType, &job.Salary, &job.SalaryPeriod,
			&job.Deadline, &job.College, &job.Status,
		); err != nil {
			return nil, mapError(err)
		}
		app.Job = &job
		apps = append(apps, app)
	}
	return apps, mapError(rows.Err())
}

func (r *applicationRepo) ListByJob(ctx context.Context, jobID string) ([]domain.Application, error) {
	query := `
		SELECT
			a.id, a.job_id, a.student_id, a.status, a.applied_at, a.updated_at,
			u.id, u.name, u.email, u.department, u.student_id
		FROM applications a
		JOIN users u ON u.id = a.student_id
		WHERE a.job_id = $1
		ORDER BY a.applied_at DESC, a.id DESC`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	apps := []domain.Application{}
	for rows.Next() {
		var app domain.Application
		var applicant domain.ApplicantSummary
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.StudentID, &app.Status, &app.AppliedAt, &app.UpdatedAt,
			&applicant.ID, &applicant.Name, &applicant.Email, &applicant.Department, &applicant.StudentID,
		); err != nil {
			return nil, mapError(err)
		}
		app.Applicant = &applicant
		apps = append(apps, app)
	}
	return apps, mapError(rows.Err())
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id, from, to string) error {
	query := `UPDATE applications SET status = $3, updated_at = NOW() WHERE id = $1 AND status = $2`
	tag, err := r.db.Exec(ctx, query, id, from, to)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	// Distinguish a missing row from a concurrent status change.
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM applications WHERE id = $1)`, id).Scan(&exists); err != nil {
		return mapError(err)
	}
	if !exists {
		return domain.ErrNotFound
	}
	return domain.ErrConflict
}

func (r *applicationRepo) StatsForCollege(ctx context.Context, college string, since time.Time) (*domain.ApplicationStats, error) {
	query := `
		SELECT a.status, COUNT(*), COUNT(*) FILTER (WHERE a.applied_at >= $2)
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE j.college = $1
		GROUP BY a.status`
	return r.stats(ctx, query, college, since)
}

func (r *applicationRepo) StatsForStudent(ctx context.Context, studentID string) (*domain.ApplicationStats, error) {
	query := `
		SELECT status, COUNT(*), 0::bigint
		FROM applications
		WHERE student_id = $1
		GROUP BY status`
	return r.stats(ctx, query, studentID)
}

func (r *applicationRepo) stats(ctx context.Context, query string, args ...interface{}) (*domain.ApplicationStats, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	stats := &domain.ApplicationStats{ByStatus: map[string]int64{}}
	for rows.Next() {
		var status string
		var count, recent int64
		if err := rows.Scan(&status, &count, &recent); err != nil {
			return nil, mapError(err)
		}
		stats.ByStatus[status] = count
		stats.Total += count
		stats.Recent += recent
	}
	return stats, mapError(rows.Err())
}

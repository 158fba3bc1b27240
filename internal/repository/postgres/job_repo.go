package postgres

import (
	"context"
	"fmt"
	"strings"

	"yuva-hire-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

// jobSelect lists columns in scanJob order. The %s slot is the has-applied expression.
const jobSelect = `
		SELECT
			j.id, j.title, j.description, j.location, j.job_type, j.salary, j.salary_period,
			to_char(j.deadline, 'YYYY-MM-DD'), j.requirements, j.college, j.posted_by,
			COALESCE(u.name, ''), j.status,
			(SELECT COUNT(*) FROM applications a WHERE a.job_id = j.id) AS applicant_count,
			%s AS has_applied,
			j.created_at, j.updated_at
		FROM jobs j
		LEFT JOIN users u ON u.id = j.posted_by`

func scanJob(row pgx.Row, withHasApplied bool) (*domain.Job, error) {
	var job domain.Job
	var hasApplied bool
	err := row.Scan(
		&job.ID, &job.Title, &job.Description, &job.Location, &job.JobType, &job.Salary, &job.SalaryPeriod,
		&job.Deadline, pq.Array(&job.Requirements), &job.College, &job.PostedBy,
		&job.PostedByName, &job.Status, &job.ApplicantCount, &hasApplied,
		&job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	if job.Requirements == nil {
		job.Requirements = []string{}
	}
	if withHasApplied {
		job.HasApplied = &hasApplied
	}
	return &job, nil
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (id, title, description, location, job_type, salary, salary_period, deadline,
                  requirements, college, posted_by, status, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8::date, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Description, job.Location, job.JobType, job.Salary, job.SalaryPeriod, job.Deadline,
		pq.Array(job.Requirements), job.College, job.PostedBy, job.Status, job.CreatedAt, job.UpdatedAt,
	)
	return mapError(err)
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	query := fmt.Sprintf(jobSelect, "FALSE") + ` WHERE j.id = $1`
	return scanJob(r.db.QueryRow(ctx, query, id), false)
}

// buildJobConditions mirrors the filter semantics of the in-memory store.
func buildJobConditions(q domain.JobQuery) ([]string, []interface{}) {
	var conditions []string
	var args []interface{}
	argIndex := 1

	add := func(cond string, val interface{}) {
		conditions = append(conditions, fmt.Sprintf(cond, argIndex))
		args = append(args, val)
		argIndex++
	}

	if q.College != "" {
		add("j.college = $%d", q.College)
	}
	if q.PostedBy != "" {
		add("j.posted_by = $%d", q.PostedBy)
	}
	if q.Status != "" {
		add("j.status = $%d", q.Status)
	}
	if q.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(j.title ILIKE $%d OR j.description ILIKE $%d)", argIndex, argIndex))
		args = append(args, containsPattern(q.Search))
		argIndex++
	}
	if q.Location != "" {
		add("j.location ILIKE $%d", containsPattern(q.Location))
	}
	if q.JobType != "" {
		add("j.job_type = $%d", q.JobType)
	}
	if q.MinDeadline != "" {
		add("j.deadline >= $%d::date", q.MinDeadline)
	}
	return conditions, args
}

func (r *jobRepo) Fetch(ctx context.Context, q domain.JobQuery) ([]domain.Job, int64, error) {
	conditions, args := buildJobConditions(q)
	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM jobs j` + whereClause
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, mapError(err)
	}

	hasApplied := "FALSE"
	if q.ViewerID != "" {
		args = append(args, q.ViewerID)
		hasApplied = fmt.Sprintf("EXISTS (SELECT 1 FROM applications a WHERE a.job_id = j.id AND a.student_id = $%d)", len(args))
	}
	args = append(args, q.Limit, q.Offset)
	query := fmt.Sprintf(jobSelect, hasApplied) + whereClause +
		fmt.Sprintf(" ORDER BY j.created_at DESC, j.id DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, mapError(err)
	}
	defer rows.Close()

	jobs := []domain.Job{}
	for rows.Next() {
		job, err := scanJob(rows, q.ViewerID != "")
		if err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, mapError(err)
	}

	return jobs, total, nil
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `UPDATE jobs SET title = $2, description = $3, location = $4, job_type = $5, salary = $6,
                  salary_period = $7, deadline = $8::date, requirements = $9, status = $10, updated_at = $11
              WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Description, job.Location, job.JobType, job.Salary,
		job.SalaryPeriod, job.Deadline, pq.Array(job.Requirements), job.Status, job.UpdatedAt,
	)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the job; applications go with it via ON DELETE CASCADE.
func (r *jobRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) CountByCollege(ctx context.Context, college string) (int64, int64, error) {
	query := `SELECT COUNT(*), COUNT(*) FILTER (WHERE status = 'active') FROM jobs WHERE college = $1`
	var total, active int64
	if err := r.db.QueryRow(ctx, query, college).Scan(&total, &active); err != nil {
		return 0, 0, mapError(err)
	}
	return total, active, nil
}

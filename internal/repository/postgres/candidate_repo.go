package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"yuva-hire-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type candidateRepo struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepo{db: db}
}

// Students without a profile row still appear, with empty enrichment.
const candidateSelect = `
		SELECT
			u.id, u.name, u.email, u.college, u.department, u.student_id,
			COALESCE(cp.title, ''), COALESCE(cp.location, ''), COALESCE(cp.experience, ''),
			COALESCE(cp.education, ''), COALESCE(cp.skills, '{}'), COALESCE(cp.bio, ''), cp.gpa,
			COALESCE(cp.projects, '[]'::jsonb)::text, COALESCE(cp.achievements, '{}'),
			COALESCE(cp.profile_views, 0), COALESCE(cp.updated_at, u.updated_at)
		FROM users u
		LEFT JOIN candidate_profiles cp ON cp.user_id = u.id`

func scanCandidate(row pgx.Row) (*domain.Candidate, error) {
	var c domain.Candidate
	var projectsJSON string
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.College, &c.Department, &c.StudentID,
		&c.Title, &c.Location, &c.Experience, &c.Education, pq.Array(&c.Skills), &c.Bio, &c.GPA,
		&projectsJSON, pq.Array(&c.Achievements), &c.ProfileViews, &c.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	c.UserID = c.ID
	if err := json.Unmarshal([]byte(projectsJSON), &c.Projects); err != nil {
		return nil, fmt.Errorf("decode projects: %w", err)
	}
	normalizeProfile(&c.CandidateProfile)
	return &c, nil
}

func normalizeProfile(p *domain.CandidateProfile) {
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Achievements == nil {
		p.Achievements = []string{}
	}
	if p.Projects == nil {
		p.Projects = []domain.Project{}
	}
	for i := range p.Projects {
		if p.Projects[i].Technologies == nil {
			p.Projects[i].Technologies = []string{}
		}
	}
}

func (r *candidateRepo) Upsert(ctx context.Context, p *domain.CandidateProfile) error {
	normalizeProfile(p)
	projects, err := json.Marshal(p.Projects)
	if err != nil {
		return fmt.Errorf("encode projects: %w", err)
	}

	query := `
		INSERT INTO candidate_profiles (user_id, title, location, experience, education, skills, bio, gpa,
		                                projects, achievements, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::jsonb, $10, $11)
		ON CONFLICT (user_id) DO UPDATE SET
			title = EXCLUDED.title,
			location = EXCLUDED.location,
			experience = EXCLUDED.experience,
			education = EXCLUDED.education,
			skills = EXCLUDED.skills,
			bio = EXCLUDED.bio,
			gpa = EXCLUDED.gpa,
			projects = EXCLUDED.projects,
			achievements = EXCLUDED.achievements,
			updated_at = EXCLUDED.updated_at`
	_, err = r.db.Exec(ctx, query,
		p.UserID, p.Title, p.Location, p.Experience, p.Education, pq.Array(p.Skills), p.Bio, p.GPA,
		string(projects), pq.Array(p.Achievements), p.UpdatedAt,
	)
	return mapError(err)
}

func (r *candidateRepo) GetByUserID(ctx context.Context, userID string) (*domain.Candidate, error) {
	query := candidateSelect + ` WHERE u.id = $1 AND u.role = 'student'`
	return scanCandidate(r.db.QueryRow(ctx, query, userID))
}

func (r *candidateRepo) List(ctx context.Context, f domain.CandidateFilter) ([]domain.Candidate, error) {
	conditions := []string{"u.role = 'student'"}
	var args []interface{}
	argIndex := 1

	if f.College != "" {
		conditions = append(conditions, fmt.Sprintf("u.college = $%d", argIndex))
		args = append(args, f.College)
		argIndex++
	}
	if f.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(u.name ILIKE $%d OR cp.title ILIKE $%d OR EXISTS (SELECT 1 FROM unnest(cp.skills) AS s(skill) WHERE s.skill ILIKE $%d))",
			argIndex, argIndex, argIndex))
		args = append(args, containsPattern(f.Search))
		argIndex++
	}
	if f.Location != "" {
		conditions = append(conditions, fmt.Sprintf("cp.location ILIKE $%d", argIndex))
		args = append(args, containsPattern(f.Location))
		argIndex++
	}
	if f.Role != "" {
		conditions = append(conditions, fmt.Sprintf("cp.title ILIKE $%d", argIndex))
		args = append(args, containsPattern(f.Role))
	}

	query := candidateSelect + ` WHERE ` + strings.Join(conditions, " AND ") + ` ORDER BY u.name ASC, u.id ASC`
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	candidates := []domain.Candidate{}
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, *c)
	}
	return candidates, mapError(rows.Err())
}

func (r *candidateRepo) IncrementViews(ctx context.Context, userID string) error {
	query := `
		INSERT INTO candidate_profiles (user_id, profile_views) VALUES ($1, 1)
		ON CONFLICT (user_id) DO UPDATE SET profile_views = candidate_profiles.profile_views + 1`
	_, err := r.db.Exec(ctx, query, userID)
	return mapError(err)
}

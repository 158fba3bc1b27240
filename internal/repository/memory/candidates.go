package memory

import (
	"context"
	"sort"

	"yuva-hire-backend/internal/domain"
)

type candidateRepo struct {
	s *Store
}

func cloneProfile(p domain.CandidateProfile) domain.CandidateProfile {
	p.Skills = cloneStrings(p.Skills)
	p.Achievements = cloneStrings(p.Achievements)
	projects := make([]domain.Project, len(p.Projects))
	for i, pr := range p.Projects {
		pr.Technologies = cloneStrings(pr.Technologies)
		projects[i] = pr
	}
	p.Projects = projects
	if p.GPA != nil {
		gpa := *p.GPA
		p.GPA = &gpa
	}
	return p
}

func (r *candidateRepo) Upsert(ctx context.Context, p *domain.CandidateProfile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[p.UserID]; !ok {
		return domain.ErrNotFound
	}
	stored := cloneProfile(*p)
	stored.ProfileViews = r.s.profiles[p.UserID].ProfileViews
	r.s.profiles[p.UserID] = stored
	return nil
}

// candidateFor joins a student user with their profile. Callers hold at least the read lock.
func (s *Store) candidateFor(u domain.User) domain.Candidate {
	u = cloneUser(u)
	profile, ok := s.profiles[u.ID]
	if !ok {
		profile = domain.CandidateProfile{UpdatedAt: u.UpdatedAt}
	}
	profile = cloneProfile(profile)
	profile.UserID = u.ID
	return domain.Candidate{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		College:          u.College,
		Department:       u.Department,
		StudentID:        u.StudentID,
		CandidateProfile: profile,
	}
}

func (r *candidateRepo) GetByUserID(ctx context.Context, userID string) (*domain.Candidate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[userID]
	if !ok || u.Role != domain.RoleStudent {
		return nil, domain.ErrNotFound
	}
	c := r.s.candidateFor(u)
	return &c, nil
}

func matchesCandidate(c domain.Candidate, f domain.CandidateFilter) bool {
	if f.College != "" && c.College != f.College {
		return false
	}
	if f.Search != "" {
		hit := containsFold(c.Name, f.Search) || containsFold(c.Title, f.Search)
		for _, skill := range c.Skills {
			if hit {
				break
			}
			hit = containsFold(skill, f.Search)
		}
		if !hit {
			return false
		}
	}
	if f.Location != "" && !containsFold(c.Location, f.Location) {
		return false
	}
	if f.Role != "" && !containsFold(c.Title, f.Role) {
		return false
	}
	return true
}

func (r *candidateRepo) List(ctx context.Context, f domain.CandidateFilter) ([]domain.Candidate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []domain.Candidate{}
	for _, u := range r.s.users {
		if u.Role != domain.RoleStudent {
			continue
		}
		c := r.s.candidateFor(u)
		if matchesCandidate(c, f) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *candidateRepo) IncrementViews(ctx context.Context, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[userID]; !ok {
		return domain.ErrNotFound
	}
	p := r.s.profiles[userID]
	p.UserID = userID
	p.ProfileViews++
	r.s.profiles[userID] = p
	return nil
}

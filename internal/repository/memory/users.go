package memory

import (
	"context"

	"yuva-hire-backend/internal/domain"
)

type userRepo struct {
	s *Store
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, taken := r.s.emails[user.Email]; taken {
		return domain.ErrConflict
	}
	if _, exists := r.s.users[user.ID]; exists {
		return domain.ErrConflict
	}
	r.s.users[user.ID] = cloneUser(*user)
	r.s.emails[user.Email] = user.ID
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := cloneUser(u)
	return &out, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.emails[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := cloneUser(r.s.users[id])
	return &out, nil
}

// Update writes the profile-edit fields only, matching the postgres store.
func (r *userRepo) Update(ctx context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.users[user.ID]
	if !ok {
		return domain.ErrNotFound
	}
	updated := cloneUser(*user)
	current.Name = updated.Name
	current.Department = updated.Department
	current.StudentID = updated.StudentID
	current.UpdatedAt = updated.UpdatedAt
	r.s.users[user.ID] = current
	return nil
}

func (r *userRepo) CountByCollegeAndRole(ctx context.Context, college, role string) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var n int64
	for _, u := range r.s.users {
		if u.College == college && u.Role == role {
			n++
		}
	}
	return n, nil
}

func cloneUser(u domain.User) domain.User {
	if u.Department != nil {
		d := *u.Department
		u.Department = &d
	}
	if u.StudentID != nil {
		sid := *u.StudentID
		u.StudentID = &sid
	}
	return u
}

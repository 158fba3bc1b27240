package memory

import (
	"context"
	"strings"
	"time"

	"yuva-hire-backend/internal/domain"
)

type articleRepo struct {
	s *Store
}

func (r *articleRepo) Create(ctx context.Context, a *domain.Article) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.articles[a.ID]; exists {
		return domain.ErrConflict
	}
	stored := *a
	stored.Likes = 0
	stored.LikedByMe = false
	r.s.articles[a.ID] = stored
	return nil
}

// annotate fills the derived like columns. Callers hold at least the read lock.
func (s *Store) annotate(a domain.Article, viewerID string) domain.Article {
	likers := s.likes[a.ID]
	a.Likes = int64(len(likers))
	_, a.LikedByMe = likers[viewerID]
	if viewerID == "" {
		a.LikedByMe = false
	}
	return a
}

func (r *articleRepo) GetByID(ctx context.Context, id, viewerID string) (*domain.Article, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.articles[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := r.s.annotate(a, viewerID)
	return &out, nil
}

func (r *articleRepo) List(ctx context.Context, f domain.ArticleFilter) ([]domain.Article, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []domain.Article{}
	for _, a := range r.s.articles {
		if f.Category != "" && !strings.EqualFold(a.Category, f.Category) {
			continue
		}
		out = append(out, r.s.annotate(a, f.ViewerID))
	}
	sortNewestFirst(out, func(a domain.Article) (time.Time, string) { return a.CreatedAt, a.ID })
	return out, nil
}

func (r *articleRepo) ToggleLike(ctx context.Context, articleID, userID string) (bool, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.articles[articleID]; !ok {
		return false, 0, domain.ErrNotFound
	}
	likers, ok := r.s.likes[articleID]
	if !ok {
		likers = make(map[string]struct{})
		r.s.likes[articleID] = likers
	}

	_, liked := likers[userID]
	if liked {
		delete(likers, userID)
	} else {
		likers[userID] = struct{}{}
	}
	return !liked, int64(len(likers)), nil
}

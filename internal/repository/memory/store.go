// Package memory is an in-process implementation of the domain repositories.
// A single Store guards every table with one RWMutex so multi-table reads
// (job listings with applicant counts, candidate joins) see a consistent view.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"yuva-hire-backend/internal/domain"
)

type Store struct {
	mu sync.RWMutex

	users        map[string]domain.User
	emails       map[string]string // email -> user id
	jobs         map[string]domain.Job
	applications map[string]domain.Application
	profiles     map[string]domain.CandidateProfile
	articles     map[string]domain.Article
	likes        map[string]map[string]struct{} // article id -> user ids
}

func NewStore() *Store {
	return &Store{
		users:        make(map[string]domain.User),
		emails:       make(map[string]string),
		jobs:         make(map[string]domain.Job),
		applications: make(map[string]domain.Application),
		profiles:     make(map[string]domain.CandidateProfile),
		articles:     make(map[string]domain.Article),
		likes:        make(map[string]map[string]struct{}),
	}
}

func (s *Store) Users() domain.UserRepository               { return &userRepo{s: s} }
func (s *Store) Jobs() domain.JobRepository                 { return &jobRepo{s: s} }
func (s *Store) Applications() domain.ApplicationRepository { return &applicationRepo{s: s} }
func (s *Store) Candidates() domain.CandidateRepository     { return &candidateRepo{s: s} }
func (s *Store) Articles() domain.ArticleRepository         { return &articleRepo{s: s} }

// Ping satisfies domain.HealthChecker.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// newestFirst orders by timestamp descending, then id descending.
func newestFirst(ti, tj time.Time, idi, idj string) bool {
	if !ti.Equal(tj) {
		return ti.After(tj)
	}
	return idi > idj
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset < 0 || offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}

func sortNewestFirst[T any](items []T, key func(T) (time.Time, string)) {
	sort.Slice(items, func(i, j int) bool {
		ti, idi := key(items[i])
		tj, idj := key(items[j])
		return newestFirst(ti, tj, idi, idj)
	})
}

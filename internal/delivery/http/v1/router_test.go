package v1_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"yuva-hire-backend/config"
	"yuva-hire-backend/internal/delivery/http/response"
	v1 "yuva-hire-backend/internal/delivery/http/v1"
	"yuva-hire-backend/internal/domain"
	"yuva-hire-backend/internal/repository/memory"
	"yuva-hire-backend/internal/usecase"
	"yuva-hire-backend/pkg/auth"
	"yuva-hire-backend/pkg/security"
	"yuva-hire-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const password = "pw123456"

type testServer struct {
	t      *testing.T
	router *gin.Engine
	store  *memory.Store
}

func newTestServer(t *testing.T, tune ...func(*config.Config)) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	hasher, err := auth.NewPasswordHasher(bcrypt.MinCost)
	require.NoError(t, err)
	validate := validation.New()
	secLog := security.NopLogger()

	cfg := &config.Config{
		FrontendURL:              "http://localhost:3000",
		RateLimitWindowSeconds:   60,
		RateLimitGlobalThreshold: 100000,
		RateLimitLoginThreshold:  100000,
	}
	for _, f := range tune {
		f(cfg)
	}

	router := v1.NewRouter(v1.RouterDeps{
		AuthUC: usecase.NewAuthUsecase(usecase.AuthDeps{
			Users:      store.Users(),
			Candidates: store.Candidates(),
			Tokens:     auth.NewTokenManager("e2e-secret", time.Hour),
			Hasher:     hasher,
			Guard:      security.NewLoginTracker(nil, security.DefaultLoginTrackerConfig(), secLog),
			SecLog:     secLog,
			Validate:   validate,
		}),
		JobUC:         usecase.NewJobUsecase(store.Jobs(), validate),
		ApplicationUC: usecase.NewApplicationUsecase(store.Applications(), store.Jobs()),
		CandidateUC:   usecase.NewCandidateUsecase(store.Candidates(), store.Applications(), validate),
		ArticleUC:     usecase.NewArticleUsecase(store.Articles(), validate),
		DashboardUC:   usecase.NewDashboardUsecase(store.Jobs(), store.Applications(), store.Users(), store.Candidates()),
		HealthUC:      usecase.NewHealthUsecase(store, nil),
		SecLog:        secLog,
		Config:        cfg,
	})

	return &testServer{t: t, router: router, store: store}
}

func (s *testServer) do(method, path, token string, body any) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func (s *testServer) register(email, role, college string) (string, domain.User) {
	s.t.Helper()
	w := s.do(http.MethodPost, "/api/auth/register", "", map[string]any{
		"email": email, "password": password, "name": "Test User", "role": role, "college": college,
	})
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())
	res := decode[v1.AuthResponse](s.t, w)
	return res.Token, *res.User
}

func (s *testServer) createJob(token string, fields map[string]any) domain.Job {
	s.t.Helper()
	body := map[string]any{
		"title": "Intern", "description": "Build things", "location": "Pune",
		"jobType": domain.JobTypeInternship, "salary": "15000", "deadline": "2025-06-01",
	}
	for k, v := range fields {
		body[k] = v
	}
	w := s.do(http.MethodPost, "/api/jobs", token, body)
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())
	return *decode[v1.JobResponse](s.t, w).Job
}

func TestEndToEnd_ApplyFlow(t *testing.T) {
	s := newTestServer(t)

	adminToken, _ := s.register("admin@x.edu", domain.RoleAdmin, "X")
	job := s.createJob(adminToken, map[string]any{"title": "Intern", "deadline": "2025-06-01"})
	assert.Equal(t, domain.DefaultSalaryPeriod, job.SalaryPeriod)
	assert.Equal(t, []string{}, job.Requirements)

	studentToken, _ := s.register("s@x.edu", domain.RoleStudent, "X")

	w := s.do(http.MethodGet, "/api/jobs", studentToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[v1.JobListResponse](t, w)
	require.Len(t, list.Jobs, 1)
	require.NotNil(t, list.Jobs[0].HasApplied)
	assert.False(t, *list.Jobs[0].HasApplied)
	assert.EqualValues(t, 0, list.Jobs[0].ApplicantCount)

	w = s.do(http.MethodPost, "/api/applications", studentToken, map[string]string{"jobId": job.ID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	app := decode[v1.ApplicationResponse](t, w).Application
	assert.Equal(t, domain.ApplicationStatusPending, app.Status)

	w = s.do(http.MethodGet, "/api/jobs", studentToken, nil)
	list = decode[v1.JobListResponse](t, w)
	require.Len(t, list.Jobs, 1)
	assert.True(t, *list.Jobs[0].HasApplied)
	assert.EqualValues(t, 1, list.Jobs[0].ApplicantCount)

	t.Run("second apply conflicts and leaves the count alone", func(t *testing.T) {
		w := s.do(http.MethodPost, "/api/applications", studentToken, map[string]string{"jobId": job.ID})
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "Already applied to this job", decode[response.ErrorBody](t, w).Error)

		w = s.do(http.MethodGet, "/api/jobs/"+job.ID, "", nil)
		assert.EqualValues(t, 1, decode[v1.JobResponse](t, w).Job.ApplicantCount)
	})

	t.Run("student sees the application with job fields", func(t *testing.T) {
		w := s.do(http.MethodGet, "/api/applications", studentToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		apps := decode[v1.ApplicationListResponse](t, w).Applications
		require.Len(t, apps, 1)
		require.NotNil(t, apps[0].Job)
		assert.Equal(t, "Intern", apps[0].Job.Title)
	})

	t.Run("admin moves the application forward", func(t *testing.T) {
		w := s.do(http.MethodPatch, "/api/applications/"+app.ID+"/status", adminToken, map[string]string{"status": domain.ApplicationStatusInterviewScheduled})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = s.do(http.MethodGet, "/api/dashboard/stats", adminToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		stats := decode[struct {
			Stats domain.AdminStats `json:"stats"`
		}](t, w).Stats
		assert.EqualValues(t, 1, stats.TotalJobs)
		assert.EqualValues(t, 1, stats.TotalApplicants)
		assert.EqualValues(t, 1, stats.InterviewsScheduled)
		assert.EqualValues(t, 1, stats.CandidatesInPipeline)

		w = s.do(http.MethodGet, "/api/dashboard/stats", studentToken, nil)
		studentStats := decode[struct {
			Stats domain.StudentStats `json:"stats"`
		}](t, w).Stats
		assert.EqualValues(t, 1, studentStats.JobsApplied)
		assert.EqualValues(t, 1, studentStats.InterviewsCompleted)
	})

	t.Run("deleting the job removes its applications", func(t *testing.T) {
		w := s.do(http.MethodDelete, "/api/jobs/"+job.ID, adminToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true}`, w.Body.String())

		w = s.do(http.MethodGet, "/api/applications", studentToken, nil)
		assert.Empty(t, decode[v1.ApplicationListResponse](t, w).Applications)
	})
}

func TestEndToEnd_CrossCollegeApplyIsNotFound(t *testing.T) {
	s := newTestServer(t)

	adminToken, _ := s.register("admin@x.edu", domain.RoleAdmin, "X")
	job := s.createJob(adminToken, nil)
	outsiderToken, _ := s.register("s@y.edu", domain.RoleStudent, "Y")

	w := s.do(http.MethodPost, "/api/applications", outsiderToken, map[string]string{"jobId": job.ID})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodGet, "/api/jobs/"+job.ID+"/applications", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[v1.ApplicationListResponse](t, w).Applications)

	w = s.do(http.MethodGet, "/api/jobs", outsiderToken, nil)
	assert.Empty(t, decode[v1.JobListResponse](t, w).Jobs)
}

func TestClosedJobIsNotAvailable(t *testing.T) {
	s := newTestServer(t)
	adminToken, _ := s.register("admin@x.edu", domain.RoleAdmin, "X")
	job := s.createJob(adminToken, map[string]any{"status": domain.JobStatusClosed})
	studentToken, _ := s.register("s@x.edu", domain.RoleStudent, "X")

	w := s.do(http.MethodPost, "/api/applications", studentToken, map[string]string{"jobId": job.ID})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodGet, "/api/admin/jobs", adminToken, nil)
	assert.Len(t, decode[v1.JobListResponse](t, w).Jobs, 1)
}

func TestRegisterThenLogin(t *testing.T) {
	s := newTestServer(t)
	_, user := s.register("Alice@X.edu", domain.RoleStudent, "X")
	assert.Equal(t, "alice@x.edu", user.Email)

	w := s.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "alice@x.edu", "password": password})
	require.Equal(t, http.StatusOK, w.Code)
	login := decode[v1.AuthResponse](t, w)
	assert.NotContains(t, w.Body.String(), "passwordHash")

	w = s.do(http.MethodGet, "/api/auth/me", login.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, user.ID, decode[v1.UserResponse](t, w).User.ID)

	t.Run("duplicate email conflicts", func(t *testing.T) {
		w := s.do(http.MethodPost, "/api/auth/register", "", map[string]any{
			"email": "ALICE@x.edu", "password": password, "name": "Alice", "role": domain.RoleStudent, "college": "X",
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("missing fields are a 400", func(t *testing.T) {
		w := s.do(http.MethodPost, "/api/auth/register", "", map[string]any{"email": "bob@x.edu"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.NotEmpty(t, decode[response.ErrorBody](t, w).Error)

		w = s.do(http.MethodPost, "/api/auth/login", "", map[string]any{"email": "bob@x.edu"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("profile fields can be edited", func(t *testing.T) {
		w := s.do(http.MethodPut, "/api/auth/me", login.Token, map[string]string{"department": "CSE"})
		require.Equal(t, http.StatusOK, w.Code)
		updated := decode[v1.UserResponse](t, w).User
		require.NotNil(t, updated.Department)
		assert.Equal(t, "CSE", *updated.Department)
	})
}

func TestLoginDoesNotDiscloseWhichPartFailed(t *testing.T) {
	s := newTestServer(t)
	s.register("alice@x.edu", domain.RoleStudent, "X")

	wrongPassword := s.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "alice@x.edu", "password": "nope-nope"})
	unknownEmail := s.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "ghost@x.edu", "password": password})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t,
		decode[response.ErrorBody](t, wrongPassword).Error,
		decode[response.ErrorBody](t, unknownEmail).Error,
	)
}

func TestFailedLoginsNeverLockOutWithoutRedis(t *testing.T) {
	s := newTestServer(t)
	s.register("alice@x.edu", domain.RoleStudent, "X")

	for i := 0; i < 2*security.DefaultLoginTrackerConfig().MaxAttempts; i++ {
		w := s.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "alice@x.edu", "password": "nope-nope"})
		require.Equal(t, http.StatusUnauthorized, w.Code)
	}

	w := s.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "alice@x.edu", "password": password})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestRateLimitIgnoresForwardedForFromUntrustedPeers(t *testing.T) {
	const peer = "203.0.113.7"
	limitTwo := func(c *config.Config) { c.RateLimitGlobalThreshold = 2 }

	hit := func(s *testServer, forwardedFor string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.RemoteAddr = peer + ":4000"
		req.Header.Set("X-Forwarded-For", forwardedFor)
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)
		return w.Code
	}

	t.Run("no trusted proxies", func(t *testing.T) {
		s := newTestServer(t, limitTwo)
		assert.Equal(t, http.StatusOK, hit(s, "198.51.100.1"))
		assert.Equal(t, http.StatusOK, hit(s, "198.51.100.2"))
		assert.Equal(t, http.StatusTooManyRequests, hit(s, "198.51.100.3"))
	})

	t.Run("configured proxy forwards the client address", func(t *testing.T) {
		s := newTestServer(t, limitTwo, func(c *config.Config) { c.TrustedProxies = peer })
		assert.Equal(t, http.StatusOK, hit(s, "198.51.100.1"))
		assert.Equal(t, http.StatusOK, hit(s, "198.51.100.2"))
		assert.Equal(t, http.StatusOK, hit(s, "198.51.100.1"))
		assert.Equal(t, http.StatusTooManyRequests, hit(s, "198.51.100.1"))
	})

	t.Run("invalid proxy list trusts none", func(t *testing.T) {
		s := newTestServer(t, limitTwo, func(c *config.Config) { c.TrustedProxies = "not-an-ip" })
		assert.Equal(t, http.StatusOK, hit(s, "198.51.100.1"))
		assert.Equal(t, http.StatusOK, hit(s, "198.51.100.2"))
		assert.Equal(t, http.StatusTooManyRequests, hit(s, "198.51.100.3"))
	})
}

func TestJobOwnershipIsHidden(t *testing.T) {
	s := newTestServer(t)
	ownerToken, _ := s.register("owner@x.edu", domain.RoleAdmin, "X")
	otherToken, _ := s.register("other@x.edu", domain.RoleAdmin, "X")
	studentToken, _ := s.register("s@x.edu", domain.RoleStudent, "X")
	job := s.createJob(ownerToken, nil)

	w := s.do(http.MethodPut, "/api/jobs/"+job.ID, otherToken, map[string]string{"title": "Mine now"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = s.do(http.MethodDelete, "/api/jobs/"+job.ID, otherToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = s.do(http.MethodGet, "/api/jobs/"+job.ID+"/applications", otherToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodPut, "/api/jobs/"+job.ID, studentToken, map[string]string{"title": "Mine now"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(http.MethodPut, "/api/jobs/"+job.ID, ownerToken, map[string]any{"title": "Senior Intern", "requirements": []string{"Go"}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[v1.JobResponse](t, w).Job
	assert.Equal(t, "Senior Intern", updated.Title)
	assert.Equal(t, []string{"Go"}, updated.Requirements)
	assert.Equal(t, "Pune", updated.Location)

	w = s.do(http.MethodGet, "/api/jobs/not-a-real-id", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestJobFiltersAndPagination(t *testing.T) {
	s := newTestServer(t)
	adminToken, _ := s.register("admin@x.edu", domain.RoleAdmin, "X")
	studentToken, _ := s.register("s@x.edu", domain.RoleStudent, "X")

	for i := 0; i < 7; i++ {
		jobType := domain.JobTypeInternship
		if i%2 == 1 {
			jobType = domain.JobTypeFullTime
		}
		location := "Pune"
		if i%3 == 0 {
			location = "Mumbai"
		}
		s.createJob(adminToken, map[string]any{
			"title":    fmt.Sprintf("Role %d", i),
			"jobType":  jobType,
			"location": location,
			"deadline": fmt.Sprintf("2030-01-%02d", i+1),
		})
	}

	list := func(query string) v1.JobListResponse {
		w := s.do(http.MethodGet, "/api/jobs"+query, studentToken, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		return decode[v1.JobListResponse](t, w)
	}

	t.Run("jobType filter is exact", func(t *testing.T) {
		res := list("?jobType=Internship")
		assert.Len(t, res.Jobs, 4)
		for _, j := range res.Jobs {
			assert.Equal(t, domain.JobTypeInternship, j.JobType)
		}
		assert.Len(t, list("?jobType=all").Jobs, 7)
	})

	t.Run("filters combine with AND", func(t *testing.T) {
		res := list("?jobType=Internship&location=mumbai")
		// i in {0, 6}: even and divisible by 3
		assert.Len(t, res.Jobs, 2)
		for _, j := range res.Jobs {
			assert.Equal(t, domain.JobTypeInternship, j.JobType)
			assert.Equal(t, "Mumbai", j.Location)
		}

		res = list("?search=role%203&minDeadline=2030-01-04")
		require.Len(t, res.Jobs, 1)
		assert.Equal(t, "Role 3", res.Jobs[0].Title)
		assert.Empty(t, list("?search=role%203&minDeadline=2030-01-05").Jobs)
	})

	t.Run("pages concatenate to the full result exactly once", func(t *testing.T) {
		full := list("?limit=100").Jobs
		require.Len(t, full, 7)

		first := list("?page=1&limit=3")
		assert.Equal(t, domain.Pagination{Page: 1, Limit: 3, Total: 7, TotalPages: 3}, first.Pagination)

		var ids []string
		for page := 1; page <= first.Pagination.TotalPages; page++ {
			for _, j := range list(fmt.Sprintf("?page=%d&limit=3", page)).Jobs {
				ids = append(ids, j.ID)
			}
		}
		want := make([]string, 0, len(full))
		for _, j := range full {
			want = append(want, j.ID)
		}
		assert.Equal(t, want, ids)
	})

	t.Run("bad deadline filter is a 400", func(t *testing.T) {
		w := s.do(http.MethodGet, "/api/jobs?minDeadline=tomorrow", studentToken, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("page far past the end is a 400 with an error body", func(t *testing.T) {
		w := s.do(http.MethodGet, "/api/jobs?page=9223372036854775807&limit=10", studentToken, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "page is out of range", decode[response.ErrorBody](t, w).Error)

		w = s.do(http.MethodGet, "/api/admin/jobs?page=9223372036854775807", adminToken, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCandidateDirectory(t *testing.T) {
	s := newTestServer(t)
	adminToken, _ := s.register("admin@x.edu", domain.RoleAdmin, "X")
	studentToken, student := s.register("s@x.edu", domain.RoleStudent, "X")
	s.register("far@y.edu", domain.RoleStudent, "Y")

	w := s.do(http.MethodPut, "/api/candidates/me", studentToken, map[string]any{
		"title":  "Frontend Developer",
		"skills": []string{"React", "TypeScript"},
		"gpa":    8.7,
		"projects": []map[string]any{
			{"name": "Portfolio", "description": "Personal site", "technologies": []string{"Next.js"}},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(http.MethodGet, "/api/candidates?search=typescript", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	found := decode[v1.CandidateListResponse](t, w).Candidates
	require.Len(t, found, 1)
	assert.Equal(t, student.ID, found[0].ID)

	w = s.do(http.MethodGet, "/api/candidates", adminToken, nil)
	assert.Len(t, decode[v1.CandidateListResponse](t, w).Candidates, 1, "other colleges are hidden")

	w = s.do(http.MethodGet, "/api/candidates/"+student.ID, adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decode[v1.CandidateResponse](t, w).Candidate.ProfileViews)

	w = s.do(http.MethodGet, "/api/candidates", studentToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(http.MethodGet, "/api/dashboard/stats", studentToken, nil)
	stats := decode[struct {
		Stats domain.StudentStats `json:"stats"`
	}](t, w).Stats
	assert.EqualValues(t, 1, stats.ProfileViews)
}

func TestArticles(t *testing.T) {
	s := newTestServer(t)
	adminToken, _ := s.register("admin@x.edu", domain.RoleAdmin, "X")
	studentToken, _ := s.register("s@x.edu", domain.RoleStudent, "X")

	w := s.do(http.MethodPost, "/api/articles", adminToken, map[string]any{
		"title": "Acing interviews", "excerpt": "Tips", "content": "Practice.", "category": "Career", "readTime": "4 min",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	article := decode[v1.ArticleResponse](t, w).Article

	w = s.do(http.MethodPost, "/api/articles", studentToken, map[string]any{"title": "x"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(http.MethodPost, "/api/articles/"+article.ID+"/like", studentToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, v1.LikeResponse{Liked: true, Likes: 1}, decode[v1.LikeResponse](t, w))

	w = s.do(http.MethodGet, "/api/articles?category=career", studentToken, nil)
	articles := decode[v1.ArticleListResponse](t, w).Articles
	require.Len(t, articles, 1)
	assert.True(t, articles[0].LikedByMe)

	w = s.do(http.MethodPost, "/api/articles/"+article.ID+"/like", studentToken, nil)
	assert.Equal(t, v1.LikeResponse{Liked: false, Likes: 0}, decode[v1.LikeResponse](t, w))

	w = s.do(http.MethodGet, "/api/articles/missing", studentToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPublicSurface(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode[map[string]string](t, w)["status"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.NotEmpty(t, w.Header().Get("X-RateLimit-Limit"))

	w = s.do(http.MethodGet, "/api/jobs", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodGet, "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Job alerts are not served.
	studentToken, _ := s.register("s@x.edu", domain.RoleStudent, "X")
	w = s.do(http.MethodGet, "/api/alerts", studentToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Route not found", decode[response.ErrorBody](t, w).Error)
}

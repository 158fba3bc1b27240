package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"yuva-hire-backend/internal/delivery/http/response"
	"yuva-hire-backend/internal/domain"
	"yuva-hire-backend/pkg/apperror"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubAuth resolves tokens from a fixed table.
type stubAuth struct {
	domain.AuthUsecase
	users map[string]*domain.User
	err   error
}

func (s stubAuth) ResolveToken(_ context.Context, token string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	if u, ok := s.users[token]; ok {
		return u, nil
	}
	return nil, apperror.Unauthorized("Unauthorized")
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) response.ErrorBody {
	t.Helper()
	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRequireAuthAndRole(t *testing.T) {
	auth := stubAuth{users: map[string]*domain.User{
		"admin-token":   {ID: "a1", Role: domain.RoleAdmin, College: "MIT"},
		"student-token": {ID: "s1", Role: domain.RoleStudent, College: "MIT"},
	}}

	r := gin.New()
	r.Use(RequestID())
	r.GET("/me", RequireAuth(auth, nil), func(c *gin.Context) {
		user := CurrentUser(c)
		ctxID, _ := c.Request.Context().Value(domain.KeyUserID).(string)
		c.JSON(http.StatusOK, gin.H{"id": user.ID, "ctxId": ctxID, "college": c.GetString(string(domain.KeyUserCollege))})
	})
	r.GET("/admin", RequireAuth(auth, nil), RequireRole(nil, domain.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	do := func(path, header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("Should reject missing and malformed headers", func(t *testing.T) {
		for _, h := range []string{"", "admin-token", "Basic admin-token", "Bearer ", "Bearer nope"} {
			w := do("/me", h)
			assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", h)
			body := decodeError(t, w)
			assert.Equal(t, "Unauthorized", body.Error)
			assert.NotEmpty(t, body.RequestID)
		}
	})

	t.Run("Should expose the resolved user", func(t *testing.T) {
		w := do("/me", "bearer student-token")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":"s1","ctxId":"s1","college":"MIT"}`, w.Body.String())
	})

	t.Run("Should forbid the wrong role", func(t *testing.T) {
		w := do("/admin", "Bearer student-token")
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "Forbidden", decodeError(t, w).Error)

		assert.Equal(t, http.StatusNoContent, do("/admin", "Bearer admin-token").Code)
	})

	t.Run("Should report storage failures as 500", func(t *testing.T) {
		broken := gin.New()
		broken.GET("/me", RequireAuth(stubAuth{err: apperror.Internal(errors.New("db down"))}, nil), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer x")
		w := httptest.NewRecorder()
		broken.ServeHTTP(w, req)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "db down")
	})
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		ctxID, _ := c.Request.Context().Value(domain.KeyRequestID).(string)
		c.String(http.StatusOK, ctxID)
	})

	t.Run("Should reuse a well-formed incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "abc-123", w.Body.String())
	})

	t.Run("Should replace a hostile id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "bad id\nwith newline")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		id := w.Header().Get(RequestIDHeader)
		assert.NotEqual(t, "bad id\nwith newline", id)
		assert.Len(t, id, 36)
	})
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), ErrorHandler())
	r.GET("/conflict", func(c *gin.Context) {
		_ = c.Error(apperror.Conflict("Already applied to this job"))
	})
	r.GET("/internal", func(c *gin.Context) {
		_ = c.Error(apperror.Internal(errors.New("pq: connection refused")))
	})
	r.GET("/plain", func(c *gin.Context) {
		_ = c.Error(errors.New("boom"))
	})

	cases := []struct {
		path string
		code int
		msg  string
	}{
		{"/conflict", http.StatusConflict, "Already applied to this job"},
		{"/internal", http.StatusInternalServerError, msgInternalError},
		{"/plain", http.StatusInternalServerError, msgInternalError},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
			assert.Equal(t, tc.code, w.Code)
			body := decodeError(t, w)
			assert.Equal(t, tc.msg, body.Error)
			assert.Equal(t, w.Header().Get(RequestIDHeader), body.RequestID)
		})
	}
}

func TestSecurityHeaders(t *testing.T) {
	r := gin.New()
	r.Use(SecurityHeadersMiddleware())
	r.GET("/api/jobs", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/api/jobs", nil)
	req.Header.Set("Authorization", "Bearer x")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Contains(t, w.Header().Get("Cache-Control"), "no-store")
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"http://localhost:3000"}))
	r.GET("/api/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/api/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func rateLimitedEngine(rl *RateLimiter, limit int) *gin.Engine {
	r := gin.New()
	r.Use(rl.Middleware(RateLimitConfig{Limit: limit, Window: time.Minute, KeyPrefix: "rl:test:"}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func hit(r *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitInMemory(t *testing.T) {
	r := rateLimitedEngine(NewRateLimiter(nil, nil), 2)

	first := hit(r)
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	assert.Equal(t, http.StatusOK, hit(r).Code)

	blocked := hit(r)
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.Equal(t, "0", blocked.Header().Get("X-RateLimit-Remaining"))
	retry, err := strconv.Atoi(blocked.Header().Get("Retry-After"))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, retry, 1)
}

func TestRateLimitRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	r := rateLimitedEngine(NewRateLimiter(client, nil), 1)

	assert.Equal(t, http.StatusOK, hit(r).Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(r).Code)

	ttl := mr.TTL("rl:test:192.0.2.1")
	assert.Greater(t, ttl, time.Duration(0))

	mr.FastForward(time.Minute + time.Second)
	assert.Equal(t, http.StatusOK, hit(r).Code)
}

func TestRateLimitRedisFallsBackWhenUnavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	mr.Close()

	r := rateLimitedEngine(NewRateLimiter(client, nil), 1)
	assert.Equal(t, http.StatusOK, hit(r).Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(r).Code)
}

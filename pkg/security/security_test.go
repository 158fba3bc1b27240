package security

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "j***@example.com", MaskEmail("jane@example.com"))
	assert.Equal(t, "***", MaskEmail("a@"))
	assert.Equal(t, "***@b.c", MaskEmail("a@b.c"))
}

func TestSecurityLogger_LevelsAndMasking(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sl := NewSecurityLoggerWithZap(zap.New(core), "yuva-hire", "test")

	sl.LogLoginFailed(context.Background(), "jane@example.com", "10.0.0.1", "curl", "req-1", "invalid_credentials")
	sl.LogUserRegistered(context.Background(), "sam@x.edu", "student", "10.0.0.2", "req-2")

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "login_failed", entries[0].Message)
	assert.Equal(t, "j***@example.com", entries[0].ContextMap()["subject_value"])
	assert.Equal(t, "req-1", entries[0].ContextMap()["request_id"])

	assert.Equal(t, "WARN", entries[0].ContextMap()["severity"])

	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, "user_registered", entries[1].Message)
}

func TestGetSeverity(t *testing.T) {
	assert.Equal(t, SeverityINFO, GetSeverity(EventLoginSuccess))
	assert.Equal(t, SeverityHIGH, GetSeverity(EventLoginBlocked))
	assert.Equal(t, SeverityWARN, GetSeverity(EventType("something_new")))
	assert.Equal(t, zapcore.ErrorLevel, GetSeverity(EventUnauthorizedAccess).level())
}

func TestLoginTracker_BlocksAfterMaxAttempts(t *testing.T) {
	_, client := newTestRedis(t)
	ctx := context.Background()

	cfg := DefaultLoginTrackerConfig()
	cfg.MaxAttempts = 3
	lt := NewLoginTracker(client, cfg, NopLogger())

	for i := 1; i < 3; i++ {
		blocked, count, err := lt.RecordFailedAttempt(ctx, "s@x.edu", "1.2.3.4", "ua", "r")
		require.NoError(t, err)
		assert.False(t, blocked)
		assert.Equal(t, i, count)
	}

	isBlocked, err := lt.IsBlocked(ctx, "s@x.edu", "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, isBlocked)

	blocked, count, err := lt.RecordFailedAttempt(ctx, "s@x.edu", "1.2.3.4", "ua", "r")
	require.NoError(t, err)
	assert.True(t, blocked)
	assert.Equal(t, 3, count)

	isBlocked, err = lt.IsBlocked(ctx, "s@x.edu", "")
	require.NoError(t, err)
	assert.True(t, isBlocked)

	// The IP block also covers other accounts from the same address.
	isBlocked, err = lt.IsBlocked(ctx, "other@x.edu", "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, isBlocked)
}

func TestLoginTracker_BlockExpires(t *testing.T) {
	mr, client := newTestRedis(t)
	ctx := context.Background()

	cfg := DefaultLoginTrackerConfig()
	cfg.MaxAttempts = 1
	cfg.BlockDuration = time.Minute
	lt := NewLoginTracker(client, cfg, nil)

	blocked, _, err := lt.RecordFailedAttempt(ctx, "s@x.edu", "", "ua", "r")
	require.NoError(t, err)
	require.True(t, blocked)

	mr.FastForward(2 * time.Minute)

	isBlocked, err := lt.IsBlocked(ctx, "s@x.edu", "")
	require.NoError(t, err)
	assert.False(t, isBlocked)
}

func TestLoginTracker_ClearAttempts(t *testing.T) {
	_, client := newTestRedis(t)
	ctx := context.Background()

	lt := NewLoginTracker(client, DefaultLoginTrackerConfig(), nil)
	_, _, err := lt.RecordFailedAttempt(ctx, "s@x.edu", "9.9.9.9", "ua", "r")
	require.NoError(t, err)

	require.NoError(t, lt.ClearAttempts(ctx, "s@x.edu", "9.9.9.9"))

	_, count, err := lt.RecordFailedAttempt(ctx, "s@x.edu", "9.9.9.9", "ua", "r")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestLoginTracker_NilClientFailsOpen(t *testing.T) {
	ctx := context.Background()
	lt := NewLoginTracker(nil, DefaultLoginTrackerConfig(), nil)

	for i := 0; i < 10; i++ {
		blocked, _, err := lt.RecordFailedAttempt(ctx, "s@x.edu", "1.1.1.1", "ua", "r")
		require.NoError(t, err)
		assert.False(t, blocked)
	}
	isBlocked, err := lt.IsBlocked(ctx, "s@x.edu", "1.1.1.1")
	require.NoError(t, err)
	assert.False(t, isBlocked)
	assert.NoError(t, lt.ClearAttempts(ctx, "s@x.edu", "1.1.1.1"))
}

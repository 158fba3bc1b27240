package usecase

import (
	"context"
	"time"

	"yuva-hire-backend/internal/domain"
	"yuva-hire-backend/pkg/logger"
)

const healthTimeout = 2 * time.Second

type healthUsecase struct {
	storage domain.HealthChecker
	cache   domain.HealthChecker
}

// NewHealthUsecase reports on the storage backend and, when cache is non-nil,
// on Redis. The API stays "ok" when only the cache is down since every
// Redis-backed feature fails open.
func NewHealthUsecase(storage, cache domain.HealthChecker) domain.HealthUsecase {
	return &healthUsecase{storage: storage, cache: cache}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	result := map[string]string{
		"status":  "ok",
		"storage": "ok",
		"redis":   "disabled",
	}

	if u.storage != nil {
		if err := ping(ctx, u.storage); err != nil {
			logger.Log.Error("storage health check failed", "error", err)
			result["storage"] = "unavailable"
			result["status"] = "degraded"
		}
	}

	if u.cache != nil {
		result["redis"] = "ok"
		if err := ping(ctx, u.cache); err != nil {
			logger.Log.Warn("redis health check failed", "error", err)
			result["redis"] = "unavailable"
		}
	}
	return result
}

func ping(ctx context.Context, c domain.HealthChecker) error {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()
	return c.Ping(ctx)
}

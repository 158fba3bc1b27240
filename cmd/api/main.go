package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"yuva-hire-backend/config"
	_ "yuva-hire-backend/docs" // Important for Swagger
	v1 "yuva-hire-backend/internal/delivery/http/v1"
	"yuva-hire-backend/internal/domain"
	"yuva-hire-backend/internal/repository/memory"
	"yuva-hire-backend/internal/repository/postgres"
	"yuva-hire-backend/internal/usecase"
	"yuva-hire-backend/pkg/auth"
	"yuva-hire-backend/pkg/database"
	"yuva-hire-backend/pkg/logger"
	"yuva-hire-backend/pkg/redis"
	"yuva-hire-backend/pkg/security"
	"yuva-hire-backend/pkg/validation"

	goredis "github.com/redis/go-redis/v9"
)

// repositories is the storage backend selected at startup.
type repositories struct {
	users        domain.UserRepository
	jobs         domain.JobRepository
	applications domain.ApplicationRepository
	candidates   domain.CandidateRepository
	articles     domain.ArticleRepository
	health       domain.HealthChecker
	close        func()
}

// @title           Yuva Hire API
// @version         1.0
// @description     College job board: job postings, applications, candidate directory and career articles.
// @host            localhost:8080
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting Yuva Hire backend", "port", cfg.Port, "env", cfg.AppEnv, "storage", cfg.StorageDriver)

	secLog := security.NewSecurityLogger("yuva-hire-api", cfg.AppEnv)
	defer func() { _ = secLog.Sync() }()

	ctx := context.Background()

	// 3. Setup Storage
	repos, err := openStorage(ctx, cfg)
	if err != nil {
		logger.Log.Error("Failed to initialise storage", "error", err)
		os.Exit(1)
	}
	defer repos.close()

	// 4. Setup Redis (optional)
	var redisClient *goredis.Client
	var cacheChecker domain.HealthChecker
	redisClient, err = redis.New(ctx, redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
	switch {
	case err == nil:
		defer redisClient.Close()
		cacheChecker = redis.Checker{Client: redisClient}
		logger.Log.Info("Redis connected")
	case errors.Is(err, redis.ErrNotConfigured):
		logger.Log.Info("Redis disabled; rate limiting runs in memory and failed-login blocking is off")
	default:
		logger.Log.Warn("Redis unavailable; continuing without it", "error", err)
		redisClient = nil
	}

	// 5. Setup Auth
	hasher, err := auth.NewPasswordHasher(cfg.BcryptCost)
	if err != nil {
		logger.Log.Error("Invalid bcrypt cost", "error", err)
		os.Exit(1)
	}
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)

	trackerCfg := security.DefaultLoginTrackerConfig()
	trackerCfg.MaxAttempts = cfg.FailedLoginMaxAttempts
	trackerCfg.BlockDuration = time.Duration(cfg.FailedLoginBlockMinutes) * time.Minute
	loginTracker := security.NewLoginTracker(redisClient, trackerCfg, secLog)

	// 6. Setup UseCases
	validate := validation.New()
	authUC := usecase.NewAuthUsecase(usecase.AuthDeps{
		Users:      repos.users,
		Candidates: repos.candidates,
		Tokens:     tokens,
		Hasher:     hasher,
		Guard:      loginTracker,
		SecLog:     secLog,
		Validate:   validate,
	})
	jobUC := usecase.NewJobUsecase(repos.jobs, validate)
	applicationUC := usecase.NewApplicationUsecase(repos.applications, repos.jobs)
	candidateUC := usecase.NewCandidateUsecase(repos.candidates, repos.applications, validate)
	articleUC := usecase.NewArticleUsecase(repos.articles, validate)
	dashboardUC := usecase.NewDashboardUsecase(repos.jobs, repos.applications, repos.users, repos.candidates)
	healthUC := usecase.NewHealthUsecase(repos.health, cacheChecker)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		JobUC:         jobUC,
		ApplicationUC: applicationUC,
		CandidateUC:   candidateUC,
		ArticleUC:     articleUC,
		DashboardUC:   dashboardUC,
		HealthUC:      healthUC,
		Redis:         redisClient,
		SecLog:        secLog,
		Config:        cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

func openStorage(ctx context.Context, cfg *config.Config) (*repositories, error) {
	if cfg.StorageDriver == config.StorageMemory {
		logger.Log.Warn("Using in-memory storage; data is lost on restart")
		store := memory.NewStore()
		return &repositories{
			users:        store.Users(),
			jobs:         store.Jobs(),
			applications: store.Applications(),
			candidates:   store.Candidates(),
			articles:     store.Articles(),
			health:       store,
			close:        func() {},
		}, nil
	}

	pool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations {
		if err := database.RunPoolMigrations(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		logger.Log.Info("Database migrations applied")
	}

	return &repositories{
		users:        postgres.NewUserRepository(pool),
		jobs:         postgres.NewJobRepository(pool),
		applications: postgres.NewApplicationRepository(pool),
		candidates:   postgres.NewCandidateRepository(pool),
		articles:     postgres.NewArticleRepository(pool),
		health:       database.PoolChecker{Pool: pool},
		close:        pool.Close,
	}, nil
}

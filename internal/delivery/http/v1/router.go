package v1

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"yuva-hire-backend/config"
	"yuva-hire-backend/internal/delivery/http/middleware"
	"yuva-hire-backend/internal/domain"
	"yuva-hire-backend/pkg/apperror"
	"yuva-hire-backend/pkg/logger"
	"yuva-hire-backend/pkg/security"
	"yuva-hire-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	JobUC         domain.JobUsecase
	ApplicationUC domain.ApplicationUsecase
	CandidateUC   domain.CandidateUsecase
	ArticleUC     domain.ArticleUsecase
	DashboardUC   domain.DashboardUsecase
	HealthUC      domain.HealthUsecase
	// Redis backs the rate limiter when set; nil uses process memory.
	Redis  *goredis.Client
	SecLog *security.SecurityLogger
	Config *config.Config
}

// Routes are the route groups handlers register on, one per access level.
type Routes struct {
	Public  *gin.RouterGroup
	Authed  *gin.RouterGroup
	Admin   *gin.RouterGroup
	Student *gin.RouterGroup
}

func NewRouter(deps RouterDeps) *gin.Engine {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}
	if deps.SecLog == nil {
		deps.SecLog = security.NopLogger()
	}

	cfg := deps.Config
	window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second
	limiter := middleware.NewRateLimiter(deps.Redis, deps.SecLog)

	r := gin.New()
	// ClientIP keys rate limits and security logs, so X-Forwarded-For only
	// counts when it comes from a configured proxy.
	if err := r.SetTrustedProxies(cfg.TrustedProxyList()); err != nil {
		logger.Log.Warn("Invalid trusted proxies; trusting none", "error", err)
		_ = r.SetTrustedProxies(nil)
	}

	// Global Middlewares
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLogger())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins()))
	r.Use(limiter.Middleware(middleware.GlobalRateLimitConfig(cfg.RateLimitGlobalThreshold, window)))
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	NewHealthHandler(api, deps.HealthUC)
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authed := api.Group("")
	authed.Use(middleware.RequireAuth(deps.AuthUC, deps.SecLog))

	admin := authed.Group("")
	admin.Use(middleware.RequireRole(deps.SecLog, domain.RoleAdmin))

	student := authed.Group("")
	student.Use(middleware.RequireRole(deps.SecLog, domain.RoleStudent))

	routes := Routes{Public: api, Authed: authed, Admin: admin, Student: student}
	loginLimit := limiter.Middleware(middleware.LoginRateLimitConfig(cfg.RateLimitLoginThreshold, window))

	NewAuthHandler(routes, deps.AuthUC, loginLimit)
	NewJobHandler(routes, deps.JobUC, deps.ApplicationUC)
	NewApplicationHandler(routes, deps.ApplicationUC)
	NewCandidateHandler(routes, deps.CandidateUC)
	NewArticleHandler(routes, deps.ArticleUC)
	NewDashboardHandler(routes, deps.DashboardUC)

	r.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperror.NotFound("Route not found"))
	})

	return r
}

// bindJSON binds the request body and records a 400 on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			_ = c.Error(apperror.BadRequest(validation.Message(err)))
		} else {
			_ = c.Error(apperror.BadRequest("Invalid request body"))
		}
		return false
	}
	return true
}

func queryInt(c *gin.Context, key string) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return n
}

func currentUser(c *gin.Context) *domain.User {
	return middleware.CurrentUser(c)
}

func created(c *gin.Context, obj any) {
	c.JSON(http.StatusCreated, obj)
}

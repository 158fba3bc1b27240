package config

import (
	"errors"
	"log"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	// Only used outside production when JWT_SECRET is unset.
	devJWTSecret = "yuva-hire-development-secret-do-not-use-in-prod"
)

type Config struct {
	Port          string
	AppEnv        string
	LogLevel      string
	DBUrl         string
	StorageDriver string
	RunMigrations bool
	// Token & password hashing
	JWTSecret  string
	JWTTTL     time.Duration
	BcryptCost int
	// Comma-separated list of allowed CORS origins
	FrontendURL string
	// Comma-separated IPs or CIDRs whose X-Forwarded-For is honoured; empty trusts none
	TrustedProxies string
	// Redis Configuration
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitLoginThreshold  int
	RateLimitGlobalThreshold int
	FailedLoginBlockMinutes  int
	FailedLoginMaxAttempts   int
}

func LoadConfig() (*Config, error) {
	// .env is optional; real deployments inject the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		AppEnv:        strings.ToLower(getEnv("APP_ENV", EnvDevelopment)),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		DBUrl:         getEnv("DATABASE_URL", ""),
		StorageDriver: strings.ToLower(getEnv("STORAGE_DRIVER", StoragePostgres)),
		RunMigrations: getEnvBool("RUN_MIGRATIONS", true),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		JWTTTL:        time.Duration(getEnvInt("JWT_TTL_HOURS", 168)) * time.Hour,
		BcryptCost:    getEnvInt("BCRYPT_COST", 12),
		FrontendURL:   getEnv("FRONTEND_URL", "http://localhost:3000"),
		// Proxy Configuration
		TrustedProxies: getEnv("TRUSTED_PROXIES", ""),
		// Redis Configuration
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),    // 1 minute window
		RateLimitLoginThreshold:  getEnvInt("RATE_LIMIT_LOGIN_THRESHOLD", 10),   // 10 login attempts per window
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100), // 100 requests per window
		FailedLoginBlockMinutes:  getEnvInt("FAILED_LOGIN_BLOCK_MINUTES", 15),   // 15 minute block
		FailedLoginMaxAttempts:   getEnvInt("FAILED_LOGIN_MAX_ATTEMPTS", 5),     // 5 failed attempts before block
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET is missing. Using the development signing key.")
		cfg.JWTSecret = devJWTSecret
	}

	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// Validate rejects configurations that would boot into an unsafe or unusable state.
func (c *Config) Validate() error {
	if c.IsProduction() && c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required in production")
	}
	switch c.StorageDriver {
	case StoragePostgres:
		if c.DBUrl == "" {
			return errors.New("DATABASE_URL is required when STORAGE_DRIVER=postgres")
		}
	case StorageMemory:
	default:
		return errors.New("STORAGE_DRIVER must be one of: postgres, memory")
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return errors.New("BCRYPT_COST must be between 4 and 31")
	}
	if c.JWTTTL <= 0 {
		return errors.New("JWT_TTL_HOURS must be positive")
	}
	for _, p := range c.TrustedProxyList() {
		if net.ParseIP(p) == nil {
			if _, _, err := net.ParseCIDR(p); err != nil {
				return errors.New("TRUSTED_PROXIES must list IP addresses or CIDR ranges")
			}
		}
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == EnvProduction
}

// AllowedOrigins splits FrontendURL into trimmed origins without trailing slashes.
func (c *Config) AllowedOrigins() []string {
	return splitList(c.FrontendURL, "/")
}

// TrustedProxyList is nil when no proxy is configured, so gin falls back to
// the socket address for ClientIP.
func (c *Config) TrustedProxyList() []string {
	return splitList(c.TrustedProxies, "")
}

func splitList(value, trimSuffix string) []string {
	var out []string
	for _, v := range strings.Split(value, ",") {
		v = strings.TrimSpace(v)
		if trimSuffix != "" {
			v = strings.TrimRight(v, trimSuffix)
		}
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

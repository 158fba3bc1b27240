package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("APP_ENV", "development")
	t.Setenv("TRUSTED_PROXIES", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, StorageMemory, cfg.StorageDriver)
	assert.Equal(t, 168*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, devJWTSecret, cfg.JWTSecret)
	assert.False(t, cfg.IsProduction())
	assert.Nil(t, cfg.TrustedProxyList())
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_TTL_HOURS", "24")
	t.Setenv("BCRYPT_COST", "10")
	t.Setenv("RATE_LIMIT_GLOBAL_THRESHOLD", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, 100, cfg.RateLimitGlobalThreshold)
}

func TestTrustedProxyList(t *testing.T) {
	cfg := &Config{TrustedProxies: " 10.0.0.1 ,, 192.168.0.0/16"}
	assert.Equal(t, []string{"10.0.0.1", "192.168.0.0/16"}, cfg.TrustedProxyList())
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			AppEnv:        EnvDevelopment,
			StorageDriver: StoragePostgres,
			DBUrl:         "postgres://localhost/yuva",
			BcryptCost:    12,
			JWTTTL:        time.Hour,
		}
	}

	assert.NoError(t, base().Validate())

	prod := base()
	prod.AppEnv = EnvProduction
	assert.Error(t, prod.Validate())
	prod.JWTSecret = "x"
	assert.NoError(t, prod.Validate())

	noDB := base()
	noDB.DBUrl = ""
	assert.Error(t, noDB.Validate())
	noDB.StorageDriver = StorageMemory
	assert.NoError(t, noDB.Validate())

	badDriver := base()
	badDriver.StorageDriver = "sqlite"
	assert.Error(t, badDriver.Validate())

	badCost := base()
	badCost.BcryptCost = 64
	assert.Error(t, badCost.Validate())

	proxies := base()
	proxies.TrustedProxies = "10.0.0.1, 172.16.0.0/12"
	assert.NoError(t, proxies.Validate())
	proxies.TrustedProxies = "10.0.0.1,load-balancer"
	assert.Error(t, proxies.Validate())
}

func TestAllowedOrigins(t *testing.T) {
	cfg := &Config{FrontendURL: "http://localhost:3000/, https://yuva.example.com ,,"}
	assert.Equal(t, []string{"http://localhost:3000", "https://yuva.example.com"}, cfg.AllowedOrigins())
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "go-auth-backend", cfg.AppName)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Empty(t, cfg.AdminToken, "admin endpoints default to disabled")
	assert.Empty(t, cfg.RedisAddr, "identity cache defaults to disabled")
	assert.False(t, cfg.DebugMetricsEnabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "memory")
	t.Setenv("JWT_SECRET", "prod-secret")
	t.Setenv("JWT_TOKEN_TTL", "1h")
	t.Setenv("ADMIN_TOKEN", "op-token")
	t.Setenv("DB_MAX_CONNS", "25")
	t.Setenv("DEBUG_METRICS_ENABLED", "true")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "memory", cfg.DBDriver)
	assert.Equal(t, "prod-secret", cfg.JWTSecret)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, "op-token", cfg.AdminToken)
	assert.Equal(t, int32(25), cfg.DBMaxConns)
	assert.True(t, cfg.DebugMetricsEnabled)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("JWT_TOKEN_TTL", "not-a-duration")
	t.Setenv("DB_MAX_CONNS", "lots")
	t.Setenv("DEBUG_METRICS_ENABLED", "maybe")

	cfg := Load()

	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, int32(10), cfg.DBMaxConns)
	assert.False(t, cfg.DebugMetricsEnabled)
}

func TestPostgresDSN(t *testing.T) {
	t.Setenv("DB_USER", "u")
	t.Setenv("DB_PASSWORD", "p")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_NAME", "auth")
	t.Setenv("DB_SSLMODE", "require")

	cfg := Load()
	assert.Equal(t, "postgres://u:p@db:5433/auth?sslmode=require", cfg.PostgresDSN())
}

func TestCORSOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com ,")

	cfg := Load()
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSOrigins())
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SCHOOLS_ORIGIN", "http://static.local")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 8, cfg.LoaderConcurrency)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.Equal(t, "0 */15 * * * *", cfg.ReloadCron)
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.DB.Enabled())
	assert.Empty(t, cfg.JWTAccessSecret)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SCHOOLS_ORIGIN", "http://static.local")
	t.Setenv("LOADER_CONCURRENCY", "2")
	t.Setenv("HTTP_TIMEOUT", "1500ms")
	t.Setenv("CACHE_TTL", "not a duration")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("DB_HOST", "postgres")
	t.Setenv("DB_PORT", "6543")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.LoaderConcurrency)
	assert.Equal(t, 1500*time.Millisecond, cfg.HTTPTimeout)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.True(t, cfg.Redis.Enabled())
	assert.True(t, cfg.DB.Enabled())
	assert.Equal(t, 6543, cfg.DB.Port)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("SCHOOLS_ORIGIN", "")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("SCHOOLS_ORIGIN", "http://static.local")
	t.Setenv("LOADER_CONCURRENCY", "0")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoadDotEnv_SkippedWhenPrepared(t *testing.T) {
	t.Setenv("ENV_CHEK", "1")
	assert.NoError(t, LoadDotEnv("does-not-exist.env"))
}

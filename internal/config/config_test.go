package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "user")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "membership")
	t.Setenv("ADMIN_SECRET", "admin-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.RESTAddr())
	assert.Equal(t, "0.0.0.0:8081", cfg.GraphQLAddr())
	assert.Equal(t, "postgres://user:secret@db:5432/membership?sslmode=disable", cfg.GetDSN())
	assert.Equal(t, int32(10), cfg.DatabaseMaxConns)
	assert.Equal(t, int64(4096), cfg.JSONLimit)
	assert.Equal(t, 30*time.Second, cfg.LockTTL)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.UseRedisLock())
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("REST_PORT", "9000")
	t.Setenv("JSON_LIMIT", "1024")
	t.Setenv("LOCK_TTL", "5s")
	t.Setenv("REDIS_ADDR", "redis:6379")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.RESTAddr())
	assert.Equal(t, int64(1024), cfg.JSONLimit)
	assert.Equal(t, 5*time.Second, cfg.LockTTL)
	assert.True(t, cfg.UseRedisLock())
}

func TestLoad_EnvFile(t *testing.T) {
	setRequired(t)
	t.Setenv("LOG_FORMAT", "console")

	t.Cleanup(func() { _ = os.Unsetenv("GRAPHQL_PORT") })

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("GRAPHQL_PORT=7070\nLOG_FORMAT=json\n"), 0o600))

	cfg, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:7070", cfg.GraphQLAddr())
	// godotenv не перезаписывает уже выставленные переменные
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoad_MissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("ADMIN_SECRET", "")
	require.NoError(t, os.Unsetenv("ADMIN_SECRET"))

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ADMIN_SECRET")
}

func TestLoad_InvalidValue(t *testing.T) {
	setRequired(t)
	t.Setenv("LOCK_TTL", "soon")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

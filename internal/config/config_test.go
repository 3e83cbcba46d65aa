package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Equal(t, ":5000", cfg.Addr())
	assert.Equal(t, "house_points", cfg.Database.Name)
	assert.Equal(t, 168*time.Hour, cfg.SessionTTL())
	assert.Len(t, cfg.CORS.Origins, 3)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
server:
  port: 8080
session:
  secret: file-secret
  ttl_hours: 24
cors:
  origins:
    - https://example.test
database:
  name: points_test
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg := Load(path)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "file-secret", cfg.Session.Secret)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL())
	assert.Equal(t, []string{"https://example.test"}, cfg.CORS.Origins)
	assert.Equal(t, "points_test", cfg.Database.Name)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SECRET_KEY", "env-secret")
	t.Setenv("DB_NAME", "env_db")
	t.Setenv("CORS_ORIGINS", "https://a.test,https://b.test")

	cfg := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, "env-secret", cfg.Session.Secret)
	assert.Equal(t, "env_db", cfg.Database.Name)
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.CORS.Origins)
}

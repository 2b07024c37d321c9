package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FileAndDefaults(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  address: ":9090"
  read_timeout: 5s
jwt:
  secret: file-secret
cache:
  ttl: 1m
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "file-secret", cfg.JWT.Secret)
	assert.Equal(t, time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 16, cfg.Cache.SizeMB)
	assert.Equal(t, "0 3 * * *", cfg.Leaderboard.RefreshSpec)
	assert.Equal(t, "myo_fitness", cfg.Database.Name)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
	assert.True(t, cfg.Log.ToStdout)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("DATABASE_NAME", "myo_test")
	t.Setenv("LOG_JSON", "true")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, "myo_test", cfg.Database.Name)
	assert.True(t, cfg.Log.JSON)
}

func TestLoadConfig_MissingSecret(t *testing.T) {
	_, err := LoadConfig(t.TempDir())
	assert.ErrorIs(t, err, ErrMissingSecret)
}

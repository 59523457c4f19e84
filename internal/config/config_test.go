package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.Client.ServerURL)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "timestamp", cfg.Sync.Strategy)
	assert.Equal(t, 3, cfg.Sync.MaxRetries)
	assert.Equal(t, 30*time.Second, cfg.Sync.GetInterval())
	assert.Equal(t, 5*time.Second, cfg.Sync.GetGraceDelay())
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfig_FromFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	content := `
client:
  server_url: http://example.com:9090
  db_path: /tmp/test.db
sync:
  interval: 1m
  max_retries: 5
  strategy: server-wins
logging:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://example.com:9090", cfg.Client.ServerURL)
	assert.Equal(t, "/tmp/test.db", cfg.Client.DBPath)
	assert.Equal(t, time.Minute, cfg.Sync.GetInterval())
	assert.Equal(t, 5, cfg.Sync.MaxRetries)
	assert.Equal(t, "server-wins", cfg.Sync.Strategy)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Незаданные значения остаются дефолтными
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoadConfig_InvalidFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o600))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestSyncConfig_DurationFallbacks(t *testing.T) {
	c := SyncConfig{Interval: "bogus", GraceDelay: ""}
	assert.Equal(t, 30*time.Second, c.GetInterval())
	assert.Equal(t, 5*time.Second, c.GetGraceDelay())
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "brand_history.db", cfg.Database.Path)
	assert.Equal(t, "mock", cfg.AI.Provider)
	assert.Equal(t, 3*time.Second, cfg.GenerateLatency())
	assert.Equal(t, time.Second, cfg.ChatLatency())
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
server:
  port: 9999
database:
  driver: postgres
  host: db.local
  port: 5432
  user: psy
  password: secret
  name: brands
ai:
  latencyMs: 0
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "host=db.local port=5432 user=psy password=secret dbname=brands sslmode=disable", cfg.PostgresDSN())

	// unset sections keep their defaults
	assert.Equal(t, "web/static", cfg.Assets.Dir)
	assert.Equal(t, "mock", cfg.AI.Provider)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [oops"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "application.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	// when
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	// then
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	// given
	path := writeConfig(t, `
port: 9090
server:
  shutdowntimeout: 3s
planner:
  activitiesperday: 3
  selectionmode: no_repeat
catalog:
  path: /etc/tripplanner/catalog.yaml
db:
  enabled: true
  host: db.internal
`)

	// when
	cfg, err := Load(path)

	// then
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 3, cfg.Planner.ActivitiesPerDay)
	assert.Equal(t, "no_repeat", cfg.Planner.SelectionMode)
	assert.Equal(t, 30, cfg.Planner.MaxDuration)
	assert.Equal(t, "/etc/tripplanner/catalog.yaml", cfg.Catalog.Path)
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	// given
	path := writeConfig(t, "port: 9090\n")
	t.Setenv("TRIPPLANNER_PORT", "7070")
	t.Setenv("TRIPPLANNER_DB_PASS", "secret")
	t.Setenv("TRIPPLANNER_PLANNER_MAXDURATION", "14")
	t.Setenv("TRIPPLANNER_CORS_ALLOWEDORIGINS", "https://a.example, https://b.example,")

	// when
	cfg, err := Load(path)

	// then
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, "secret", cfg.Database.Pass)
	assert.Equal(t, 14, cfg.Planner.MaxDuration)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Cors.AllowedOrigins)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := writeConfig(t, "port: [unclosed\n")

	_, err := Load(path)

	assert.Error(t, err)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		message string
	}{
		{"port", "port: 0\n", "port must be between"},
		{"activities per day", "planner:\n  activitiesperday: 0\n", "planner.activitiesperday"},
		{"max duration", "planner:\n  maxduration: -1\n", "planner.maxduration"},
		{"selection mode", "planner:\n  selectionmode: shuffle\n", "planner.selectionmode"},
		{"rate limit", "ratelimit:\n  requestspersecond: 0\n", "ratelimit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitializeRestConfig_Defaults(t *testing.T) {
	cfg, err := InitializeRestConfig("")
	require.NoError(t, err)

	require.Equal(t, "8000", cfg.Port)
	require.Equal(t, SqliteDbType, cfg.Database.Type)
	require.Equal(t, "db.db3", cfg.Database.DSN)
	require.Equal(t, DefaultUserAgent, cfg.Discovery.UserAgent)
	require.Contains(t, cfg.Index.InitialInventories, "https://docs.python.org/3/objects.inv")
}

func TestInitializeRestConfig_DatabaseURLOverride(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://catfind:secret@db/catfind")

	cfg, err := InitializeRestConfig("")
	require.NoError(t, err)

	require.Equal(t, PostgresDbType, cfg.Database.Type)
	require.Equal(t, "catfind", cfg.Database.DBName)
	require.Contains(t, cfg.Database.DSN, "host=db")
	require.Contains(t, cfg.Database.DSN, "password=secret")
}

func TestInitializeRestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("RTD_TOKEN", "tok-123")

	cfg, err := InitializeRestConfig("")
	require.NoError(t, err)

	require.Equal(t, "9000", cfg.Port)
	require.Equal(t, "tok-123", cfg.Discovery.RTDToken)
}

func TestInitializeRestConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.yaml")
	content := []byte(`
port: "8080"
logger:
  log_level: debug
  log_type: console
index:
  reindex_schedule: "@daily"
  stale_after_hours: 48
`)
	require.NoError(t, os.WriteFile(path, content, 0600))

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, LogLevelDebug, cfg.Logger.LogLevel)
	require.Equal(t, "@daily", cfg.Index.ReindexSchedule)
	require.Equal(t, 48, cfg.Index.StaleAfterHours)
}

func TestInitializeRestConfig_InvalidDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "mysql://root@localhost/catfind")

	_, err := InitializeRestConfig("")
	require.Error(t, err)
}

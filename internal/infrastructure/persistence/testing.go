//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"

	"github.com/AstraLuma/catfind/internal/domain/entries"
	"github.com/AstraLuma/catfind/internal/domain/projects"
	"github.com/AstraLuma/catfind/internal/infrastructure/persistence/models"
	"github.com/AstraLuma/catfind/internal/pkg/config"
	"github.com/AstraLuma/catfind/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB          *gorm.DB
	ProjectRepo projects.ProjectRepository
	EntryRepo   entries.EntryRepository
}

// SetupTestDB initializes a test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
		require.NoError(t, CreateDatabase(adminDSN, uniqueDBName))
		settings = config.DatabaseSettings{
			Type:   config.PostgresDbType,
			DSN:    "user=postgres password=postgres host=localhost port=5432 sslmode=disable dbname=" + uniqueDBName,
			DBName: uniqueDBName,
		}
		cleanupFunc = func() {
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	require.NoError(t, db.AutoMigrate(&models.ProjectModel{}, &models.EntryModel{}),
		"Failed to migrate schema")

	log := testutil.SetupTestLogger(t)

	projectRepo, err := NewGormProjectRepository(db, log)
	require.NoError(t, err)

	entryRepo, err := NewGormEntryRepository(db, log)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	return &TestContext{
		DB:          db,
		ProjectRepo: projectRepo,
		EntryRepo:   entryRepo,
	}
}

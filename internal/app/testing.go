//go:build integration
// +build integration

package app

import (
	"context"
	"fmt"
	"testing"

	"github.com/AstraLuma/catfind/internal/domain/entries"
	"github.com/AstraLuma/catfind/internal/domain/inventory"
	"github.com/AstraLuma/catfind/internal/domain/projects"
	"github.com/AstraLuma/catfind/internal/infrastructure/persistence"
	"github.com/AstraLuma/catfind/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// StubLoader serves canned inventories keyed by the requested URL. Redirects
// are modeled by registering an inventory whose URI differs from its key.
type StubLoader struct {
	Inventories map[string]*inventory.Inventory
}

func (l *StubLoader) Load(_ context.Context, uri string) (*inventory.Inventory, error) {
	inv, ok := l.Inventories[uri]
	if !ok {
		return nil, fmt.Errorf("no inventory at %s", uri)
	}
	return inv, nil
}

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	LookupService          entries.LookupService
	IndexService           projects.IndexService
	ProjectMetadataService projects.ProjectMetadataService

	Loader    *StubLoader
	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	loader := &StubLoader{Inventories: map[string]*inventory.Inventory{}}

	indexService, err := NewIndexService(loader, dbContext.ProjectRepo, dbContext.EntryRepo, logger)
	require.NoError(t, err, "Failed to create IndexService")

	lookupService, err := NewLookupService(dbContext.EntryRepo, logger)
	require.NoError(t, err, "Failed to create LookupService")

	projectMetadataService, err := NewProjectMetadataService(dbContext.ProjectRepo, logger)
	require.NoError(t, err, "Failed to create ProjectMetadataService")

	return &TestServices{
		LookupService:          lookupService,
		IndexService:           indexService,
		ProjectMetadataService: projectMetadataService,
		Loader:                 loader,
		DBContext:              dbContext,
	}
}

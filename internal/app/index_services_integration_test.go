//go:build integration
// +build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/AstraLuma/catfind/internal/domain/entries"
	"github.com/AstraLuma/catfind/internal/domain/inventory"
	"github.com/AstraLuma/catfind/internal/domain/projects"
	"github.com/AstraLuma/catfind/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testInvURL = "https://demo.example.com/objects.inv"

func demoInventory(items ...inventory.Item) *inventory.Inventory {
	return &inventory.Inventory{
		ProjectName: "demo",
		Version:     "1.0",
		URI:         testInvURL,
		Items:       items,
	}
}

func demoItem(name string) inventory.Item {
	return inventory.Item{
		Name:     name,
		Type:     "py:function",
		Priority: 1,
		Location: "https://demo.example.com/api.html#" + name,
		Dispname: "-",
	}
}

func TestIndexService_Index_LoadFailure(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	_, err := services.IndexService.Index(ctx, testInvURL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load inventory "+testInvURL)
}

func TestIndexService_Index_CreatesProjectAndEntries(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	services.Loader.Inventories[testInvURL] = demoInventory(demoItem("demo.f"), demoItem("demo.g"))

	project, err := services.IndexService.Index(ctx, testInvURL)
	require.NoError(t, err)

	assert.Equal(t, "demo", project.Name)
	assert.Equal(t, "1.0", project.Version)
	assert.Equal(t, testInvURL, project.InvURL)
	require.NotNil(t, project.LastIndexed)

	found, err := services.LookupService.Lookup(ctx, "py", "demo.f")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "demo", found[0].ProjectName)
	assert.Equal(t, "py:function", found[0].Kind())
	assert.Equal(t, "https://demo.example.com/api.html#demo.f", found[0].URL)
}

func TestIndexService_Index_Reindex_PrunesRemovedEntries(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	services.Loader.Inventories[testInvURL] = demoInventory(demoItem("demo.f"), demoItem("demo.g"))
	_, err := services.IndexService.Index(ctx, testInvURL)
	require.NoError(t, err)

	services.Loader.Inventories[testInvURL] = demoInventory(demoItem("demo.f"))
	_, err = services.IndexService.Index(ctx, testInvURL)
	require.NoError(t, err)

	kept, err := services.LookupService.Lookup(ctx, "py", "demo.f")
	require.NoError(t, err)
	assert.Len(t, kept, 1)

	removed, err := services.LookupService.Lookup(ctx, "py", "demo.g")
	require.NoError(t, err)
	assert.Empty(t, removed)

	allProjects, err := services.ProjectMetadataService.List(ctx)
	require.NoError(t, err)
	assert.Len(t, allProjects, 1)
}

func TestIndexService_Index_MigratesMovedInventory(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	services.Loader.Inventories[testInvURL] = demoInventory(demoItem("demo.f"))
	first, err := services.IndexService.Index(ctx, testInvURL)
	require.NoError(t, err)

	// The host now redirects: the same request resolves to a new location.
	movedURL := "https://demo.example.com/en/stable/objects.inv"
	moved := demoInventory(demoItem("demo.f"))
	moved.URI = movedURL
	services.Loader.Inventories[testInvURL] = moved

	second, err := services.IndexService.Index(ctx, testInvURL)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, movedURL, second.InvURL)

	allProjects, err := services.ProjectMetadataService.List(ctx)
	require.NoError(t, err)
	require.Len(t, allProjects, 1)
	assert.Equal(t, movedURL, allProjects[0].InvURL)
}

func TestIndexService_ReindexStale(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	services.Loader.Inventories[testInvURL] = demoInventory(demoItem("demo.f"))

	longAgo := time.Now().UTC().Add(-30 * 24 * time.Hour)
	require.NoError(t, services.DBContext.ProjectRepo.Create(ctx, &projects.ProjectMeta{
		ID:          uuid.New().String(),
		InvURL:      testInvURL,
		Name:        "demo",
		LastIndexed: &longAgo,
	}))

	count, err := services.IndexService.ReindexStale(ctx, time.Now().UTC().Add(-7*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	found, err := services.LookupService.Lookup(ctx, entries.AnyDomain, "demo.f")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	// Freshly indexed projects are skipped on the next pass.
	count, err = services.IndexService.ReindexStale(ctx, time.Now().UTC().Add(-7*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestIndexService_ReindexStale_SkipsFailures(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	brokenURL := "https://broken.example.com/objects.inv"
	longAgo := time.Now().UTC().Add(-30 * 24 * time.Hour)
	require.NoError(t, services.DBContext.ProjectRepo.Create(ctx, &projects.ProjectMeta{
		ID:          uuid.New().String(),
		InvURL:      brokenURL,
		LastIndexed: &longAgo,
	}))
	require.NoError(t, services.DBContext.ProjectRepo.Create(ctx, &projects.ProjectMeta{
		ID:          uuid.New().String(),
		InvURL:      testInvURL,
		LastIndexed: &longAgo,
	}))
	services.Loader.Inventories[testInvURL] = demoInventory(demoItem("demo.f"))

	count, err := services.IndexService.ReindexStale(ctx, time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/AstraLuma/catfind/internal/domain/projects"
	"github.com/AstraLuma/catfind/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProject(invURL string) *projects.ProjectMeta {
	return &projects.ProjectMeta{
		ID:     uuid.New().String(),
		InvURL: invURL,
	}
}

func TestProjectRepository_CreateAndGetByInvURL(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	project := newTestProject("https://docs.python.org/3/objects.inv")
	project.Name = "CPython"
	project.Version = "3.12"

	require.NoError(t, tc.ProjectRepo.Create(ctx, project))

	got, err := tc.ProjectRepo.GetByInvURL(ctx, project.InvURL)
	require.NoError(t, err)
	assert.Equal(t, project.ID, got.ID)
	assert.Equal(t, "CPython", got.Name)
	assert.Nil(t, got.LastIndexed)
}

func TestProjectRepository_GetByInvURL_NotFound(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	_, err := tc.ProjectRepo.GetByInvURL(context.Background(), "https://nowhere.invalid/objects.inv")
	require.ErrorIs(t, err, projects.ErrNotFound)
}

func TestProjectRepository_Update(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	project := newTestProject("https://pip.pypa.io/en/stable/objects.inv")
	require.NoError(t, tc.ProjectRepo.Create(ctx, project))

	now := time.Now().UTC().Truncate(time.Second)
	project.Name = "pip"
	project.Version = "24.0"
	project.LastIndexed = &now
	require.NoError(t, tc.ProjectRepo.Update(ctx, project))

	got, err := tc.ProjectRepo.GetByInvURL(ctx, project.InvURL)
	require.NoError(t, err)
	assert.Equal(t, "pip", got.Name)
	require.NotNil(t, got.LastIndexed)
	assert.WithinDuration(t, now, *got.LastIndexed, time.Second)
}

func TestProjectRepository_ListStale(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	fresh := newTestProject("https://fresh.example/objects.inv")
	now := time.Now()
	fresh.LastIndexed = &now
	require.NoError(t, tc.ProjectRepo.Create(ctx, fresh))

	stale := newTestProject("https://stale.example/objects.inv")
	old := now.Add(-30 * 24 * time.Hour)
	stale.LastIndexed = &old
	require.NoError(t, tc.ProjectRepo.Create(ctx, stale))

	never := newTestProject("https://never.example/objects.inv")
	require.NoError(t, tc.ProjectRepo.Create(ctx, never))

	got, err := tc.ProjectRepo.ListStale(ctx, now.Add(-7*24*time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 2)

	urls := []string{got[0].InvURL, got[1].InvURL}
	assert.Contains(t, urls, stale.InvURL)
	assert.Contains(t, urls, never.InvURL)
}

func TestProjectRepository_List(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	require.NoError(t, tc.ProjectRepo.Create(ctx, newTestProject("https://b.example/objects.inv")))
	require.NoError(t, tc.ProjectRepo.Create(ctx, newTestProject("https://a.example/objects.inv")))

	got, err := tc.ProjectRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "https://a.example/objects.inv", got[0].InvURL)
}

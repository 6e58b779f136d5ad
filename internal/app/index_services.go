package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AstraLuma/catfind/internal/domain/entries"
	"github.com/AstraLuma/catfind/internal/domain/inventory"
	"github.com/AstraLuma/catfind/internal/domain/projects"
	"github.com/AstraLuma/catfind/internal/pkg/logger"
	"github.com/AstraLuma/catfind/internal/pkg/metrics"

	"github.com/google/uuid"
)

// indexService implements the IndexService interface for loading inventories
// into the database.
type indexService struct {
	loader      inventory.Loader
	projectRepo projects.ProjectRepository
	entryRepo   entries.EntryRepository
	logger      logger.Logger
}

// NewIndexService creates a new indexService instance
func NewIndexService(
	loader inventory.Loader,
	projectRepo projects.ProjectRepository,
	entryRepo entries.EntryRepository,
	logger logger.Logger,
) (projects.IndexService, error) {
	return &indexService{
		loader:      loader,
		projectRepo: projectRepo,
		entryRepo:   entryRepo,
		logger:      logger,
	}, nil
}

// Index loads the inventory at url and upserts its project and entries.
// Entries that existed before the run and were not seen again are pruned
// afterwards, so removed documentation objects drop out of lookups.
func (s *indexService) Index(ctx context.Context, url string) (*projects.ProjectMeta, error) {
	project, upserted, pruned, err := s.index(ctx, url)
	metrics.RecordIndexRun(err, upserted, pruned)
	return project, err
}

func (s *indexService) index(ctx context.Context, url string) (*projects.ProjectMeta, int, int64, error) {
	inv, err := s.loader.Load(ctx, url)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to load inventory %s: %w", url, err)
	}

	runStart := time.Now().UTC()

	project, err := s.resolveProject(ctx, url, inv)
	if err != nil {
		return nil, 0, 0, err
	}

	project.Name = inv.ProjectName
	project.Version = inv.Version
	project.LastIndexed = &runStart
	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, 0, 0, fmt.Errorf("failed to update project %s: %w", project.InvURL, err)
	}

	upserted := 0
	for _, item := range inv.Items {
		domain, role := item.DomainRole()
		entry := &entries.EntryMeta{
			ID:          uuid.New().String(),
			Domain:      domain,
			Role:        role,
			Name:        item.Name,
			Dispname:    item.Dispname,
			URL:         item.Location,
			ProjectID:   project.ID,
			LastIndexed: runStart,
		}
		if err := s.entryRepo.Upsert(ctx, entry); err != nil {
			return nil, upserted, 0, fmt.Errorf("failed to upsert entry %s: %w", item.Name, err)
		}
		upserted++
	}

	pruned, err := s.entryRepo.DeleteStaleByProject(ctx, project.ID, runStart)
	if err != nil {
		return nil, upserted, 0, fmt.Errorf("failed to prune entries of %s: %w", project.Name, err)
	}

	s.logger.Info("Indexed ", project.Name, " ", project.Version, ": ", upserted, " entries, ", pruned, " pruned")
	return project, upserted, pruned, nil
}

// resolveProject finds or creates the project an inventory belongs to. The
// inventory's post-redirect URI is the project identity; a project stored
// under the originally requested URL is migrated when the inventory moved.
func (s *indexService) resolveProject(ctx context.Context, requestedURL string, inv *inventory.Inventory) (*projects.ProjectMeta, error) {
	project, err := s.projectRepo.GetByInvURL(ctx, inv.URI)
	if err == nil {
		return project, nil
	}
	if !errors.Is(err, projects.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up project %s: %w", inv.URI, err)
	}

	if requestedURL != inv.URI {
		project, err = s.projectRepo.GetByInvURL(ctx, requestedURL)
		if err == nil {
			s.logger.Info("Project inventory moved from ", requestedURL, " to ", inv.URI)
			project.InvURL = inv.URI
			return project, nil
		}
		if !errors.Is(err, projects.ErrNotFound) {
			return nil, fmt.Errorf("failed to look up project %s: %w", requestedURL, err)
		}
	}

	project = &projects.ProjectMeta{
		ID:     uuid.New().String(),
		InvURL: inv.URI,
	}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project %s: %w", inv.URI, err)
	}
	return project, nil
}

// ReindexStale re-indexes every project whose last index run is older than
// olderThan. Failures are logged and skipped so one unreachable inventory
// does not block the rest.
func (s *indexService) ReindexStale(ctx context.Context, olderThan time.Time) (int, error) {
	staleProjects, err := s.projectRepo.ListStale(ctx, olderThan)
	if err != nil {
		return 0, fmt.Errorf("failed to list stale projects: %w", err)
	}

	reindexed := 0
	for _, project := range staleProjects {
		if ctx.Err() != nil {
			return reindexed, ctx.Err()
		}
		if _, err := s.Index(ctx, project.InvURL); err != nil {
			s.logger.Warn("Failed to re-index ", project.InvURL, ": ", err)
			continue
		}
		reindexed++
	}

	return reindexed, nil
}

// projectMetadataService implements the ProjectMetadataService interface for
// read access to indexed projects.
type projectMetadataService struct {
	projectRepo projects.ProjectRepository
	logger      logger.Logger
}

// NewProjectMetadataService creates a new projectMetadataService instance
func NewProjectMetadataService(projectRepo projects.ProjectRepository, logger logger.Logger) (projects.ProjectMetadataService, error) {
	return &projectMetadataService{
		projectRepo: projectRepo,
		logger:      logger,
	}, nil
}

// List retrieves all known projects.
func (s *projectMetadataService) List(ctx context.Context) ([]*projects.ProjectMeta, error) {
	projectMetas, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	return projectMetas, nil
}

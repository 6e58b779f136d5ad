package projects

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no project matches a query.
var ErrNotFound = errors.New("project not found")

// ProjectMetadataService defines read operations over indexed projects.
type ProjectMetadataService interface {
	// List retrieves all known projects.
	List(ctx context.Context) ([]*ProjectMeta, error)
}

// IndexService defines operations that load inventories into the database.
type IndexService interface {
	// Index loads the inventory at the given URL and upserts its project
	// and entries. It returns the resulting project metadata.
	Index(ctx context.Context, url string) (*ProjectMeta, error)

	// ReindexStale re-indexes every project whose last index run is older
	// than the given cutoff. It returns the number of projects re-indexed.
	ReindexStale(ctx context.Context, olderThan time.Time) (int, error)
}

// ProjectRepository defines the interface for project persistence.
type ProjectRepository interface {
	Create(ctx context.Context, project *ProjectMeta) error
	// GetByInvURL retrieves a project by inventory URL. Returns ErrNotFound
	// when no project is stored under that URL.
	GetByInvURL(ctx context.Context, invURL string) (*ProjectMeta, error)
	Update(ctx context.Context, project *ProjectMeta) error
	List(ctx context.Context) ([]*ProjectMeta, error)
	// ListStale lists projects never indexed or last indexed before cutoff.
	ListStale(ctx context.Context, cutoff time.Time) ([]*ProjectMeta, error)
}

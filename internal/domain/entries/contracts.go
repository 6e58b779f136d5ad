package entries

import (
	"context"
	"time"
)

// AnyDomain is the wildcard accepted by lookups in place of a Sphinx domain.
const AnyDomain = "*"

// LookupService defines the primary query operation of catfind.
type LookupService interface {
	// Lookup finds entries by name in the given Sphinx domain. The domain
	// may be AnyDomain to search all domains. Results carry the owning
	// project's name.
	Lookup(ctx context.Context, domain, name string) ([]*EntryMeta, error)
}

// EntryQuery narrows entry listings. Name is required; an empty Domain
// matches every domain.
type EntryQuery struct {
	Domain string
	Name   string
}

// EntryRepository defines the interface for entry persistence.
type EntryRepository interface {
	// Upsert creates the entry or, when one exists for the same project,
	// domain, role and name, refreshes its URL, display name and index time.
	Upsert(ctx context.Context, entry *EntryMeta) error

	// List returns entries matching the query, with project names attached.
	List(ctx context.Context, query *EntryQuery) ([]*EntryMeta, error)

	// DeleteStaleByProject removes a project's entries last indexed before
	// the cutoff and reports how many were removed.
	DeleteStaleByProject(ctx context.Context, projectID string, cutoff time.Time) (int64, error)
}

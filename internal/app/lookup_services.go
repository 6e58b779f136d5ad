package app

import (
	"context"
	"fmt"

	"github.com/AstraLuma/catfind/internal/domain/entries"
	"github.com/AstraLuma/catfind/internal/pkg/logger"
)

// lookupService implements the LookupService interface for querying indexed
// entries.
type lookupService struct {
	entryRepo entries.EntryRepository
	logger    logger.Logger
}

// NewLookupService creates a new lookupService instance
func NewLookupService(entryRepo entries.EntryRepository, logger logger.Logger) (entries.LookupService, error) {
	return &lookupService{
		entryRepo: entryRepo,
		logger:    logger,
	}, nil
}

// Lookup finds entries matching name in the given Sphinx domain. AnyDomain
// widens the search to every domain.
func (s *lookupService) Lookup(ctx context.Context, domain, name string) ([]*entries.EntryMeta, error) {
	query := &entries.EntryQuery{
		Domain: domain,
		Name:   name,
	}
	if domain == entries.AnyDomain {
		query.Domain = ""
	}

	entryMetas, err := s.entryRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries for %s: %w", name, err)
	}

	return entryMetas, nil
}

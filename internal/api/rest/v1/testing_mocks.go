//go:build unit
// +build unit

package v1

import (
	"context"
	"time"

	"github.com/AstraLuma/catfind/internal/domain/entries"
	"github.com/AstraLuma/catfind/internal/domain/projects"

	"github.com/stretchr/testify/mock"
)

// MockLookupService is a mock implementation of LookupService
type MockLookupService struct {
	mock.Mock
}

func (m *MockLookupService) Lookup(ctx context.Context, domain, name string) ([]*entries.EntryMeta, error) {
	args := m.Called(ctx, domain, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entries.EntryMeta), args.Error(1)
}

// MockProjectMetadataService is a mock implementation of ProjectMetadataService
type MockProjectMetadataService struct {
	mock.Mock
}

func (m *MockProjectMetadataService) List(ctx context.Context) ([]*projects.ProjectMeta, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*projects.ProjectMeta), args.Error(1)
}

// MockIndexService is a mock implementation of IndexService
type MockIndexService struct {
	mock.Mock
}

func (m *MockIndexService) Index(ctx context.Context, url string) (*projects.ProjectMeta, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*projects.ProjectMeta), args.Error(1)
}

func (m *MockIndexService) ReindexStale(ctx context.Context, olderThan time.Time) (int, error) {
	args := m.Called(ctx, olderThan)
	return args.Int(0), args.Error(1)
}

package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AstraLuma/catfind/internal/domain/entries"
	"github.com/AstraLuma/catfind/internal/infrastructure/persistence/models"
	"github.com/AstraLuma/catfind/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormEntryRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormEntryRepository creates a new GORM-based EntryRepository implementation
func NewGormEntryRepository(db *gorm.DB, logger logger.Logger) (entries.EntryRepository, error) {
	return &gormEntryRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormEntryRepository) Upsert(ctx context.Context, entry *entries.EntryMeta) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	var existing models.EntryModel
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND domain = ? AND role = ? AND name = ?",
			entry.ProjectID, entry.Domain, entry.Role, entry.Name).
		First(&existing).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		model := &models.EntryModel{}
		model.FromDomain(entry)
		if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
			return fmt.Errorf("failed to create entry: %w", err)
		}
		return nil

	case err != nil:
		return fmt.Errorf("failed to fetch entry: %w", err)

	default:
		existing.URL = entry.URL
		existing.Dispname = entry.Dispname
		existing.LastIndexed = entry.LastIndexed
		if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
			return fmt.Errorf("failed to update entry: %w", err)
		}
		// Hand the caller the persisted identity so follow-up work sees it.
		entry.ID = existing.ID
		return nil
	}
}

func (r *gormEntryRepository) List(ctx context.Context, query *entries.EntryQuery) ([]*entries.EntryMeta, error) {
	if query == nil || query.Name == "" {
		return nil, fmt.Errorf("invalid query parameters: name is required")
	}

	dbQuery := r.db.WithContext(ctx).
		Model(&models.EntryModel{}).
		Preload("Project").
		Where("name = ?", query.Name)

	if query.Domain != "" {
		dbQuery = dbQuery.Where("domain = ?", query.Domain)
	}

	var modelList []*models.EntryModel
	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch entries: %w", err)
	}

	domainList := make([]*entries.EntryMeta, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormEntryRepository) DeleteStaleByProject(ctx context.Context, projectID string, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("project_id = ? AND last_indexed < ?", projectID, cutoff).
		Delete(&models.EntryModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete stale entries: %w", result.Error)
	}

	if result.RowsAffected > 0 {
		r.logger.Info("Removed ", result.RowsAffected, " stale entries for project ", projectID)
	}
	return result.RowsAffected, nil
}

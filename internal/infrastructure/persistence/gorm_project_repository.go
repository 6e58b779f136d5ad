package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AstraLuma/catfind/internal/domain/projects"
	"github.com/AstraLuma/catfind/internal/infrastructure/persistence/models"
	"github.com/AstraLuma/catfind/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormProjectRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormProjectRepository creates a new GORM-based ProjectRepository implementation
func NewGormProjectRepository(db *gorm.DB, logger logger.Logger) (projects.ProjectRepository, error) {
	return &gormProjectRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormProjectRepository) Create(ctx context.Context, project *projects.ProjectMeta) error {
	if err := project.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ProjectModel{}
	model.FromDomain(project)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	r.logger.Info("Created project ", project.InvURL)
	return nil
}

func (r *gormProjectRepository) GetByInvURL(ctx context.Context, invURL string) (*projects.ProjectMeta, error) {
	var model models.ProjectModel
	if err := r.db.WithContext(ctx).Where("inv_url = ?", invURL).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, projects.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch project: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormProjectRepository) Update(ctx context.Context, project *projects.ProjectMeta) error {
	if err := project.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ProjectModel{}
	model.FromDomain(project)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	return nil
}

func (r *gormProjectRepository) List(ctx context.Context) ([]*projects.ProjectMeta, error) {
	var modelList []*models.ProjectModel
	if err := r.db.WithContext(ctx).Order("inv_url asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}

	domainList := make([]*projects.ProjectMeta, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormProjectRepository) ListStale(ctx context.Context, cutoff time.Time) ([]*projects.ProjectMeta, error) {
	var modelList []*models.ProjectModel
	err := r.db.WithContext(ctx).
		Where("last_indexed IS NULL OR last_indexed < ?", cutoff).
		Order("last_indexed asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stale projects: %w", err)
	}

	domainList := make([]*projects.ProjectMeta, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

package models

import (
	"time"

	"github.com/AstraLuma/catfind/internal/domain/projects"
)

// ProjectModel is the GORM database model for indexed projects
type ProjectModel struct {
	ID          string     `gorm:"primaryKey;type:uuid"`
	InvURL      string     `gorm:"column:inv_url;not null;uniqueIndex;type:varchar(2048)"`
	Name        string     `gorm:"type:varchar(255)"`
	Version     string     `gorm:"type:varchar(64)"`
	LastIndexed *time.Time `gorm:"index"`
}

// TableName specifies the table name for GORM
func (ProjectModel) TableName() string {
	return "projects"
}

// ToDomain converts GORM model to domain entity
func (m *ProjectModel) ToDomain() *projects.ProjectMeta {
	return &projects.ProjectMeta{
		ID:          m.ID,
		InvURL:      m.InvURL,
		Name:        m.Name,
		Version:     m.Version,
		LastIndexed: m.LastIndexed,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ProjectModel) FromDomain(p *projects.ProjectMeta) {
	m.ID = p.ID
	m.InvURL = p.InvURL
	m.Name = p.Name
	m.Version = p.Version
	m.LastIndexed = p.LastIndexed
}

package models

import (
	"time"

	"github.com/AstraLuma/catfind/internal/domain/entries"
)

// EntryModel is the GORM database model for inventory entries
type EntryModel struct {
	ID          string       `gorm:"primaryKey;type:uuid"`
	Domain      string       `gorm:"not null;index:idx_entries_domain_name;type:varchar(64)"`
	Name        string       `gorm:"not null;index:idx_entries_domain_name;type:varchar(512)"`
	Role        string       `gorm:"not null;type:varchar(64)"`
	Dispname    string       `gorm:"not null;type:varchar(512)"`
	URL         string       `gorm:"column:url;not null;type:varchar(2048)"`
	ProjectID   string       `gorm:"not null;index;type:uuid"`
	Project     ProjectModel `gorm:"foreignKey:ProjectID"`
	LastIndexed time.Time    `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (EntryModel) TableName() string {
	return "entries"
}

// ToDomain converts GORM model to domain entity. The owning project's name
// is carried over when the relation was loaded.
func (m *EntryModel) ToDomain() *entries.EntryMeta {
	return &entries.EntryMeta{
		ID:          m.ID,
		Domain:      m.Domain,
		Role:        m.Role,
		Name:        m.Name,
		Dispname:    m.Dispname,
		URL:         m.URL,
		ProjectID:   m.ProjectID,
		LastIndexed: m.LastIndexed,
		ProjectName: m.Project.Name,
	}
}

// FromDomain converts domain entity to GORM model
func (m *EntryModel) FromDomain(e *entries.EntryMeta) {
	m.ID = e.ID
	m.Domain = e.Domain
	m.Role = e.Role
	m.Name = e.Name
	m.Dispname = e.Dispname
	m.URL = e.URL
	m.ProjectID = e.ProjectID
	m.LastIndexed = e.LastIndexed
}

package v1

import (
	"fmt"
	"time"

	"github.com/AstraLuma/catfind/internal/domain/entries"
	"github.com/AstraLuma/catfind/internal/domain/projects"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Message string `json:"message"`
}

// ProjectResponse represents one indexed project
type ProjectResponse struct {
	URL         string  `json:"url"`
	Name        string  `json:"name"`
	Version     string  `json:"version"`
	LastIndexed *string `json:"last_indexed"`
}

// ProjectListResponse wraps the project listing
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

// NewProjectResponse maps project metadata to its response shape.
func NewProjectResponse(project *projects.ProjectMeta) ProjectResponse {
	response := ProjectResponse{
		URL:     project.InvURL,
		Name:    project.Name,
		Version: project.Version,
	}
	if project.LastIndexed != nil {
		indexed := project.LastIndexed.Format(time.RFC3339)
		response.LastIndexed = &indexed
	}
	return response
}

// EntryResponse represents one lookup result
type EntryResponse struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Location string `json:"location"`
	Dispname string `json:"dispname"`
}

// NewEntryResponse maps an entry to its response shape.
func NewEntryResponse(entry *entries.EntryMeta) EntryResponse {
	return EntryResponse{
		Name:     entry.Name,
		Type:     entry.Kind(),
		Location: entry.URL,
		Dispname: entry.DisplayName(),
	}
}

// AddProjectRequest represents the request to index an inventory URL
type AddProjectRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// Validate checks the request fields
func (r *AddProjectRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

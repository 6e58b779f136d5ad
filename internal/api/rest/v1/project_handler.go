package v1

import (
	"fmt"
	"net/http"

	"github.com/AstraLuma/catfind/internal/domain/projects"

	"github.com/gin-gonic/gin"
)

// ProjectHandler defines the interface for handling project-related operations
type ProjectHandler interface {
	List(ctx *gin.Context)
	Add(ctx *gin.Context)
}

// ProjectHandler struct holds the services
type projectHandler struct {
	projectMetadataService projects.ProjectMetadataService
	indexService           projects.IndexService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projectMetadataService projects.ProjectMetadataService, indexService projects.IndexService) ProjectHandler {
	return &projectHandler{
		projectMetadataService: projectMetadataService,
		indexService:           indexService,
	}
}

// List handles the GET request to list all indexed projects
// @Summary List indexed projects
// @Produce json
// @Success 200 {object} ProjectListResponse
// @Failure 500 {object} ErrorResponse
// @Router /!projects [get]
func (handler *projectHandler) List(ctx *gin.Context) {
	projectMetas, err := handler.projectMetadataService.List(ctx)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error listing projects: %v", err.Error())
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	listResponse := ProjectListResponse{Projects: []ProjectResponse{}}
	for _, projectMeta := range projectMetas {
		listResponse.Projects = append(listResponse.Projects, NewProjectResponse(projectMeta))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// Add handles the POST request to index an inventory URL
// @Summary Index the inventory at the given URL
// @Accept json
// @Produce json
// @Param requestBody body AddProjectRequest true "Inventory URL"
// @Success 201 {object} ProjectResponse
// @Failure 400 {object} ErrorResponse
// @Router /!projects [post]
func (handler *projectHandler) Add(ctx *gin.Context) {
	var request AddProjectRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid project data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	projectMeta, err := handler.indexService.Index(ctx, request.URL)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error indexing %s: %v", request.URL, err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, NewProjectResponse(projectMeta))
}

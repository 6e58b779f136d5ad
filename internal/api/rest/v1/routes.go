package v1

import (
	"github.com/AstraLuma/catfind/internal/domain/entries"
	"github.com/AstraLuma/catfind/internal/domain/projects"
	"github.com/AstraLuma/catfind/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	lookupService entries.LookupService,
	projectMetadataService projects.ProjectMetadataService,
	indexService projects.IndexService) {

	root := r.Group(BasePath)

	// Project Routes. The "!" prefix keeps them out of the lookup namespace:
	// "!" is not a valid Sphinx domain character.
	projectHandler := NewProjectHandler(projectMetadataService, indexService)
	root.GET("/!projects", projectHandler.List)
	root.POST("/!projects", projectHandler.Add)

	root.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Lookup Routes. Object names may contain slashes, so the name segment
	// is a catch-all.
	lookupHandler := NewLookupHandler(lookupService)
	root.GET("/:domain/*name", lookupHandler.Lookup)
}

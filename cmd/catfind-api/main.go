// cmd/catfind-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/AstraLuma/catfind/internal/api/rest/v1"
	"github.com/AstraLuma/catfind/internal/app"
	"github.com/AstraLuma/catfind/internal/domain/entries"
	"github.com/AstraLuma/catfind/internal/domain/projects"
	"github.com/AstraLuma/catfind/internal/infrastructure/inventories"
	"github.com/AstraLuma/catfind/internal/infrastructure/persistence"
	"github.com/AstraLuma/catfind/internal/infrastructure/persistence/models"
	"github.com/AstraLuma/catfind/internal/pkg/config"
	"github.com/AstraLuma/catfind/internal/pkg/logger"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Load the configured inventories in the background so startup is not
	// blocked on slow documentation hosts.
	go loadInitialInventories(restConfig.Index.InitialInventories, deps.services.index, log)

	deps.scheduler.Start()
	defer deps.scheduler.Stop()

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	services  *appServices
	scheduler *app.Scheduler
}

type appServices struct {
	lookup          entries.LookupService
	index           projects.IndexService
	projectMetadata projects.ProjectMetadataService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := db.AutoMigrate(&models.ProjectModel{}, &models.EntryModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	projectRepo, err := persistence.NewGormProjectRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create project repository: %w", err)
	}

	entryRepo, err := persistence.NewGormEntryRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create entry repository: %w", err)
	}

	// Initialize services
	loader := inventories.NewHTTPLoader(&cfg.Discovery, log)

	indexService, err := app.NewIndexService(loader, projectRepo, entryRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create index service: %w", err)
	}

	lookupService, err := app.NewLookupService(entryRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create lookup service: %w", err)
	}

	projectMetadataService, err := app.NewProjectMetadataService(projectRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create project metadata service: %w", err)
	}

	scheduler, err := app.NewScheduler(indexService, &cfg.Index, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appDependencies{
		services: &appServices{
			lookup:          lookupService,
			index:           indexService,
			projectMetadata: projectMetadataService,
		},
		scheduler: scheduler,
	}, nil
}

// loadInitialInventories indexes the inventories configured for first start.
// Already-indexed projects are simply refreshed.
func loadInitialInventories(urls []string, indexService projects.IndexService, log logger.Logger) {
	for _, url := range urls {
		if _, err := indexService.Index(context.Background(), url); err != nil {
			log.Warn("Failed to load initial inventory ", url, ": ", err)
		}
	}
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Location"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r,
		deps.services.lookup,
		deps.services.projectMetadata,
		deps.services.index,
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

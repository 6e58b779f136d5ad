package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/AstraLuma/catfind/internal/app"
	"github.com/AstraLuma/catfind/internal/domain/inventory"
	"github.com/AstraLuma/catfind/internal/domain/projects"
	"github.com/AstraLuma/catfind/internal/infrastructure/inventories"
	"github.com/AstraLuma/catfind/internal/infrastructure/persistence"
	"github.com/AstraLuma/catfind/internal/infrastructure/persistence/models"
	"github.com/AstraLuma/catfind/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// IndexCommandHandler encapsulates logic for handling indexing operations via CLI.
type IndexCommandHandler struct {
	indexService           projects.IndexService
	projectMetadataService projects.ProjectMetadataService
	loader                 inventory.Loader
	logger                 logger.Logger
}

// NewIndexCommandHandler initializes and returns an IndexCommandHandler instance with
// configured logger, database connection and index service.
func NewIndexCommandHandler() (*IndexCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := db.AutoMigrate(&models.ProjectModel{}, &models.EntryModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	projectRepo, err := persistence.NewGormProjectRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create project repository: %w", err)
	}

	entryRepo, err := persistence.NewGormEntryRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create entry repository: %w", err)
	}

	loader := inventories.NewHTTPLoader(&cfg.Discovery, loggerInstance)

	indexService, err := app.NewIndexService(loader, projectRepo, entryRepo, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create index service: %w", err)
	}

	projectMetadataService, err := app.NewProjectMetadataService(projectRepo, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create project metadata service: %w", err)
	}

	return &IndexCommandHandler{
		indexService:           indexService,
		projectMetadataService: projectMetadataService,
		loader:                 loader,
		logger:                 loggerInstance,
	}, nil
}

// IndexCmd indexes the inventory at the given URL
func (commandHandler *IndexCommandHandler) IndexCmd(cmd *cobra.Command, args []string) {
	url := args[0]

	project, err := commandHandler.indexService.Index(cmd.Context(), url)
	if err != nil {
		commandHandler.logger.Error("Failed to index ", url, ": ", err)
		return
	}

	commandHandler.logger.Info("Indexed ", project.Name, " ", project.Version, " from ", project.InvURL)
}

// ReindexCmd re-indexes all projects whose last index run is too old
func (commandHandler *IndexCommandHandler) ReindexCmd(cmd *cobra.Command, _ []string) {
	olderThanHours, err := cmd.Flags().GetInt("older-than-hours")
	if err != nil {
		commandHandler.logger.Error("invalid older-than-hours flag ", err)
		return
	}

	cutoff := time.Now().UTC().Add(-time.Duration(olderThanHours) * time.Hour)
	count, err := commandHandler.indexService.ReindexStale(cmd.Context(), cutoff)
	if err != nil {
		commandHandler.logger.Error("Failed to re-index: ", err)
		return
	}

	commandHandler.logger.Info("Re-indexed ", count, " projects")
}

// ListProjectsCmd lists all indexed projects
func (commandHandler *IndexCommandHandler) ListProjectsCmd(cmd *cobra.Command, _ []string) {
	projectMetas, err := commandHandler.projectMetadataService.List(cmd.Context())
	if err != nil {
		commandHandler.logger.Error("Failed to list projects: ", err)
		return
	}

	for _, project := range projectMetas {
		indexed := "never"
		if project.LastIndexed != nil {
			indexed = project.LastIndexed.Format(time.RFC3339)
		}
		fmt.Printf("%s\t%s\t%s\t%s\n", project.Name, project.Version, project.InvURL, indexed)
	}
}

// DumpCmd fetches an inventory and re-serializes it as a version 2 file.
// Useful for normalizing version 1 inventories or inspecting what a site
// actually serves.
func (commandHandler *IndexCommandHandler) DumpCmd(cmd *cobra.Command, args []string) {
	url := args[0]

	outputPath, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag ", err)
		return
	}

	inv, err := commandHandler.loader.Load(cmd.Context(), url)
	if err != nil {
		commandHandler.logger.Error("Failed to load inventory ", url, ": ", err)
		return
	}

	out := os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			commandHandler.logger.Error("Failed to create ", outputPath, ": ", err)
			return
		}
		defer func() {
			_ = f.Close()
		}()
		out = f
	}

	if err := inv.Dump(out); err != nil {
		commandHandler.logger.Error("Failed to write inventory: ", err)
	}
}

// InitIndexCommands registers indexing-related commands
func InitIndexCommands(rootCmd *cobra.Command) error {
	handler, err := NewIndexCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create index command handler %w", err)
	}

	var indexCmd = &cobra.Command{
		Use:   "index <url>",
		Short: "Index the object inventory at the given URL",
		Args:  cobra.ExactArgs(1),
		Run:   handler.IndexCmd,
	}
	rootCmd.AddCommand(indexCmd)

	var reindexCmd = &cobra.Command{
		Use:   "reindex",
		Short: "Re-index projects whose inventories are stale",
		Run:   handler.ReindexCmd,
	}
	reindexCmd.Flags().IntP("older-than-hours", "", 24*7, "Re-index projects last indexed more than this many hours ago")
	rootCmd.AddCommand(reindexCmd)

	var listProjectsCmd = &cobra.Command{
		Use:   "list-projects",
		Short: "List all indexed projects",
		Run:   handler.ListProjectsCmd,
	}
	rootCmd.AddCommand(listProjectsCmd)

	var dumpCmd = &cobra.Command{
		Use:   "dump <url>",
		Short: "Fetch an inventory and re-serialize it as version 2",
		Args:  cobra.ExactArgs(1),
		Run:   handler.DumpCmd,
	}
	dumpCmd.Flags().StringP("output-file", "", "", "Write the inventory here instead of stdout")
	rootCmd.AddCommand(dumpCmd)

	return nil
}

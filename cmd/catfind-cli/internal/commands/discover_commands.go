package commands

import (
	"errors"
	"fmt"

	domaindiscovery "github.com/AstraLuma/catfind/internal/domain/discovery"
	"github.com/AstraLuma/catfind/internal/infrastructure/discovery"
	"github.com/AstraLuma/catfind/internal/infrastructure/pypisimple"
	"github.com/AstraLuma/catfind/internal/pkg/httputil"
	"github.com/AstraLuma/catfind/internal/pkg/logger"

	"github.com/spf13/cobra"
)

var errDiscoveryLimit = errors.New("package limit reached")

// DiscoverCommandHandler encapsulates logic for crawling the package index via CLI.
type DiscoverCommandHandler struct {
	catalog domaindiscovery.CatalogService
	guesser domaindiscovery.GuessService
	logger  logger.Logger
}

// NewDiscoverCommandHandler initializes and returns a DiscoverCommandHandler instance
// with configured logger, simple index client and guesser.
func NewDiscoverCommandHandler() (*DiscoverCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	client := httputil.NewClient(cfg.Discovery.UserAgent)

	return &DiscoverCommandHandler{
		catalog: pypisimple.NewClient(client, cfg.Discovery.SimpleEndpoint),
		guesser: discovery.NewGuesser(&cfg.Discovery, loggerInstance),
		logger:  loggerInstance,
	}, nil
}

// DiscoverCmd walks the package index and prints every inventory it can find.
// This is a long crawl against a very large index; --limit bounds it.
func (commandHandler *DiscoverCommandHandler) DiscoverCmd(cmd *cobra.Command, _ []string) {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		commandHandler.logger.Error("invalid limit flag ", err)
		return
	}

	seen := 0
	err = commandHandler.catalog.StreamProjectNames(cmd.Context(), func(name string) error {
		if limit > 0 && seen >= limit {
			return errDiscoveryLimit
		}
		seen++

		urls, err := commandHandler.guesser.GuessForPyPI(cmd.Context(), name)
		if err != nil {
			commandHandler.logger.Warn("Failed to guess for ", name, ": ", err)
			return nil
		}
		for _, url := range urls {
			fmt.Printf("%s\t%s\n", name, url)
		}
		return nil
	})
	if err != nil && !errors.Is(err, errDiscoveryLimit) {
		commandHandler.logger.Error("Failed to enumerate package index: ", err)
		return
	}

	commandHandler.logger.Info("Checked ", seen, " packages")
}

// InitDiscoverCommands registers discovery-related commands
func InitDiscoverCommands(rootCmd *cobra.Command) error {
	handler, err := NewDiscoverCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create discover command handler %w", err)
	}

	var discoverCmd = &cobra.Command{
		Use:   "discover",
		Short: "Crawl the package index looking for object inventories",
		Run:   handler.DiscoverCmd,
	}
	discoverCmd.Flags().IntP("limit", "", 0, "Stop after checking this many packages (0 checks all)")
	rootCmd.AddCommand(discoverCmd)

	return nil
}

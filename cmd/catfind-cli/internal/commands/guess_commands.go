package commands

import (
	"fmt"

	domaindiscovery "github.com/AstraLuma/catfind/internal/domain/discovery"
	"github.com/AstraLuma/catfind/internal/infrastructure/discovery"
	"github.com/AstraLuma/catfind/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// GuessCommandHandler encapsulates logic for guessing inventory locations via CLI.
type GuessCommandHandler struct {
	guesser domaindiscovery.GuessService
	logger  logger.Logger
}

// NewGuessCommandHandler initializes and returns a GuessCommandHandler instance with
// configured logger and guesser.
func NewGuessCommandHandler() (*GuessCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	return &GuessCommandHandler{
		guesser: discovery.NewGuesser(&cfg.Discovery, loggerInstance),
		logger:  loggerInstance,
	}, nil
}

// GuessPyPICmd guesses inventory URLs for a PyPI package
func (commandHandler *GuessCommandHandler) GuessPyPICmd(cmd *cobra.Command, args []string) {
	pkg := args[0]

	urls, err := commandHandler.guesser.GuessForPyPI(cmd.Context(), pkg)
	if err != nil {
		commandHandler.logger.Error("Failed to guess for ", pkg, ": ", err)
		return
	}

	if len(urls) == 0 {
		commandHandler.logger.Info("No inventories found for ", pkg)
		return
	}
	for _, url := range urls {
		fmt.Println(url)
	}
}

// CheckInventoryCmd reports whether the given URL serves an object inventory
func (commandHandler *GuessCommandHandler) CheckInventoryCmd(cmd *cobra.Command, args []string) {
	url := args[0]

	if commandHandler.guesser.CheckInventory(cmd.Context(), url) {
		commandHandler.logger.Info(url, " serves an object inventory")
	} else {
		commandHandler.logger.Info(url, " does not serve an object inventory")
	}
}

// InitGuessCommands registers guessing-related commands
func InitGuessCommands(rootCmd *cobra.Command) error {
	handler, err := NewGuessCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create guess command handler %w", err)
	}

	var guessPyPICmd = &cobra.Command{
		Use:   "guess-pypi <pkg>",
		Short: "Guess inventory URLs for a PyPI package",
		Args:  cobra.ExactArgs(1),
		Run:   handler.GuessPyPICmd,
	}
	rootCmd.AddCommand(guessPyPICmd)

	var checkInventoryCmd = &cobra.Command{
		Use:   "check-inventory <url>",
		Short: "Check whether a URL serves an object inventory",
		Args:  cobra.ExactArgs(1),
		Run:   handler.CheckInventoryCmd,
	}
	rootCmd.AddCommand(checkInventoryCmd)

	return nil
}

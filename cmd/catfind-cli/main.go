// Package main is the entry point for the catfind-cli application.
// It initializes the root command and registers the indexing, guessing and
// discovery sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/AstraLuma/catfind/cmd/catfind-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "catfind-cli",
		Short: "Sphinx object inventory tooling",
		Long: `catfind-cli manages the catfind object inventory database.
Supports indexing objects.inv files into the database, re-indexing stale
projects, guessing inventory locations for PyPI packages, and crawling the
package index for documentation sites.

Configuration is read from CONFIG_PATH (defaults to configs/rest-app.yaml);
DATABASE_URL and RTD_TOKEN override the file.`,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	// Register indexing commands
	if err := commands.InitIndexCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize index commands: %w", err)
	}

	// Register guessing commands
	if err := commands.InitGuessCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize guess commands: %w", err)
	}

	// Register discovery commands
	if err := commands.InitDiscoverCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize discover commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}

// Package config provides functionality for loading and managing application configuration.
//
// Settings are loaded from a YAML file, overridden by environment variables
// (notably DATABASE_URL, PORT and RTD_TOKEN), validated, and made accessible
// throughout the application. It centralizes configuration management for
// easier modification and extension.
package config

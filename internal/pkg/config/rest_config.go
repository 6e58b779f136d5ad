package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// DefaultUserAgent identifies outbound HTTP requests made by the indexer
// and discovery tooling.
const DefaultUserAgent = "catfind <https://sphinx.rip/> (@AstraLuma)"

// IndexSettings holds configuration for inventory indexing
type IndexSettings struct {
	// InitialInventories are loaded at service start. CPython is pretty
	// important and undiscoverable, so it ships in the default config.
	InitialInventories []string `mapstructure:"initial_inventories"`
	// ReindexSchedule is a cron spec for the periodic re-index job.
	// Empty disables the scheduler.
	ReindexSchedule string `mapstructure:"reindex_schedule"`
	// StaleAfterHours bounds how old a project's last index run may be
	// before the scheduler picks it up again.
	StaleAfterHours int `mapstructure:"stale_after_hours"`
}

// DiscoverySettings holds configuration for inventory discovery
type DiscoverySettings struct {
	UserAgent      string `mapstructure:"user_agent" validate:"required"`
	RTDToken       string `mapstructure:"rtd_token"`
	PyPIEndpoint   string `mapstructure:"pypi_endpoint" validate:"required,url"`
	SimpleEndpoint string `mapstructure:"simple_endpoint" validate:"required,url"`
}

// RestConfig holds the full configuration of the REST application
type RestConfig struct {
	Port      string            `mapstructure:"port" validate:"required"`
	Logger    LoggerSettings    `mapstructure:"logger"`
	Database  DatabaseSettings  `mapstructure:"database"`
	Index     IndexSettings     `mapstructure:"index"`
	Discovery DiscoverySettings `mapstructure:"discovery"`
}

// Validate checks that all fields in RestConfig are valid
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}

	if err := c.Logger.Validate(); err != nil {
		return err
	}

	return c.Database.Validate()
}

// InitializeRestConfig loads configuration from the given YAML file and the
// environment. Environment variables take precedence over file values:
// PORT, DATABASE_URL and RTD_TOKEN are recognized. A missing config file is
// not an error; defaults apply.
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	v := viper.New()

	v.SetDefault("port", "8000")
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "db.db3")
	v.SetDefault("index.initial_inventories", []string{
		"https://docs.python.org/3/objects.inv",
		"https://pip.pypa.io/en/stable/objects.inv",
		"https://tox.wiki/en/latest/objects.inv",
	})
	v.SetDefault("index.reindex_schedule", "")
	v.SetDefault("index.stale_after_hours", 24*7)
	v.SetDefault("discovery.user_agent", DefaultUserAgent)
	v.SetDefault("discovery.pypi_endpoint", "https://pypi.org/pypi")
	v.SetDefault("discovery.simple_endpoint", "https://pypi.org/simple/")

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			if _, statErr := os.Stat(configPath); statErr == nil {
				return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
			}
		}
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if token := os.Getenv("RTD_TOKEN"); token != "" {
		cfg.Discovery.RTDToken = token
	}
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		settings, err := ParseDatabaseURL(dbURL)
		if err != nil {
			return nil, err
		}
		cfg.Database = settings
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

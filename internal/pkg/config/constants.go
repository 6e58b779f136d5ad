package config

// Log level constants
const (
	LogLevelInfo     = "info"
	LogLevelDebug    = "debug"
	LogLevelError    = "error"
	LogLevelWarning  = "warning"
	LogLevelCritical = "critical"
)

// Log type constants
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// PostgresDbType represents the PostgreSQL database provider
const PostgresDbType = "postgres"

// SqliteDbType represents the SQLite database provider
const SqliteDbType = "sqlite"

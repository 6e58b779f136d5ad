//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDatabaseSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *DatabaseSettings
		expectedError bool
	}{
		{
			name: "valid postgres settings",
			settings: &DatabaseSettings{
				Type:   "postgres",
				DSN:    "host=localhost user=postgres password=postgres",
				DBName: "catfind",
			},
			expectedError: false,
		},
		{
			name: "valid sqlite settings",
			settings: &DatabaseSettings{
				Type: "sqlite",
				DSN:  "db.db3",
			},
			expectedError: false,
		},
		{
			name: "missing type",
			settings: &DatabaseSettings{
				DSN:    "host=localhost",
				DBName: "catfind",
			},
			expectedError: true,
		},
		{
			name: "missing DSN",
			settings: &DatabaseSettings{
				Type:   "postgres",
				DBName: "catfind",
			},
			expectedError: true,
		},
		{
			name: "unsupported type",
			settings: &DatabaseSettings{
				Type: "mysql",
				DSN:  "user:password@tcp(localhost:3306)/dbname",
			},
			expectedError: true,
		},
		{
			name:          "empty fields",
			settings:      &DatabaseSettings{},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()

			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestParseDatabaseURL(t *testing.T) {
	tests := []struct {
		name          string
		rawURL        string
		expected      DatabaseSettings
		expectedError bool
	}{
		{
			name:   "full postgres URL",
			rawURL: "postgres://catfind:hunter2@db/catfind",
			expected: DatabaseSettings{
				Type:   PostgresDbType,
				DSN:    "host=db user=catfind password=hunter2 dbname=catfind",
				DBName: "catfind",
			},
		},
		{
			name:   "postgres URL with port and sslmode",
			rawURL: "postgresql://catfind@localhost:5433/catfind?sslmode=disable",
			expected: DatabaseSettings{
				Type:   PostgresDbType,
				DSN:    "host=localhost port=5433 user=catfind dbname=catfind sslmode=disable",
				DBName: "catfind",
			},
		},
		{
			name:   "sqlite URL",
			rawURL: "sqlite:db.db3",
			expected: DatabaseSettings{
				Type: SqliteDbType,
				DSN:  "db.db3",
			},
		},
		{
			name:          "unsupported scheme",
			rawURL:        "mysql://root@localhost/catfind",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings, err := ParseDatabaseURL(tt.rawURL)

			if tt.expectedError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, settings)
		})
	}
}

//go:build unit
// +build unit

package logger

import (
	"log/slog"
	"testing"

	"github.com/AstraLuma/catfind/internal/pkg/config"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name          string
		settings      *config.LoggerSettings
		expectedError bool
	}{
		{
			name: "console logger",
			settings: &config.LoggerSettings{
				LogLevel: config.LogLevelInfo,
				LogType:  config.LogTypeConsole,
			},
			expectedError: false,
		},
		{
			name: "file logger",
			settings: &config.LoggerSettings{
				LogLevel:   config.LogLevelDebug,
				LogType:    config.LogTypeFile,
				FilePath:   "catfind.log",
				MaxSize:    10,
				MaxBackups: 3,
				MaxAge:     7,
			},
			expectedError: false,
		},
		{
			name: "invalid log type",
			settings: &config.LoggerSettings{
				LogLevel: config.LogLevelInfo,
				LogType:  "syslog",
			},
			expectedError: true,
		},
		{
			name: "file logger without path",
			settings: &config.LoggerSettings{
				LogLevel: config.LogLevelInfo,
				LogType:  config.LogTypeFile,
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := newLogger(tt.settings)

			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				require.NotNil(t, log)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, parseLevel(config.LogLevelDebug))
	require.Equal(t, slog.LevelInfo, parseLevel(config.LogLevelInfo))
	require.Equal(t, slog.LevelWarn, parseLevel(config.LogLevelWarning))
	require.Equal(t, slog.LevelError, parseLevel(config.LogLevelError))
	require.Equal(t, slog.LevelError, parseLevel(config.LogLevelCritical))
	require.Equal(t, slog.LevelInfo, parseLevel("unknown"))
}

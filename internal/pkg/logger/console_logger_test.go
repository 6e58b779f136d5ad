//go:build unit
// +build unit

package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/AstraLuma/catfind/internal/pkg/config"
	"github.com/stretchr/testify/require"
)

func TestConsoleLogger_LogsToOutput(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, nil)
	log := &ConsoleLogger{logger: slog.New(handler)}

	log.Info("indexed ", 42, " entries")
	log.Warn("inventory truncated")
	log.Error("fetch failed")

	out := buf.String()
	require.Contains(t, out, "indexed 42 entries")
	require.Contains(t, out, "inventory truncated")
	require.Contains(t, out, "fetch failed")
}

func TestNewConsoleLogger(t *testing.T) {
	log := NewConsoleLogger(config.LogLevelInfo)
	require.NotNil(t, log)
}

func TestConsoleLogger_PanicPanics(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, nil)
	log := &ConsoleLogger{logger: slog.New(handler)}

	require.Panics(t, func() {
		log.Panic("boom")
	})
	require.Contains(t, buf.String(), "boom")
}

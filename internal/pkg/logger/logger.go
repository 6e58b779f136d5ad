// Package logger provides the logging abstraction used across catfind.
// Console logging writes human-readable text to stdout; file logging writes
// JSON with rotation handled by lumberjack.
package logger

// Logger defines the logging interface
type Logger interface {
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})
}

// Package podisplay provides the purchase order display shell: a hash router,
// view controllers owning per-view dialogs and notices, and the bootstrap
// that wires them to a single UI loop.
//
// The package handles logging set-up and component start-up. Frontends
// (SDL window, headless console) drive a Component by posting events to it.
package podisplay

import (
	"io"
	"log/slog"
	"os"

	"github.com/BrandonKowalski/podisplay/pkg/podisplay/constants"
	"github.com/BrandonKowalski/podisplay/pkg/podisplay/internal"
)

// Options configures logging before a Component is built.
type Options struct {
	LogPath  string    // Full path for log file including filename (creates parent directories)
	LogLevel string    // Application log level name ("debug", "info", "warn", "error")
	Output   io.Writer // Console destination (default: stdout)
}

// Init configures logging. Call it once, before NewComponent.
// In development mode (ENVIRONMENT=DEV) internal logs are emitted at debug level.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}
	if options.Output != nil {
		internal.SetLogOutput(options.Output)
	}

	if constants.IsDevMode() || os.Getenv(constants.LogLevelEnvVar) == "debug" {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelWarn)
	}

	if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	}
}

// Close flushes and closes the log file.
func Close() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

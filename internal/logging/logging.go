// Package logging routes application logs to a file, since the terminal
// belongs to the TUI.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	// LevelEnv selects the minimum level: debug, info, warn or error
	LevelEnv = "MANPOWER_LOG_LEVEL"

	fileName = "manpower.log"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// Dir returns the log directory, ~/.manpower/logs
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".manpower", "logs"), nil
}

// Init opens the log file in Dir and installs it as the default logger.
// The caller closes the returned file on exit.
func Init() (io.Closer, error) {
	dir, err := Dir()
	if err != nil {
		return nil, fmt.Errorf("locating log directory: %w", err)
	}
	return InitAt(dir)
}

// InitAt is Init with an explicit log directory
func InitAt(logDir string) (io.Closer, error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", logDir, err)
	}

	logPath := filepath.Join(logDir, fileName)
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", logPath, err)
	}

	Logger = slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: levelFromEnv(),
	}))
	// Also captures output of the standard log package
	slog.SetDefault(Logger)

	return file, nil
}

// levelFromEnv reads LevelEnv. Unset or unknown values mean debug.
func levelFromEnv() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(os.Getenv(LevelEnv))); err != nil {
		return slog.LevelDebug
	}
	return level
}

package app

import (
	"log/slog"

	"github.com/thenoetrevino/manpower/internal/catalog"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// WithCatalog replaces the built-in catalog. Used by tests.
func WithCatalog(c *catalog.Catalog) Option {
	return func(cfg *appConfig) {
		cfg.catalog = c
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

package app

import (
	"log/slog"

	"github.com/thenoetrevino/manpower/internal/catalog"
	"github.com/thenoetrevino/manpower/internal/services/report"
)

// App holds the read-only catalog and the services built on it.
// It is constructed once at startup and handed to the TUI.
type App struct {
	// Catalog is the fixed tank -> tasks mapping
	Catalog *catalog.Catalog

	// ReportService implements the Generate Report and Estimate Time actions
	ReportService report.Service

	logger *slog.Logger
}

// New creates a new App with all services initialized.
// Without options the built-in catalog and the default logger are used.
func New(opts ...Option) *App {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.catalog == nil {
		cfg.catalog = catalog.Default()
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	cfg.logger.Debug("app initialized", "tanks", cfg.catalog.Len())

	return &App{
		Catalog:       cfg.catalog,
		ReportService: report.NewService(),
		logger:        cfg.logger,
	}
}

// Logger returns the logger the app was built with
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close performs cleanup of application resources.
// Nothing is held open today.
func (a *App) Close() error {
	return nil
}

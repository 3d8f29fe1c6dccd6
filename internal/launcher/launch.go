package launcher

import (
	"context"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/manpower/internal/app"
	"github.com/thenoetrevino/manpower/internal/config"
	"github.com/thenoetrevino/manpower/internal/logging"
	"github.com/thenoetrevino/manpower/internal/tui"
)

// Launch starts the TUI application and blocks until the window is closed
func Launch(ctx context.Context) error {
	// Initialize logging to file before anything else
	logFile, err := logging.Init()
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logFile.Close()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	// Load falls back to defaults when the path cannot be resolved
	configPath, _ := config.Path()
	slog.Debug("configuration loaded", "path", configPath, "preset", cfg.ColorScheme.Preset)

	application := app.New(app.WithLogger(logging.Logger))
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing app", "error", err)
		}
	}()

	model := tui.InitialModel(application, cfg)
	p := tea.NewProgram(model, tea.WithContext(ctx))

	slog.Info("manpower starting", "tanks", application.Catalog.Len())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	slog.Info("manpower exited")

	return nil
}
